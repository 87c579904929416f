package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/adrianconde128/Proyecto-Mayan-Sunset/config"
	"github.com/adrianconde128/Proyecto-Mayan-Sunset/controllers"
	"github.com/adrianconde128/Proyecto-Mayan-Sunset/routes"
	"github.com/adrianconde128/Proyecto-Mayan-Sunset/services"
)

func main() {
	// .env es opcional; sin él se usan las variables de entorno.
	if err := godotenv.Load(); err != nil {
		log.Println(".env no encontrado; se continúa con las variables de entorno")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("error conectando la base de datos: %v", err)
	}
	db := config.DB
	log.Println("Base de datos conectada, migraciones y datos iniciales aplicados.")

	authService := services.NewAuthService(db)
	reservaService := services.NewReservaService(db)
	restauranteService := services.NewRestauranteService(db)

	authController := controllers.NewAuthController(authService)
	habitacionController := controllers.NewHabitacionController(reservaService)
	reservaController := controllers.NewReservaController(reservaService)
	restauranteController := controllers.NewRestauranteController(restauranteService)

	router := routes.SetupRouter(authController, habitacionController, reservaController, restauranteController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Servidor escuchando en %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Señal de apagado recibida, cerrando el servidor...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("el servidor no cerró limpiamente: %v", err)
	}

	log.Println("Servidor detenido.")
}
