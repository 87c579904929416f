package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/adrianconde128/Proyecto-Mayan-Sunset/controllers"
	"github.com/adrianconde128/Proyecto-Mayan-Sunset/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter recibe los controladores y arma todas las rutas del API.
func SetupRouter(
	ac *controllers.AuthController,
	hc *controllers.HabitacionController,
	rc *controllers.ReservaController,
	rsc *controllers.RestauranteController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/auth/login", ac.Login)

		habitaciones := api.Group("/habitaciones")
		{
			habitaciones.GET("", hc.ListarHabitaciones)
			habitaciones.GET("/tipos", hc.ListarTipos)
			habitaciones.GET("/precio", hc.PrecioPorTipo)
		}

		api.POST("/reservas", rc.CrearReserva)

		api.GET("/menu", rsc.ListarMenu)
		api.POST("/pedidos", rsc.CrearPedido)

		inventario := api.Group("/inventario")
		{
			inventario.GET("", rsc.ListarInventario)
			inventario.GET("/bajo-stock", rsc.BajoStock)
		}
	}

	return r
}
