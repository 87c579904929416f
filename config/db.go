package config

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/adrianconde128/Proyecto-Mayan-Sunset/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func EnvOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := EnvOrDefault("DB_USER", "root")
	pass := EnvOrDefault("DB_PASS", "")
	host := EnvOrDefault("DB_HOST", "127.0.0.1")
	port := EnvOrDefault("DB_PORT", "3306")
	dbName := EnvOrDefault("DB_NAME", "mayan_sunset")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// openDialector picks the driver from DB_DRIVER: "sqlite" (default, un solo
// archivo local) o "mysql".
func openDialector() (gorm.Dialector, error) {
	driver := strings.ToLower(EnvOrDefault("DB_DRIVER", "sqlite"))
	switch driver {
	case "sqlite", "sqlite3":
		path := EnvOrDefault("DB_SOURCE", "mayan_sunset.db")
		return sqlite.Open(path), nil
	case "mysql":
		dsn, err := resolveMySQLDSN()
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("DB_DRIVER no soportado: %q", driver)
	}
}

func ConnectDatabase() error {
	dialector, err := openDialector()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newLogger,
		TranslateError: true,
	})
	if err != nil {
		return err
	}

	DB = db

	if err := Migrate(DB); err != nil {
		return err
	}

	SeedDatabase(DB)
	return nil
}

// Migrate crea/actualiza las tablas en orden padre->hijo.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Usuario{},
		&models.Habitacion{},
		&models.Huesped{},
		&models.Reserva{},
		&models.Plato{},
		&models.Pedido{},
		&models.DetallePedido{},
		&models.Ingrediente{},
		&models.Transaccion{},
	)
}

func mustReceta(consumos map[string]float64) datatypes.JSON {
	raw, err := json.Marshal(consumos)
	if err != nil {
		log.Fatalf("Error serializando receta: %v", err)
	}
	return datatypes.JSON(raw)
}

func precio(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		log.Fatalf("Error parseando precio de seed (%s): %v", s, err)
	}
	return d
}

// SeedDatabase inserta los datos fijos si las tablas están vacías
// (idempotente: verifica conteos antes de insertar).
func SeedDatabase(db *gorm.DB) {
	// ---------------- Usuarios ----------------
	var userCount int64
	db.Model(&models.Usuario{}).Count(&userCount)
	if userCount == 0 {
		seed := []struct{ usuario, contrasena, tipo string }{
			{"admin", "admin123", models.UsuarioAdministrador},
			{"empleado1", "empleado123", models.UsuarioEmpleado},
			{"empleado2", "empleado456", models.UsuarioEmpleado},
		}
		for _, u := range seed {
			hash, err := bcrypt.GenerateFromPassword([]byte(u.contrasena), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("warning: no se pudo hashear la contraseña de %s: %v", u.usuario, err)
				continue
			}
			row := models.Usuario{Usuario: u.usuario, Contrasena: string(hash), TipoUsuario: u.tipo}
			if err := db.Create(&row).Error; err != nil {
				log.Printf("warning: no se pudo crear el usuario %s: %v", u.usuario, err)
			}
		}
		log.Println("Usuarios seeded")
	}

	// ---------------- Habitaciones ----------------
	var habCount int64
	db.Model(&models.Habitacion{}).Count(&habCount)
	if habCount == 0 {
		habitaciones := []models.Habitacion{
			{NumeroHabitacion: "H001", Tipo: "Sencilla", PrecioPorNoche: precio("150.00"), Estado: models.EstadoDisponible},
			{NumeroHabitacion: "H002", Tipo: "Sencilla", PrecioPorNoche: precio("150.00"), Estado: models.EstadoDisponible},
			{NumeroHabitacion: "H003", Tipo: "Doble", PrecioPorNoche: precio("250.00"), Estado: models.EstadoDisponible},
			{NumeroHabitacion: "H004", Tipo: "Doble", PrecioPorNoche: precio("250.00"), Estado: models.EstadoDisponible},
			{NumeroHabitacion: "H005", Tipo: "Suite", PrecioPorNoche: precio("450.00"), Estado: models.EstadoDisponible},
			{NumeroHabitacion: "H006", Tipo: "Familiar", PrecioPorNoche: precio("350.00"), Estado: models.EstadoDisponible},
			{NumeroHabitacion: "H107", Tipo: "Individual", PrecioPorNoche: precio("120.00"), Estado: models.EstadoDisponible},
			{NumeroHabitacion: "H108", Tipo: "Individual", PrecioPorNoche: precio("120.00"), Estado: models.EstadoDisponible},
		}
		if err := db.Create(&habitaciones).Error; err != nil {
			log.Printf("warning: no se pudieron crear habitaciones: %v", err)
		} else {
			log.Println("Habitaciones seeded")
		}
	}

	// ---------------- Menú ----------------
	var menuCount int64
	db.Model(&models.Plato{}).Count(&menuCount)
	if menuCount == 0 {
		platos := []models.Plato{
			{
				NombrePlato: "Tacos al Pastor",
				Descripcion: "Tacos de cerdo marinado con piña y cilantro.",
				Precio:      precio("15.50"),
				Tipo:        models.TipoPrincipal,
				Receta:      mustReceta(map[string]float64{"Carne de Cerdo": 0.20, "Piña": 0.10, "Cilantro": 0.05}),
			},
			{
				NombrePlato: "Enchiladas Suizas",
				Descripcion: "Tortillas de maíz rellenas de pollo, cubiertas con salsa verde y queso.",
				Precio:      precio("12.00"),
				Tipo:        models.TipoPrincipal,
				Receta:      mustReceta(map[string]float64{"Pollo": 0.25, "Maíz": 0.20, "Cilantro": 0.03}),
			},
			{
				NombrePlato: "Guacamole con Totopos",
				Descripcion: "Aguacate machacado con tomate, cebolla, cilantro y un toque de limón.",
				Precio:      precio("8.75"),
				Tipo:        models.TipoEntrada,
				Receta:      mustReceta(map[string]float64{"Aguacate": 1.00, "Maíz": 0.10, "Cilantro": 0.02}),
			},
			{
				NombrePlato: "Sopa de Tortilla",
				Descripcion: "Caldo de tomate con tiras de tortilla frita, queso y aguacate.",
				Precio:      precio("7.50"),
				Tipo:        models.TipoEntrada,
				Receta:      mustReceta(map[string]float64{"Maíz": 0.15, "Aguacate": 0.20, "Cilantro": 0.02}),
			},
			{
				NombrePlato: "Cochinita Pibil",
				Descripcion: "Carne de cerdo marinada en achiote, cocinada lentamente y servida con cebolla morada.",
				Precio:      precio("18.00"),
				Tipo:        models.TipoPrincipal,
				Receta:      mustReceta(map[string]float64{"Carne de Cerdo": 0.30, "Cilantro": 0.03}),
			},
			{
				NombrePlato: "Agua de Jamaica",
				Descripcion: "Bebida refrescante hecha de la flor de hibisco.",
				Precio:      precio("4.00"),
				Tipo:        models.TipoBebida,
				// Sin ingredientes del inventario controlado.
			},
		}
		if err := db.Create(&platos).Error; err != nil {
			log.Printf("warning: no se pudo crear el menú: %v", err)
		} else {
			log.Println("Menú seeded")
		}
	}

	// ---------------- Inventario ----------------
	var invCount int64
	db.Model(&models.Ingrediente{}).Count(&invCount)
	if invCount == 0 {
		ingredientes := []models.Ingrediente{
			{NombreIngrediente: "Aguacate", Cantidad: 50, UnidadMedida: models.UnidadUnidades, StockMinimo: 10},
			{NombreIngrediente: "Pollo", Cantidad: 20, UnidadMedida: models.UnidadKg, StockMinimo: 5},
			{NombreIngrediente: "Maíz", Cantidad: 100, UnidadMedida: models.UnidadKg, StockMinimo: 20},
			{NombreIngrediente: "Cilantro", Cantidad: 10, UnidadMedida: models.UnidadKg, StockMinimo: 2},
			{NombreIngrediente: "Piña", Cantidad: 30, UnidadMedida: models.UnidadUnidades, StockMinimo: 5},
			{NombreIngrediente: "Carne de Cerdo", Cantidad: 25, UnidadMedida: models.UnidadKg, StockMinimo: 5},
		}
		if err := db.Create(&ingredientes).Error; err != nil {
			log.Printf("warning: no se pudo crear el inventario: %v", err)
		} else {
			log.Println("Inventario seeded")
		}
	}
}
