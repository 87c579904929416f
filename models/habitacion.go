package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Estados válidos de una habitación.
const (
	EstadoDisponible    = "Disponible"
	EstadoOcupada       = "Ocupada"
	EstadoMantenimiento = "Mantenimiento"
)

type Habitacion struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Número visible de la habitación, patrón "H" + 3 dígitos (H001, H107...).
	NumeroHabitacion string          `gorm:"column:numero_habitacion;uniqueIndex;type:varchar(10);not null" json:"numero_habitacion"`
	Tipo             string          `gorm:"column:tipo;type:varchar(50);not null" json:"tipo"`
	PrecioPorNoche   decimal.Decimal `gorm:"column:precio_por_noche;type:decimal(10,2);not null" json:"precio_por_noche"`
	Estado           string          `gorm:"column:estado;type:varchar(20);not null;default:'Disponible'" json:"estado"`
}

func (Habitacion) TableName() string { return "habitaciones" }
