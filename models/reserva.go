package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Reserva struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CodigoReferencia string `gorm:"column:codigo_referencia;size:64" json:"codigo_referencia,omitempty"`

	// El índice compuesto cierra en el esquema la ventana entre la
	// verificación de disponibilidad y el insert: dos reservas idénticas
	// (mismo huésped, misma habitación, misma fecha de ingreso) no pueden
	// coexistir aunque ambas pasen el chequeo de solape.
	HuespedID    uint      `gorm:"column:huesped_id;index;not null;uniqueIndex:idx_reserva_unica" json:"huesped_id"`
	HabitacionID uint      `gorm:"column:habitacion_id;index;not null;uniqueIndex:idx_reserva_unica" json:"habitacion_id"`
	FechaIngreso time.Time `gorm:"column:fecha_ingreso;not null;uniqueIndex:idx_reserva_unica" json:"fecha_ingreso"`
	FechaSalida  time.Time `gorm:"column:fecha_salida;not null" json:"fecha_salida"`

	Noches      int             `gorm:"column:noches" json:"noches"`
	PrecioTotal decimal.Decimal `gorm:"column:precio_total;type:decimal(10,2);not null" json:"precio_total"`
	Estado      string          `gorm:"column:estado;size:64" json:"estado,omitempty"`

	Huesped    Huesped    `gorm:"foreignKey:HuespedID;references:ID" json:"huesped,omitempty"`
	Habitacion Habitacion `gorm:"foreignKey:HabitacionID;references:ID" json:"habitacion,omitempty"`
}

func (Reserva) TableName() string { return "reservas" }
