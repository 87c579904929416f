package models

import (
	"time"
)

// Huesped es el titular de una reserva, identificado por su DPI.
// DPI y NIT se guardan como texto: son identificadores, no cantidades.
type Huesped struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	DPI             string `gorm:"column:dpi;uniqueIndex;type:varchar(13);not null" json:"dpi"`
	PrimerNombre    string `gorm:"column:primer_nombre;type:varchar(25);not null" json:"primer_nombre"`
	SegundoNombre   string `gorm:"column:segundo_nombre;type:varchar(25)" json:"segundo_nombre,omitempty"`
	PrimerApellido  string `gorm:"column:primer_apellido;type:varchar(25);not null" json:"primer_apellido"`
	SegundoApellido string `gorm:"column:segundo_apellido;type:varchar(25)" json:"segundo_apellido,omitempty"`
	NIT             string `gorm:"column:nit;type:varchar(11)" json:"nit,omitempty"`
}

func (Huesped) TableName() string { return "huespedes" }
