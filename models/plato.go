package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Tipos de plato del menú.
const (
	TipoEntrada   = "Entrada"
	TipoPrincipal = "Principal"
	TipoBebida    = "Bebida"
)

// Plato es un ítem del menú del restaurante. La receta vive en la misma
// fila como JSON (nombre de ingrediente -> consumo por unidad servida);
// un plato sin receta no consume inventario controlado.
type Plato struct {
	ID uint `gorm:"primaryKey" json:"id_plato"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	NombrePlato string          `gorm:"column:nombre_plato;type:varchar(100);not null" json:"nombre_plato"`
	Descripcion string          `gorm:"column:descripcion;type:text" json:"descripcion,omitempty"`
	Precio      decimal.Decimal `gorm:"column:precio;type:decimal(10,2);not null" json:"precio"`
	Tipo        string          `gorm:"column:tipo;type:varchar(20);not null" json:"tipo"`
	Receta      datatypes.JSON  `gorm:"column:receta" json:"receta,omitempty"`
}

func (Plato) TableName() string { return "menu" }
