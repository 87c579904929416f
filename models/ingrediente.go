package models

import "time"

// Unidades de medida del inventario.
const (
	UnidadKg       = "kg"
	UnidadUnidades = "unidades"
)

// Ingrediente es una fila del inventario controlado. Cantidad es float:
// los ingredientes por peso (kg) se descuentan en fracciones, los contados
// por unidad se redondean al entero más cercano al consumir.
type Ingrediente struct {
	ID uint `gorm:"primaryKey" json:"id_ingrediente"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	NombreIngrediente string  `gorm:"column:nombre_ingrediente;uniqueIndex;type:varchar(100);not null" json:"nombre_ingrediente"`
	Cantidad          float64 `gorm:"column:cantidad;not null" json:"cantidad"`
	UnidadMedida      string  `gorm:"column:unidad_medida;type:varchar(20);not null" json:"unidad_medida"`
	StockMinimo       float64 `gorm:"column:stock_minimo;not null" json:"stock_minimo"`
}

func (Ingrediente) TableName() string { return "inventario" }
