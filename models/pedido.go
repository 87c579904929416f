package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un pedido.
const (
	PedidoPendiente  = "Pendiente"
	PedidoCompletado = "Completado"
)

type Pedido struct {
	ID uint `gorm:"primaryKey" json:"id_pedido"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	HabitacionID uint   `gorm:"column:habitacion_id;index;not null" json:"id_habitacion"`
	FechaPedido  string `gorm:"column:fecha_pedido;type:varchar(10);not null" json:"fecha"`
	HoraPedido   string `gorm:"column:hora_pedido;type:varchar(8);not null" json:"hora"`
	Estado       string `gorm:"column:estado;type:varchar(20);not null" json:"estado"`

	Detalles []DetallePedido `gorm:"foreignKey:PedidoID" json:"detalles,omitempty"`
}

func (Pedido) TableName() string { return "pedidos" }

// DetallePedido congela el precio unitario al momento del pedido: cambios
// posteriores en el menú no alteran totales históricos.
type DetallePedido struct {
	ID uint `gorm:"primaryKey" json:"id_detalle_pedido"`

	PedidoID       uint            `gorm:"column:pedido_id;index;not null" json:"id_pedido"`
	PlatoID        uint            `gorm:"column:plato_id;index;not null" json:"id_plato"`
	Cantidad       int             `gorm:"column:cantidad;not null" json:"cantidad"`
	PrecioUnitario decimal.Decimal `gorm:"column:precio_unitario;type:decimal(10,2);not null" json:"precio_unitario"`

	Plato Plato `gorm:"foreignKey:PlatoID;references:ID" json:"-"`
}

func (DetallePedido) TableName() string { return "detalle_pedidos" }
