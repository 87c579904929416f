package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Transaccion struct {
	ID uint `gorm:"primaryKey" json:"id_transaccion"`

	CreatedAt time.Time `json:"-"`

	PedidoID         uint            `gorm:"column:pedido_id;index;not null" json:"id_pedido"`
	FechaTransaccion string          `gorm:"column:fecha_transaccion;type:varchar(10);not null" json:"fecha_transaccion"`
	MontoTotal       decimal.Decimal `gorm:"column:monto_total;type:decimal(10,2);not null" json:"monto_total"`
	MetodoPago       string          `gorm:"column:metodo_pago;type:varchar(30)" json:"metodo_pago,omitempty"`

	Pedido Pedido `gorm:"foreignKey:PedidoID;references:ID" json:"-"`
}

func (Transaccion) TableName() string { return "transacciones" }
