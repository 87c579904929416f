package services

import "fmt"

// ErrorNegocio es una falla recuperable de validación o de dominio: su
// mensaje se muestra tal cual al usuario. Cualquier otro error que salga
// de un servicio es una falla de infraestructura (conexión, constraint)
// y se reporta de forma genérica.
type ErrorNegocio struct {
	Mensaje string
}

func (e *ErrorNegocio) Error() string { return e.Mensaje }

func negocio(format string, args ...interface{}) *ErrorNegocio {
	return &ErrorNegocio{Mensaje: fmt.Sprintf(format, args...)}
}

// Mensajes fijos del flujo de reservas. El texto exacto es requisito de
// negocio, no un detalle de implementación.
var (
	ErrFechasInvalidas        = &ErrorNegocio{Mensaje: "Fechas inválidas"}
	ErrHabitacionInvalida     = &ErrorNegocio{Mensaje: "Número de habitación invalido"}
	ErrHabitacionNoDisponible = &ErrorNegocio{Mensaje: "Habitación no disponible"}
	ErrTipoNoEncontrado       = &ErrorNegocio{Mensaje: "Tipo de habitación no encontrado"}
)

// Mensajes fijos del flujo de restaurante.
var (
	ErrPedidoSinItems = &ErrorNegocio{Mensaje: "El pedido no tiene ítems."}
)
