package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/adrianconde128/Proyecto-Mayan-Sunset/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// porcentajeServicio es el recargo por servicio a la habitación.
var porcentajeServicio = decimal.NewFromFloat(0.10)

// ItemPedido es una línea del pedido tal como llega del cliente.
type ItemPedido struct {
	IDPlato  uint `json:"id_plato"`
	Cantidad int  `json:"cantidad"`
}

// ResumenPedido es el comprobante de un pedido procesado.
type ResumenPedido struct {
	IDPedido      uint                   `json:"id_pedido"`
	IDTransaccion uint                   `json:"id_transaccion"`
	Fecha         string                 `json:"fecha"`
	Hora          string                 `json:"hora"`
	Subtotal      decimal.Decimal        `json:"subtotal"`
	CargoServicio decimal.Decimal        `json:"cargo_servicio"`
	Total         decimal.Decimal        `json:"total"`
	Detalles      []models.DetallePedido `json:"detalles"`
	Advertencias  []string               `json:"advertencias,omitempty"`
}

type RestauranteService struct {
	DB *gorm.DB
}

func NewRestauranteService(db *gorm.DB) *RestauranteService {
	return &RestauranteService{DB: db}
}

// ProcesarPedido registra el pedido completo o nada: líneas, descuento de
// inventario, cobro del recargo y transacción corren en una sola
// transacción de base de datos. Si un ingrediente no alcanza, todo el
// pedido se revierte y el inventario queda intacto.
func (s *RestauranteService) ProcesarPedido(idHabitacion uint, items []ItemPedido, metodoPago string) (*ResumenPedido, error) {
	if len(items) == 0 {
		return nil, ErrPedidoSinItems
	}
	for _, item := range items {
		if item.Cantidad <= 0 {
			return nil, negocio("Cantidad inválida para el plato con id %d.", item.IDPlato)
		}
	}

	ahora := time.Now()
	var resumen ResumenPedido

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var habitacion models.Habitacion
		if err := tx.First(&habitacion, idHabitacion).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHabitacionInvalida
			}
			return fmt.Errorf("error consultando habitación: %w", err)
		}

		pedido := models.Pedido{
			HabitacionID: idHabitacion,
			FechaPedido:  ahora.Format("2006-01-02"),
			HoraPedido:   ahora.Format("15:04:05"),
			Estado:       models.PedidoPendiente,
		}
		if err := tx.Create(&pedido).Error; err != nil {
			return fmt.Errorf("error creando pedido: %w", err)
		}

		subtotal := decimal.Zero
		detalles := make([]models.DetallePedido, 0, len(items))
		for _, item := range items {
			var plato models.Plato
			if err := tx.First(&plato, item.IDPlato).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return negocio("Plato con id %d no existe.", item.IDPlato)
				}
				return fmt.Errorf("error consultando plato: %w", err)
			}

			detalle := models.DetallePedido{
				PedidoID:       pedido.ID,
				PlatoID:        plato.ID,
				Cantidad:       item.Cantidad,
				PrecioUnitario: plato.Precio,
			}
			if err := tx.Create(&detalle).Error; err != nil {
				return fmt.Errorf("error creando detalle de pedido: %w", err)
			}
			detalles = append(detalles, detalle)

			subtotal = subtotal.Add(plato.Precio.Mul(decimal.NewFromInt(int64(item.Cantidad))))

			if err := descontarReceta(tx, &plato, item.Cantidad); err != nil {
				return err
			}
		}

		advertencias, err := advertenciasBajoStock(tx)
		if err != nil {
			return err
		}

		cargo := subtotal.Mul(porcentajeServicio).Round(2)
		total := subtotal.Add(cargo)

		transaccion := models.Transaccion{
			PedidoID:         pedido.ID,
			FechaTransaccion: ahora.Format("2006-01-02"),
			MontoTotal:       total,
			MetodoPago:       metodoPago,
		}
		if err := tx.Create(&transaccion).Error; err != nil {
			return fmt.Errorf("error creando transacción: %w", err)
		}

		if err := tx.Model(&pedido).Update("estado", models.PedidoCompletado).Error; err != nil {
			return fmt.Errorf("error completando pedido: %w", err)
		}

		resumen = ResumenPedido{
			IDPedido:      pedido.ID,
			IDTransaccion: transaccion.ID,
			Fecha:         pedido.FechaPedido,
			Hora:          pedido.HoraPedido,
			Subtotal:      subtotal.Round(2),
			CargoServicio: cargo,
			Total:         total.Round(2),
			Detalles:      detalles,
			Advertencias:  advertencias,
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return &resumen, nil
}

// descontarReceta descuenta del inventario los ingredientes del plato,
// multiplicados por la cantidad servida. Los ingredientes por peso se
// descuentan en fracciones; los contados por unidad se redondean al
// entero más cercano.
func descontarReceta(tx *gorm.DB, plato *models.Plato, cantidad int) error {
	if len(plato.Receta) == 0 {
		return nil
	}

	var receta map[string]float64
	if err := json.Unmarshal(plato.Receta, &receta); err != nil {
		return fmt.Errorf("receta ilegible para '%s': %w", plato.NombrePlato, err)
	}

	for nombre, consumoUnitario := range receta {
		var ingrediente models.Ingrediente
		if err := tx.Where("nombre_ingrediente = ?", nombre).First(&ingrediente).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return negocio("Ingrediente requerido no encontrado: %s", nombre)
			}
			return fmt.Errorf("error consultando ingrediente: %w", err)
		}

		consumo := consumoUnitario * float64(cantidad)
		if ingrediente.UnidadMedida == models.UnidadUnidades {
			consumo = math.Round(consumo)
		}

		restante := ingrediente.Cantidad - consumo
		if restante < 0 {
			return negocio("Stock insuficiente para '%s'. Operación cancelada.", plato.NombrePlato)
		}

		if err := tx.Model(&ingrediente).Update("cantidad", restante).Error; err != nil {
			return fmt.Errorf("error actualizando inventario: %w", err)
		}
	}
	return nil
}

// advertenciasBajoStock arma los avisos de reposición para los
// ingredientes que quedaron bajo su mínimo.
func advertenciasBajoStock(tx *gorm.DB) ([]string, error) {
	bajos, err := ingredientesBajoStock(tx)
	if err != nil {
		return nil, err
	}

	var avisos []string
	for _, ing := range bajos {
		avisos = append(avisos, fmt.Sprintf("Stock bajo: %s (%g %s < mínimo %g)",
			ing.NombreIngrediente, ing.Cantidad, ing.UnidadMedida, ing.StockMinimo))
	}
	return avisos, nil
}

func ingredientesBajoStock(tx *gorm.DB) ([]models.Ingrediente, error) {
	var bajos []models.Ingrediente
	if err := tx.Where("cantidad < stock_minimo").Order("nombre_ingrediente").Find(&bajos).Error; err != nil {
		return nil, fmt.Errorf("error consultando inventario bajo: %w", err)
	}
	return bajos, nil
}

// ListarMenuPorTipo devuelve el menú, opcionalmente filtrado por tipo.
func (s *RestauranteService) ListarMenuPorTipo(tipo string) ([]models.Plato, error) {
	query := s.DB.Order("id")
	if tipo != "" {
		query = query.Where("tipo = ?", tipo)
	}

	var platos []models.Plato
	if err := query.Find(&platos).Error; err != nil {
		return nil, fmt.Errorf("error listando menú: %w", err)
	}
	return platos, nil
}

// ListarInventario devuelve todas las filas del inventario controlado.
func (s *RestauranteService) ListarInventario() ([]models.Ingrediente, error) {
	var ingredientes []models.Ingrediente
	if err := s.DB.Order("nombre_ingrediente").Find(&ingredientes).Error; err != nil {
		return nil, fmt.Errorf("error listando inventario: %w", err)
	}
	return ingredientes, nil
}

// VerificarBajoStock lista los ingredientes por debajo de su mínimo.
func (s *RestauranteService) VerificarBajoStock() ([]models.Ingrediente, error) {
	return ingredientesBajoStock(s.DB)
}
