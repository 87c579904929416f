package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/adrianconde128/Proyecto-Mayan-Sunset/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	formatoFecha   = "2006-01-02"
	maxLargoNombre = 25
	maxDigitosDPI  = 13
	maxDigitosNIT  = 11
)

var (
	patronHabitacion = regexp.MustCompile(`^H\d{3}$`)
	patronDPI        = regexp.MustCompile(`^\d{1,13}$`)
	patronNIT        = regexp.MustCompile(`^\d{1,11}$`)
)

// SolicitudReserva es el bundle de datos que llega del formulario de reservas.
type SolicitudReserva struct {
	NumeroHabitacion string `json:"numero_habitacion"`
	FechaIngreso     string `json:"fecha_ingreso"`
	FechaSalida      string `json:"fecha_salida"`
	DPI              string `json:"dpi"`
	NIT              string `json:"nit,omitempty"`
	PrimerNombre     string `json:"primer_nombre"`
	SegundoNombre    string `json:"segundo_nombre,omitempty"`
	PrimerApellido   string `json:"primer_apellido"`
	SegundoApellido  string `json:"segundo_apellido,omitempty"`
	Tipo             string `json:"tipo,omitempty"`
}

// ResumenReserva es la confirmación que se devuelve al guardar.
type ResumenReserva struct {
	IDReserva        uint            `json:"id_reserva"`
	CodigoReferencia string          `json:"codigo_referencia"`
	NumeroHabitacion string          `json:"numero_habitacion"`
	Noches           int             `json:"noches"`
	PrecioTotal      decimal.Decimal `json:"precio_total"`
	Mensaje          string          `json:"mensaje"`
}

type ReservaService struct {
	DB *gorm.DB
}

func NewReservaService(db *gorm.DB) *ReservaService {
	return &ReservaService{DB: db}
}

// CalcularNoches parsea ambas fechas y devuelve la diferencia en días.
// Falla con ErrFechasInvalidas si alguna no parsea o si la salida no es
// estrictamente posterior al ingreso.
func CalcularNoches(fechaIngreso, fechaSalida string) (int, error) {
	ingreso, err := time.Parse(formatoFecha, strings.TrimSpace(fechaIngreso))
	if err != nil {
		return 0, ErrFechasInvalidas
	}
	salida, err := time.Parse(formatoFecha, strings.TrimSpace(fechaSalida))
	if err != nil {
		return 0, ErrFechasInvalidas
	}
	if !salida.After(ingreso) {
		return 0, ErrFechasInvalidas
	}
	return int(salida.Sub(ingreso).Hours() / 24), nil
}

func validarNombre(valor, etiqueta string) error {
	if len([]rune(valor)) > maxLargoNombre {
		return negocio("%s supera el máximo de %d caracteres", etiqueta, maxLargoNombre)
	}
	return nil
}

func validarSolicitud(req *SolicitudReserva) error {
	if !patronHabitacion.MatchString(req.NumeroHabitacion) {
		return ErrHabitacionInvalida
	}

	if err := validarNombre(req.PrimerNombre, "Primer nombre"); err != nil {
		return err
	}
	if err := validarNombre(req.SegundoNombre, "Segundo nombre"); err != nil {
		return err
	}
	if err := validarNombre(req.PrimerApellido, "Primer apellido"); err != nil {
		return err
	}
	if err := validarNombre(req.SegundoApellido, "Segundo apellido"); err != nil {
		return err
	}

	// El DPI es obligatorio: resuelve al huésped.
	if !patronDPI.MatchString(req.DPI) {
		return negocio("DPI inválido: debe contener solo dígitos, máximo %d", maxDigitosDPI)
	}
	if req.NIT != "" && !patronNIT.MatchString(req.NIT) {
		return negocio("NIT inválido: debe contener solo dígitos, máximo %d", maxDigitosNIT)
	}
	return nil
}

// CrearReserva valida la solicitud, resuelve o crea al huésped, verifica
// disponibilidad, calcula el total y guarda la reserva. Todo el trabajo
// contra la base corre en una sola transacción: si cualquier paso falla,
// tampoco persiste el huésped recién creado.
func (s *ReservaService) CrearReserva(req SolicitudReserva) (*ResumenReserva, error) {
	req.NumeroHabitacion = strings.TrimSpace(req.NumeroHabitacion)
	req.DPI = strings.TrimSpace(req.DPI)
	req.NIT = strings.TrimSpace(req.NIT)

	noches, err := CalcularNoches(req.FechaIngreso, req.FechaSalida)
	if err != nil {
		return nil, err
	}
	if err := validarSolicitud(&req); err != nil {
		return nil, err
	}

	ingreso, _ := time.Parse(formatoFecha, strings.TrimSpace(req.FechaIngreso))
	salida, _ := time.Parse(formatoFecha, strings.TrimSpace(req.FechaSalida))

	var resumen ResumenReserva

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var habitacion models.Habitacion
		if err := tx.Where("numero_habitacion = ?", req.NumeroHabitacion).First(&habitacion).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHabitacionInvalida
			}
			return fmt.Errorf("error consultando habitación: %w", err)
		}

		huesped, err := s.resolverHuesped(tx, &req)
		if err != nil {
			return err
		}

		// Solape de intervalos semiabiertos [ingreso, salida): una reserva
		// existente choca si empieza antes de la salida pedida y termina
		// después del ingreso pedido. Fechas adyacentes no chocan.
		var solapadas int64
		if err := tx.Model(&models.Reserva{}).
			Where("habitacion_id = ? AND fecha_ingreso < ? AND fecha_salida > ?", habitacion.ID, salida, ingreso).
			Count(&solapadas).Error; err != nil {
			return fmt.Errorf("error verificando disponibilidad: %w", err)
		}
		if solapadas > 0 {
			return ErrHabitacionNoDisponible
		}

		tipo := req.Tipo
		if tipo == "" {
			tipo = habitacion.Tipo
		}
		precioNoche, err := precioPorTipo(tx, tipo)
		if err != nil {
			return err
		}

		total := precioNoche.Mul(decimal.NewFromInt(int64(noches))).Round(2)

		reserva := models.Reserva{
			CodigoReferencia: uuid.NewString(),
			HuespedID:        huesped.ID,
			HabitacionID:     habitacion.ID,
			FechaIngreso:     ingreso,
			FechaSalida:      salida,
			Noches:           noches,
			PrecioTotal:      total,
			Estado:           "Confirmada",
		}
		if err := tx.Create(&reserva).Error; err != nil {
			if esConflictoDeUnicidad(err) {
				return ErrHabitacionNoDisponible
			}
			return fmt.Errorf("error guardando reserva: %w", err)
		}

		resumen = ResumenReserva{
			IDReserva:        reserva.ID,
			CodigoReferencia: reserva.CodigoReferencia,
			NumeroHabitacion: habitacion.NumeroHabitacion,
			Noches:           noches,
			PrecioTotal:      total,
			Mensaje:          fmt.Sprintf("Reserva creada con éxito. Total: %s", total.StringFixed(2)),
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return &resumen, nil
}

// esConflictoDeUnicidad reconoce la violación del índice único de reservas.
// Con TranslateError activo los drivers la reportan como ErrDuplicatedKey;
// el chequeo de texto queda solo como respaldo.
func esConflictoDeUnicidad(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") || strings.Contains(lc, "constraint")
}

// resolverHuesped busca al huésped por DPI y lo reutiliza; si no existe lo
// crea con los datos de la solicitud. Pedir dos veces con el mismo DPI
// nunca produce dos filas.
func (s *ReservaService) resolverHuesped(tx *gorm.DB, req *SolicitudReserva) (*models.Huesped, error) {
	var huesped models.Huesped
	err := tx.Where("dpi = ?", req.DPI).First(&huesped).Error
	if err == nil {
		return &huesped, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error consultando huésped: %w", err)
	}

	huesped = models.Huesped{
		DPI:             req.DPI,
		PrimerNombre:    strings.TrimSpace(req.PrimerNombre),
		SegundoNombre:   strings.TrimSpace(req.SegundoNombre),
		PrimerApellido:  strings.TrimSpace(req.PrimerApellido),
		SegundoApellido: strings.TrimSpace(req.SegundoApellido),
		NIT:             req.NIT,
	}
	if err := tx.Create(&huesped).Error; err != nil {
		return nil, fmt.Errorf("error creando huésped: %w", err)
	}
	return &huesped, nil
}

func precioPorTipo(tx *gorm.DB, tipo string) (decimal.Decimal, error) {
	var habitacion models.Habitacion
	err := tx.Where("tipo = ?", tipo).Order("id").First(&habitacion).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, ErrTipoNoEncontrado
		}
		return decimal.Zero, fmt.Errorf("error consultando precio por tipo: %w", err)
	}
	return habitacion.PrecioPorNoche, nil
}

// ObtenerTiposHabitacion lista los tipos distintos, para poblar el combo
// del formulario.
func (s *ReservaService) ObtenerTiposHabitacion() ([]string, error) {
	var tipos []string
	if err := s.DB.Model(&models.Habitacion{}).
		Distinct("tipo").
		Order("tipo").
		Pluck("tipo", &tipos).Error; err != nil {
		return nil, fmt.Errorf("error listando tipos de habitación: %w", err)
	}
	return tipos, nil
}

// ObtenerPrecioPorTipo expone el precio por noche de un tipo.
func (s *ReservaService) ObtenerPrecioPorTipo(tipo string) (decimal.Decimal, error) {
	return precioPorTipo(s.DB, tipo)
}

// ListarNumerosHabitacion lista los números de habitación ordenados.
func (s *ReservaService) ListarNumerosHabitacion() ([]string, error) {
	var numeros []string
	if err := s.DB.Model(&models.Habitacion{}).
		Order("numero_habitacion").
		Pluck("numero_habitacion", &numeros).Error; err != nil {
		return nil, fmt.Errorf("error listando números de habitación: %w", err)
	}
	return numeros, nil
}
