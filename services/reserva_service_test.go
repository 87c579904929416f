package services

import (
	"strings"
	"testing"

	"github.com/adrianconde128/Proyecto-Mayan-Sunset/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solicitudValida() SolicitudReserva {
	return SolicitudReserva{
		NumeroHabitacion: "H001",
		FechaIngreso:     "2025-12-01",
		FechaSalida:      "2025-12-05",
		DPI:              "1234567890101",
		NIT:              "1234567",
		PrimerNombre:     "María",
		SegundoNombre:    "José",
		PrimerApellido:   "López",
		SegundoApellido:  "García",
	}
}

func TestCalcularNoches(t *testing.T) {
	noches, err := CalcularNoches("2025-12-01", "2025-12-05")
	require.NoError(t, err)
	assert.Equal(t, 4, noches)

	noches, err = CalcularNoches("2025-12-01", "2025-12-02")
	require.NoError(t, err)
	assert.Equal(t, 1, noches)
}

func TestCalcularNochesFechasInvalidas(t *testing.T) {
	casos := []struct {
		nombre  string
		ingreso string
		salida  string
	}{
		{"formato ilegible", "01/12/2025", "2025-12-05"},
		{"salida ilegible", "2025-12-01", "mañana"},
		{"salida igual al ingreso", "2025-12-01", "2025-12-01"},
		{"salida anterior al ingreso", "2025-12-05", "2025-12-01"},
	}
	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			_, err := CalcularNoches(caso.ingreso, caso.salida)
			assert.ErrorIs(t, err, ErrFechasInvalidas)
		})
	}
}

func TestCrearReserva(t *testing.T) {
	svc := NewReservaService(baseDePrueba(t))

	resumen, err := svc.CrearReserva(solicitudValida())
	require.NoError(t, err)

	assert.Equal(t, "H001", resumen.NumeroHabitacion)
	assert.Equal(t, 4, resumen.Noches)
	assert.Equal(t, "600.00", resumen.PrecioTotal.StringFixed(2))
	assert.Equal(t, "Reserva creada con éxito. Total: 600.00", resumen.Mensaje)
	assert.NotEmpty(t, resumen.CodigoReferencia)

	var reserva models.Reserva
	require.NoError(t, svc.DB.First(&reserva, resumen.IDReserva).Error)
	assert.Equal(t, "Confirmada", reserva.Estado)
	assert.Equal(t, "600.00", reserva.PrecioTotal.StringFixed(2))
}

func TestCrearReservaHabitacionInvalida(t *testing.T) {
	svc := NewReservaService(baseDePrueba(t))

	// Formato incorrecto.
	req := solicitudValida()
	req.NumeroHabitacion = "A101"
	_, err := svc.CrearReserva(req)
	assert.ErrorIs(t, err, ErrHabitacionInvalida)

	// Formato correcto pero sin fila en la base.
	req = solicitudValida()
	req.NumeroHabitacion = "H999"
	_, err = svc.CrearReserva(req)
	assert.ErrorIs(t, err, ErrHabitacionInvalida)
}

func TestCrearReservaNombresLargos(t *testing.T) {
	svc := NewReservaService(baseDePrueba(t))

	req := solicitudValida()
	req.PrimerNombre = strings.Repeat("a", 26)
	_, err := svc.CrearReserva(req)
	require.Error(t, err)

	var negocio *ErrorNegocio
	require.ErrorAs(t, err, &negocio)
	assert.Equal(t, "Primer nombre supera el máximo de 25 caracteres", negocio.Mensaje)

	// 25 exactos pasa.
	req.PrimerNombre = strings.Repeat("a", 25)
	_, err = svc.CrearReserva(req)
	assert.NoError(t, err)
}

func TestCrearReservaDocumentos(t *testing.T) {
	svc := NewReservaService(baseDePrueba(t))

	req := solicitudValida()
	req.DPI = ""
	_, err := svc.CrearReserva(req)
	assert.Error(t, err)

	req = solicitudValida()
	req.DPI = "12345678901234" // 14 dígitos
	_, err = svc.CrearReserva(req)
	assert.Error(t, err)

	req = solicitudValida()
	req.DPI = "123ABC"
	_, err = svc.CrearReserva(req)
	assert.Error(t, err)

	req = solicitudValida()
	req.NIT = "123456K"
	_, err = svc.CrearReserva(req)
	assert.Error(t, err)

	// NIT vacío es válido: es opcional.
	req = solicitudValida()
	req.NIT = ""
	_, err = svc.CrearReserva(req)
	assert.NoError(t, err)
}

func TestCrearReservaHuespedIdempotente(t *testing.T) {
	svc := NewReservaService(baseDePrueba(t))

	req := solicitudValida()
	_, err := svc.CrearReserva(req)
	require.NoError(t, err)

	// Mismo DPI, otra habitación: reutiliza al huésped.
	req.NumeroHabitacion = "H003"
	_, err = svc.CrearReserva(req)
	require.NoError(t, err)

	var huespedes int64
	require.NoError(t, svc.DB.Model(&models.Huesped{}).Count(&huespedes).Error)
	assert.Equal(t, int64(1), huespedes)
}

func TestCrearReservaSolape(t *testing.T) {
	svc := NewReservaService(baseDePrueba(t))

	primera := solicitudValida() // H001, 2025-12-01 a 2025-12-05
	_, err := svc.CrearReserva(primera)
	require.NoError(t, err)

	// Solapa en el medio.
	segunda := solicitudValida()
	segunda.DPI = "2222222222222"
	segunda.FechaIngreso = "2025-12-03"
	segunda.FechaSalida = "2025-12-06"
	_, err = svc.CrearReserva(segunda)
	assert.ErrorIs(t, err, ErrHabitacionNoDisponible)

	// Contiene por completo a la existente.
	tercera := solicitudValida()
	tercera.DPI = "3333333333333"
	tercera.FechaIngreso = "2025-11-30"
	tercera.FechaSalida = "2025-12-10"
	_, err = svc.CrearReserva(tercera)
	assert.ErrorIs(t, err, ErrHabitacionNoDisponible)

	// Adyacente: entra el mismo día que la otra sale. Debe pasar.
	cuarta := solicitudValida()
	cuarta.DPI = "4444444444444"
	cuarta.FechaIngreso = "2025-12-05"
	cuarta.FechaSalida = "2025-12-07"
	_, err = svc.CrearReserva(cuarta)
	assert.NoError(t, err)
}

func TestCrearReservaSinFilasParciales(t *testing.T) {
	svc := NewReservaService(baseDePrueba(t))

	_, err := svc.CrearReserva(solicitudValida())
	require.NoError(t, err)

	// Huésped nuevo intenta una habitación ocupada: la reserva falla y
	// el huésped recién creado tampoco queda persistido.
	req := solicitudValida()
	req.DPI = "9999999999999"
	req.FechaIngreso = "2025-12-02"
	req.FechaSalida = "2025-12-04"
	_, err = svc.CrearReserva(req)
	require.ErrorIs(t, err, ErrHabitacionNoDisponible)

	var huespedes int64
	require.NoError(t, svc.DB.Model(&models.Huesped{}).Count(&huespedes).Error)
	assert.Equal(t, int64(1), huespedes)
}

func TestCrearReservaConflictoDeIndice(t *testing.T) {
	svc := NewReservaService(baseDePrueba(t))

	resumen, err := svc.CrearReserva(solicitudValida())
	require.NoError(t, err)

	// Una reserva borrada en lógico ya no cuenta para el solape, pero su
	// fila sigue ocupando el índice único: el choque en el insert se
	// reporta igual que una habitación ocupada.
	require.NoError(t, svc.DB.Delete(&models.Reserva{}, resumen.IDReserva).Error)

	_, err = svc.CrearReserva(solicitudValida())
	assert.ErrorIs(t, err, ErrHabitacionNoDisponible)
}

func TestCrearReservaTipoExplicito(t *testing.T) {
	svc := NewReservaService(baseDePrueba(t))

	// El tipo pedido manda sobre el tipo de la habitación.
	req := solicitudValida()
	req.Tipo = "Suite"
	resumen, err := svc.CrearReserva(req)
	require.NoError(t, err)
	assert.Equal(t, "1800.00", resumen.PrecioTotal.StringFixed(2))

	req = solicitudValida()
	req.NumeroHabitacion = "H003"
	req.Tipo = "Presidencial"
	_, err = svc.CrearReserva(req)
	assert.ErrorIs(t, err, ErrTipoNoEncontrado)
}

func TestCatalogosDeHabitaciones(t *testing.T) {
	svc := NewReservaService(baseDePrueba(t))

	tipos, err := svc.ObtenerTiposHabitacion()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Sencilla", "Doble", "Suite", "Familiar", "Individual"}, tipos)

	precioSuite, err := svc.ObtenerPrecioPorTipo("Suite")
	require.NoError(t, err)
	assert.Equal(t, "450.00", precioSuite.StringFixed(2))

	_, err = svc.ObtenerPrecioPorTipo("Presidencial")
	assert.ErrorIs(t, err, ErrTipoNoEncontrado)

	numeros, err := svc.ListarNumerosHabitacion()
	require.NoError(t, err)
	assert.Len(t, numeros, 8)
	assert.Equal(t, "H001", numeros[0])
}
