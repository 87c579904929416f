package controllers

import (
	"net/http"
	"strings"

	"github.com/adrianconde128/Proyecto-Mayan-Sunset/services"
	"github.com/adrianconde128/Proyecto-Mayan-Sunset/utils"

	"github.com/gin-gonic/gin"
)

type HabitacionController struct {
	ReservaSvc *services.ReservaService
}

func NewHabitacionController(svc *services.ReservaService) *HabitacionController {
	return &HabitacionController{ReservaSvc: svc}
}

// ListarHabitaciones maneja GET /api/habitaciones.
func (hc *HabitacionController) ListarHabitaciones(c *gin.Context) {
	numeros, err := hc.ReservaSvc.ListarNumerosHabitacion()
	if err != nil {
		responderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, numeros)
}

// ListarTipos maneja GET /api/habitaciones/tipos.
func (hc *HabitacionController) ListarTipos(c *gin.Context) {
	tipos, err := hc.ReservaSvc.ObtenerTiposHabitacion()
	if err != nil {
		responderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tipos)
}

// PrecioPorTipo maneja GET /api/habitaciones/precio?tipo=Doble.
func (hc *HabitacionController) PrecioPorTipo(c *gin.Context) {
	tipo := strings.TrimSpace(c.Query("tipo"))
	if tipo == "" {
		utils.JSONError(c, http.StatusBadRequest, "El parámetro 'tipo' es obligatorio")
		return
	}

	precio, err := hc.ReservaSvc.ObtenerPrecioPorTipo(tipo)
	if err != nil {
		responderError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"tipo": tipo, "precio_por_noche": precio})
}
