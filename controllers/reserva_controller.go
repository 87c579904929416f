package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/adrianconde128/Proyecto-Mayan-Sunset/services"
	"github.com/adrianconde128/Proyecto-Mayan-Sunset/utils"

	"github.com/gin-gonic/gin"
)

type ReservaController struct {
	ReservaSvc *services.ReservaService
}

func NewReservaController(svc *services.ReservaService) *ReservaController {
	return &ReservaController{ReservaSvc: svc}
}

// responderError mapea el error al status HTTP: los errores de negocio
// llegan al cliente con su mensaje; cualquier otro se registra y se
// responde con un mensaje genérico.
func responderError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrHabitacionNoDisponible) {
		utils.JSONError(c, http.StatusConflict, err.Error())
		return
	}

	var negocio *services.ErrorNegocio
	if errors.As(err, &negocio) {
		utils.JSONError(c, http.StatusBadRequest, negocio.Mensaje)
		return
	}

	log.Printf("error interno: %v", err)
	utils.JSONError(c, http.StatusInternalServerError, "Error de base de datos")
}

// CrearReserva maneja POST /api/reservas.
func (rc *ReservaController) CrearReserva(c *gin.Context) {
	var req services.SolicitudReserva
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Solicitud mal formada")
		return
	}

	resumen, err := rc.ReservaSvc.CrearReserva(req)
	if err != nil {
		responderError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, resumen)
}
