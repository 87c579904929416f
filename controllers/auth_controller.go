package controllers

import (
	"net/http"

	"github.com/adrianconde128/Proyecto-Mayan-Sunset/services"
	"github.com/adrianconde128/Proyecto-Mayan-Sunset/utils"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Usuario    string `json:"usuario"`
	Contrasena string `json:"contrasena"`
}

type AuthController struct {
	AuthSvc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{AuthSvc: svc}
}

// Login maneja POST /api/auth/login.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Solicitud mal formada")
		return
	}

	cuenta, err := ac.AuthSvc.ValidarCredenciales(req.Usuario, req.Contrasena)
	if err != nil {
		responderError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"mensaje":      services.MensajeAccesoConcedido,
		"usuario":      cuenta.Usuario,
		"tipo_usuario": cuenta.TipoUsuario,
	})
}
