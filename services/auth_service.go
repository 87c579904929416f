package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adrianconde128/Proyecto-Mayan-Sunset/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsuarioObligatorio    = &ErrorNegocio{Mensaje: "El nombre de usuario es obligatorio."}
	ErrContrasenaObligatoria = &ErrorNegocio{Mensaje: "La contraseña es obligatoria."}
	ErrCredenciales          = &ErrorNegocio{Mensaje: "Credenciales incorrectas. Verifique usuario y contraseña."}
	ErrTipoUsuarioInvalido   = &ErrorNegocio{Mensaje: "El tipo de usuario no es válido. Contacte al administrador."}
)

// MensajeAccesoConcedido se devuelve cuando el login es exitoso.
const MensajeAccesoConcedido = "Acceso concedido."

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// ValidarCredenciales verifica usuario y contraseña contra la tabla de
// personal. La contraseña almacenada es un hash bcrypt; el mensaje de
// error no distingue entre usuario inexistente y contraseña incorrecta.
func (s *AuthService) ValidarCredenciales(usuario, contrasena string) (*models.Usuario, error) {
	usuario = strings.TrimSpace(usuario)
	if usuario == "" {
		return nil, ErrUsuarioObligatorio
	}
	if contrasena == "" {
		return nil, ErrContrasenaObligatoria
	}

	var cuenta models.Usuario
	if err := s.DB.Where("usuario = ?", usuario).First(&cuenta).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredenciales
		}
		return nil, fmt.Errorf("error consultando usuario: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cuenta.Contrasena), []byte(contrasena)); err != nil {
		return nil, ErrCredenciales
	}

	switch cuenta.TipoUsuario {
	case models.UsuarioAdministrador, models.UsuarioEmpleado:
	default:
		return nil, ErrTipoUsuarioInvalido
	}

	return &cuenta, nil
}
