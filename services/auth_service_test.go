package services

import (
	"testing"

	"github.com/adrianconde128/Proyecto-Mayan-Sunset/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestValidarCredenciales(t *testing.T) {
	svc := NewAuthService(baseDePrueba(t))

	cuenta, err := svc.ValidarCredenciales("admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", cuenta.Usuario)
	assert.Equal(t, models.UsuarioAdministrador, cuenta.TipoUsuario)

	cuenta, err = svc.ValidarCredenciales("empleado1", "empleado123")
	require.NoError(t, err)
	assert.Equal(t, models.UsuarioEmpleado, cuenta.TipoUsuario)
}

func TestValidarCredencialesCamposVacios(t *testing.T) {
	svc := NewAuthService(baseDePrueba(t))

	_, err := svc.ValidarCredenciales("", "admin123")
	assert.ErrorIs(t, err, ErrUsuarioObligatorio)

	_, err = svc.ValidarCredenciales("   ", "admin123")
	assert.ErrorIs(t, err, ErrUsuarioObligatorio)

	_, err = svc.ValidarCredenciales("admin", "")
	assert.ErrorIs(t, err, ErrContrasenaObligatoria)
}

func TestValidarCredencialesIncorrectas(t *testing.T) {
	svc := NewAuthService(baseDePrueba(t))

	// El mensaje no distingue usuario inexistente de contraseña mala.
	_, err := svc.ValidarCredenciales("nadie", "admin123")
	assert.ErrorIs(t, err, ErrCredenciales)

	_, err = svc.ValidarCredenciales("admin", "incorrecta")
	assert.ErrorIs(t, err, ErrCredenciales)
}

func TestValidarCredencialesTipoDesconocido(t *testing.T) {
	db := baseDePrueba(t)
	svc := NewAuthService(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("clave123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Usuario{
		Usuario:     "gerente",
		Contrasena:  string(hash),
		TipoUsuario: "Gerente",
	}).Error)

	_, err = svc.ValidarCredenciales("gerente", "clave123")
	assert.ErrorIs(t, err, ErrTipoUsuarioInvalido)
}
