package models

import "time"

// Tipos de usuario del personal.
const (
	UsuarioAdministrador = "Administrador"
	UsuarioEmpleado      = "Empleado"
)

type Usuario struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Usuario     string `gorm:"column:usuario;uniqueIndex;type:varchar(50);not null" json:"usuario"`
	Contrasena  string `gorm:"column:contrasena;type:varchar(100);not null" json:"-"`
	TipoUsuario string `gorm:"column:tipo_usuario;type:varchar(20);not null" json:"tipo_usuario"`
}

func (Usuario) TableName() string { return "usuarios" }
