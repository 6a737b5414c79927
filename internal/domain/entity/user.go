package entity

import "time"

// Roles válidos para User. El rol es el único eje de autorización.
const (
	RoleAdmin      = "admin"
	RoleAlmacenero = "almacenero"
	RoleUsuario    = "usuario"
)

// ValidRole indica si role es uno de los roles conocidos.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleAlmacenero || role == RoleUsuario
}

// User representa una cuenta del sistema.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt, nunca en texto plano después de persistir
	Role         string // admin, almacenero, usuario
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
