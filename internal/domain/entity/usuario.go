package entity

// Roles de usuario del sistema.
const (
	RolAdministrador = 1
	RolEmpleado      = 2
)

// Usuario del sistema. El email es único; el borrado es lógico.
type Usuario struct {
	ID           int64
	Nombre       string
	Telefono     string
	Email        string
	PasswordHash string
	RolID        int
	Rol          string // nombre del rol (join con roles_usuario)
	Oculto       bool
}

// TokenPassword token temporal de recuperación de contraseña.
// A lo sumo uno vivo por usuario: el anterior se borra antes de emitir
// uno nuevo.
type TokenPassword struct {
	UsuarioID int64
	Token     string
}
