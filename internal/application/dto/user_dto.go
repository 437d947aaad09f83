package dto

// CreateUsuarioRequest alta de usuario del sistema. Si no viene rol se
// asigna empleado.
type CreateUsuarioRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Telefono string `json:"telefono"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	RolID    int    `json:"rol"`
}

// UpdateUsuarioRequest modificación de usuario (nunca toca la contraseña).
type UpdateUsuarioRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Telefono string `json:"telefono"`
	Email    string `json:"email" validate:"required,email"`
}

// UsuarioResponse usuario tal como viaja al frontend. Nunca incluye el
// hash de contraseña.
type UsuarioResponse struct {
	ID       int64  `json:"id_usuario"`
	Nombre   string `json:"nombre_usuario"`
	Telefono string `json:"telefono_usuario"`
	Email    string `json:"email_usuario"`
	RolID    int    `json:"id_rol"`
	Rol      string `json:"rol"`
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginUserResponse identidad pública del usuario logueado.
type LoginUserResponse struct {
	Nombre string `json:"nombre_usuario"`
	Rol    string `json:"userRole"`
}

// PasswordResetRequest pedido de token de recuperación.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordChangeRequest cambio de contraseña con token de recuperación.
type PasswordChangeRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}
