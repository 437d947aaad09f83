package users

import (
	"context"

	"github.com/gestorpyme/gestor-api/internal/domain/repository"
)

// AuditTxRunner ejecuta una mutación de usuario junto con su fila de
// auditoría en la misma transacción.
type AuditTxRunner interface {
	RunAudited(ctx context.Context, fn func(
		clienteRepo repository.ClienteRepository,
		proveedorRepo repository.ProveedorRepository,
		productoRepo repository.ProductoRepository,
		usuarioRepo repository.UsuarioRepository,
		auditRepo repository.AuditoriaRepository,
	) error) error
}

// Mailer entrega el token de recuperación de contraseña. La entrega es
// un colaborador externo: el caso de uso solo conoce este puerto.
type Mailer interface {
	SendPasswordReset(ctx context.Context, email, nombre, token string) error
}
