package catalog

import (
	"context"

	"github.com/gestorpyme/gestor-api/internal/domain/repository"
)

// AuditTxRunner ejecuta una mutación de entidad junto con su fila de
// auditoría en la misma transacción: el UPDATE y el registro se
// confirman o revierten juntos, nunca queda un hueco silencioso en el
// historial.
type AuditTxRunner interface {
	RunAudited(ctx context.Context, fn func(
		clienteRepo repository.ClienteRepository,
		proveedorRepo repository.ProveedorRepository,
		productoRepo repository.ProductoRepository,
		usuarioRepo repository.UsuarioRepository,
		auditRepo repository.AuditoriaRepository,
	) error) error
}
