package remitos

import (
	"context"

	"github.com/gestorpyme/gestor-api/internal/domain/repository"
)

// TxRunner ejecuta la creación de un remito (cabecera, líneas y
// descuento de stock) dentro de una transacción.
type TxRunner interface {
	RunRemito(ctx context.Context, fn func(
		remitoRepo repository.RemitoRepository,
		productoRepo repository.ProductoRepository,
	) error) error
}
