package transactions

import (
	"context"

	"github.com/gestorpyme/gestor-api/internal/domain/repository"
)

// TxRunner ejecuta los callbacks de compra y cobranza dentro de una
// transacción con repositorios atados a esa tx. Todas las sentencias del
// callback se confirman o revierten como unidad; un fallo devuelve el
// error original después del rollback, sin reintentos.
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		compraRepo repository.CompraRepository,
		productoRepo repository.ProductoRepository,
		cajaRepo repository.CajaRepository,
	) error) error

	RunCollection(ctx context.Context, fn func(
		cobranzaRepo repository.CobranzaRepository,
		remitoRepo repository.RemitoRepository,
		cajaRepo repository.CajaRepository,
	) error) error
}
