package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/gestorpyme/gestor-api/internal/domain/entity"
)

// ControlStock resultado del control de stock mínimo.
type ControlStock struct {
	Peligro  bool  // hay productos en o bajo el mínimo
	AReponer int64 // cuántos productos hay que reponer
}

// ProductoRepository puerto de persistencia para productos.
// Los incrementos y descuentos de stock se evalúan en el UPDATE
// (stock = stock + n), nunca desde un valor leído por el cliente.
// GetByID y Update operan solo sobre filas visibles (una fila oculta se
// comporta como inexistente).
type ProductoRepository interface {
	Create(ctx context.Context, p *entity.Producto) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Producto, error)
	// ListVisibles lista productos no ocultos; con soloListos filtra los
	// vendibles (precio de venta y stock positivos).
	ListVisibles(ctx context.Context, soloListos bool) ([]*entity.Producto, error)
	ControlStockMinimo(ctx context.Context) (*ControlStock, error)
	// Update modifica nombre, precios y stock mínimo. Devuelve false si
	// no existe la fila.
	Update(ctx context.Context, p *entity.Producto) (bool, error)
	// Hide oculta el producto. Devuelve false si no existe o ya estaba oculto.
	Hide(ctx context.Context, id int64) (bool, error)
	// AgregarStock suma cantidad al stock disponible y actualiza precios
	// y fecha de última actualización en la misma sentencia.
	AgregarStock(ctx context.Context, id int64, cantidad int64, precioCompra, precioVenta decimal.Decimal, fecha time.Time) (bool, error)
	// DescontarStock resta cantidad del stock disponible. No exige
	// stock suficiente: stock >= 0 es convención del negocio.
	DescontarStock(ctx context.Context, id int64, cantidad int64) (bool, error)
}
