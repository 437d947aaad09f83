package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/gestorpyme/gestor-api/internal/domain/entity"
)

// RemitoListado fila del listado de remitos con datos del cliente y el
// nombre del estado.
type RemitoListado struct {
	ID      int64
	Cliente string
	Fecha   time.Time
	Total   decimal.Decimal
	Saldo   decimal.Decimal
	Estado  string
}

// RemitoDetalleRow línea de remito con el nombre del producto.
type RemitoDetalleRow struct {
	Producto       string
	Cantidad       int64
	Subtotal       decimal.Decimal
	PrecioUnitario decimal.Decimal
}

// DeudaCliente resumen de deuda de un cliente.
type DeudaCliente struct {
	Remitos int64
	Total   decimal.Decimal
}

// RemitoRepository puerto de persistencia para remitos y sus líneas.
type RemitoRepository interface {
	Create(ctx context.Context, r *entity.Remito) (int64, error)
	CreateDetalle(ctx context.Context, d *entity.RemitoDetalle) error
	GetByID(ctx context.Context, id int64) (*entity.Remito, error)
	ListAll(ctx context.Context) ([]*RemitoListado, error)
	// ListPendientesByCliente lista los remitos no pagados del cliente.
	ListPendientesByCliente(ctx context.Context, clienteID int64) ([]*entity.Remito, error)
	Detalles(ctx context.Context, remitoID int64) ([]*RemitoDetalleRow, error)
	Deuda(ctx context.Context, clienteID int64) (*DeudaCliente, error)
	// AplicarPago descuenta monto del saldo restante y recalcula el
	// estado en la misma sentencia (pagado si el saldo llega a cero,
	// parcial si no). Devuelve false si el remito no existe o el
	// descuento supera el saldo: el saldo nunca crece ni queda negativo.
	AplicarPago(ctx context.Context, remitoID int64, monto decimal.Decimal) (bool, error)
}
