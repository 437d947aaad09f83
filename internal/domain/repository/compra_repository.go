package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/gestorpyme/gestor-api/internal/domain/entity"
)

// ProductoProveedor producto adquirido a un proveedor con su última compra.
type ProductoProveedor struct {
	Producto     string
	UltimaCompra time.Time
	Cantidad     int64
	PrecioCompra decimal.Decimal
}

// CompraRepository puerto de persistencia para facturas de compra.
type CompraRepository interface {
	// CreateFactura inserta la cabecera y devuelve el id generado.
	CreateFactura(ctx context.Context, f *entity.FacturaCompra) (int64, error)
	CreateDetalle(ctx context.Context, d *entity.FacturaCompraDetalle) error
	ProductosPorProveedor(ctx context.Context, proveedorID int64) ([]*ProductoProveedor, error)
}

// CobranzaRepository puerto de persistencia para cobranzas a clientes.
type CobranzaRepository interface {
	// CreateCobranza inserta la cabecera del pago y devuelve el id generado.
	CreateCobranza(ctx context.Context, c *entity.Cobranza) (int64, error)
	CreateFacturaRemito(ctx context.Context, fr *entity.FacturaRemito) error
}

// CajaRepository libro de caja, solo escritura de nuevas entradas.
type CajaRepository interface {
	Append(ctx context.Context, m *entity.MovimientoCaja) error
}

// AuditoriaRepository historial de cambios, solo escritura de nuevas filas.
type AuditoriaRepository interface {
	Append(ctx context.Context, r *entity.RegistroAuditoria) error
}
