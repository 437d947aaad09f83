package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MovimientoCajaListado fila del libro de caja con usuario y tipo de
// movimiento resueltos por nombre.
type MovimientoCajaListado struct {
	ID      int64
	Usuario string
	Factura int64
	Fecha   time.Time
	Hora    string
	Monto   decimal.Decimal
	Tipo    string // entrada | salida
}

// AuditoriaDetalle fila de auditoría con los snapshots serializados.
type AuditoriaDetalle struct {
	AuditoriaResumen
	ValoresPrevios []byte // JSON plano campo -> valor
	ValoresNuevos  []byte
}

// FacturaListado fila del listado unificado de facturas (ventas y compras).
type FacturaListado struct {
	Numero      int64
	Entidad     string
	Monto       decimal.Decimal
	Fecha       time.Time
	Hora        string
	Tipo        string // venta | compra
	TipoEntidad string // Clientes | Proveedores
}

// FacturaDetalle cabecera de una factura con los datos de la contraparte.
type FacturaDetalle struct {
	Numero    int64
	Entidad   string
	Telefono  string
	Direccion string
	Monto     decimal.Decimal
	Fecha     time.Time
	Hora      string
	Tipo      string // Venta | Compra
}

// RemitoCobrado remito alcanzado por una cobranza, con sus líneas.
type RemitoCobrado struct {
	RemitoID   int64
	Fecha      time.Time
	Total      decimal.Decimal
	Saldo      decimal.Decimal
	ProductoID int64
	Producto   string
	Cantidad   int64
	Subtotal   decimal.Decimal
}

// DetalleCompra línea de una factura de compra con el producto resuelto.
type DetalleCompra struct {
	ProductoID int64
	Producto   string
	Cantidad   int64
	Subtotal   decimal.Decimal
}

// RegistroRepository consultas de solo lectura para los listados de
// caja, auditoría y facturas.
type RegistroRepository interface {
	ListCaja(ctx context.Context) ([]*MovimientoCajaListado, error)
	ListAuditoria(ctx context.Context) ([]*AuditoriaResumen, error)
	GetAuditoria(ctx context.Context, id int64) (*AuditoriaDetalle, error)
	ListFacturas(ctx context.Context) ([]*FacturaListado, error)
	GetFacturaVenta(ctx context.Context, pagoID int64) (*FacturaDetalle, error)
	RemitosDeCobranza(ctx context.Context, pagoID int64) ([]*RemitoCobrado, error)
	GetFacturaCompra(ctx context.Context, facturaID int64) (*FacturaDetalle, error)
	DetallesDeCompra(ctx context.Context, facturaID int64) ([]*DetalleCompra, error)
}
