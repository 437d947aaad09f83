package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FacturaCompra cabecera de una compra a proveedor.
type FacturaCompra struct {
	ID          int64
	ProveedorID int64
	Total       decimal.Decimal
	Fecha       time.Time
	Hora        string
}

// FacturaCompraDetalle línea de compra. Inmutable.
type FacturaCompraDetalle struct {
	FacturaID  int64
	ProductoID int64
	Cantidad   int64
	Subtotal   decimal.Decimal
}
