package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un remito. El saldo restante solo decrece; cuando llega a
// cero el estado pasa a pagado.
const (
	RemitoPendiente = 1
	RemitoParcial   = 2
	RemitoPagado    = 3
)

// Remito nota de entrega a crédito: nace con saldo igual al monto total
// y el saldo baja a medida que se aplican cobranzas.
type Remito struct {
	ID        int64
	ClienteID int64
	Fecha     time.Time
	Total     decimal.Decimal
	Saldo     decimal.Decimal
	Estado    int
}

// RemitoDetalle línea de un remito. Inmutable una vez creada.
type RemitoDetalle struct {
	RemitoID   int64
	ProductoID int64
	Cantidad   int64
	Subtotal   decimal.Decimal
}
