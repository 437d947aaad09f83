package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cobranza pago de un cliente. Inmutable.
type Cobranza struct {
	ID        int64
	ClienteID int64
	Monto     decimal.Decimal
	Fecha     time.Time
	Hora      string
}

// FacturaRemito vincula una cobranza con cada remito que salda (total o
// parcialmente) y el monto descontado a ese remito.
type FacturaRemito struct {
	RemitoID   int64
	CobranzaID int64
	Descontado decimal.Decimal
}
