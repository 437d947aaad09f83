package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del flujo de caja. El signo lo da el tipo, no el
// monto almacenado.
const (
	MovimientoEntrada = 1
	MovimientoSalida  = 2
)

// MovimientoCaja entrada del libro de caja. Solo se agrega, nunca se
// modifica ni elimina.
type MovimientoCaja struct {
	ID        int64
	UsuarioID int64
	Factura   int64 // número de factura de compra o de cobranza vinculada
	Fecha     time.Time
	Hora      string
	Tipo      int
	Monto     decimal.Decimal
}
