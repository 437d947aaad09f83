package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un artículo del inventario.
// El stock solo lo mutan la compra (incremento) y la creación de remitos
// (decremento); ambas operaciones lo ajustan en el propio UPDATE, nunca
// desde un valor leído por el cliente. Stock >= 0 es convención, no se
// fuerza en la escritura.
type Producto struct {
	ID            int64
	CodigoBarras  string
	Nombre        string
	PrecioCompra  decimal.Decimal
	PrecioVenta   decimal.Decimal
	Stock         int64
	StockMinimo   int64
	Actualizacion time.Time // última actualización (fecha)
	Oculto        bool
}
