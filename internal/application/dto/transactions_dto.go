package dto

import "github.com/shopspring/decimal"

// ProductoComprado línea de una compra a proveedor.
// stockActual es el stock tal como lo conocía el frontend; se acepta por
// compatibilidad pero se ignora: el incremento se evalúa en el servidor.
type ProductoComprado struct {
	ProductoID   int64           `json:"id_producto" validate:"required,gt=0"`
	Cantidad     int64           `json:"cantidad" validate:"required,gt=0"`
	Subtotal     decimal.Decimal `json:"subtotal" validate:"required"`
	StockActual  *int64          `json:"stockActual"`
	PrecioCompra decimal.Decimal `json:"precio_compra" validate:"required"`
	PrecioVenta  decimal.Decimal `json:"precio_venta" validate:"required"`
}

// PurchaseRequest compra de mercadería a un proveedor.
type PurchaseRequest struct {
	ProveedorID int64              `json:"proveedorId" validate:"required,gt=0"`
	Monto       decimal.Decimal    `json:"montoDeCompra" validate:"required"`
	Productos   []ProductoComprado `json:"productosComprados" validate:"required,min=1,dive"`
}

// BillingRemito remito alcanzado por una cobranza.
// nuevoEstado y montoRestante llegan del frontend por compatibilidad pero
// se ignoran: el saldo y el estado se recalculan en el servidor.
type BillingRemito struct {
	RemitoID        int64           `json:"remitoId" validate:"required,gt=0"`
	NuevoEstado     *int            `json:"nuevoEstado"`
	MontoRestante   decimal.Decimal `json:"montoRestante"`
	MontoDescontado decimal.Decimal `json:"montoDescontado" validate:"required"`
}

// CollectionRequest cobranza de un cliente aplicada a uno o más remitos.
type CollectionRequest struct {
	ClienteID int64           `json:"cliente" validate:"required,gt=0"`
	Monto     decimal.Decimal `json:"monto" validate:"required"`
	Remitos   []BillingRemito `json:"billingRemito" validate:"required,min=1,dive"`
}
