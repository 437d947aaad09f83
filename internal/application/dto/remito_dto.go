package dto

import "github.com/shopspring/decimal"

// ProductoVendido línea de un remito nuevo.
type ProductoVendido struct {
	ProductoID int64           `json:"id_producto" validate:"required,gt=0"`
	Cantidad   int64           `json:"cantidad" validate:"required,gt=0"`
	Subtotal   decimal.Decimal `json:"subtotal" validate:"required"`
}

// CreateRemitoRequest alta de remito: nace pendiente con saldo igual al total.
type CreateRemitoRequest struct {
	ClienteID int64             `json:"cliente" validate:"required,gt=0"`
	Total     decimal.Decimal   `json:"montoTotal" validate:"required"`
	Productos []ProductoVendido `json:"productosVendidos" validate:"required,min=1,dive"`
}

// RemitoResponse fila del listado de remitos.
type RemitoResponse struct {
	ID      int64           `json:"id_remito"`
	Cliente string          `json:"nombre_cliente"`
	Fecha   string          `json:"fecha_remito"`
	Total   decimal.Decimal `json:"monto_total"`
	Saldo   decimal.Decimal `json:"saldo_restante"`
	Estado  string          `json:"estado"`
}

// RemitoPendienteResponse remito impago de un cliente, para la pantalla
// de cobranzas.
type RemitoPendienteResponse struct {
	ID     int64           `json:"id_remito"`
	Fecha  string          `json:"fecha_remito"`
	Total  decimal.Decimal `json:"monto_total"`
	Saldo  decimal.Decimal `json:"saldo_restante"`
	Estado int             `json:"estado"`
}

// RemitosClienteResponse remitos impagos más la deuda total del cliente.
type RemitosClienteResponse struct {
	Remitos    []RemitoPendienteResponse `json:"remitos"`
	DeudaTotal decimal.Decimal           `json:"deudaTotal"`
	Cantidad   int64                     `json:"cantidadRemitos"`
}

// RemitoDetalleResponse línea de un remito con el producto resuelto.
type RemitoDetalleResponse struct {
	Producto       string          `json:"nombre_producto"`
	Cantidad       int64           `json:"cantidad"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// RemitoCompletoResponse cabecera del remito con sus líneas.
type RemitoCompletoResponse struct {
	ID       int64                   `json:"id_remito"`
	Cliente  int64                   `json:"id_cliente"`
	Fecha    string                  `json:"fecha_remito"`
	Total    decimal.Decimal         `json:"monto_total"`
	Saldo    decimal.Decimal         `json:"saldo_restante"`
	Estado   int                     `json:"estado"`
	Detalles []RemitoDetalleResponse `json:"detalles"`
}
