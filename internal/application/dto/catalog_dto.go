package dto

import (
	"github.com/shopspring/decimal"
)

// CreateClienteRequest alta de cliente.
type CreateClienteRequest struct {
	Nombre    string `json:"nombre" validate:"required"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}

// UpdateClienteRequest modificación de cliente.
type UpdateClienteRequest struct {
	Nombre    string `json:"nombre" validate:"required"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}

// ClienteResponse cliente tal como viaja al frontend.
type ClienteResponse struct {
	ID        int64  `json:"id_cliente"`
	Nombre    string `json:"nombre_cliente"`
	Telefono  string `json:"telefono_cliente"`
	Direccion string `json:"direccion_cliente"`
}

// CreateProveedorRequest alta de proveedor.
type CreateProveedorRequest struct {
	Nombre    string `json:"nombre" validate:"required"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email" validate:"omitempty,email"`
	Direccion string `json:"direccion"`
}

// UpdateProveedorRequest modificación de proveedor.
type UpdateProveedorRequest struct {
	Nombre    string `json:"nombre" validate:"required"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email" validate:"omitempty,email"`
	Direccion string `json:"direccion"`
}

// ProveedorResponse proveedor tal como viaja al frontend.
type ProveedorResponse struct {
	ID        int64  `json:"id_proveedor"`
	Nombre    string `json:"nombre_proveedor"`
	Telefono  string `json:"telefono_proveedor"`
	Email     string `json:"email_proveedor"`
	Direccion string `json:"direccion_proveedor"`
}

// ProductoProveedorResponse producto comprado a un proveedor con la
// fecha de la última compra.
type ProductoProveedorResponse struct {
	Producto     string          `json:"nombre_producto"`
	UltimaCompra string          `json:"ultima_compra"`
	Cantidad     int64           `json:"cantidad_total"`
	PrecioCompra decimal.Decimal `json:"precio_compra"`
}

// CreateProductoRequest alta de producto. El stock nace en cero: solo lo
// mueven las compras y los remitos.
type CreateProductoRequest struct {
	CodigoBarras string          `json:"codigoBarras"`
	Nombre       string          `json:"nombre" validate:"required"`
	PrecioCompra decimal.Decimal `json:"precioCompra"`
	PrecioVenta  decimal.Decimal `json:"precioVenta"`
	StockMinimo  int64           `json:"stockMinimo" validate:"min=0"`
}

// UpdateProductoRequest modificación de producto (nunca toca el stock).
type UpdateProductoRequest struct {
	Nombre       string          `json:"nombre" validate:"required"`
	PrecioCompra decimal.Decimal `json:"precioCompra"`
	PrecioVenta  decimal.Decimal `json:"precioVenta"`
	StockMinimo  int64           `json:"stockMinimo" validate:"min=0"`
}

// ProductoResponse producto tal como viaja al frontend.
type ProductoResponse struct {
	ID            int64           `json:"id_producto"`
	CodigoBarras  string          `json:"codigo_barras"`
	Nombre        string          `json:"nombre_producto"`
	PrecioCompra  decimal.Decimal `json:"precio_compra"`
	PrecioVenta   decimal.Decimal `json:"precio_venta"`
	Stock         int64           `json:"stock_disponible"`
	StockMinimo   int64           `json:"stock_minimo"`
	Actualizacion string          `json:"ultima_actualizacion"`
}

// ControlStockResponse resultado del control de stock mínimo.
type ControlStockResponse struct {
	Peligro  bool  `json:"peligro"`
	AReponer int64 `json:"productosAReponer"`
}
