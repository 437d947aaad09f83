package dto

import "github.com/shopspring/decimal"

// SalesReportResponse informe de ventas del rango.
type SalesReportResponse struct {
	TotalVentas      int64              `json:"totalVentas"`
	MontoTotal       decimal.Decimal    `json:"montoTotal"`
	SaldoPendiente   decimal.Decimal    `json:"saldoPendiente"`
	VariacionPct     decimal.Decimal    `json:"variacionPorcentual"`
	VentasPorDia     []VentaPeriodoItem `json:"ventasPorDia"`
	VentasPorProducto []VentaProductoItem `json:"ventasPorProducto"`
	VentasPorCliente []VentaClienteItem `json:"ventasPorCliente"`
}

// VentaPeriodoItem total vendido en un día.
type VentaPeriodoItem struct {
	Fecha string          `json:"fecha"`
	Total decimal.Decimal `json:"total"`
}

// VentaProductoItem ventas acumuladas de un producto.
type VentaProductoItem struct {
	Producto string          `json:"nombre_producto"`
	Cantidad int64           `json:"cantidad"`
	Total    decimal.Decimal `json:"total"`
}

// VentaClienteItem compras acumuladas de un cliente.
type VentaClienteItem struct {
	Cliente string          `json:"nombre_cliente"`
	Compras int64           `json:"compras"`
	Monto   decimal.Decimal `json:"monto"`
}

// InventoryReportResponse informe de inventario del rango.
type InventoryReportResponse struct {
	TotalProductos int64                    `json:"totalProductos"`
	ValorCompra    decimal.Decimal          `json:"valorCompra"`
	ValorVenta     decimal.Decimal          `json:"valorVenta"`
	BajoStock      []ProductoResponse       `json:"productosBajoStock"`
	MasDemandados  []DemandaItem            `json:"masDemandados"`
	MenosDemandados []DemandaItem           `json:"menosDemandados"`
	Movimientos    []MovimientoInventarioItem `json:"movimientos"`
}

// DemandaItem unidades vendidas de un producto en el rango.
type DemandaItem struct {
	ProductoID int64  `json:"id_producto"`
	Producto   string `json:"nombre_producto"`
	Cantidad   int64  `json:"cantidad"`
}

// MovimientoInventarioItem entrada o salida de stock.
type MovimientoInventarioItem struct {
	Fecha      string `json:"fecha"`
	Tipo       string `json:"tipo"`
	ProductoID int64  `json:"id_producto"`
	Producto   string `json:"nombre_producto"`
	Cantidad   int64  `json:"cantidad"`
}

// DebtReportResponse informe de deudas de clientes.
type DebtReportResponse struct {
	Clientes             []ClienteDeudaItem `json:"clientesConDeuda"`
	Pagos                []PagoClienteItem  `json:"historialPagos"`
	RemitosPendientes    []RemitoResponse   `json:"remitosPendientes"`
	PorcentajeRecuperado decimal.Decimal    `json:"porcentajeRecuperado"`
	DeudasAntiguas       []ClienteDeudaItem `json:"deudasAntiguas"`
}

// ClienteDeudaItem deuda acumulada de un cliente.
type ClienteDeudaItem struct {
	ClienteID int64           `json:"id_cliente"`
	Nombre    string          `json:"nombre_cliente"`
	Telefono  string          `json:"telefono_cliente"`
	Direccion string          `json:"direccion_cliente"`
	Total     decimal.Decimal `json:"deudaTotal"`
	Remitos   int64           `json:"cantidadRemitos"`
}

// PagoClienteItem pago histórico de un cliente.
type PagoClienteItem struct {
	PagoID    int64           `json:"id_pago"`
	ClienteID int64           `json:"id_cliente"`
	Cliente   string          `json:"nombre_cliente"`
	Monto     decimal.Decimal `json:"monto"`
	Fecha     string          `json:"fecha_pago"`
	Hora      string          `json:"hora_pago"`
}

// PurchaseReportResponse informe de compras a proveedores.
type PurchaseReportResponse struct {
	Compras   []CompraProveedorItem   `json:"historialCompras"`
	Productos []ProductoAdquiridoItem `json:"productosAdquiridos"`
}

// CompraProveedorItem factura de compra con los datos del proveedor.
type CompraProveedorItem struct {
	FacturaID int64           `json:"id_factura"`
	Proveedor string          `json:"nombre_proveedor"`
	Telefono  string          `json:"telefono_proveedor"`
	Email     string          `json:"email_proveedor"`
	Direccion string          `json:"direccion_proveedor"`
	Fecha     string          `json:"fecha_compra"`
	Hora      string          `json:"hora_compra"`
	Total     decimal.Decimal `json:"monto_total"`
}

// ProductoAdquiridoItem línea de compra con el estado de stock actual.
type ProductoAdquiridoItem struct {
	FacturaID    int64           `json:"id_factura"`
	Producto     string          `json:"nombre_producto"`
	Cantidad     int64           `json:"cantidad"`
	PrecioCompra decimal.Decimal `json:"precio_compra"`
	PrecioVenta  decimal.Decimal `json:"precio_venta"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Stock        int64           `json:"stock_disponible"`
	StockMinimo  int64           `json:"stock_minimo"`
	EstadoStock  string          `json:"estadoStock"`
}

// CashFlowReportResponse informe de caja del período.
type CashFlowReportResponse struct {
	SaldoInicial decimal.Decimal      `json:"saldoInicial"`
	Entradas     decimal.Decimal      `json:"totalEntradas"`
	Salidas      decimal.Decimal      `json:"totalSalidas"`
	SaldoFinal   decimal.Decimal      `json:"saldoFinal"`
	Movimientos  []MovimientoCajaItem `json:"movimientos"`
	Compras      []CompraResumenItem  `json:"compras"`
	Cobranzas    []CobranzaResumenItem `json:"cobranzas"`
}

// MovimientoCajaItem fila del libro de caja.
type MovimientoCajaItem struct {
	ID      int64           `json:"id_movimiento"`
	Usuario string          `json:"nombre_usuario"`
	Factura int64           `json:"numero_factura"`
	Fecha   string          `json:"fecha_movimiento"`
	Hora    string          `json:"hora_movimiento"`
	Monto   decimal.Decimal `json:"monto"`
	Tipo    string          `json:"tipo_movimiento"`
}

// CompraResumenItem compra del período.
type CompraResumenItem struct {
	FacturaID int64           `json:"id_factura"`
	Proveedor string          `json:"nombre_proveedor"`
	Fecha     string          `json:"fecha_compra"`
	Hora      string          `json:"hora_compra"`
	Total     decimal.Decimal `json:"monto_total"`
}

// CobranzaResumenItem cobranza del período.
type CobranzaResumenItem struct {
	PagoID  int64           `json:"id_pago"`
	Cliente string          `json:"nombre_cliente"`
	Fecha   string          `json:"fecha_pago"`
	Hora    string          `json:"hora_pago"`
	Monto   decimal.Decimal `json:"monto"`
}

// AuditReportResponse informe de auditoría del rango.
type AuditReportResponse struct {
	Registros       []AuditoriaItem       `json:"registros"`
	Conteos         []ConteoModificacionItem `json:"conteoPorTipo"`
	ActividadUsuarios []ActividadUsuarioItem `json:"actividadPorUsuario"`
}

// AuditoriaItem fila de auditoría con el usuario responsable.
type AuditoriaItem struct {
	ID         int64  `json:"id_auditoria"`
	Usuario    string `json:"nombre_usuario"`
	Rol        string `json:"rol"`
	Fecha      string `json:"fecha_cambio"`
	Hora       string `json:"hora_cambio"`
	Tabla      string `json:"tabla_afectada"`
	RegistroID int64  `json:"id_registro_afectado"`
	Tipo       string `json:"tipo_modificacion"`
}

// ConteoModificacionItem cantidad de cambios por tipo.
type ConteoModificacionItem struct {
	Tipo     string `json:"tipo"`
	Cantidad int64  `json:"cantidad"`
}

// ActividadUsuarioItem cambios realizados por un usuario.
type ActividadUsuarioItem struct {
	Usuario string `json:"nombre_usuario"`
	Rol     string `json:"rol"`
	Cambios int64  `json:"cambios"`
}
