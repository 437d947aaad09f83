package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/gestorpyme/gestor-api/internal/domain/entity"
)

// Resultados crudos de las consultas de reportes. Los produce la DB; el
// caso de uso los convierte en DTO.

// ResumenVentas totales de ventas del período.
type ResumenVentas struct {
	TotalVentas    int64
	MontoTotal     decimal.Decimal
	SaldoPendiente decimal.Decimal
}

// VentaPeriodo total vendido en un día.
type VentaPeriodo struct {
	Fecha time.Time
	Total decimal.Decimal
}

// VentaProducto ventas acumuladas de un producto.
type VentaProducto struct {
	Producto string
	Cantidad int64
	Total    decimal.Decimal
}

// VentaCliente compras acumuladas de un cliente.
type VentaCliente struct {
	Cliente string
	Compras int64
	Monto   decimal.Decimal
}

// ResumenInventario valorización del inventario visible.
type ResumenInventario struct {
	TotalProductos int64
	ValorCompra    decimal.Decimal
	ValorVenta     decimal.Decimal
}

// DemandaProducto unidades vendidas de un producto en el período.
type DemandaProducto struct {
	ProductoID int64
	Producto   string
	Cantidad   int64
}

// MovimientoInventario entrada o salida de stock en el período.
type MovimientoInventario struct {
	Fecha      time.Time
	Tipo       string // Entrada | Salida
	ProductoID int64
	Producto   string
	Cantidad   int64
}

// ClienteDeuda deuda acumulada de un cliente.
type ClienteDeuda struct {
	ClienteID int64
	Nombre    string
	Telefono  string
	Direccion string
	Total     decimal.Decimal
	Remitos   int64
}

// PagoCliente pago histórico de un cliente.
type PagoCliente struct {
	PagoID    int64
	ClienteID int64
	Cliente   string
	Monto     decimal.Decimal
	Fecha     time.Time
	Hora      string
}

// CompraProveedor factura de compra con los datos del proveedor.
type CompraProveedor struct {
	FacturaID int64
	Proveedor string
	Telefono  string
	Email     string
	Direccion string
	Fecha     time.Time
	Hora      string
	Total     decimal.Decimal
}

// ProductoAdquirido línea de compra con el estado de stock del producto.
type ProductoAdquirido struct {
	FacturaID    int64
	Producto     string
	Cantidad     int64
	PrecioCompra decimal.Decimal
	PrecioVenta  decimal.Decimal
	Subtotal     decimal.Decimal
	Stock        int64
	StockMinimo  int64
	EstadoStock  string // Reponer | Suficiente
}

// TotalesCaja entradas y salidas del período.
type TotalesCaja struct {
	Entradas decimal.Decimal
	Salidas  decimal.Decimal
}

// CompraResumen compra vinculada a una salida de caja del período.
type CompraResumen struct {
	FacturaID int64
	Proveedor string
	Fecha     time.Time
	Hora      string
	Total     decimal.Decimal
}

// CobranzaResumen cobranza vinculada a una entrada de caja del período.
type CobranzaResumen struct {
	PagoID  int64
	Cliente string
	Fecha   time.Time
	Hora    string
	Monto   decimal.Decimal
}

// AuditoriaResumen fila de auditoría con el usuario responsable.
type AuditoriaResumen struct {
	ID         int64
	Usuario    string
	Rol        string
	Fecha      time.Time
	Hora       string
	Tabla      string
	RegistroID int64
	Tipo       string // Modificación | Ocultación
}

// ConteoModificacion cantidad de cambios por tipo.
type ConteoModificacion struct {
	Tipo     string
	Cantidad int64
}

// ActividadUsuario cambios realizados por un usuario.
type ActividadUsuario struct {
	Usuario string
	Rol     string
	Cambios int64
}

// ReporteRepository consultas de solo lectura para los informes.
// Las implementaciones no modifican datos.
type ReporteRepository interface {
	// Ventas
	ResumenVentas(ctx context.Context, desde, hasta time.Time) (*ResumenVentas, error)
	VentasPorDia(ctx context.Context, desde, hasta time.Time) ([]*VentaPeriodo, error)
	VentasPorProducto(ctx context.Context, desde, hasta time.Time) ([]*VentaProducto, error)
	VentasPorCliente(ctx context.Context, desde, hasta time.Time) ([]*VentaCliente, error)
	// TotalVentasPeriodoAnterior total vendido en el mismo rango corrido
	// un mes hacia atrás.
	TotalVentasPeriodoAnterior(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error)

	// Inventario
	ResumenInventario(ctx context.Context) (*ResumenInventario, error)
	BajoStock(ctx context.Context) ([]*entity.Producto, error)
	DemandaProductos(ctx context.Context, desde, hasta time.Time, ascendente bool, limite int) ([]*DemandaProducto, error)
	MovimientosInventario(ctx context.Context, desde, hasta time.Time) ([]*MovimientoInventario, error)

	// Deudas
	ClientesConDeuda(ctx context.Context) ([]*ClienteDeuda, error)
	HistorialPagos(ctx context.Context) ([]*PagoCliente, error)
	RemitosPendientes(ctx context.Context) ([]*RemitoListado, error)
	// PorcentajeRecuperado pagado sobre facturado; devuelve 0 cuando la
	// razón no está definida.
	PorcentajeRecuperado(ctx context.Context) (decimal.Decimal, error)
	DeudasAntiguas(ctx context.Context, dias int) ([]*ClienteDeuda, error)

	// Compras
	HistorialCompras(ctx context.Context) ([]*CompraProveedor, error)
	ProductosAdquiridos(ctx context.Context) ([]*ProductoAdquirido, error)

	// Flujo de caja
	SaldoInicial(ctx context.Context, fecha time.Time) (decimal.Decimal, error)
	MovimientosCaja(ctx context.Context, p Periodo) ([]*MovimientoCajaListado, error)
	TotalesCaja(ctx context.Context, p Periodo) (*TotalesCaja, error)
	ComprasDelPeriodo(ctx context.Context, p Periodo) ([]*CompraResumen, error)
	CobranzasDelPeriodo(ctx context.Context, p Periodo) ([]*CobranzaResumen, error)

	// Auditoría
	Auditoria(ctx context.Context, desde, hasta time.Time) ([]*AuditoriaResumen, error)
	ConteoModificaciones(ctx context.Context, desde, hasta time.Time) ([]*ConteoModificacion, error)
	ActividadUsuarios(ctx context.Context, desde, hasta time.Time) ([]*ActividadUsuario, error)
}
