package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/gestorpyme/gestor-api/internal/application/dto"
	"github.com/gestorpyme/gestor-api/internal/domain"
	"github.com/gestorpyme/gestor-api/internal/domain/repository"
)

// Rango mínimo de los reportes de ventas e inventario.
const minDiasRango = 30

// Antigüedad en días a partir de la cual una deuda se considera vieja.
const diasDeudaAntigua = 30

// Límite de productos en los rankings de demanda.
const topDemanda = 5

// ReportUseCase informes de solo lectura. Ningún método modifica datos.
type ReportUseCase struct {
	reporteRepo repository.ReporteRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reporteRepo repository.ReporteRepository) *ReportUseCase {
	return &ReportUseCase{reporteRepo: reporteRepo}
}

func validarRango(desde, hasta time.Time) error {
	if hasta.Before(desde) {
		return domain.ErrInvalidInput
	}
	if hasta.Sub(desde) < minDiasRango*24*time.Hour {
		return domain.ErrRangoFechasCorto
	}
	return nil
}

// Sales informe de ventas del rango (mínimo un mes), con la variación
// porcentual contra el mismo rango corrido un mes hacia atrás.
func (uc *ReportUseCase) Sales(ctx context.Context, desde, hasta time.Time) (*dto.SalesReportResponse, error) {
	if err := validarRango(desde, hasta); err != nil {
		return nil, err
	}
	resumen, err := uc.reporteRepo.ResumenVentas(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	porDia, err := uc.reporteRepo.VentasPorDia(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	porProducto, err := uc.reporteRepo.VentasPorProducto(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	porCliente, err := uc.reporteRepo.VentasPorCliente(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	anterior, err := uc.reporteRepo.TotalVentasPeriodoAnterior(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	// Variación contra el período anterior; 0 si entonces no hubo ventas.
	variacion := decimal.Zero
	if anterior.GreaterThan(decimal.Zero) {
		variacion = resumen.MontoTotal.Sub(anterior).Div(anterior).Mul(decimal.NewFromInt(100)).Round(2)
	}

	resp := &dto.SalesReportResponse{
		TotalVentas:    resumen.TotalVentas,
		MontoTotal:     resumen.MontoTotal,
		SaldoPendiente: resumen.SaldoPendiente,
		VariacionPct:   variacion,
	}
	for _, v := range porDia {
		resp.VentasPorDia = append(resp.VentasPorDia, dto.VentaPeriodoItem{Fecha: v.Fecha.Format("2006-01-02"), Total: v.Total})
	}
	for _, v := range porProducto {
		resp.VentasPorProducto = append(resp.VentasPorProducto, dto.VentaProductoItem{Producto: v.Producto, Cantidad: v.Cantidad, Total: v.Total})
	}
	for _, v := range porCliente {
		resp.VentasPorCliente = append(resp.VentasPorCliente, dto.VentaClienteItem{Cliente: v.Cliente, Compras: v.Compras, Monto: v.Monto})
	}
	return resp, nil
}

// Inventory informe de inventario del rango (mínimo un mes).
func (uc *ReportUseCase) Inventory(ctx context.Context, desde, hasta time.Time) (*dto.InventoryReportResponse, error) {
	if err := validarRango(desde, hasta); err != nil {
		return nil, err
	}
	resumen, err := uc.reporteRepo.ResumenInventario(ctx)
	if err != nil {
		return nil, err
	}
	bajoStock, err := uc.reporteRepo.BajoStock(ctx)
	if err != nil {
		return nil, err
	}
	mas, err := uc.reporteRepo.DemandaProductos(ctx, desde, hasta, false, topDemanda)
	if err != nil {
		return nil, err
	}
	menos, err := uc.reporteRepo.DemandaProductos(ctx, desde, hasta, true, topDemanda)
	if err != nil {
		return nil, err
	}
	movimientos, err := uc.reporteRepo.MovimientosInventario(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}

	resp := &dto.InventoryReportResponse{
		TotalProductos: resumen.TotalProductos,
		ValorCompra:    resumen.ValorCompra,
		ValorVenta:     resumen.ValorVenta,
	}
	for _, p := range bajoStock {
		resp.BajoStock = append(resp.BajoStock, dto.ProductoResponse{
			ID:            p.ID,
			CodigoBarras:  p.CodigoBarras,
			Nombre:        p.Nombre,
			PrecioCompra:  p.PrecioCompra,
			PrecioVenta:   p.PrecioVenta,
			Stock:         p.Stock,
			StockMinimo:   p.StockMinimo,
			Actualizacion: p.Actualizacion.Format("2006-01-02"),
		})
	}
	for _, d := range mas {
		resp.MasDemandados = append(resp.MasDemandados, dto.DemandaItem{ProductoID: d.ProductoID, Producto: d.Producto, Cantidad: d.Cantidad})
	}
	for _, d := range menos {
		resp.MenosDemandados = append(resp.MenosDemandados, dto.DemandaItem{ProductoID: d.ProductoID, Producto: d.Producto, Cantidad: d.Cantidad})
	}
	for _, m := range movimientos {
		resp.Movimientos = append(resp.Movimientos, dto.MovimientoInventarioItem{
			Fecha:      m.Fecha.Format("2006-01-02"),
			Tipo:       m.Tipo,
			ProductoID: m.ProductoID,
			Producto:   m.Producto,
			Cantidad:   m.Cantidad,
		})
	}
	return resp, nil
}

// Debt informe de deudas de clientes. El porcentaje recuperado cae a 0
// cuando la razón no está definida; la consulta ya lo resuelve así.
func (uc *ReportUseCase) Debt(ctx context.Context) (*dto.DebtReportResponse, error) {
	clientes, err := uc.reporteRepo.ClientesConDeuda(ctx)
	if err != nil {
		return nil, err
	}
	pagos, err := uc.reporteRepo.HistorialPagos(ctx)
	if err != nil {
		return nil, err
	}
	pendientes, err := uc.reporteRepo.RemitosPendientes(ctx)
	if err != nil {
		return nil, err
	}
	pct, err := uc.reporteRepo.PorcentajeRecuperado(ctx)
	if err != nil {
		return nil, err
	}
	antiguas, err := uc.reporteRepo.DeudasAntiguas(ctx, diasDeudaAntigua)
	if err != nil {
		return nil, err
	}

	resp := &dto.DebtReportResponse{
		Clientes:             toDeudaItems(clientes),
		PorcentajeRecuperado: pct,
		DeudasAntiguas:       toDeudaItems(antiguas),
	}
	for _, p := range pagos {
		resp.Pagos = append(resp.Pagos, dto.PagoClienteItem{
			PagoID:    p.PagoID,
			ClienteID: p.ClienteID,
			Cliente:   p.Cliente,
			Monto:     p.Monto,
			Fecha:     p.Fecha.Format("2006-01-02"),
			Hora:      p.Hora,
		})
	}
	for _, r := range pendientes {
		resp.RemitosPendientes = append(resp.RemitosPendientes, dto.RemitoResponse{
			ID:      r.ID,
			Cliente: r.Cliente,
			Fecha:   r.Fecha.Format("2006-01-02"),
			Total:   r.Total,
			Saldo:   r.Saldo,
			Estado:  r.Estado,
		})
	}
	return resp, nil
}

// Purchases informe de compras a proveedores.
func (uc *ReportUseCase) Purchases(ctx context.Context) (*dto.PurchaseReportResponse, error) {
	compras, err := uc.reporteRepo.HistorialCompras(ctx)
	if err != nil {
		return nil, err
	}
	productos, err := uc.reporteRepo.ProductosAdquiridos(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.PurchaseReportResponse{}
	for _, c := range compras {
		resp.Compras = append(resp.Compras, dto.CompraProveedorItem{
			FacturaID: c.FacturaID,
			Proveedor: c.Proveedor,
			Telefono:  c.Telefono,
			Email:     c.Email,
			Direccion: c.Direccion,
			Fecha:     c.Fecha.Format("2006-01-02"),
			Hora:      c.Hora,
			Total:     c.Total,
		})
	}
	for _, p := range productos {
		resp.Productos = append(resp.Productos, dto.ProductoAdquiridoItem{
			FacturaID:    p.FacturaID,
			Producto:     p.Producto,
			Cantidad:     p.Cantidad,
			PrecioCompra: p.PrecioCompra,
			PrecioVenta:  p.PrecioVenta,
			Subtotal:     p.Subtotal,
			Stock:        p.Stock,
			StockMinimo:  p.StockMinimo,
			EstadoStock:  p.EstadoStock,
		})
	}
	return resp, nil
}

// CashFlow informe de caja del período: saldo inicial acumulado,
// movimientos, totales y saldo final = inicial + entradas - salidas.
func (uc *ReportUseCase) CashFlow(ctx context.Context, p repository.Periodo) (*dto.CashFlowReportResponse, error) {
	inicial, err := uc.reporteRepo.SaldoInicial(ctx, inicioPeriodo(p))
	if err != nil {
		return nil, err
	}
	movimientos, err := uc.reporteRepo.MovimientosCaja(ctx, p)
	if err != nil {
		return nil, err
	}
	totales, err := uc.reporteRepo.TotalesCaja(ctx, p)
	if err != nil {
		return nil, err
	}
	compras, err := uc.reporteRepo.ComprasDelPeriodo(ctx, p)
	if err != nil {
		return nil, err
	}
	cobranzas, err := uc.reporteRepo.CobranzasDelPeriodo(ctx, p)
	if err != nil {
		return nil, err
	}

	resp := &dto.CashFlowReportResponse{
		SaldoInicial: inicial,
		Entradas:     totales.Entradas,
		Salidas:      totales.Salidas,
		SaldoFinal:   inicial.Add(totales.Entradas).Sub(totales.Salidas),
	}
	for _, m := range movimientos {
		resp.Movimientos = append(resp.Movimientos, dto.MovimientoCajaItem{
			ID:      m.ID,
			Usuario: m.Usuario,
			Factura: m.Factura,
			Fecha:   m.Fecha.Format("2006-01-02"),
			Hora:    m.Hora,
			Monto:   m.Monto,
			Tipo:    m.Tipo,
		})
	}
	for _, c := range compras {
		resp.Compras = append(resp.Compras, dto.CompraResumenItem{
			FacturaID: c.FacturaID,
			Proveedor: c.Proveedor,
			Fecha:     c.Fecha.Format("2006-01-02"),
			Hora:      c.Hora,
			Total:     c.Total,
		})
	}
	for _, c := range cobranzas {
		resp.Cobranzas = append(resp.Cobranzas, dto.CobranzaResumenItem{
			PagoID:  c.PagoID,
			Cliente: c.Cliente,
			Fecha:   c.Fecha.Format("2006-01-02"),
			Hora:    c.Hora,
			Monto:   c.Monto,
		})
	}
	return resp, nil
}

// Audit informe de auditoría del rango.
func (uc *ReportUseCase) Audit(ctx context.Context, desde, hasta time.Time) (*dto.AuditReportResponse, error) {
	if hasta.Before(desde) {
		return nil, domain.ErrInvalidInput
	}
	registros, err := uc.reporteRepo.Auditoria(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	conteos, err := uc.reporteRepo.ConteoModificaciones(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	actividad, err := uc.reporteRepo.ActividadUsuarios(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}

	resp := &dto.AuditReportResponse{}
	for _, r := range registros {
		resp.Registros = append(resp.Registros, dto.AuditoriaItem{
			ID:         r.ID,
			Usuario:    r.Usuario,
			Rol:        r.Rol,
			Fecha:      r.Fecha.Format("2006-01-02"),
			Hora:       r.Hora,
			Tabla:      r.Tabla,
			RegistroID: r.RegistroID,
			Tipo:       r.Tipo,
		})
	}
	for _, c := range conteos {
		resp.Conteos = append(resp.Conteos, dto.ConteoModificacionItem{Tipo: c.Tipo, Cantidad: c.Cantidad})
	}
	for _, a := range actividad {
		resp.ActividadUsuarios = append(resp.ActividadUsuarios, dto.ActividadUsuarioItem{Usuario: a.Usuario, Rol: a.Rol, Cambios: a.Cambios})
	}
	return resp, nil
}

func toDeudaItems(rows []*repository.ClienteDeuda) []dto.ClienteDeudaItem {
	out := make([]dto.ClienteDeudaItem, 0, len(rows))
	for _, d := range rows {
		out = append(out, dto.ClienteDeudaItem{
			ClienteID: d.ClienteID,
			Nombre:    d.Nombre,
			Telefono:  d.Telefono,
			Direccion: d.Direccion,
			Total:     d.Total,
			Remitos:   d.Remitos,
		})
	}
	return out
}
