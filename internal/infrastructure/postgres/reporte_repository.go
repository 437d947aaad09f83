package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/gestorpyme/gestor-api/internal/domain/entity"
	"github.com/gestorpyme/gestor-api/internal/domain/repository"
)

var _ repository.ReporteRepository = (*ReporteRepo)(nil)

// ReporteRepo consultas de solo lectura para los informes.
type ReporteRepo struct {
	q Querier
}

// NewReporteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReporteRepository(q Querier) *ReporteRepo {
	return &ReporteRepo{q: q}
}

// periodoClause compila la variante del período a su condición SQL.
// La fecha viaja siempre como $1; acá nunca se interpola valor del cliente.
func periodoClause(col string, clase repository.ClasePeriodo) string {
	switch clase {
	case repository.PeriodoMes:
		return fmt.Sprintf("date_trunc('month', %s) = date_trunc('month', $1::date)", col)
	case repository.PeriodoAnio:
		return fmt.Sprintf("date_part('year', %s) = date_part('year', $1::date)", col)
	default:
		return fmt.Sprintf("%s = $1::date", col)
	}
}

// ResumenVentas totales de remitos emitidos en el rango.
func (r *ReporteRepo) ResumenVentas(ctx context.Context, desde, hasta time.Time) (*repository.ResumenVentas, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(monto_total), 0), COALESCE(SUM(saldo_restante), 0)
		FROM remitos
		WHERE fecha_remito BETWEEN $1 AND $2`
	var res repository.ResumenVentas
	if err := r.q.QueryRow(ctx, query, desde, hasta).Scan(&res.TotalVentas, &res.MontoTotal, &res.SaldoPendiente); err != nil {
		return nil, fmt.Errorf("resumen ventas: %w", err)
	}
	return &res, nil
}

// VentasPorDia total vendido por día del rango.
func (r *ReporteRepo) VentasPorDia(ctx context.Context, desde, hasta time.Time) ([]*repository.VentaPeriodo, error) {
	query := `
		SELECT fecha_remito, SUM(monto_total)
		FROM remitos
		WHERE fecha_remito BETWEEN $1 AND $2
		GROUP BY fecha_remito
		ORDER BY fecha_remito`
	rows, err := r.q.Query(ctx, query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("ventas por día: %w", err)
	}
	defer rows.Close()
	var list []*repository.VentaPeriodo
	for rows.Next() {
		var v repository.VentaPeriodo
		if err := rows.Scan(&v.Fecha, &v.Total); err != nil {
			return nil, fmt.Errorf("scan venta período: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// VentasPorProducto unidades y monto vendidos por producto en el rango.
func (r *ReporteRepo) VentasPorProducto(ctx context.Context, desde, hasta time.Time) ([]*repository.VentaProducto, error) {
	query := `
		SELECT p.nombre_producto, SUM(d.cantidad), SUM(d.subtotal)
		FROM detalles_remito d
		JOIN remitos r ON d.id_remito = r.id_remito
		JOIN productos p ON d.id_producto = p.id_producto
		WHERE r.fecha_remito BETWEEN $1 AND $2
		GROUP BY p.id_producto, p.nombre_producto
		ORDER BY SUM(d.subtotal) DESC`
	rows, err := r.q.Query(ctx, query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("ventas por producto: %w", err)
	}
	defer rows.Close()
	var list []*repository.VentaProducto
	for rows.Next() {
		var v repository.VentaProducto
		if err := rows.Scan(&v.Producto, &v.Cantidad, &v.Total); err != nil {
			return nil, fmt.Errorf("scan venta producto: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// VentasPorCliente remitos y monto comprados por cliente en el rango.
func (r *ReporteRepo) VentasPorCliente(ctx context.Context, desde, hasta time.Time) ([]*repository.VentaCliente, error) {
	query := `
		SELECT c.nombre_cliente, COUNT(*), SUM(r.monto_total)
		FROM remitos r
		JOIN clientes c ON r.id_cliente = c.id_cliente
		WHERE r.fecha_remito BETWEEN $1 AND $2
		GROUP BY c.id_cliente, c.nombre_cliente
		ORDER BY SUM(r.monto_total) DESC`
	rows, err := r.q.Query(ctx, query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("ventas por cliente: %w", err)
	}
	defer rows.Close()
	var list []*repository.VentaCliente
	for rows.Next() {
		var v repository.VentaCliente
		if err := rows.Scan(&v.Cliente, &v.Compras, &v.Monto); err != nil {
			return nil, fmt.Errorf("scan venta cliente: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// TotalVentasPeriodoAnterior total vendido en el mismo rango corrido un
// mes hacia atrás; 0 si no hubo ventas.
func (r *ReporteRepo) TotalVentasPeriodoAnterior(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(monto_total), 0)
		FROM remitos
		WHERE fecha_remito BETWEEN $1::date - INTERVAL '1 month' AND $2::date - INTERVAL '1 month'`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, desde, hasta).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("ventas período anterior: %w", err)
	}
	return total, nil
}

// ResumenInventario valorización del inventario visible a precio de
// compra y de venta.
func (r *ReporteRepo) ResumenInventario(ctx context.Context) (*repository.ResumenInventario, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(precio_compra * stock_disponible), 0),
		       COALESCE(SUM(precio_venta * stock_disponible), 0)
		FROM productos
		WHERE is_hidden = FALSE`
	var res repository.ResumenInventario
	if err := r.q.QueryRow(ctx, query).Scan(&res.TotalProductos, &res.ValorCompra, &res.ValorVenta); err != nil {
		return nil, fmt.Errorf("resumen inventario: %w", err)
	}
	return &res, nil
}

// BajoStock productos visibles en o bajo el stock mínimo.
func (r *ReporteRepo) BajoStock(ctx context.Context) ([]*entity.Producto, error) {
	query := `
		SELECT id_producto, codigo_barras, nombre_producto, precio_compra, precio_venta, stock_disponible, stock_minimo, ultima_actualizacion, is_hidden
		FROM productos
		WHERE stock_disponible <= stock_minimo AND is_hidden = FALSE
		ORDER BY stock_disponible`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("bajo stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.CodigoBarras, &p.Nombre, &p.PrecioCompra, &p.PrecioVenta, &p.Stock, &p.StockMinimo, &p.Actualizacion, &p.Oculto); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// DemandaProductos unidades vendidas por producto en el rango, los más
// (o menos) demandados primero.
func (r *ReporteRepo) DemandaProductos(ctx context.Context, desde, hasta time.Time, ascendente bool, limite int) ([]*repository.DemandaProducto, error) {
	query := `
		SELECT p.id_producto, p.nombre_producto, SUM(d.cantidad)
		FROM detalles_remito d
		JOIN remitos r ON d.id_remito = r.id_remito
		JOIN productos p ON d.id_producto = p.id_producto
		WHERE r.fecha_remito BETWEEN $1 AND $2
		GROUP BY p.id_producto, p.nombre_producto
		ORDER BY SUM(d.cantidad) DESC
		LIMIT $3`
	if ascendente {
		query = `
		SELECT p.id_producto, p.nombre_producto, SUM(d.cantidad)
		FROM detalles_remito d
		JOIN remitos r ON d.id_remito = r.id_remito
		JOIN productos p ON d.id_producto = p.id_producto
		WHERE r.fecha_remito BETWEEN $1 AND $2
		GROUP BY p.id_producto, p.nombre_producto
		ORDER BY SUM(d.cantidad) ASC
		LIMIT $3`
	}
	rows, err := r.q.Query(ctx, query, desde, hasta, limite)
	if err != nil {
		return nil, fmt.Errorf("demanda productos: %w", err)
	}
	defer rows.Close()
	var list []*repository.DemandaProducto
	for rows.Next() {
		var d repository.DemandaProducto
		if err := rows.Scan(&d.ProductoID, &d.Producto, &d.Cantidad); err != nil {
			return nil, fmt.Errorf("scan demanda: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// MovimientosInventario entradas (compras) y salidas (remitos) de stock
// del rango, intercaladas por fecha.
func (r *ReporteRepo) MovimientosInventario(ctx context.Context, desde, hasta time.Time) ([]*repository.MovimientoInventario, error) {
	query := `
		SELECT fc.fecha_compra, 'Entrada', p.id_producto, p.nombre_producto, d.cantidad
		FROM detalles_factura_compra d
		JOIN facturas_compra fc ON d.id_factura = fc.id_factura
		JOIN productos p ON d.id_producto = p.id_producto
		WHERE fc.fecha_compra BETWEEN $1 AND $2
		UNION ALL
		SELECT r.fecha_remito, 'Salida', p.id_producto, p.nombre_producto, d.cantidad
		FROM detalles_remito d
		JOIN remitos r ON d.id_remito = r.id_remito
		JOIN productos p ON d.id_producto = p.id_producto
		WHERE r.fecha_remito BETWEEN $1 AND $2
		ORDER BY 1 DESC`
	rows, err := r.q.Query(ctx, query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("movimientos inventario: %w", err)
	}
	defer rows.Close()
	var list []*repository.MovimientoInventario
	for rows.Next() {
		var m repository.MovimientoInventario
		if err := rows.Scan(&m.Fecha, &m.Tipo, &m.ProductoID, &m.Producto, &m.Cantidad); err != nil {
			return nil, fmt.Errorf("scan movimiento inventario: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ClientesConDeuda deuda acumulada por cliente sobre remitos no pagados.
func (r *ReporteRepo) ClientesConDeuda(ctx context.Context) ([]*repository.ClienteDeuda, error) {
	query := `
		SELECT c.id_cliente, c.nombre_cliente, c.telefono_cliente, c.direccion_cliente,
		       SUM(r.saldo_restante), COUNT(*)
		FROM remitos r
		JOIN clientes c ON r.id_cliente = c.id_cliente
		WHERE r.estado != $1
		GROUP BY c.id_cliente, c.nombre_cliente, c.telefono_cliente, c.direccion_cliente
		ORDER BY SUM(r.saldo_restante) DESC`
	rows, err := r.q.Query(ctx, query, entity.RemitoPagado)
	if err != nil {
		return nil, fmt.Errorf("clientes con deuda: %w", err)
	}
	defer rows.Close()
	return scanClienteDeudas(rows)
}

func scanClienteDeudas(rows pgx.Rows) ([]*repository.ClienteDeuda, error) {
	var list []*repository.ClienteDeuda
	for rows.Next() {
		var d repository.ClienteDeuda
		if err := rows.Scan(&d.ClienteID, &d.Nombre, &d.Telefono, &d.Direccion, &d.Total, &d.Remitos); err != nil {
			return nil, fmt.Errorf("scan deuda cliente: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// HistorialPagos cobranzas históricas con el cliente resuelto.
func (r *ReporteRepo) HistorialPagos(ctx context.Context) ([]*repository.PagoCliente, error) {
	query := `
		SELECT co.id_pago, c.id_cliente, c.nombre_cliente, co.monto, co.fecha_pago, co.hora_pago
		FROM cobranzas co
		JOIN clientes c ON co.id_cliente = c.id_cliente
		ORDER BY co.fecha_pago DESC, co.hora_pago DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("historial pagos: %w", err)
	}
	defer rows.Close()
	var list []*repository.PagoCliente
	for rows.Next() {
		var p repository.PagoCliente
		if err := rows.Scan(&p.PagoID, &p.ClienteID, &p.Cliente, &p.Monto, &p.Fecha, &p.Hora); err != nil {
			return nil, fmt.Errorf("scan pago: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// RemitosPendientes remitos con saldo vivo, con cliente y estado resueltos.
func (r *ReporteRepo) RemitosPendientes(ctx context.Context) ([]*repository.RemitoListado, error) {
	query := `
		SELECT r.id_remito, c.nombre_cliente, r.fecha_remito, r.monto_total, r.saldo_restante, e.estados
		FROM remitos r
		JOIN clientes c ON r.id_cliente = c.id_cliente
		JOIN estados_remito e ON r.estado = e.id_estado
		WHERE r.estado != $1
		ORDER BY r.fecha_remito`
	rows, err := r.q.Query(ctx, query, entity.RemitoPagado)
	if err != nil {
		return nil, fmt.Errorf("remitos pendientes: %w", err)
	}
	defer rows.Close()
	var list []*repository.RemitoListado
	for rows.Next() {
		var row repository.RemitoListado
		if err := rows.Scan(&row.ID, &row.Cliente, &row.Fecha, &row.Total, &row.Saldo, &row.Estado); err != nil {
			return nil, fmt.Errorf("scan remito: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// PorcentajeRecuperado pagado sobre facturado en remitos, como
// porcentaje redondeado a dos decimales. 0 si nunca se facturó.
func (r *ReporteRepo) PorcentajeRecuperado(ctx context.Context) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(ROUND(100 * (SUM(monto_total) - SUM(saldo_restante)) / NULLIF(SUM(monto_total), 0), 2), 0)
		FROM remitos`
	var pct decimal.Decimal
	if err := r.q.QueryRow(ctx, query).Scan(&pct); err != nil {
		return decimal.Zero, fmt.Errorf("porcentaje recuperado: %w", err)
	}
	return pct, nil
}

// DeudasAntiguas deuda por cliente sobre remitos impagos con más de
// `dias` días de antigüedad.
func (r *ReporteRepo) DeudasAntiguas(ctx context.Context, dias int) ([]*repository.ClienteDeuda, error) {
	query := `
		SELECT c.id_cliente, c.nombre_cliente, c.telefono_cliente, c.direccion_cliente,
		       SUM(r.saldo_restante), COUNT(*)
		FROM remitos r
		JOIN clientes c ON r.id_cliente = c.id_cliente
		WHERE r.estado != $1 AND r.fecha_remito <= CURRENT_DATE - $2::int
		GROUP BY c.id_cliente, c.nombre_cliente, c.telefono_cliente, c.direccion_cliente
		ORDER BY SUM(r.saldo_restante) DESC`
	rows, err := r.q.Query(ctx, query, entity.RemitoPagado, dias)
	if err != nil {
		return nil, fmt.Errorf("deudas antiguas: %w", err)
	}
	defer rows.Close()
	return scanClienteDeudas(rows)
}

// HistorialCompras facturas de compra con los datos del proveedor.
func (r *ReporteRepo) HistorialCompras(ctx context.Context) ([]*repository.CompraProveedor, error) {
	query := `
		SELECT fc.id_factura, p.nombre_proveedor, p.telefono_proveedor, p.email_proveedor, p.direccion_proveedor,
		       fc.fecha_compra, fc.hora_compra, fc.monto_total
		FROM facturas_compra fc
		JOIN proveedores p ON fc.id_proveedor = p.id_proveedor
		ORDER BY fc.fecha_compra DESC, fc.hora_compra DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("historial compras: %w", err)
	}
	defer rows.Close()
	var list []*repository.CompraProveedor
	for rows.Next() {
		var c repository.CompraProveedor
		if err := rows.Scan(&c.FacturaID, &c.Proveedor, &c.Telefono, &c.Email, &c.Direccion, &c.Fecha, &c.Hora, &c.Total); err != nil {
			return nil, fmt.Errorf("scan compra proveedor: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ProductosAdquiridos líneas de compra con el estado de stock actual del
// producto.
func (r *ReporteRepo) ProductosAdquiridos(ctx context.Context) ([]*repository.ProductoAdquirido, error) {
	query := `
		SELECT d.id_factura, p.nombre_producto, d.cantidad, p.precio_compra, p.precio_venta, d.subtotal,
		       p.stock_disponible, p.stock_minimo,
		       CASE WHEN p.stock_disponible <= p.stock_minimo THEN 'Reponer' ELSE 'Suficiente' END
		FROM detalles_factura_compra d
		JOIN facturas_compra fc ON d.id_factura = fc.id_factura
		JOIN productos p ON d.id_producto = p.id_producto
		ORDER BY fc.fecha_compra DESC, d.id_factura DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("productos adquiridos: %w", err)
	}
	defer rows.Close()
	var list []*repository.ProductoAdquirido
	for rows.Next() {
		var p repository.ProductoAdquirido
		if err := rows.Scan(&p.FacturaID, &p.Producto, &p.Cantidad, &p.PrecioCompra, &p.PrecioVenta, &p.Subtotal, &p.Stock, &p.StockMinimo, &p.EstadoStock); err != nil {
			return nil, fmt.Errorf("scan producto adquirido: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// SaldoInicial saldo acumulado de caja al inicio del día dado: entradas
// menos salidas de todo lo anterior.
func (r *ReporteRepo) SaldoInicial(ctx context.Context, fecha time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN id_tipo_movimiento = $2 THEN monto ELSE -monto END), 0)
		FROM flujo_caja
		WHERE fecha_movimiento < $1`
	var saldo decimal.Decimal
	if err := r.q.QueryRow(ctx, query, fecha, entity.MovimientoEntrada).Scan(&saldo); err != nil {
		return decimal.Zero, fmt.Errorf("saldo inicial: %w", err)
	}
	return saldo, nil
}

// MovimientosCaja filas del libro de caja del período, con usuario y
// tipo resueltos por nombre.
func (r *ReporteRepo) MovimientosCaja(ctx context.Context, p repository.Periodo) ([]*repository.MovimientoCajaListado, error) {
	query := `
		SELECT fc.id_movimiento, u.nombre_usuario, fc.numero_factura, fc.fecha_movimiento, fc.hora_movimiento, fc.monto, tm.tipo_movimiento
		FROM flujo_caja fc
		JOIN usuarios_sistema u ON fc.id_usuario = u.id_usuario
		JOIN tipos_movimiento tm ON fc.id_tipo_movimiento = tm.id_tipo_movimiento
		WHERE ` + periodoClause("fc.fecha_movimiento", p.Clase) + `
		ORDER BY fc.fecha_movimiento DESC, fc.hora_movimiento DESC`
	rows, err := r.q.Query(ctx, query, p.Fecha)
	if err != nil {
		return nil, fmt.Errorf("movimientos caja: %w", err)
	}
	defer rows.Close()
	var list []*repository.MovimientoCajaListado
	for rows.Next() {
		var m repository.MovimientoCajaListado
		if err := rows.Scan(&m.ID, &m.Usuario, &m.Factura, &m.Fecha, &m.Hora, &m.Monto, &m.Tipo); err != nil {
			return nil, fmt.Errorf("scan movimiento caja: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// TotalesCaja entradas y salidas del período.
func (r *ReporteRepo) TotalesCaja(ctx context.Context, p repository.Periodo) (*repository.TotalesCaja, error) {
	query := `
		SELECT COALESCE(SUM(monto) FILTER (WHERE id_tipo_movimiento = $2), 0),
		       COALESCE(SUM(monto) FILTER (WHERE id_tipo_movimiento = $3), 0)
		FROM flujo_caja
		WHERE ` + periodoClause("fecha_movimiento", p.Clase)
	var t repository.TotalesCaja
	if err := r.q.QueryRow(ctx, query, p.Fecha, entity.MovimientoEntrada, entity.MovimientoSalida).Scan(&t.Entradas, &t.Salidas); err != nil {
		return nil, fmt.Errorf("totales caja: %w", err)
	}
	return &t, nil
}

// ComprasDelPeriodo facturas de compra del período.
func (r *ReporteRepo) ComprasDelPeriodo(ctx context.Context, p repository.Periodo) ([]*repository.CompraResumen, error) {
	query := `
		SELECT fc.id_factura, pr.nombre_proveedor, fc.fecha_compra, fc.hora_compra, fc.monto_total
		FROM facturas_compra fc
		JOIN proveedores pr ON fc.id_proveedor = pr.id_proveedor
		WHERE ` + periodoClause("fc.fecha_compra", p.Clase) + `
		ORDER BY fc.fecha_compra DESC, fc.hora_compra DESC`
	rows, err := r.q.Query(ctx, query, p.Fecha)
	if err != nil {
		return nil, fmt.Errorf("compras del período: %w", err)
	}
	defer rows.Close()
	var list []*repository.CompraResumen
	for rows.Next() {
		var c repository.CompraResumen
		if err := rows.Scan(&c.FacturaID, &c.Proveedor, &c.Fecha, &c.Hora, &c.Total); err != nil {
			return nil, fmt.Errorf("scan compra: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// CobranzasDelPeriodo cobranzas del período.
func (r *ReporteRepo) CobranzasDelPeriodo(ctx context.Context, p repository.Periodo) ([]*repository.CobranzaResumen, error) {
	query := `
		SELECT co.id_pago, c.nombre_cliente, co.fecha_pago, co.hora_pago, co.monto
		FROM cobranzas co
		JOIN clientes c ON co.id_cliente = c.id_cliente
		WHERE ` + periodoClause("co.fecha_pago", p.Clase) + `
		ORDER BY co.fecha_pago DESC, co.hora_pago DESC`
	rows, err := r.q.Query(ctx, query, p.Fecha)
	if err != nil {
		return nil, fmt.Errorf("cobranzas del período: %w", err)
	}
	defer rows.Close()
	var list []*repository.CobranzaResumen
	for rows.Next() {
		var c repository.CobranzaResumen
		if err := rows.Scan(&c.PagoID, &c.Cliente, &c.Fecha, &c.Hora, &c.Monto); err != nil {
			return nil, fmt.Errorf("scan cobranza: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Auditoria filas de auditoría del rango con el usuario responsable.
func (r *ReporteRepo) Auditoria(ctx context.Context, desde, hasta time.Time) ([]*repository.AuditoriaResumen, error) {
	query := `
		SELECT a.id_auditoria, u.nombre_usuario, ru.rol, a.fecha_cambio, a.hora_cambio, a.tabla_afectada, a.id_registro_afectado,
		       CASE WHEN a.tipo_modificacion = $3 THEN 'Modificación' ELSE 'Ocultación' END
		FROM auditoria a
		JOIN usuarios_sistema u ON a.id_usuario = u.id_usuario
		JOIN roles_usuario ru ON u.id_rol = ru.id_rol
		WHERE a.fecha_cambio BETWEEN $1 AND $2
		ORDER BY a.fecha_cambio DESC, a.hora_cambio DESC`
	rows, err := r.q.Query(ctx, query, desde, hasta, entity.AuditModificacion)
	if err != nil {
		return nil, fmt.Errorf("auditoría: %w", err)
	}
	defer rows.Close()
	var list []*repository.AuditoriaResumen
	for rows.Next() {
		var a repository.AuditoriaResumen
		if err := rows.Scan(&a.ID, &a.Usuario, &a.Rol, &a.Fecha, &a.Hora, &a.Tabla, &a.RegistroID, &a.Tipo); err != nil {
			return nil, fmt.Errorf("scan auditoría: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// ConteoModificaciones cambios del rango agrupados por tipo.
func (r *ReporteRepo) ConteoModificaciones(ctx context.Context, desde, hasta time.Time) ([]*repository.ConteoModificacion, error) {
	query := `
		SELECT CASE WHEN tipo_modificacion = $3 THEN 'Modificación' ELSE 'Ocultación' END, COUNT(*)
		FROM auditoria
		WHERE fecha_cambio BETWEEN $1 AND $2
		GROUP BY tipo_modificacion`
	rows, err := r.q.Query(ctx, query, desde, hasta, entity.AuditModificacion)
	if err != nil {
		return nil, fmt.Errorf("conteo modificaciones: %w", err)
	}
	defer rows.Close()
	var list []*repository.ConteoModificacion
	for rows.Next() {
		var c repository.ConteoModificacion
		if err := rows.Scan(&c.Tipo, &c.Cantidad); err != nil {
			return nil, fmt.Errorf("scan conteo: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ActividadUsuarios cambios del rango agrupados por usuario.
func (r *ReporteRepo) ActividadUsuarios(ctx context.Context, desde, hasta time.Time) ([]*repository.ActividadUsuario, error) {
	query := `
		SELECT u.nombre_usuario, ru.rol, COUNT(*)
		FROM auditoria a
		JOIN usuarios_sistema u ON a.id_usuario = u.id_usuario
		JOIN roles_usuario ru ON u.id_rol = ru.id_rol
		WHERE a.fecha_cambio BETWEEN $1 AND $2
		GROUP BY u.id_usuario, u.nombre_usuario, ru.rol
		ORDER BY COUNT(*) DESC`
	rows, err := r.q.Query(ctx, query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("actividad usuarios: %w", err)
	}
	defer rows.Close()
	var list []*repository.ActividadUsuario
	for rows.Next() {
		var a repository.ActividadUsuario
		if err := rows.Scan(&a.Usuario, &a.Rol, &a.Cambios); err != nil {
			return nil, fmt.Errorf("scan actividad: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
