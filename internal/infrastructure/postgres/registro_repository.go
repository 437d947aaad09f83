package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/gestorpyme/gestor-api/internal/domain/entity"
	"github.com/gestorpyme/gestor-api/internal/domain/repository"
)

var _ repository.RegistroRepository = (*RegistroRepo)(nil)

// RegistroRepo consultas de solo lectura para los listados de caja,
// auditoría y facturas.
type RegistroRepo struct {
	q Querier
}

// NewRegistroRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRegistroRepository(q Querier) *RegistroRepo {
	return &RegistroRepo{q: q}
}

// ListCaja libro de caja completo, lo más reciente primero.
func (r *RegistroRepo) ListCaja(ctx context.Context) ([]*repository.MovimientoCajaListado, error) {
	query := `
		SELECT fc.id_movimiento, u.nombre_usuario, fc.numero_factura, fc.fecha_movimiento, fc.hora_movimiento, fc.monto, tm.tipo_movimiento
		FROM flujo_caja fc
		JOIN usuarios_sistema u ON fc.id_usuario = u.id_usuario
		JOIN tipos_movimiento tm ON fc.id_tipo_movimiento = tm.id_tipo_movimiento
		ORDER BY fc.fecha_movimiento DESC, fc.hora_movimiento DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list caja: %w", err)
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

// ListAuditoria historial de cambios completo, lo más reciente primero.
func (r *RegistroRepo) ListAuditoria(ctx context.Context) ([]*repository.AuditoriaResumen, error) {
	query := `
		SELECT a.id_auditoria, u.nombre_usuario, ru.rol, a.fecha_cambio, a.hora_cambio, a.tabla_afectada, a.id_registro_afectado,
		       CASE WHEN a.tipo_modificacion = $1 THEN 'Modificación' ELSE 'Ocultación' END
		FROM auditoria a
		JOIN usuarios_sistema u ON a.id_usuario = u.id_usuario
		JOIN roles_usuario ru ON u.id_rol = ru.id_rol
		ORDER BY a.fecha_cambio DESC, a.hora_cambio DESC`
	rows, err := r.q.Query(ctx, query, entity.AuditModificacion)
	if err != nil {
		return nil, fmt.Errorf("list auditoría: %w", err)
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

// GetAuditoria fila de auditoría con los snapshots serializados.
func (r *RegistroRepo) GetAuditoria(ctx context.Context, id int64) (*repository.AuditoriaDetalle, error) {
	query := `
		SELECT a.id_auditoria, u.nombre_usuario, ru.rol, a.fecha_cambio, a.hora_cambio, a.tabla_afectada, a.id_registro_afectado,
		       CASE WHEN a.tipo_modificacion = $2 THEN 'Modificación' ELSE 'Ocultación' END,
		       a.valores_previos, a.valores_nuevos
		FROM auditoria a
		JOIN usuarios_sistema u ON a.id_usuario = u.id_usuario
		JOIN roles_usuario ru ON u.id_rol = ru.id_rol
		WHERE a.id_auditoria = $1`
	var d repository.AuditoriaDetalle
	err := r.q.QueryRow(ctx, query, id, entity.AuditModificacion).Scan(
		&d.ID, &d.Usuario, &d.Rol, &d.Fecha, &d.Hora, &d.Tabla, &d.RegistroID, &d.Tipo,
		&d.ValoresPrevios, &d.ValoresNuevos,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get auditoría: %w", err)
	}
	return &d, nil
}

// ListFacturas listado unificado de facturas de venta (cobranzas) y de
// compra, lo más reciente primero.
func (r *RegistroRepo) ListFacturas(ctx context.Context) ([]*repository.FacturaListado, error) {
	query := `
		SELECT co.id_pago, c.nombre_cliente, co.monto, co.fecha_pago, co.hora_pago, 'venta', 'Clientes'
		FROM cobranzas co
		JOIN clientes c ON co.id_cliente = c.id_cliente
		UNION ALL
		SELECT fc.id_factura, p.nombre_proveedor, fc.monto_total, fc.fecha_compra, fc.hora_compra, 'compra', 'Proveedores'
		FROM facturas_compra fc
		JOIN proveedores p ON fc.id_proveedor = p.id_proveedor
		ORDER BY 4 DESC, 5 DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list facturas: %w", err)
	}
	defer rows.Close()
	var list []*repository.FacturaListado
	for rows.Next() {
		var f repository.FacturaListado
		if err := rows.Scan(&f.Numero, &f.Entidad, &f.Monto, &f.Fecha, &f.Hora, &f.Tipo, &f.TipoEntidad); err != nil {
			return nil, fmt.Errorf("scan factura: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// GetFacturaVenta cabecera de una factura de venta (cobranza) con los
// datos del cliente.
func (r *RegistroRepo) GetFacturaVenta(ctx context.Context, pagoID int64) (*repository.FacturaDetalle, error) {
	query := `
		SELECT co.id_pago, c.nombre_cliente, c.telefono_cliente, c.direccion_cliente, co.monto, co.fecha_pago, co.hora_pago
		FROM cobranzas co
		JOIN clientes c ON co.id_cliente = c.id_cliente
		WHERE co.id_pago = $1`
	var d repository.FacturaDetalle
	err := r.q.QueryRow(ctx, query, pagoID).Scan(&d.Numero, &d.Entidad, &d.Telefono, &d.Direccion, &d.Monto, &d.Fecha, &d.Hora)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get factura venta: %w", err)
	}
	d.Tipo = "Venta"
	return &d, nil
}

// RemitosDeCobranza remitos alcanzados por la cobranza, con sus líneas.
func (r *RegistroRepo) RemitosDeCobranza(ctx context.Context, pagoID int64) ([]*repository.RemitoCobrado, error) {
	query := `
		SELECT rm.id_remito, rm.fecha_remito, rm.monto_total, rm.saldo_restante,
		       p.id_producto, p.nombre_producto, d.cantidad, d.subtotal
		FROM facturas_remito fr
		JOIN remitos rm ON fr.id_remito = rm.id_remito
		JOIN detalles_remito d ON d.id_remito = rm.id_remito
		JOIN productos p ON d.id_producto = p.id_producto
		WHERE fr.id_pago = $1
		ORDER BY rm.id_remito, p.nombre_producto`
	rows, err := r.q.Query(ctx, query, pagoID)
	if err != nil {
		return nil, fmt.Errorf("remitos de cobranza: %w", err)
	}
	defer rows.Close()
	var list []*repository.RemitoCobrado
	for rows.Next() {
		var rc repository.RemitoCobrado
		if err := rows.Scan(&rc.RemitoID, &rc.Fecha, &rc.Total, &rc.Saldo, &rc.ProductoID, &rc.Producto, &rc.Cantidad, &rc.Subtotal); err != nil {
			return nil, fmt.Errorf("scan remito cobrado: %w", err)
		}
		list = append(list, &rc)
	}
	return list, rows.Err()
}

// GetFacturaCompra cabecera de una factura de compra con los datos del
// proveedor.
func (r *RegistroRepo) GetFacturaCompra(ctx context.Context, facturaID int64) (*repository.FacturaDetalle, error) {
	query := `
		SELECT fc.id_factura, p.nombre_proveedor, p.telefono_proveedor, p.direccion_proveedor, fc.monto_total, fc.fecha_compra, fc.hora_compra
		FROM facturas_compra fc
		JOIN proveedores p ON fc.id_proveedor = p.id_proveedor
		WHERE fc.id_factura = $1`
	var d repository.FacturaDetalle
	err := r.q.QueryRow(ctx, query, facturaID).Scan(&d.Numero, &d.Entidad, &d.Telefono, &d.Direccion, &d.Monto, &d.Fecha, &d.Hora)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get factura compra: %w", err)
	}
	d.Tipo = "Compra"
	return &d, nil
}

// DetallesDeCompra líneas de una factura de compra con el producto resuelto.
func (r *RegistroRepo) DetallesDeCompra(ctx context.Context, facturaID int64) ([]*repository.DetalleCompra, error) {
	query := `
		SELECT p.id_producto, p.nombre_producto, d.cantidad, d.subtotal
		FROM detalles_factura_compra d
		JOIN productos p ON d.id_producto = p.id_producto
		WHERE d.id_factura = $1
		ORDER BY p.nombre_producto`
	rows, err := r.q.Query(ctx, query, facturaID)
	if err != nil {
		return nil, fmt.Errorf("detalles de compra: %w", err)
	}
	defer rows.Close()
	var list []*repository.DetalleCompra
	for rows.Next() {
		var d repository.DetalleCompra
		if err := rows.Scan(&d.ProductoID, &d.Producto, &d.Cantidad, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("scan detalle compra: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
