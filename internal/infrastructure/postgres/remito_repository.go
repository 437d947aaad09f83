package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/gestorpyme/gestor-api/internal/domain/entity"
	"github.com/gestorpyme/gestor-api/internal/domain/repository"
)

var _ repository.RemitoRepository = (*RemitoRepo)(nil)

// RemitoRepo implementación de RemitoRepository (usable con pool o tx).
type RemitoRepo struct {
	q Querier
}

// NewRemitoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRemitoRepository(q Querier) *RemitoRepo {
	return &RemitoRepo{q: q}
}

// Create inserta la cabecera del remito con saldo igual al total y
// estado pendiente; devuelve el id generado.
func (r *RemitoRepo) Create(ctx context.Context, rem *entity.Remito) (int64, error) {
	query := `
		INSERT INTO remitos (id_cliente, fecha_remito, monto_total, saldo_restante, estado)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_remito`
	var id int64
	if err := r.q.QueryRow(ctx, query, rem.ClienteID, rem.Fecha, rem.Total, rem.Saldo, rem.Estado).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert remito: %w", err)
	}
	return id, nil
}

// CreateDetalle inserta una línea de remito.
func (r *RemitoRepo) CreateDetalle(ctx context.Context, d *entity.RemitoDetalle) error {
	query := `
		INSERT INTO detalles_remito (id_remito, id_producto, cantidad, subtotal)
		VALUES ($1, $2, $3, $4)`
	if _, err := r.q.Exec(ctx, query, d.RemitoID, d.ProductoID, d.Cantidad, d.Subtotal); err != nil {
		return fmt.Errorf("insert detalle remito: %w", err)
	}
	return nil
}

// GetByID obtiene un remito por ID.
func (r *RemitoRepo) GetByID(ctx context.Context, id int64) (*entity.Remito, error) {
	query := `
		SELECT id_remito, id_cliente, fecha_remito, monto_total, saldo_restante, estado
		FROM remitos WHERE id_remito = $1`
	var rem entity.Remito
	err := r.q.QueryRow(ctx, query, id).Scan(&rem.ID, &rem.ClienteID, &rem.Fecha, &rem.Total, &rem.Saldo, &rem.Estado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get remito: %w", err)
	}
	return &rem, nil
}

// ListAll lista todos los remitos con el cliente y el estado resueltos.
func (r *RemitoRepo) ListAll(ctx context.Context) ([]*repository.RemitoListado, error) {
	query := `
		SELECT r.id_remito, c.nombre_cliente, r.fecha_remito, r.monto_total, r.saldo_restante, e.estados
		FROM remitos r
		JOIN clientes c ON r.id_cliente = c.id_cliente
		JOIN estados_remito e ON r.estado = e.id_estado
		ORDER BY r.fecha_remito DESC, r.id_remito DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list remitos: %w", err)
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

// ListPendientesByCliente lista los remitos no pagados del cliente.
func (r *RemitoRepo) ListPendientesByCliente(ctx context.Context, clienteID int64) ([]*entity.Remito, error) {
	query := `
		SELECT id_remito, id_cliente, fecha_remito, monto_total, saldo_restante, estado
		FROM remitos
		WHERE id_cliente = $1 AND estado != $2
		ORDER BY fecha_remito`
	rows, err := r.q.Query(ctx, query, clienteID, entity.RemitoPagado)
	if err != nil {
		return nil, fmt.Errorf("list remitos cliente: %w", err)
	}
	defer rows.Close()
	var list []*entity.Remito
	for rows.Next() {
		var rem entity.Remito
		if err := rows.Scan(&rem.ID, &rem.ClienteID, &rem.Fecha, &rem.Total, &rem.Saldo, &rem.Estado); err != nil {
			return nil, fmt.Errorf("scan remito: %w", err)
		}
		list = append(list, &rem)
	}
	return list, rows.Err()
}

// Detalles lista las líneas del remito con el producto resuelto.
func (r *RemitoRepo) Detalles(ctx context.Context, remitoID int64) ([]*repository.RemitoDetalleRow, error) {
	query := `
		SELECT p.nombre_producto, d.cantidad, d.subtotal, ROUND(d.subtotal / d.cantidad, 2)
		FROM detalles_remito d
		JOIN productos p ON d.id_producto = p.id_producto
		WHERE d.id_remito = $1`
	rows, err := r.q.Query(ctx, query, remitoID)
	if err != nil {
		return nil, fmt.Errorf("detalles remito: %w", err)
	}
	defer rows.Close()
	var list []*repository.RemitoDetalleRow
	for rows.Next() {
		var row repository.RemitoDetalleRow
		if err := rows.Scan(&row.Producto, &row.Cantidad, &row.Subtotal, &row.PrecioUnitario); err != nil {
			return nil, fmt.Errorf("scan detalle remito: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// Deuda devuelve la cantidad de remitos impagos y la deuda total del cliente.
func (r *RemitoRepo) Deuda(ctx context.Context, clienteID int64) (*repository.DeudaCliente, error) {
	query := `
		SELECT COUNT(*) FILTER (WHERE estado != $2), COALESCE(SUM(saldo_restante) FILTER (WHERE estado != $2), 0)
		FROM remitos WHERE id_cliente = $1`
	var d repository.DeudaCliente
	if err := r.q.QueryRow(ctx, query, clienteID, entity.RemitoPagado).Scan(&d.Remitos, &d.Total); err != nil {
		return nil, fmt.Errorf("deuda cliente: %w", err)
	}
	return &d, nil
}

// AplicarPago descuenta el monto del saldo y recalcula el estado en la
// misma sentencia. La guarda saldo_restante >= monto hace imposible que
// el saldo crezca o quede negativo, aun con cobranzas concurrentes.
func (r *RemitoRepo) AplicarPago(ctx context.Context, remitoID int64, monto decimal.Decimal) (bool, error) {
	query := `
		UPDATE remitos
		SET saldo_restante = saldo_restante - $2,
		    estado = CASE WHEN saldo_restante - $2 <= 0 THEN $3 ELSE $4 END
		WHERE id_remito = $1 AND saldo_restante >= $2`
	cmd, err := r.q.Exec(ctx, query, remitoID, monto, entity.RemitoPagado, entity.RemitoParcial)
	if err != nil {
		return false, fmt.Errorf("aplicar pago: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
