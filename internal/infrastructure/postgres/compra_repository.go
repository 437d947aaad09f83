package postgres

import (
	"context"
	"fmt"

	"github.com/gestorpyme/gestor-api/internal/domain/entity"
	"github.com/gestorpyme/gestor-api/internal/domain/repository"
)

var _ repository.CompraRepository = (*CompraRepo)(nil)

// CompraRepo implementación de CompraRepository (usable con pool o tx).
type CompraRepo struct {
	q Querier
}

// NewCompraRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompraRepository(q Querier) *CompraRepo {
	return &CompraRepo{q: q}
}

// CreateFactura inserta la cabecera de la compra y devuelve el id generado.
func (r *CompraRepo) CreateFactura(ctx context.Context, f *entity.FacturaCompra) (int64, error) {
	query := `
		INSERT INTO facturas_compra (id_proveedor, monto_total, fecha_compra, hora_compra)
		VALUES ($1, $2, $3, $4)
		RETURNING id_factura`
	var id int64
	if err := r.q.QueryRow(ctx, query, f.ProveedorID, f.Total, f.Fecha, f.Hora).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert factura compra: %w", err)
	}
	return id, nil
}

// CreateDetalle inserta una línea de compra.
func (r *CompraRepo) CreateDetalle(ctx context.Context, d *entity.FacturaCompraDetalle) error {
	query := `
		INSERT INTO detalles_factura_compra (id_factura, id_producto, cantidad, subtotal)
		VALUES ($1, $2, $3, $4)`
	if _, err := r.q.Exec(ctx, query, d.FacturaID, d.ProductoID, d.Cantidad, d.Subtotal); err != nil {
		return fmt.Errorf("insert detalle compra: %w", err)
	}
	return nil
}

// ProductosPorProveedor lista los productos comprados a un proveedor con
// la fecha de la última compra.
func (r *CompraRepo) ProductosPorProveedor(ctx context.Context, proveedorID int64) ([]*repository.ProductoProveedor, error) {
	query := `
		SELECT p.nombre_producto, MAX(fc.fecha_compra), SUM(d.cantidad), MAX(p.precio_compra)
		FROM detalles_factura_compra d
		JOIN facturas_compra fc ON d.id_factura = fc.id_factura
		JOIN productos p ON d.id_producto = p.id_producto
		WHERE fc.id_proveedor = $1
		GROUP BY p.id_producto, p.nombre_producto
		ORDER BY MAX(fc.fecha_compra) DESC`
	rows, err := r.q.Query(ctx, query, proveedorID)
	if err != nil {
		return nil, fmt.Errorf("productos por proveedor: %w", err)
	}
	defer rows.Close()
	var list []*repository.ProductoProveedor
	for rows.Next() {
		var row repository.ProductoProveedor
		if err := rows.Scan(&row.Producto, &row.UltimaCompra, &row.Cantidad, &row.PrecioCompra); err != nil {
			return nil, fmt.Errorf("scan producto proveedor: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}
