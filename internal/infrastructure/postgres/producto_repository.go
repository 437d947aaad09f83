package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/gestorpyme/gestor-api/internal/domain"
	"github.com/gestorpyme/gestor-api/internal/domain/entity"
	"github.com/gestorpyme/gestor-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación de ProductoRepository (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un nuevo producto con stock 0 y devuelve el id generado.
func (r *ProductoRepo) Create(ctx context.Context, p *entity.Producto) (int64, error) {
	query := `
		INSERT INTO productos (codigo_barras, nombre_producto, precio_compra, precio_venta, stock_disponible, stock_minimo, ultima_actualizacion, is_hidden)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE)
		RETURNING id_producto`
	var id int64
	err := r.q.QueryRow(ctx, query,
		p.CodigoBarras, p.Nombre, p.PrecioCompra, p.PrecioVenta, p.Stock, p.StockMinimo, p.Actualizacion,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert producto: %w", err)
	}
	return id, nil
}

// GetByID obtiene un producto visible por ID; una fila oculta no existe
// para las lecturas.
func (r *ProductoRepo) GetByID(ctx context.Context, id int64) (*entity.Producto, error) {
	query := `
		SELECT id_producto, codigo_barras, nombre_producto, precio_compra, precio_venta, stock_disponible, stock_minimo, ultima_actualizacion, is_hidden
		FROM productos WHERE id_producto = $1 AND is_hidden = FALSE`
	var p entity.Producto
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.CodigoBarras, &p.Nombre, &p.PrecioCompra, &p.PrecioVenta, &p.Stock, &p.StockMinimo, &p.Actualizacion, &p.Oculto,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// ListVisibles lista productos no ocultos; con soloListos filtra los vendibles.
func (r *ProductoRepo) ListVisibles(ctx context.Context, soloListos bool) ([]*entity.Producto, error) {
	query := `
		SELECT id_producto, codigo_barras, nombre_producto, precio_compra, precio_venta, stock_disponible, stock_minimo, ultima_actualizacion, is_hidden
		FROM productos WHERE is_hidden = FALSE`
	if soloListos {
		query += ` AND precio_venta > 0 AND stock_disponible > 0`
	}
	query += ` ORDER BY ultima_actualizacion DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
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

// ControlStockMinimo indica si hay productos en o bajo el stock mínimo y cuántos.
func (r *ProductoRepo) ControlStockMinimo(ctx context.Context) (*repository.ControlStock, error) {
	query := `
		SELECT COUNT(*) > 0, COUNT(*)
		FROM productos
		WHERE stock_disponible <= stock_minimo AND is_hidden = FALSE`
	var c repository.ControlStock
	if err := r.q.QueryRow(ctx, query).Scan(&c.Peligro, &c.AReponer); err != nil {
		return nil, fmt.Errorf("control stock mínimo: %w", err)
	}
	return &c, nil
}

// Update modifica nombre, precios y stock mínimo. El stock no se toca acá:
// solo lo mueven compras y remitos. Una fila oculta afecta cero filas.
func (r *ProductoRepo) Update(ctx context.Context, p *entity.Producto) (bool, error) {
	query := `
		UPDATE productos SET nombre_producto = $2, precio_compra = $3, precio_venta = $4, stock_minimo = $5
		WHERE id_producto = $1 AND is_hidden = FALSE`
	cmd, err := r.q.Exec(ctx, query, p.ID, p.Nombre, p.PrecioCompra, p.PrecioVenta, p.StockMinimo)
	if err != nil {
		return false, fmt.Errorf("update producto: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Hide oculta el producto; una fila ya oculta no se vuelve a afectar.
func (r *ProductoRepo) Hide(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE productos SET is_hidden = TRUE WHERE id_producto = $1 AND is_hidden = FALSE`, id)
	if err != nil {
		return false, fmt.Errorf("hide producto: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// AgregarStock incrementa el stock en el servidor y actualiza precios y
// fecha en la misma sentencia: dos compras concurrentes del mismo
// producto no se pisan.
func (r *ProductoRepo) AgregarStock(ctx context.Context, id int64, cantidad int64, precioCompra, precioVenta decimal.Decimal, fecha time.Time) (bool, error) {
	query := `
		UPDATE productos
		SET stock_disponible = stock_disponible + $2, precio_compra = $3, precio_venta = $4, ultima_actualizacion = $5
		WHERE id_producto = $1`
	cmd, err := r.q.Exec(ctx, query, id, cantidad, precioCompra, precioVenta, fecha)
	if err != nil {
		return false, fmt.Errorf("agregar stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// DescontarStock resta cantidad del stock en el servidor. No exige stock
// suficiente (convención del negocio, no restricción de escritura).
func (r *ProductoRepo) DescontarStock(ctx context.Context, id int64, cantidad int64) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE productos SET stock_disponible = stock_disponible - $2 WHERE id_producto = $1`, id, cantidad)
	if err != nil {
		return false, fmt.Errorf("descontar stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
