package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/gestorpyme/gestor-api/internal/domain/entity"
	"github.com/gestorpyme/gestor-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste un nuevo cliente y devuelve el id generado.
func (r *ClienteRepo) Create(ctx context.Context, c *entity.Cliente) (int64, error) {
	query := `
		INSERT INTO clientes (nombre_cliente, telefono_cliente, direccion_cliente, is_hidden)
		VALUES ($1, $2, $3, FALSE)
		RETURNING id_cliente`
	var id int64
	if err := r.q.QueryRow(ctx, query, c.Nombre, c.Telefono, c.Direccion).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert cliente: %w", err)
	}
	return id, nil
}

// GetByID obtiene un cliente visible por ID; una fila oculta no existe
// para las lecturas.
func (r *ClienteRepo) GetByID(ctx context.Context, id int64) (*entity.Cliente, error) {
	query := `
		SELECT id_cliente, nombre_cliente, telefono_cliente, direccion_cliente, is_hidden
		FROM clientes WHERE id_cliente = $1 AND is_hidden = FALSE`
	var c entity.Cliente
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Nombre, &c.Telefono, &c.Direccion, &c.Oculto)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// ListVisibles lista clientes no ocultos.
func (r *ClienteRepo) ListVisibles(ctx context.Context) ([]*entity.Cliente, error) {
	query := `
		SELECT id_cliente, nombre_cliente, telefono_cliente, direccion_cliente, is_hidden
		FROM clientes WHERE is_hidden = FALSE ORDER BY nombre_cliente`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Telefono, &c.Direccion, &c.Oculto); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza los datos de contacto del cliente. Una fila oculta
// afecta cero filas, igual que una inexistente.
func (r *ClienteRepo) Update(ctx context.Context, c *entity.Cliente) (bool, error) {
	query := `
		UPDATE clientes SET nombre_cliente = $2, telefono_cliente = $3, direccion_cliente = $4
		WHERE id_cliente = $1 AND is_hidden = FALSE`
	cmd, err := r.q.Exec(ctx, query, c.ID, c.Nombre, c.Telefono, c.Direccion)
	if err != nil {
		return false, fmt.Errorf("update cliente: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Hide oculta el cliente; una fila ya oculta no se vuelve a afectar.
func (r *ClienteRepo) Hide(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE clientes SET is_hidden = TRUE WHERE id_cliente = $1 AND is_hidden = FALSE`, id)
	if err != nil {
		return false, fmt.Errorf("hide cliente: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
