package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/gestorpyme/gestor-api/internal/domain/entity"
	"github.com/gestorpyme/gestor-api/internal/domain/repository"
)

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo implementación de ProveedorRepository (usable con pool o tx).
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

// Create persiste un nuevo proveedor y devuelve el id generado.
func (r *ProveedorRepo) Create(ctx context.Context, p *entity.Proveedor) (int64, error) {
	query := `
		INSERT INTO proveedores (nombre_proveedor, telefono_proveedor, email_proveedor, direccion_proveedor, is_hidden)
		VALUES ($1, $2, $3, $4, FALSE)
		RETURNING id_proveedor`
	var id int64
	if err := r.q.QueryRow(ctx, query, p.Nombre, p.Telefono, p.Email, p.Direccion).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert proveedor: %w", err)
	}
	return id, nil
}

// GetByID obtiene un proveedor visible por ID; una fila oculta no
// existe para las lecturas.
func (r *ProveedorRepo) GetByID(ctx context.Context, id int64) (*entity.Proveedor, error) {
	query := `
		SELECT id_proveedor, nombre_proveedor, telefono_proveedor, email_proveedor, direccion_proveedor, is_hidden
		FROM proveedores WHERE id_proveedor = $1 AND is_hidden = FALSE`
	var p entity.Proveedor
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Nombre, &p.Telefono, &p.Email, &p.Direccion, &p.Oculto)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &p, nil
}

// ListVisibles lista proveedores no ocultos.
func (r *ProveedorRepo) ListVisibles(ctx context.Context) ([]*entity.Proveedor, error) {
	query := `
		SELECT id_proveedor, nombre_proveedor, telefono_proveedor, email_proveedor, direccion_proveedor, is_hidden
		FROM proveedores WHERE is_hidden = FALSE ORDER BY nombre_proveedor`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proveedor
	for rows.Next() {
		var p entity.Proveedor
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Telefono, &p.Email, &p.Direccion, &p.Oculto); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza los datos de contacto del proveedor. Una fila oculta
// afecta cero filas, igual que una inexistente.
func (r *ProveedorRepo) Update(ctx context.Context, p *entity.Proveedor) (bool, error) {
	query := `
		UPDATE proveedores SET nombre_proveedor = $2, telefono_proveedor = $3, email_proveedor = $4, direccion_proveedor = $5
		WHERE id_proveedor = $1 AND is_hidden = FALSE`
	cmd, err := r.q.Exec(ctx, query, p.ID, p.Nombre, p.Telefono, p.Email, p.Direccion)
	if err != nil {
		return false, fmt.Errorf("update proveedor: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Hide oculta el proveedor; una fila ya oculta no se vuelve a afectar.
func (r *ProveedorRepo) Hide(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE proveedores SET is_hidden = TRUE WHERE id_proveedor = $1 AND is_hidden = FALSE`, id)
	if err != nil {
		return false, fmt.Errorf("hide proveedor: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
