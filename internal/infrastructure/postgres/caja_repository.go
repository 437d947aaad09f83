package postgres

import (
	"context"
	"fmt"

	"github.com/gestorpyme/gestor-api/internal/domain/entity"
	"github.com/gestorpyme/gestor-api/internal/domain/repository"
)

var _ repository.CajaRepository = (*CajaRepo)(nil)

// CajaRepo libro de caja sobre PostgreSQL (usable con pool o tx).
type CajaRepo struct {
	q Querier
}

// NewCajaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCajaRepository(q Querier) *CajaRepo {
	return &CajaRepo{q: q}
}

// Append agrega una entrada al libro de caja.
func (r *CajaRepo) Append(ctx context.Context, m *entity.MovimientoCaja) error {
	query := `
		INSERT INTO flujo_caja (id_usuario, numero_factura, fecha_movimiento, hora_movimiento, id_tipo_movimiento, monto)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.q.Exec(ctx, query, m.UsuarioID, m.Factura, m.Fecha, m.Hora, m.Tipo, m.Monto); err != nil {
		return fmt.Errorf("insert movimiento caja: %w", err)
	}
	return nil
}
