package postgres

import (
	"context"
	"fmt"

	"github.com/gestorpyme/gestor-api/internal/domain/entity"
	"github.com/gestorpyme/gestor-api/internal/domain/repository"
)

var _ repository.CobranzaRepository = (*CobranzaRepo)(nil)

// CobranzaRepo implementación de CobranzaRepository (usable con pool o tx).
type CobranzaRepo struct {
	q Querier
}

// NewCobranzaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCobranzaRepository(q Querier) *CobranzaRepo {
	return &CobranzaRepo{q: q}
}

// CreateCobranza inserta la cabecera del pago y devuelve el id generado.
func (r *CobranzaRepo) CreateCobranza(ctx context.Context, c *entity.Cobranza) (int64, error) {
	query := `
		INSERT INTO cobranzas (id_cliente, monto, fecha_pago, hora_pago)
		VALUES ($1, $2, $3, $4)
		RETURNING id_pago`
	var id int64
	if err := r.q.QueryRow(ctx, query, c.ClienteID, c.Monto, c.Fecha, c.Hora).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert cobranza: %w", err)
	}
	return id, nil
}

// CreateFacturaRemito vincula la cobranza con un remito saldado.
func (r *CobranzaRepo) CreateFacturaRemito(ctx context.Context, fr *entity.FacturaRemito) error {
	query := `
		INSERT INTO facturas_remito (id_remito, id_pago, monto_descontado)
		VALUES ($1, $2, $3)`
	if _, err := r.q.Exec(ctx, query, fr.RemitoID, fr.CobranzaID, fr.Descontado); err != nil {
		return fmt.Errorf("insert factura remito: %w", err)
	}
	return nil
}
