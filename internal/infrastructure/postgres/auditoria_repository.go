package postgres

import (
	"context"
	"fmt"

	"github.com/gestorpyme/gestor-api/internal/domain/entity"
	"github.com/gestorpyme/gestor-api/internal/domain/repository"
)

var _ repository.AuditoriaRepository = (*AuditoriaRepo)(nil)

// AuditoriaRepo historial de cambios sobre PostgreSQL (usable con pool o
// tx; dentro de RunAudited queda atado a la misma tx que la mutación).
type AuditoriaRepo struct {
	q Querier
}

// NewAuditoriaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAuditoriaRepository(q Querier) *AuditoriaRepo {
	return &AuditoriaRepo{q: q}
}

// Append agrega una fila de auditoría.
func (r *AuditoriaRepo) Append(ctx context.Context, rec *entity.RegistroAuditoria) error {
	query := `
		INSERT INTO auditoria (id_usuario, fecha_cambio, hora_cambio, tabla_afectada, id_registro_afectado, tipo_modificacion, valores_previos, valores_nuevos)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := r.q.Exec(ctx, query,
		rec.UsuarioID, rec.Fecha, rec.Hora, rec.Tabla, rec.RegistroID, rec.Tipo, rec.ValoresPrevios, rec.ValoresNuevos,
	); err != nil {
		return fmt.Errorf("insert auditoria: %w", err)
	}
	return nil
}
