package audit

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gestorpyme/gestor-api/internal/domain/entity"
)

// Marcadores literales de los snapshots de ocultación: una ocultación no
// guarda los campos de la fila, solo el cambio de la bandera.
const (
	MarcadorVisible = "is_hidden: FALSE"
	MarcadorOculto  = "is_hidden: TRUE"
)

// Snapshot estado plano de una fila: campo -> valor. Se serializa como
// JSON de un solo nivel.
type Snapshot map[string]any

// NewChange arma la fila de auditoría de una modificación (tipo 2) con
// los snapshots previo y nuevo serializados y la fecha y hora partidas.
func NewChange(usuarioID int64, tabla string, registroID int64, previos, nuevos Snapshot) (*entity.RegistroAuditoria, error) {
	prevJSON, err := json.Marshal(previos)
	if err != nil {
		return nil, fmt.Errorf("serializar snapshot previo: %w", err)
	}
	newJSON, err := json.Marshal(nuevos)
	if err != nil {
		return nil, fmt.Errorf("serializar snapshot nuevo: %w", err)
	}
	rec := base(usuarioID, tabla, registroID, entity.AuditModificacion)
	rec.ValoresPrevios = prevJSON
	rec.ValoresNuevos = newJSON
	return rec, nil
}

// NewHide arma la fila de auditoría de una ocultación (tipo 3): un
// snapshot de un solo campo con el marcador literal del cambio de
// bandera, en lugar de los valores reales de la fila.
func NewHide(usuarioID int64, tabla string, registroID int64) *entity.RegistroAuditoria {
	rec := base(usuarioID, tabla, registroID, entity.AuditOcultacion)
	prev, _ := json.Marshal(Snapshot{"is_hidden": MarcadorVisible})
	next, _ := json.Marshal(Snapshot{"is_hidden": MarcadorOculto})
	rec.ValoresPrevios = prev
	rec.ValoresNuevos = next
	return rec
}

func base(usuarioID int64, tabla string, registroID int64, tipo int) *entity.RegistroAuditoria {
	now := time.Now()
	return &entity.RegistroAuditoria{
		UsuarioID:  usuarioID,
		Fecha:      now,
		Hora:       now.Format("15:04:05"),
		Tabla:      tabla,
		RegistroID: registroID,
		Tipo:       tipo,
	}
}
