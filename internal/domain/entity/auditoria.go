package entity

import "time"

// Tipos de modificación auditados.
const (
	AuditModificacion = 2
	AuditOcultacion   = 3
)

// RegistroAuditoria fila del historial de cambios: quién, cuándo, qué
// tabla y registro, y los estados previo y nuevo serializados como JSON
// plano (campo -> valor). Solo se agrega, nunca se modifica.
type RegistroAuditoria struct {
	ID             int64
	UsuarioID      int64
	Fecha          time.Time
	Hora           string
	Tabla          string
	RegistroID     int64
	Tipo           int
	ValoresPrevios []byte // JSON
	ValoresNuevos  []byte // JSON
}
