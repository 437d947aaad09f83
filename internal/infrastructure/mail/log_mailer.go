package mail

import (
	"context"

	"github.com/gestorpyme/gestor-api/internal/application/users"
	"github.com/gestorpyme/gestor-api/pkg/logger"
)

var _ users.Mailer = (*LogMailer)(nil)

// LogMailer entrega de tokens de recuperación por log estructurado.
// Sirve para desarrollo y tests; un SMTP real implementa el mismo puerto.
type LogMailer struct {
	log  *logger.Logger
	from string
}

// NewLogMailer construye el mailer.
func NewLogMailer(log *logger.Logger, from string) *LogMailer {
	return &LogMailer{log: log, from: from}
}

// SendPasswordReset registra el envío del token. No falla nunca.
func (m *LogMailer) SendPasswordReset(_ context.Context, email, nombre, token string) error {
	m.log.Info().
		Str("from", m.from).
		Str("to", email).
		Str("nombre", nombre).
		Str("token", token).
		Msg("token de recuperación de contraseña emitido")
	return nil
}
