package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código SQLSTATE de violación de unicidad.
const codeUniqueViolation = "23505"

// isUniqueViolation detecta el choque contra un índice único (email de
// usuario, código de barras). El fallback por texto cubre errores
// envueltos que ya no exponen el *pgconn.PgError.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == codeUniqueViolation
	}
	return strings.Contains(err.Error(), codeUniqueViolation)
}
