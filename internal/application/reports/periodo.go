package reports

import (
	"time"

	"github.com/gestorpyme/gestor-api/internal/domain"
	"github.com/gestorpyme/gestor-api/internal/domain/repository"
)

// ParsePeriodo interpreta el parámetro `periodo` de los reportes de caja
// como una de las tres variantes cerradas. "año" se acepta también sin
// la eñe. Cualquier otro valor es entrada inválida: el texto del período
// jamás llega al SQL.
func ParsePeriodo(clase string, fecha time.Time) (repository.Periodo, error) {
	switch clase {
	case "dia":
		return repository.Periodo{Clase: repository.PeriodoDia, Fecha: fecha}, nil
	case "mes":
		return repository.Periodo{Clase: repository.PeriodoMes, Fecha: fecha}, nil
	case "año", "anio":
		return repository.Periodo{Clase: repository.PeriodoAnio, Fecha: fecha}, nil
	default:
		return repository.Periodo{}, domain.ErrInvalidInput
	}
}

// inicioPeriodo devuelve el primer día cubierto por el período, para el
// cálculo del saldo inicial de caja.
func inicioPeriodo(p repository.Periodo) time.Time {
	y, m, d := p.Fecha.Date()
	switch p.Clase {
	case repository.PeriodoMes:
		return time.Date(y, m, 1, 0, 0, 0, 0, p.Fecha.Location())
	case repository.PeriodoAnio:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, p.Fecha.Location())
	default:
		return time.Date(y, m, d, 0, 0, 0, 0, p.Fecha.Location())
	}
}
