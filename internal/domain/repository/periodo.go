package repository

import "time"

// ClasePeriodo discrimina el filtro temporal de los reportes de caja.
type ClasePeriodo int

// Variantes cerradas del período: día, mes o año de la fecha dada.
// Cada variante se compila a su propia consulta parametrizada; nunca se
// interpola texto de filtro en el SQL.
const (
	PeriodoDia ClasePeriodo = iota
	PeriodoMes
	PeriodoAnio
)

// Periodo fecha de referencia más la granularidad del filtro.
type Periodo struct {
	Clase ClasePeriodo
	Fecha time.Time
}
