package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorpyme/gestor-api/internal/application/reports"
	"github.com/gestorpyme/gestor-api/internal/domain"
	"github.com/gestorpyme/gestor-api/internal/domain/repository"
)

func TestParsePeriodo_VariantesValidas(t *testing.T) {
	fecha := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		clase string
		want  repository.ClasePeriodo
	}{
		{"dia", repository.PeriodoDia},
		{"mes", repository.PeriodoMes},
		{"año", repository.PeriodoAnio},
		{"anio", repository.PeriodoAnio},
	}
	for _, tc := range cases {
		t.Run(tc.clase, func(t *testing.T) {
			p, err := reports.ParsePeriodo(tc.clase, fecha)
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.Clase)
			assert.True(t, p.Fecha.Equal(fecha))
		})
	}
}

// Cualquier texto fuera de las tres variantes es entrada inválida: el
// período jamás viaja al SQL como texto libre.
func TestParsePeriodo_ClaseInvalida(t *testing.T) {
	fecha := time.Now()
	for _, clase := range []string{"", "semana", "DIA", "1; DROP TABLE flujo_caja"} {
		_, err := reports.ParsePeriodo(clase, fecha)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "clase %q debe rechazarse", clase)
	}
}

// Los reportes de rango exigen al menos un mes; los errores de rango se
// detectan antes de tocar el repositorio.
func TestSales_RangoMenorAUnMes(t *testing.T) {
	uc := reports.NewReportUseCase(nil)
	desde := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Sales(context.Background(), desde, desde.AddDate(0, 0, 15))
	assert.ErrorIs(t, err, domain.ErrRangoFechasCorto)
}

func TestSales_RangoInvertido(t *testing.T) {
	uc := reports.NewReportUseCase(nil)
	desde := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Sales(context.Background(), desde, desde.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInventory_RangoMenorAUnMes(t *testing.T) {
	uc := reports.NewReportUseCase(nil)
	desde := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Inventory(context.Background(), desde, desde.AddDate(0, 0, 10))
	assert.ErrorIs(t, err, domain.ErrRangoFechasCorto)
}
