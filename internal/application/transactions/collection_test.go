package transactions_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorpyme/gestor-api/internal/application/dto"
	"github.com/gestorpyme/gestor-api/internal/application/transactions"
	"github.com/gestorpyme/gestor-api/internal/domain"
	"github.com/gestorpyme/gestor-api/internal/domain/entity"
)

func newCollectionFixture() (*transactions.CollectionUseCase, *fakeTxRunner) {
	runner := &fakeTxRunner{
		cobranza: &fakeCobranzaRepo{},
		remito: &fakeRemitoRepo{remitos: map[int64]*entity.Remito{
			9: {
				ID:        9,
				ClienteID: 4,
				Total:     decimal.NewFromInt(500),
				Saldo:     decimal.NewFromInt(500),
				Estado:    entity.RemitoPendiente,
			},
		}},
		caja: &fakeCajaRepo{},
	}
	clientes := &fakeClienteRepo{clientes: map[int64]*entity.Cliente{
		4: {ID: 4, Nombre: "Kiosco La Esquina"},
	}}
	return transactions.NewCollectionUseCase(runner, clientes), runner
}

func collectionRequest() dto.CollectionRequest {
	return dto.CollectionRequest{
		ClienteID: 4,
		Monto:     decimal.NewFromInt(300),
		Remitos: []dto.BillingRemito{{
			RemitoID:        9,
			MontoDescontado: decimal.NewFromInt(300),
		}},
	}
}

// Una cobranza parcial descuenta el saldo en el servidor, deja el remito
// en parcial, un vínculo factura-remito y una única entrada de caja.
func TestCollection_CobranzaParcial(t *testing.T) {
	uc, runner := newCollectionFixture()

	pagoID, err := uc.Execute(context.Background(), testUsuarioID, collectionRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), pagoID)
	assert.Equal(t, 1, runner.commits)
	assert.Zero(t, runner.rollbacks)

	require.Len(t, runner.cobranza.cobranzas, 1)
	assert.Equal(t, int64(4), runner.cobranza.cobranzas[0].ClienteID)
	assert.True(t, runner.cobranza.cobranzas[0].Monto.Equal(decimal.NewFromInt(300)))

	// saldo 500 - 300 = 200, estado recalculado a parcial
	rem := runner.remito.remitos[9]
	assert.True(t, rem.Saldo.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, entity.RemitoParcial, rem.Estado)

	require.Len(t, runner.cobranza.vinculos, 1)
	assert.Equal(t, int64(9), runner.cobranza.vinculos[0].RemitoID)
	assert.Equal(t, pagoID, runner.cobranza.vinculos[0].CobranzaID)
	assert.True(t, runner.cobranza.vinculos[0].Descontado.Equal(decimal.NewFromInt(300)))

	require.Len(t, runner.caja.movimientos, 1)
	mov := runner.caja.movimientos[0]
	assert.Equal(t, entity.MovimientoEntrada, mov.Tipo)
	assert.Equal(t, testUsuarioID, mov.UsuarioID)
	assert.True(t, mov.Monto.Equal(decimal.NewFromInt(300)))
}

// Saldar el remito completo lo deja en pagado con saldo cero.
func TestCollection_SaldaRemitoCompleto(t *testing.T) {
	uc, runner := newCollectionFixture()

	in := collectionRequest()
	in.Monto = decimal.NewFromInt(500)
	in.Remitos[0].MontoDescontado = decimal.NewFromInt(500)

	_, err := uc.Execute(context.Background(), testUsuarioID, in)
	require.NoError(t, err)

	rem := runner.remito.remitos[9]
	assert.True(t, rem.Saldo.IsZero())
	assert.Equal(t, entity.RemitoPagado, rem.Estado)
}

// El nuevoEstado y montoRestante del frontend se ignoran: el estado lo
// recalcula el servidor a partir del saldo.
func TestCollection_IgnoraEstadoDelFrontend(t *testing.T) {
	uc, runner := newCollectionFixture()

	estadoMentiroso := entity.RemitoPagado
	in := collectionRequest()
	in.Remitos[0].NuevoEstado = &estadoMentiroso
	in.Remitos[0].MontoRestante = decimal.NewFromInt(-100)

	_, err := uc.Execute(context.Background(), testUsuarioID, in)
	require.NoError(t, err)

	rem := runner.remito.remitos[9]
	assert.True(t, rem.Saldo.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, entity.RemitoParcial, rem.Estado)
}

// Un descuento mayor al saldo revierte la cobranza completa: el saldo
// nunca queda negativo.
func TestCollection_DescuentoMayorAlSaldo_Revierte(t *testing.T) {
	uc, runner := newCollectionFixture()

	in := collectionRequest()
	in.Remitos[0].MontoDescontado = decimal.NewFromInt(600)

	_, err := uc.Execute(context.Background(), testUsuarioID, in)
	assert.ErrorIs(t, err, domain.ErrSaldoInsuficiente)
	assert.Equal(t, 1, runner.rollbacks)
	assert.Zero(t, runner.commits)

	assert.True(t, runner.remito.remitos[9].Saldo.Equal(decimal.NewFromInt(500)),
		"el saldo no debe moverse si la cobranza se revierte")
	assert.Empty(t, runner.caja.movimientos)
}

func TestCollection_RemitoInexistente_RetornaNotFound(t *testing.T) {
	uc, runner := newCollectionFixture()

	in := collectionRequest()
	in.Remitos[0].RemitoID = 404

	_, err := uc.Execute(context.Background(), testUsuarioID, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, runner.rollbacks)
	assert.Empty(t, runner.caja.movimientos)
}

func TestCollection_ClienteInexistente_RetornaNotFound(t *testing.T) {
	uc, runner := newCollectionFixture()

	in := collectionRequest()
	in.ClienteID = 999

	_, err := uc.Execute(context.Background(), testUsuarioID, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, runner.rollbacks, "el cliente se valida antes de abrir la transacción")
	assert.Empty(t, runner.cobranza.cobranzas)
}

func TestCollection_Validacion(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.CollectionRequest)
	}{
		{"cliente cero", func(in *dto.CollectionRequest) { in.ClienteID = 0 }},
		{"monto cero", func(in *dto.CollectionRequest) { in.Monto = decimal.Zero }},
		{"sin remitos", func(in *dto.CollectionRequest) { in.Remitos = nil }},
		{"descuento cero", func(in *dto.CollectionRequest) { in.Remitos[0].MontoDescontado = decimal.Zero }},
		{"descuento negativo", func(in *dto.CollectionRequest) { in.Remitos[0].MontoDescontado = decimal.NewFromInt(-50) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, runner := newCollectionFixture()
			in := collectionRequest()
			tc.mutate(&in)

			_, err := uc.Execute(context.Background(), testUsuarioID, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Zero(t, runner.commits)
			assert.Empty(t, runner.cobranza.cobranzas)
		})
	}
}
