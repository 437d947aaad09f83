package transactions_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorpyme/gestor-api/internal/application/dto"
	"github.com/gestorpyme/gestor-api/internal/application/transactions"
	"github.com/gestorpyme/gestor-api/internal/domain"
	"github.com/gestorpyme/gestor-api/internal/domain/entity"
)

const testUsuarioID = int64(5)

func newPurchaseFixture() (*transactions.PurchaseUseCase, *fakeTxRunner, *fakeProveedorRepo) {
	runner := &fakeTxRunner{
		compra:   &fakeCompraRepo{},
		producto: &fakeProductoRepo{stocks: map[int64]int64{7: 3}},
		caja:     &fakeCajaRepo{},
	}
	proveedores := &fakeProveedorRepo{proveedores: map[int64]*entity.Proveedor{
		2: {ID: 2, Nombre: "Distribuidora Norte"},
	}}
	return transactions.NewPurchaseUseCase(runner, proveedores), runner, proveedores
}

func purchaseRequest() dto.PurchaseRequest {
	return dto.PurchaseRequest{
		ProveedorID: 2,
		Monto:       decimal.NewFromInt(500),
		Productos: []dto.ProductoComprado{{
			ProductoID:   7,
			Cantidad:     10,
			Subtotal:     decimal.NewFromInt(500),
			PrecioCompra: decimal.NewFromInt(50),
			PrecioVenta:  decimal.NewFromInt(75),
		}},
	}
}

// Una compra válida deja cabecera, línea, incremento de stock y una
// única salida de caja, todo confirmado como unidad.
func TestPurchase_CompraValida(t *testing.T) {
	uc, runner, _ := newPurchaseFixture()

	facturaID, err := uc.Execute(context.Background(), testUsuarioID, purchaseRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), facturaID)
	assert.Equal(t, 1, runner.commits)
	assert.Zero(t, runner.rollbacks)

	require.Len(t, runner.compra.facturas, 1)
	assert.Equal(t, int64(2), runner.compra.facturas[0].ProveedorID)
	assert.True(t, runner.compra.facturas[0].Total.Equal(decimal.NewFromInt(500)))

	require.Len(t, runner.compra.detalles, 1)
	assert.Equal(t, int64(1), runner.compra.detalles[0].FacturaID)
	assert.Equal(t, int64(7), runner.compra.detalles[0].ProductoID)
	assert.Equal(t, int64(10), runner.compra.detalles[0].Cantidad)

	// stock = stock + cantidad, una sola vez: 3 + 10 = 13
	require.Len(t, runner.producto.agregados, 1)
	assert.Equal(t, stockCall{productoID: 7, cantidad: 10}, runner.producto.agregados[0])
	assert.Equal(t, int64(13), runner.producto.stocks[7])

	// exactamente una salida de caja por el monto total de la compra
	require.Len(t, runner.caja.movimientos, 1)
	mov := runner.caja.movimientos[0]
	assert.Equal(t, entity.MovimientoSalida, mov.Tipo)
	assert.Equal(t, testUsuarioID, mov.UsuarioID)
	assert.Equal(t, facturaID, mov.Factura)
	assert.True(t, mov.Monto.Equal(decimal.NewFromInt(500)))
}

// El stockActual enviado por el frontend no participa del incremento.
func TestPurchase_IgnoraStockActualDelFrontend(t *testing.T) {
	uc, runner, _ := newPurchaseFixture()

	stockViejo := int64(9999)
	in := purchaseRequest()
	in.Productos[0].StockActual = &stockViejo

	_, err := uc.Execute(context.Background(), testUsuarioID, in)
	require.NoError(t, err)
	assert.Equal(t, int64(13), runner.producto.stocks[7],
		"el incremento se evalúa en el servidor, no desde el stock del cliente")
}

func TestPurchase_ProveedorInexistente_RetornaNotFound(t *testing.T) {
	uc, runner, _ := newPurchaseFixture()

	in := purchaseRequest()
	in.ProveedorID = 999

	_, err := uc.Execute(context.Background(), testUsuarioID, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// La validación corta antes de abrir la transacción.
	assert.Zero(t, runner.commits)
	assert.Zero(t, runner.rollbacks)
	assert.Empty(t, runner.compra.facturas)
}

// Un fallo de la base al insertar una línea revierte la compra completa
// y propaga el error original, sin reintentos.
func TestPurchase_FalloEnLinea_RevierteTodo(t *testing.T) {
	uc, runner, _ := newPurchaseFixture()

	errDB := errors.New("insert detalle factura: conexión perdida")
	runner.compra.errDetalle = errDB

	_, err := uc.Execute(context.Background(), testUsuarioID, purchaseRequest())
	assert.ErrorIs(t, err, errDB)
	assert.Equal(t, 1, runner.rollbacks)
	assert.Zero(t, runner.commits)
	assert.Empty(t, runner.producto.agregados, "el stock no se toca si la línea no se insertó")
	assert.Empty(t, runner.caja.movimientos)
}

// Un producto inexistente a mitad del lote revierte la compra completa:
// ni la cabecera ni las líneas anteriores quedan confirmadas.
func TestPurchase_ProductoInexistente_RevierteTodo(t *testing.T) {
	uc, runner, _ := newPurchaseFixture()

	in := purchaseRequest()
	in.Productos = append(in.Productos, dto.ProductoComprado{
		ProductoID:   404,
		Cantidad:     1,
		Subtotal:     decimal.NewFromInt(10),
		PrecioCompra: decimal.NewFromInt(10),
		PrecioVenta:  decimal.NewFromInt(15),
	})

	_, err := uc.Execute(context.Background(), testUsuarioID, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, runner.rollbacks)
	assert.Zero(t, runner.commits)
	assert.Empty(t, runner.caja.movimientos, "una compra revertida no deja movimiento de caja")
}

func TestPurchase_Validacion(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.PurchaseRequest)
	}{
		{"proveedor cero", func(in *dto.PurchaseRequest) { in.ProveedorID = 0 }},
		{"monto cero", func(in *dto.PurchaseRequest) { in.Monto = decimal.Zero }},
		{"monto negativo", func(in *dto.PurchaseRequest) { in.Monto = decimal.NewFromInt(-1) }},
		{"sin líneas", func(in *dto.PurchaseRequest) { in.Productos = nil }},
		{"cantidad cero", func(in *dto.PurchaseRequest) { in.Productos[0].Cantidad = 0 }},
		{"subtotal cero", func(in *dto.PurchaseRequest) { in.Productos[0].Subtotal = decimal.Zero }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, runner, _ := newPurchaseFixture()
			in := purchaseRequest()
			tc.mutate(&in)

			_, err := uc.Execute(context.Background(), testUsuarioID, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Zero(t, runner.commits, "la validación debe cortar antes de cualquier escritura")
			assert.Empty(t, runner.compra.facturas)
		})
	}
}
