package transactions_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestorpyme/gestor-api/internal/application/transactions"
	"github.com/gestorpyme/gestor-api/internal/domain/entity"
	"github.com/gestorpyme/gestor-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Registran cada llamada
// para que los tests verifiquen qué se escribió y cuántas veces.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompraRepo struct {
	facturas   []*entity.FacturaCompra
	detalles   []*entity.FacturaCompraDetalle
	errDetalle error // inyectado para simular un fallo a mitad del lote
}

func (f *fakeCompraRepo) CreateFactura(_ context.Context, fc *entity.FacturaCompra) (int64, error) {
	f.facturas = append(f.facturas, fc)
	return int64(len(f.facturas)), nil
}

func (f *fakeCompraRepo) CreateDetalle(_ context.Context, d *entity.FacturaCompraDetalle) error {
	if f.errDetalle != nil {
		return f.errDetalle
	}
	f.detalles = append(f.detalles, d)
	return nil
}

func (f *fakeCompraRepo) ProductosPorProveedor(context.Context, int64) ([]*repository.ProductoProveedor, error) {
	return nil, nil
}

type stockCall struct {
	productoID int64
	cantidad   int64
}

type fakeProductoRepo struct {
	stocks     map[int64]int64
	agregados  []stockCall
	descuentos []stockCall
}

func (f *fakeProductoRepo) AgregarStock(_ context.Context, id, cantidad int64, _, _ decimal.Decimal, _ time.Time) (bool, error) {
	if _, ok := f.stocks[id]; !ok {
		return false, nil
	}
	f.stocks[id] += cantidad
	f.agregados = append(f.agregados, stockCall{productoID: id, cantidad: cantidad})
	return true, nil
}

func (f *fakeProductoRepo) DescontarStock(_ context.Context, id, cantidad int64) (bool, error) {
	if _, ok := f.stocks[id]; !ok {
		return false, nil
	}
	f.stocks[id] -= cantidad
	f.descuentos = append(f.descuentos, stockCall{productoID: id, cantidad: cantidad})
	return true, nil
}

func (f *fakeProductoRepo) Create(context.Context, *entity.Producto) (int64, error) { return 0, nil }
func (f *fakeProductoRepo) GetByID(context.Context, int64) (*entity.Producto, error) {
	return nil, nil
}
func (f *fakeProductoRepo) ListVisibles(context.Context, bool) ([]*entity.Producto, error) {
	return nil, nil
}
func (f *fakeProductoRepo) ControlStockMinimo(context.Context) (*repository.ControlStock, error) {
	return nil, nil
}
func (f *fakeProductoRepo) Update(context.Context, *entity.Producto) (bool, error) { return false, nil }
func (f *fakeProductoRepo) Hide(context.Context, int64) (bool, error)              { return false, nil }

type fakeCajaRepo struct {
	movimientos []*entity.MovimientoCaja
}

func (f *fakeCajaRepo) Append(_ context.Context, m *entity.MovimientoCaja) error {
	f.movimientos = append(f.movimientos, m)
	return nil
}

type fakeCobranzaRepo struct {
	cobranzas []*entity.Cobranza
	vinculos  []*entity.FacturaRemito
}

func (f *fakeCobranzaRepo) CreateCobranza(_ context.Context, c *entity.Cobranza) (int64, error) {
	f.cobranzas = append(f.cobranzas, c)
	return int64(len(f.cobranzas)), nil
}

func (f *fakeCobranzaRepo) CreateFacturaRemito(_ context.Context, fr *entity.FacturaRemito) error {
	f.vinculos = append(f.vinculos, fr)
	return nil
}

type fakeRemitoRepo struct {
	remitos map[int64]*entity.Remito
}

// AplicarPago replica la semántica del UPDATE guardado: cero filas si el
// remito no existe o el descuento supera el saldo.
func (f *fakeRemitoRepo) AplicarPago(_ context.Context, remitoID int64, monto decimal.Decimal) (bool, error) {
	rem, ok := f.remitos[remitoID]
	if !ok || rem.Saldo.LessThan(monto) {
		return false, nil
	}
	rem.Saldo = rem.Saldo.Sub(monto)
	if rem.Saldo.IsZero() {
		rem.Estado = entity.RemitoPagado
	} else {
		rem.Estado = entity.RemitoParcial
	}
	return true, nil
}

func (f *fakeRemitoRepo) GetByID(_ context.Context, id int64) (*entity.Remito, error) {
	return f.remitos[id], nil
}

func (f *fakeRemitoRepo) Create(context.Context, *entity.Remito) (int64, error) { return 0, nil }
func (f *fakeRemitoRepo) CreateDetalle(context.Context, *entity.RemitoDetalle) error {
	return nil
}
func (f *fakeRemitoRepo) ListAll(context.Context) ([]*repository.RemitoListado, error) {
	return nil, nil
}
func (f *fakeRemitoRepo) ListPendientesByCliente(context.Context, int64) ([]*entity.Remito, error) {
	return nil, nil
}
func (f *fakeRemitoRepo) Detalles(context.Context, int64) ([]*repository.RemitoDetalleRow, error) {
	return nil, nil
}
func (f *fakeRemitoRepo) Deuda(context.Context, int64) (*repository.DeudaCliente, error) {
	return nil, nil
}

type fakeClienteRepo struct {
	clientes map[int64]*entity.Cliente
}

func (f *fakeClienteRepo) GetByID(_ context.Context, id int64) (*entity.Cliente, error) {
	return f.clientes[id], nil
}

func (f *fakeClienteRepo) Create(context.Context, *entity.Cliente) (int64, error) { return 0, nil }
func (f *fakeClienteRepo) ListVisibles(context.Context) ([]*entity.Cliente, error) {
	return nil, nil
}
func (f *fakeClienteRepo) Update(context.Context, *entity.Cliente) (bool, error) { return false, nil }
func (f *fakeClienteRepo) Hide(context.Context, int64) (bool, error)             { return false, nil }

type fakeProveedorRepo struct {
	proveedores map[int64]*entity.Proveedor
}

func (f *fakeProveedorRepo) GetByID(_ context.Context, id int64) (*entity.Proveedor, error) {
	return f.proveedores[id], nil
}

func (f *fakeProveedorRepo) Create(context.Context, *entity.Proveedor) (int64, error) { return 0, nil }
func (f *fakeProveedorRepo) ListVisibles(context.Context) ([]*entity.Proveedor, error) {
	return nil, nil
}
func (f *fakeProveedorRepo) Update(context.Context, *entity.Proveedor) (bool, error) {
	return false, nil
}
func (f *fakeProveedorRepo) Hide(context.Context, int64) (bool, error) { return false, nil }

// fakeTxRunner entrega los fakes al callback y cuenta commits y
// rollbacks: un error del callback cuenta como rollback y se propaga.
type fakeTxRunner struct {
	compra   *fakeCompraRepo
	producto *fakeProductoRepo
	caja     *fakeCajaRepo
	cobranza *fakeCobranzaRepo
	remito   *fakeRemitoRepo

	commits   int
	rollbacks int
}

var _ transactions.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) RunPurchase(ctx context.Context, fn func(
	repository.CompraRepository,
	repository.ProductoRepository,
	repository.CajaRepository,
) error) error {
	if err := fn(r.compra, r.producto, r.caja); err != nil {
		r.rollbacks++
		return err
	}
	r.commits++
	return nil
}

func (r *fakeTxRunner) RunCollection(ctx context.Context, fn func(
	repository.CobranzaRepository,
	repository.RemitoRepository,
	repository.CajaRepository,
) error) error {
	if err := fn(r.cobranza, r.remito, r.caja); err != nil {
		r.rollbacks++
		return err
	}
	r.commits++
	return nil
}
