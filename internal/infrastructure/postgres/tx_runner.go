package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/gestorpyme/gestor-api/internal/application/catalog"
	"github.com/gestorpyme/gestor-api/internal/application/remitos"
	"github.com/gestorpyme/gestor-api/internal/application/transactions"
	"github.com/gestorpyme/gestor-api/internal/application/users"
	"github.com/gestorpyme/gestor-api/internal/domain/repository"
)

// Ensure TxRunner implements los puertos de los casos de uso.
var _ transactions.TxRunner = (*TxRunner)(nil)
var _ remitos.TxRunner = (*TxRunner)(nil)
var _ catalog.AuditTxRunner = (*TxRunner)(nil)
var _ users.AuditTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL con
// repositorios atados a esa tx: todas las sentencias del callback se
// confirman o revierten como unidad. Un fallo revierte y devuelve el
// error original; no hay política de reintentos.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunPurchase transacción de compra: cabecera, detalles, stock y caja.
func (r *TxRunner) RunPurchase(ctx context.Context, fn func(
	compraRepo repository.CompraRepository,
	productoRepo repository.ProductoRepository,
	cajaRepo repository.CajaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCompraRepository(tx), NewProductoRepository(tx), NewCajaRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCollection transacción de cobranza: pago, vínculos, saldos y caja.
func (r *TxRunner) RunCollection(ctx context.Context, fn func(
	cobranzaRepo repository.CobranzaRepository,
	remitoRepo repository.RemitoRepository,
	cajaRepo repository.CajaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCobranzaRepository(tx), NewRemitoRepository(tx), NewCajaRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunRemito transacción de creación de remito: cabecera, líneas y stock.
func (r *TxRunner) RunRemito(ctx context.Context, fn func(
	remitoRepo repository.RemitoRepository,
	productoRepo repository.ProductoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewRemitoRepository(tx), NewProductoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAudited transacción de mutación de entidades con su fila de
// auditoría: el UPDATE y el registro de auditoría se confirman juntos.
func (r *TxRunner) RunAudited(ctx context.Context, fn func(
	clienteRepo repository.ClienteRepository,
	proveedorRepo repository.ProveedorRepository,
	productoRepo repository.ProductoRepository,
	usuarioRepo repository.UsuarioRepository,
	auditRepo repository.AuditoriaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewClienteRepository(tx),
		NewProveedorRepository(tx),
		NewProductoRepository(tx),
		NewUsuarioRepository(tx),
		NewAuditoriaRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
