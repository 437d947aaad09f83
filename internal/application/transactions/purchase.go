package transactions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/gestorpyme/gestor-api/internal/application/dto"
	"github.com/gestorpyme/gestor-api/internal/domain"
	"github.com/gestorpyme/gestor-api/internal/domain/entity"
	"github.com/gestorpyme/gestor-api/internal/domain/repository"
)

// PurchaseUseCase registra una compra a proveedor: cabecera, líneas,
// incremento de stock y salida de caja, todo en una transacción.
type PurchaseUseCase struct {
	txRunner      TxRunner
	proveedorRepo repository.ProveedorRepository
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(txRunner TxRunner, proveedorRepo repository.ProveedorRepository) *PurchaseUseCase {
	return &PurchaseUseCase{txRunner: txRunner, proveedorRepo: proveedorRepo}
}

// Execute valida la compra y la aplica como unidad: una cabecera, N
// líneas, N incrementos de stock evaluados en el servidor y exactamente
// una salida de caja por el total. Devuelve el id de la factura.
func (uc *PurchaseUseCase) Execute(ctx context.Context, usuarioID int64, in dto.PurchaseRequest) (int64, error) {
	// Toda la validación ocurre antes de cualquier escritura.
	if in.ProveedorID <= 0 || !in.Monto.GreaterThan(decimal.Zero) || len(in.Productos) == 0 {
		return 0, domain.ErrInvalidInput
	}
	for _, p := range in.Productos {
		if p.ProductoID <= 0 || p.Cantidad <= 0 || !p.Subtotal.GreaterThan(decimal.Zero) {
			return 0, domain.ErrInvalidInput
		}
	}
	proveedor, err := uc.proveedorRepo.GetByID(ctx, in.ProveedorID)
	if err != nil {
		return 0, err
	}
	if proveedor == nil {
		return 0, domain.ErrNotFound
	}

	now := time.Now()
	var facturaID int64
	err = uc.txRunner.RunPurchase(ctx, func(
		compraRepo repository.CompraRepository,
		productoRepo repository.ProductoRepository,
		cajaRepo repository.CajaRepository,
	) error {
		id, err := compraRepo.CreateFactura(ctx, &entity.FacturaCompra{
			ProveedorID: in.ProveedorID,
			Total:       in.Monto,
			Fecha:       now,
			Hora:        now.Format("15:04:05"),
		})
		if err != nil {
			return err
		}
		facturaID = id

		for _, p := range in.Productos {
			if err := compraRepo.CreateDetalle(ctx, &entity.FacturaCompraDetalle{
				FacturaID:  facturaID,
				ProductoID: p.ProductoID,
				Cantidad:   p.Cantidad,
				Subtotal:   p.Subtotal,
			}); err != nil {
				return err
			}
			// stock = stock + cantidad, evaluado en el UPDATE; el
			// stockActual del frontend no participa.
			ok, err := productoRepo.AgregarStock(ctx, p.ProductoID, p.Cantidad, p.PrecioCompra, p.PrecioVenta, now)
			if err != nil {
				return err
			}
			if !ok {
				return domain.ErrNotFound
			}
		}

		return cajaRepo.Append(ctx, &entity.MovimientoCaja{
			UsuarioID: usuarioID,
			Factura:   facturaID,
			Fecha:     now,
			Hora:      now.Format("15:04:05"),
			Tipo:      entity.MovimientoSalida,
			Monto:     in.Monto,
		})
	})
	if err != nil {
		return 0, err
	}
	return facturaID, nil
}
