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

// CollectionUseCase registra una cobranza: pago, vínculos con los
// remitos saldados, descuento de saldos y entrada de caja, todo en una
// transacción.
type CollectionUseCase struct {
	txRunner    TxRunner
	clienteRepo repository.ClienteRepository
}

// NewCollectionUseCase construye el caso de uso.
func NewCollectionUseCase(txRunner TxRunner, clienteRepo repository.ClienteRepository) *CollectionUseCase {
	return &CollectionUseCase{txRunner: txRunner, clienteRepo: clienteRepo}
}

// Execute valida la cobranza y la aplica como unidad: un pago, N
// vínculos factura-remito, N descuentos de saldo evaluados en el
// servidor y exactamente una entrada de caja por el total. El saldo de
// un remito nunca crece ni queda negativo: si el descuento supera el
// saldo, toda la cobranza se revierte. Devuelve el id del pago.
func (uc *CollectionUseCase) Execute(ctx context.Context, usuarioID int64, in dto.CollectionRequest) (int64, error) {
	// Toda la validación ocurre antes de cualquier escritura. El
	// nuevoEstado y montoRestante del frontend se ignoran: los recalcula
	// el UPDATE guardado.
	if in.ClienteID <= 0 || !in.Monto.GreaterThan(decimal.Zero) || len(in.Remitos) == 0 {
		return 0, domain.ErrInvalidInput
	}
	for _, r := range in.Remitos {
		if r.RemitoID <= 0 || !r.MontoDescontado.GreaterThan(decimal.Zero) {
			return 0, domain.ErrInvalidInput
		}
	}
	cliente, err := uc.clienteRepo.GetByID(ctx, in.ClienteID)
	if err != nil {
		return 0, err
	}
	if cliente == nil {
		return 0, domain.ErrNotFound
	}

	now := time.Now()
	var pagoID int64
	err = uc.txRunner.RunCollection(ctx, func(
		cobranzaRepo repository.CobranzaRepository,
		remitoRepo repository.RemitoRepository,
		cajaRepo repository.CajaRepository,
	) error {
		id, err := cobranzaRepo.CreateCobranza(ctx, &entity.Cobranza{
			ClienteID: in.ClienteID,
			Monto:     in.Monto,
			Fecha:     now,
			Hora:      now.Format("15:04:05"),
		})
		if err != nil {
			return err
		}
		pagoID = id

		for _, r := range in.Remitos {
			ok, err := remitoRepo.AplicarPago(ctx, r.RemitoID, r.MontoDescontado)
			if err != nil {
				return err
			}
			if !ok {
				// Cero filas: o el remito no existe o el descuento
				// supera el saldo. Se distingue releyendo dentro de la tx.
				rem, err := remitoRepo.GetByID(ctx, r.RemitoID)
				if err != nil {
					return err
				}
				if rem == nil {
					return domain.ErrNotFound
				}
				return domain.ErrSaldoInsuficiente
			}
			if err := cobranzaRepo.CreateFacturaRemito(ctx, &entity.FacturaRemito{
				RemitoID:   r.RemitoID,
				CobranzaID: pagoID,
				Descontado: r.MontoDescontado,
			}); err != nil {
				return err
			}
		}

		return cajaRepo.Append(ctx, &entity.MovimientoCaja{
			UsuarioID: usuarioID,
			Factura:   pagoID,
			Fecha:     now,
			Hora:      now.Format("15:04:05"),
			Tipo:      entity.MovimientoEntrada,
			Monto:     in.Monto,
		})
	})
	if err != nil {
		return 0, err
	}
	return pagoID, nil
}
