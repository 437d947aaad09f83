package remitos

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/gestorpyme/gestor-api/internal/application/dto"
	"github.com/gestorpyme/gestor-api/internal/domain"
	"github.com/gestorpyme/gestor-api/internal/domain/entity"
	"github.com/gestorpyme/gestor-api/internal/domain/repository"
)

// RemitoUseCase casos de uso de remitos: alta transaccional con
// descuento de stock, listados y detalle.
type RemitoUseCase struct {
	txRunner    TxRunner
	remitoRepo  repository.RemitoRepository
	clienteRepo repository.ClienteRepository
}

// NewRemitoUseCase construye el caso de uso.
func NewRemitoUseCase(txRunner TxRunner, remitoRepo repository.RemitoRepository, clienteRepo repository.ClienteRepository) *RemitoUseCase {
	return &RemitoUseCase{txRunner: txRunner, remitoRepo: remitoRepo, clienteRepo: clienteRepo}
}

// Create da de alta un remito: nace pendiente con saldo igual al total,
// y cada línea descuenta stock en el servidor. Cabecera, líneas y
// descuentos se confirman o revierten juntos. Devuelve el id generado.
func (uc *RemitoUseCase) Create(ctx context.Context, in dto.CreateRemitoRequest) (int64, error) {
	if in.ClienteID <= 0 || !in.Total.GreaterThan(decimal.Zero) || len(in.Productos) == 0 {
		return 0, domain.ErrInvalidInput
	}
	for _, p := range in.Productos {
		if p.ProductoID <= 0 || p.Cantidad <= 0 || !p.Subtotal.GreaterThan(decimal.Zero) {
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

	var remitoID int64
	err = uc.txRunner.RunRemito(ctx, func(
		remitoRepo repository.RemitoRepository,
		productoRepo repository.ProductoRepository,
	) error {
		id, err := remitoRepo.Create(ctx, &entity.Remito{
			ClienteID: in.ClienteID,
			Fecha:     time.Now(),
			Total:     in.Total,
			Saldo:     in.Total,
			Estado:    entity.RemitoPendiente,
		})
		if err != nil {
			return err
		}
		remitoID = id
		for _, p := range in.Productos {
			if err := remitoRepo.CreateDetalle(ctx, &entity.RemitoDetalle{
				RemitoID:   remitoID,
				ProductoID: p.ProductoID,
				Cantidad:   p.Cantidad,
				Subtotal:   p.Subtotal,
			}); err != nil {
				return err
			}
			// El descuento no exige stock suficiente: stock >= 0 es
			// convención del negocio, no restricción de escritura.
			ok, err := productoRepo.DescontarStock(ctx, p.ProductoID, p.Cantidad)
			if err != nil {
				return err
			}
			if !ok {
				return domain.ErrNotFound
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return remitoID, nil
}

// List lista todos los remitos con cliente y estado resueltos.
func (uc *RemitoUseCase) List(ctx context.Context) ([]dto.RemitoResponse, error) {
	rows, err := uc.remitoRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RemitoResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.RemitoResponse{
			ID:      r.ID,
			Cliente: r.Cliente,
			Fecha:   r.Fecha.Format("2006-01-02"),
			Total:   r.Total,
			Saldo:   r.Saldo,
			Estado:  r.Estado,
		})
	}
	return out, nil
}

// ByCliente lista los remitos impagos de un cliente junto con su deuda
// total, para la pantalla de cobranzas.
func (uc *RemitoUseCase) ByCliente(ctx context.Context, clienteID int64) (*dto.RemitosClienteResponse, error) {
	cliente, err := uc.clienteRepo.GetByID(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	pendientes, err := uc.remitoRepo.ListPendientesByCliente(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	deuda, err := uc.remitoRepo.Deuda(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	resp := &dto.RemitosClienteResponse{
		Remitos:    make([]dto.RemitoPendienteResponse, 0, len(pendientes)),
		DeudaTotal: deuda.Total,
		Cantidad:   deuda.Remitos,
	}
	for _, r := range pendientes {
		resp.Remitos = append(resp.Remitos, dto.RemitoPendienteResponse{
			ID:     r.ID,
			Fecha:  r.Fecha.Format("2006-01-02"),
			Total:  r.Total,
			Saldo:  r.Saldo,
			Estado: r.Estado,
		})
	}
	return resp, nil
}

// GetByID obtiene un remito con sus líneas.
func (uc *RemitoUseCase) GetByID(ctx context.Context, id int64) (*dto.RemitoCompletoResponse, error) {
	rem, err := uc.remitoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rem == nil {
		return nil, domain.ErrNotFound
	}
	detalles, err := uc.remitoRepo.Detalles(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := &dto.RemitoCompletoResponse{
		ID:       rem.ID,
		Cliente:  rem.ClienteID,
		Fecha:    rem.Fecha.Format("2006-01-02"),
		Total:    rem.Total,
		Saldo:    rem.Saldo,
		Estado:   rem.Estado,
		Detalles: make([]dto.RemitoDetalleResponse, 0, len(detalles)),
	}
	for _, d := range detalles {
		resp.Detalles = append(resp.Detalles, dto.RemitoDetalleResponse{
			Producto:       d.Producto,
			Cantidad:       d.Cantidad,
			Subtotal:       d.Subtotal,
			PrecioUnitario: d.PrecioUnitario,
		})
	}
	return resp, nil
}
