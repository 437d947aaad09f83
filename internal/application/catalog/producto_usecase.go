package catalog

import (
	"context"
	"time"

	"github.com/gestorpyme/gestor-api/internal/application/audit"
	"github.com/gestorpyme/gestor-api/internal/application/dto"
	"github.com/gestorpyme/gestor-api/internal/domain"
	"github.com/gestorpyme/gestor-api/internal/domain/entity"
	"github.com/gestorpyme/gestor-api/internal/domain/repository"
)

const tablaProductos = "productos"

// ProductoUseCase casos de uso de productos del inventario.
type ProductoUseCase struct {
	txRunner     AuditTxRunner
	productoRepo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(txRunner AuditTxRunner, productoRepo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{txRunner: txRunner, productoRepo: productoRepo}
}

// Create da de alta un producto con stock cero: el stock solo lo mueven
// las compras y los remitos.
func (uc *ProductoUseCase) Create(ctx context.Context, in dto.CreateProductoRequest) (int64, error) {
	if in.Nombre == "" || in.StockMinimo < 0 {
		return 0, domain.ErrInvalidInput
	}
	return uc.productoRepo.Create(ctx, &entity.Producto{
		CodigoBarras:  in.CodigoBarras,
		Nombre:        in.Nombre,
		PrecioCompra:  in.PrecioCompra,
		PrecioVenta:   in.PrecioVenta,
		Stock:         0,
		StockMinimo:   in.StockMinimo,
		Actualizacion: time.Now(),
	})
}

// List lista los productos visibles; con soloListos filtra los vendibles
// (precio de venta y stock positivos).
func (uc *ProductoUseCase) List(ctx context.Context, soloListos bool) ([]dto.ProductoResponse, error) {
	productos, err := uc.productoRepo.ListVisibles(ctx, soloListos)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, toProductoResponse(p))
	}
	return out, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductoUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductoResponse, error) {
	p, err := uc.productoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProductoResponse(p)
	return &resp, nil
}

// ControlStockMinimo indica si hay productos en o bajo el mínimo y cuántos.
func (uc *ProductoUseCase) ControlStockMinimo(ctx context.Context) (*dto.ControlStockResponse, error) {
	c, err := uc.productoRepo.ControlStockMinimo(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ControlStockResponse{Peligro: c.Peligro, AReponer: c.AReponer}, nil
}

// Update modifica nombre, precios y stock mínimo con su fila de
// auditoría en la misma transacción. El stock no se toca acá.
func (uc *ProductoUseCase) Update(ctx context.Context, usuarioID, id int64, in dto.UpdateProductoRequest) error {
	if in.Nombre == "" || in.StockMinimo < 0 {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.RunAudited(ctx, func(
		_ repository.ClienteRepository,
		_ repository.ProveedorRepository,
		productoRepo repository.ProductoRepository,
		_ repository.UsuarioRepository,
		auditRepo repository.AuditoriaRepository,
	) error {
		actual, err := productoRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if actual == nil {
			return domain.ErrNotFound
		}
		ok, err := productoRepo.Update(ctx, &entity.Producto{
			ID:           id,
			Nombre:       in.Nombre,
			PrecioCompra: in.PrecioCompra,
			PrecioVenta:  in.PrecioVenta,
			StockMinimo:  in.StockMinimo,
		})
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		rec, err := audit.NewChange(usuarioID, tablaProductos, id,
			audit.Snapshot{
				"nombre_producto": actual.Nombre,
				"precio_compra":   actual.PrecioCompra.String(),
				"precio_venta":    actual.PrecioVenta.String(),
				"stock_minimo":    actual.StockMinimo,
			},
			audit.Snapshot{
				"nombre_producto": in.Nombre,
				"precio_compra":   in.PrecioCompra.String(),
				"precio_venta":    in.PrecioVenta.String(),
				"stock_minimo":    in.StockMinimo,
			},
		)
		if err != nil {
			return err
		}
		return auditRepo.Append(ctx, rec)
	})
}

// Hide oculta un producto; ocultar una fila ya oculta devuelve not-found.
func (uc *ProductoUseCase) Hide(ctx context.Context, usuarioID, id int64) error {
	return uc.txRunner.RunAudited(ctx, func(
		_ repository.ClienteRepository,
		_ repository.ProveedorRepository,
		productoRepo repository.ProductoRepository,
		_ repository.UsuarioRepository,
		auditRepo repository.AuditoriaRepository,
	) error {
		ok, err := productoRepo.Hide(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		return auditRepo.Append(ctx, audit.NewHide(usuarioID, tablaProductos, id))
	})
}

func toProductoResponse(p *entity.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:            p.ID,
		CodigoBarras:  p.CodigoBarras,
		Nombre:        p.Nombre,
		PrecioCompra:  p.PrecioCompra,
		PrecioVenta:   p.PrecioVenta,
		Stock:         p.Stock,
		StockMinimo:   p.StockMinimo,
		Actualizacion: p.Actualizacion.Format("2006-01-02"),
	}
}
