package catalog

import (
	"context"

	"github.com/gestorpyme/gestor-api/internal/application/audit"
	"github.com/gestorpyme/gestor-api/internal/application/dto"
	"github.com/gestorpyme/gestor-api/internal/domain"
	"github.com/gestorpyme/gestor-api/internal/domain/entity"
	"github.com/gestorpyme/gestor-api/internal/domain/repository"
)

const tablaProveedores = "proveedores"

// ProveedorUseCase casos de uso de proveedores.
type ProveedorUseCase struct {
	txRunner      AuditTxRunner
	proveedorRepo repository.ProveedorRepository
	compraRepo    repository.CompraRepository
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(txRunner AuditTxRunner, proveedorRepo repository.ProveedorRepository, compraRepo repository.CompraRepository) *ProveedorUseCase {
	return &ProveedorUseCase{txRunner: txRunner, proveedorRepo: proveedorRepo, compraRepo: compraRepo}
}

// Create da de alta un proveedor.
func (uc *ProveedorUseCase) Create(ctx context.Context, in dto.CreateProveedorRequest) (int64, error) {
	if in.Nombre == "" {
		return 0, domain.ErrInvalidInput
	}
	return uc.proveedorRepo.Create(ctx, &entity.Proveedor{
		Nombre:    in.Nombre,
		Telefono:  in.Telefono,
		Email:     in.Email,
		Direccion: in.Direccion,
	})
}

// List lista los proveedores visibles.
func (uc *ProveedorUseCase) List(ctx context.Context) ([]dto.ProveedorResponse, error) {
	proveedores, err := uc.proveedorRepo.ListVisibles(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProveedorResponse, 0, len(proveedores))
	for _, p := range proveedores {
		out = append(out, toProveedorResponse(p))
	}
	return out, nil
}

// GetByID obtiene un proveedor por ID.
func (uc *ProveedorUseCase) GetByID(ctx context.Context, id int64) (*dto.ProveedorResponse, error) {
	p, err := uc.proveedorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProveedorResponse(p)
	return &resp, nil
}

// ProductosComprados lista los productos comprados históricamente al
// proveedor con su última fecha de compra.
func (uc *ProveedorUseCase) ProductosComprados(ctx context.Context, proveedorID int64) ([]dto.ProductoProveedorResponse, error) {
	p, err := uc.proveedorRepo.GetByID(ctx, proveedorID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	rows, err := uc.compraRepo.ProductosPorProveedor(ctx, proveedorID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoProveedorResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ProductoProveedorResponse{
			Producto:     r.Producto,
			UltimaCompra: r.UltimaCompra.Format("2006-01-02"),
			Cantidad:     r.Cantidad,
			PrecioCompra: r.PrecioCompra,
		})
	}
	return out, nil
}

// Update modifica un proveedor con su fila de auditoría en la misma
// transacción.
func (uc *ProveedorUseCase) Update(ctx context.Context, usuarioID, id int64, in dto.UpdateProveedorRequest) error {
	if in.Nombre == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.RunAudited(ctx, func(
		_ repository.ClienteRepository,
		proveedorRepo repository.ProveedorRepository,
		_ repository.ProductoRepository,
		_ repository.UsuarioRepository,
		auditRepo repository.AuditoriaRepository,
	) error {
		actual, err := proveedorRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if actual == nil {
			return domain.ErrNotFound
		}
		ok, err := proveedorRepo.Update(ctx, &entity.Proveedor{
			ID:        id,
			Nombre:    in.Nombre,
			Telefono:  in.Telefono,
			Email:     in.Email,
			Direccion: in.Direccion,
		})
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		rec, err := audit.NewChange(usuarioID, tablaProveedores, id,
			snapshotProveedor(actual.Nombre, actual.Telefono, actual.Email, actual.Direccion),
			snapshotProveedor(in.Nombre, in.Telefono, in.Email, in.Direccion),
		)
		if err != nil {
			return err
		}
		return auditRepo.Append(ctx, rec)
	})
}

// Hide oculta un proveedor; ocultar una fila ya oculta devuelve not-found.
func (uc *ProveedorUseCase) Hide(ctx context.Context, usuarioID, id int64) error {
	return uc.txRunner.RunAudited(ctx, func(
		_ repository.ClienteRepository,
		proveedorRepo repository.ProveedorRepository,
		_ repository.ProductoRepository,
		_ repository.UsuarioRepository,
		auditRepo repository.AuditoriaRepository,
	) error {
		ok, err := proveedorRepo.Hide(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		return auditRepo.Append(ctx, audit.NewHide(usuarioID, tablaProveedores, id))
	})
}

func snapshotProveedor(nombre, telefono, email, direccion string) audit.Snapshot {
	return audit.Snapshot{
		"nombre_proveedor":    nombre,
		"telefono_proveedor":  telefono,
		"email_proveedor":     email,
		"direccion_proveedor": direccion,
	}
}

func toProveedorResponse(p *entity.Proveedor) dto.ProveedorResponse {
	return dto.ProveedorResponse{
		ID:        p.ID,
		Nombre:    p.Nombre,
		Telefono:  p.Telefono,
		Email:     p.Email,
		Direccion: p.Direccion,
	}
}
