package repository

import (
	"context"

	"github.com/gestorpyme/gestor-api/internal/domain/entity"
)

// ClienteRepository puerto de persistencia para clientes. La ocultación
// es borrado lógico: GetByID y Update operan solo sobre filas visibles
// (una fila oculta se comporta como inexistente).
type ClienteRepository interface {
	Create(ctx context.Context, c *entity.Cliente) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Cliente, error)
	ListVisibles(ctx context.Context) ([]*entity.Cliente, error)
	Update(ctx context.Context, c *entity.Cliente) (bool, error)
	Hide(ctx context.Context, id int64) (bool, error)
}

// ProveedorRepository puerto de persistencia para proveedores. Misma
// semántica de ocultación que ClienteRepository.
type ProveedorRepository interface {
	Create(ctx context.Context, p *entity.Proveedor) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Proveedor, error)
	ListVisibles(ctx context.Context) ([]*entity.Proveedor, error)
	Update(ctx context.Context, p *entity.Proveedor) (bool, error)
	Hide(ctx context.Context, id int64) (bool, error)
}
