package catalog

import (
	"context"

	"github.com/gestorpyme/gestor-api/internal/application/audit"
	"github.com/gestorpyme/gestor-api/internal/application/dto"
	"github.com/gestorpyme/gestor-api/internal/domain"
	"github.com/gestorpyme/gestor-api/internal/domain/entity"
	"github.com/gestorpyme/gestor-api/internal/domain/repository"
)

// Tabla auditada por las mutaciones de clientes.
const tablaClientes = "clientes"

// ClienteUseCase casos de uso de clientes.
type ClienteUseCase struct {
	txRunner    AuditTxRunner
	clienteRepo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(txRunner AuditTxRunner, clienteRepo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{txRunner: txRunner, clienteRepo: clienteRepo}
}

// Create da de alta un cliente. Las altas no se auditan.
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.CreateClienteRequest) (int64, error) {
	if in.Nombre == "" {
		return 0, domain.ErrInvalidInput
	}
	return uc.clienteRepo.Create(ctx, &entity.Cliente{
		Nombre:    in.Nombre,
		Telefono:  in.Telefono,
		Direccion: in.Direccion,
	})
}

// List lista los clientes visibles.
func (uc *ClienteUseCase) List(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := uc.clienteRepo.ListVisibles(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, toClienteResponse(c))
	}
	return out, nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClienteUseCase) GetByID(ctx context.Context, id int64) (*dto.ClienteResponse, error) {
	c, err := uc.clienteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := toClienteResponse(c)
	return &resp, nil
}

// Update modifica un cliente y deja su fila de auditoría (tipo 2) en la
// misma transacción, con snapshots del estado previo y el enviado.
func (uc *ClienteUseCase) Update(ctx context.Context, usuarioID, id int64, in dto.UpdateClienteRequest) error {
	if in.Nombre == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.RunAudited(ctx, func(
		clienteRepo repository.ClienteRepository,
		_ repository.ProveedorRepository,
		_ repository.ProductoRepository,
		_ repository.UsuarioRepository,
		auditRepo repository.AuditoriaRepository,
	) error {
		actual, err := clienteRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if actual == nil {
			return domain.ErrNotFound
		}
		ok, err := clienteRepo.Update(ctx, &entity.Cliente{
			ID:        id,
			Nombre:    in.Nombre,
			Telefono:  in.Telefono,
			Direccion: in.Direccion,
		})
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		rec, err := audit.NewChange(usuarioID, tablaClientes, id,
			snapshotCliente(actual.Nombre, actual.Telefono, actual.Direccion),
			snapshotCliente(in.Nombre, in.Telefono, in.Direccion),
		)
		if err != nil {
			return err
		}
		return auditRepo.Append(ctx, rec)
	})
}

// Hide oculta un cliente y deja su fila de auditoría (tipo 3) en la
// misma transacción. Ocultar una fila ya oculta devuelve not-found.
func (uc *ClienteUseCase) Hide(ctx context.Context, usuarioID, id int64) error {
	return uc.txRunner.RunAudited(ctx, func(
		clienteRepo repository.ClienteRepository,
		_ repository.ProveedorRepository,
		_ repository.ProductoRepository,
		_ repository.UsuarioRepository,
		auditRepo repository.AuditoriaRepository,
	) error {
		ok, err := clienteRepo.Hide(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		return auditRepo.Append(ctx, audit.NewHide(usuarioID, tablaClientes, id))
	})
}

func snapshotCliente(nombre, telefono, direccion string) audit.Snapshot {
	return audit.Snapshot{
		"nombre_cliente":    nombre,
		"telefono_cliente":  telefono,
		"direccion_cliente": direccion,
	}
}

func toClienteResponse(c *entity.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Telefono:  c.Telefono,
		Direccion: c.Direccion,
	}
}
