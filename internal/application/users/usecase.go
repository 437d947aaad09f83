package users

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"github.com/gestorpyme/gestor-api/internal/application/audit"
	"github.com/gestorpyme/gestor-api/internal/application/dto"
	"github.com/gestorpyme/gestor-api/internal/domain"
	"github.com/gestorpyme/gestor-api/internal/domain/entity"
	"github.com/gestorpyme/gestor-api/internal/domain/repository"
)

const tablaUsuarios = "usuarios_sistema"

// UserUseCase casos de uso de usuarios del sistema, incluida la
// recuperación de contraseña por token.
type UserUseCase struct {
	txRunner    AuditTxRunner
	usuarioRepo repository.UsuarioRepository
	mailer      Mailer
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(txRunner AuditTxRunner, usuarioRepo repository.UsuarioRepository, mailer Mailer) *UserUseCase {
	return &UserUseCase{txRunner: txRunner, usuarioRepo: usuarioRepo, mailer: mailer}
}

// Create da de alta un usuario: hashea la contraseña con bcrypt y
// persiste. Sin rol explícito queda como empleado. Email duplicado
// devuelve ErrEmailAlreadyExists.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUsuarioRequest) (int64, error) {
	if in.Nombre == "" || in.Email == "" || len(in.Password) < 6 {
		return 0, domain.ErrInvalidInput
	}
	rol := in.RolID
	if rol == 0 {
		rol = entity.RolEmpleado
	}
	if rol != entity.RolAdministrador && rol != entity.RolEmpleado {
		return 0, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	return uc.usuarioRepo.Create(ctx, &entity.Usuario{
		Nombre:       in.Nombre,
		Telefono:     in.Telefono,
		Email:        in.Email,
		PasswordHash: string(hash),
		RolID:        rol,
	})
}

// List lista los usuarios visibles, sin hashes.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UsuarioResponse, error) {
	usuarios, err := uc.usuarioRepo.ListVisibles(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, toUsuarioResponse(u))
	}
	return out, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UsuarioResponse, error) {
	u, err := uc.usuarioRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	resp := toUsuarioResponse(u)
	return &resp, nil
}

// Update modifica nombre, teléfono y email con su fila de auditoría en
// la misma transacción.
func (uc *UserUseCase) Update(ctx context.Context, usuarioID, id int64, in dto.UpdateUsuarioRequest) error {
	if in.Nombre == "" || in.Email == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.RunAudited(ctx, func(
		_ repository.ClienteRepository,
		_ repository.ProveedorRepository,
		_ repository.ProductoRepository,
		usuarioRepo repository.UsuarioRepository,
		auditRepo repository.AuditoriaRepository,
	) error {
		actual, err := usuarioRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if actual == nil {
			return domain.ErrNotFound
		}
		ok, err := usuarioRepo.Update(ctx, &entity.Usuario{
			ID:       id,
			Nombre:   in.Nombre,
			Telefono: in.Telefono,
			Email:    in.Email,
		})
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		rec, err := audit.NewChange(usuarioID, tablaUsuarios, id,
			snapshotUsuario(actual.Nombre, actual.Telefono, actual.Email),
			snapshotUsuario(in.Nombre, in.Telefono, in.Email),
		)
		if err != nil {
			return err
		}
		return auditRepo.Append(ctx, rec)
	})
}

// Hide oculta un usuario; ocultar una fila ya oculta devuelve not-found.
func (uc *UserUseCase) Hide(ctx context.Context, usuarioID, id int64) error {
	return uc.txRunner.RunAudited(ctx, func(
		_ repository.ClienteRepository,
		_ repository.ProveedorRepository,
		_ repository.ProductoRepository,
		usuarioRepo repository.UsuarioRepository,
		auditRepo repository.AuditoriaRepository,
	) error {
		ok, err := usuarioRepo.Hide(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		return auditRepo.Append(ctx, audit.NewHide(usuarioID, tablaUsuarios, id))
	})
}

// RequestPasswordReset emite un token de recuperación: borra el token
// vivo si lo hay, guarda uno nuevo y lo entrega por el Mailer. A lo sumo
// un token vivo por usuario.
func (uc *UserUseCase) RequestPasswordReset(ctx context.Context, email string) error {
	u, err := uc.usuarioRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if u == nil || u.Oculto {
		return domain.ErrUserNotFound
	}
	if err := uc.usuarioRepo.DeleteToken(ctx, u.ID); err != nil {
		return err
	}
	token := uuid.New().String()
	if err := uc.usuarioRepo.SaveToken(ctx, &entity.TokenPassword{UsuarioID: u.ID, Token: token}); err != nil {
		return err
	}
	return uc.mailer.SendPasswordReset(ctx, u.Email, u.Nombre, token)
}

// ResetPassword cambia la contraseña si el token coincide con el vivo
// del usuario, y lo consume.
func (uc *UserUseCase) ResetPassword(ctx context.Context, in dto.PasswordChangeRequest) error {
	if in.Email == "" || in.Token == "" || len(in.Password) < 6 {
		return domain.ErrInvalidInput
	}
	u, err := uc.usuarioRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return err
	}
	if u == nil || u.Oculto {
		return domain.ErrUserNotFound
	}
	t, err := uc.usuarioRepo.GetToken(ctx, u.ID)
	if err != nil {
		return err
	}
	if t == nil || t.Token != in.Token {
		return domain.ErrInvalidToken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := uc.usuarioRepo.UpdatePassword(ctx, u.ID, string(hash)); err != nil {
		return err
	}
	return uc.usuarioRepo.DeleteToken(ctx, u.ID)
}

func snapshotUsuario(nombre, telefono, email string) audit.Snapshot {
	return audit.Snapshot{
		"nombre_usuario":   nombre,
		"telefono_usuario": telefono,
		"email_usuario":    email,
	}
}

func toUsuarioResponse(u *entity.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:       u.ID,
		Nombre:   u.Nombre,
		Telefono: u.Telefono,
		Email:    u.Email,
		RolID:    u.RolID,
		Rol:      u.Rol,
	}
}
