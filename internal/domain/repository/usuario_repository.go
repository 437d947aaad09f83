package repository

import (
	"context"

	"github.com/gestorpyme/gestor-api/internal/domain/entity"
)

// UsuarioRepository puerto de persistencia para usuarios del sistema y
// sus tokens de recuperación de contraseña. GetByID y Update operan solo
// sobre filas visibles; GetByEmail devuelve también ocultos con la
// bandera cargada, para que el login y el reseteo decidan.
type UsuarioRepository interface {
	Create(ctx context.Context, u *entity.Usuario) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*entity.Usuario, error)
	ListVisibles(ctx context.Context) ([]*entity.Usuario, error)
	Update(ctx context.Context, u *entity.Usuario) (bool, error)
	Hide(ctx context.Context, id int64) (bool, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error

	// Tokens de recuperación: a lo sumo uno vivo por usuario.
	GetToken(ctx context.Context, usuarioID int64) (*entity.TokenPassword, error)
	SaveToken(ctx context.Context, t *entity.TokenPassword) error
	DeleteToken(ctx context.Context, usuarioID int64) error
}
