package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"
	"github.com/gestorpyme/gestor-api/internal/application/dto"
	"github.com/gestorpyme/gestor-api/internal/domain"
	"github.com/gestorpyme/gestor-api/internal/domain/repository"
	"github.com/gestorpyme/gestor-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de sesión: login con cookie JWT.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Login verifica email y contraseña y genera el token de sesión.
// Credenciales malas, usuario inexistente u oculto devuelven el mismo
// ErrUnauthorized: el login no revela qué parte falló.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (string, *dto.UsuarioResponse, error) {
	if in.Email == "" || in.Password == "" {
		return "", nil, domain.ErrInvalidInput
	}
	u, err := uc.usuarioRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return "", nil, err
	}
	if u == nil || u.Oculto {
		return "", nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return "", nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Nombre, u.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return "", nil, err
	}
	return token, &dto.UsuarioResponse{
		ID:       u.ID,
		Nombre:   u.Nombre,
		Telefono: u.Telefono,
		Email:    u.Email,
		RolID:    u.RolID,
		Rol:      u.Rol,
	}, nil
}
