package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestorpyme/gestor-api/internal/application/auth"
	"github.com/gestorpyme/gestor-api/internal/application/dto"
	"github.com/gestorpyme/gestor-api/internal/domain"
	"github.com/gestorpyme/gestor-api/internal/domain/entity"
	pkgjwt "github.com/gestorpyme/gestor-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

type fakeUsuarioGetter struct {
	usuarios map[string]*entity.Usuario
}

func (f *fakeUsuarioGetter) GetByEmail(_ context.Context, email string) (*entity.Usuario, error) {
	return f.usuarios[email], nil
}

func (f *fakeUsuarioGetter) Create(context.Context, *entity.Usuario) (int64, error) { return 0, nil }
func (f *fakeUsuarioGetter) GetByID(context.Context, int64) (*entity.Usuario, error) {
	return nil, nil
}
func (f *fakeUsuarioGetter) ListVisibles(context.Context) ([]*entity.Usuario, error) {
	return nil, nil
}
func (f *fakeUsuarioGetter) Update(context.Context, *entity.Usuario) (bool, error) {
	return false, nil
}
func (f *fakeUsuarioGetter) Hide(context.Context, int64) (bool, error)         { return false, nil }
func (f *fakeUsuarioGetter) UpdatePassword(context.Context, int64, string) error { return nil }
func (f *fakeUsuarioGetter) GetToken(context.Context, int64) (*entity.TokenPassword, error) {
	return nil, nil
}
func (f *fakeUsuarioGetter) SaveToken(context.Context, *entity.TokenPassword) error { return nil }
func (f *fakeUsuarioGetter) DeleteToken(context.Context, int64) error               { return nil }

func newAuthFixture(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreta1"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUsuarioGetter{usuarios: map[string]*entity.Usuario{
		"carlos@gestor.local": {
			ID: 1, Nombre: "Carlos", Email: "carlos@gestor.local",
			PasswordHash: string(hash), RolID: entity.RolAdministrador, Rol: "Administrador",
		},
		"oculto@gestor.local": {
			ID: 2, Nombre: "Oculto", Email: "oculto@gestor.local",
			PasswordHash: string(hash), Oculto: true,
		},
	}}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "gestor-api-test",
	})
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc := newAuthFixture(t)

	token, u, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "carlos@gestor.local",
		Password: "secreta1",
	})
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Carlos", u.Nombre)

	// El token lleva la identidad pública del usuario.
	userID, userName, userRole, err := pkgjwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), userID)
	assert.Equal(t, "Carlos", userName)
	assert.Equal(t, "Administrador", userRole)
}

// Contraseña mala, email inexistente y usuario oculto devuelven el mismo
// error: el login no revela qué parte falló.
func TestLogin_FallosUniformes(t *testing.T) {
	uc := newAuthFixture(t)

	cases := []dto.LoginRequest{
		{Email: "carlos@gestor.local", Password: "incorrecta"},
		{Email: "nadie@gestor.local", Password: "secreta1"},
		{Email: "oculto@gestor.local", Password: "secreta1"},
	}
	for _, in := range cases {
		_, _, err := uc.Login(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrUnauthorized, "login con %q debe fallar uniforme", in.Email)
	}
}

func TestLogin_CamposVacios(t *testing.T) {
	uc := newAuthFixture(t)

	_, _, err := uc.Login(context.Background(), dto.LoginRequest{Email: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = uc.Login(context.Background(), dto.LoginRequest{Email: "a@b.c", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
