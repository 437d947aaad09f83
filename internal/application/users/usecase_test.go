package users_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestorpyme/gestor-api/internal/application/dto"
	"github.com/gestorpyme/gestor-api/internal/application/users"
	"github.com/gestorpyme/gestor-api/internal/domain"
	"github.com/gestorpyme/gestor-api/internal/domain/entity"
	"github.com/gestorpyme/gestor-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUsuarioRepo struct {
	usuarios map[int64]*entity.Usuario
	tokens   map[int64]string
}

func (f *fakeUsuarioRepo) Create(_ context.Context, u *entity.Usuario) (int64, error) {
	for _, existente := range f.usuarios {
		if existente.Email == u.Email {
			return 0, domain.ErrEmailAlreadyExists
		}
	}
	id := int64(len(f.usuarios) + 1)
	u.ID = id
	f.usuarios[id] = u
	return id, nil
}

func (f *fakeUsuarioRepo) GetByID(_ context.Context, id int64) (*entity.Usuario, error) {
	u, ok := f.usuarios[id]
	if !ok || u.Oculto {
		return nil, nil
	}
	return u, nil
}

// GetByEmail devuelve también filas ocultas, con la bandera cargada,
// como el adaptador real.
func (f *fakeUsuarioRepo) GetByEmail(_ context.Context, email string) (*entity.Usuario, error) {
	for _, u := range f.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) ListVisibles(context.Context) ([]*entity.Usuario, error) {
	return nil, nil
}

func (f *fakeUsuarioRepo) Update(_ context.Context, u *entity.Usuario) (bool, error) {
	actual, ok := f.usuarios[u.ID]
	if !ok || actual.Oculto {
		return false, nil
	}
	actual.Nombre = u.Nombre
	actual.Telefono = u.Telefono
	actual.Email = u.Email
	return true, nil
}

func (f *fakeUsuarioRepo) Hide(_ context.Context, id int64) (bool, error) {
	u, ok := f.usuarios[id]
	if !ok || u.Oculto {
		return false, nil
	}
	u.Oculto = true
	return true, nil
}

func (f *fakeUsuarioRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	f.usuarios[id].PasswordHash = hash
	return nil
}

func (f *fakeUsuarioRepo) GetToken(_ context.Context, usuarioID int64) (*entity.TokenPassword, error) {
	tok, ok := f.tokens[usuarioID]
	if !ok {
		return nil, nil
	}
	return &entity.TokenPassword{UsuarioID: usuarioID, Token: tok}, nil
}

func (f *fakeUsuarioRepo) SaveToken(_ context.Context, t *entity.TokenPassword) error {
	f.tokens[t.UsuarioID] = t.Token
	return nil
}

func (f *fakeUsuarioRepo) DeleteToken(_ context.Context, usuarioID int64) error {
	delete(f.tokens, usuarioID)
	return nil
}

type fakeMailer struct {
	enviados []string // tokens entregados
	email    string
}

func (f *fakeMailer) SendPasswordReset(_ context.Context, email, _, token string) error {
	f.email = email
	f.enviados = append(f.enviados, token)
	return nil
}

type fakeAuditTxRunner struct {
	usuarios  *fakeUsuarioRepo
	auditados []*entity.RegistroAuditoria
}

func (r *fakeAuditTxRunner) RunAudited(ctx context.Context, fn func(
	repository.ClienteRepository,
	repository.ProveedorRepository,
	repository.ProductoRepository,
	repository.UsuarioRepository,
	repository.AuditoriaRepository,
) error) error {
	return fn(nil, nil, nil, r.usuarios, auditAppender{r})
}

type auditAppender struct{ r *fakeAuditTxRunner }

func (a auditAppender) Append(_ context.Context, rec *entity.RegistroAuditoria) error {
	a.r.auditados = append(a.r.auditados, rec)
	return nil
}

func newUserFixture(t *testing.T) (*users.UserUseCase, *fakeUsuarioRepo, *fakeMailer) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreta1"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUsuarioRepo{
		usuarios: map[int64]*entity.Usuario{
			1: {ID: 1, Nombre: "Carlos", Email: "carlos@gestor.local", PasswordHash: string(hash), RolID: entity.RolAdministrador},
		},
		tokens: map[int64]string{},
	}
	mailer := &fakeMailer{}
	runner := &fakeAuditTxRunner{usuarios: repo}
	return users.NewUserUseCase(runner, repo, mailer), repo, mailer
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestUserCreate_HasheaPassword(t *testing.T) {
	uc, repo, _ := newUserFixture(t)

	id, err := uc.Create(context.Background(), dto.CreateUsuarioRequest{
		Nombre:   "Lucía",
		Email:    "lucia@gestor.local",
		Password: "secreta1",
	})
	require.NoError(t, err)

	u := repo.usuarios[id]
	assert.NotEqual(t, "secreta1", u.PasswordHash, "la contraseña nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secreta1")))
	assert.Equal(t, entity.RolEmpleado, u.RolID, "sin rol explícito queda como empleado")
}

func TestUserCreate_EmailDuplicado(t *testing.T) {
	uc, _, _ := newUserFixture(t)

	_, err := uc.Create(context.Background(), dto.CreateUsuarioRequest{
		Nombre:   "Otro Carlos",
		Email:    "carlos@gestor.local",
		Password: "secreta1",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserCreate_Validacion(t *testing.T) {
	uc, _, _ := newUserFixture(t)

	cases := []dto.CreateUsuarioRequest{
		{Nombre: "", Email: "x@y.z", Password: "secreta1"},
		{Nombre: "X", Email: "", Password: "secreta1"},
		{Nombre: "X", Email: "x@y.z", Password: "corta"},
		{Nombre: "X", Email: "x@y.z", Password: "secreta1", RolID: 9},
	}
	for _, in := range cases {
		_, err := uc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// El flujo completo de recuperación: pedir token, cambiarla con él, y el
// token queda consumido.
func TestPasswordReset_FlujoCompleto(t *testing.T) {
	uc, repo, mailer := newUserFixture(t)

	require.NoError(t, uc.RequestPasswordReset(context.Background(), "carlos@gestor.local"))
	require.Len(t, mailer.enviados, 1)
	assert.Equal(t, "carlos@gestor.local", mailer.email)
	token := mailer.enviados[0]
	assert.NotEmpty(t, token)

	err := uc.ResetPassword(context.Background(), dto.PasswordChangeRequest{
		Email:    "carlos@gestor.local",
		Token:    token,
		Password: "nuevaClave9",
	})
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(repo.usuarios[1].PasswordHash), []byte("nuevaClave9")))
	assert.Empty(t, repo.tokens, "el token se consume al usarse")
}

// Pedir un segundo token invalida el anterior: a lo sumo uno vivo.
func TestPasswordReset_SegundoTokenInvalidaElPrimero(t *testing.T) {
	uc, _, mailer := newUserFixture(t)

	require.NoError(t, uc.RequestPasswordReset(context.Background(), "carlos@gestor.local"))
	require.NoError(t, uc.RequestPasswordReset(context.Background(), "carlos@gestor.local"))
	require.Len(t, mailer.enviados, 2)

	err := uc.ResetPassword(context.Background(), dto.PasswordChangeRequest{
		Email:    "carlos@gestor.local",
		Token:    mailer.enviados[0],
		Password: "nuevaClave9",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestPasswordReset_TokenIncorrecto(t *testing.T) {
	uc, _, _ := newUserFixture(t)

	require.NoError(t, uc.RequestPasswordReset(context.Background(), "carlos@gestor.local"))

	err := uc.ResetPassword(context.Background(), dto.PasswordChangeRequest{
		Email:    "carlos@gestor.local",
		Token:    "token-que-no-es",
		Password: "nuevaClave9",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestPasswordReset_EmailDesconocido(t *testing.T) {
	uc, _, _ := newUserFixture(t)

	err := uc.RequestPasswordReset(context.Background(), "nadie@gestor.local")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Un usuario oculto no puede pedir ni consumir tokens de recuperación:
// para el flujo de reseteo es como si no existiera.
func TestPasswordReset_UsuarioOculto(t *testing.T) {
	uc, repo, mailer := newUserFixture(t)
	repo.usuarios[1].Oculto = true

	err := uc.RequestPasswordReset(context.Background(), "carlos@gestor.local")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Empty(t, mailer.enviados)

	err = uc.ResetPassword(context.Background(), dto.PasswordChangeRequest{
		Email:    "carlos@gestor.local",
		Token:    "da-igual",
		Password: "nuevaClave9",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
