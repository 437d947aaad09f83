package catalog_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorpyme/gestor-api/internal/application/audit"
	"github.com/gestorpyme/gestor-api/internal/application/catalog"
	"github.com/gestorpyme/gestor-api/internal/application/dto"
	"github.com/gestorpyme/gestor-api/internal/domain"
	"github.com/gestorpyme/gestor-api/internal/domain/entity"
	"github.com/gestorpyme/gestor-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: clientes con ocultación por bandera y un historial de
// auditoría que registra cada fila agregada.
// ──────────────────────────────────────────────────────────────────────────────

type fakeClienteRepo struct {
	clientes map[int64]*entity.Cliente
}

func (f *fakeClienteRepo) Create(_ context.Context, c *entity.Cliente) (int64, error) {
	id := int64(len(f.clientes) + 1)
	c.ID = id
	f.clientes[id] = c
	return id, nil
}

func (f *fakeClienteRepo) GetByID(_ context.Context, id int64) (*entity.Cliente, error) {
	c, ok := f.clientes[id]
	if !ok || c.Oculto {
		return nil, nil
	}
	return c, nil
}

func (f *fakeClienteRepo) ListVisibles(context.Context) ([]*entity.Cliente, error) {
	var out []*entity.Cliente
	for _, c := range f.clientes {
		if !c.Oculto {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeClienteRepo) Update(_ context.Context, c *entity.Cliente) (bool, error) {
	actual, ok := f.clientes[c.ID]
	if !ok || actual.Oculto {
		return false, nil
	}
	actual.Nombre = c.Nombre
	actual.Telefono = c.Telefono
	actual.Direccion = c.Direccion
	return true, nil
}

// Hide replica la semántica del UPDATE guardado por is_hidden = FALSE:
// ocultar una fila ya oculta afecta cero filas.
func (f *fakeClienteRepo) Hide(_ context.Context, id int64) (bool, error) {
	c, ok := f.clientes[id]
	if !ok || c.Oculto {
		return false, nil
	}
	c.Oculto = true
	return true, nil
}

type fakeAuditoriaRepo struct {
	registros []*entity.RegistroAuditoria
}

func (f *fakeAuditoriaRepo) Append(_ context.Context, r *entity.RegistroAuditoria) error {
	f.registros = append(f.registros, r)
	return nil
}

// fakeAuditTxRunner entrega los fakes al callback; un error del callback
// descarta las filas de auditoría agregadas durante esa corrida.
type fakeAuditTxRunner struct {
	clientes  *fakeClienteRepo
	auditoria *fakeAuditoriaRepo
}

var _ catalog.AuditTxRunner = (*fakeAuditTxRunner)(nil)

func (r *fakeAuditTxRunner) RunAudited(ctx context.Context, fn func(
	repository.ClienteRepository,
	repository.ProveedorRepository,
	repository.ProductoRepository,
	repository.UsuarioRepository,
	repository.AuditoriaRepository,
) error) error {
	antes := len(r.auditoria.registros)
	if err := fn(r.clientes, nil, nil, nil, r.auditoria); err != nil {
		r.auditoria.registros = r.auditoria.registros[:antes]
		return err
	}
	return nil
}

func newClienteFixture() (*catalog.ClienteUseCase, *fakeClienteRepo, *fakeAuditoriaRepo) {
	clientes := &fakeClienteRepo{clientes: map[int64]*entity.Cliente{
		1: {ID: 1, Nombre: "Almacén Don Pedro", Telefono: "1155550000", Direccion: "Av. Mitre 120"},
	}}
	auditoria := &fakeAuditoriaRepo{}
	runner := &fakeAuditTxRunner{clientes: clientes, auditoria: auditoria}
	return catalog.NewClienteUseCase(runner, clientes), clientes, auditoria
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Una modificación deja exactamente una fila de auditoría tipo 2 con los
// snapshots previo y nuevo, en la misma transacción que el UPDATE.
func TestClienteUpdate_DejaAuditoria(t *testing.T) {
	uc, clientes, auditoria := newClienteFixture()

	err := uc.Update(context.Background(), 5, 1, dto.UpdateClienteRequest{
		Nombre:    "Almacén Don Pedro SRL",
		Telefono:  "1155550000",
		Direccion: "Av. Mitre 120",
	})
	require.NoError(t, err)
	assert.Equal(t, "Almacén Don Pedro SRL", clientes.clientes[1].Nombre)

	require.Len(t, auditoria.registros, 1)
	rec := auditoria.registros[0]
	assert.Equal(t, entity.AuditModificacion, rec.Tipo)
	assert.Equal(t, "clientes", rec.Tabla)
	assert.Equal(t, int64(1), rec.RegistroID)
	assert.Equal(t, int64(5), rec.UsuarioID)

	var previos, nuevos map[string]any
	require.NoError(t, json.Unmarshal(rec.ValoresPrevios, &previos))
	require.NoError(t, json.Unmarshal(rec.ValoresNuevos, &nuevos))
	assert.Equal(t, "Almacén Don Pedro", previos["nombre_cliente"])
	assert.Equal(t, "Almacén Don Pedro SRL", nuevos["nombre_cliente"])
}

func TestClienteUpdate_NoExiste_SinAuditoria(t *testing.T) {
	uc, _, auditoria := newClienteFixture()

	err := uc.Update(context.Background(), 5, 404, dto.UpdateClienteRequest{Nombre: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, auditoria.registros, "una modificación fallida no deja rastro en el historial")
}

func TestClienteUpdate_NombreVacio_EsInvalido(t *testing.T) {
	uc, _, auditoria := newClienteFixture()

	err := uc.Update(context.Background(), 5, 1, dto.UpdateClienteRequest{Nombre: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, auditoria.registros)
}

// Una ocultación deja la fila tipo 3 con los marcadores literales.
func TestClienteHide_DejaAuditoria(t *testing.T) {
	uc, clientes, auditoria := newClienteFixture()

	err := uc.Hide(context.Background(), 5, 1)
	require.NoError(t, err)
	assert.True(t, clientes.clientes[1].Oculto)

	require.Len(t, auditoria.registros, 1)
	rec := auditoria.registros[0]
	assert.Equal(t, entity.AuditOcultacion, rec.Tipo)

	var prev, next map[string]any
	require.NoError(t, json.Unmarshal(rec.ValoresPrevios, &prev))
	require.NoError(t, json.Unmarshal(rec.ValoresNuevos, &next))
	assert.Equal(t, audit.MarcadorVisible, prev["is_hidden"])
	assert.Equal(t, audit.MarcadorOculto, next["is_hidden"])
}

// Ocultar dos veces: la segunda afecta cero filas y responde not-found,
// sin fila de auditoría extra.
func TestClienteHide_DosVeces_SegundaNotFound(t *testing.T) {
	uc, _, auditoria := newClienteFixture()

	require.NoError(t, uc.Hide(context.Background(), 5, 1))
	err := uc.Hide(context.Background(), 5, 1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, auditoria.registros, 1, "solo la primera ocultación queda en el historial")
}

func TestClienteCreate_NoSeAudita(t *testing.T) {
	uc, clientes, auditoria := newClienteFixture()

	id, err := uc.Create(context.Background(), dto.CreateClienteRequest{Nombre: "Kiosco La Esquina"})
	require.NoError(t, err)
	assert.NotZero(t, id)
	assert.Contains(t, clientes.clientes, id)
	assert.Empty(t, auditoria.registros, "las altas no se auditan")
}

// Una fila oculta se comporta como inexistente para lecturas y
// modificaciones (semántica documentada en el puerto y aplicada por el
// predicado is_hidden = FALSE del adaptador).
func TestClienteGetByID_OcultoEsNotFound(t *testing.T) {
	uc, _, _ := newClienteFixture()

	require.NoError(t, uc.Hide(context.Background(), 5, 1))
	_, err := uc.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClienteUpdate_Oculto_NotFoundSinAuditoria(t *testing.T) {
	uc, _, auditoria := newClienteFixture()

	require.NoError(t, uc.Hide(context.Background(), 5, 1))
	err := uc.Update(context.Background(), 5, 1, dto.UpdateClienteRequest{Nombre: "Fantasma"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, auditoria.registros, 1, "solo la ocultación queda en el historial")
}
