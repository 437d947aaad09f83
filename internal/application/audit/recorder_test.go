package audit_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorpyme/gestor-api/internal/application/audit"
	"github.com/gestorpyme/gestor-api/internal/domain/entity"
)

func TestNewChange_SnapshotsPlanos(t *testing.T) {
	previos := audit.Snapshot{
		"nombre_cliente":    "Almacén Don Pedro",
		"telefono_cliente":  "1155550000",
		"direccion_cliente": "Av. Mitre 120",
	}
	nuevos := audit.Snapshot{
		"nombre_cliente":    "Almacén Don Pedro SRL",
		"telefono_cliente":  "1155550000",
		"direccion_cliente": "Av. Mitre 120",
	}

	rec, err := audit.NewChange(7, "clientes", 15, previos, nuevos)
	require.NoError(t, err)

	assert.Equal(t, int64(7), rec.UsuarioID)
	assert.Equal(t, "clientes", rec.Tabla)
	assert.Equal(t, int64(15), rec.RegistroID)
	assert.Equal(t, entity.AuditModificacion, rec.Tipo)

	// Los snapshots deben deserializar al mismo mapa plano campo -> valor.
	var gotPrevios, gotNuevos map[string]any
	require.NoError(t, json.Unmarshal(rec.ValoresPrevios, &gotPrevios))
	require.NoError(t, json.Unmarshal(rec.ValoresNuevos, &gotNuevos))
	assert.Equal(t, "Almacén Don Pedro", gotPrevios["nombre_cliente"])
	assert.Equal(t, "Almacén Don Pedro SRL", gotNuevos["nombre_cliente"])
	assert.Len(t, gotPrevios, 3)
	assert.Len(t, gotNuevos, 3)
}

func TestNewChange_FechaYHoraPartidas(t *testing.T) {
	antes := time.Now()
	rec, err := audit.NewChange(1, "productos", 3, audit.Snapshot{}, audit.Snapshot{})
	require.NoError(t, err)

	// La hora viaja como texto HH:MM:SS, separada de la fecha.
	parsed, err := time.Parse("15:04:05", rec.Hora)
	require.NoError(t, err, "la hora debe tener formato HH:MM:SS")
	assert.NotZero(t, parsed)
	assert.False(t, rec.Fecha.Before(antes.Truncate(time.Second)))
}

func TestNewHide_MarcadoresLiterales(t *testing.T) {
	rec := audit.NewHide(2, "proveedores", 9)

	assert.Equal(t, entity.AuditOcultacion, rec.Tipo)
	assert.Equal(t, "proveedores", rec.Tabla)
	assert.Equal(t, int64(9), rec.RegistroID)

	// Una ocultación no guarda los campos de la fila: guarda un objeto
	// de un solo campo con el marcador literal del cambio de bandera.
	var prev, next map[string]any
	require.NoError(t, json.Unmarshal(rec.ValoresPrevios, &prev))
	require.NoError(t, json.Unmarshal(rec.ValoresNuevos, &next))
	assert.Equal(t, map[string]any{"is_hidden": audit.MarcadorVisible}, prev)
	assert.Equal(t, map[string]any{"is_hidden": audit.MarcadorOculto}, next)
}
