package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stowlog/backoffice-api/internal/application/dto"
	"github.com/stowlog/backoffice-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests List / Get — un período por instalación, nombre resuelto
// ──────────────────────────────────────────────────────────────────────────────

func TestBillingList_OrdenDeInsercionYNombres(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.billingUC.List()
	require.NoError(t, err)
	require.Equal(t, 3, out.Total)
	assert.Equal(t, "stl-north", out.Items[0].FacilityID)
	assert.Equal(t, "Stowlog STL North", out.Items[0].FacilityName,
		"el nombre se resuelve para presentación")
	assert.Equal(t, "Quarterly", out.Items[1].Cycle)
	assert.Equal(t, "Upcoming", out.Items[2].Status)
}

func TestBillingGet_SinPeriodo(t *testing.T) {
	env := newTestEnv(t)

	got, err := env.billingUC.Get("fantasma")
	require.NoError(t, err)
	assert.Nil(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Draft — el editor abre sin escribir
// ──────────────────────────────────────────────────────────────────────────────

func TestBillingDraft_ExistentePrecargaElEditor(t *testing.T) {
	env := newTestEnv(t)

	draft, err := env.billingUC.Draft("atl-south")
	require.NoError(t, err)
	assert.Equal(t, "2023-12-01", draft.StartDate)
	assert.Equal(t, "Quarterly", draft.Cycle)
	assert.Equal(t, "Active", draft.Status)
}

func TestBillingDraft_FrescoNoEscribe(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.facilityUC.Delete("mia-hub"))

	draft, err := env.billingUC.Draft("mia-hub")
	require.NoError(t, err)
	assert.Equal(t, "Monthly", draft.Cycle, "borrador fresco: mensual")
	assert.Equal(t, "Active", draft.Status, "borrador fresco: activo")
	assert.NotEmpty(t, draft.StartDate, "borrador fresco: hoy")

	// Abrir el editor no crea el período.
	got, err := env.billingUC.Get("mia-hub")
	require.NoError(t, err)
	assert.Nil(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Upsert — reemplaza o agrega, nunca duplica
// ──────────────────────────────────────────────────────────────────────────────

func TestBillingUpsert_ReemplazaSinDuplicar(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.billingUC.Upsert(dto.UpsertBillingRequest{
		FacilityID: "stl-north",
		StartDate:  "2024-07-01",
		Cycle:      "Annually",
		Status:     "Expired",
	})
	require.NoError(t, err)

	out, err := env.billingUC.List()
	require.NoError(t, err)
	assert.Equal(t, 3, out.Total, "el upsert reemplaza, nunca agrega un segundo período")

	got, err := env.billingUC.Get("stl-north")
	require.NoError(t, err)
	assert.Equal(t, "Annually", got.Cycle)
	assert.Equal(t, "Expired", got.Status)
	assert.Equal(t, "2024-07-01", got.StartDate)
}

func TestBillingUpsert_Idempotente(t *testing.T) {
	env := newTestEnv(t)

	req := dto.UpsertBillingRequest{
		FacilityID: "atl-south",
		StartDate:  "2023-12-01",
		Cycle:      "Quarterly",
		Status:     "Active",
	}
	first, err := env.billingUC.Upsert(req)
	require.NoError(t, err)
	second, err := env.billingUC.Upsert(req)
	require.NoError(t, err)
	assert.Equal(t, first, second, "re-enviar el mismo borrador es idempotente")

	out, err := env.billingUC.List()
	require.NoError(t, err)
	assert.Equal(t, 3, out.Total)
}

func TestBillingUpsert_InstalacionEnBlancoRechazada(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.billingUC.Upsert(dto.UpsertBillingRequest{FacilityID: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBillingUpsert_CamposVaciosTomanDefaults(t *testing.T) {
	env := newTestEnv(t)

	got, err := env.billingUC.Upsert(dto.UpsertBillingRequest{FacilityID: "mia-hub"})
	require.NoError(t, err)
	assert.Equal(t, "Monthly", got.Cycle)
	assert.Equal(t, "Active", got.Status)
	assert.NotEmpty(t, got.StartDate)
}

func TestBillingResponse_ReferenciaColganteUsaIDCrudo(t *testing.T) {
	env := newTestEnv(t)

	// Upsert hacia un ID que no corresponde a ninguna instalación: el
	// período se guarda igual y el nombre cae al ID crudo.
	got, err := env.billingUC.Upsert(dto.UpsertBillingRequest{FacilityID: "bodega-x"})
	require.NoError(t, err)
	assert.Equal(t, "bodega-x", got.FacilityName)
}
