package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stowlog/backoffice-api/internal/domain/entity"
	"github.com/stowlog/backoffice-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la siembra fija
// ──────────────────────────────────────────────────────────────────────────────

func TestSeed_TresColecciones(t *testing.T) {
	facilities := memory.NewFacilityRepository()
	billing := memory.NewBillingRepository()
	admins := memory.NewAdminRepository()
	require.NoError(t, memory.Seed(facilities, billing, admins))

	fs, err := facilities.List()
	require.NoError(t, err)
	require.Len(t, fs, 3)
	assert.Equal(t, "stl-north", fs[0].ID)
	assert.True(t, fs[0].Modules[entity.ModuleAnalytics])
	assert.False(t, fs[2].Modules[entity.ModuleAnalytics])

	ps, err := billing.List()
	require.NoError(t, err)
	require.Len(t, ps, 3)
	assert.Equal(t, entity.BillingCycleQuarterly, ps[1].Cycle)

	as, err := admins.List()
	require.NoError(t, err)
	require.Len(t, as, 3)
	assert.Equal(t, []string{"stl-north", "atl-south"}, as[0].Facilities)
}

func TestSeedDemo_AgregaEncimaDeLasFijas(t *testing.T) {
	facilities := memory.NewFacilityRepository()
	billing := memory.NewBillingRepository()
	admins := memory.NewAdminRepository()
	require.NoError(t, memory.Seed(facilities, billing, admins))
	require.NoError(t, memory.SeedDemo(facilities, billing, 5))

	fs, err := facilities.List()
	require.NoError(t, err)
	assert.Len(t, fs, 8)

	// Cada instalación demo trae su período por defecto.
	for _, f := range fs[3:] {
		p, err := billing.GetByFacility(f.ID)
		require.NoError(t, err)
		require.NotNil(t, p, "instalación demo %s sin período", f.ID)
		assert.Equal(t, entity.BillingCycleMonthly, p.Cycle)
		assert.Equal(t, entity.BillingStatusUpcoming, p.Status)
		assert.Equal(t, f.EnrollmentDate, p.StartDate)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del adaptador de instalaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestFacilityRepo_OrdenDeInsercionTrasBorrado(t *testing.T) {
	repo := memory.NewFacilityRepository()
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, repo.Create(&entity.Facility{ID: id, Name: id}))
	}
	require.NoError(t, repo.Delete("b"))

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "c", list[1].ID, "el orden relativo sobrevive al borrado")
	assert.Equal(t, "d", list[2].ID)
}

func TestFacilityRepo_ClonaEnLaFrontera(t *testing.T) {
	repo := memory.NewFacilityRepository()
	src := &entity.Facility{ID: "x", Name: "X", Modules: entity.DefaultModules()}
	require.NoError(t, repo.Create(src))

	// Mutar lo que el llamador retiene no debe tocar el estado interno.
	src.Name = "mutado"
	src.Modules[entity.ModuleAlerts] = true

	got, err := repo.GetByID("x")
	require.NoError(t, err)
	assert.Equal(t, "X", got.Name)
	assert.False(t, got.Modules[entity.ModuleAlerts])

	// Y mutar lo leído tampoco.
	got.Name = "otra-mutacion"
	again, err := repo.GetByID("x")
	require.NoError(t, err)
	assert.Equal(t, "X", again.Name)
}

func TestFacilityRepo_UpdateDeIDInexistenteEsNoOp(t *testing.T) {
	repo := memory.NewFacilityRepository()
	require.NoError(t, repo.Create(&entity.Facility{ID: "a", Name: "A"}))

	require.NoError(t, repo.Update(&entity.Facility{ID: "z", Name: "Z"}))

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 1, "el update de un ID ausente no inserta")
	assert.Equal(t, "A", list[0].Name)
}

func TestFacilityRepo_First(t *testing.T) {
	repo := memory.NewFacilityRepository()

	first, err := repo.First()
	require.NoError(t, err)
	assert.Nil(t, first, "colección vacía: sin primera")

	require.NoError(t, repo.Create(&entity.Facility{ID: "a", Name: "A"}))
	require.NoError(t, repo.Create(&entity.Facility{ID: "b", Name: "B"}))
	require.NoError(t, repo.Delete("a"))

	first, err = repo.First()
	require.NoError(t, err)
	assert.Equal(t, "b", first.ID, "la primera sigue el orden de inserción vigente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del adaptador de facturación
// ──────────────────────────────────────────────────────────────────────────────

func TestBillingRepo_UpsertUnPeriodoPorInstalacion(t *testing.T) {
	repo := memory.NewBillingRepository()
	require.NoError(t, repo.Upsert(&entity.BillingPeriod{
		FacilityID: "a", StartDate: "2024-01-01",
		Cycle: entity.BillingCycleMonthly, Status: entity.BillingStatusActive,
	}))
	require.NoError(t, repo.Upsert(&entity.BillingPeriod{
		FacilityID: "a", StartDate: "2024-06-01",
		Cycle: entity.BillingCycleAnnually, Status: entity.BillingStatusExpired,
	}))

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 1, "el segundo upsert reemplaza, no duplica")
	assert.Equal(t, "2024-06-01", list[0].StartDate)
	assert.Equal(t, entity.BillingCycleAnnually, list[0].Cycle)
}

func TestBillingRepo_DeleteByFacility(t *testing.T) {
	repo := memory.NewBillingRepository()
	require.NoError(t, repo.Upsert(&entity.BillingPeriod{FacilityID: "a", StartDate: "2024-01-01"}))
	require.NoError(t, repo.Upsert(&entity.BillingPeriod{FacilityID: "b", StartDate: "2024-02-01"}))

	require.NoError(t, repo.DeleteByFacility("a"))
	require.NoError(t, repo.DeleteByFacility("fantasma"))

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "b", list[0].FacilityID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del adaptador de administradores
// ──────────────────────────────────────────────────────────────────────────────

func TestAdminRepo_StripFacility(t *testing.T) {
	repo := memory.NewAdminRepository()
	require.NoError(t, repo.Create(&entity.AdminUser{
		ID: "a1", Facilities: []string{"f1", "f2", "f1"},
	}))
	require.NoError(t, repo.Create(&entity.AdminUser{
		ID: "a2", Facilities: []string{"f2"},
	}))

	require.NoError(t, repo.StripFacility("f1"))

	a1, err := repo.GetByID("a1")
	require.NoError(t, err)
	assert.Equal(t, []string{"f2"}, a1.Facilities,
		"toda aparición de f1 se retira, conservando el orden del resto")

	a2, err := repo.GetByID("a2")
	require.NoError(t, err)
	assert.Equal(t, []string{"f2"}, a2.Facilities, "los demás sets quedan intactos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del adaptador de sesiones
// ──────────────────────────────────────────────────────────────────────────────

func TestSessionRepo_ReassignSoloLasQueCoinciden(t *testing.T) {
	repo := memory.NewSessionRepository()
	require.NoError(t, repo.Create(&entity.ConfigSession{
		ID: "s1", SelectedFacilityID: "f1", Draft: entity.DefaultModules(),
	}))
	require.NoError(t, repo.Create(&entity.ConfigSession{
		ID: "s2", SelectedFacilityID: "f2", Draft: entity.DefaultModules(),
	}))

	fallbackDraft := entity.DefaultModules()
	fallbackDraft[entity.ModuleAnalytics] = true
	require.NoError(t, repo.Reassign("f1", "f9", fallbackDraft))

	s1, err := repo.GetByID("s1")
	require.NoError(t, err)
	assert.Equal(t, "f9", s1.SelectedFacilityID)
	assert.True(t, s1.Draft[entity.ModuleAnalytics], "el borrador se reemplaza por el del fallback")

	s2, err := repo.GetByID("s2")
	require.NoError(t, err)
	assert.Equal(t, "f2", s2.SelectedFacilityID, "las sesiones ajenas no se tocan")
	assert.False(t, s2.Draft[entity.ModuleAnalytics])
}

func TestSessionRepo_UpdateDeIDInexistenteEsNoOp(t *testing.T) {
	repo := memory.NewSessionRepository()

	require.NoError(t, repo.Update(&entity.ConfigSession{ID: "nada"}))

	got, err := repo.GetByID("nada")
	require.NoError(t, err)
	assert.Nil(t, got, "el update de un ID ausente no inserta")
}
