package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stowlog/backoffice-api/internal/application/usecase"
	"github.com/stowlog/backoffice-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture compartido: repos en memoria con la siembra fija del backoffice
// (stl-north, atl-south, mia-hub + períodos + alice/brian/carla).
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	facilities *memory.FacilityRepo
	billing    *memory.BillingRepo
	admins     *memory.AdminRepo
	sessions   *memory.SessionRepo

	facilityUC *usecase.FacilityUseCase
	billingUC  *usecase.BillingUseCase
	adminUC    *usecase.AdminUseCase
	configUC   *usecase.ModuleConfigUseCase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		facilities: memory.NewFacilityRepository(),
		billing:    memory.NewBillingRepository(),
		admins:     memory.NewAdminRepository(),
		sessions:   memory.NewSessionRepository(),
	}
	require.NoError(t, memory.Seed(env.facilities, env.billing, env.admins),
		"la siembra fija no debe fallar")

	env.facilityUC = usecase.NewFacilityUseCase(env.facilities, env.billing, env.admins, env.sessions)
	env.billingUC = usecase.NewBillingUseCase(env.billing, env.facilities)
	env.adminUC = usecase.NewAdminUseCase(env.admins, env.facilities)
	env.configUC = usecase.NewModuleConfigUseCase(env.sessions, env.facilities)
	return env
}
