package memory

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stowlog/backoffice-api/internal/domain/entity"
	"github.com/stowlog/backoffice-api/internal/domain/slug"
)

// Seed carga las tres colecciones fijas del backoffice. Todo el estado es
// volátil: cada reinicio del proceso vuelve exactamente a estos registros.
func Seed(facilities *FacilityRepo, billing *BillingRepo, admins *AdminRepo) error {
	seedFacilities := []*entity.Facility{
		{
			ID:             "stl-north",
			Name:           "Stowlog STL North",
			Status:         entity.FacilityStatusActive,
			EnrollmentDate: "2023-08-14",
			Modules:        withModules(entity.ModuleAnalytics),
		},
		{
			ID:             "atl-south",
			Name:           "Stowlog ATL South",
			Status:         entity.FacilityStatusActive,
			EnrollmentDate: "2023-11-02",
			Modules:        withModules(entity.ModuleAlerts),
		},
		{
			ID:             "mia-hub",
			Name:           "Stowlog Miami Hub",
			Status:         entity.FacilityStatusPending,
			EnrollmentDate: "2024-02-20",
			Modules:        withModules(),
		},
	}
	for _, f := range seedFacilities {
		if err := facilities.Create(f); err != nil {
			return fmt.Errorf("seed facility %s: %w", f.ID, err)
		}
	}

	seedPeriods := []*entity.BillingPeriod{
		{FacilityID: "stl-north", StartDate: "2024-01-01", Cycle: entity.BillingCycleMonthly, Status: entity.BillingStatusActive},
		{FacilityID: "atl-south", StartDate: "2023-12-01", Cycle: entity.BillingCycleQuarterly, Status: entity.BillingStatusActive},
		{FacilityID: "mia-hub", StartDate: "2024-05-01", Cycle: entity.BillingCycleMonthly, Status: entity.BillingStatusUpcoming},
	}
	for _, p := range seedPeriods {
		if err := billing.Upsert(p); err != nil {
			return fmt.Errorf("seed billing %s: %w", p.FacilityID, err)
		}
	}

	seedAdmins := []*entity.AdminUser{
		{
			ID:         "alice-cooper",
			Name:       "Alice Cooper",
			Email:      "alice@stowlog.com",
			Facilities: []string{"stl-north", "atl-south"},
			Role:       entity.AdminRoleOwner,
			Notes:      "North region operations lead",
		},
		{
			ID:         "brian-orr",
			Name:       "Brian Orr",
			Email:      "brian@stowlog.com",
			Facilities: []string{"atl-south"},
			Role:       entity.AdminRoleManager,
			Notes:      "Regional billing oversight",
		},
		{
			ID:         "carla-wong",
			Name:       "Carla Wong",
			Email:      "carla@stowlog.com",
			Facilities: []string{"mia-hub"},
			Role:       entity.AdminRoleViewer,
			Notes:      "Implementation specialist",
		},
	}
	for _, a := range seedAdmins {
		if err := admins.Create(a); err != nil {
			return fmt.Errorf("seed admin %s: %w", a.ID, err)
		}
	}
	return nil
}

// SeedDemo agrega count instalaciones sintéticas (con su período de
// facturación por defecto) encima de las fijas. Útil para demos y pruebas
// de carga de la UI; con count <= 0 no hace nada.
func SeedDemo(facilities *FacilityRepo, billing *BillingRepo, count int) error {
	faker := gofakeit.New(0)
	statuses := []entity.FacilityStatus{
		entity.FacilityStatusActive,
		entity.FacilityStatusPending,
		entity.FacilityStatusInactive,
	}
	for i := 0; i < count; i++ {
		name := fmt.Sprintf("Stowlog %s %s", faker.City(), faker.RandomString([]string{"Hub", "Depot", "Yard", "Annex"}))
		enrolled := faker.DateRange(
			time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		).Format("2006-01-02")

		modules := entity.DefaultModules()
		modules[entity.ModuleAnalytics] = faker.Bool()
		modules[entity.ModuleAlerts] = faker.Bool()

		f := &entity.Facility{
			ID:             slug.Make(name),
			Name:           name,
			Status:         statuses[faker.Number(0, len(statuses)-1)],
			EnrollmentDate: enrolled,
			Modules:        modules,
		}
		if err := facilities.Create(f); err != nil {
			return fmt.Errorf("seed demo facility %s: %w", f.ID, err)
		}
		p := &entity.BillingPeriod{
			FacilityID: f.ID,
			StartDate:  f.EnrollmentDate,
			Cycle:      entity.BillingCycleMonthly,
			Status:     entity.BillingStatusUpcoming,
		}
		if err := billing.Upsert(p); err != nil {
			return fmt.Errorf("seed demo billing %s: %w", f.ID, err)
		}
	}
	return nil
}

// withModules parte del mapa por defecto y enciende los módulos extra dados.
func withModules(extra ...entity.ModuleKey) map[entity.ModuleKey]bool {
	m := entity.DefaultModules()
	for _, k := range extra {
		m[k] = true
	}
	return m
}
