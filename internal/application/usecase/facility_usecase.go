package usecase

import (
	"strings"
	"time"

	"github.com/stowlog/backoffice-api/internal/application/dto"
	"github.com/stowlog/backoffice-api/internal/domain"
	"github.com/stowlog/backoffice-api/internal/domain/entity"
	"github.com/stowlog/backoffice-api/internal/domain/repository"
	"github.com/stowlog/backoffice-api/internal/domain/slug"
)

// FacilityUseCase casos de uso CRUD para instalaciones.
//
// Es el dueño de las cascadas: crear una instalación siembra su período de
// facturación por defecto, y borrarla limpia el período, las asignaciones
// de administradores y la selección de las sesiones de configuración. Las
// cascadas son llamadas explícitas y síncronas en este archivo, no
// suscripciones reactivas: el invariante "ninguna referencia a una
// instalación sobrevive a su borrado" se verifica leyendo Delete.
type FacilityUseCase struct {
	facilities repository.FacilityRepository
	billing    repository.BillingRepository
	admins     repository.AdminRepository
	sessions   repository.SessionRepository
}

// NewFacilityUseCase construye el caso de uso con los puertos que tocan
// las cascadas.
func NewFacilityUseCase(
	facilities repository.FacilityRepository,
	billing repository.BillingRepository,
	admins repository.AdminRepository,
	sessions repository.SessionRepository,
) *FacilityUseCase {
	return &FacilityUseCase{
		facilities: facilities,
		billing:    billing,
		admins:     admins,
		sessions:   sessions,
	}
}

// Search lista instalaciones en orden de inserción. Con query vacía
// devuelve la colección completa; si no, filtra por subcadena
// case-insensitive sobre nombre, estado y fecha de enrolamiento.
func (uc *FacilityUseCase) Search(query string) (*dto.FacilityListResponse, error) {
	list, err := uc.facilities.List()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	items := make([]dto.FacilityResponse, 0, len(list))
	for _, f := range list {
		if q != "" && !matchesFacility(f, q) {
			continue
		}
		items = append(items, *toFacilityResponse(f))
	}
	return &dto.FacilityListResponse{Items: items, Total: len(items)}, nil
}

// GetByID obtiene una instalación por ID.
func (uc *FacilityUseCase) GetByID(id string) (*dto.FacilityResponse, error) {
	f, err := uc.facilities.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}
	return toFacilityResponse(f), nil
}

// Create confirma el borrador de una instalación nueva. Rechaza nombre en
// blanco con domain.ErrInvalidInput; deriva el ID como slug del nombre (sin
// control de colisiones, a propósito) y siembra en cascada el período de
// facturación por defecto: ciclo mensual, estado Upcoming, inicio en la
// fecha de enrolamiento.
func (uc *FacilityUseCase) Create(in dto.FacilityRequest) (*dto.FacilityResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}

	status := entity.FacilityStatus(in.Status)
	if in.Status == "" {
		status = entity.FacilityStatusPending
	}
	enrolled := in.EnrollmentDate
	if enrolled == "" {
		enrolled = time.Now().Format("2006-01-02")
	}

	facility := &entity.Facility{
		ID:             slug.Make(in.Name),
		Name:           in.Name,
		Status:         status,
		EnrollmentDate: enrolled,
		Modules:        normalizeModules(in.Modules, entity.DefaultModules()),
	}
	if err := uc.facilities.Create(facility); err != nil {
		return nil, err
	}

	period := &entity.BillingPeriod{
		FacilityID: facility.ID,
		StartDate:  facility.EnrollmentDate,
		Cycle:      entity.BillingCycleMonthly,
		Status:     entity.BillingStatusUpcoming,
	}
	if err := uc.billing.Upsert(period); err != nil {
		return nil, err
	}
	return toFacilityResponse(facility), nil
}

// Update confirma el borrador de edición. Rechaza nombre en blanco; el ID
// nunca se re-deriva aunque cambie el nombre. Campos ausentes del borrador
// conservan el valor comprometido. Las sesiones que tengan seleccionada
// esta instalación recargan su borrador con el mapa recién guardado.
func (uc *FacilityUseCase) Update(id string, in dto.FacilityRequest) (*dto.FacilityResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	facility, err := uc.facilities.GetByID(id)
	if err != nil {
		return nil, err
	}
	if facility == nil {
		return nil, nil
	}

	facility.Name = in.Name
	if in.Status != "" {
		facility.Status = entity.FacilityStatus(in.Status)
	}
	if in.EnrollmentDate != "" {
		facility.EnrollmentDate = in.EnrollmentDate
	}
	if in.Modules != nil {
		facility.Modules = normalizeModules(in.Modules, facility.Modules)
	}
	if err := uc.facilities.Update(facility); err != nil {
		return nil, err
	}
	// Reassign hacia el mismo ID refresca el borrador de las sesiones que
	// apuntan aquí (descarta toggles sin guardar, igual que el dashboard).
	if err := uc.sessions.Reassign(id, id, facility.Modules); err != nil {
		return nil, err
	}
	return toFacilityResponse(facility), nil
}

// Delete elimina la instalación y dispara las tres cascadas: el período de
// facturación desaparece, el ID se retira del set de cada administrador y
// las sesiones que la seleccionaban caen a la primera instalación restante
// (o quedan sin selección, con el borrador por defecto). Borrar un ID
// inexistente es un no-op inofensivo; las cascadas también lo son.
func (uc *FacilityUseCase) Delete(id string) error {
	if err := uc.facilities.Delete(id); err != nil {
		return err
	}
	if err := uc.billing.DeleteByFacility(id); err != nil {
		return err
	}
	if err := uc.admins.StripFacility(id); err != nil {
		return err
	}
	fallback, err := uc.facilities.First()
	if err != nil {
		return err
	}
	if fallback == nil {
		return uc.sessions.Reassign(id, "", entity.DefaultModules())
	}
	return uc.sessions.Reassign(id, fallback.ID, fallback.Modules)
}

// matchesFacility replica el filtro del dashboard: subcadena sobre la
// concatenación nombre + estado + fecha.
func matchesFacility(f *entity.Facility, q string) bool {
	haystack := strings.ToLower(strings.Join([]string{f.Name, string(f.Status), f.EnrollmentDate}, " "))
	return strings.Contains(haystack, q)
}

// normalizeModules parte de base y aplica solo las claves del catálogo
// presentes en el borrador; claves desconocidas se ignoran en silencio.
func normalizeModules(in map[string]bool, base map[entity.ModuleKey]bool) map[entity.ModuleKey]bool {
	out := entity.CloneModules(base)
	for k, v := range in {
		if entity.IsModuleKey(k) {
			out[entity.ModuleKey(k)] = v
		}
	}
	return out
}

func toFacilityResponse(f *entity.Facility) *dto.FacilityResponse {
	if f == nil {
		return nil
	}
	modules := make(map[string]bool, len(f.Modules))
	for k, v := range f.Modules {
		modules[string(k)] = v
	}
	active := make([]string, 0, len(f.Modules))
	for _, m := range entity.ModuleCatalog() {
		if f.Modules[m.Key] {
			active = append(active, m.Label)
		}
	}
	return &dto.FacilityResponse{
		ID:             f.ID,
		Name:           f.Name,
		Status:         string(f.Status),
		EnrollmentDate: f.EnrollmentDate,
		Modules:        modules,
		ActiveModules:  active,
	}
}
