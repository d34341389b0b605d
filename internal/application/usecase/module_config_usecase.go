package usecase

import (
	"github.com/google/uuid"
	"github.com/stowlog/backoffice-api/internal/application/dto"
	"github.com/stowlog/backoffice-api/internal/domain"
	"github.com/stowlog/backoffice-api/internal/domain/entity"
	"github.com/stowlog/backoffice-api/internal/domain/repository"
)

// ModuleConfigUseCase maneja las sesiones de configuración de módulos.
//
// El borrador vive aislado del estado comprometido: Toggle solo muta la
// sesión y únicamente Save lo escribe en el registro de la instalación.
// Cambiar de instalación o cerrar la sesión sin guardar descarta los
// toggles en silencio, sin confirmación ni undo.
type ModuleConfigUseCase struct {
	sessions   repository.SessionRepository
	facilities repository.FacilityRepository
}

// NewModuleConfigUseCase construye el caso de uso de configuración.
func NewModuleConfigUseCase(sessions repository.SessionRepository, facilities repository.FacilityRepository) *ModuleConfigUseCase {
	return &ModuleConfigUseCase{sessions: sessions, facilities: facilities}
}

// Catalog devuelve el catálogo fijo de módulos con etiqueta y descripción.
func (uc *ModuleConfigUseCase) Catalog() *dto.ModuleCatalogResponse {
	catalog := entity.ModuleCatalog()
	items := make([]dto.ModuleInfoResponse, 0, len(catalog))
	for _, m := range catalog {
		items = append(items, dto.ModuleInfoResponse{
			Key:         string(m.Key),
			Label:       m.Label,
			Description: m.Description,
		})
	}
	return &dto.ModuleCatalogResponse{Items: items}
}

// Open crea una sesión nueva seleccionando la primera instalación en orden
// de inserción (o ninguna si la colección está vacía) y carga su mapa de
// módulos comprometido como borrador.
func (uc *ModuleConfigUseCase) Open() (*dto.ConfigSessionResponse, error) {
	first, err := uc.facilities.First()
	if err != nil {
		return nil, err
	}
	session := &entity.ConfigSession{
		ID:    uuid.New().String(),
		Draft: entity.DefaultModules(),
	}
	if first != nil {
		session.SelectedFacilityID = first.ID
		session.Draft = entity.CloneModules(first.Modules)
	}
	if err := uc.sessions.Create(session); err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

// Get devuelve el estado actual de la sesión.
func (uc *ModuleConfigUseCase) Get(sessionID string) (*dto.ConfigSessionResponse, error) {
	session, err := uc.sessions.GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	return toSessionResponse(session), nil
}

// SelectFacility cambia la instalación seleccionada y carga su mapa
// comprometido como borrador; si ninguna instalación coincide, el borrador
// queda en el mapa por defecto. Los toggles sin guardar se descartan.
func (uc *ModuleConfigUseCase) SelectFacility(sessionID, facilityID string) (*dto.ConfigSessionResponse, error) {
	session, err := uc.sessions.GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	facility, err := uc.facilities.GetByID(facilityID)
	if err != nil {
		return nil, err
	}
	session.SelectedFacilityID = facilityID
	if facility != nil {
		session.Draft = entity.CloneModules(facility.Modules)
	} else {
		session.Draft = entity.DefaultModules()
	}
	if err := uc.sessions.Update(session); err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

// Toggle enciende o apaga un módulo SOLO en el borrador de la sesión; el
// registro comprometido de la instalación no se toca. Una clave fuera del
// catálogo devuelve domain.ErrInvalidInput.
func (uc *ModuleConfigUseCase) Toggle(sessionID, key string, enabled bool) (*dto.ConfigSessionResponse, error) {
	if !entity.IsModuleKey(key) {
		return nil, domain.ErrInvalidInput
	}
	session, err := uc.sessions.GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	session.Draft[entity.ModuleKey(key)] = enabled
	if err := uc.sessions.Update(session); err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

// Save escribe el borrador en el registro de la instalación seleccionada.
// Sin selección (o con la instalación ya inexistente) es un no-op.
func (uc *ModuleConfigUseCase) Save(sessionID string) (*dto.ConfigSessionResponse, error) {
	session, err := uc.sessions.GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	if session.SelectedFacilityID == "" {
		return toSessionResponse(session), nil
	}
	facility, err := uc.facilities.GetByID(session.SelectedFacilityID)
	if err != nil {
		return nil, err
	}
	if facility == nil {
		return toSessionResponse(session), nil
	}
	facility.Modules = entity.CloneModules(session.Draft)
	if err := uc.facilities.Update(facility); err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

// Close descarta la sesión y cualquier toggle sin guardar.
func (uc *ModuleConfigUseCase) Close(sessionID string) error {
	return uc.sessions.Delete(sessionID)
}

func toSessionResponse(s *entity.ConfigSession) *dto.ConfigSessionResponse {
	if s == nil {
		return nil
	}
	draft := make(map[string]bool, len(s.Draft))
	for k, v := range s.Draft {
		draft[string(k)] = v
	}
	return &dto.ConfigSessionResponse{
		ID:                 s.ID,
		SelectedFacilityID: s.SelectedFacilityID,
		Draft:              draft,
	}
}
