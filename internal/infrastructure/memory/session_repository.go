package memory

import (
	"sync"

	"github.com/stowlog/backoffice-api/internal/domain/entity"
	"github.com/stowlog/backoffice-api/internal/domain/repository"
)

// Asegura que SessionRepo implementa repository.SessionRepository.
var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo implementación en memoria del puerto SessionRepository.
// Las sesiones no se listan ni ordenan, así que aquí sí alcanza un mapa.
type SessionRepo struct {
	mu    sync.RWMutex
	items map[string]*entity.ConfigSession
}

// NewSessionRepository construye el adaptador en memoria de sesiones.
func NewSessionRepository() *SessionRepo {
	return &SessionRepo{items: make(map[string]*entity.ConfigSession)}
}

// Create registra una sesión nueva.
func (r *SessionRepo) Create(session *entity.ConfigSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[session.ID] = session.Clone()
	return nil
}

// GetByID obtiene una sesión por ID; (nil, nil) si no existe.
func (r *SessionRepo) GetByID(id string) (*entity.ConfigSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return s.Clone(), nil
}

// Update reemplaza la sesión con el mismo ID (no-op si no existe).
func (r *SessionRepo) Update(session *entity.ConfigSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[session.ID]; ok {
		r.items[session.ID] = session.Clone()
	}
	return nil
}

// Delete elimina una sesión (no-op si no existe).
func (r *SessionRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

// Reassign mueve toda sesión que apunte a facilityID hacia fallbackID con
// el borrador dado. Los toggles sin guardar de esas sesiones se descartan,
// igual que al cambiar de instalación a mano.
func (r *SessionRepo) Reassign(facilityID, fallbackID string, fallbackDraft map[entity.ModuleKey]bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.items {
		if s.SelectedFacilityID == facilityID {
			s.SelectedFacilityID = fallbackID
			s.Draft = entity.CloneModules(fallbackDraft)
		}
	}
	return nil
}
