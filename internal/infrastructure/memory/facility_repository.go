package memory

import (
	"sync"

	"github.com/stowlog/backoffice-api/internal/domain/entity"
	"github.com/stowlog/backoffice-api/internal/domain/repository"
)

// Asegura que FacilityRepo implementa repository.FacilityRepository.
var _ repository.FacilityRepository = (*FacilityRepo)(nil)

// FacilityRepo implementación en memoria del puerto FacilityRepository.
// El slice conserva el orden de inserción, que es el orden contractual de
// List. Todo dato cruza la frontera clonado: ni el llamador ni el repo
// comparten punteros a estado interno.
type FacilityRepo struct {
	mu    sync.RWMutex
	items []*entity.Facility
}

// NewFacilityRepository construye el adaptador en memoria para instalaciones.
func NewFacilityRepository() *FacilityRepo {
	return &FacilityRepo{}
}

// Create agrega una instalación al final de la colección.
func (r *FacilityRepo) Create(facility *entity.Facility) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, facility.Clone())
	return nil
}

// GetByID obtiene una instalación por ID; (nil, nil) si no existe.
func (r *FacilityRepo) GetByID(id string) (*entity.Facility, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, f := range r.items {
		if f.ID == id {
			return f.Clone(), nil
		}
	}
	return nil, nil
}

// Update reemplaza en su posición el registro con el mismo ID.
// Si el ID no existe no se modifica nada (sin error).
func (r *FacilityRepo) Update(facility *entity.Facility) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, f := range r.items {
		if f.ID == facility.ID {
			r.items[i] = facility.Clone()
			return nil
		}
	}
	return nil
}

// List devuelve todas las instalaciones en orden de inserción.
func (r *FacilityRepo) List() ([]*entity.Facility, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Facility, 0, len(r.items))
	for _, f := range r.items {
		out = append(out, f.Clone())
	}
	return out, nil
}

// First devuelve la primera instalación en orden de inserción (nil si no hay).
func (r *FacilityRepo) First() (*entity.Facility, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.items) == 0 {
		return nil, nil
	}
	return r.items[0].Clone(), nil
}

// Delete elimina por ID conservando el orden del resto.
// Borrar un ID inexistente es un no-op inofensivo.
func (r *FacilityRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	for _, f := range r.items {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	r.items = kept
	return nil
}
