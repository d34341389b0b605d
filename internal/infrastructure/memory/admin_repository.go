package memory

import (
	"sync"

	"github.com/stowlog/backoffice-api/internal/domain/entity"
	"github.com/stowlog/backoffice-api/internal/domain/repository"
)

// Asegura que AdminRepo implementa repository.AdminRepository.
var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo implementación en memoria del puerto AdminRepository.
type AdminRepo struct {
	mu    sync.RWMutex
	items []*entity.AdminUser
}

// NewAdminRepository construye el adaptador en memoria de administradores.
func NewAdminRepository() *AdminRepo {
	return &AdminRepo{}
}

// Create agrega un administrador al final de la colección.
func (r *AdminRepo) Create(admin *entity.AdminUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, admin.Clone())
	return nil
}

// GetByID obtiene un administrador por ID; (nil, nil) si no existe.
func (r *AdminRepo) GetByID(id string) (*entity.AdminUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.items {
		if a.ID == id {
			return a.Clone(), nil
		}
	}
	return nil, nil
}

// Update reemplaza en su posición el registro con el mismo ID.
// Si el ID no existe no se modifica nada (sin error).
func (r *AdminRepo) Update(admin *entity.AdminUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.items {
		if a.ID == admin.ID {
			r.items[i] = admin.Clone()
			return nil
		}
	}
	return nil
}

// List devuelve todos los administradores en orden de inserción.
func (r *AdminRepo) List() ([]*entity.AdminUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.AdminUser, 0, len(r.items))
	for _, a := range r.items {
		out = append(out, a.Clone())
	}
	return out, nil
}

// Delete elimina por ID; no toca ninguna otra colección.
func (r *AdminRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	for _, a := range r.items {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	r.items = kept
	return nil
}

// StripFacility retira facilityID del set de instalaciones de todos los
// administradores. Tras la cascada ningún admin conserva la referencia.
func (r *AdminRepo) StripFacility(facilityID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.items {
		kept := a.Facilities[:0]
		for _, id := range a.Facilities {
			if id != facilityID {
				kept = append(kept, id)
			}
		}
		a.Facilities = kept
	}
	return nil
}
