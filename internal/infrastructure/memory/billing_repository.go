package memory

import (
	"sync"

	"github.com/stowlog/backoffice-api/internal/domain/entity"
	"github.com/stowlog/backoffice-api/internal/domain/repository"
)

// Asegura que BillingRepo implementa repository.BillingRepository.
var _ repository.BillingRepository = (*BillingRepo)(nil)

// BillingRepo implementación en memoria del puerto BillingRepository.
// Se representa como slice (orden de inserción para el listado) pero el
// invariante es de mapa: a lo sumo un período por FacilityID, garantizado
// porque Upsert es la única vía de escritura.
type BillingRepo struct {
	mu    sync.RWMutex
	items []*entity.BillingPeriod
}

// NewBillingRepository construye el adaptador en memoria de facturación.
func NewBillingRepository() *BillingRepo {
	return &BillingRepo{}
}

// GetByFacility obtiene el período de una instalación; (nil, nil) si no hay.
func (r *BillingRepo) GetByFacility(facilityID string) (*entity.BillingPeriod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if p.FacilityID == facilityID {
			return p.Clone(), nil
		}
	}
	return nil, nil
}

// Upsert reemplaza el período con el mismo FacilityID o lo agrega al final.
// Re-enviar un período idéntico deja exactamente un registro (idempotente).
func (r *BillingRepo) Upsert(period *entity.BillingPeriod) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.items {
		if p.FacilityID == period.FacilityID {
			r.items[i] = period.Clone()
			return nil
		}
	}
	r.items = append(r.items, period.Clone())
	return nil
}

// List devuelve todos los períodos en orden de inserción.
func (r *BillingRepo) List() ([]*entity.BillingPeriod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.BillingPeriod, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p.Clone())
	}
	return out, nil
}

// DeleteByFacility elimina el período de la instalación (no-op si no hay).
func (r *BillingRepo) DeleteByFacility(facilityID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	for _, p := range r.items {
		if p.FacilityID != facilityID {
			kept = append(kept, p)
		}
	}
	r.items = kept
	return nil
}
