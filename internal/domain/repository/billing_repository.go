package repository

import "github.com/stowlog/backoffice-api/internal/domain/entity"

// BillingRepository define el puerto de persistencia para BillingPeriod.
// La colección está efectivamente indexada por FacilityID: Upsert es la
// única vía de escritura (reemplaza o agrega, nunca duplica).
type BillingRepository interface {
	GetByFacility(facilityID string) (*entity.BillingPeriod, error)
	Upsert(period *entity.BillingPeriod) error
	List() ([]*entity.BillingPeriod, error)
	// DeleteByFacility se invoca solo como cascada del borrado de una
	// instalación, nunca directamente por el usuario.
	DeleteByFacility(facilityID string) error
}
