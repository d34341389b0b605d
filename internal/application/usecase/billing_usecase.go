package usecase

import (
	"strings"
	"time"

	"github.com/stowlog/backoffice-api/internal/application/dto"
	"github.com/stowlog/backoffice-api/internal/domain"
	"github.com/stowlog/backoffice-api/internal/domain/entity"
	"github.com/stowlog/backoffice-api/internal/domain/repository"
)

// BillingUseCase casos de uso de períodos de facturación.
// La única vía de escritura es Upsert, usada tanto por el editor como por
// la cascada de creación de instalaciones. No hay borrado directo: el
// período solo desaparece cuando se borra su instalación.
type BillingUseCase struct {
	billing    repository.BillingRepository
	facilities repository.FacilityRepository
}

// NewBillingUseCase construye el caso de uso de facturación.
func NewBillingUseCase(billing repository.BillingRepository, facilities repository.FacilityRepository) *BillingUseCase {
	return &BillingUseCase{billing: billing, facilities: facilities}
}

// List devuelve todos los períodos en orden de inserción, con el nombre de
// la instalación resuelto para presentación.
func (uc *BillingUseCase) List() (*dto.BillingListResponse, error) {
	list, err := uc.billing.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.BillingPeriodResponse, 0, len(list))
	for _, p := range list {
		resp, err := uc.toResponse(p)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.BillingListResponse{Items: items, Total: len(items)}, nil
}

// Get obtiene el período de una instalación (nil si no tiene).
func (uc *BillingUseCase) Get(facilityID string) (*dto.BillingPeriodResponse, error) {
	p, err := uc.billing.GetByFacility(facilityID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return uc.toResponse(p)
}

// Draft devuelve el borrador con el que se abre el editor: el período
// existente si lo hay, o uno fresco (hoy, mensual, activo) ya ligado a la
// instalación. Abrir el editor no escribe nada.
func (uc *BillingUseCase) Draft(facilityID string) (*dto.BillingPeriodResponse, error) {
	p, err := uc.billing.GetByFacility(facilityID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = &entity.BillingPeriod{
			FacilityID: facilityID,
			StartDate:  time.Now().Format("2006-01-02"),
			Cycle:      entity.BillingCycleMonthly,
			Status:     entity.BillingStatusActive,
		}
	}
	return uc.toResponse(p)
}

// Upsert confirma el borrador del editor: reemplaza el período existente
// de la instalación o lo agrega. Re-enviar un período idéntico es
// idempotente. Solo exige la instalación; el resto de campos vacíos toman
// los valores por defecto del borrador fresco.
func (uc *BillingUseCase) Upsert(in dto.UpsertBillingRequest) (*dto.BillingPeriodResponse, error) {
	if strings.TrimSpace(in.FacilityID) == "" {
		return nil, domain.ErrInvalidInput
	}
	period := &entity.BillingPeriod{
		FacilityID: in.FacilityID,
		StartDate:  in.StartDate,
		Cycle:      entity.BillingCycle(in.Cycle),
		Status:     entity.BillingStatus(in.Status),
	}
	if period.StartDate == "" {
		period.StartDate = time.Now().Format("2006-01-02")
	}
	if in.Cycle == "" {
		period.Cycle = entity.BillingCycleMonthly
	}
	if in.Status == "" {
		period.Status = entity.BillingStatusActive
	}
	if err := uc.billing.Upsert(period); err != nil {
		return nil, err
	}
	return uc.toResponse(period)
}

// toResponse resuelve el nombre de la instalación; una referencia colgante
// se renderiza con el ID crudo.
func (uc *BillingUseCase) toResponse(p *entity.BillingPeriod) (*dto.BillingPeriodResponse, error) {
	name := p.FacilityID
	facility, err := uc.facilities.GetByID(p.FacilityID)
	if err != nil {
		return nil, err
	}
	if facility != nil {
		name = facility.Name
	}
	return &dto.BillingPeriodResponse{
		FacilityID:   p.FacilityID,
		FacilityName: name,
		StartDate:    p.StartDate,
		Cycle:        string(p.Cycle),
		Status:       string(p.Status),
	}, nil
}
