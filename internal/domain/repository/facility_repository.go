package repository

import "github.com/stowlog/backoffice-api/internal/domain/entity"

// FacilityRepository define el puerto de persistencia para Facility (DIP).
// La implementación vive en infrastructure. List y First respetan el orden
// de inserción; los métodos devuelven (nil, nil) cuando no hay coincidencia.
type FacilityRepository interface {
	Create(facility *entity.Facility) error
	GetByID(id string) (*entity.Facility, error)
	Update(facility *entity.Facility) error
	List() ([]*entity.Facility, error)
	// First devuelve la primera instalación en orden de inserción (nil si no hay).
	First() (*entity.Facility, error)
	// Delete elimina por ID; borrar un ID inexistente no es un error.
	Delete(id string) error
}
