package repository

import "github.com/stowlog/backoffice-api/internal/domain/entity"

// AdminRepository define el puerto de persistencia para AdminUser.
type AdminRepository interface {
	Create(admin *entity.AdminUser) error
	GetByID(id string) (*entity.AdminUser, error)
	Update(admin *entity.AdminUser) error
	List() ([]*entity.AdminUser, error)
	// Delete elimina por ID; no dispara cascadas hacia otras colecciones.
	Delete(id string) error
	// StripFacility retira facilityID del set de instalaciones de TODOS los
	// administradores (cascada del borrado de una instalación).
	StripFacility(facilityID string) error
}
