package usecase

import (
	"strings"

	"github.com/stowlog/backoffice-api/internal/application/dto"
	"github.com/stowlog/backoffice-api/internal/domain"
	"github.com/stowlog/backoffice-api/internal/domain/entity"
	"github.com/stowlog/backoffice-api/internal/domain/repository"
	"github.com/stowlog/backoffice-api/internal/domain/slug"
)

// AdminUseCase casos de uso CRUD para administradores.
// Borrar un administrador no dispara ninguna cascada: las instalaciones y
// la facturación quedan intactas.
type AdminUseCase struct {
	admins     repository.AdminRepository
	facilities repository.FacilityRepository
}

// NewAdminUseCase construye el caso de uso de administradores.
func NewAdminUseCase(admins repository.AdminRepository, facilities repository.FacilityRepository) *AdminUseCase {
	return &AdminUseCase{admins: admins, facilities: facilities}
}

// Search lista administradores en orden de inserción; la query filtra por
// subcadena case-insensitive sobre nombre, email y rol (vacía = todos).
func (uc *AdminUseCase) Search(query string) (*dto.AdminListResponse, error) {
	list, err := uc.admins.List()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	items := make([]dto.AdminResponse, 0, len(list))
	for _, a := range list {
		if q != "" && !matchesAdmin(a, q) {
			continue
		}
		resp, err := uc.toResponse(a)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.AdminListResponse{Items: items, Total: len(items)}, nil
}

// GetByID obtiene un administrador por ID.
func (uc *AdminUseCase) GetByID(id string) (*dto.AdminResponse, error) {
	a, err := uc.admins.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	return uc.toResponse(a)
}

// Create confirma el borrador de un administrador nuevo. Rechaza nombre o
// email en blanco con domain.ErrInvalidInput; deriva el ID de la parte
// local del email (sin control de colisiones). Rol por defecto Viewer y
// set de instalaciones vacío. No se valida que las instalaciones
// referenciadas existan.
func (uc *AdminUseCase) Create(in dto.AdminRequest) (*dto.AdminResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, domain.ErrInvalidInput
	}
	role := entity.AdminRole(in.Role)
	if in.Role == "" {
		role = entity.AdminRoleViewer
	}
	facilities := in.Facilities
	if facilities == nil {
		facilities = []string{}
	}
	admin := &entity.AdminUser{
		ID:         slug.FromEmail(in.Email),
		Name:       in.Name,
		Email:      in.Email,
		Facilities: facilities,
		Role:       role,
		Notes:      in.Notes,
	}
	if err := uc.admins.Create(admin); err != nil {
		return nil, err
	}
	return uc.toResponse(admin)
}

// Update confirma el borrador de edición bajo la misma validación que
// Create. Reemplaza el registro completo salvo el ID, que se conserva y
// nunca se re-deriva aunque el email cambie.
func (uc *AdminUseCase) Update(id string, in dto.AdminRequest) (*dto.AdminResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, domain.ErrInvalidInput
	}
	admin, err := uc.admins.GetByID(id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, nil
	}
	admin.Name = in.Name
	admin.Email = in.Email
	admin.Notes = in.Notes
	admin.Role = entity.AdminRole(in.Role)
	if in.Role == "" {
		admin.Role = entity.AdminRoleViewer
	}
	admin.Facilities = in.Facilities
	if admin.Facilities == nil {
		admin.Facilities = []string{}
	}
	if err := uc.admins.Update(admin); err != nil {
		return nil, err
	}
	return uc.toResponse(admin)
}

// Delete elimina un administrador; un ID inexistente es un no-op.
func (uc *AdminUseCase) Delete(id string) error {
	return uc.admins.Delete(id)
}

// matchesAdmin replica el filtro del dashboard: subcadena sobre la
// concatenación nombre + email + rol.
func matchesAdmin(a *entity.AdminUser, q string) bool {
	haystack := strings.ToLower(strings.Join([]string{a.Name, a.Email, string(a.Role)}, " "))
	return strings.Contains(haystack, q)
}

// toResponse resuelve cada instalación asignada a su nombre; las
// referencias colgantes se renderizan con el ID crudo, nunca se rechazan.
func (uc *AdminUseCase) toResponse(a *entity.AdminUser) (*dto.AdminResponse, error) {
	names := make([]string, 0, len(a.Facilities))
	for _, facilityID := range a.Facilities {
		facility, err := uc.facilities.GetByID(facilityID)
		if err != nil {
			return nil, err
		}
		if facility != nil {
			names = append(names, facility.Name)
		} else {
			names = append(names, facilityID)
		}
	}
	return &dto.AdminResponse{
		ID:            a.ID,
		Name:          a.Name,
		Email:         a.Email,
		Facilities:    a.Facilities,
		FacilityNames: names,
		Role:          string(a.Role),
		Notes:         a.Notes,
	}, nil
}
