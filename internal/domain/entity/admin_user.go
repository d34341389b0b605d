package entity

// AdminRole nivel de acceso de un operador interno.
type AdminRole string

const (
	AdminRoleOwner   AdminRole = "Owner"
	AdminRoleManager AdminRole = "Manager"
	AdminRoleViewer  AdminRole = "Viewer"
)

// AdminUser operador interno con acceso asignado por instalación.
// El ID se deriva de la parte local del email al crearlo y se conserva
// en ediciones. Facilities guarda referencias débiles a Facility.ID:
// una referencia colgante se muestra tal cual, nunca se rechaza.
type AdminUser struct {
	ID         string
	Name       string
	Email      string
	Facilities []string
	Role       AdminRole
	Notes      string
}

// Clone devuelve una copia profunda (el slice de instalaciones es mutable).
func (a *AdminUser) Clone() *AdminUser {
	if a == nil {
		return nil
	}
	cp := *a
	cp.Facilities = append([]string(nil), a.Facilities...)
	return &cp
}
