package entity

// FacilityStatus estado de enrolamiento de una instalación.
type FacilityStatus string

const (
	FacilityStatusActive   FacilityStatus = "Active"
	FacilityStatusPending  FacilityStatus = "Pending"
	FacilityStatusInactive FacilityStatus = "Inactive"
)

// Facility representa una instalación física enrolada en la plataforma.
// El ID se deriva del nombre (slug) al crearla y no cambia en ediciones.
// EnrollmentDate se maneja como fecha plana "YYYY-MM-DD" igual que en el
// dashboard: no hay zona horaria ni hora asociada.
type Facility struct {
	ID             string
	Name           string
	Status         FacilityStatus
	EnrollmentDate string
	Modules        map[ModuleKey]bool
}

// Clone devuelve una copia profunda (el mapa de módulos es mutable).
func (f *Facility) Clone() *Facility {
	if f == nil {
		return nil
	}
	cp := *f
	cp.Modules = CloneModules(f.Modules)
	return &cp
}
