package dto

// FacilityRequest borrador de creación/edición de una instalación.
// Es el equivalente del formulario del dashboard: un buffer transitorio
// que solo toca la colección al confirmarse. Los campos vacíos toman los
// valores por defecto del formulario (status Pending, fecha de hoy,
// módulos por defecto).
type FacilityRequest struct {
	Name           string          `json:"name"`
	Status         string          `json:"status"`
	EnrollmentDate string          `json:"enrollment_date"`
	Modules        map[string]bool `json:"modules"`
}

// FacilityResponse salida de una instalación.
// ActiveModules trae las etiquetas de presentación de los módulos activos,
// en orden de catálogo (vista derivada que renderizaba la tabla del dashboard).
type FacilityResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Status         string          `json:"status"`
	EnrollmentDate string          `json:"enrollment_date"`
	Modules        map[string]bool `json:"modules"`
	ActiveModules  []string        `json:"active_modules"`
}

// FacilityListResponse listado de instalaciones en orden de inserción.
type FacilityListResponse struct {
	Items []FacilityResponse `json:"items"`
	Total int                `json:"total"`
}
