package dto

// ModuleInfoResponse entrada del catálogo fijo de módulos.
type ModuleInfoResponse struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// ModuleCatalogResponse catálogo completo en orden de presentación.
type ModuleCatalogResponse struct {
	Items []ModuleInfoResponse `json:"items"`
}

// ConfigSessionResponse estado de una sesión de configuración: instalación
// seleccionada (vacía si no hay ninguna) y borrador de módulos sin guardar.
type ConfigSessionResponse struct {
	ID                 string          `json:"id"`
	SelectedFacilityID string          `json:"selected_facility_id"`
	Draft              map[string]bool `json:"draft"`
}

// SelectFacilityRequest cambia la instalación seleccionada de la sesión.
type SelectFacilityRequest struct {
	FacilityID string `json:"facility_id"`
}

// ToggleModuleRequest enciende o apaga un módulo en el borrador.
type ToggleModuleRequest struct {
	Enabled bool `json:"enabled"`
}
