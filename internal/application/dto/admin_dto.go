package dto

// AdminRequest borrador de creación/edición de un administrador.
// En creación el ID se deriva de la parte local del email; en edición el
// ID original se conserva y nunca se re-deriva aunque cambie el email.
type AdminRequest struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Facilities []string `json:"facilities"`
	Role       string   `json:"role"`
	Notes      string   `json:"notes"`
}

// AdminResponse salida de un administrador.
// FacilityNames resuelve cada referencia a su nombre; una referencia
// colgante se renderiza con el ID crudo (nunca se rechaza).
type AdminResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Facilities    []string `json:"facilities"`
	FacilityNames []string `json:"facility_names"`
	Role          string   `json:"role"`
	Notes         string   `json:"notes,omitempty"`
}

// AdminListResponse listado de administradores en orden de inserción.
type AdminListResponse struct {
	Items []AdminResponse `json:"items"`
	Total int             `json:"total"`
}
