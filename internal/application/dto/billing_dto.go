package dto

// UpsertBillingRequest borrador del editor de facturación. Submit siempre
// hace upsert: reemplaza el período existente de la instalación o lo crea.
type UpsertBillingRequest struct {
	FacilityID string `json:"facility_id"`
	StartDate  string `json:"start_date"`
	Cycle      string `json:"cycle"`
	Status     string `json:"status"`
}

// BillingPeriodResponse salida de un período de facturación.
// FacilityName se resuelve contra la colección de instalaciones; si la
// referencia quedó colgante se muestra el ID crudo.
type BillingPeriodResponse struct {
	FacilityID   string `json:"facility_id"`
	FacilityName string `json:"facility_name"`
	StartDate    string `json:"start_date"`
	Cycle        string `json:"cycle"`
	Status       string `json:"status"`
}

// BillingListResponse listado de períodos en orden de inserción.
type BillingListResponse struct {
	Items []BillingPeriodResponse `json:"items"`
	Total int                     `json:"total"`
}
