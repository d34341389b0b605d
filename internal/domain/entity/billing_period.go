package entity

// BillingCycle cadencia de facturación de una instalación.
type BillingCycle string

const (
	BillingCycleMonthly   BillingCycle = "Monthly"
	BillingCycleQuarterly BillingCycle = "Quarterly"
	BillingCycleAnnually  BillingCycle = "Annually"
)

// BillingStatus estado del período de facturación.
type BillingStatus string

const (
	BillingStatusActive   BillingStatus = "Active"
	BillingStatusUpcoming BillingStatus = "Upcoming"
	BillingStatusExpired  BillingStatus = "Expired"
)

// BillingPeriod configuración de facturación de UNA instalación.
// Invariante: a lo sumo un período por FacilityID (semántica de upsert).
// FacilityID es una referencia débil: borrar la instalación elimina el
// período en cascada, nunca al revés.
type BillingPeriod struct {
	FacilityID string
	StartDate  string
	Cycle      BillingCycle
	Status     BillingStatus
}

// Clone devuelve una copia del período.
func (p *BillingPeriod) Clone() *BillingPeriod {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}
