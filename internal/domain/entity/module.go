package entity

// ModuleKey identifica un módulo operativo activable por instalación.
type ModuleKey string

// Catálogo fijo de módulos (no extensible por el usuario).
const (
	ModuleInventory ModuleKey = "inventory"
	ModuleBilling   ModuleKey = "billing"
	ModuleAnalytics ModuleKey = "analytics"
	ModuleAlerts    ModuleKey = "alerts"
)

// ModuleInfo metadatos de presentación de un módulo del catálogo.
type ModuleInfo struct {
	Key         ModuleKey
	Label       string
	Description string
}

// moduleCatalog mantiene el orden de presentación del dashboard.
var moduleCatalog = []ModuleInfo{
	{Key: ModuleInventory, Label: "Inventory Tracking", Description: "Monitor and reconcile inbound and outbound inventory."},
	{Key: ModuleBilling, Label: "Billing Automation", Description: "Generate invoices and manage accounts receivable."},
	{Key: ModuleAnalytics, Label: "Performance Analytics", Description: "Insights into throughput, dwell time, and utilization."},
	{Key: ModuleAlerts, Label: "Exception Alerts", Description: "Proactive notifications for SLA breaches and anomalies."},
}

// ModuleCatalog devuelve una copia del catálogo en orden de presentación.
func ModuleCatalog() []ModuleInfo {
	out := make([]ModuleInfo, len(moduleCatalog))
	copy(out, moduleCatalog)
	return out
}

// ModuleLabel devuelve la etiqueta de presentación de un módulo.
// Si la clave no pertenece al catálogo, devuelve la clave tal cual.
func ModuleLabel(key ModuleKey) string {
	for _, m := range moduleCatalog {
		if m.Key == key {
			return m.Label
		}
	}
	return string(key)
}

// IsModuleKey informa si la clave pertenece al catálogo fijo.
func IsModuleKey(key string) bool {
	for _, m := range moduleCatalog {
		if string(m.Key) == key {
			return true
		}
	}
	return false
}

// DefaultModules mapa inicial de módulos: inventory y billing activos.
func DefaultModules() map[ModuleKey]bool {
	return map[ModuleKey]bool{
		ModuleInventory: true,
		ModuleBilling:   true,
		ModuleAnalytics: false,
		ModuleAlerts:    false,
	}
}

// CloneModules copia un mapa de módulos; nil produce el mapa por defecto.
func CloneModules(m map[ModuleKey]bool) map[ModuleKey]bool {
	if m == nil {
		return DefaultModules()
	}
	cp := make(map[ModuleKey]bool, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}
