package entity

// ConfigSession sesión de configuración de módulos.
//
// En el dashboard original la "instalación seleccionada" y su borrador de
// módulos eran estado global de UI. Aquí son un registro explícito con ciclo
// de vida propio: se inicializa apuntando a la primera instalación sembrada
// y, si esa instalación se borra, la selección cae a la primera restante
// (o queda vacía con el borrador por defecto).
//
// Draft es una copia editable del mapa de módulos comprometido; solo Save
// lo aplica al registro de la instalación. Cambiar de instalación sin
// guardar descarta los toggles en silencio.
type ConfigSession struct {
	ID                 string
	SelectedFacilityID string
	Draft              map[ModuleKey]bool
}

// Clone devuelve una copia profunda de la sesión.
func (s *ConfigSession) Clone() *ConfigSession {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Draft = CloneModules(s.Draft)
	return &cp
}
