package repository

import "github.com/stowlog/backoffice-api/internal/domain/entity"

// SessionRepository define el puerto de persistencia para ConfigSession.
type SessionRepository interface {
	Create(session *entity.ConfigSession) error
	GetByID(id string) (*entity.ConfigSession, error)
	Update(session *entity.ConfigSession) error
	Delete(id string) error
	// Reassign mueve toda sesión que seleccione facilityID hacia fallbackID
	// con el borrador dado (cascada del borrado de una instalación).
	// fallbackID vacío deja la sesión sin selección.
	Reassign(facilityID, fallbackID string, fallbackDraft map[entity.ModuleKey]bool) error
}
