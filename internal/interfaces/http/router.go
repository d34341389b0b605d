package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stowlog/backoffice-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	FacilityUC *usecase.FacilityUseCase
	BillingUC  *usecase.BillingUseCase
	AdminUC    *usecase.AdminUseCase
	ConfigUC   *usecase.ModuleConfigUseCase
}

// Router registra las rutas de la API. Todo el backoffice es interno y sin
// autenticación: el estado vive en memoria y se reinicia con el proceso.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Facilities
	facilities := api.Group("/facilities")
	facilityHandler := NewFacilityHandler(deps.FacilityUC)
	facilities.Get("/", facilityHandler.List)
	facilities.Post("/", facilityHandler.Create)
	facilities.Get("/:id", facilityHandler.GetByID)
	facilities.Put("/:id", facilityHandler.Update)
	facilities.Delete("/:id", facilityHandler.Delete)

	// Billing periods (sin DELETE: solo cae por cascada)
	billing := api.Group("/billing-periods")
	billingHandler := NewBillingHandler(deps.BillingUC)
	billing.Get("/", billingHandler.List)
	billing.Put("/", billingHandler.Upsert)
	billing.Get("/:facilityId", billingHandler.Get)
	billing.Get("/:facilityId/draft", billingHandler.Draft)

	// Admin users
	admins := api.Group("/admins")
	adminHandler := NewAdminHandler(deps.AdminUC)
	admins.Get("/", adminHandler.List)
	admins.Post("/", adminHandler.Create)
	admins.Get("/:id", adminHandler.GetByID)
	admins.Put("/:id", adminHandler.Update)
	admins.Delete("/:id", adminHandler.Delete)

	// Módulos y sesiones de configuración
	configHandler := NewConfigHandler(deps.ConfigUC)
	api.Get("/modules", configHandler.Catalog)
	sessions := api.Group("/config-sessions")
	sessions.Post("/", configHandler.Open)
	sessions.Get("/:id", configHandler.Get)
	sessions.Delete("/:id", configHandler.Close)
	sessions.Put("/:id/facility", configHandler.SelectFacility)
	sessions.Put("/:id/modules/:key", configHandler.Toggle)
	sessions.Post("/:id/save", configHandler.Save)
}
