package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stowlog/backoffice-api/internal/application/dto"
	"github.com/stowlog/backoffice-api/internal/application/usecase"
)

// BillingHandler maneja las peticiones HTTP para períodos de facturación.
// No expone DELETE: el período de una instalación solo desaparece como
// cascada del borrado de la instalación.
type BillingHandler struct {
	uc *usecase.BillingUseCase
}

// NewBillingHandler construye el handler inyectando el caso de uso.
func NewBillingHandler(uc *usecase.BillingUseCase) *BillingHandler {
	return &BillingHandler{uc: uc}
}

// List godoc
// @Summary      Listar períodos de facturación
// @Tags         billing
// @Produce      json
// @Success      200  {object}  dto.BillingListResponse
// @Router       /api/billing-periods [get]
func (h *BillingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener el período de una instalación
// @Tags         billing
// @Produce      json
// @Param        facilityId  path  string  true  "ID de la instalación"
// @Success      200  {object}  dto.BillingPeriodResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/billing-periods/{facilityId} [get]
func (h *BillingHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("facilityId"))
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return notFound(c, "la instalación no tiene período de facturación")
	}
	return c.JSON(out)
}

// Draft godoc
// @Summary      Borrador para abrir el editor de facturación
// @Description  Devuelve el período existente o uno fresco (hoy, mensual,
// @Description  activo) ligado a la instalación. No escribe nada.
// @Tags         billing
// @Produce      json
// @Param        facilityId  path  string  true  "ID de la instalación"
// @Success      200  {object}  dto.BillingPeriodResponse
// @Router       /api/billing-periods/{facilityId}/draft [get]
func (h *BillingHandler) Draft(c *fiber.Ctx) error {
	out, err := h.uc.Draft(c.Params("facilityId"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Upsert godoc
// @Summary      Crear o reemplazar el período de una instalación
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertBillingRequest  true  "Borrador del período"
// @Success      200   {object}  dto.BillingPeriodResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/billing-periods [put]
func (h *BillingHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertBillingRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Upsert(in)
	if err != nil {
		return mapDomainError(c, err, "facility_id es requerido")
	}
	return c.JSON(out)
}
