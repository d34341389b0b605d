package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stowlog/backoffice-api/internal/application/dto"
	"github.com/stowlog/backoffice-api/internal/application/usecase"
)

// FacilityHandler maneja las peticiones HTTP para el recurso Facility.
type FacilityHandler struct {
	uc *usecase.FacilityUseCase
}

// NewFacilityHandler construye el handler inyectando el caso de uso.
func NewFacilityHandler(uc *usecase.FacilityUseCase) *FacilityHandler {
	return &FacilityHandler{uc: uc}
}

// List godoc
// @Summary      Listar/buscar instalaciones
// @Tags         facilities
// @Produce      json
// @Param        q  query  string  false  "Subcadena sobre nombre, estado o fecha"
// @Success      200  {object}  dto.FacilityListResponse
// @Router       /api/facilities [get]
func (h *FacilityHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Query("q"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener instalación por ID
// @Tags         facilities
// @Produce      json
// @Param        id   path  string  true  "ID de la instalación"
// @Success      200  {object}  dto.FacilityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/facilities/{id} [get]
func (h *FacilityHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return notFound(c, "instalación no encontrada")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear instalación
// @Tags         facilities
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FacilityRequest  true  "Borrador de la instalación"
// @Success      201   {object}  dto.FacilityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/facilities [post]
func (h *FacilityHandler) Create(c *fiber.Ctx) error {
	var in dto.FacilityRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return mapDomainError(c, err, "name es requerido")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar instalación
// @Tags         facilities
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID de la instalación"
// @Param        body  body  dto.FacilityRequest  true  "Borrador de edición"
// @Success      200   {object}  dto.FacilityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/facilities/{id} [put]
func (h *FacilityHandler) Update(c *fiber.Ctx) error {
	var in dto.FacilityRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err, "name es requerido")
	}
	if out == nil {
		return notFound(c, "instalación no encontrada")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar instalación (con cascadas)
// @Tags         facilities
// @Param        id  path  string  true  "ID de la instalación"
// @Success      204
// @Router       /api/facilities/{id} [delete]
func (h *FacilityHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
