package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stowlog/backoffice-api/internal/application/dto"
	"github.com/stowlog/backoffice-api/internal/application/usecase"
)

// AdminHandler maneja las peticiones HTTP para administradores.
type AdminHandler struct {
	uc *usecase.AdminUseCase
}

// NewAdminHandler construye el handler inyectando el caso de uso.
func NewAdminHandler(uc *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// List godoc
// @Summary      Listar/buscar administradores
// @Tags         admins
// @Produce      json
// @Param        q  query  string  false  "Subcadena sobre nombre, email o rol"
// @Success      200  {object}  dto.AdminListResponse
// @Router       /api/admins [get]
func (h *AdminHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Query("q"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener administrador por ID
// @Tags         admins
// @Produce      json
// @Param        id   path  string  true  "ID del administrador"
// @Success      200  {object}  dto.AdminResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admins/{id} [get]
func (h *AdminHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return notFound(c, "administrador no encontrado")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear administrador
// @Tags         admins
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdminRequest  true  "Borrador del administrador"
// @Success      201   {object}  dto.AdminResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admins [post]
func (h *AdminHandler) Create(c *fiber.Ctx) error {
	var in dto.AdminRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return mapDomainError(c, err, "name y email son requeridos")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar administrador
// @Tags         admins
// @Accept       json
// @Produce      json
// @Param        id    path  string            true  "ID del administrador"
// @Param        body  body  dto.AdminRequest  true  "Borrador de edición"
// @Success      200   {object}  dto.AdminResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admins/{id} [put]
func (h *AdminHandler) Update(c *fiber.Ctx) error {
	var in dto.AdminRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err, "name y email son requeridos")
	}
	if out == nil {
		return notFound(c, "administrador no encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar administrador (sin cascadas)
// @Tags         admins
// @Param        id  path  string  true  "ID del administrador"
// @Success      204
// @Router       /api/admins/{id} [delete]
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
