package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stowlog/backoffice-api/internal/application/dto"
	"github.com/stowlog/backoffice-api/internal/application/usecase"
)

// ConfigHandler maneja las sesiones de configuración de módulos y el
// catálogo fijo.
type ConfigHandler struct {
	uc *usecase.ModuleConfigUseCase
}

// NewConfigHandler construye el handler inyectando el caso de uso.
func NewConfigHandler(uc *usecase.ModuleConfigUseCase) *ConfigHandler {
	return &ConfigHandler{uc: uc}
}

// Catalog godoc
// @Summary      Catálogo fijo de módulos
// @Tags         config
// @Produce      json
// @Success      200  {object}  dto.ModuleCatalogResponse
// @Router       /api/modules [get]
func (h *ConfigHandler) Catalog(c *fiber.Ctx) error {
	return c.JSON(h.uc.Catalog())
}

// Open godoc
// @Summary      Abrir sesión de configuración
// @Description  Selecciona la primera instalación (si existe) y carga su
// @Description  mapa de módulos comprometido como borrador.
// @Tags         config
// @Produce      json
// @Success      201  {object}  dto.ConfigSessionResponse
// @Router       /api/config-sessions [post]
func (h *ConfigHandler) Open(c *fiber.Ctx) error {
	out, err := h.uc.Open()
	if err != nil {
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Estado de la sesión
// @Tags         config
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.ConfigSessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/config-sessions/{id} [get]
func (h *ConfigHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return notFound(c, "sesión no encontrada")
	}
	return c.JSON(out)
}

// SelectFacility godoc
// @Summary      Cambiar la instalación seleccionada
// @Description  Carga el mapa comprometido de la instalación como borrador
// @Description  y descarta los toggles sin guardar.
// @Tags         config
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la sesión"
// @Param        body  body  dto.SelectFacilityRequest  true  "Instalación a seleccionar"
// @Success      200   {object}  dto.ConfigSessionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/config-sessions/{id}/facility [put]
func (h *ConfigHandler) SelectFacility(c *fiber.Ctx) error {
	var in dto.SelectFacilityRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SelectFacility(c.Params("id"), in.FacilityID)
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return notFound(c, "sesión no encontrada")
	}
	return c.JSON(out)
}

// Toggle godoc
// @Summary      Encender/apagar un módulo en el borrador
// @Tags         config
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la sesión"
// @Param        key   path  string                   true  "Clave del módulo"
// @Param        body  body  dto.ToggleModuleRequest  true  "Estado deseado"
// @Success      200   {object}  dto.ConfigSessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/config-sessions/{id}/modules/{key} [put]
func (h *ConfigHandler) Toggle(c *fiber.Ctx) error {
	var in dto.ToggleModuleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Toggle(c.Params("id"), c.Params("key"), in.Enabled)
	if err != nil {
		return mapDomainError(c, err, "clave de módulo fuera del catálogo")
	}
	if out == nil {
		return notFound(c, "sesión no encontrada")
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Guardar el borrador en la instalación seleccionada
// @Description  Sin selección (o con la instalación ya borrada) es un no-op.
// @Tags         config
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.ConfigSessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/config-sessions/{id}/save [post]
func (h *ConfigHandler) Save(c *fiber.Ctx) error {
	out, err := h.uc.Save(c.Params("id"))
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return notFound(c, "sesión no encontrada")
	}
	return c.JSON(out)
}

// Close godoc
// @Summary      Cerrar la sesión descartando el borrador
// @Tags         config
// @Param        id  path  string  true  "ID de la sesión"
// @Success      204
// @Router       /api/config-sessions/{id} [delete]
func (h *ConfigHandler) Close(c *fiber.Ctx) error {
	if err := h.uc.Close(c.Params("id")); err != nil {
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
