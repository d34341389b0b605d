package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/stowlog/backoffice-api/internal/application/dto"
	"github.com/stowlog/backoffice-api/internal/domain"
)

// Respuestas de error compartidas por todos los handlers.

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: msg})
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// mapDomainError traduce sentinelas de dominio a estados HTTP; cualquier
// otro error es un 500.
func mapDomainError(c *fiber.Ctx, err error, validationMsg string) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMsg})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return notFound(c, err.Error())
	}
	return internalError(c, err)
}
