package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
)

// respondError traduce la taxonomía de errores del dominio a HTTP:
// ItemNotFound/NotFound → 404, InvalidQuantity/InvalidInput → 400,
// InsufficientStock → 409 (con el faltante), Duplicate → 409,
// Unauthorized → 401, Forbidden → 403, todo lo demás → 500.
func respondError(c *fiber.Ctx, err error) error {
	var insuf *domain.InsufficientStockError
	if errors.As(err, &insuf) {
		shortfall := insuf.Shortfall()
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:      "INSUFFICIENT_STOCK",
			Message:   "stock insuficiente",
			Shortfall: &shortfall,
		})
	}
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: "artículo no encontrado"})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "la cantidad debe ser un entero positivo"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el recurso ya existe"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	default:
		// ErrStorage y cualquier falla no tipada: reintentar es seguro, la
		// operación quedó revertida por completo.
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}
