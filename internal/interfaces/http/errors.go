package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gudang-api/internal/application/dto"
	"github.com/jhoicas/gudang-api/internal/domain"
)

// errorMapping código HTTP y código de error público para cada error de dominio.
type errorMapping struct {
	target error
	status int
	code   string
}

// Orden importa: los errores más específicos primero.
var errorMappings = []errorMapping{
	{domain.ErrInvalidQuantity, fiber.StatusUnprocessableEntity, "INVALID_QUANTITY"},
	{domain.ErrInvalidPrice, fiber.StatusUnprocessableEntity, "INVALID_PRICE"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrItemNotFound, fiber.StatusNotFound, "ITEM_NOT_FOUND"},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrInsufficientStock, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
	{domain.ErrWouldUnderflow, fiber.StatusConflict, "WOULD_UNDERFLOW"},
	{domain.ErrDeleteBlocked, fiber.StatusConflict, "DELETE_BLOCKED"},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrInvalidTransition, fiber.StatusConflict, "INVALID_TRANSITION"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
}

// respondError traduce un error de dominio a la respuesta HTTP. Los errores no
// mapeados se registran y se devuelven como 500 sin detalle interno.
func respondError(c *fiber.Ctx, err error) error {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			body := dto.ErrorResponse{Code: m.code, Message: m.target.Error()}
			// Stock insuficiente: el formulario muestra el mensaje bajo la clave "error".
			if m.target == domain.ErrInsufficientStock {
				body.Fields = map[string]string{"error": m.target.Error()}
			}
			if m.target == domain.ErrInvalidInput && err != m.target {
				body.Message = err.Error()
			}
			return c.Status(m.status).JSON(body)
		}
	}
	log := requestLogger(c)
	log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
