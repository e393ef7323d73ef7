package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

// Códigos de error expuestos en dto.ErrorResponse.
const (
	CodeNotFound    = "NOT_FOUND"
	CodeValidation  = "VALIDATION"
	CodeInvalidBody = "INVALID_BODY"
	CodeInvalidID   = "INVALID_ID"
	CodeInternal    = "INTERNAL"
)

const msgUnexpected = "Unexpected server error"

// writeError traduce errores de dominio a HTTP: NotFound → 404, validación → 400, resto → 500.
// Los 500 se registran con el error real y responden con un mensaje genérico.
func writeError(c *fiber.Ctx, err error) error {
	var rule *domain.RuleError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		msg := "Resource not found"
		if errors.As(err, &rule) {
			msg = rule.Message
		}
		return notFound(c, msg)
	case errors.Is(err, domain.ErrInvalidInput):
		msg := "Invalid input"
		if errors.As(err, &rule) {
			msg = rule.Message
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: msg})
	}
	log.Error().Err(err).
		Str("request_id", GetRequestID(c)).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error inesperado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: CodeInternal, Message: msgUnexpected})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: CodeNotFound, Message: msg})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidBody, Message: "Invalid request body"})
}

// parseID lee :id como entero positivo.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidID, Message: "id must be a positive integer"})
}

// ErrorHandler responde errores de Fiber (ruta inexistente, método no permitido, pánicos recuperados)
// con el mismo formato que los handlers.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		code := CodeValidation
		if fe.Code == fiber.StatusNotFound {
			code = CodeNotFound
		}
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
	}
	return writeError(c, err)
}
