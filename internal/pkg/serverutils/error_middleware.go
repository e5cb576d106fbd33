// FILE: internal/pkg/serverutils/error_middleware.go
package serverutils

import (
	"errors"

	"ai-character-admin-be/internal/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps taxonomy errors returned by handlers to
// HTTP statuses: ValidationError 400 with the field list, NotFoundError
// 404, ConflictError 409, everything else 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var ve *apperrors.ValidationError
		if errors.As(err, &ve) {
			return ctx.Status(fiber.StatusBadRequest).JSON(ValidationErrorResponse("Validation failed", ve.Fields))
		}

		var nfe *apperrors.NotFoundError
		if errors.As(err, &nfe) {
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(404, nfe.Error()))
		}

		var ce *apperrors.ConflictError
		if errors.As(err, &ce) {
			return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse(409, ce.Error()))
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return ctx.Status(fe.Code).JSON(ErrorResponse(fe.Code, fe.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(500, err.Error()))
	}
}
