package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"gorlea-notes-be/internal/pkg/apperror"
)

// ErrorHandlerMiddleware translates errors returned by controllers into
// the JSON response envelope. Typed kinds map to status codes; anything
// untyped is treated as a storage failure.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		status := statusForKind(apperror.KindOf(err))
		message := err.Error()
		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			// Hide wrapped causes from clients, keep them for the logs.
			message = appErr.Message
		}

		return ctx.Status(status).JSON(ErrorResponse(status, message))
	}
}

func statusForKind(kind apperror.Kind) int {
	switch kind {
	case apperror.KindAuthRequired:
		return fiber.StatusUnauthorized
	case apperror.KindNotFound:
		return fiber.StatusNotFound
	case apperror.KindInvalidInput:
		return fiber.StatusBadRequest
	case apperror.KindRateLimited:
		return fiber.StatusTooManyRequests
	case apperror.KindUpstreamRewrite:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
