package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/clipstream/backend/internal/middleware"
	"github.com/clipstream/backend/internal/repository"
	"github.com/clipstream/backend/internal/service"
)

// domainError translates service and repository sentinels into the API
// error envelope. Unknown errors become a generic 500 so storage
// failures are never mistaken for caller mistakes.
func domainError(c fiber.Ctx, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", notFoundMsg)
	case errors.Is(err, repository.ErrConflict):
		return middleware.ErrorResponse(c, fiber.StatusConflict, "CONFLICT", "Resource already exists")
	case errors.Is(err, service.ErrForbidden):
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "FORBIDDEN", "You do not own this resource")
	case errors.Is(err, service.ErrInvalidCredentials):
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
	default:
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected server error")
	}
}
