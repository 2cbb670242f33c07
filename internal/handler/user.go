package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/clipstream/backend/internal/middleware"
	"github.com/clipstream/backend/internal/service"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Get handles GET /api/users/:userId — public profile without credentials.
func (h *UserHandler) Get(c fiber.Ctx) error {
	userID, errMsg := middleware.ValidateID("userId", c.Params("userId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION", errMsg)
	}

	user, err := h.svc.Get(c.Context(), userID)
	if err != nil {
		return domainError(c, err, "User not found")
	}
	return c.JSON(user)
}

// Stats handles GET /api/stats — aggregate platform counts.
func (h *UserHandler) Stats(c fiber.Ctx) error {
	stats, err := h.svc.GetStats(c.Context())
	if err != nil {
		return domainError(c, err, "Stats unavailable")
	}
	return c.JSON(stats)
}
