package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/clipstream/backend/internal/middleware"
	"github.com/clipstream/backend/internal/model"
	"github.com/clipstream/backend/internal/repository"
	"github.com/clipstream/backend/internal/service"
	"github.com/clipstream/backend/pkg/password"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req model.RegisterRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	username, errMsg := middleware.ValidateUsername(req.Username)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION", errMsg)
	}

	email, errMsg := middleware.ValidateEmail(req.Email)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION", errMsg)
	}

	resp, err := h.svc.Register(c.Context(), username, email, req.Password)
	if err != nil {
		if errors.Is(err, password.ErrTooShort) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION", "password must be at least 8 characters")
		}
		if errors.Is(err, repository.ErrConflict) {
			return middleware.ErrorResponse(c, fiber.StatusConflict, "CONFLICT", "Username or email already registered")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register")
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req model.LoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	if req.Identifier == "" || req.Password == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION", "identifier and password are required")
	}

	resp, err := h.svc.Login(c.Context(), req.Identifier, req.Password)
	if err != nil {
		return domainError(c, err, "User not found")
	}

	return c.JSON(resp)
}
