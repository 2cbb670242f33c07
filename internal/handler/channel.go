package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/clipstream/backend/internal/middleware"
	"github.com/clipstream/backend/internal/model"
	"github.com/clipstream/backend/internal/service"
)

type ChannelHandler struct {
	svc *service.ChannelService
}

func NewChannelHandler(svc *service.ChannelService) *ChannelHandler {
	return &ChannelHandler{svc: svc}
}

// Create handles POST /api/channels
func (h *ChannelHandler) Create(c fiber.Ctx) error {
	var req model.CreateChannelRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	name, errMsg := middleware.ValidateChannelName(req.Name)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION", errMsg)
	}

	ch, err := h.svc.Create(c.Context(), middleware.UserID(c), name, req.Description)
	if err != nil {
		return domainError(c, err, "Owner not found")
	}

	return c.Status(fiber.StatusCreated).JSON(ch)
}

// ListMine handles GET /api/channels/me
func (h *ChannelHandler) ListMine(c fiber.Ctx) error {
	channels, err := h.svc.ListOwned(c.Context(), middleware.UserID(c))
	if err != nil {
		return domainError(c, err, "User not found")
	}
	return c.JSON(channels)
}

// Get handles GET /api/channels/:channelId
func (h *ChannelHandler) Get(c fiber.Ctx) error {
	channelID, errMsg := middleware.ValidateID("channelId", c.Params("channelId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION", errMsg)
	}

	resp, err := h.svc.Lookup(c.Context(), channelID)
	if err != nil {
		return domainError(c, err, "Channel not found")
	}

	return c.JSON(resp)
}

// ToggleSubscribe handles POST /api/channels/:channelId/subscribe
func (h *ChannelHandler) ToggleSubscribe(c fiber.Ctx) error {
	channelID, errMsg := middleware.ValidateID("channelId", c.Params("channelId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION", errMsg)
	}

	resp, err := h.svc.ToggleSubscribe(c.Context(), middleware.UserID(c), channelID)
	if err != nil {
		return domainError(c, err, "Channel not found")
	}

	Metrics.SubscriptionTogglesTotal.Inc()
	return c.JSON(resp)
}
