package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/clipstream/backend/internal/middleware"
	"github.com/clipstream/backend/internal/model"
	"github.com/clipstream/backend/internal/service"
)

type VideoHandler struct {
	svc *service.VideoService
}

func NewVideoHandler(svc *service.VideoService) *VideoHandler {
	return &VideoHandler{svc: svc}
}

// Create handles POST /api/videos
func (h *VideoHandler) Create(c fiber.Ctx) error {
	var req model.CreateVideoRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	title, errMsg := middleware.ValidateTitle(req.Title)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION", errMsg)
	}
	mediaURL, errMsg := middleware.ValidateMediaURL(req.MediaURL)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION", errMsg)
	}
	channelID, errMsg := middleware.ValidateID("channelId", req.ChannelID)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION", errMsg)
	}
	req.Title = title
	req.MediaURL = mediaURL
	req.ChannelID = channelID

	video, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return domainError(c, err, "Channel not found")
	}

	return c.Status(fiber.StatusCreated).JSON(video)
}

// List handles GET /api/videos?q=X&category=Y
func (h *VideoHandler) List(c fiber.Ctx) error {
	title := fiber.Query[string](c, "q")
	category := fiber.Query[string](c, "category")

	videos, err := h.svc.List(c.Context(), title, category)
	if err != nil {
		return domainError(c, err, "Videos not found")
	}
	return c.JSON(videos)
}

// Search handles GET /api/videos/search?q=X
func (h *VideoHandler) Search(c fiber.Ctx) error {
	query := fiber.Query[string](c, "q")

	videos, err := h.svc.Search(c.Context(), query)
	if err != nil {
		return domainError(c, err, "Videos not found")
	}
	return c.JSON(videos)
}

// Get handles GET /api/videos/:videoId. Each successful fetch counts as a view.
func (h *VideoHandler) Get(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateID("videoId", c.Params("videoId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION", errMsg)
	}

	video, err := h.svc.Get(c.Context(), videoID)
	if err != nil {
		return domainError(c, err, "Video not found")
	}

	Metrics.VideoViewsTotal.Inc()
	return c.JSON(video)
}

// Update handles PUT /api/videos/:videoId
func (h *VideoHandler) Update(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateID("videoId", c.Params("videoId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION", errMsg)
	}

	var req model.UpdateVideoRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if req.Title != nil {
		title, errMsg := middleware.ValidateTitle(*req.Title)
		if errMsg != "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION", errMsg)
		}
		req.Title = &title
	}

	video, err := h.svc.Update(c.Context(), videoID, middleware.UserID(c), req)
	if err != nil {
		return domainError(c, err, "Video not found")
	}

	return c.JSON(video)
}

// Delete handles DELETE /api/videos/:videoId
func (h *VideoHandler) Delete(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateID("videoId", c.Params("videoId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION", errMsg)
	}

	if err := h.svc.Delete(c.Context(), videoID, middleware.UserID(c)); err != nil {
		return domainError(c, err, "Video not found")
	}

	return c.JSON(fiber.Map{"message": "Video deleted"})
}

// ToggleLike handles PUT /api/videos/:videoId/like
func (h *VideoHandler) ToggleLike(c fiber.Ctx) error {
	return h.toggleReaction(c, model.ReactionLike)
}

// ToggleDislike handles PUT /api/videos/:videoId/dislike
func (h *VideoHandler) ToggleDislike(c fiber.Ctx) error {
	return h.toggleReaction(c, model.ReactionDislike)
}

func (h *VideoHandler) toggleReaction(c fiber.Ctx, kind string) error {
	videoID, errMsg := middleware.ValidateID("videoId", c.Params("videoId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION", errMsg)
	}

	resp, err := h.svc.ToggleReaction(c.Context(), videoID, middleware.UserID(c), kind)
	if err != nil {
		return domainError(c, err, "Video not found")
	}

	Metrics.ReactionsTotal.WithLabelValues(kind).Inc()
	return c.JSON(resp)
}
