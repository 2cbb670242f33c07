package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/clipstream/backend/internal/middleware"
	"github.com/clipstream/backend/internal/model"
	"github.com/clipstream/backend/internal/service"
)

type CommentHandler struct {
	svc *service.CommentService
}

func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// Add handles POST /api/comments/:videoId
func (h *CommentHandler) Add(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateID("videoId", c.Params("videoId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION", errMsg)
	}

	var req model.CommentRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	body, errMsg := middleware.ValidateCommentText(req.Text)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION", errMsg)
	}

	comment, err := h.svc.Add(c.Context(), videoID, middleware.UserID(c), body)
	if err != nil {
		return domainError(c, err, "Video not found")
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// ListByVideo handles GET /api/comments/:videoId
func (h *CommentHandler) ListByVideo(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateID("videoId", c.Params("videoId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION", errMsg)
	}

	comments, err := h.svc.ListByVideo(c.Context(), videoID)
	if err != nil {
		return domainError(c, err, "Video not found")
	}
	return c.JSON(comments)
}

// Update handles PUT /api/comments/update/:commentId
func (h *CommentHandler) Update(c fiber.Ctx) error {
	commentID, errMsg := middleware.ValidateID("commentId", c.Params("commentId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION", errMsg)
	}

	var req model.CommentRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	body, errMsg := middleware.ValidateCommentText(req.Text)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION", errMsg)
	}

	comment, err := h.svc.Update(c.Context(), commentID, middleware.UserID(c), body)
	if err != nil {
		return domainError(c, err, "Comment not found")
	}

	return c.JSON(comment)
}

// Delete handles DELETE /api/comments/delete/:commentId
func (h *CommentHandler) Delete(c fiber.Ctx) error {
	commentID, errMsg := middleware.ValidateID("commentId", c.Params("commentId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION", errMsg)
	}

	if err := h.svc.Delete(c.Context(), commentID, middleware.UserID(c)); err != nil {
		return domainError(c, err, "Comment not found")
	}

	return c.JSON(fiber.Map{"message": "Comment deleted"})
}
