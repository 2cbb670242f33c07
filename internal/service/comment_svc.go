package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/clipstream/backend/internal/model"
	"github.com/clipstream/backend/internal/repository"
)

type CommentService struct {
	comments *repository.CommentRepo
	videos   *repository.VideoRepo
	guard    *Guard
}

func NewCommentService(comments *repository.CommentRepo, videos *repository.VideoRepo, guard *Guard) *CommentService {
	return &CommentService{comments: comments, videos: videos, guard: guard}
}

// Add creates a comment under a video. A missing video surfaces as
// repository.ErrNotFound.
func (s *CommentService) Add(ctx context.Context, videoID, authorID, text string) (*model.Comment, error) {
	now := time.Now().UTC()
	cm := model.Comment{
		ID:        uuid.NewString(),
		VideoID:   videoID,
		AuthorID:  authorID,
		Body:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.comments.Create(ctx, cm); err != nil {
		return nil, err
	}
	return &cm, nil
}

// ListByVideo returns a video's comments newest-first. Listing for a
// video that does not exist reports not-found rather than an empty page.
func (s *CommentService) ListByVideo(ctx context.Context, videoID string) ([]model.Comment, error) {
	if _, err := s.videos.FindByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return s.comments.ListByVideo(ctx, videoID)
}

// Update edits a comment's text. Author-only.
func (s *CommentService) Update(ctx context.Context, commentID, actorID, text string) (*model.Comment, error) {
	owns, err := s.guard.OwnsComment(ctx, commentID, actorID)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, ErrForbidden
	}
	return s.comments.Update(ctx, commentID, text)
}

// Delete removes a comment. Author-only.
func (s *CommentService) Delete(ctx context.Context, commentID, actorID string) error {
	owns, err := s.guard.OwnsComment(ctx, commentID, actorID)
	if err != nil {
		return err
	}
	if !owns {
		return ErrForbidden
	}
	return s.comments.Delete(ctx, commentID)
}
