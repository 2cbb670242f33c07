package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clipstream/backend/internal/model"
	"github.com/clipstream/backend/internal/repository"
)

type VideoService struct {
	videos *repository.VideoRepo
	guard  *Guard
	cache  *CacheService
}

func NewVideoService(videos *repository.VideoRepo, guard *Guard, cache *CacheService) *VideoService {
	return &VideoService{videos: videos, guard: guard, cache: cache}
}

// Create publishes a video under a channel. A dangling channel reference
// surfaces as repository.ErrNotFound; the insert and the channel's
// containment are a single atomic step.
func (s *VideoService) Create(ctx context.Context, req model.CreateVideoRequest) (*model.Video, error) {
	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = model.CategoryAll
	}

	v := model.Video{
		ID:           uuid.NewString(),
		ChannelID:    req.ChannelID,
		Title:        req.Title,
		Description:  req.Description,
		MediaURL:     req.MediaURL,
		ThumbnailURL: req.ThumbnailURL,
		Category:     category,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.videos.Create(ctx, v); err != nil {
		return nil, err
	}

	s.invalidateChannel(ctx, v.ChannelID)
	return &v, nil
}

// List returns videos filtered by optional title substring and category.
func (s *VideoService) List(ctx context.Context, search, category string) ([]model.VideoResponse, error) {
	return s.videos.List(ctx, strings.TrimSpace(search), strings.TrimSpace(category))
}

// Search matches the query across title, description and category.
// A blank query returns an empty result without touching the store.
func (s *VideoService) Search(ctx context.Context, query string) ([]model.VideoResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.VideoResponse{}, nil
	}
	return s.videos.Search(ctx, query)
}

// Get returns a video by ID and counts the fetch as one view. Every
// fetch counts, repeat viewers included; there is deliberately no
// dedup here.
func (s *VideoService) Get(ctx context.Context, videoID string) (*model.VideoResponse, error) {
	return s.videos.GetAndIncrementView(ctx, videoID)
}

// Update edits video metadata. Owner-only.
func (s *VideoService) Update(ctx context.Context, videoID, actorID string, req model.UpdateVideoRequest) (*model.Video, error) {
	owns, err := s.guard.OwnsVideo(ctx, videoID, actorID)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, ErrForbidden
	}

	v, err := s.videos.Update(ctx, videoID, req)
	if err != nil {
		return nil, err
	}

	s.invalidateChannel(ctx, v.ChannelID)
	return v, nil
}

// Delete removes a video along with its reactions and comments.
// Owner-only. The cascade is one atomic statement, so no reader ever
// sees a comment whose video is gone or a channel still listing the
// deleted video.
func (s *VideoService) Delete(ctx context.Context, videoID, actorID string) error {
	owns, err := s.guard.OwnsVideo(ctx, videoID, actorID)
	if err != nil {
		return err
	}
	if !owns {
		return ErrForbidden
	}

	// Resolve the channel before the row disappears, for invalidation.
	v, err := s.videos.FindByID(ctx, videoID)
	if err != nil {
		return err
	}

	if err := s.videos.Delete(ctx, videoID); err != nil {
		return err
	}

	s.invalidateChannel(ctx, v.ChannelID)
	return nil
}

// ToggleReaction applies one like or dislike toggle for the acting user
// and returns the resulting tallies. A user holds at most one reaction
// per video, so the like and dislike sets can never intersect.
func (s *VideoService) ToggleReaction(ctx context.Context, videoID, userID, kind string) (*model.ReactionResponse, error) {
	likes, dislikes, err := s.videos.ToggleReaction(ctx, videoID, userID, kind)
	if err != nil {
		return nil, err
	}
	return &model.ReactionResponse{Likes: likes, Dislikes: dislikes}, nil
}

func (s *VideoService) invalidateChannel(ctx context.Context, channelID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateChannel(ctx, channelID); err != nil {
		log.Printf("cache: invalidate channel error: %v", err)
	}
}
