package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/clipstream/backend/internal/model"
	"github.com/clipstream/backend/internal/repository"
)

type ChannelService struct {
	channels *repository.ChannelRepo
	videos   *repository.VideoRepo
	cache    *CacheService
}

func NewChannelService(channels *repository.ChannelRepo, videos *repository.VideoRepo, cache *CacheService) *ChannelService {
	return &ChannelService{channels: channels, videos: videos, cache: cache}
}

// Create inserts a new channel for its owner. The channel row carries the
// owner reference, so the channel and the owner's channel set can never
// disagree: one insert is the whole operation.
func (s *ChannelService) Create(ctx context.Context, ownerID, name, description string) (*model.Channel, error) {
	ch := model.Channel{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.channels.Create(ctx, ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

// Lookup returns the channel with its videos newest-first.
// Cache-aside: check Redis first, fall back to DB, then populate.
func (s *ChannelService) Lookup(ctx context.Context, channelID string) (*model.ChannelResponse, error) {
	if s.cache != nil {
		cached, err := s.cache.GetChannel(ctx, channelID)
		if err != nil {
			log.Printf("cache: channel get error: %v", err)
		} else if cached != nil {
			var resp model.ChannelResponse
			if err := json.Unmarshal(cached, &resp); err == nil {
				return &resp, nil
			}
		}
	}

	ch, err := s.channels.FindByID(ctx, channelID)
	if err != nil {
		return nil, err
	}

	videos, err := s.videos.ListByChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []model.Video{}
	}

	resp := &model.ChannelResponse{Channel: *ch, Videos: videos}

	if s.cache != nil {
		if err := s.cache.SetChannel(ctx, channelID, resp); err != nil {
			log.Printf("cache: channel set error: %v", err)
		}
	}

	return resp, nil
}

// ListOwned returns the caller's channels newest-first. This derived
// relation is the authority on channel ownership; clients may cache a
// "my channel" pointer but must be able to rebuild it from here.
func (s *ChannelService) ListOwned(ctx context.Context, ownerID string) ([]model.Channel, error) {
	channels, err := s.channels.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if channels == nil {
		channels = []model.Channel{}
	}
	return channels, nil
}

// ToggleSubscribe flips the caller's subscription to the channel and
// returns the resulting state with the new subscriber count. The
// membership row and the counter move together in one transaction.
func (s *ChannelService) ToggleSubscribe(ctx context.Context, userID, channelID string) (*model.SubscribeResponse, error) {
	subscribed, count, err := s.channels.ToggleSubscription(ctx, userID, channelID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateChannel(ctx, channelID); err != nil {
			log.Printf("cache: invalidate channel error: %v", err)
		}
	}

	return &model.SubscribeResponse{Subscribed: subscribed, SubscribersCount: count}, nil
}
