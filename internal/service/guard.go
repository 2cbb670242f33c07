package service

import (
	"context"

	"github.com/clipstream/backend/internal/repository"
)

// Guard answers the single authorization question this system has:
// does the acting user own the resource. Videos are owned through
// their channel's owner; comments are owned by their author. There
// are no roles and no delegation.
type Guard struct {
	videos   *repository.VideoRepo
	comments *repository.CommentRepo
}

func NewGuard(videos *repository.VideoRepo, comments *repository.CommentRepo) *Guard {
	return &Guard{videos: videos, comments: comments}
}

// OwnsVideo reports whether userID owns the channel the video belongs to.
// A missing video propagates repository.ErrNotFound.
func (g *Guard) OwnsVideo(ctx context.Context, videoID, userID string) (bool, error) {
	ownerID, err := g.videos.OwnerID(ctx, videoID)
	if err != nil {
		return false, err
	}
	return ownerID == userID, nil
}

// OwnsComment reports whether userID authored the comment.
// A missing comment propagates repository.ErrNotFound.
func (g *Guard) OwnsComment(ctx context.Context, commentID, userID string) (bool, error) {
	cm, err := g.comments.FindByID(ctx, commentID)
	if err != nil {
		return false, err
	}
	return cm.AuthorID == userID, nil
}
