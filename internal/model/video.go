package model

import "time"

// CategoryAll is the sentinel category that disables category filtering.
const CategoryAll = "All"

// Reaction kinds stored in video_reactions.kind.
const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

// Video represents a published video under a channel.
type Video struct {
	ID           string    `json:"id"`
	ChannelID    string    `json:"channelId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	MediaURL     string    `json:"mediaUrl"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	Category     string    `json:"category"`
	ViewCount    int       `json:"views"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CreateVideoRequest is the API request body for publishing a video.
type CreateVideoRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	MediaURL     string `json:"mediaUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Category     string `json:"category"`
	ChannelID    string `json:"channelId"`
}

// UpdateVideoRequest is the API request body for editing video metadata.
// Nil fields are left unchanged.
type UpdateVideoRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	Category     *string `json:"category"`
}

// VideoResponse is the API response for single-video lookups, carrying
// the reaction tallies alongside the video itself.
type VideoResponse struct {
	Video
	Likes       int    `json:"likes"`
	Dislikes    int    `json:"dislikes"`
	ChannelName string `json:"channelName,omitempty"`
}

// ReactionResponse is the API response after a like/dislike toggle.
type ReactionResponse struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}
