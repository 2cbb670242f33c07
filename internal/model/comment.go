package model

import "time"

// Comment represents a user comment under a video.
type Comment struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"videoId"`
	AuthorID  string    `json:"authorId"`
	Body      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// AuthorName is joined in on reads; empty on writes.
	AuthorName string `json:"authorName,omitempty"`
}

// CommentRequest is the API request body for adding or editing a comment.
type CommentRequest struct {
	Text string `json:"text"`
}
