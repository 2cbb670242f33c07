package model

import "time"

// Channel represents a channel owned by a single user. The set of videos
// it contains is derived from Video.ChannelID; the subscriber count is a
// denormalized counter kept in step with the subscriptions table.
type Channel struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"ownerId"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	SubscriberCount int       `json:"subscriberCount"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CreateChannelRequest is the API request body for channel creation.
type CreateChannelRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ChannelResponse is the API response for channel lookups, including the
// channel's videos newest-first.
type ChannelResponse struct {
	Channel
	Videos []Video `json:"videos"`
}

// SubscribeResponse is the API response after a subscription toggle.
type SubscribeResponse struct {
	Subscribed       bool `json:"subscribed"`
	SubscribersCount int  `json:"subscribersCount"`
}
