package model

import "time"

// User represents a registered ClipStream account.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"-"`
}

// RegisterRequest is the API request body for account registration.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the API request body for login. Identifier may be
// either the account email or the username.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// AuthResponse is the API response after a successful register or login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// CategoryCount is one entry in the ranked category list.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// StatsResponse is the API response for global statistics.
// TopCategories is ordered by descending video count.
type StatsResponse struct {
	TotalUsers    int             `json:"totalUsers"`
	TotalChannels int             `json:"totalChannels"`
	TotalVideos   int             `json:"totalVideos"`
	TotalComments int             `json:"totalComments"`
	TotalViews    int             `json:"totalViews"`
	TopCategories []CategoryCount `json:"topCategories"`
}
