package middleware

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Field length limits matching database schema constraints.
const (
	MaxUsernameLen    = 32  // users.username VARCHAR(32)
	MinUsernameLen    = 3
	MaxEmailLen       = 255 // users.email VARCHAR(255)
	MaxChannelNameLen = 100 // channels.name VARCHAR(100)
	MaxTitleLen       = 200 // videos.title VARCHAR(200)
	MaxCategoryLen    = 50  // videos.category VARCHAR(50)
	MaxCommentLen     = 2000
)

// usernameRe matches usernames: alphanumeric, dot, dash, underscore.
var usernameRe = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// uuidRe matches canonical lowercase-or-uppercase UUIDs.
var uuidRe = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateUsername checks that a username is well-formed and within DB limits.
func ValidateUsername(name string) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "username is required"
	}
	if len(name) < MinUsernameLen {
		return "", "username must be at least 3 characters"
	}
	if len(name) > MaxUsernameLen {
		return "", "username must be at most 32 characters"
	}
	if !usernameRe.MatchString(name) {
		return "", "username contains invalid characters"
	}
	return name, ""
}

// ValidateEmail checks that an email address parses and fits the column.
func ValidateEmail(email string) (string, string) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return "", "email is required"
	}
	if len(email) > MaxEmailLen {
		return "", "email must be at most 255 characters"
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", "email address is invalid"
	}
	return email, ""
}

// ValidateChannelName checks the channel name field.
func ValidateChannelName(name string) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "channel name is required"
	}
	if len(name) > MaxChannelNameLen {
		return "", "channel name must be at most 100 characters"
	}
	return name, ""
}

// ValidateTitle checks the video title field.
func ValidateTitle(title string) (string, string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", "title is required"
	}
	if len(title) > MaxTitleLen {
		return "", "title must be at most 200 characters"
	}
	return title, ""
}

// ValidateCommentText trims the comment body and rejects blank or
// oversized input.
func ValidateCommentText(text string) (string, string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", "comment text is required"
	}
	if len(text) > MaxCommentLen {
		return "", "comment must be at most 2000 characters"
	}
	return text, ""
}

// ValidateMediaURL checks that a media URL is present and absolute.
func ValidateMediaURL(rawURL string) (string, string) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", "mediaUrl is required"
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", "mediaUrl must be an absolute URL"
	}
	return rawURL, ""
}

// ValidateID checks that a path or body ID is a well-formed UUID.
func ValidateID(field, id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", field + " is required"
	}
	if !uuidRe.MatchString(id) {
		return "", field + " is not a valid id"
	}
	return strings.ToLower(id), ""
}
