package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
)

// userIDKey is the request-local key holding the authenticated user's ID.
const userIDKey = "userID"

// NewAuth returns a middleware that requires a valid HS256 bearer token
// and stores the token subject (the user ID) in request locals. Requests
// without a usable identity are rejected with 401.
func NewAuth(secret string) fiber.Handler {
	key := []byte(secret)
	return func(c fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required")
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Invalid authorization header")
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return key, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			return ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Invalid or expired token")
		}

		subject, err := token.Claims.GetSubject()
		if err != nil || subject == "" {
			return ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Invalid or expired token")
		}

		c.Locals(userIDKey, subject)
		return c.Next()
	}
}

// UserID returns the authenticated user ID set by NewAuth, or "" when the
// request carried no identity.
func UserID(c fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}
