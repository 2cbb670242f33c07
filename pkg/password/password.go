package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MinLength is the minimum accepted password length.
const MinLength = 8

// ErrTooShort is returned by Hash for passwords under MinLength.
var ErrTooShort = errors.New("password too short")

// Hash produces a bcrypt hash of the plaintext at the given cost.
// Costs outside bcrypt's valid range fall back to the library default.
func Hash(plaintext string, cost int) (string, error) {
	if len(plaintext) < MinLength {
		return "", ErrTooShort
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether the plaintext matches the stored bcrypt hash.
func Verify(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
