package service

import "errors"

var (
	// ErrForbidden indicates an authenticated caller who does not own the
	// targeted resource. Ownership is the only authorization predicate.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
