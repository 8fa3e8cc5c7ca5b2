package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyJoke          = errors.New("joke text must not be empty")
	ErrInvalidCulture     = errors.New("unknown culture")
	ErrInvalidLanguage    = errors.New("unknown language")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRateLimited        = errors.New("completion rate limit reached")
	ErrParse              = errors.New("completion response missing expected fields")
	ErrTransport          = errors.New("upstream transport failure")
	ErrSessionNotFound    = errors.New("session not found")
)

// AuthError is a sign-up or sign-in failure reported by the identity service.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return "identity service: " + e.Message }

// ServiceError is a non-200, non-429 response from the completion service.
// Status and Body are surfaced to the user verbatim.
type ServiceError struct {
	Status int
	Body   string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("completion service status %d: %s", e.Status, e.Body)
}
