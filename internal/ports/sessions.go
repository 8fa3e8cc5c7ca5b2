package ports

import (
	"context"

	"github.com/randomtoy/humor-go/internal/domain"
)

// SessionStore holds per-visitor sessions keyed by an opaque token.
type SessionStore interface {
	// Create stores the session and returns its token.
	Create(ctx context.Context, sess domain.Session) (string, error)
	// Get returns the session for token, or domain.ErrSessionNotFound.
	Get(ctx context.Context, token string) (domain.Session, error)
	// Delete removes the session for token. Deleting an absent token is not
	// an error.
	Delete(ctx context.Context, token string) error
}
