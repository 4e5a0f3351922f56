package repositories

import (
	"context"
	"time"
)

// SessionRepository stores the mapping from session tokens to user ids.
type SessionRepository interface {
	// CreateSession stores token for userID with the given lifetime.
	CreateSession(ctx context.Context, token, userID string, ttl time.Duration) error

	// FindSessionUserID returns the user bound to token or apperrors.ErrNotFound.
	FindSessionUserID(ctx context.Context, token string) (string, error)

	// DeleteSession removes token. Deleting an unknown token is not an error.
	DeleteSession(ctx context.Context, token string) error
}
