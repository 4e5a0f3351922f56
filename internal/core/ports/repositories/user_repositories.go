package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/book_catalog_api/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by normalized email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByProviderID retrieves a user by the identifier an OAuth provider assigned to them.
	FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateLastLogin records a successful login.
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error

	// LinkProviderID attaches a provider identifier to an existing user.
	// It returns apperrors.ErrNotFound when the user does not exist and
	// apperrors.ErrDuplicate when the user's slot for provider is already taken.
	LinkProviderID(ctx context.Context, userID string, provider domain.AuthProvider, providerUserID string, at time.Time) (*domain.User, error)
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
