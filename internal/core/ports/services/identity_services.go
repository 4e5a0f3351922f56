package services

import (
	"context"

	"github.com/SscSPs/book_catalog_api/internal/core/domain"
	"github.com/SscSPs/book_catalog_api/internal/dto"
)

// IdentityReaderSvc defines read operations for user identities
type IdentityReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// LocalAuthSvc defines email/password authentication
type LocalAuthSvc interface {
	// Register creates a local account. A taken email yields apperrors.ErrDuplicate.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Authenticate checks local credentials. Every failure is apperrors.ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

// OAuthIdentitySvc resolves provider profiles to users
type OAuthIdentitySvc interface {
	// ResolveOAuth finds or creates the user for profile. Repeated calls with
	// the same provider identifier return the same user.
	ResolveOAuth(ctx context.Context, profile domain.OAuthProfile) (*domain.User, error)
}

// IdentitySvcFacade combines all identity-related service interfaces
type IdentitySvcFacade interface {
	IdentityReaderSvc
	LocalAuthSvc
	OAuthIdentitySvc
}
