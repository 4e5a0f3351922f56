package services

import (
	"context"
	"time"

	"github.com/SscSPs/book_catalog_api/internal/core/domain"
	"golang.org/x/oauth2"
)

// SessionSvcFacade binds authenticated users to opaque session tokens.
type SessionSvcFacade interface {
	// Serialize starts a session for user and returns its token.
	Serialize(ctx context.Context, user *domain.User) (string, error)

	// Deserialize restores the user behind token. A missing or expired
	// session, or one whose user is gone or inactive, yields (nil, nil).
	Deserialize(ctx context.Context, token string) (*domain.User, error)

	// Invalidate ends the session.
	Invalidate(ctx context.Context, token string) error

	// TTL is the lifetime of new sessions.
	TTL() time.Duration
}

// OAuthProvider drives the redirect/callback protocol of one identity provider.
type OAuthProvider interface {
	Name() domain.AuthProvider
	// AuthCodeURL returns the consent page URL carrying state.
	AuthCodeURL(state string) string
	// Exchange trades an authorization code for a token.
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	// FetchProfile loads the user's profile with token.
	FetchProfile(ctx context.Context, token *oauth2.Token) (*domain.OAuthProfile, error)
}

// OAuthStateSvc issues and checks the CSRF state of the OAuth redirect flow.
type OAuthStateSvc interface {
	// Issue returns a signed state and the nonce the browser must present with it.
	Issue(provider domain.AuthProvider) (state string, nonce string, err error)
	// Verify checks that state is valid for provider and bound to nonce.
	Verify(provider domain.AuthProvider, state, nonce string) error
}
