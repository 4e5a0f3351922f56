package services

import (
	"fmt"
	"time"

	"github.com/SscSPs/book_catalog_api/internal/apperrors"
	"github.com/SscSPs/book_catalog_api/internal/core/domain"
	portssvc "github.com/SscSPs/book_catalog_api/internal/core/ports/services"
	"github.com/SscSPs/book_catalog_api/internal/utils"
)

// OAuthStateTTL bounds how long a user may take on the provider's consent page.
const OAuthStateTTL = 10 * time.Minute

type oauthStateService struct {
	secret string
	ttl    time.Duration
}

// NewOAuthStateService signs OAuth states with secret.
func NewOAuthStateService(secret string) portssvc.OAuthStateSvc {
	return &oauthStateService{secret: secret, ttl: OAuthStateTTL}
}

func (s *oauthStateService) Issue(provider domain.AuthProvider) (string, string, error) {
	nonce, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate state nonce for OAuth: %w", err)
	}
	state, err := utils.GenerateStateJWT(string(provider), nonce, s.secret, s.ttl)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign OAuth state: %w", err)
	}
	return state, nonce, nil
}

func (s *oauthStateService) Verify(provider domain.AuthProvider, state, nonce string) error {
	if state == "" {
		return apperrors.NewUnauthorizedError("missing OAuth state")
	}
	if _, err := utils.ParseAndValidateStateJWT(state, nonce, string(provider), s.secret); err != nil {
		return apperrors.NewAppError(apperrors.KindUnauthenticated, "invalid OAuth state", err)
	}
	return nil
}
