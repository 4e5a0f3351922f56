package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/book_catalog_api/internal/apperrors"
	"github.com/SscSPs/book_catalog_api/internal/core/domain"
	portsrepo "github.com/SscSPs/book_catalog_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/book_catalog_api/internal/core/ports/services"
	"github.com/SscSPs/book_catalog_api/internal/utils"
)

type sessionService struct {
	BaseService
	sessionRepo portsrepo.SessionRepository
	users       portssvc.IdentityReaderSvc
	ttl         time.Duration
}

// NewSessionService creates a session manager storing tokens in sessionRepo.
func NewSessionService(sessionRepo portsrepo.SessionRepository, users portssvc.IdentityReaderSvc, ttl time.Duration) portssvc.SessionSvcFacade {
	return &sessionService{sessionRepo: sessionRepo, users: users, ttl: ttl}
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

func (s *sessionService) TTL() time.Duration {
	return s.ttl
}

func (s *sessionService) Serialize(ctx context.Context, user *domain.User) (string, error) {
	token, err := utils.GenerateSecureRandomString(utils.SessionTokenBytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	if err := s.sessionRepo.CreateSession(ctx, token, user.UserID, s.ttl); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return token, nil
}

func (s *sessionService) Deserialize(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.sessionRepo.FindSessionUserID(ctx, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrMalformedID) {
			s.LogInfo(ctx, "Dropping session of unknown user", slog.String("user_id", userID))
			s.dropSession(ctx, token)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	if !user.IsActive {
		s.dropSession(ctx, token)
		return nil, nil
	}
	return user, nil
}

func (s *sessionService) Invalidate(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessionRepo.DeleteSession(ctx, token); err != nil {
		return fmt.Errorf("failed to invalidate session: %w", err)
	}
	return nil
}

func (s *sessionService) dropSession(ctx context.Context, token string) {
	if err := s.sessionRepo.DeleteSession(ctx, token); err != nil {
		s.LogError(ctx, err, "Failed to delete stale session")
	}
}
