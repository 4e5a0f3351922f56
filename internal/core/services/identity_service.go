package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/book_catalog_api/internal/apperrors"
	"github.com/SscSPs/book_catalog_api/internal/core/domain"
	portsrepo "github.com/SscSPs/book_catalog_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/book_catalog_api/internal/core/ports/services"
	"github.com/SscSPs/book_catalog_api/internal/dto"
	"github.com/SscSPs/book_catalog_api/internal/utils"
	"github.com/google/uuid"
)

type identityService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewIdentityService creates the service that resolves local and OAuth identities.
func NewIdentityService(userRepo portsrepo.UserRepositoryFacade) portssvc.IdentitySvcFacade {
	return &identityService{userRepo: userRepo}
}

var _ portssvc.IdentitySvcFacade = (*identityService)(nil)

func (s *identityService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	id, err := parseID(userID, "user")
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	return user, nil
}

func (s *identityService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	email := normalizeEmail(req.Email)

	_, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return nil, apperrors.NewDuplicateError("Email already registered", nil)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        email,
		PasswordHash: &hash,
		DisplayName:  req.DisplayName,
		Role:         domain.RoleUser,
		IsActive:     true,
		LastLoginAt:  &now,
		Timestamps:   domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := user.CheckCredentialInvariant(); err != nil {
		return nil, apperrors.NewInternalServerError("refusing to create user without credentials", err)
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewDuplicateError("Email already registered", err)
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *identityService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			utils.BurnPasswordCheck(password)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !user.HasPassword() || !user.IsActive {
		utils.BurnPasswordCheck(password)
		return nil, apperrors.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, *user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.touchLastLogin(ctx, user)
	return user, nil
}

func (s *identityService) ResolveOAuth(ctx context.Context, profile domain.OAuthProfile) (*domain.User, error) {
	if profile.ProviderUserID == "" {
		return nil, apperrors.NewValidationError([]string{"provider profile has no user id"})
	}

	user, err := s.userRepo.FindUserByProviderID(ctx, profile.Provider, profile.ProviderUserID)
	if err == nil {
		return s.oauthLogin(ctx, user)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up %s identity: %w", profile.Provider, err)
	}

	email := normalizeEmail(profile.Email)
	if email == "" {
		return nil, apperrors.NewValidationError([]string{"a verified email address is required from the identity provider"})
	}

	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		return s.linkProvider(ctx, existing, profile)
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	return s.createOAuthUser(ctx, email, profile)
}

func (s *identityService) oauthLogin(ctx context.Context, user *domain.User) (*domain.User, error) {
	if !user.IsActive {
		return nil, apperrors.NewForbiddenError("Account is disabled")
	}
	s.touchLastLogin(ctx, user)
	return user, nil
}

func (s *identityService) linkProvider(ctx context.Context, user *domain.User, profile domain.OAuthProfile) (*domain.User, error) {
	if !user.IsActive {
		return nil, apperrors.NewForbiddenError("Account is disabled")
	}
	if linked, ok := user.ProviderID(profile.Provider); ok && linked != profile.ProviderUserID {
		return nil, apperrors.NewDuplicateError("Email is already linked to a different "+string(profile.Provider)+" account", nil)
	}

	linkedUser, err := s.userRepo.LinkProviderID(ctx, user.UserID, profile.Provider, profile.ProviderUserID, s.now())
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewDuplicateError("Email is already linked to a different "+string(profile.Provider)+" account", err)
		}
		return nil, fmt.Errorf("failed to link %s identity: %w", profile.Provider, err)
	}
	s.LogInfo(ctx, "Linked OAuth identity to existing user",
		slog.String("user_id", linkedUser.UserID),
		slog.String("provider", string(profile.Provider)))
	return linkedUser, nil
}

func (s *identityService) createOAuthUser(ctx context.Context, email string, profile domain.OAuthProfile) (*domain.User, error) {
	now := s.now()
	user := domain.User{
		UserID:      uuid.NewString(),
		Email:       email,
		DisplayName: oauthDisplayName(profile, email),
		Role:        domain.RoleUser,
		IsActive:    true,
		LastLoginAt: &now,
		Timestamps:  domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	user.SetProviderID(profile.Provider, profile.ProviderUserID)
	if profile.AvatarURL != "" {
		avatar := profile.AvatarURL
		user.ProfilePicture = &avatar
	}

	err := s.userRepo.SaveUser(ctx, user)
	if err == nil {
		s.LogInfo(ctx, "Created user from OAuth profile",
			slog.String("user_id", user.UserID),
			slog.String("provider", string(profile.Provider)))
		return &user, nil
	}
	if !errors.Is(err, apperrors.ErrDuplicate) {
		return nil, fmt.Errorf("failed to create %s user: %w", profile.Provider, err)
	}

	// A concurrent callback for the same identity won the insert.
	winner, lookupErr := s.userRepo.FindUserByProviderID(ctx, profile.Provider, profile.ProviderUserID)
	if lookupErr != nil {
		return nil, err
	}
	return s.oauthLogin(ctx, winner)
}

func (s *identityService) touchLastLogin(ctx context.Context, user *domain.User) {
	now := s.now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.UserID, now); err != nil {
		s.LogError(ctx, err, "Failed to record last login", slog.String("user_id", user.UserID))
		return
	}
	user.LastLoginAt = &now
}

// maxDisplayNameLen matches users.display_name.
const maxDisplayNameLen = 100

func oauthDisplayName(profile domain.OAuthProfile, email string) string {
	name := strings.TrimSpace(profile.DisplayName)
	if name == "" {
		name = strings.TrimSpace(profile.Username)
	}
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	if runes := []rune(name); len(runes) > maxDisplayNameLen {
		name = strings.TrimSpace(string(runes[:maxDisplayNameLen]))
	}
	return name
}
