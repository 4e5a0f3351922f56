package domain

import (
	"errors"
	"time"
)

// UserRole is the authorization role of a user.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// AuthProvider identifies an external identity provider.
type AuthProvider string

const (
	ProviderGoogle AuthProvider = "google"
	ProviderGitHub AuthProvider = "github"
)

// ErrNoCredential is returned when a user would have neither a password nor an OAuth identifier.
var ErrNoCredential = errors.New("user must have a password hash or an OAuth identifier")

// User represents an identity of the application.
type User struct {
	UserID         string     `json:"id"`
	Email          string     `json:"email"`
	PasswordHash   *string    `json:"-"`
	DisplayName    string     `json:"displayName"`
	GoogleID       *string    `json:"-"`
	GitHubID       *string    `json:"-"`
	ProfilePicture *string    `json:"profilePicture,omitempty"`
	Role           UserRole   `json:"role"`
	IsActive       bool       `json:"isActive"`
	LastLoginAt    *time.Time `json:"lastLoginAt,omitempty"`
	Timestamps
}

// ProviderID returns the user's identifier at provider, if any.
func (u *User) ProviderID(provider AuthProvider) (string, bool) {
	var id *string
	switch provider {
	case ProviderGoogle:
		id = u.GoogleID
	case ProviderGitHub:
		id = u.GitHubID
	}
	if id == nil || *id == "" {
		return "", false
	}
	return *id, true
}

// SetProviderID records the identifier at provider.
func (u *User) SetProviderID(provider AuthProvider, providerUserID string) {
	id := providerUserID
	switch provider {
	case ProviderGoogle:
		u.GoogleID = &id
	case ProviderGitHub:
		u.GitHubID = &id
	}
}

// HasPassword reports whether the user can log in with local credentials.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// CheckCredentialInvariant verifies that the user has at least one way to authenticate.
func (u *User) CheckCredentialInvariant() error {
	if u.HasPassword() {
		return nil
	}
	if _, ok := u.ProviderID(ProviderGoogle); ok {
		return nil
	}
	if _, ok := u.ProviderID(ProviderGitHub); ok {
		return nil
	}
	return ErrNoCredential
}

// Getters used by response mappers.
func (u *User) GetUserID() string      { return u.UserID }
func (u *User) GetEmail() string       { return u.Email }
func (u *User) GetDisplayName() string { return u.DisplayName }

// OAuthProfile is the subset of a provider's user profile used to resolve an identity.
type OAuthProfile struct {
	Provider       AuthProvider
	ProviderUserID string
	Email          string
	DisplayName    string
	Username       string
	AvatarURL      string
}
