package mapping

import (
	"github.com/SscSPs/book_catalog_api/internal/core/domain"
	"github.com/SscSPs/book_catalog_api/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:         d.UserID,
		Email:          d.Email,
		PasswordHash:   d.PasswordHash,
		DisplayName:    d.DisplayName,
		GoogleID:       d.GoogleID,
		GitHubID:       d.GitHubID,
		ProfilePicture: d.ProfilePicture,
		Role:           string(d.Role),
		IsActive:       d.IsActive,
		LastLoginAt:    d.LastLoginAt,
		Timestamps:     ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:         m.UserID,
		Email:          m.Email,
		PasswordHash:   m.PasswordHash,
		DisplayName:    m.DisplayName,
		GoogleID:       m.GoogleID,
		GitHubID:       m.GitHubID,
		ProfilePicture: m.ProfilePicture,
		Role:           domain.UserRole(m.Role),
		IsActive:       m.IsActive,
		LastLoginAt:    m.LastLoginAt,
		Timestamps:     ToDomainTimestamps(m.Timestamps),
	}
}
