package models

import (
	"time"
)

// User is a row of the users table.
type User struct {
	UserID         string     `db:"id"`
	Email          string     `db:"email"`
	PasswordHash   *string    `db:"password_hash"`
	DisplayName    string     `db:"display_name"`
	GoogleID       *string    `db:"google_id"`
	GitHubID       *string    `db:"github_id"`
	ProfilePicture *string    `db:"profile_picture"`
	Role           string     `db:"role"`
	IsActive       bool       `db:"is_active"`
	LastLoginAt    *time.Time `db:"last_login_at"`
	Timestamps
}
