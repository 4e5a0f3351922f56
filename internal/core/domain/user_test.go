package domain_test

import (
	"testing"

	"github.com/SscSPs/book_catalog_api/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestUser_CheckCredentialInvariant(t *testing.T) {
	tests := []struct {
		name    string
		user    domain.User
		wantErr bool
	}{
		{
			name:    "password only",
			user:    domain.User{PasswordHash: stringPtr("$2a$10$hash")},
			wantErr: false,
		},
		{
			name:    "google only",
			user:    domain.User{GoogleID: stringPtr("g-123")},
			wantErr: false,
		},
		{
			name:    "github only",
			user:    domain.User{GitHubID: stringPtr("42")},
			wantErr: false,
		},
		{
			name:    "empty password and no providers",
			user:    domain.User{PasswordHash: stringPtr("")},
			wantErr: true,
		},
		{
			name:    "nothing at all",
			user:    domain.User{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.CheckCredentialInvariant()
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrNoCredential)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUser_ProviderID(t *testing.T) {
	u := domain.User{}
	_, ok := u.ProviderID(domain.ProviderGitHub)
	assert.False(t, ok)

	u.SetProviderID(domain.ProviderGitHub, "1234")
	id, ok := u.ProviderID(domain.ProviderGitHub)
	assert.True(t, ok)
	assert.Equal(t, "1234", id)

	_, ok = u.ProviderID(domain.ProviderGoogle)
	assert.False(t, ok)
}

func TestNormalizeISBN(t *testing.T) {
	assert.Equal(t, "9780441172719", domain.NormalizeISBN("978-0-441-17271-9"))
	assert.Equal(t, "9780441172719", domain.NormalizeISBN("978 0 441 17271 9"))
	assert.Equal(t, "080442957X", domain.NormalizeISBN("0-8044-2957-x"))
}

func TestReview_IsAuthoredBy(t *testing.T) {
	r := domain.Review{AuthorID: "u1"}
	assert.True(t, r.IsAuthoredBy("u1"))
	assert.False(t, r.IsAuthoredBy("u2"))
	assert.False(t, r.IsAuthoredBy(""))
}

func stringPtr(s string) *string {
	return &s
}
