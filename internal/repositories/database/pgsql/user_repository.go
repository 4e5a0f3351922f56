package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/book_catalog_api/internal/apperrors"
	"github.com/SscSPs/book_catalog_api/internal/core/domain"
	portsrepo "github.com/SscSPs/book_catalog_api/internal/core/ports/repositories"
	"github.com/SscSPs/book_catalog_api/internal/models"
	"github.com/SscSPs/book_catalog_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, email, password_hash, display_name, google_id, github_id, profile_picture,
	role, is_active, last_login_at, created_at, updated_at`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// providerColumn returns the column holding the identifier for provider.
func providerColumn(provider domain.AuthProvider) (string, error) {
	switch provider {
	case domain.ProviderGoogle:
		return "google_id", nil
	case domain.ProviderGitHub:
		return "github_id", nil
	default:
		return "", fmt.Errorf("unsupported auth provider %q", provider)
	}
}

func (r *PgxUserRepository) findOne(ctx context.Context, where string, args ...any) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	modelUser, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, translateError(err, "failed to scan user")
	}
	domainUser := mapping.ToDomainUser(modelUser)
	return &domainUser, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, `id = $1`, userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, `email = $1`, email)
}

func (r *PgxUserRepository) FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	column, err := providerColumn(provider)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, column+` = $1`, providerUserID)
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (id, email, password_hash, display_name, google_id, github_id, profile_picture,
			role, is_active, last_login_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Email,
		m.PasswordHash,
		m.DisplayName,
		m.GoogleID,
		m.GitHubID,
		m.ProfilePicture,
		m.Role,
		m.IsActive,
		m.LastLoginAt,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return translateError(err, "failed to save user "+m.UserID)
	}
	return nil
}

func (r *PgxUserRepository) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	cmdTag, err := r.Pool.Exec(ctx, `UPDATE users SET last_login_at = $1, updated_at = $1 WHERE id = $2;`, at, userID)
	if err != nil {
		return translateError(err, "failed to update last login")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// LinkProviderID locks the user row so that two concurrent callbacks cannot
// both claim the same empty slot.
func (r *PgxUserRepository) LinkProviderID(ctx context.Context, userID string, provider domain.AuthProvider, providerUserID string, at time.Time) (*domain.User, error) {
	column, err := providerColumn(provider)
	if err != nil {
		return nil, err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var current *string
	err = tx.QueryRow(ctx, `SELECT `+column+` FROM users WHERE id = $1 FOR UPDATE;`, userID).Scan(&current)
	if err != nil {
		return nil, translateError(err, "failed to lock user")
	}
	if current != nil && *current != "" && *current != providerUserID {
		return nil, apperrors.NewDuplicateError("a different "+string(provider)+" account is already linked", nil)
	}

	rows, err := tx.Query(ctx,
		`UPDATE users SET `+column+` = $1, last_login_at = $2, updated_at = $2 WHERE id = $3 RETURNING `+userColumns+`;`,
		providerUserID, at, userID)
	if err != nil {
		return nil, translateError(err, "failed to link provider")
	}
	modelUser, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, translateError(err, "failed to link provider")
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	domainUser := mapping.ToDomainUser(modelUser)
	return &domainUser, nil
}
