package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/book_catalog_api/internal/apperrors"
	"github.com/SscSPs/book_catalog_api/internal/core/domain"
	portsrepo "github.com/SscSPs/book_catalog_api/internal/core/ports/repositories"
	"github.com/SscSPs/book_catalog_api/internal/models"
	"github.com/SscSPs/book_catalog_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reviewSelect joins the book title and author name that responses embed.
const reviewSelect = `
	SELECT r.id, r.book_id, r.user_id, r.rating, r.title, r.content, r.helpful_votes, r.is_verified_purchase,
		b.title AS book_title, u.display_name AS user_display_name, r.created_at, r.updated_at
	FROM reviews r
	JOIN books b ON b.id = r.book_id
	JOIN users u ON u.id = r.user_id`

type PgxReviewRepository struct {
	BaseRepository
}

func newPgxReviewRepository(db *pgxpool.Pool) portsrepo.ReviewRepositoryFacade {
	return &PgxReviewRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ReviewRepositoryFacade = (*PgxReviewRepository)(nil)

func (r *PgxReviewRepository) FindReviews(ctx context.Context) ([]domain.Review, error) {
	rows, err := r.Pool.Query(ctx, reviewSelect+` ORDER BY r.created_at DESC, r.id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	modelReviews, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Review])
	if err != nil {
		return nil, fmt.Errorf("failed to scan review rows: %w", err)
	}
	return mapping.ToDomainReviewSlice(modelReviews), nil
}

func (r *PgxReviewRepository) FindReviewByID(ctx context.Context, reviewID string) (*domain.Review, error) {
	rows, err := r.Pool.Query(ctx, reviewSelect+` WHERE r.id = $1;`, reviewID)
	if err != nil {
		return nil, translateError(err, "failed to find review "+reviewID)
	}
	modelReview, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Review])
	if err != nil {
		return nil, translateError(err, "failed to find review "+reviewID)
	}
	domainReview := mapping.ToDomainReview(modelReview)
	return &domainReview, nil
}

func (r *PgxReviewRepository) SaveReview(ctx context.Context, review domain.Review) error {
	m := mapping.ToModelReview(review)
	query := `
		INSERT INTO reviews (id, book_id, user_id, rating, title, content, helpful_votes, is_verified_purchase, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ReviewID,
		m.BookID,
		m.UserID,
		m.Rating,
		m.Title,
		m.Content,
		m.HelpfulVotes,
		m.IsVerifiedPurchase,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return translateError(err, "failed to save review "+m.ReviewID)
	}
	return nil
}

// UpdateReview never touches user_id; authorship is fixed at creation.
func (r *PgxReviewRepository) UpdateReview(ctx context.Context, review domain.Review) error {
	m := mapping.ToModelReview(review)
	query := `
		UPDATE reviews
		SET book_id = $1, rating = $2, title = $3, content = $4, is_verified_purchase = $5, updated_at = $6
		WHERE id = $7;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.BookID,
		m.Rating,
		m.Title,
		m.Content,
		m.IsVerifiedPurchase,
		m.UpdatedAt,
		m.ReviewID,
	)
	if err != nil {
		return translateError(err, "failed to update review "+m.ReviewID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxReviewRepository) DeleteReview(ctx context.Context, reviewID string) (*domain.Review, error) {
	var deleted domain.Review
	err := r.Pool.QueryRow(ctx,
		`DELETE FROM reviews WHERE id = $1 RETURNING id, book_id, user_id, title;`, reviewID,
	).Scan(&deleted.ReviewID, &deleted.BookID, &deleted.AuthorID, &deleted.Title)
	if err != nil {
		return nil, translateError(err, "failed to delete review "+reviewID)
	}
	return &deleted, nil
}

func (r *PgxReviewRepository) IncrementHelpfulVotes(ctx context.Context, reviewID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `UPDATE reviews SET helpful_votes = helpful_votes + 1 WHERE id = $1;`, reviewID)
	if err != nil {
		return translateError(err, "failed to vote on review "+reviewID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
