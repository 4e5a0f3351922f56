package repositories

import (
	"context"

	"github.com/SscSPs/book_catalog_api/internal/core/domain"
)

// ReviewReader defines read operations for reviews. Returned reviews carry
// the book title and author display name.
type ReviewReader interface {
	// FindReviews returns every review, newest first.
	FindReviews(ctx context.Context) ([]domain.Review, error)
	FindReviewByID(ctx context.Context, reviewID string) (*domain.Review, error)
}

// ReviewWriter defines write operations for reviews.
type ReviewWriter interface {
	SaveReview(ctx context.Context, review domain.Review) error
	UpdateReview(ctx context.Context, review domain.Review) error
	DeleteReview(ctx context.Context, reviewID string) (*domain.Review, error)
	// IncrementHelpfulVotes atomically adds one helpful vote.
	IncrementHelpfulVotes(ctx context.Context, reviewID string) error
}

// ReviewRepositoryFacade combines all review-related repository interfaces
type ReviewRepositoryFacade interface {
	ReviewReader
	ReviewWriter
}
