package services

import (
	"context"

	"github.com/SscSPs/book_catalog_api/internal/core/domain"
	"github.com/SscSPs/book_catalog_api/internal/dto"
)

// ReviewReaderSvc defines read operations for reviews
type ReviewReaderSvc interface {
	ListReviews(ctx context.Context) ([]domain.Review, error)
	GetReviewByID(ctx context.Context, reviewID string) (*domain.Review, error)
}

// ReviewWriterSvc defines write operations for reviews
type ReviewWriterSvc interface {
	// CreateReview records a review by userID.
	CreateReview(ctx context.Context, userID string, req dto.ReviewRequest) (*domain.Review, error)

	// AuthorizeMutation returns the review if userID wrote it and apperrors.ErrForbidden otherwise.
	AuthorizeMutation(ctx context.Context, reviewID, userID string) (*domain.Review, error)

	UpdateReview(ctx context.Context, reviewID, userID string, req dto.ReviewRequest) (*domain.Review, error)
	DeleteReview(ctx context.Context, reviewID, userID string) (*domain.Review, error)

	// MarkHelpful adds a helpful vote. Any authenticated user may vote.
	MarkHelpful(ctx context.Context, reviewID string) (*domain.Review, error)
}

// ReviewSvcFacade combines all review-related service interfaces
type ReviewSvcFacade interface {
	ReviewReaderSvc
	ReviewWriterSvc
}
