package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/book_catalog_api/internal/apperrors"
	"github.com/SscSPs/book_catalog_api/internal/core/domain"
	portsrepo "github.com/SscSPs/book_catalog_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/book_catalog_api/internal/core/ports/services"
	"github.com/SscSPs/book_catalog_api/internal/dto"
	"github.com/google/uuid"
)

type reviewService struct {
	BaseService
	reviewRepo portsrepo.ReviewRepositoryFacade
	bookRepo   portsrepo.BookReader
}

// NewReviewService creates the review service. bookRepo is used to check
// that reviewed books exist.
func NewReviewService(reviewRepo portsrepo.ReviewRepositoryFacade, bookRepo portsrepo.BookReader) portssvc.ReviewSvcFacade {
	return &reviewService{reviewRepo: reviewRepo, bookRepo: bookRepo}
}

var _ portssvc.ReviewSvcFacade = (*reviewService)(nil)

func (s *reviewService) ListReviews(ctx context.Context) ([]domain.Review, error) {
	reviews, err := s.reviewRepo.FindReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return reviews, nil
}

func (s *reviewService) GetReviewByID(ctx context.Context, reviewID string) (*domain.Review, error) {
	id, err := parseID(reviewID, "review")
	if err != nil {
		return nil, err
	}
	return s.findReview(ctx, id)
}

func (s *reviewService) CreateReview(ctx context.Context, userID string, req dto.ReviewRequest) (*domain.Review, error) {
	bookID, err := s.requireBook(ctx, req.BookID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	review := domain.Review{
		ReviewID:   uuid.NewString(),
		BookID:     bookID,
		AuthorID:   userID,
		Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	applyReviewRequest(&review, req)

	if err := s.reviewRepo.SaveReview(ctx, review); err != nil {
		return nil, reviewError(err, "failed to create review")
	}
	s.LogInfo(ctx, "Review created", slog.String("review_id", review.ReviewID), slog.String("book_id", bookID))
	return s.findReview(ctx, review.ReviewID)
}

func (s *reviewService) AuthorizeMutation(ctx context.Context, reviewID, userID string) (*domain.Review, error) {
	review, err := s.GetReviewByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if !review.IsAuthoredBy(userID) {
		s.LogInfo(ctx, "Rejected review mutation by non-author",
			slog.String("review_id", review.ReviewID), slog.String("user_id", userID))
		return nil, apperrors.NewForbiddenError("Not authorized to modify this review")
	}
	return review, nil
}

// UpdateReview replaces the editable fields. The author and vote count are kept.
func (s *reviewService) UpdateReview(ctx context.Context, reviewID, userID string, req dto.ReviewRequest) (*domain.Review, error) {
	existing, err := s.AuthorizeMutation(ctx, reviewID, userID)
	if err != nil {
		return nil, err
	}
	bookID, err := s.requireBook(ctx, req.BookID)
	if err != nil {
		return nil, err
	}

	review := *existing
	review.BookID = bookID
	applyReviewRequest(&review, req)
	review.Touch(s.now())

	if err := s.reviewRepo.UpdateReview(ctx, review); err != nil {
		return nil, reviewError(err, "failed to update review "+review.ReviewID)
	}
	return s.findReview(ctx, review.ReviewID)
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID, userID string) (*domain.Review, error) {
	existing, err := s.AuthorizeMutation(ctx, reviewID, userID)
	if err != nil {
		return nil, err
	}
	deleted, err := s.reviewRepo.DeleteReview(ctx, existing.ReviewID)
	if err != nil {
		return nil, reviewError(err, "failed to delete review "+existing.ReviewID)
	}
	s.LogInfo(ctx, "Review deleted", slog.String("review_id", deleted.ReviewID))
	return deleted, nil
}

func (s *reviewService) MarkHelpful(ctx context.Context, reviewID string) (*domain.Review, error) {
	id, err := parseID(reviewID, "review")
	if err != nil {
		return nil, err
	}
	if err := s.reviewRepo.IncrementHelpfulVotes(ctx, id); err != nil {
		return nil, reviewError(err, "failed to vote on review "+id)
	}
	return s.findReview(ctx, id)
}

func (s *reviewService) findReview(ctx context.Context, id string) (*domain.Review, error) {
	review, err := s.reviewRepo.FindReviewByID(ctx, id)
	if err != nil {
		return nil, reviewError(err, "failed to get review "+id)
	}
	return review, nil
}

// requireBook parses bookID and checks that the book exists.
func (s *reviewService) requireBook(ctx context.Context, bookID string) (string, error) {
	id, err := parseID(bookID, "book")
	if err != nil {
		return "", err
	}
	if _, err := s.bookRepo.FindBookByID(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.NewNotFoundError("Book not found")
		}
		return "", fmt.Errorf("failed to check book %s: %w", id, err)
	}
	return id, nil
}

func applyReviewRequest(review *domain.Review, req dto.ReviewRequest) {
	review.Rating = req.Rating
	review.Title = req.Title
	review.Content = req.Content
	if req.IsVerifiedPurchase != nil {
		review.IsVerifiedPurchase = *req.IsVerifiedPurchase
	}
}

func reviewError(err error, op string) error {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return apperrors.NewNotFoundError("Review not found")
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrMalformedID):
		return err
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
