package mapping

import (
	"github.com/SscSPs/book_catalog_api/internal/core/domain"
	"github.com/SscSPs/book_catalog_api/internal/models"
)

// ToModelReview converts a domain Review to a model Review
func ToModelReview(d domain.Review) models.Review {
	return models.Review{
		ReviewID:           d.ReviewID,
		BookID:             d.BookID,
		UserID:             d.AuthorID,
		Rating:             d.Rating,
		Title:              d.Title,
		Content:            d.Content,
		HelpfulVotes:       d.HelpfulVotes,
		IsVerifiedPurchase: d.IsVerifiedPurchase,
		BookTitle:          d.BookTitle,
		UserDisplayName:    d.AuthorDisplayName,
		Timestamps:         ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainReview converts a model Review to a domain Review
func ToDomainReview(m models.Review) domain.Review {
	return domain.Review{
		ReviewID:           m.ReviewID,
		BookID:             m.BookID,
		AuthorID:           m.UserID,
		Rating:             m.Rating,
		Title:              m.Title,
		Content:            m.Content,
		HelpfulVotes:       m.HelpfulVotes,
		IsVerifiedPurchase: m.IsVerifiedPurchase,
		BookTitle:          m.BookTitle,
		AuthorDisplayName:  m.UserDisplayName,
		Timestamps:         ToDomainTimestamps(m.Timestamps),
	}
}

// ToDomainReviewSlice converts a slice of model Reviews to a slice of domain Reviews
func ToDomainReviewSlice(ms []models.Review) []domain.Review {
	ds := make([]domain.Review, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReview(m)
	}
	return ds
}
