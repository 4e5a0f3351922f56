package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/book_catalog_api/internal/core/domain"
)

// ReviewRequest is the payload of POST /reviews and PUT /reviews/:id.
type ReviewRequest struct {
	BookID             string `json:"bookId" binding:"required"`
	Rating             int    `json:"rating" binding:"required,min=1,max=5"`
	Title              string `json:"title" binding:"required,min=3,max=100"`
	Content            string `json:"content" binding:"required,min=10,max=1000"`
	IsVerifiedPurchase *bool  `json:"isVerifiedPurchase"`
}

// Normalize trims the free-text fields.
func (r *ReviewRequest) Normalize() {
	r.BookID = strings.TrimSpace(r.BookID)
	r.Title = strings.TrimSpace(r.Title)
	r.Content = strings.TrimSpace(r.Content)
}

// BookRef is the embedded summary of a reviewed book.
type BookRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// UserRef is the embedded summary of a review author.
type UserRef struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// ReviewResponse defines the data returned for a review.
type ReviewResponse struct {
	ID                 string    `json:"id"`
	Book               BookRef   `json:"book"`
	User               UserRef   `json:"user"`
	Rating             int       `json:"rating"`
	Title              string    `json:"title"`
	Content            string    `json:"content"`
	HelpfulVotes       int       `json:"helpfulVotes"`
	IsVerifiedPurchase bool      `json:"isVerifiedPurchase"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// ToReviewResponse converts a domain.Review to ReviewResponse DTO
func ToReviewResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:                 r.ReviewID,
		Book:               BookRef{ID: r.BookID, Title: r.BookTitle},
		User:               UserRef{ID: r.AuthorID, DisplayName: r.AuthorDisplayName},
		Rating:             r.Rating,
		Title:              r.Title,
		Content:            r.Content,
		HelpfulVotes:       r.HelpfulVotes,
		IsVerifiedPurchase: r.IsVerifiedPurchase,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

// ToReviewListResponse converts a slice of domain.Review, never returning nil.
func ToReviewListResponse(reviews []domain.Review) []ReviewResponse {
	resp := make([]ReviewResponse, len(reviews))
	for i := range reviews {
		resp[i] = ToReviewResponse(&reviews[i])
	}
	return resp
}
