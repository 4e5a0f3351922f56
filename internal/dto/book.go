package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/book_catalog_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

func init() {
	// Ratings are rendered as JSON numbers, e.g. "rating": 4.5.
	decimal.MarshalJSONWithoutQuotes = true
}

// BookRequest is the payload of POST /books and PUT /books/:id.
// Updates replace the whole record, so every required field must be sent.
type BookRequest struct {
	Title         string           `json:"title" binding:"required,max=200"`
	Author        string           `json:"author" binding:"required,max=200"`
	PublishedYear int              `json:"publishedYear" binding:"required,gte=1000,notfutureyear"`
	Genre         string           `json:"genre" binding:"required,max=100"`
	ISBN          string           `json:"isbn" binding:"required,max=20,isbn"`
	Rating        *decimal.Decimal `json:"rating" binding:"omitempty,gte=0,lte=5"`
	Summary       string           `json:"summary" binding:"required,min=10,max=2000"`
}

// Normalize trims surrounding whitespace so length rules apply to the stored text.
func (r *BookRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Author = strings.TrimSpace(r.Author)
	r.Genre = strings.TrimSpace(r.Genre)
	r.ISBN = strings.TrimSpace(r.ISBN)
	r.Summary = strings.TrimSpace(r.Summary)
}

// BookResponse defines the data returned for a book.
type BookResponse struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Author        string          `json:"author"`
	PublishedYear int             `json:"publishedYear"`
	Genre         string          `json:"genre"`
	ISBN          string          `json:"isbn"`
	Rating        decimal.Decimal `json:"rating" swaggertype:"number"`
	Summary       string          `json:"summary"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ToBookResponse converts a domain.Book to BookResponse DTO
func ToBookResponse(b *domain.Book) BookResponse {
	return BookResponse{
		ID:            b.BookID,
		Title:         b.Title,
		Author:        b.Author,
		PublishedYear: b.PublishedYear,
		Genre:         b.Genre,
		ISBN:          b.ISBN,
		Rating:        b.Rating,
		Summary:       b.Summary,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// ToBookListResponse converts a slice of domain.Book, never returning nil.
func ToBookListResponse(books []domain.Book) []BookResponse {
	resp := make([]BookResponse, len(books))
	for i := range books {
		resp[i] = ToBookResponse(&books[i])
	}
	return resp
}
