package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/SscSPs/book_catalog_api/internal/apperrors"
	"github.com/SscSPs/book_catalog_api/internal/core/domain"
	portsrepo "github.com/SscSPs/book_catalog_api/internal/core/ports/repositories"
	"github.com/SscSPs/book_catalog_api/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memBookRepository keeps books in a map. Records are copied in and out so
// callers cannot alias stored state.
type memBookRepository struct {
	mu    sync.Mutex
	books map[string]domain.Book
}

func newMemBookRepository() *memBookRepository {
	return &memBookRepository{books: map[string]domain.Book{}}
}

var _ portsrepo.BookRepositoryFacade = (*memBookRepository)(nil)

func (r *memBookRepository) FindBooks(ctx context.Context) ([]domain.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Book, 0, len(r.books))
	for _, b := range r.books {
		out = append(out, b)
	}
	return out, nil
}

func (r *memBookRepository) FindBookByID(ctx context.Context, bookID string) (*domain.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[bookID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &b, nil
}

func (r *memBookRepository) SaveBook(ctx context.Context, book domain.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.books {
		if domain.NormalizeISBN(b.ISBN) == domain.NormalizeISBN(book.ISBN) {
			return apperrors.NewDuplicateError("A book with this ISBN already exists", nil)
		}
	}
	r.books[book.BookID] = book
	return nil
}

func (r *memBookRepository) UpdateBook(ctx context.Context, book domain.Book) (*domain.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.books[book.BookID]; !ok {
		return nil, apperrors.ErrNotFound
	}
	r.books[book.BookID] = book
	return &book, nil
}

func (r *memBookRepository) DeleteBook(ctx context.Context, bookID string) (*domain.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[bookID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	delete(r.books, bookID)
	return &b, nil
}

func TestBookService_CreateThenGetReturnsIdenticalRecord(t *testing.T) {
	ctx := context.Background()
	svc := services.NewBookService(newMemBookRepository())

	req := duneRequest()
	rating := decimal.RequireFromString("4.25")
	req.Rating = &rating

	created, err := svc.CreateBook(ctx, req)
	require.NoError(t, err)

	fetched, err := svc.GetBookByID(ctx, created.BookID)
	require.NoError(t, err)

	assert.Equal(t, *created, *fetched)
	assert.Equal(t, "Dune", fetched.Title)
	assert.True(t, rating.Equal(fetched.Rating))

	_, err = svc.CreateBook(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}
