package repositories

import (
	"context"

	"github.com/SscSPs/book_catalog_api/internal/core/domain"
)

// BookReader defines read operations for the catalog.
type BookReader interface {
	// FindBooks returns every book, newest first.
	FindBooks(ctx context.Context) ([]domain.Book, error)
	FindBookByID(ctx context.Context, bookID string) (*domain.Book, error)
}

// BookWriter defines write operations for the catalog.
type BookWriter interface {
	SaveBook(ctx context.Context, book domain.Book) error
	// UpdateBook overwrites every mutable column and returns the stored row.
	UpdateBook(ctx context.Context, book domain.Book) (*domain.Book, error)
	// DeleteBook removes the book and returns what was deleted.
	DeleteBook(ctx context.Context, bookID string) (*domain.Book, error)
}

// BookRepositoryFacade combines all book-related repository interfaces
type BookRepositoryFacade interface {
	BookReader
	BookWriter
}
