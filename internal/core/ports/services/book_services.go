package services

import (
	"context"

	"github.com/SscSPs/book_catalog_api/internal/core/domain"
	"github.com/SscSPs/book_catalog_api/internal/dto"
)

// BookReaderSvc defines read operations for books
type BookReaderSvc interface {
	ListBooks(ctx context.Context) ([]domain.Book, error)
	GetBookByID(ctx context.Context, bookID string) (*domain.Book, error)
}

// BookWriterSvc defines write operations for books. Any authenticated user
// may call them.
type BookWriterSvc interface {
	CreateBook(ctx context.Context, req dto.BookRequest) (*domain.Book, error)
	UpdateBook(ctx context.Context, bookID string, req dto.BookRequest) (*domain.Book, error)
	DeleteBook(ctx context.Context, bookID string) (*domain.Book, error)
}

// BookSvcFacade combines all book-related service interfaces
type BookSvcFacade interface {
	BookReaderSvc
	BookWriterSvc
}
