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
	"github.com/shopspring/decimal"
)

type bookService struct {
	BaseService
	bookRepo portsrepo.BookRepositoryFacade
}

// NewBookService creates the catalog service.
func NewBookService(bookRepo portsrepo.BookRepositoryFacade) portssvc.BookSvcFacade {
	return &bookService{bookRepo: bookRepo}
}

var _ portssvc.BookSvcFacade = (*bookService)(nil)

func (s *bookService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	books, err := s.bookRepo.FindBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	if books == nil {
		books = []domain.Book{}
	}
	return books, nil
}

func (s *bookService) GetBookByID(ctx context.Context, bookID string) (*domain.Book, error) {
	id, err := parseID(bookID, "book")
	if err != nil {
		return nil, err
	}
	book, err := s.bookRepo.FindBookByID(ctx, id)
	if err != nil {
		return nil, bookError(err, "failed to get book "+id)
	}
	return book, nil
}

func (s *bookService) CreateBook(ctx context.Context, req dto.BookRequest) (*domain.Book, error) {
	now := s.now()
	book := domain.Book{
		BookID:     uuid.NewString(),
		Rating:     decimal.Zero,
		Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	applyBookRequest(&book, req)

	if err := s.bookRepo.SaveBook(ctx, book); err != nil {
		return nil, bookError(err, "failed to create book")
	}
	s.LogInfo(ctx, "Book created", slog.String("book_id", book.BookID))
	return &book, nil
}

// UpdateBook replaces the book's fields. An omitted rating keeps the stored one.
func (s *bookService) UpdateBook(ctx context.Context, bookID string, req dto.BookRequest) (*domain.Book, error) {
	existing, err := s.GetBookByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	book := *existing
	applyBookRequest(&book, req)
	book.Touch(s.now())

	updated, err := s.bookRepo.UpdateBook(ctx, book)
	if err != nil {
		return nil, bookError(err, "failed to update book "+book.BookID)
	}
	return updated, nil
}

func (s *bookService) DeleteBook(ctx context.Context, bookID string) (*domain.Book, error) {
	id, err := parseID(bookID, "book")
	if err != nil {
		return nil, err
	}
	deleted, err := s.bookRepo.DeleteBook(ctx, id)
	if err != nil {
		return nil, bookError(err, "failed to delete book "+id)
	}
	s.LogInfo(ctx, "Book deleted", slog.String("book_id", id))
	return deleted, nil
}

func applyBookRequest(book *domain.Book, req dto.BookRequest) {
	book.Title = req.Title
	book.Author = req.Author
	book.PublishedYear = req.PublishedYear
	book.Genre = req.Genre
	book.ISBN = req.ISBN
	book.Summary = req.Summary
	if req.Rating != nil {
		book.Rating = req.Rating.Round(2)
	}
}

// bookError gives not-found and duplicate errors their public messages and
// wraps everything else.
func bookError(err error, op string) error {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return apperrors.NewNotFoundError("Book not found")
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrMalformedID):
		return err
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
