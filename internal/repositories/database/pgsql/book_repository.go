package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/book_catalog_api/internal/core/domain"
	portsrepo "github.com/SscSPs/book_catalog_api/internal/core/ports/repositories"
	"github.com/SscSPs/book_catalog_api/internal/models"
	"github.com/SscSPs/book_catalog_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookColumns = `id, title, author, published_year, genre, isbn, rating, summary, created_at, updated_at`

type PgxBookRepository struct {
	BaseRepository
}

func newPgxBookRepository(db *pgxpool.Pool) portsrepo.BookRepositoryFacade {
	return &PgxBookRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.BookRepositoryFacade = (*PgxBookRepository)(nil)

func (r *PgxBookRepository) FindBooks(ctx context.Context) ([]domain.Book, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+bookColumns+` FROM books ORDER BY created_at DESC, id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	modelBooks, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Book])
	if err != nil {
		return nil, fmt.Errorf("failed to scan book rows: %w", err)
	}
	return mapping.ToDomainBookSlice(modelBooks), nil
}

func (r *PgxBookRepository) FindBookByID(ctx context.Context, bookID string) (*domain.Book, error) {
	return r.queryOne(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1;`, "failed to find book "+bookID, bookID)
}

func (r *PgxBookRepository) SaveBook(ctx context.Context, book domain.Book) error {
	m := mapping.ToModelBook(book)
	query := `
		INSERT INTO books (id, title, author, published_year, genre, isbn, rating, summary, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BookID,
		m.Title,
		m.Author,
		m.PublishedYear,
		m.Genre,
		m.ISBN,
		m.Rating,
		m.Summary,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return translateError(err, "failed to save book "+m.BookID)
	}
	return nil
}

func (r *PgxBookRepository) UpdateBook(ctx context.Context, book domain.Book) (*domain.Book, error) {
	m := mapping.ToModelBook(book)
	query := `
		UPDATE books
		SET title = $1, author = $2, published_year = $3, genre = $4, isbn = $5, rating = $6, summary = $7, updated_at = $8
		WHERE id = $9
		RETURNING ` + bookColumns + `;
	`
	return r.queryOne(ctx, query, "failed to update book "+m.BookID,
		m.Title,
		m.Author,
		m.PublishedYear,
		m.Genre,
		m.ISBN,
		m.Rating,
		m.Summary,
		m.UpdatedAt,
		m.BookID,
	)
}

func (r *PgxBookRepository) DeleteBook(ctx context.Context, bookID string) (*domain.Book, error) {
	return r.queryOne(ctx, `DELETE FROM books WHERE id = $1 RETURNING `+bookColumns+`;`, "failed to delete book "+bookID, bookID)
}

func (r *PgxBookRepository) queryOne(ctx context.Context, query, op string, args ...any) (*domain.Book, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, op)
	}
	modelBook, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Book])
	if err != nil {
		return nil, translateError(err, op)
	}
	domainBook := mapping.ToDomainBook(modelBook)
	return &domainBook, nil
}
