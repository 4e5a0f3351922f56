package pgsql

import (
	portsrepo "github.com/SscSPs/book_catalog_api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds the relational repositories. The session
// repository lives in Redis and is attached by the caller.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:   newPgxUserRepository(dbPool),
		BookRepo:   newPgxBookRepository(dbPool),
		ReviewRepo: newPgxReviewRepository(dbPool),
	}
}
