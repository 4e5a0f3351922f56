package pgsql

import (
	"errors"
	"fmt"

	"github.com/SscSPs/book_catalog_api/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes translated into application errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidTextRep      = "22P02"
)

// translateError converts driver errors into apperrors kinds. op describes
// the failed operation and is used for everything that is not recognised.
func translateError(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.NewDuplicateError(duplicateMessage(pgErr.ConstraintName), err)
		case pgForeignKeyViolation:
			return apperrors.NewAppError(apperrors.KindNotFound, "referenced resource not found", err)
		case pgInvalidTextRep:
			return apperrors.NewAppError(apperrors.KindMalformedID, "invalid identifier format", err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func duplicateMessage(constraint string) string {
	switch constraint {
	case "users_email_key":
		return "Email already registered"
	case "books_isbn_normalized_key":
		return "A book with this ISBN already exists"
	case "users_google_id_key", "users_github_id_key":
		return "This account is already linked to another user"
	default:
		return "Resource already exists"
	}
}
