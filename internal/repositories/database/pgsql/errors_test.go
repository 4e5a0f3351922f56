package pgsql

import (
	"errors"
	"testing"

	"github.com/SscSPs/book_catalog_api/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind apperrors.Kind
		wantMsg  string
	}{
		{
			name:     "no rows",
			err:      pgx.ErrNoRows,
			wantKind: apperrors.KindNotFound,
		},
		{
			name:     "duplicate isbn",
			err:      &pgconn.PgError{Code: "23505", ConstraintName: "books_isbn_normalized_key"},
			wantKind: apperrors.KindDuplicate,
			wantMsg:  "A book with this ISBN already exists",
		},
		{
			name:     "duplicate email",
			err:      &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			wantKind: apperrors.KindDuplicate,
			wantMsg:  "Email already registered",
		},
		{
			name:     "missing foreign row",
			err:      &pgconn.PgError{Code: "23503", ConstraintName: "reviews_book_id_fkey"},
			wantKind: apperrors.KindNotFound,
		},
		{
			name:     "bad uuid text",
			err:      &pgconn.PgError{Code: "22P02"},
			wantKind: apperrors.KindMalformedID,
		},
		{
			name:     "anything else",
			err:      errors.New("connection reset"),
			wantKind: apperrors.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.err, "op")
			assert.Equal(t, tt.wantKind, apperrors.KindOf(got))
			if tt.wantMsg != "" {
				var appErr *apperrors.AppError
				if assert.ErrorAs(t, got, &appErr) {
					assert.Equal(t, tt.wantMsg, appErr.Message)
				}
			}
		})
	}
}

func TestTranslateError_WrapsUnknown(t *testing.T) {
	cause := errors.New("boom")
	got := translateError(cause, "failed to save book")
	assert.ErrorIs(t, got, cause)
	assert.Equal(t, "failed to save book: boom", got.Error())
	assert.NoError(t, translateError(nil, "op"))
}

func TestProviderColumn(t *testing.T) {
	col, err := providerColumn("google")
	assert.NoError(t, err)
	assert.Equal(t, "google_id", col)

	_, err = providerColumn("gitlab")
	assert.Error(t, err)
}
