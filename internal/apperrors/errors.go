package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind identifies the class of an application error. The set is closed: the
// HTTP boundary maps every kind to exactly one status code.
type Kind string

const (
	KindValidation         Kind = "validation"
	KindDuplicate          Kind = "duplicate"
	KindMalformedID        Kind = "malformed_id"
	KindNotFound           Kind = "not_found"
	KindUnauthenticated    Kind = "unauthenticated"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindForbidden          Kind = "forbidden"
	KindInternal           Kind = "internal"
)

// AppError is the error type returned by services and repositories.
type AppError struct {
	Kind    Kind     `json:"-"`
	Code    int      `json:"-"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	Err     error    `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *AppError of the same kind, so that
// errors.Is(err, ErrNotFound) matches any not-found error regardless of message.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels usable with errors.Is.
var (
	ErrValidation         = &AppError{Kind: KindValidation, Code: http.StatusBadRequest, Message: "validation error"}
	ErrDuplicate          = &AppError{Kind: KindDuplicate, Code: http.StatusBadRequest, Message: "resource already exists"}
	ErrMalformedID        = &AppError{Kind: KindMalformedID, Code: http.StatusBadRequest, Message: "malformed identifier"}
	ErrNotFound           = &AppError{Kind: KindNotFound, Code: http.StatusNotFound, Message: "resource not found"}
	ErrUnauthenticated    = &AppError{Kind: KindUnauthenticated, Code: http.StatusUnauthorized, Message: "unauthorized access"}
	ErrInvalidCredentials = &AppError{Kind: KindInvalidCredentials, Code: http.StatusUnauthorized, Message: "Invalid email or password"}
	ErrForbidden          = &AppError{Kind: KindForbidden, Code: http.StatusForbidden, Message: "forbidden"}
	ErrInternal           = &AppError{Kind: KindInternal, Code: http.StatusInternalServerError, Message: "internal server error"}
)

// NewAppError creates an error of the given kind wrapping err.
func NewAppError(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Code: StatusFor(kind), Message: message, Err: err}
}

// NewValidationError reports every failed field at once.
func NewValidationError(details []string) *AppError {
	return &AppError{Kind: KindValidation, Code: http.StatusBadRequest, Message: "validation failed", Details: details}
}

func NewDuplicateError(message string, err error) *AppError {
	return NewAppError(KindDuplicate, message, err)
}

func NewMalformedIDError(message string) *AppError {
	return NewAppError(KindMalformedID, message, nil)
}

func NewNotFoundError(message string) *AppError {
	return NewAppError(KindNotFound, message, nil)
}

func NewForbiddenError(message string) *AppError {
	return NewAppError(KindForbidden, message, nil)
}

func NewUnauthorizedError(message string) *AppError {
	return NewAppError(KindUnauthenticated, message, nil)
}

func NewInternalServerError(message string, err error) *AppError {
	return NewAppError(KindInternal, message, err)
}

// StatusFor maps an error kind to its HTTP status code.
func StatusFor(kind Kind) int {
	switch kind {
	case KindValidation, KindDuplicate, KindMalformedID:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthenticated, KindInvalidCredentials:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// KindOf returns the kind of the first AppError in err's chain, or
// KindInternal when there is none.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
