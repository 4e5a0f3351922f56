package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/book_catalog_api/internal/apperrors"
	"github.com/SscSPs/book_catalog_api/internal/dto"
	"github.com/SscSPs/book_catalog_api/internal/middleware"
	"github.com/SscSPs/book_catalog_api/internal/utils/validation"
	"github.com/gin-gonic/gin"
)

// errorTitles maps each error kind to the "error" field of the response body.
var errorTitles = map[apperrors.Kind]string{
	apperrors.KindValidation:         "Validation Error",
	apperrors.KindDuplicate:          "Duplicate Error",
	apperrors.KindMalformedID:        "Invalid Identifier",
	apperrors.KindNotFound:           "Not Found",
	apperrors.KindUnauthenticated:    "Unauthorized",
	apperrors.KindInvalidCredentials: "Invalid Credentials",
	apperrors.KindForbidden:          "Forbidden",
}

// respondError writes err as a JSON error body. Errors that are not an
// AppError, and internal AppErrors, are logged and hidden behind a generic 500.
func respondError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromContext(c)

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Kind == apperrors.KindInternal {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Server Error",
			Message: "An unexpected error occurred",
		})
		return
	}

	logger.Info("Request rejected",
		slog.String("action", action),
		slog.String("kind", string(appErr.Kind)),
		slog.String("error", err.Error()))

	body := dto.ErrorResponse{Error: errorTitles[appErr.Kind]}
	if appErr.Kind == apperrors.KindValidation {
		body.Details = appErr.Details
	} else {
		body.Message = appErr.Message
	}
	c.JSON(apperrors.StatusFor(appErr.Kind), body)
}

// bindJSON binds and normalizes the request body into req and answers 400
// with every violation when it does not validate.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindWith(req, validation.JSON); err != nil {
		middleware.GetLoggerFromContext(c).Info("Request body failed validation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Validation Error",
			Details: validation.Messages(err),
		})
		return false
	}
	return true
}

// currentUserID returns the id of the authenticated user. Routes using it sit
// behind RequireAuthenticated, so a miss is answered with 401.
func currentUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized", Message: "Unauthorized access"})
		return "", false
	}
	return userID, true
}
