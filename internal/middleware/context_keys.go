package middleware

import (
	"context"
	"log/slog"

	"github.com/SscSPs/book_catalog_api/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userKey is the key used to store the authenticated user.
const userKey = contextKey("user")

// SetCurrentUser marks the request as authenticated by user and tags the
// request logger with the user id.
func SetCurrentUser(c *gin.Context, user *domain.User) {
	c.Set(string(userKey), user)
	c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), userKey, user))
	SetLogger(c, GetLoggerFromContext(c).With(slog.String("user_id", user.UserID)))
}

// GetCurrentUser returns the authenticated user, if any.
func GetCurrentUser(c *gin.Context) (*domain.User, bool) {
	if val, exists := c.Get(string(userKey)); exists {
		if user, ok := val.(*domain.User); ok && user != nil {
			return user, true
		}
	}
	// check in the request context as well
	if user, ok := c.Request.Context().Value(userKey).(*domain.User); ok && user != nil {
		return user, true
	}
	return nil, false
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	user, ok := GetCurrentUser(c)
	if !ok {
		return "", false
	}
	return user.UserID, true
}
