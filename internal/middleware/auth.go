package middleware

import (
	"net/http"

	"github.com/SscSPs/book_catalog_api/internal/dto"
	"github.com/gin-gonic/gin"
)

// RequireAuthenticated rejects requests without a restored session.
func RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetCurrentUser(c); !ok {
			GetLoggerFromContext(c).Info("Rejected unauthenticated request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:   "Unauthorized",
				Message: "Unauthorized access",
			})
			return
		}
		c.Next()
	}
}
