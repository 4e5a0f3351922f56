package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/book_catalog_api/internal/dto"
	"github.com/gin-gonic/gin"
)

// Recovery turns panics into the generic server error body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		GetLoggerFromContext(c).Error("Panic recovered", slog.String("panic", fmt.Sprint(recovered)))
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Server Error",
			Message: "An unexpected error occurred",
		})
	})
}
