package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/book_catalog_api/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// NewMemoryRateLimiter builds an in-process limiter from a formatted rate such as "10-M".
func NewMemoryRateLimiter(formatted string) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", formatted, err)
	}
	return limiter.New(memory.NewStore(), rate), nil
}

// RateLimit limits requests per client IP. The X-RateLimit-* headers are set
// by the limiter driver; errors and rejections use the API error body.
func RateLimit(limiterInstance *limiter.Limiter) gin.HandlerFunc {
	return limitergin.NewMiddleware(limiterInstance,
		limitergin.WithErrorHandler(func(c *gin.Context, err error) {
			GetLoggerFromContext(c).Error("Failed to get rate limit context", slog.String("ip", c.ClientIP()), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error:   "Server Error",
				Message: "An unexpected error occurred",
			})
		}),
		limitergin.WithLimitReachedHandler(func(c *gin.Context) {
			GetLoggerFromContext(c).Warn("Rate limit exceeded", slog.String("ip", c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error:   "Too Many Requests",
				Message: "Too many requests. Please try again later.",
			})
		}),
	)
}
