package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/book_catalog_api/cmd/docs"
	portssvc "github.com/SscSPs/book_catalog_api/internal/core/ports/services"
	"github.com/SscSPs/book_catalog_api/internal/middleware"
	"github.com/SscSPs/book_catalog_api/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter builds the gin engine with the global middleware chain and every route.
func NewRouter(cfg *config.Config, services *portssvc.ServiceContainer, logger *slog.Logger) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	cookie := &middleware.SessionCookie{
		Name:   cfg.SessionCookieName,
		Secret: cfg.SessionSecret,
		TTL:    services.Session.TTL(),
		Secure: cfg.IsProduction,
	}

	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		middleware.Recovery(),
		middleware.SecurityHeaders(),
		cors.New(cors.Config{
			AllowOrigins:     []string{cfg.CORSAllowedOrigin},
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
			ExposeHeaders:    []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		middleware.SessionMiddleware(services.Session, cookie),
	)

	if err := RegisterRoutes(r, cfg, services, cookie); err != nil {
		return nil, err
	}
	return r, nil
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	cookie *middleware.SessionCookie,
) error {
	r.GET("/health", getHealth)
	r.GET("/", getHome)

	credentialLimiter, err := middleware.NewMemoryRateLimiter(cfg.AuthRateLimit)
	if err != nil {
		return err
	}

	authH := newAuthHandler(services.Identity, services.Session, cookie)
	auth := registerAuthRoutes(r, authH, middleware.RateLimit(credentialLimiter))
	registerOAuthRoutes(auth, services, authH, cfg.OAuthSuccessRedirect, cfg.OAuthFailureRedirect, cfg.IsProduction)

	// Every catalog route requires a session.
	protected := r.Group("", middleware.RequireAuthenticated())
	registerBookRoutes(protected, services.Book)
	registerReviewRoutes(protected, services.Review)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupSwaggerRoutes serves the API documentation under /api-docs.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if !cfg.EnableAPIDocs {
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	r.GET("/api-docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/api-docs/index.html")
	})
	r.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
