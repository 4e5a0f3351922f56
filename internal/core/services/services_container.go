package services

import (
	portsrepo "github.com/SscSPs/book_catalog_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/book_catalog_api/internal/core/ports/services"
	"github.com/SscSPs/book_catalog_api/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Identity = NewIdentityService(repos.UserRepo)
	container.Session = NewSessionService(repos.SessionRepo, container.Identity, cfg.SessionTTL)
	container.Book = NewBookService(repos.BookRepo)
	container.Review = NewReviewService(repos.ReviewRepo, repos.BookRepo)

	// OAuth providers are fixed at startup from validated configuration.
	container.OAuthState = NewOAuthStateService(cfg.SessionSecret)
	container.OAuthProviders = NewOAuthProviders(cfg)

	return container
}
