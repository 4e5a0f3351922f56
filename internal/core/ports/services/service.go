package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Identity   IdentitySvcFacade
	Session    SessionSvcFacade
	Book       BookSvcFacade
	Review     ReviewSvcFacade
	OAuthState OAuthStateSvc
	// OAuthProviders lists the providers enabled by configuration.
	OAuthProviders []OAuthProvider
}
