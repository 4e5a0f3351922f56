package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultSessionSecret = "your-secret-key-change-me"

// Provider names recognised for OAuth login.
const (
	ProviderGoogle = "google"
	ProviderGitHub = "github"
)

// OAuthClient holds the credentials of one OAuth provider.
type OAuthClient struct {
	Provider     string
	ClientID     string
	ClientSecret string
}

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	RedisURL      string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	RunMigrations bool
	LogLevel      string

	// Session
	SessionSecret     string
	SessionTTL        time.Duration
	SessionCookieName string

	// BaseURL is used to build OAuth callback URLs.
	BaseURL           string
	CORSAllowedOrigin string

	// External OAuth Providers
	GoogleClientID       string
	GoogleClientSecret   string
	GitHubClientID       string
	GitHubClientSecret   string
	OAuthSuccessRedirect string
	OAuthFailureRedirect string

	// AuthRateLimit uses the limiter format, e.g. "10-M".
	AuthRateLimit string
	EnableAPIDocs bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	v.SetDefault("PORT", "3000")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SESSION_SECRET", defaultSessionSecret)
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("SESSION_COOKIE_NAME", "sid")
	v.SetDefault("BASE_URL", "http://localhost:3000")
	v.SetDefault("CORS_ALLOWED_ORIGIN", "")
	v.SetDefault("GOOGLE_CLIENT_ID", "")
	v.SetDefault("GOOGLE_CLIENT_SECRET", "")
	v.SetDefault("GITHUB_CLIENT_ID", "")
	v.SetDefault("GITHUB_CLIENT_SECRET", "")
	v.SetDefault("OAUTH_SUCCESS_REDIRECT", "/")
	v.SetDefault("OAUTH_FAILURE_REDIRECT", "/login")
	v.SetDefault("AUTH_RATE_LIMIT", "10-M")
	v.SetDefault("ENABLE_API_DOCS", true)

	// Actual environment variables override defaults and .env values.
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:          v.GetString("PGSQL_URL"),
		RedisURL:             v.GetString("REDIS_URL"),
		Port:                 v.GetString("PORT"),
		IsProduction:         v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:        v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:        v.GetBool("RUN_MIGRATIONS"),
		LogLevel:             strings.ToLower(v.GetString("LOG_LEVEL")),
		SessionSecret:        v.GetString("SESSION_SECRET"),
		SessionCookieName:    v.GetString("SESSION_COOKIE_NAME"),
		BaseURL:              strings.TrimRight(v.GetString("BASE_URL"), "/"),
		CORSAllowedOrigin:    v.GetString("CORS_ALLOWED_ORIGIN"),
		GoogleClientID:       v.GetString("GOOGLE_CLIENT_ID"),
		GoogleClientSecret:   v.GetString("GOOGLE_CLIENT_SECRET"),
		GitHubClientID:       v.GetString("GITHUB_CLIENT_ID"),
		GitHubClientSecret:   v.GetString("GITHUB_CLIENT_SECRET"),
		OAuthSuccessRedirect: v.GetString("OAUTH_SUCCESS_REDIRECT"),
		OAuthFailureRedirect: v.GetString("OAUTH_FAILURE_REDIRECT"),
		AuthRateLimit:        v.GetString("AUTH_RATE_LIMIT"),
		EnableAPIDocs:        v.GetBool("ENABLE_API_DOCS"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = "3000"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	sessionTTLStr := v.GetString("SESSION_TTL")
	sessionTTL, err := time.ParseDuration(sessionTTLStr)
	if err != nil || sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
		log.Printf("Warning: Invalid value for SESSION_TTL ('%s'). Defaulting to %s.\n", sessionTTLStr, sessionTTL.String())
	}
	cfg.SessionTTL = sessionTTL

	if cfg.SessionCookieName == "" {
		cfg.SessionCookieName = "sid"
	}

	if cfg.SessionSecret == defaultSessionSecret {
		log.Println("Warning: SESSION_SECRET is not set, using default insecure secret. THIS IS NOT FOR PRODUCTION.")
	}

	if cfg.CORSAllowedOrigin == "" {
		if cfg.IsProduction {
			cfg.CORSAllowedOrigin = cfg.BaseURL
		} else {
			cfg.CORSAllowedOrigin = "http://localhost:3000"
		}
	}

	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID/GOOGLE_CLIENT_SECRET not set. Google OAuth routes are disabled.")
	}
	if cfg.GitHubClientID == "" || cfg.GitHubClientSecret == "" {
		log.Println("Warning: GITHUB_CLIENT_ID/GITHUB_CLIENT_SECRET not set. GitHub OAuth routes are disabled.")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that must hold before the server starts.
func (c *Config) Validate() error {
	if c.IsProduction && (c.SessionSecret == "" || c.SessionSecret == defaultSessionSecret) {
		return errors.New("SESSION_SECRET must be set in production")
	}
	if c.SessionSecret == "" {
		return errors.New("SESSION_SECRET cannot be empty")
	}
	return nil
}

// EnabledOAuthProviders lists the providers whose client id and secret are both configured.
func (c *Config) EnabledOAuthProviders() []OAuthClient {
	var clients []OAuthClient
	if c.GoogleClientID != "" && c.GoogleClientSecret != "" {
		clients = append(clients, OAuthClient{Provider: ProviderGoogle, ClientID: c.GoogleClientID, ClientSecret: c.GoogleClientSecret})
	}
	if c.GitHubClientID != "" && c.GitHubClientSecret != "" {
		clients = append(clients, OAuthClient{Provider: ProviderGitHub, ClientID: c.GitHubClientID, ClientSecret: c.GitHubClientSecret})
	}
	return clients
}

// CallbackURL returns the absolute OAuth callback URL for provider.
func (c *Config) CallbackURL(provider string) string {
	return c.BaseURL + "/auth/" + provider + "/callback"
}
