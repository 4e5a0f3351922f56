package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/book_catalog_api/internal/core/domain"
	portssvc "github.com/SscSPs/book_catalog_api/internal/core/ports/services"
	"github.com/SscSPs/book_catalog_api/internal/platform/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"
	googleoauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

const githubAPIBaseURL = "https://api.github.com"

// NewOAuthProviders builds one provider per OAuth client enabled in cfg.
func NewOAuthProviders(cfg *config.Config) []portssvc.OAuthProvider {
	var providers []portssvc.OAuthProvider
	for _, client := range cfg.EnabledOAuthProviders() {
		oc := &oauth2.Config{
			ClientID:     client.ClientID,
			ClientSecret: client.ClientSecret,
			RedirectURL:  cfg.CallbackURL(client.Provider),
		}
		switch client.Provider {
		case config.ProviderGoogle:
			oc.Endpoint = google.Endpoint
			oc.Scopes = []string{googleoauth2.UserinfoEmailScope, googleoauth2.UserinfoProfileScope}
			providers = append(providers, NewGoogleProvider(oc))
		case config.ProviderGitHub:
			oc.Endpoint = github.Endpoint
			oc.Scopes = []string{"read:user", "user:email"}
			providers = append(providers, NewGitHubProvider(oc, githubAPIBaseURL))
		}
	}
	return providers
}

type googleProvider struct {
	oauth2Config *oauth2.Config
}

// NewGoogleProvider wraps a Google OAuth client configuration.
func NewGoogleProvider(oc *oauth2.Config) portssvc.OAuthProvider {
	return &googleProvider{oauth2Config: oc}
}

func (p *googleProvider) Name() domain.AuthProvider {
	return domain.ProviderGoogle
}

func (p *googleProvider) AuthCodeURL(state string) string {
	return p.oauth2Config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (p *googleProvider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := p.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange google oauth code for token: %w", err)
	}
	return token, nil
}

func (p *googleProvider) FetchProfile(ctx context.Context, token *oauth2.Token) (*domain.OAuthProfile, error) {
	svc, err := googleoauth2.NewService(ctx, option.WithTokenSource(p.oauth2Config.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create google oauth2 client: %w", err)
	}
	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get user info from google: %w", err)
	}

	profile := &domain.OAuthProfile{
		Provider:       domain.ProviderGoogle,
		ProviderUserID: info.Id,
		DisplayName:    info.Name,
		AvatarURL:      info.Picture,
	}
	// Unverified addresses must not be used to match existing accounts.
	if info.VerifiedEmail == nil || *info.VerifiedEmail {
		profile.Email = info.Email
	}
	return profile, nil
}

type githubProvider struct {
	oauth2Config *oauth2.Config
	apiBaseURL   string
}

// NewGitHubProvider wraps a GitHub OAuth client configuration. apiBaseURL is
// the REST API root, normally https://api.github.com.
func NewGitHubProvider(oc *oauth2.Config, apiBaseURL string) portssvc.OAuthProvider {
	return &githubProvider{oauth2Config: oc, apiBaseURL: strings.TrimRight(apiBaseURL, "/")}
}

func (p *githubProvider) Name() domain.AuthProvider {
	return domain.ProviderGitHub
}

func (p *githubProvider) AuthCodeURL(state string) string {
	return p.oauth2Config.AuthCodeURL(state)
}

func (p *githubProvider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := p.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange github oauth code for token: %w", err)
	}
	return token, nil
}

type githubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

type githubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

func (p *githubProvider) FetchProfile(ctx context.Context, token *oauth2.Token) (*domain.OAuthProfile, error) {
	client := p.oauth2Config.Client(ctx, token)

	var user githubUser
	if err := p.getJSON(ctx, client, "/user", &user); err != nil {
		return nil, err
	}
	if user.ID == 0 {
		return nil, fmt.Errorf("github user response has no id")
	}

	profile := &domain.OAuthProfile{
		Provider:       domain.ProviderGitHub,
		ProviderUserID: strconv.FormatInt(user.ID, 10),
		DisplayName:    user.Name,
		Username:       user.Login,
		AvatarURL:      user.AvatarURL,
	}

	// The public profile email is often hidden; fall back to the primary verified address.
	var emails []githubEmail
	if err := p.getJSON(ctx, client, "/user/emails", &emails); err == nil {
		for _, e := range emails {
			if e.Primary && e.Verified {
				profile.Email = e.Email
				break
			}
		}
	}
	if profile.Email == "" {
		profile.Email = user.Email
	}
	return profile, nil
}

func (p *githubProvider) getJSON(ctx context.Context, client *http.Client, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.apiBaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build github request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call github %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("github api returned non-200 status for %s: %s", path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode github %s response: %w", path, err)
	}
	return nil
}
