package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/SscSPs/book_catalog_api/internal/apperrors"
	portssvc "github.com/SscSPs/book_catalog_api/internal/core/ports/services"
	"github.com/SscSPs/book_catalog_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	oauthNonceCookie = "oauth_nonce"
	// oauthNonceMaxAge matches the lifetime of the signed state.
	oauthNonceMaxAge = 10 * time.Minute
)

// oauthHandler runs the redirect based login flow for one provider.
type oauthHandler struct {
	provider        portssvc.OAuthProvider
	states          portssvc.OAuthStateSvc
	identity        portssvc.OAuthIdentitySvc
	auth            *authHandler
	successRedirect string
	failureRedirect string
	secureCookies   bool
}

// registerOAuthRoutes adds /auth/<provider> and its callback for every
// configured provider.
func registerOAuthRoutes(auth *gin.RouterGroup, svc *portssvc.ServiceContainer, ah *authHandler, successRedirect, failureRedirect string, secure bool) {
	for _, provider := range svc.OAuthProviders {
		h := &oauthHandler{
			provider:        provider,
			states:          svc.OAuthState,
			identity:        svc.Identity,
			auth:            ah,
			successRedirect: successRedirect,
			failureRedirect: failureRedirect,
			secureCookies:   secure,
		}
		name := string(provider.Name())
		auth.GET("/"+name, h.begin)
		auth.GET("/"+name+"/callback", h.callback)
	}
}

// begin godoc
// @Summary Start OAuth login
// @Description Redirects to the identity provider. Only registered for configured providers.
// @Tags auth
// @Param provider path string true "google or github"
// @Success 302 {string} string "Redirect"
// @Router /auth/{provider} [get]
func (h *oauthHandler) begin(c *gin.Context) {
	state, nonce, err := h.states.Issue(h.provider.Name())
	if err != nil {
		middleware.GetLoggerFromContext(c).Error("Failed to issue OAuth state", slog.String("error", err.Error()))
		h.fail(c, "server_error")
		return
	}
	h.setNonceCookie(c, nonce, int(oauthNonceMaxAge.Seconds()))
	c.Redirect(http.StatusFound, h.provider.AuthCodeURL(state))
}

// callback godoc
// @Summary OAuth callback
// @Description Completes the provider login, starts a session and redirects to the application.
// @Tags auth
// @Param provider path string true "google or github"
// @Param state query string true "Signed state"
// @Param code query string true "Authorization code"
// @Success 302 {string} string "Redirect"
// @Router /auth/{provider}/callback [get]
func (h *oauthHandler) callback(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromContext(c).With(slog.String("provider", string(h.provider.Name())))

	nonce, _ := c.Cookie(oauthNonceCookie)
	h.setNonceCookie(c, "", -1)

	if providerErr := c.Query("error"); providerErr != "" {
		logger.Info("Provider returned an error", slog.String("oauth_error", providerErr))
		h.fail(c, "access_denied")
		return
	}
	if err := h.states.Verify(h.provider.Name(), c.Query("state"), nonce); err != nil {
		logger.Warn("OAuth state rejected", slog.String("error", err.Error()))
		h.fail(c, "invalid_state")
		return
	}
	code := c.Query("code")
	if code == "" {
		h.fail(c, "missing_code")
		return
	}

	token, err := h.provider.Exchange(ctx, code)
	if err != nil {
		logger.Error("OAuth code exchange failed", slog.String("error", err.Error()))
		h.fail(c, "exchange_failed")
		return
	}
	profile, err := h.provider.FetchProfile(ctx, token)
	if err != nil {
		logger.Error("Failed to fetch OAuth profile", slog.String("error", err.Error()))
		h.fail(c, "profile_failed")
		return
	}

	user, err := h.identity.ResolveOAuth(ctx, *profile)
	if err != nil {
		logger.Warn("Failed to resolve OAuth identity", slog.String("error", err.Error()))
		h.fail(c, resolveFailureReason(err))
		return
	}

	sessionToken, err := h.auth.sessions.Serialize(ctx, user)
	if err != nil {
		logger.Error("Failed to create session after OAuth login", slog.String("error", err.Error()))
		h.fail(c, "server_error")
		return
	}
	if previous, ok := middleware.GetSessionToken(c); ok {
		_ = h.auth.sessions.Invalidate(ctx, previous)
	}
	h.auth.cookie.Set(c, sessionToken)

	logger.Info("OAuth login succeeded", slog.String("user_id", user.UserID))
	c.Redirect(http.StatusFound, h.successRedirect)
}

func (h *oauthHandler) fail(c *gin.Context, reason string) {
	c.Redirect(http.StatusFound, withErrorParam(h.failureRedirect, reason))
}

func (h *oauthHandler) setNonceCookie(c *gin.Context, value string, maxAge int) {
	cookie := &http.Cookie{
		Name:     oauthNonceCookie,
		Value:    value,
		Path:     "/auth",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	if maxAge < 0 {
		cookie.Expires = time.Unix(0, 0)
	}
	http.SetCookie(c.Writer, cookie)
}

func resolveFailureReason(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrDuplicate):
		return "account_conflict"
	case errors.Is(err, apperrors.ErrForbidden):
		return "account_disabled"
	case errors.Is(err, apperrors.ErrValidation):
		return "email_required"
	default:
		return "server_error"
	}
}

// withErrorParam appends error=reason to target, keeping any existing query.
func withErrorParam(target, reason string) string {
	u, err := url.Parse(target)
	if err != nil {
		return "/?error=" + url.QueryEscape(reason)
	}
	q := u.Query()
	q.Set("error", reason)
	u.RawQuery = q.Encode()
	return u.String()
}
