package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/book_catalog_api/internal/core/domain"
	portssvc "github.com/SscSPs/book_catalog_api/internal/core/ports/services"
	"github.com/SscSPs/book_catalog_api/internal/dto"
	"github.com/SscSPs/book_catalog_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles local authentication and session lifecycle requests.
type authHandler struct {
	identity portssvc.IdentitySvcFacade
	sessions portssvc.SessionSvcFacade
	cookie   *middleware.SessionCookie
}

func newAuthHandler(identity portssvc.IdentitySvcFacade, sessions portssvc.SessionSvcFacade, cookie *middleware.SessionCookie) *authHandler {
	return &authHandler{identity: identity, sessions: sessions, cookie: cookie}
}

// registerAuthRoutes sets up /auth. credentialLimit guards the endpoints that
// accept passwords.
func registerAuthRoutes(r *gin.Engine, h *authHandler, credentialLimit gin.HandlerFunc) *gin.RouterGroup {
	auth := r.Group("/auth")
	{
		auth.POST("/register", credentialLimit, h.register)
		auth.POST("/login", credentialLimit, h.login)
		auth.GET("/logout", h.logout)
		auth.GET("/me", middleware.RequireAuthenticated(), h.me)
		auth.GET("/status", h.status)
	}
	return auth
}

// register godoc
// @Summary Register a new user
// @Description Creates a local account and starts a session for it.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse "Validation Error or Duplicate Error"
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.identity.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "register user")
		return
	}
	if !h.startSession(c, user) {
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{Message: "Registration successful", User: dto.ToUserResponse(user)})
}

// login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid email or password"
// @Failure 429 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.identity.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "log in")
		return
	}
	if !h.startSession(c, user) {
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Message: "Login successful", User: dto.ToUserResponse(user)})
}

// logout godoc
// @Summary Log out
// @Description Deletes the current session and clears the session cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /auth/logout [get]
func (h *authHandler) logout(c *gin.Context) {
	if token, _, valid := h.cookie.Read(c); valid {
		if err := h.sessions.Invalidate(c.Request.Context(), token); err != nil {
			middleware.GetLoggerFromContext(c).Error("Failed to delete session on logout", slog.String("error", err.Error()))
		}
	}
	h.cookie.Clear(c)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out successfully"})
}

// me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} dto.CurrentUserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized", Message: "Unauthorized access"})
		return
	}
	c.JSON(http.StatusOK, dto.CurrentUserResponse{User: dto.ToUserResponse(user)})
}

// status godoc
// @Summary Authentication status
// @Tags auth
// @Produce json
// @Success 200 {object} dto.AuthStatusResponse
// @Failure 401 {object} dto.AuthStatusResponse
// @Router /auth/status [get]
func (h *authHandler) status(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.AuthStatusResponse{Authenticated: false, Message: "Not authenticated"})
		return
	}
	resp := dto.ToUserResponse(user)
	c.JSON(http.StatusOK, dto.AuthStatusResponse{Authenticated: true, User: &resp})
}

// startSession replaces any current session with a new one for user and
// sets the cookie. It answers 500 itself on failure.
func (h *authHandler) startSession(c *gin.Context, user *domain.User) bool {
	ctx := c.Request.Context()
	if previous, ok := middleware.GetSessionToken(c); ok {
		if err := h.sessions.Invalidate(ctx, previous); err != nil {
			middleware.GetLoggerFromContext(c).Warn("Failed to drop previous session", slog.String("error", err.Error()))
		}
	}

	token, err := h.sessions.Serialize(ctx, user)
	if err != nil {
		respondError(c, err, "create session")
		return false
	}
	h.cookie.Set(c, token)
	return true
}
