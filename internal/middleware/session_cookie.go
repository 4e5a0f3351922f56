package middleware

import (
	"net/http"
	"time"

	"github.com/SscSPs/book_catalog_api/internal/utils"
	"github.com/gin-gonic/gin"
)

// SessionCookie writes and reads the signed session cookie.
type SessionCookie struct {
	Name   string
	Secret string
	TTL    time.Duration
	Secure bool
}

// Set writes token as a signed HttpOnly cookie.
func (s *SessionCookie) Set(c *gin.Context, token string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     s.Name,
		Value:    utils.SignValue(token, s.Secret),
		Path:     "/",
		MaxAge:   int(s.TTL.Seconds()),
		Expires:  time.Now().Add(s.TTL),
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Read returns the session token if the cookie is present and correctly signed.
// present reports whether any cookie with the session name was sent.
func (s *SessionCookie) Read(c *gin.Context) (token string, present bool, valid bool) {
	raw, err := c.Cookie(s.Name)
	if err != nil || raw == "" {
		return "", false, false
	}
	token, ok := utils.UnsignValue(raw, s.Secret)
	return token, true, ok
}

// Clear expires the cookie in the browser.
func (s *SessionCookie) Clear(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     s.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
