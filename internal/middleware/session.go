package middleware

import (
	"log/slog"

	portssvc "github.com/SscSPs/book_catalog_api/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// SessionMiddleware restores the user behind the session cookie. It never
// fails the request: a bad, expired or unreadable session leaves the request
// anonymous and clears the stale cookie.
func SessionMiddleware(sessions portssvc.SessionSvcFacade, cookie *SessionCookie) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, present, valid := cookie.Read(c)
		if !present {
			c.Next()
			return
		}

		logger := GetLoggerFromContext(c)
		if !valid {
			logger.Warn("Session cookie signature invalid")
			cookie.Clear(c)
			c.Next()
			return
		}

		user, err := sessions.Deserialize(c.Request.Context(), token)
		if err != nil {
			logger.Error("Failed to restore session", slog.String("error", err.Error()))
			c.Next()
			return
		}
		if user == nil {
			logger.Debug("Session expired or unknown")
			cookie.Clear(c)
			c.Next()
			return
		}

		c.Set(string(sessionTokenKey), token)
		SetCurrentUser(c, user)
		c.Next()
	}
}

const sessionTokenKey = contextKey("sessionToken")

// GetSessionToken returns the token of the restored session.
func GetSessionToken(c *gin.Context) (string, bool) {
	token, ok := c.Get(string(sessionTokenKey))
	if !ok {
		return "", false
	}
	s, ok := token.(string)
	return s, ok && s != ""
}
