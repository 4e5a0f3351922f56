package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/book_catalog_api/internal/core/domain"
	"github.com/SscSPs/book_catalog_api/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimit_RejectsOverLimit(t *testing.T) {
	lim, err := middleware.NewMemoryRateLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.POST("/auth/login", middleware.RateLimit(lim), func(c *gin.Context) { c.Status(http.StatusOK) })

	var codes []int
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = "203.0.113.7:5555"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests {
			assert.JSONEq(t, `{"error":"Too Many Requests","message":"Too many requests. Please try again later."}`, w.Body.String())
		}
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewMemoryRateLimiter_InvalidRate(t *testing.T) {
	_, err := middleware.NewMemoryRateLimiter("ten per minute")
	assert.Error(t, err)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(middleware.Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Server Error","message":"An unexpected error occurred"}`, w.Body.String())
}

func TestRequireAuthenticated(t *testing.T) {
	user := &domain.User{UserID: "u1", Email: "a@example.com"}

	r := gin.New()
	r.GET("/anon", middleware.RequireAuthenticated(), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/known", func(c *gin.Context) {
		middleware.SetCurrentUser(c, user)
		c.Next()
	}, middleware.RequireAuthenticated(), func(c *gin.Context) {
		id, ok := middleware.GetUserIDFromContext(c)
		assert.True(t, ok)
		c.String(http.StatusOK, id)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/anon", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/known", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", w.Body.String())
}

func TestSessionCookie_RoundTrip(t *testing.T) {
	sc := &middleware.SessionCookie{Name: "sid", Secret: "s3cret", TTL: time.Hour}

	r := gin.New()
	r.GET("/set", func(c *gin.Context) { sc.Set(c, "tok") })
	r.GET("/read", func(c *gin.Context) {
		token, present, valid := sc.Read(c)
		c.JSON(http.StatusOK, gin.H{"token": token, "present": present, "valid": valid})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/set", nil))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)

	req := httptest.NewRequest(http.MethodGet, "/read", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.JSONEq(t, `{"token":"tok","present":true,"valid":true}`, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/read", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "tok.forged"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.JSONEq(t, `{"token":"","present":true,"valid":false}`, w.Body.String())
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(middleware.SecurityHeaders())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))
}
