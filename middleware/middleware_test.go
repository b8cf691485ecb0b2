package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/neocodez/portfolio/logger"
	"github.com/neocodez/portfolio/models"
	"github.com/neocodez/portfolio/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthenticator struct {
	claims map[string]*tokens.Claims
}

func (f fakeAuthenticator) Authenticate(tokenStr string) (*tokens.Claims, error) {
	if c, ok := f.claims[tokenStr]; ok {
		return c, nil
	}
	return nil, errors.New("bad token")
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func doRequest(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProtectAndAdminOnly(t *testing.T) {
	auth := fakeAuthenticator{claims: map[string]*tokens.Claims{
		"user-token":  {UserID: "u1", Role: models.RoleUser},
		"admin-token": {UserID: "a1", Role: models.RoleAdmin},
	}}

	r := newTestRouter()
	r.GET("/me", Protect(auth), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": UserID(c), "role": Role(c)})
	})
	r.GET("/admin", Protect(auth), AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	tests := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{"no token", "/me", "", http.StatusUnauthorized},
		{"bad token", "/me", "forged", http.StatusUnauthorized},
		{"user token", "/me", "user-token", http.StatusOK},
		{"user on admin route", "/admin", "user-token", http.StatusForbidden},
		{"admin on admin route", "/admin", "admin-token", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodGet, tt.path, tt.token)
			assert.Equal(t, tt.status, w.Code)
		})
	}

	w := doRequest(r, http.MethodGet, "/me", "user-token")
	assert.JSONEq(t, `{"id":"u1","role":"user"}`, w.Body.String())
}

func TestBearerToken(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Empty(t, BearerToken(c))

	c.Request.Header.Set("Authorization", "Basic abc")
	assert.Empty(t, BearerToken(c))

	c.Request.Header.Set("Authorization", "Bearer abc.def")
	assert.Equal(t, "abc.def", BearerToken(c))
}

func TestRateLimit(t *testing.T) {
	r := newTestRouter()
	r.POST("/login", RateLimit(2, time.Minute, "Too many login attempts, please try again later"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		w := doRequest(r, http.MethodPost, "/login", "")
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doRequest(r, http.MethodPost, "/login", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"Too many login attempts, please try again later"}`, w.Body.String())
}

func TestRateLimit_PerClientAddress(t *testing.T) {
	r := newTestRouter()
	r.POST("/contact", RateLimit(1, time.Minute, "slow down"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1111"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:2222"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1111"))
}

func TestRequestLogger(t *testing.T) {
	r := newTestRouter()
	r.Use(RequestLogger(logger.Nop()))

	var fromCtx *logger.Logger
	r.GET("/ping", func(c *gin.Context) {
		fromCtx = logger.FromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := doRequest(r, http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.NotNil(t, fromCtx)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestIdentify(t *testing.T) {
	auth := fakeAuthenticator{claims: map[string]*tokens.Claims{
		"admin-token": {UserID: "a1", Role: models.RoleAdmin},
	}}

	r := newTestRouter()
	r.GET("/posts", Identify(auth), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin": IsAdmin(c)})
	})

	w := doRequest(r, http.MethodGet, "/posts", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"admin":false}`, w.Body.String())

	w = doRequest(r, http.MethodGet, "/posts", "forged")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"admin":false}`, w.Body.String())

	w = doRequest(r, http.MethodGet, "/posts", "admin-token")
	assert.JSONEq(t, `{"admin":true}`, w.Body.String())
}
