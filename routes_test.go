package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/neocodez/portfolio/config"
	"github.com/neocodez/portfolio/logger"
	"github.com/neocodez/portfolio/models"
	"github.com/neocodez/portfolio/otp"
	"github.com/neocodez/portfolio/services"
	"github.com/neocodez/portfolio/tokens"
	"github.com/neocodez/portfolio/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T) (*application, *tokens.Issuer) {
	t.Helper()

	issuer := tokens.NewIssuer("bearer-secret", "reset-secret")
	return &application{
		auth:     services.NewAuthService(nil, issuer, otp.NewGenerator(), nil, "http://localhost:5173"),
		projects: services.NewProjectService(nil),
		blogs:    services.NewBlogService(nil, nil),
		guides:   services.NewGuideService(nil, nil, nil),
		contact:  services.NewContactService(nil, nil, "inbox@x.com"),
		files:    utils.NewFileValidator(nil, nil, 1),
	}, issuer
}

func TestRouter(t *testing.T) {
	app, issuer := testApp(t)
	cfg := config.Defaults()
	cfg.AllowedOrigins = []string{"https://neocodez.dev"}
	r := newRouter(&cfg, logger.Nop(), app)

	userToken, err := issuer.IssueBearerToken("65f1c0ffee65f1c0ffee65f1", models.RoleUser)
	require.NoError(t, err)
	adminToken, err := issuer.IssueBearerToken("65f1c0ffee65f1c0ffee65f2", models.RoleAdmin)
	require.NoError(t, err)
	resetToken, err := issuer.IssueResetToken("65f1c0ffee65f1c0ffee65f1", "")
	require.NoError(t, err)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		status int
	}{
		{"ping", http.MethodGet, "/ping", "", http.StatusOK},
		{"create project anonymous", http.MethodPost, "/projects", "", http.StatusUnauthorized},
		{"create project as user", http.MethodPost, "/projects", userToken, http.StatusForbidden},
		{"reset token is not a session", http.MethodDelete, "/blogs/x", resetToken, http.StatusUnauthorized},
		{"contact inbox as user", http.MethodGet, "/contact", userToken, http.StatusForbidden},
		{"upload disabled", http.MethodPost, "/upload", adminToken, http.StatusNotImplemented},
		{"change password anonymous", http.MethodPost, "/auth/change-password", "", http.StatusUnauthorized},
		{"profile anonymous", http.MethodGet, "/auth/profile", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRouter_CORS(t *testing.T) {
	app, _ := testApp(t)
	cfg := config.Defaults()
	cfg.AllowedOrigins = []string{"https://neocodez.dev"}
	r := newRouter(&cfg, logger.Nop(), app)

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/auth/login", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := preflight("https://neocodez.dev")
	assert.Equal(t, "https://neocodez.dev", w.Header().Get("Access-Control-Allow-Origin"))

	w = preflight("https://evil.example")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestContactInbox(t *testing.T) {
	cfg := config.Defaults()
	cfg.Admin.Email = "admin@x.com"
	assert.Equal(t, "admin@x.com", contactInbox(&cfg))

	cfg.SMTP.From = "noreply@x.com"
	assert.Equal(t, "noreply@x.com", contactInbox(&cfg))

	cfg.SMTP.ContactEmail = "hello@x.com"
	assert.Equal(t, "hello@x.com", contactInbox(&cfg))
}

func TestOpenObjectStore_None(t *testing.T) {
	store, err := openObjectStore(t.Context(), config.Storage{Driver: config.StorageNone})
	require.NoError(t, err)
	assert.Nil(t, store)
}
