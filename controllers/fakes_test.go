package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/neocodez/portfolio/dto"
	"github.com/neocodez/portfolio/models"
	"github.com/neocodez/portfolio/repositories"
	"github.com/neocodez/portfolio/services"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	RegisterFn       func(ctx context.Context, name, email, password string) (*services.AuthResult, error)
	LoginFn          func(ctx context.Context, email, password string) (*services.AuthResult, error)
	ProfileFn        func(ctx context.Context, token string) (*models.UserSummary, error)
	ForgotPasswordFn func(ctx context.Context, email string) error
	VerifyOtpFn      func(ctx context.Context, email, code string) (string, error)
	ResetPasswordFn  func(ctx context.Context, token, pw string) error
	ChangePasswordFn func(ctx context.Context, userID, current, next string) error
}

func (f *fakeAuth) Register(ctx context.Context, name, email, password string) (*services.AuthResult, error) {
	return f.RegisterFn(ctx, name, email, password)
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*services.AuthResult, error) {
	return f.LoginFn(ctx, email, password)
}

func (f *fakeAuth) Profile(ctx context.Context, token string) (*models.UserSummary, error) {
	return f.ProfileFn(ctx, token)
}

func (f *fakeAuth) ForgotPassword(ctx context.Context, email string) error {
	return f.ForgotPasswordFn(ctx, email)
}

func (f *fakeAuth) VerifyOtp(ctx context.Context, email, code string) (string, error) {
	return f.VerifyOtpFn(ctx, email, code)
}

func (f *fakeAuth) ResetPassword(ctx context.Context, token, pw string) error {
	return f.ResetPasswordFn(ctx, token, pw)
}

func (f *fakeAuth) ChangePassword(ctx context.Context, userID, current, next string) error {
	return f.ChangePasswordFn(ctx, userID, current, next)
}

type fakeProjects struct {
	ListFn      func(ctx context.Context, f repositories.ProjectFilter) ([]models.Project, error)
	GetBySlugFn func(ctx context.Context, slug string, includeDrafts bool) (*models.Project, error)
	CreateFn    func(ctx context.Context, in dto.CreateProjectDTO) (*models.Project, error)
	UpdateFn    func(ctx context.Context, id string, in dto.UpdateProjectDTO) (*models.Project, error)
	DeleteFn    func(ctx context.Context, id string) error
}

func (f *fakeProjects) List(ctx context.Context, filter repositories.ProjectFilter) ([]models.Project, error) {
	return f.ListFn(ctx, filter)
}

func (f *fakeProjects) GetBySlug(ctx context.Context, slug string, includeDrafts bool) (*models.Project, error) {
	return f.GetBySlugFn(ctx, slug, includeDrafts)
}

func (f *fakeProjects) Create(ctx context.Context, in dto.CreateProjectDTO) (*models.Project, error) {
	return f.CreateFn(ctx, in)
}

func (f *fakeProjects) Update(ctx context.Context, id string, in dto.UpdateProjectDTO) (*models.Project, error) {
	return f.UpdateFn(ctx, id, in)
}

func (f *fakeProjects) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

type fakeBlogs struct {
	ListFn func(ctx context.Context, f repositories.BlogFilter) ([]models.Blog, int64, error)
	ViewFn func(ctx context.Context, slug string, includeDrafts bool) (*models.Blog, error)
}

func (f *fakeBlogs) List(ctx context.Context, filter repositories.BlogFilter) ([]models.Blog, int64, error) {
	return f.ListFn(ctx, filter)
}

func (f *fakeBlogs) View(ctx context.Context, slug string, includeDrafts bool) (*models.Blog, error) {
	return f.ViewFn(ctx, slug, includeDrafts)
}

func (f *fakeBlogs) Create(context.Context, string, dto.CreateBlogDTO) (*models.Blog, error) {
	panic("not used")
}

func (f *fakeBlogs) Update(context.Context, string, dto.UpdateBlogDTO) (*models.Blog, error) {
	panic("not used")
}

func (f *fakeBlogs) Delete(context.Context, string) error {
	panic("not used")
}

type fakeGuides struct {
	ListFn   func(ctx context.Context, f repositories.GuideFilter) ([]models.Guide, int64, error)
	CreateFn func(ctx context.Context, authorID string, in dto.CreateGuideDTO) (*models.Guide, error)
}

func (f *fakeGuides) List(ctx context.Context, filter repositories.GuideFilter) ([]models.Guide, int64, error) {
	return f.ListFn(ctx, filter)
}

func (f *fakeGuides) View(context.Context, string, bool) (*models.Guide, error) {
	panic("not used")
}

func (f *fakeGuides) Create(ctx context.Context, authorID string, in dto.CreateGuideDTO) (*models.Guide, error) {
	return f.CreateFn(ctx, authorID, in)
}

func (f *fakeGuides) Update(context.Context, string, dto.UpdateGuideDTO) (*models.Guide, error) {
	panic("not used")
}

func (f *fakeGuides) Delete(context.Context, string) error {
	panic("not used")
}

type fakeContact struct {
	SubmitFn func(ctx context.Context, in dto.ContactDTO) (*models.ContactMessage, error)
	ListFn   func(ctx context.Context, page, limit int) ([]models.ContactMessage, int64, error)
	DeleteFn func(ctx context.Context, id string) error
}

func (f *fakeContact) Submit(ctx context.Context, in dto.ContactDTO) (*models.ContactMessage, error) {
	return f.SubmitFn(ctx, in)
}

func (f *fakeContact) List(ctx context.Context, page, limit int) ([]models.ContactMessage, int64, error) {
	return f.ListFn(ctx, page, limit)
}

func (f *fakeContact) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{objects: map[string][]byte{}}
}

func (s *memStore) Put(_ context.Context, objectName, _ string, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[objectName] = data
	return nil
}

func (s *memStore) PublicURL(objectName string) string {
	return "https://cdn.test/" + objectName
}

func (s *memStore) Close() error { return nil }

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// asRole stands in for Protect/Identify in handler tests.
func asRole(userID string, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
