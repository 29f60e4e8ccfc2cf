package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/devforge/devforge/internal/api"
	"github.com/devforge/devforge/internal/contact"
	"github.com/devforge/devforge/internal/portfolio"
	"github.com/devforge/devforge/internal/team"
	"github.com/devforge/devforge/internal/template"
)

// Stub repositories backing a fully wired router. All reads return empty
// lists and all writes succeed.

type stubTemplateRepo struct{}

func (stubTemplateRepo) Create(ctx context.Context, t *template.Template) error { return nil }
func (stubTemplateRepo) GetByID(ctx context.Context, id uuid.UUID) (*template.Template, error) {
	return nil, template.ErrTemplateNotFound
}
func (stubTemplateRepo) List(ctx context.Context) ([]template.Template, error) {
	return []template.Template{}, nil
}
func (stubTemplateRepo) Update(ctx context.Context, id uuid.UUID, fields template.UpdateFields) (*template.Template, error) {
	return &template.Template{ID: id}, nil
}
func (stubTemplateRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }
func (stubTemplateRepo) SetDisplayOrder(ctx context.Context, id uuid.UUID, p int) error { return nil }

type stubPortfolioRepo struct{}

func (stubPortfolioRepo) Create(ctx context.Context, p *portfolio.Project) error { return nil }
func (stubPortfolioRepo) GetByID(ctx context.Context, id uuid.UUID) (*portfolio.Project, error) {
	return nil, portfolio.ErrProjectNotFound
}
func (stubPortfolioRepo) List(ctx context.Context) ([]portfolio.Project, error) {
	return []portfolio.Project{}, nil
}
func (stubPortfolioRepo) Update(ctx context.Context, id uuid.UUID, fields portfolio.UpdateFields) (*portfolio.Project, error) {
	return &portfolio.Project{ID: id}, nil
}
func (stubPortfolioRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }
func (stubPortfolioRepo) SetDisplayOrder(ctx context.Context, id uuid.UUID, p int) error { return nil }

type stubTeamRepo struct{}

func (stubTeamRepo) Create(ctx context.Context, m *team.Member) error { return nil }
func (stubTeamRepo) GetByID(ctx context.Context, id uuid.UUID) (*team.Member, error) {
	return nil, team.ErrMemberNotFound
}
func (stubTeamRepo) List(ctx context.Context) ([]team.Member, error) { return []team.Member{}, nil }
func (stubTeamRepo) Update(ctx context.Context, id uuid.UUID, fields team.UpdateFields) (*team.Member, error) {
	return &team.Member{ID: id}, nil
}
func (stubTeamRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type stubContactRepo struct{}

func (stubContactRepo) Create(ctx context.Context, s *contact.Submission) error { return nil }
func (stubContactRepo) List(ctx context.Context) ([]contact.Submission, error) {
	return []contact.Submission{}, nil
}
func (stubContactRepo) MarkRead(ctx context.Context, id uuid.UUID) (*contact.Submission, error) {
	return &contact.Submission{ID: id, IsRead: true}, nil
}
func (stubContactRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func newTestRouter() http.Handler {
	return api.NewRouter(api.Deps{
		Templates:     stubTemplateRepo{},
		Portfolio:     stubPortfolioRepo{},
		Team:          stubTeamRepo{},
		Contacts:      stubContactRepo{},
		Version:       "test",
		AdminUsername: "admin",
		AdminPassword: "s3cret",
		CORSOrigins:   []string{"http://localhost:5173"},
	})
}

func TestRouter_PublicEndpointsNeedNoAuth(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{"/", "/health", "/templates", "/portfolio", "/team"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "GET %s", path)
	}
}

func TestRouter_AdminEndpointsRejectMissingAuth(t *testing.T) {
	router := newTestRouter()
	id := uuid.New().String()

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/admin/templates"},
		{http.MethodPost, "/admin/templates"},
		{http.MethodPost, "/admin/templates/reorder"},
		{http.MethodPut, "/admin/templates/" + id},
		{http.MethodDelete, "/admin/templates/" + id},
		{http.MethodGet, "/admin/portfolio"},
		{http.MethodPost, "/admin/portfolio"},
		{http.MethodPost, "/admin/portfolio/reorder"},
		{http.MethodPut, "/admin/portfolio/" + id},
		{http.MethodDelete, "/admin/portfolio/" + id},
		{http.MethodGet, "/admin/team"},
		{http.MethodPost, "/admin/team"},
		{http.MethodPut, "/admin/team/" + id},
		{http.MethodDelete, "/admin/team/" + id},
		{http.MethodGet, "/admin/contacts"},
		{http.MethodPut, "/admin/contacts/" + id + "/read"},
		{http.MethodDelete, "/admin/contacts/" + id},
		{http.MethodPost, "/admin/upload"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
		assert.NotEmpty(t, w.Header().Get("WWW-Authenticate"), "%s %s", tc.method, tc.path)
	}
}

func TestRouter_AdminEndpointsAcceptValidAuth(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{"/admin/templates", "/admin/portfolio", "/admin/team", "/admin/contacts"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.SetBasicAuth("admin", "s3cret")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "GET %s", path)
	}
}

func TestRouter_ContactSubmit(t *testing.T) {
	router := newTestRouter()

	body := strings.NewReader(`{"name":"A","email":"a@b.c","message":"hi"}`)
	req := httptest.NewRequest(http.MethodPost, "/contact", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRouter_CORSAllowsConfiguredOrigin(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/contact", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
