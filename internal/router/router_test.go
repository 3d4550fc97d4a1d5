package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/roadmap-lambda/internal/archive"
	"github.com/saulo-duarte/roadmap-lambda/internal/auth"
	"github.com/saulo-duarte/roadmap-lambda/internal/roadmap"
	"github.com/saulo-duarte/roadmap-lambda/internal/router"
	"github.com/saulo-duarte/roadmap-lambda/internal/web"
)

type staticProvider struct{}

func (staticProvider) Generate(ctx context.Context, prompt string) (*roadmap.Completion, error) {
	return &roadmap.Completion{Candidates: []string{"Chapter 1"}, Model: "static"}, nil
}

func (staticProvider) Model() string { return "static" }

func newRouter(withArchive bool) http.Handler {
	svc := roadmap.NewService(staticProvider{}, nil, nil, 0)
	archived := archive.NewContainer(nil, nil)

	cfg := router.RouterConfig{
		RoadmapHandler: roadmap.NewHandler(svc, archived.Service),
		WebHandler:     web.NewHandler(svc),
		AuthHandler:    auth.NewHandler(""),
		AllowedOrigins: []string{"*"},
	}
	if withArchive {
		cfg.ArchiveHandler = archived.Handler
	}
	return router.New(cfg)
}

func TestRouter(t *testing.T) {
	h := newRouter(true)

	t.Run("Healthz", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Form", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	})

	t.Run("Generate", func(t *testing.T) {
		body := `{"grade":"7","subject":"Chemistry","daily_minutes":45}`
		req := httptest.NewRequest(http.MethodPost, "/roadmaps", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "Chapter 1")
	})

	t.Run("ArchiveNeedsAuth", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/roadmaps", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("SessionNeedsToken", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/session", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Logout", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Set-Cookie"), "jwt=")
	})
}

func TestRouterWithoutArchive(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(false).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/roadmaps", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
