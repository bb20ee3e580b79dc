package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coverletter-backend/internal/coverletter"
	"coverletter-backend/internal/llm"
	"coverletter-backend/internal/shared/config"
)

func newTestRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := coverletter.NewService(llm.PlaceholderClient{})
	return NewRouter(RouterDeps{
		Config:             cfg,
		CoverLetterHandler: coverletter.NewHandler(svc, cfg.MaxUploadBytes),
	})
}

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/generate/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestRouterServesOperationalRoutes(t *testing.T) {
	r := newTestRouter(config.Config{Env: "test"})

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{path: "/healthz", wantStatus: http.StatusOK, wantBody: `"ok":true`},
		{path: "/metrics", wantStatus: http.StatusOK, wantBody: "go_goroutines"},
		{path: "/", wantStatus: http.StatusOK, wantBody: "Cover Letter Generator"},
		{path: "/missing", wantStatus: http.StatusNotFound, wantBody: `"status":"error"`},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
		assert.Equal(t, tt.wantStatus, w.Code, tt.path)
		assert.Contains(t, w.Body.String(), tt.wantBody, tt.path)
		assert.NotEmpty(t, w.Header().Get("X-Request-Id"), tt.path)
	}
}

func TestRouterGenerationFailureSurfacesServiceError(t *testing.T) {
	r := newTestRouter(config.Config{Env: "test"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm(url.Values{"full_name": {"Jane"}}))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"LLM not implemented"}`, w.Body.String())
}

func TestRouterRateLimitsGeneration(t *testing.T) {
	r := newTestRouter(config.Config{Env: "test", RateLimitPerMinute: 1, RateLimitBurst: 1})

	first := httptest.NewRecorder()
	r.ServeHTTP(first, postForm(url.Values{"full_name": {"Jane"}}))
	require.NotEqual(t, http.StatusTooManyRequests, first.Code)

	second := httptest.NewRecorder()
	r.ServeHTTP(second, postForm(url.Values{"full_name": {"Jane"}}))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))

	health := httptest.NewRecorder()
	r.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, health.Code)
}

func TestAddr(t *testing.T) {
	assert.Equal(t, ":8080", Addr(""))
	assert.Equal(t, ":9000", Addr("9000"))
	assert.Equal(t, ":9000", Addr(":9000"))
}
