package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"competitoranalyzer/internal/api/v1/handler"
	"competitoranalyzer/internal/api/v1/middleware"
	"competitoranalyzer/internal/feedback"
	"competitoranalyzer/internal/model"
	"competitoranalyzer/internal/service"
)

type stubAnalyzer struct{}

func (stubAnalyzer) AnalyzePage(ctx context.Context, url string) (*model.Report, error) {
	return &model.Report{URL: url}, nil
}

func (stubAnalyzer) Compare(ctx context.Context, urls []string) ([]service.ComparisonResult, error) {
	return []service.ComparisonResult{}, nil
}

type stubStore struct{}

func (stubStore) Add(rating int, comment string) (feedback.Entry, error) {
	return feedback.Entry{ID: "1", Rating: rating, Comment: comment}, nil
}

func (stubStore) List() []feedback.Entry { return []feedback.Entry{} }

func newTestRouter(limiter *middleware.RateLimiter) http.Handler {
	return New(handler.New(stubAnalyzer{}, stubStore{}), Options{
		BasicAuthUser: "admin",
		BasicAuthPass: "secret",
		Limiter:       limiter,
	})
}

func TestRoutes(t *testing.T) {
	r := newTestRouter(nil)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		auth       bool
		wantStatus int
	}{
		{name: "Health", method: http.MethodGet, path: "/health", wantStatus: http.StatusOK},
		{name: "Analyze", method: http.MethodGet, path: "/analyze?url=https://acme.com", wantStatus: http.StatusOK},
		{name: "Analyze wrong method", method: http.MethodPost, path: "/analyze", wantStatus: http.StatusMethodNotAllowed},
		{name: "Compare", method: http.MethodPost, path: "/compare", body: `{"urls":["https://acme.com"]}`, wantStatus: http.StatusOK},
		{name: "Export", method: http.MethodGet, path: "/export?url=https://acme.com", wantStatus: http.StatusOK},
		{name: "Submit feedback", method: http.MethodPost, path: "/feedback", body: `{"rating":4}`, wantStatus: http.StatusCreated},
		{name: "List feedback without credentials", method: http.MethodGet, path: "/feedback", wantStatus: http.StatusUnauthorized},
		{name: "List feedback with credentials", method: http.MethodGet, path: "/feedback", auth: true, wantStatus: http.StatusOK},
		{name: "Unknown route", method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
		{name: "Preflight", method: http.MethodOptions, path: "/analyze", wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, BasePath+tt.path, strings.NewReader(tt.body))
			if tt.auth {
				req.SetBasicAuth("admin", "secret")
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("%s %s = %d, want %d", tt.method, tt.path, rec.Code, tt.wantStatus)
			}
			if rec.Header().Get(middleware.RequestIDHeader) == "" {
				t.Error("missing request ID header")
			}
		})
	}
}

func TestRateLimitedRouter(t *testing.T) {
	limiter := middleware.NewRateLimiter(0.001, 1, nil)
	defer limiter.Stop()
	r := newTestRouter(limiter)

	send := func() int {
		req := httptest.NewRequest(http.MethodGet, BasePath+"/health", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}

	if got := send(); got != http.StatusOK {
		t.Fatalf("first request = %d, want 200", got)
	}
	if got := send(); got != http.StatusTooManyRequests {
		t.Errorf("second request = %d, want 429", got)
	}
}

func TestMetricsRouter(t *testing.T) {
	rec := httptest.NewRecorder()
	NewMetricsRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "go_goroutines") {
		t.Error("metrics output missing default collectors")
	}
}
