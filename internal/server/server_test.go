package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"jobtrack/internal/store"
)

// nilStore satisfies handlers.StoreFactory with empty results.
type nilStore struct{}

func (nilStore) Ping(ctx context.Context) error                      { return nil }
func (nilStore) ListJobs(ctx context.Context) ([]store.Job, error)   { return nil, nil }
func (nilStore) CreateJob(ctx context.Context, j *store.Job) error   { return nil }
func (nilStore) UpdateJob(ctx context.Context, j *store.Job) error   { return nil }
func (nilStore) ListUsers(ctx context.Context) ([]store.User, error) { return nil, nil }
func (nilStore) CreateUser(ctx context.Context, u *store.User) error { return nil }
func (nilStore) UpdateUser(ctx context.Context, u *store.User) error { return nil }

func (nilStore) GetJobByID(ctx context.Context, id uuid.UUID) (*store.Job, error) {
	return nil, context.Canceled
}

func (nilStore) DeleteJob(ctx context.Context, id uuid.UUID) (bool, error) {
	return false, nil
}

func (nilStore) GetUserByID(ctx context.Context, id uuid.UUID) (*store.User, error) {
	return nil, context.Canceled
}

func testServer(t *testing.T, opts Options) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(":0", nilStore{}, logger, opts)
}

func TestServer_RoutesRegistered(t *testing.T) {
	srv := testServer(t, Options{})

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/jobs"},
		{http.MethodPost, "/jobs"},
		{http.MethodPut, "/jobs/some-id"},
		{http.MethodDelete, "/jobs/some-id"},
		{http.MethodGet, "/users"},
		{http.MethodPost, "/users"},
		{http.MethodGet, "/users/some-id"},
		{http.MethodPut, "/users/some-id"},
		{http.MethodGet, "/healthz"},
		{http.MethodGet, "/readyz"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rr := httptest.NewRecorder()
		srv.httpServer.Handler.ServeHTTP(rr, req)

		if rr.Code == http.StatusNotFound || rr.Code == http.StatusMethodNotAllowed {
			t.Errorf("%s %s is not routed: got %d", tc.method, tc.path, rr.Code)
		}
	}
}

func TestServer_AttachesRequestID(t *testing.T) {
	srv := testServer(t, Options{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rr := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rr, req)

	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("expected an X-Request-ID header on the response")
	}
}

func TestServer_MetricsRouteOnlyWhenConfigured(t *testing.T) {
	without := testServer(t, Options{})
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rr := httptest.NewRecorder()
	without.httpServer.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Errorf("got %d for unconfigured /metrics, want 404", rr.Code)
	}

	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	with := testServer(t, Options{MetricsHandler: metrics})
	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rr = httptest.NewRecorder()
	with.httpServer.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("got %d for configured /metrics, want 200", rr.Code)
	}
}

func TestServer_RateLimitApplied(t *testing.T) {
	srv := testServer(t, Options{RateLimitPerSecond: 1, RateLimitBurst: 1})

	first := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	first.RemoteAddr = "10.0.0.9:1234"
	rr1 := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rr1, first)
	if rr1.Code != http.StatusOK {
		t.Fatalf("first request: got %d, want 200", rr1.Code)
	}

	second := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	second.RemoteAddr = "10.0.0.9:1234"
	rr2 := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rr2, second)
	if rr2.Code != http.StatusTooManyRequests {
		t.Errorf("second request: got %d, want 429", rr2.Code)
	}
}
