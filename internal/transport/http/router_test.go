package httptransport

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"museum/internal/platform/metrics"
	"museum/pkg/platform/httputil"
	"museum/pkg/platform/middleware/metadata"
	"museum/pkg/requestcontext"
	"museum/pkg/testutil"
)

type pingModule struct{}

func (pingModule) Register(r chi.Router) {
	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"success":    true,
			"request_id": requestcontext.RequestID(r.Context()),
			"client_ip":  requestcontext.ClientIP(r.Context()),
		})
	})
}

func newRouter(t *testing.T, d Deps) http.Handler {
	t.Helper()
	d.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	d.AllowedOrigins = []string{"https://isinrimuseum.org"}
	d.Modules = append(d.Modules, pingModule{})
	return NewRouter(d)
}

func TestModulesSeeRequestMetadata(t *testing.T) {
	router := newRouter(t, Deps{})
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.RemoteAddr = "192.0.2.50:1234"
	req.Header.Set("X-Forwarded-For", "198.51.100.7")

	rr := testutil.DoRequest(router, req)
	body := testutil.AssertSuccess(t, rr, http.StatusOK)
	assert.NotEmpty(t, body["request_id"])
	assert.Equal(t, "192.0.2.50", body["client_ip"], "forwarding headers need a trusted proxy")
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
}

func TestTrustedProxyForwardsClientIP(t *testing.T) {
	resolver, err := metadata.NewResolver([]string{"10.0.0.0/8"})
	require.NoError(t, err)
	router := newRouter(t, Deps{ClientIP: resolver})

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	req.Header.Set("X-Forwarded-For", "198.51.100.7")

	body := testutil.AssertSuccess(t, testutil.DoRequest(router, req), http.StatusOK)
	assert.Equal(t, "198.51.100.7", body["client_ip"])
}

func TestRateLimitWrapsModulesOnly(t *testing.T) {
	blocked := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})
	}
	router := newRouter(t, Deps{RateLimit: blocked})

	rr := testutil.DoRequest(router, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)

	rr = testutil.DoRequest(router, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHealth(t *testing.T) {
	t.Run("all checks pass", func(t *testing.T) {
		router := newRouter(t, Deps{Checks: map[string]HealthCheck{
			"postgres": func(context.Context) error { return nil },
		}})
		rr := testutil.DoRequest(router, httptest.NewRequest(http.MethodGet, "/health", nil))
		body := testutil.AssertSuccess(t, rr, http.StatusOK)
		assert.Equal(t, "ok", body["checks"].(map[string]any)["postgres"])
	})

	t.Run("a failing check degrades", func(t *testing.T) {
		router := newRouter(t, Deps{Checks: map[string]HealthCheck{
			"postgres": func(context.Context) error { return nil },
			"redis":    func(context.Context) error { return errors.New("refused") },
		}})
		rr := testutil.DoRequest(router, httptest.NewRequest(http.MethodGet, "/health", nil))
		testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
		body := testutil.DecodeBody(t, rr)
		assert.Equal(t, "degraded", body["status"])
		assert.Equal(t, "unavailable", body["checks"].(map[string]any)["redis"])
	})
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	router := newRouter(t, Deps{Metrics: metrics.New(reg), Gatherer: reg})

	testutil.DoRequest(router, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	rr := testutil.DoRequest(router, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `museum_http_requests_total{method="GET",route="/api/ping",status="200"} 1`)
}

func TestUnknownRoutes(t *testing.T) {
	router := newRouter(t, Deps{})

	rr := testutil.DoRequest(router, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	testutil.AssertFailure(t, rr, http.StatusNotFound, "Route not found")

	rr = testutil.DoRequest(router, httptest.NewRequest(http.MethodDelete, "/api/ping", nil))
	testutil.AssertFailure(t, rr, http.StatusMethodNotAllowed, "Method not allowed")
}

func TestCORSPreflight(t *testing.T) {
	router := newRouter(t, Deps{})
	req := httptest.NewRequest(http.MethodOptions, "/api/ping", nil)
	req.Header.Set("Origin", "https://isinrimuseum.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	rr := testutil.DoRequest(router, req)
	assert.Equal(t, "https://isinrimuseum.org", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
}
