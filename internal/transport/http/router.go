// Package httptransport assembles the public router: global middleware,
// health and metrics endpoints, and every module's routes.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"museum/internal/platform/metrics"
	securitymw "museum/internal/platform/middleware"
	dErrors "museum/pkg/domain-errors"
	"museum/pkg/platform/httputil"
	"museum/pkg/platform/middleware/metadata"
	"museum/pkg/platform/middleware/request"
	"museum/pkg/platform/middleware/requesttime"
)

const healthTimeout = 2 * time.Second

// Module is a feature package that mounts its own routes.
type Module interface {
	Register(r chi.Router)
}

// HealthCheck probes one dependency.
type HealthCheck func(ctx context.Context) error

// Deps are the pieces NewRouter wires together. Nil optional fields are skipped.
type Deps struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	RateLimit      func(http.Handler) http.Handler
	AllowedOrigins []string
	ClientIP       *metadata.Resolver
	Production     bool
	Checks         map[string]HealthCheck
	Modules        []Module
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Success bool              `json:"success"`
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// NewRouter wires every public endpoint behind the shared middleware stack.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Use(requesttime.Middleware)
	if d.ClientIP != nil {
		r.Use(d.ClientIP.Middleware)
	} else {
		r.Use(metadata.ClientMetadata)
	}
	r.Use(request.Recovery(d.Logger))
	r.Use(request.Logger(d.Logger))
	r.Use(securitymw.SecurityHeaders(d.Production))
	r.Use(securitymw.CORS(d.AllowedOrigins))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
	}

	r.Get("/health", healthHandler(d.Checks))
	if d.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(d.Gatherer))
	}

	r.Group(func(r chi.Router) {
		if d.RateLimit != nil {
			r.Use(d.RateLimit)
		}
		for _, m := range d.Modules {
			m.Register(r)
		}
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "Route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusMethodNotAllowed, httputil.ErrorResponse{
			Success: false,
			Message: "Method not allowed",
			Error:   "method_not_allowed",
		})
	})
	return r
}

// healthHandler runs every check concurrently and answers 503 when any fails.
func healthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		type outcome struct {
			name string
			err  error
		}
		results := make([]outcome, 0, len(checks))
		resultCh := make(chan outcome, len(checks))
		var g errgroup.Group
		for name, check := range checks {
			g.Go(func() error {
				resultCh <- outcome{name: name, err: check(ctx)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
		for o := range resultCh {
			results = append(results, o)
		}

		resp := HealthResponse{Success: true, Status: "ok"}
		status := http.StatusOK
		if len(results) > 0 {
			resp.Checks = make(map[string]string, len(results))
		}
		for _, o := range results {
			if o.err != nil {
				resp.Checks[o.name] = "unavailable"
				resp.Success, resp.Status, status = false, "degraded", http.StatusServiceUnavailable
				continue
			}
			resp.Checks[o.name] = "ok"
		}
		httputil.WriteJSON(w, status, resp)
	}
}
