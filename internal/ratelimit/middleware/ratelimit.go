package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"museum/internal/ratelimit/models"
	"museum/pkg/platform/httputil"
	"museum/pkg/platform/middleware/metadata"
	"museum/pkg/requestcontext"
)

const exceededMessage = "Too many requests from this IP address. Please try again later."

type Limiter interface {
	Check(ctx context.Context, ip string, class models.Class) (*models.Result, error)
}

type Middleware struct {
	limiter  Limiter
	logger   *slog.Logger
	disabled bool
}

type Option func(*Middleware)

// WithDisabled turns the gate into a pass-through.
func WithDisabled(disabled bool) Option {
	return func(m *Middleware) {
		m.disabled = disabled
	}
}

func New(limiter Limiter, logger *slog.Logger, opts ...Option) *Middleware {
	m := &Middleware{limiter: limiter, logger: logger}
	for _, opt := range opts {
		opt(m)
	}
	if m.disabled {
		logger.Info("rate limiting disabled")
	}
	return m
}

// Gate limits every request by client IP, using the auth class for
// /api/auth/* and the general class elsewhere.
func (m *Middleware) Gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.serve(w, r, next, models.ClassFor(r))
	})
}

// RateLimit limits every request it wraps under a fixed class.
func (m *Middleware) RateLimit(class models.Class) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m.serve(w, r, next, class)
		})
	}
}

func (m *Middleware) serve(w http.ResponseWriter, r *http.Request, next http.Handler, class models.Class) {
	if m.disabled || m.limiter == nil || r.Method == http.MethodOptions {
		next.ServeHTTP(w, r)
		return
	}

	ctx := r.Context()
	ip := requestcontext.ClientIP(ctx)
	if ip == "" {
		ip = metadata.ClientIPFromRequest(r)
	}

	result, err := m.limiter.Check(ctx, ip, class)
	if err != nil {
		m.logger.ErrorContext(ctx, "rate limit check failed, allowing request",
			"error", err,
			"class", class,
			"request_id", requestcontext.RequestID(ctx),
		)
		next.ServeHTTP(w, r)
		return
	}

	addHeaders(w, result)
	if !result.Allowed {
		m.logger.WarnContext(ctx, "rate limit exceeded",
			"class", class,
			"path", r.URL.Path,
			"request_id", requestcontext.RequestID(ctx),
		)
		writeExceeded(w, result)
		return
	}
	next.ServeHTTP(w, r)
}

func addHeaders(w http.ResponseWriter, result *models.Result) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
	if result.Degraded {
		w.Header().Set("X-RateLimit-Status", "degraded")
	}
}

func writeExceeded(w http.ResponseWriter, result *models.Result) {
	w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfter))
	httputil.WriteJSON(w, http.StatusTooManyRequests, models.ExceededResponse{
		Success:    false,
		Message:    exceededMessage,
		Error:      "rate_limit_exceeded",
		RetryAfter: result.RetryAfter,
	})
}
