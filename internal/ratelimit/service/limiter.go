// Package service decides whether a client may make another request.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"museum/internal/platform/config"
	"museum/internal/ratelimit/metrics"
	"museum/internal/ratelimit/models"
	"museum/internal/ratelimit/store"
	"museum/pkg/platform/circuit"
)

// Store counts requests in a sliding window.
type Store interface {
	Allow(ctx context.Context, key string, limit models.Limit, now time.Time) (*models.Result, error)
}

// Limiter applies per-class limits against a primary store. When the primary
// keeps failing it switches to an in-memory fallback until the primary
// recovers; results served from the fallback are marked Degraded.
type Limiter struct {
	primary  Store
	fallback Store
	limits   map[models.Class]models.Limit
	breaker  *circuit.Breaker
	metrics  *metrics.Metrics
	logger   *slog.Logger
	now      func() time.Time
}

type Option func(*Limiter)

func WithLogger(logger *slog.Logger) Option {
	return func(l *Limiter) {
		l.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(l *Limiter) {
		l.metrics = m
	}
}

func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

// WithFallback replaces the in-memory store used while the primary is down.
func WithFallback(s Store) Option {
	return func(l *Limiter) {
		l.fallback = s
	}
}

func New(primary Store, cfg config.RateLimitConfig, opts ...Option) (*Limiter, error) {
	if primary == nil {
		return nil, errors.New("rate limit store is required")
	}
	if cfg.Window <= 0 || cfg.GeneralLimit <= 0 || cfg.AuthLimit <= 0 {
		return nil, fmt.Errorf("rate limits must be positive: general=%d auth=%d window=%s",
			cfg.GeneralLimit, cfg.AuthLimit, cfg.Window)
	}
	l := &Limiter{
		primary: primary,
		limits: map[models.Class]models.Limit{
			models.ClassGeneral: {Requests: cfg.GeneralLimit, Window: cfg.Window},
			models.ClassAuth:    {Requests: cfg.AuthLimit, Window: cfg.Window},
		},
		breaker: circuit.New("ratelimit", circuit.WithFailureThreshold(5), circuit.WithSuccessThreshold(3)),
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.fallback == nil {
		l.fallback = store.NewMemoryStore()
	}
	return l, nil
}

// Check counts one request from ip against class. An error means neither
// store could answer; callers let the request through.
func (l *Limiter) Check(ctx context.Context, ip string, class models.Class) (*models.Result, error) {
	limit, ok := l.limits[class]
	if !ok {
		limit = l.limits[models.ClassGeneral]
	}
	key := models.Key(class, ip)
	now := l.now()

	if l.breaker.IsOpen() {
		return l.checkFallback(ctx, key, class, limit, now)
	}

	result, err := l.primary.Allow(ctx, key, limit, now)
	if err != nil {
		if _, change := l.breaker.RecordFailure(); change.Opened {
			l.logger.WarnContext(ctx, "rate limit store unavailable, using in-memory fallback", "error", err)
		}
		l.observeError(class)
		return nil, err
	}
	if _, change := l.breaker.RecordSuccess(); change.Closed {
		l.logger.InfoContext(ctx, "rate limit store recovered")
	}
	l.observe(class, result)
	return result, nil
}

func (l *Limiter) checkFallback(ctx context.Context, key string, class models.Class, limit models.Limit, now time.Time) (*models.Result, error) {
	// Probe the primary so the breaker can close once it answers again.
	if _, err := l.primary.Allow(ctx, key, limit, now); err == nil {
		if _, change := l.breaker.RecordSuccess(); change.Closed {
			l.logger.InfoContext(ctx, "rate limit store recovered")
		}
	} else {
		l.breaker.RecordFailure()
	}

	result, err := l.fallback.Allow(ctx, key, limit, now)
	if err != nil {
		l.observeError(class)
		return nil, err
	}
	result.Degraded = true
	l.observe(class, result)
	return result, nil
}

func (l *Limiter) observe(class models.Class, result *models.Result) {
	if l.metrics == nil {
		return
	}
	l.metrics.IncrementDecision(string(class), result.Allowed)
}

func (l *Limiter) observeError(class models.Class) {
	if l.metrics == nil {
		return
	}
	l.metrics.IncrementStoreError(string(class))
}
