package service

//go:generate mockgen -source=limiter.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"museum/internal/platform/config"
	"museum/internal/ratelimit/metrics"
	"museum/internal/ratelimit/models"
	"museum/internal/ratelimit/service/mocks"
)

var testConfig = config.RateLimitConfig{GeneralLimit: 100, AuthLimit: 10, Window: time.Minute}

type LimiterSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	primary  *mocks.MockStore
	fallback *mocks.MockStore
	metrics  *metrics.Metrics
	limiter  *Limiter
	ctx      context.Context
	now      time.Time
}

func TestLimiterSuite(t *testing.T) {
	suite.Run(t, new(LimiterSuite))
}

func (s *LimiterSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.primary = mocks.NewMockStore(s.ctrl)
	s.fallback = mocks.NewMockStore(s.ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.now = time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)
	l, err := New(s.primary, testConfig,
		WithFallback(s.fallback),
		WithMetrics(s.metrics),
		WithClock(func() time.Time { return s.now }),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	s.Require().NoError(err)
	s.limiter = l
	s.ctx = context.Background()
}

func (s *LimiterSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *LimiterSuite) TestNewValidates() {
	_, err := New(nil, testConfig)
	s.Error(err)
	_, err = New(s.primary, config.RateLimitConfig{GeneralLimit: 1, AuthLimit: 1})
	s.Error(err)
}

func (s *LimiterSuite) TestClassesUseTheirOwnLimits() {
	s.primary.EXPECT().Allow(gomock.Any(), "ratelimit:auth:1.2.3.4", models.Limit{Requests: 10, Window: time.Minute}, s.now).
		Return(&models.Result{Allowed: true, Limit: 10, Remaining: 9}, nil)
	s.primary.EXPECT().Allow(gomock.Any(), "ratelimit:general:1.2.3.4", models.Limit{Requests: 100, Window: time.Minute}, s.now).
		Return(&models.Result{Allowed: false, Limit: 100, RetryAfter: 4}, nil)

	res, err := s.limiter.Check(s.ctx, "1.2.3.4", models.ClassAuth)
	s.Require().NoError(err)
	s.True(res.Allowed)

	res, err = s.limiter.Check(s.ctx, "1.2.3.4", models.ClassGeneral)
	s.Require().NoError(err)
	s.False(res.Allowed)

	s.Equal(1.0, testutil.ToFloat64(s.metrics.Decisions.WithLabelValues("auth", "allowed")))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.Decisions.WithLabelValues("general", "limited")))
}

func (s *LimiterSuite) TestStoreErrorIsReturned() {
	s.primary.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))

	_, err := s.limiter.Check(s.ctx, "1.2.3.4", models.ClassGeneral)
	s.Error(err)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.StoreErrors.WithLabelValues("general")))
}

func (s *LimiterSuite) TestFallsBackAfterRepeatedFailures() {
	down := errors.New("redis down")
	s.primary.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, down).Times(5)
	for range 5 {
		_, err := s.limiter.Check(s.ctx, "1.2.3.4", models.ClassGeneral)
		s.Error(err)
	}

	s.Run("open breaker serves from the fallback", func() {
		s.primary.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, down)
		s.fallback.EXPECT().Allow(gomock.Any(), "ratelimit:general:1.2.3.4", gomock.Any(), s.now).
			Return(&models.Result{Allowed: true, Limit: 100, Remaining: 99}, nil)

		res, err := s.limiter.Check(s.ctx, "1.2.3.4", models.ClassGeneral)
		s.Require().NoError(err)
		s.True(res.Degraded)
	})

	s.Run("closes after the primary answers three times", func() {
		ok := &models.Result{Allowed: true, Limit: 100, Remaining: 50}
		s.primary.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(ok, nil).Times(3)
		s.fallback.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&models.Result{Allowed: true}, nil).Times(3)
		for range 3 {
			_, err := s.limiter.Check(s.ctx, "1.2.3.4", models.ClassGeneral)
			s.Require().NoError(err)
		}

		s.primary.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(ok, nil)
		res, err := s.limiter.Check(s.ctx, "1.2.3.4", models.ClassGeneral)
		s.Require().NoError(err)
		s.False(res.Degraded)
		s.Equal(50, res.Remaining)
	})
}
