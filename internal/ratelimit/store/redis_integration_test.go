//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"museum/internal/ratelimit/models"
	"museum/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *RedisStore
	ctx   context.Context
}

func TestRedisStoreSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
	s.store = NewRedisStore(s.redis.Client)
	s.ctx = context.Background()
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(s.ctx))
}

func (s *RedisStoreSuite) TestSlidingWindow() {
	start := time.Now().Truncate(time.Millisecond)
	for i := range testLimit.Requests {
		res, err := s.store.Allow(s.ctx, "ratelimit:auth:10.0.0.1", testLimit, start.Add(time.Duration(i)*time.Second))
		s.Require().NoError(err)
		s.True(res.Allowed)
		s.Equal(testLimit.Requests-i-1, res.Remaining)
	}

	res, err := s.store.Allow(s.ctx, "ratelimit:auth:10.0.0.1", testLimit, start.Add(30*time.Second))
	s.Require().NoError(err)
	s.False(res.Allowed)
	s.WithinDuration(start.Add(time.Minute), res.ResetAt, 0)
	s.Equal(30, res.RetryAfter)

	res, err = s.store.Allow(s.ctx, "ratelimit:auth:10.0.0.1", testLimit, start.Add(time.Minute+time.Millisecond))
	s.Require().NoError(err)
	s.True(res.Allowed)
}

func (s *RedisStoreSuite) TestSameMillisecondRequestsCountSeparately() {
	now := time.Now()
	for range testLimit.Requests {
		res, err := s.store.Allow(s.ctx, "burst", testLimit, now)
		s.Require().NoError(err)
		s.True(res.Allowed)
	}
	res, err := s.store.Allow(s.ctx, "burst", testLimit, now)
	s.Require().NoError(err)
	s.False(res.Allowed)
}

func (s *RedisStoreSuite) TestKeyExpires() {
	_, err := s.store.Allow(s.ctx, "ttl", models.Limit{Requests: 5, Window: time.Minute}, time.Now())
	s.Require().NoError(err)
	ttl, err := s.redis.Client.PTTL(s.ctx, "ttl").Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
	s.LessOrEqual(ttl, time.Minute)
}
