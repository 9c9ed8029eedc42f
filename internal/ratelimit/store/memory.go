package store

import (
	"context"
	"sync"
	"time"

	"museum/internal/ratelimit/models"
)

// MemoryStore keeps a sliding window of request times per key in process.
// Counts are not shared between replicas.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string][]time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{windows: make(map[string][]time.Time)}
}

// Allow records a request at now when key has fewer than limit.Requests
// requests inside the window ending at now.
func (s *MemoryStore) Allow(_ context.Context, key string, limit models.Limit, now time.Time) (*models.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	times := prune(s.windows[key], now.Add(-limit.Window))
	if len(times) >= limit.Requests {
		s.windows[key] = times
		return denied(limit, times[0].Add(limit.Window), now), nil
	}
	times = append(times, now)
	s.windows[key] = times
	return &models.Result{
		Allowed:   true,
		Limit:     limit.Requests,
		Remaining: limit.Requests - len(times),
		ResetAt:   times[0].Add(limit.Window),
	}, nil
}

// Sweep drops keys whose windows have fully expired.
func (s *MemoryStore) Sweep(now time.Time, window time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for key, times := range s.windows {
		if len(prune(times, now.Add(-window))) == 0 {
			delete(s.windows, key)
			removed++
		}
	}
	return removed
}

func prune(times []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(times) && !times[i].After(cutoff) {
		i++
	}
	return times[i:]
}

func denied(limit models.Limit, resetAt, now time.Time) *models.Result {
	retry := int(resetAt.Sub(now).Round(time.Second) / time.Second)
	if retry < 1 {
		retry = 1
	}
	return &models.Result{
		Allowed:    false,
		Limit:      limit.Requests,
		Remaining:  0,
		ResetAt:    resetAt,
		RetryAfter: retry,
	}
}
