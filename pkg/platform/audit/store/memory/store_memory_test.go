package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"museum/pkg/platform/audit"
)

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := NewInMemoryStore()
	require.NoError(t, s.Append(ctx, audit.Event{UserID: 1, Action: audit.ActionUserRegistered, Timestamp: base}))
	require.NoError(t, s.Append(ctx, audit.Event{UserID: 2, Action: audit.ActionAuthFailed, Timestamp: base.Add(2 * time.Minute)}))
	require.NoError(t, s.Append(ctx, audit.Event{UserID: 1, Action: audit.ActionLoginSucceeded, Timestamp: base.Add(time.Minute)}))

	t.Run("lists one user's events in append order", func(t *testing.T) {
		events, err := s.ListByUser(ctx, 1)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, audit.ActionUserRegistered, events[0].Action)
		assert.Equal(t, audit.ActionLoginSucceeded, events[1].Action)
	})

	t.Run("lists recent events newest first", func(t *testing.T) {
		events, err := s.ListRecent(ctx, 2)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, audit.ActionAuthFailed, events[0].Action)
		assert.Equal(t, audit.ActionLoginSucceeded, events[1].Action)
	})

	t.Run("clear empties the store", func(t *testing.T) {
		s.Clear()
		events, err := s.ListRecent(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}
