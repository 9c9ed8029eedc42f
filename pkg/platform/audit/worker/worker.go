// Package worker drains buffered audit events into a store.
package worker

import (
	"context"
	"log/slog"
	"time"

	"museum/pkg/platform/audit"
)

// Worker moves events from a RingBuffer to a Store in batches, on every
// notification and at least once per interval.
type Worker struct {
	store     audit.Store
	buffer    *audit.RingBuffer
	notify    <-chan struct{}
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
}

type Option func(*Worker)

func WithLogger(logger *slog.Logger) Option {
	return func(w *Worker) {
		w.logger = logger
	}
}

func WithInterval(d time.Duration) Option {
	return func(w *Worker) {
		if d > 0 {
			w.interval = d
		}
	}
}

func NewWorker(store audit.Store, buffer *audit.RingBuffer, notify <-chan struct{}, opts ...Option) *Worker {
	w := &Worker{
		store:     store,
		buffer:    buffer,
		notify:    notify,
		interval:  time.Second,
		batchSize: 100,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run drains until ctx is cancelled, then flushes whatever is left.
func (w *Worker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.Flush(context.WithoutCancel(ctx))
			return nil
		case <-w.notify:
			w.Flush(ctx)
		case <-ticker.C:
			w.Flush(ctx)
		}
	}
}

// Flush appends every buffered event. Events the store rejects are logged
// and dropped.
func (w *Worker) Flush(ctx context.Context) {
	for {
		batch := w.buffer.DequeueBatch(w.batchSize)
		if len(batch) == 0 {
			return
		}
		for _, event := range batch {
			if err := w.store.Append(ctx, event); err != nil {
				w.logger.ErrorContext(ctx, "audit event not stored",
					"action", event.Action,
					"request_id", event.RequestID,
					"error", err,
				)
			}
		}
	}
}
