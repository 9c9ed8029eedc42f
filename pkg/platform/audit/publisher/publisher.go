// Package publisher is the entry point services use to record audit events.
package publisher

import (
	"context"
	"log/slog"
	"sync"

	"museum/pkg/platform/audit"
	"museum/pkg/platform/audit/worker"
	"museum/pkg/requestcontext"
)

// Publisher fills in request metadata and hands events to the store. In
// async mode events go through a bounded buffer and Emit never blocks on the
// store.
type Publisher struct {
	store    audit.Store
	logger   *slog.Logger
	capacity int

	buffer *audit.RingBuffer
	notify chan struct{}
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

type Option func(*Publisher)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// WithAsyncBuffer enables async mode with a buffer of the given size.
func WithAsyncBuffer(size int) Option {
	return func(p *Publisher) {
		p.capacity = size
	}
}

func NewPublisher(store audit.Store, opts ...Option) *Publisher {
	p := &Publisher{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	if p.capacity > 0 {
		p.buffer = audit.NewRingBuffer(p.capacity)
		p.notify = make(chan struct{}, 1)
		p.done = make(chan struct{})
		ctx, cancel := context.WithCancel(context.Background())
		p.cancel = cancel
		w := worker.NewWorker(store, p.buffer, p.notify, worker.WithLogger(p.logger))
		go func() {
			defer close(p.done)
			_ = w.Run(ctx)
		}()
	}
	return p
}

// Emit records event. Missing request metadata is taken from ctx.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.Category == "" {
		event.Category = event.Action.Category()
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	if event.ClientIP == "" {
		event.ClientIP = requestcontext.ClientIP(ctx)
	}
	if event.Device == "" {
		event.Device = audit.DeviceFromUserAgent(requestcontext.UserAgent(ctx))
	}

	if p.buffer == nil {
		return p.store.Append(ctx, event)
	}
	if p.buffer.Enqueue(event) {
		p.logger.WarnContext(ctx, "audit buffer full, oldest event dropped", "action", event.Action)
	}
	select {
	case p.notify <- struct{}{}:
	default:
	}
	return nil
}

// Close stops the background worker after it drains the buffer. It is a
// no-op in sync mode.
func (p *Publisher) Close() {
	if p.buffer == nil {
		return
	}
	p.once.Do(func() {
		p.cancel()
		<-p.done
	})
}
