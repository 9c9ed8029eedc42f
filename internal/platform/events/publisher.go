// Package events publishes payment status changes to Kafka.
//
// Publishing is fire-and-forget from the caller's point of view: records are
// buffered and produced in the background, so a slow broker never holds up a
// request. The database row is the source of truth and a lost event is
// recovered by the next status read. When no brokers are configured the Nop
// publisher is used.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"museum/internal/platform/config"
)

// PaymentStatusChanged is emitted whenever a donation or payment record
// moves between statuses.
type PaymentStatusChanged struct {
	Kind       string    `json:"kind"`
	Reference  string    `json:"reference"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	Source     string    `json:"source"`
	AmountKobo int64     `json:"amount_kobo"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher emits payment events.
type Publisher interface {
	PublishPaymentStatus(ctx context.Context, event PaymentStatusChanged) error
	Close()
}

// Nop discards events.
type Nop struct{}

func (Nop) PublishPaymentStatus(context.Context, PaymentStatusChanged) error { return nil }
func (Nop) Close()                                                          {}

// KafkaPublisher produces JSON events keyed by payment reference, so every
// event for one reference lands on the same partition in order.
type KafkaPublisher struct {
	client       *kgo.Client
	topic        string
	logger       *slog.Logger
	flushTimeout time.Duration
}

// closeFlushTimeout bounds how long Close waits for buffered records.
const closeFlushTimeout = 5 * time.Second

type Option func(*KafkaPublisher)

func WithLogger(logger *slog.Logger) Option {
	return func(p *KafkaPublisher) {
		p.logger = logger
	}
}

// New returns a KafkaPublisher when brokers are configured and Nop otherwise.
func New(ctx context.Context, cfg config.KafkaConfig, opts ...Option) (Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return Nop{}, nil
	}
	return NewKafkaPublisher(ctx, cfg, opts...)
}

// NewKafkaPublisher connects to the brokers and makes sure the topic exists.
func NewKafkaPublisher(ctx context.Context, cfg config.KafkaConfig, opts ...Option) (*KafkaPublisher, error) {
	if cfg.Topic == "" {
		return nil, fmt.Errorf("kafka topic is required")
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.Topic),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
		kgo.RecordDeliveryTimeout(10*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	p := &KafkaPublisher{client: client, topic: cfg.Topic, logger: slog.Default(), flushTimeout: closeFlushTimeout}
	for _, opt := range opts {
		opt(p)
	}

	if err := ensureTopic(ctx, kadm.NewClient(client), cfg.Topic); err != nil {
		client.Close()
		return nil, err
	}
	return p, nil
}

func ensureTopic(ctx context.Context, adm *kadm.Client, topic string) error {
	resp, err := adm.CreateTopics(ctx, 1, -1, nil, topic)
	if err != nil {
		return fmt.Errorf("create topic %s: %w", topic, err)
	}
	for _, t := range resp {
		if t.Err != nil && !errors.Is(t.Err, kerr.TopicAlreadyExists) {
			return fmt.Errorf("create topic %s: %w", t.Topic, t.Err)
		}
	}
	return nil
}

func (p *KafkaPublisher) PublishPaymentStatus(ctx context.Context, event PaymentStatusChanged) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal payment event: %w", err)
	}
	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.Reference),
		Value: payload,
		Headers: []kgo.RecordHeader{
			{Key: "event_type", Value: []byte("payment.status_changed")},
		},
	}
	// The record outlives the request; cancelling the request must not abort it.
	produceCtx := context.WithoutCancel(ctx)
	p.client.TryProduce(produceCtx, record, func(r *kgo.Record, err error) {
		if err != nil {
			p.logger.WarnContext(produceCtx, "payment event not delivered",
				"reference", event.Reference,
				"status", event.To,
				"error", err,
			)
			return
		}
		p.logger.DebugContext(produceCtx, "payment event published",
			"reference", event.Reference,
			"status", event.To,
			"partition", r.Partition,
			"offset", r.Offset,
		)
	})
	return nil
}

// Flush waits until every buffered record is delivered or has failed.
func (p *KafkaPublisher) Flush(ctx context.Context) error {
	return p.client.Flush(ctx)
}

// Close flushes pending records for a bounded time and closes the client.
func (p *KafkaPublisher) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), p.flushTimeout)
	defer cancel()
	if err := p.Flush(ctx); err != nil {
		p.logger.Warn("payment events still buffered at shutdown", "error", err)
	}
	p.client.Close()
}
