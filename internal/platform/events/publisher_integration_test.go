//go:build integration

package events_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	"museum/internal/platform/config"
	"museum/internal/platform/events"
	"museum/pkg/testutil/containers"
)

type KafkaPublisherSuite struct {
	suite.Suite
	redpanda *containers.RedpandaContainer
}

func TestKafkaPublisherSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KafkaPublisherSuite))
}

func (s *KafkaPublisherSuite) SetupSuite() {
	s.redpanda = containers.GetManager().GetRedpanda(s.T())
}

func (s *KafkaPublisherSuite) TestPublishedEventIsConsumable() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	topic := "payment-status-test"
	pub, err := events.NewKafkaPublisher(ctx, config.KafkaConfig{Brokers: []string{s.redpanda.Broker}, Topic: topic})
	s.Require().NoError(err)
	defer pub.Close()

	event := events.PaymentStatusChanged{Kind: "donation", Reference: "DON-abc", From: "pending", To: "completed", Source: "webhook", AmountKobo: 500000}
	s.Require().NoError(pub.PublishPaymentStatus(ctx, event))
	s.Require().NoError(pub.Flush(ctx))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.redpanda.Broker),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	s.Require().Empty(fetches.Errors())
	records := fetches.Records()
	s.Require().NotEmpty(records)

	var got events.PaymentStatusChanged
	s.Require().NoError(json.Unmarshal(records[0].Value, &got))
	s.Equal("DON-abc", string(records[0].Key))
	s.Equal("completed", got.To)
	s.False(got.OccurredAt.IsZero())
}
