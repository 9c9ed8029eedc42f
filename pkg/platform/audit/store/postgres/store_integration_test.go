//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"museum/pkg/platform/audit"
	"museum/pkg/platform/audit/publisher"
	auditstore "museum/pkg/platform/audit/store/postgres"
	"museum/pkg/testutil/containers"
)

type AuditStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *auditstore.Store
}

func TestAuditStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(AuditStoreSuite))
}

func (s *AuditStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = auditstore.New(s.postgres.DB)
}

func (s *AuditStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "audit_events"))
}

func (s *AuditStoreSuite) TestAsyncPublisherPersistsInOrder() {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	pub := publisher.NewPublisher(s.store, publisher.WithAsyncBuffer(16))
	for i, action := range []audit.Action{audit.ActionUserRegistered, audit.ActionOTPIssued, audit.ActionAccountVerified} {
		s.Require().NoError(pub.Emit(ctx, audit.Event{
			Action:    action,
			UserID:    12,
			Email:     "ada@example.com",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	pub.Close()

	events, err := s.store.ListRecent(ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(events, 3)
	s.Equal(audit.ActionAccountVerified, events[0].Action)
	s.Equal(audit.ActionUserRegistered, events[2].Action)
	s.Equal(audit.CategoryCompliance, events[2].Category)
	s.Equal(int64(12), events[2].UserID)
	s.WithinDuration(base, events[2].Timestamp, 0)
}
