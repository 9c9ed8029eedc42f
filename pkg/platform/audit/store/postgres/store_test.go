package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"museum/pkg/platform/audit"
)

func newStoreWithMock(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return New(db), mock
}

func TestAppend(t *testing.T) {
	at := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	t.Run("derives the category and stores blanks as NULL", func(t *testing.T) {
		store, mock := newStoreWithMock(t)
		mock.ExpectExec(`INSERT INTO audit_events`).
			WithArgs(sqlmock.AnyArg(), "security", "auth_failed", nil, "ada@example.com", nil,
				"bad_password", "req-1", "10.0.0.1", "Firefox on Linux x86_64", at).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := store.Append(context.Background(), audit.Event{
			Action:    audit.ActionAuthFailed,
			Timestamp: at,
			Email:     "ada@example.com",
			Reason:    "bad_password",
			RequestID: "req-1",
			ClientIP:  "10.0.0.1",
			Device:    "Firefox on Linux x86_64",
		})
		require.NoError(t, err)
	})

	t.Run("wraps driver errors", func(t *testing.T) {
		store, mock := newStoreWithMock(t)
		boom := errors.New("connection reset")
		mock.ExpectExec(`INSERT INTO audit_events`).WillReturnError(boom)

		err := store.Append(context.Background(), audit.Event{Action: audit.ActionLoginSucceeded, UserID: 4, Timestamp: at})
		assert.ErrorIs(t, err, boom)
	})
}

func TestListRecent(t *testing.T) {
	store, mock := newStoreWithMock(t)
	at := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	cols := []string{"category", "action", "user_id", "email", "subject", "reason", "request_id", "client_ip", "device", "occurred_at"}
	mock.ExpectQuery(`SELECT category, action .* FROM audit_events ORDER BY occurred_at DESC LIMIT \$1`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("operations", "payment_settled", nil, nil, "DON-123", nil, nil, nil, nil, at).
			AddRow("compliance", "user_registered", int64(7), "ada@example.com", nil, nil, "req-9", "10.0.0.2", "Safari on iPhone OS 17_0", at.Add(-time.Hour)))

	events, err := store.ListRecent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, audit.ActionPaymentSettled, events[0].Action)
	assert.Equal(t, "DON-123", events[0].Subject)
	assert.Zero(t, events[0].UserID)
	assert.Equal(t, int64(7), events[1].UserID)
	assert.Equal(t, audit.CategoryCompliance, events[1].Category)
	assert.Equal(t, "Safari on iPhone OS 17_0", events[1].Device)
}
