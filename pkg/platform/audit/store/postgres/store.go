// Package postgres stores audit events in the audit_events table.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"museum/pkg/platform/audit"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Append(ctx context.Context, event audit.Event) error {
	category := event.Category
	if category == "" {
		category = event.Action.Category()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO audit_events (id, category, action, user_id, email, subject, reason, request_id, client_ip, device, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		uuid.New(),
		string(category),
		string(event.Action),
		nullInt(event.UserID),
		nullString(event.Email),
		nullString(event.Subject),
		nullString(event.Reason),
		nullString(event.RequestID),
		nullString(event.ClientIP),
		nullString(event.Device),
		event.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// ListRecent returns up to limit events, newest first.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]audit.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT category, action, user_id, email, subject, reason, request_id, client_ip, device, occurred_at
		FROM audit_events
		ORDER BY occurred_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []audit.Event
	for rows.Next() {
		var (
			e                                                   audit.Event
			category, action                                    string
			userID                                              sql.NullInt64
			email, subject, reason, requestID, clientIP, device sql.NullString
		)
		if err := rows.Scan(&category, &action, &userID, &email, &subject, &reason, &requestID, &clientIP, &device, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		e.Category = audit.Category(category)
		e.Action = audit.Action(action)
		e.UserID = userID.Int64
		e.Email = email.String
		e.Subject = subject.String
		e.Reason = reason.String
		e.RequestID = requestID.String
		e.ClientIP = clientIP.String
		e.Device = device.String
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: v != 0}
}
