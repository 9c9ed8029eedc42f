// Package store persists the catalog tables in PostgreSQL.
//
// Every lookup by id returns sentinel.ErrNotFound when no row matches;
// Update and Delete use RETURNING so a missing row is detected in the same
// statement.
package store

import "database/sql"

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
