// Package postgres opens the shared database handle, runs schema migrations
// and translates driver errors into storage sentinels.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"museum/internal/platform/config"
	"museum/internal/platform/postgres/migrations"
	"museum/pkg/platform/sentinel"
)

// Postgres error codes the stores care about.
const (
	codeUniqueViolation       = "23505"
	codeInvalidDatetimeFormat = "22007"
	codeDatetimeFieldOverflow = "22008"
)

// Open connects to Postgres, applies pool limits and verifies the connection.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// Migrate applies every pending embedded migration. Each migration uses
// CREATE ... IF NOT EXISTS so it is safe against databases that predate goose.
func Migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// MapError converts driver errors into sentinel errors and wraps everything
// else with op. It returns nil for a nil err.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return sentinel.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s: %w", op, sentinel.ErrConflict)
		case codeInvalidDatetimeFormat, codeDatetimeFieldOverflow:
			return fmt.Errorf("%s: %w", op, sentinel.ErrInvalidInput)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
