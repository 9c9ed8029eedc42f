// Package user persists museum accounts in PostgreSQL.
package user

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"museum/internal/auth/models"
	"museum/internal/platform/postgres"
	"museum/pkg/platform/sentinel"
)

const userColumns = `id, name, email, password, account_type, is_account_verified,
	verify_otp, verify_otp_expires_at, reset_otp, reset_otp_expires_at, created_at`

// PostgresStore persists users.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Create inserts u and fills in its id and creation time. A duplicate email
// returns sentinel.ErrConflict.
func (s *PostgresStore) Create(ctx context.Context, u *models.User) error {
	query := `
		INSERT INTO users (name, email, password, account_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := s.db.QueryRowContext(ctx, query, u.Name, u.Email, u.PasswordHash, u.AccountType).
		Scan(&u.ID, &u.CreatedAt)
	return postgres.MapError("create user", err)
}

func (s *PostgresStore) FindByID(ctx context.Context, id int64) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row, "find user by id")
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row, "find user by email")
}

// SetVerifyOTP stores a new verification code, replacing any previous one.
func (s *PostgresStore) SetVerifyOTP(ctx context.Context, id int64, otp string, expiresAt time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE users SET verify_otp = $2, verify_otp_expires_at = $3 WHERE id = $1`,
		id, otp, expiresAt)
	if err != nil {
		return postgres.MapError("set verify otp", err)
	}
	return requireRow(res, "set verify otp")
}

// ConsumeVerifyOTP marks the account verified and clears the code, but only
// while the stored code still equals otp and has not expired. A concurrent
// consumer that got there first leaves nothing to match and the call returns
// sentinel.ErrAlreadyUsed.
func (s *PostgresStore) ConsumeVerifyOTP(ctx context.Context, id int64, otp string, now time.Time) error {
	query := `
		UPDATE users
		SET is_account_verified = TRUE, verify_otp = '', verify_otp_expires_at = NULL
		WHERE id = $1 AND verify_otp <> '' AND verify_otp = $2 AND verify_otp_expires_at > $3
		RETURNING id
	`
	var got int64
	err := s.db.QueryRowContext(ctx, query, id, otp, now).Scan(&got)
	if errors.Is(err, sql.ErrNoRows) {
		return sentinel.ErrAlreadyUsed
	}
	return postgres.MapError("consume verify otp", err)
}

func (s *PostgresStore) SetResetOTP(ctx context.Context, email, otp string, expiresAt time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE users SET reset_otp = $2, reset_otp_expires_at = $3 WHERE email = $1`,
		email, otp, expiresAt)
	if err != nil {
		return postgres.MapError("set reset otp", err)
	}
	return requireRow(res, "set reset otp")
}

// ConsumeResetOTP replaces the password hash and clears the reset code under
// the same guard as ConsumeVerifyOTP.
func (s *PostgresStore) ConsumeResetOTP(ctx context.Context, email, otp, passwordHash string, now time.Time) error {
	query := `
		UPDATE users
		SET password = $4, reset_otp = '', reset_otp_expires_at = NULL
		WHERE email = $1 AND reset_otp <> '' AND reset_otp = $2 AND reset_otp_expires_at > $3
		RETURNING id
	`
	var got int64
	err := s.db.QueryRowContext(ctx, query, email, otp, now, passwordHash).Scan(&got)
	if errors.Is(err, sql.ErrNoRows) {
		return sentinel.ErrAlreadyUsed
	}
	return postgres.MapError("consume reset otp", err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, op string) (*models.User, error) {
	var (
		u                   models.User
		verifyExp, resetExp sql.NullTime
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.AccountType, &u.IsAccountVerified,
		&u.VerifyOTP, &verifyExp, &u.ResetOTP, &resetExp, &u.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(op, err)
	}
	u.VerifyOTPExpiresAt = verifyExp.Time
	u.ResetOTPExpiresAt = resetExp.Time
	return &u, nil
}

func requireRow(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return postgres.MapError(op, err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
