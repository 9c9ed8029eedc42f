// Package store persists donations and shop payments. Each kind lives in its
// own table; both share the paystack_reference key and status lifecycle.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"museum/internal/payment/models"
	"museum/internal/platform/postgres"
)

const (
	donationColumns = `id, full_name, email, phone_number, country, state_province, city,
		in_memory_of, memory_person_name, is_anonymous, amount::float8, paystack_reference, status,
		created_at, updated_at`
	transactionColumns = `id, firstname, lastname, phone, email, address, deliverynote, state,
		amount::float8, paystack_reference, status, created_at, updated_at`
)

var tables = map[models.Kind]string{
	models.KindDonation: "donate",
	models.KindPayment:  "transactions",
}

// PendingRecord identifies a record still waiting on the gateway.
type PendingRecord struct {
	Kind      models.Kind
	Reference string
}

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) CreateDonation(ctx context.Context, d *models.Donation) error {
	query := `
		INSERT INTO donate (full_name, email, phone_number, country, state_province, city,
			in_memory_of, memory_person_name, is_anonymous, amount, paystack_reference, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`
	err := s.db.QueryRowContext(ctx, query, donationArgs(d)...).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	return postgres.MapError("create donation", err)
}

// InsertDonationIfAbsent stores d unless its reference is already known.
// It reports whether a row was written.
func (s *PostgresStore) InsertDonationIfAbsent(ctx context.Context, d *models.Donation) (bool, error) {
	query := `
		INSERT INTO donate (full_name, email, phone_number, country, state_province, city,
			in_memory_of, memory_person_name, is_anonymous, amount, paystack_reference, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (paystack_reference) DO NOTHING
		RETURNING id, created_at, updated_at
	`
	err := s.db.QueryRowContext(ctx, query, donationArgs(d)...).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, postgres.MapError("insert donation if absent", err)
	}
	return true, nil
}

func donationArgs(d *models.Donation) []any {
	return []any{d.FullName, d.Email, d.PhoneNumber, d.Country, d.StateProvince, d.City,
		d.InMemoryOf, d.MemoryPersonName, d.IsAnonymous, d.Amount, d.PaystackReference, string(d.Status)}
}

func (s *PostgresStore) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	query := `
		INSERT INTO transactions (firstname, lastname, phone, email, address, deliverynote, state,
			amount, paystack_reference, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`
	err := s.db.QueryRowContext(ctx, query, transactionArgs(t)...).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	return postgres.MapError("create transaction", err)
}

func (s *PostgresStore) InsertTransactionIfAbsent(ctx context.Context, t *models.Transaction) (bool, error) {
	query := `
		INSERT INTO transactions (firstname, lastname, phone, email, address, deliverynote, state,
			amount, paystack_reference, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (paystack_reference) DO NOTHING
		RETURNING id, created_at, updated_at
	`
	err := s.db.QueryRowContext(ctx, query, transactionArgs(t)...).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, postgres.MapError("insert transaction if absent", err)
	}
	return true, nil
}

func transactionArgs(t *models.Transaction) []any {
	return []any{t.Firstname, t.Lastname, t.Phone, t.Email, t.Address, t.DeliveryNote, t.State,
		t.Amount, t.PaystackReference, string(t.Status)}
}

// UpdateStatus applies status to the record with reference and returns the
// transition. A terminal record is never moved back to pending, so replays of
// stale gateway answers are harmless.
func (s *PostgresStore) UpdateStatus(ctx context.Context, kind models.Kind, reference string, status models.Status, now time.Time) (models.StatusChange, error) {
	table, ok := tables[kind]
	if !ok {
		return models.StatusChange{}, fmt.Errorf("update status: unknown kind %q", kind)
	}
	query := fmt.Sprintf(`
		UPDATE %[1]s AS r
		SET status = CASE
				WHEN old.status <> 'pending' AND $2::varchar = 'pending' THEN old.status
				ELSE $2::varchar
			END,
			updated_at = $3
		FROM (SELECT id, status FROM %[1]s WHERE paystack_reference = $1 FOR UPDATE) AS old
		WHERE r.id = old.id
		RETURNING old.status, r.status, r.amount::float8
	`, table)

	var (
		from, to string
		amount   float64
	)
	err := s.db.QueryRowContext(ctx, query, reference, string(status), now).Scan(&from, &to, &amount)
	if err != nil {
		return models.StatusChange{}, postgres.MapError("update "+string(kind)+" status", err)
	}
	return models.StatusChange{
		Kind:       kind,
		Reference:  reference,
		From:       models.Status(from),
		To:         models.Status(to),
		AmountKobo: models.ToKobo(amount),
	}, nil
}

func (s *PostgresStore) FindDonationByReference(ctx context.Context, reference string) (*models.Donation, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+donationColumns+` FROM donate WHERE paystack_reference = $1`, reference)
	return scanDonation(row, "find donation by reference")
}

func (s *PostgresStore) FindTransactionByReference(ctx context.Context, reference string) (*models.Transaction, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE paystack_reference = $1`, reference)
	return scanTransaction(row, "find transaction by reference")
}

// ListDonations returns one page of donations, newest first, plus the total
// number of rows matching the filter.
func (s *PostgresStore) ListDonations(ctx context.Context, f models.DonationFilter) ([]*models.Donation, int64, error) {
	p := donationPredicates(f)
	where := p.where()

	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM donate`+where, p.args...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError("count donations", err)
	}

	query := `SELECT ` + donationColumns + ` FROM donate` + where +
		` ORDER BY created_at DESC, id DESC LIMIT ` + p.next(f.Limit) + ` OFFSET ` + p.next(f.Offset())
	rows, err := s.db.QueryContext(ctx, query, p.args...)
	if err != nil {
		return nil, 0, postgres.MapError("list donations", err)
	}
	defer rows.Close()

	donations := make([]*models.Donation, 0, f.Limit)
	for rows.Next() {
		d, err := scanDonation(rows, "scan donation")
		if err != nil {
			return nil, 0, err
		}
		donations = append(donations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError("list donations", err)
	}
	return donations, total, nil
}

func (s *PostgresStore) DonationStats(ctx context.Context) (*models.DonationStats, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(amount), 0)::float8,
			COALESCE(AVG(amount), 0)::float8,
			COUNT(*) FILTER (WHERE status = 'completed'),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'failed'),
			COUNT(*) FILTER (WHERE in_memory_of),
			COUNT(*) FILTER (WHERE is_anonymous)
		FROM donate
	`
	var st models.DonationStats
	err := s.db.QueryRowContext(ctx, query).Scan(&st.TotalDonations, &st.TotalAmount, &st.AverageAmount,
		&st.CompletedDonations, &st.PendingDonations, &st.FailedDonations,
		&st.MemoryDonations, &st.AnonymousDonations)
	if err != nil {
		return nil, postgres.MapError("donation stats", err)
	}
	return &st, nil
}

// ListPending returns pending records of both kinds created before olderThan,
// oldest first.
func (s *PostgresStore) ListPending(ctx context.Context, olderThan time.Time, limit int) ([]PendingRecord, error) {
	query := `
		SELECT kind, paystack_reference FROM (
			SELECT 'donation' AS kind, paystack_reference, created_at FROM donate
			WHERE status = 'pending' AND created_at < $1
			UNION ALL
			SELECT 'payment' AS kind, paystack_reference, created_at FROM transactions
			WHERE status = 'pending' AND created_at < $1
		) pending
		ORDER BY created_at
		LIMIT $2
	`
	rows, err := s.db.QueryContext(ctx, query, olderThan, limit)
	if err != nil {
		return nil, postgres.MapError("list pending", err)
	}
	defer rows.Close()

	var out []PendingRecord
	for rows.Next() {
		var (
			rec  PendingRecord
			kind string
		)
		if err := rows.Scan(&kind, &rec.Reference); err != nil {
			return nil, postgres.MapError("scan pending", err)
		}
		rec.Kind = models.Kind(kind)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError("list pending", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDonation(row rowScanner, op string) (*models.Donation, error) {
	var (
		d      models.Donation
		status string
	)
	err := row.Scan(&d.ID, &d.FullName, &d.Email, &d.PhoneNumber, &d.Country, &d.StateProvince, &d.City,
		&d.InMemoryOf, &d.MemoryPersonName, &d.IsAnonymous, &d.Amount, &d.PaystackReference, &status,
		&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(op, err)
	}
	d.Status = models.Status(status)
	return &d, nil
}

func scanTransaction(row rowScanner, op string) (*models.Transaction, error) {
	var (
		t      models.Transaction
		status string
	)
	err := row.Scan(&t.ID, &t.Firstname, &t.Lastname, &t.Phone, &t.Email, &t.Address, &t.DeliveryNote, &t.State,
		&t.Amount, &t.PaystackReference, &status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(op, err)
	}
	t.Status = models.Status(status)
	return &t, nil
}
