package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"museum/pkg/platform/sentinel"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "no rows", err: sql.ErrNoRows, want: sentinel.ErrNotFound},
		{name: "unique violation", err: &pq.Error{Code: "23505"}, want: sentinel.ErrConflict},
		{name: "bad datetime", err: &pq.Error{Code: "22007"}, want: sentinel.ErrInvalidInput},
		{name: "datetime overflow", err: &pq.Error{Code: "22008"}, want: sentinel.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, MapError("op", tt.err), tt.want)
		})
	}

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, MapError("op", nil))
	})

	t.Run("other errors are wrapped with op", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := MapError("insert product", cause)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "insert product")
	})
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationsDir()
	assert.NoError(t, err)
	assert.Contains(t, entries, "00003_payments.sql")
	assert.Contains(t, entries, "00005_audit.sql")
}
