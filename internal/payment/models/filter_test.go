package models

import (
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "museum/pkg/domain-errors"
)

func TestParseDonationFilter(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		f, err := ParseDonationFilter(url.Values{})
		require.NoError(t, err)
		assert.Equal(t, 1, f.Page)
		assert.Equal(t, DefaultPageLimit, f.Limit)
		assert.Equal(t, 0, f.Offset())
		assert.Nil(t, f.Status)
	})

	t.Run("limit is clamped", func(t *testing.T) {
		f, err := ParseDonationFilter(url.Values{"page": {"3"}, "limit": {"500"}})
		require.NoError(t, err)
		assert.Equal(t, MaxPageLimit, f.Limit)
		assert.Equal(t, 200, f.Offset())
	})

	t.Run("last page keeps offset non-negative", func(t *testing.T) {
		f, err := ParseDonationFilter(url.Values{
			"page":  {strconv.Itoa(MaxPage)},
			"limit": {strconv.Itoa(MaxPageLimit)},
		})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, f.Offset(), 0)
	})

	tests := []struct {
		name    string
		query   url.Values
		message string
	}{
		{"page zero", url.Values{"page": {"0"}}, "page must be a positive integer"},
		{"page not a number", url.Values{"page": {"two"}}, "page must be a positive integer"},
		{"page beyond range", url.Values{"page": {"9223372036854775807"}, "limit": {"10"}}, "page is out of range"},
		{"page one past range", url.Values{"page": {strconv.Itoa(MaxPage + 1)}}, "page is out of range"},
		{"negative limit", url.Values{"limit": {"-1"}}, "limit must be a positive integer"},
		{"unknown status", url.Values{"status": {"refunded"}}, "status must be one of pending, completed, failed, cancelled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDonationFilter(tt.query)
			require.Error(t, err)
			de, ok := dErrors.As(err)
			require.True(t, ok)
			assert.Equal(t, dErrors.CodeValidation, de.Code)
			assert.Equal(t, tt.message, de.Message)
		})
	}
}
