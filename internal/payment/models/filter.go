package models

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	dErrors "museum/pkg/domain-errors"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
	// MaxPage keeps (page-1)*limit within a Postgres integer OFFSET.
	MaxPage          = math.MaxInt32 / MaxPageLimit
)

// DonationFilter holds the allow-listed list filters. Nil pointers mean the
// filter is not applied.
type DonationFilter struct {
	Status      *Status
	Country     *string
	InMemoryOf  *bool
	IsAnonymous *bool
	Page        int
	Limit       int
}

func (f DonationFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// ParseDonationFilter reads list filters from a query string. Unknown keys
// are ignored.
func ParseDonationFilter(q url.Values) (DonationFilter, error) {
	f := DonationFilter{Page: 1, Limit: DefaultPageLimit}

	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return f, dErrors.New(dErrors.CodeValidation, "page must be a positive integer")
		}
		if n > MaxPage {
			return f, dErrors.New(dErrors.CodeValidation, "page is out of range")
		}
		f.Page = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return f, dErrors.New(dErrors.CodeValidation, "limit must be a positive integer")
		}
		f.Limit = min(n, MaxPageLimit)
	}
	if v := strings.TrimSpace(q.Get("status")); v != "" {
		s := Status(strings.ToLower(v))
		if !s.IsValid() {
			return f, dErrors.New(dErrors.CodeValidation, "status must be one of pending, completed, failed, cancelled")
		}
		f.Status = &s
	}
	if v := strings.TrimSpace(q.Get("country")); v != "" {
		f.Country = &v
	}
	if q.Has("in_memory_of") {
		b := q.Get("in_memory_of") == "true"
		f.InMemoryOf = &b
	}
	if q.Has("is_anonymous") {
		b := q.Get("is_anonymous") == "true"
		f.IsAnonymous = &b
	}
	return f, nil
}

// Pagination is returned alongside list pages.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

func NewPagination(page, limit int, total int64) Pagination {
	pages := int64(0)
	if limit > 0 {
		pages = (total + int64(limit) - 1) / int64(limit)
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}
