package store

import (
	"fmt"
	"strings"

	"museum/internal/payment/models"
)

// predicates collects "column = $n" conditions with positional arguments.
// Column names come from code, never from the request.
type predicates struct {
	clauses []string
	args    []any
}

func (p *predicates) eq(column string, value any) {
	p.args = append(p.args, value)
	p.clauses = append(p.clauses, fmt.Sprintf("%s = $%d", column, len(p.args)))
}

func (p *predicates) where() string {
	if len(p.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.clauses, " AND ")
}

// next returns the placeholder for the argument about to be appended.
func (p *predicates) next(value any) string {
	p.args = append(p.args, value)
	return fmt.Sprintf("$%d", len(p.args))
}

func donationPredicates(f models.DonationFilter) *predicates {
	p := &predicates{}
	if f.Status != nil {
		p.eq("status", string(*f.Status))
	}
	if f.Country != nil {
		p.eq("country", *f.Country)
	}
	if f.InMemoryOf != nil {
		p.eq("in_memory_of", *f.InMemoryOf)
	}
	if f.IsAnonymous != nil {
		p.eq("is_anonymous", *f.IsAnonymous)
	}
	return p
}
