// Package search implements the catalog query engine and a small
// related-entries ranker. Everything here is pure: inputs are never mutated
// and results are recomputed from scratch on every call, which keeps the
// package safe for concurrent use without locks.
package search

import (
	"strings"

	"github.com/tbourn/go-soft-portal/internal/catalog"
	"github.com/tbourn/go-soft-portal/internal/domain"
)

// Query is the user's search term plus the selected category.
// An empty Category behaves like domain.CategoryAll.
type Query struct {
	Term     string
	Category string
}

// Filter returns, in catalog order, the entries whose category matches and
// whose name or description contains the term ignoring case. The returned
// slice is new; entries are shared by value.
func Filter(entries []domain.Software, q Query) []domain.Software {
	category := q.Category
	if category == "" {
		category = domain.CategoryAll
	}
	term := catalog.Fold(q.Term)

	out := make([]domain.Software, 0, len(entries))
	for _, e := range entries {
		if category != domain.CategoryAll && e.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(catalog.Fold(e.Name), term) &&
			!strings.Contains(catalog.Fold(e.Description), term) {
			continue
		}
		out = append(out, e)
	}
	return out
}
