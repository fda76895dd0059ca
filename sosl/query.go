// Package sosl builds Salesforce full-text search (SOSL) query strings.
package sosl

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyKeyword is returned when a query is built without a keyword.
var ErrEmptyKeyword = errors.New("search keyword is required")

// DefaultFields is the field list used when none is supplied.
var DefaultFields = []string{"Id", "Name"}

// Query describes one keyword search. Immutable once constructed; built
// fresh per search and consumed exactly once.
type Query struct {
	// Object is the sobject to search.
	Object string
	// Fields is the ordered field list to return. Nil or empty means
	// DefaultFields.
	Fields []string
	// Keyword is the full-text search term. Must be non-empty.
	Keyword string
	// Limit caps the number of returned records. Nil means unbounded.
	Limit *int
}

// EffectiveFields returns the field list the query will actually request.
func (q Query) EffectiveFields() []string {
	if len(q.Fields) == 0 {
		return DefaultFields
	}
	return q.Fields
}

// Build renders the query string.
//
// The keyword is matched both word-by-word and as a whole phrase: one
// FIND clause per whitespace-separated part, joined with OR, then one more
// clause for the entire keyword. For a one-word keyword this duplicates
// the clause; downstream tooling depends on the exact query text, so the
// duplication is kept. The same goes for the space preceding the limit
// clause, which survives even when the clause is empty.
func (q Query) Build() (string, error) {
	if q.Keyword == "" {
		return "", ErrEmptyKeyword
	}

	parts := strings.Fields(q.Keyword)
	clauses := make([]string, 0, len(parts)+1)
	for _, part := range parts {
		clauses = append(clauses, fmt.Sprintf("FIND {%s}", part))
	}
	clauses = append(clauses, fmt.Sprintf("FIND {%s}", q.Keyword))
	conditions := strings.Join(clauses, " OR ")

	limitClause := ""
	if q.Limit != nil {
		limitClause = fmt.Sprintf("LIMIT %d", *q.Limit)
	}

	return fmt.Sprintf("%s RETURNING %s(%s %s)",
		conditions,
		q.Object,
		strings.Join(q.EffectiveFields(), ", "),
		limitClause,
	), nil
}
