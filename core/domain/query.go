// ABOUTME: Query domain model carries the search term and the time budget
// ABOUTME: Defines the defaults applied when a request omits optional fields

package domain

import "time"

// DefaultTimeout is the budget applied when a query omits its timeout
const DefaultTimeout = 10 * time.Second

// Query is a single keyword search over the configured sources
type Query struct {
	// Term is matched case-insensitively; "" matches every item
	Term string

	// Timeout is the wall-clock budget shared by all sources.
	// A zero or negative value examines no sources.
	Timeout time.Duration
}

// NewQuery creates a query, falling back to DefaultTimeout when timeout is nil
func NewQuery(term string, timeout *time.Duration) Query {
	q := Query{Term: term, Timeout: DefaultTimeout}
	if timeout != nil {
		q.Timeout = *timeout
	}
	return q
}

// HasBudget reports whether the query allows any source to be examined
func (q Query) HasBudget() bool {
	return q.Timeout > 0
}
