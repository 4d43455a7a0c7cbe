// ABOUTME: Thread-safe result accumulator shared by concurrent source workers
// ABOUTME: Keeps one slot per source so the final order follows the source list

package search

import (
	"sync"

	"feedfilter-api/core/domain"
)

// accumulator collects matches per source index.
// Once closed it rejects further appends, so a snapshot taken at the
// deadline is never mutated by workers that finish late.
type accumulator struct {
	mu        sync.Mutex
	slots     [][]domain.MatchRecord
	closed    bool
	truncated bool
}

func newAccumulator(sources int) *accumulator {
	return &accumulator{slots: make([][]domain.MatchRecord, sources)}
}

// add appends a record to the slot for index; false means the set is closed
func (a *accumulator) add(index int, record domain.MatchRecord) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return false
	}
	a.slots[index] = append(a.slots[index], record)
	return true
}

// markTruncated records that a worker stopped because of the deadline
func (a *accumulator) markTruncated() {
	a.mu.Lock()
	a.truncated = true
	a.mu.Unlock()
}

// close seals the accumulator and flattens slots in source order
func (a *accumulator) close() (domain.ResultSet, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.closed = true

	total := 0
	for _, slot := range a.slots {
		total += len(slot)
	}

	results := make(domain.ResultSet, 0, total)
	for _, slot := range a.slots {
		results = append(results, slot...)
	}
	return results, a.truncated
}
