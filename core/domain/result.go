// ABOUTME: ResultSet and SearchStats describe the outcome of one aggregation
// ABOUTME: Results are ordered by source-list position, then by document order

package domain

import "time"

// ResultSet is the ordered list of matches produced by one query.
// Links are not deduplicated across sources.
type ResultSet []MatchRecord

// SearchStats summarizes how an aggregation went
type SearchStats struct {
	// Sources is the number of configured sources for the query
	Sources int

	// Examined is the number of sources whose fetch was started
	Examined int

	// Failed is the number of sources that failed to fetch or parse
	Failed int

	// Matches is the number of records in the returned ResultSet
	Matches int

	// Truncated is true when the deadline cut work short
	Truncated bool

	// Duration is the wall-clock time spent aggregating
	Duration time.Duration
}

// Fields returns the stats as structured log fields
func (s SearchStats) Fields() map[string]interface{} {
	return map[string]interface{}{
		"sources":     s.Sources,
		"examined":    s.Examined,
		"failed":      s.Failed,
		"matches":     s.Matches,
		"truncated":   s.Truncated,
		"duration_ms": s.Duration.Milliseconds(),
	}
}
