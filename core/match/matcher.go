// ABOUTME: Query matcher decides whether a feed item matches a search term
// ABOUTME: Case-insensitive substring test over title, link and description

package match

import (
	"strings"

	"feedfilter-api/core/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize lower-cases a term the same way item fields are lower-cased.
// Callers normalize once per query and pass the result to Matches.
func Normalize(term string) string {
	// a Caser is stateful and must not be shared between goroutines
	return cases.Lower(language.Und).String(term)
}

// Matches reports whether normalizedTerm occurs in the item's title, link
// or description, ignoring case. An empty term matches every item.
func Matches(item domain.FeedItem, normalizedTerm string) bool {
	return NewMatcher(normalizedTerm).Match(item)
}

// Matcher tests many items against one normalized term with a single Caser.
// It is not safe for concurrent use; create one per goroutine.
type Matcher struct {
	term  string
	lower cases.Caser
}

// NewMatcher creates a matcher for a term already passed through Normalize
func NewMatcher(normalizedTerm string) *Matcher {
	return &Matcher{
		term:  normalizedTerm,
		lower: cases.Lower(language.Und),
	}
}

// Match reports whether the item matches the matcher's term
func (m *Matcher) Match(item domain.FeedItem) bool {
	if m.term == "" {
		return true
	}

	for _, field := range [...]string{item.Title, item.Link, item.Description} {
		if field == "" {
			continue
		}
		if strings.Contains(m.lower.String(field), m.term) {
			return true
		}
	}

	return false
}
