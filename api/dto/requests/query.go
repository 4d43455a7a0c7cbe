// ABOUTME: Request DTOs for the query endpoint
// ABOUTME: Carries the raw search term and string-encoded timeout from the caller

package requests

import (
	"time"

	coreerrors "feedfilter-api/core/errors"
	"feedfilter-api/pkg/utils/parse"
)

// QueryRequest represents the body of POST /query
type QueryRequest struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	// Value is the search term; empty matches every item
	Value string `json:"value,omitempty" doc:"Search term, matched case-insensitively against title, link and description"`

	// Timeout is the query budget as unsigned integer seconds; nil when absent
	Timeout *string `json:"timeout,omitempty" doc:"Query budget in whole seconds, as a string (default \"10\")" example:"10"`
}

// Budget returns the requested timeout, or fallback when the key was absent.
// A present but malformed value, including "", is a ValidationError.
func (r *QueryRequest) Budget(fallback time.Duration) (time.Duration, error) {
	if r.Timeout == nil {
		return fallback, nil
	}

	d, err := parse.Seconds(*r.Timeout)
	if err != nil {
		return 0, &coreerrors.ValidationError{
			Field:   "timeout",
			Message: "must be an unsigned integer number of seconds",
		}
	}
	return d, nil
}
