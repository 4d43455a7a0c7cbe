// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for the fetch, parse and source-list collaborators

package interfaces

import (
	"context"

	"feedfilter-api/core/domain"
)

// SourceProvider supplies the ordered list of source endpoints for a query
type SourceProvider interface {
	// Sources returns a snapshot of the configured endpoints.
	// The returned slice is owned by the caller.
	Sources(ctx context.Context) []string
}

// Fetcher retrieves the raw content of a single source
type Fetcher interface {
	// Fetch issues exactly one request and returns the complete body.
	// Failures are reported as *errors.FetchError.
	Fetch(ctx context.Context, endpoint string) ([]byte, error)
}

// Parser decodes raw content into feed items in document order
type Parser interface {
	// Parse returns *errors.ParseError when content is not a feed
	Parse(content []byte) ([]domain.FeedItem, error)
}

// Registrar advertises this service's callback URL to an external registry
type Registrar interface {
	Register(ctx context.Context, callbackURL string) error
	Deregister(ctx context.Context, callbackURL string) error
}
