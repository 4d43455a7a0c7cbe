// ABOUTME: Main client for the feed filter library
// ABOUTME: Runs budgeted keyword searches over feeds without the HTTP layer

package filterlib

import (
	"context"
	"time"

	"feedfilter-api/core/domain"
	"feedfilter-api/core/interfaces"
	"feedfilter-api/core/search"
)

// Client is the main entry point for the library
type Client struct {
	service *search.SearchService
	config  Config
}

// Config holds the configuration for the client
type Config struct {
	// HTTPClient performs source fetches
	HTTPClient interfaces.HTTPClient

	// Logger receives per-source diagnostics and query summaries
	Logger interfaces.Logger

	// SourceProvider supplies the source list for every search
	SourceProvider interfaces.SourceProvider

	// DefaultTimeout is used by SearchDefault
	DefaultTimeout time.Duration

	// FetchTimeout caps each source fetch
	FetchTimeout time.Duration

	// MaxConcurrency bounds sources scanned in parallel
	MaxConcurrency int

	// MaxFeedBytes caps the size of one fetched document
	MaxFeedBytes int64

	// Sequential scans sources one at a time in list order
	Sequential bool
}

// NewClient creates a new client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	deps := interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Logger:     config.Logger,
	}

	service := search.NewSearchService(deps, config.SourceProvider, search.Config{
		FetchTimeout:   config.FetchTimeout,
		MaxConcurrency: config.MaxConcurrency,
		MaxBodyBytes:   config.MaxFeedBytes,
		Sequential:     config.Sequential,
	})

	return &Client{service: service, config: config}, nil
}

// Search returns items from the configured sources whose title, link or
// description contains term, case-insensitively. It returns within timeout;
// failing sources are skipped. A zero timeout examines no sources.
func (c *Client) Search(ctx context.Context, term string, timeout time.Duration) []domain.MatchRecord {
	results, _ := c.SearchWithStats(ctx, term, timeout)
	return results
}

// SearchDefault runs Search with the configured default timeout
func (c *Client) SearchDefault(ctx context.Context, term string) []domain.MatchRecord {
	return c.Search(ctx, term, c.config.DefaultTimeout)
}

// SearchWithStats is Search plus counters describing the run
func (c *Client) SearchWithStats(ctx context.Context, term string, timeout time.Duration) (domain.ResultSet, domain.SearchStats) {
	return c.service.Search(ctx, domain.NewQuery(term, &timeout))
}

// Sources returns the endpoints the next search would use
func (c *Client) Sources(ctx context.Context) []string {
	return c.config.SourceProvider.Sources(ctx)
}
