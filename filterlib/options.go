// ABOUTME: Configuration options for the feed filter library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package filterlib

import (
	"time"

	"feedfilter-api/core/fetch"
	"feedfilter-api/core/interfaces"
	"feedfilter-api/core/sources"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		if client == nil {
			return NewError(ErrorTypeConfiguration, "http client cannot be nil")
		}
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = interfaces.LoggerOrNop(logger)
		return nil
	}
}

// WithSources searches a fixed list of endpoints
func WithSources(endpoints ...string) Option {
	return func(c *Config) error {
		list := make([]string, len(endpoints))
		copy(list, endpoints)
		c.SourceProvider = sources.StaticProvider(list)
		return nil
	}
}

// WithSourcesFile loads endpoints from a json, toml, yaml or opml file
func WithSourcesFile(path string) Option {
	return func(c *Config) error {
		provider, err := sources.LoadFileProvider(path, c.Logger)
		if err != nil {
			return NewError(ErrorTypeConfiguration, "cannot load source file").
				WithCause(err).
				WithContext("path", provider.Path())
		}
		if len(provider.Snapshot().Sources) == 0 {
			return NewError(ErrorTypeConfiguration, "source file has no usable endpoints").
				WithContext("path", provider.Path())
		}
		c.SourceProvider = provider
		return nil
	}
}

// WithSourceProvider sets a custom source provider
func WithSourceProvider(provider interfaces.SourceProvider) Option {
	return func(c *Config) error {
		if provider == nil {
			return NewError(ErrorTypeConfiguration, "source provider cannot be nil")
		}
		c.SourceProvider = provider
		return nil
	}
}

// WithDefaultTimeout sets the budget used by SearchDefault
func WithDefaultTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		c.DefaultTimeout = timeout
		return nil
	}
}

// WithFetchTimeout caps each source fetch
func WithFetchTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		c.FetchTimeout = timeout
		return nil
	}
}

// WithMaxConcurrency bounds the sources scanned in parallel
func WithMaxConcurrency(n int) Option {
	return func(c *Config) error {
		c.MaxConcurrency = n
		return nil
	}
}

// WithMaxFeedBytes caps the size of a single fetched feed document
func WithMaxFeedBytes(n int64) Option {
	return func(c *Config) error {
		c.MaxFeedBytes = n
		return nil
	}
}

// WithSequentialScan scans sources one at a time in list order
func WithSequentialScan(enabled bool) Option {
	return func(c *Config) error {
		c.Sequential = enabled
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		HTTPClient:     DefaultHTTPClient(),
		Logger:         QuietLogger(),
		SourceProvider: sources.StaticProvider(nil),
		DefaultTimeout: 10 * time.Second,
		FetchTimeout:   30 * time.Second,
		MaxConcurrency: 10,
		MaxFeedBytes:   fetch.DefaultMaxBodyBytes,
	}
}

// validateConfig rejects values the search service cannot honor
func validateConfig(c *Config) error {
	if c.FetchTimeout <= 0 {
		return NewError(ErrorTypeValidation, "fetch timeout must be positive").
			WithContext("fetch_timeout", c.FetchTimeout.String())
	}
	if c.MaxConcurrency < 1 {
		return NewError(ErrorTypeValidation, "max concurrency must be at least 1").
			WithContext("max_concurrency", c.MaxConcurrency)
	}
	if c.MaxFeedBytes < 1 {
		return NewError(ErrorTypeValidation, "max feed bytes must be positive").
			WithContext("max_feed_bytes", c.MaxFeedBytes)
	}
	if c.DefaultTimeout < 0 {
		return NewError(ErrorTypeValidation, "default timeout cannot be negative")
	}
	return nil
}
