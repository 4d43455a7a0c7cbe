// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for the HTTP client and loggers

package filterlib

import (
	"io"
	"time"

	"feedfilter-api/core/interfaces"
	httpInfra "feedfilter-api/infrastructure/http/standard"
	"feedfilter-api/infrastructure/logger/structured"
)

// DefaultHTTPClient creates a single-attempt HTTP client with a 30s timeout
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(30 * time.Second)
}

// DefaultLogger creates a text logger on stdout at the given level
func DefaultLogger(level string) interfaces.Logger {
	return structured.NewLogger(structured.Options{Level: level})
}

// WriterLogger creates a JSON logger writing to w
func WriterLogger(w io.Writer, level string) interfaces.Logger {
	return structured.NewLoggerWithWriter(w, structured.Options{Level: level, Format: "json"})
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return interfaces.NopLogger{}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}
