package interfaces

import (
	"context"
	"io"
)

// HTTPClient performs outbound requests for sources and the registrar.
// Implementations must honor ctx cancellation on every blocking read.
type HTTPClient interface {
	// Get performs a single GET request.
	Get(ctx context.Context, url string) (Response, error)

	// Post performs a single POST request with a JSON body.
	Post(ctx context.Context, url string, body io.Reader) (Response, error)
}

// Response is the minimal view of an HTTP response the core needs.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body; the caller closes it.
	Body() io.ReadCloser

	// Header returns the value of a header, case-insensitively.
	Header(key string) string
}
