// ABOUTME: Source fetcher retrieves the raw body of one configured source
// ABOUTME: Classifies transport, timeout and status failures into FetchError

package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	coreerrors "feedfilter-api/core/errors"
	"feedfilter-api/core/interfaces"
)

// DefaultMaxBodyBytes caps the size of a single source document
const DefaultMaxBodyBytes int64 = 10 << 20

// SourceFetcher implements interfaces.Fetcher on top of an HTTPClient
type SourceFetcher struct {
	deps     interfaces.Dependencies
	maxBytes int64
}

// NewSourceFetcher creates a new source fetcher
func NewSourceFetcher(deps interfaces.Dependencies) *SourceFetcher {
	return &SourceFetcher{deps: deps, maxBytes: DefaultMaxBodyBytes}
}

// SetMaxBodyBytes changes the body size limit; n <= 0 keeps the current one
func (f *SourceFetcher) SetMaxBodyBytes(n int64) {
	if n > 0 {
		f.maxBytes = n
	}
}

// Fetch issues exactly one GET to endpoint and returns the full body.
// It never retries; every failure comes back as *errors.FetchError.
func (f *SourceFetcher) Fetch(ctx context.Context, endpoint string) ([]byte, error) {
	if f.deps.HTTPClient == nil {
		return nil, &coreerrors.FetchError{
			Source: endpoint,
			Kind:   coreerrors.Unreachable,
			Err:    errors.New("HTTP client not configured"),
		}
	}

	resp, err := f.deps.HTTPClient.Get(ctx, endpoint)
	if err != nil {
		return nil, classify(ctx, endpoint, err)
	}
	defer resp.Body().Close()

	if code := resp.StatusCode(); code < 200 || code > 299 {
		return nil, &coreerrors.FetchError{
			Source:     endpoint,
			Kind:       coreerrors.BadStatus,
			StatusCode: code,
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), f.maxBytes+1))
	if err != nil {
		return nil, classify(ctx, endpoint, err)
	}
	if int64(len(body)) > f.maxBytes {
		return nil, &coreerrors.FetchError{
			Source: endpoint,
			Kind:   coreerrors.TooLarge,
			Err:    fmt.Errorf("body exceeds %d bytes", f.maxBytes),
		}
	}

	return body, nil
}

// classify maps a transport error onto a FetchError kind
func classify(ctx context.Context, endpoint string, err error) error {
	kind := coreerrors.Unreachable

	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded):
		kind = coreerrors.Timeout
	case errors.As(err, &netErr) && netErr.Timeout():
		kind = coreerrors.Timeout
	case errors.Is(err, context.Canceled):
		// the query was abandoned; report it as a timeout of this source
		kind = coreerrors.Timeout
	}

	return &coreerrors.FetchError{
		Source: endpoint,
		Kind:   kind,
		Err:    err,
	}
}
