package fetch

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync/atomic"

	"feedfilter-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	calls   atomic.Int32
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.calls.Add(1)
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, errors.New("no response configured")
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	return nil, errors.New("not implemented")
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       io.Reader
	closed     bool
}

func newMockResponse(status int, body string) *mockResponse {
	return &mockResponse{statusCode: status, body: strings.NewReader(body)}
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return &trackingCloser{Reader: m.body, resp: m}
}

func (m *mockResponse) Header(key string) string {
	return ""
}

type trackingCloser struct {
	io.Reader
	resp *mockResponse
}

func (c *trackingCloser) Close() error {
	c.resp.closed = true
	return nil
}

// failingReader returns err on the first Read
type failingReader struct {
	err error
}

func (r failingReader) Read(p []byte) (int, error) {
	return 0, r.err
}

// timeoutError satisfies net.Error with Timeout() == true
type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }
