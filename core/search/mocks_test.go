package search

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"feedfilter-api/core/domain"
	coreerrors "feedfilter-api/core/errors"
	"feedfilter-api/core/interfaces"
)

// mockFetcher is a mock implementation of the Fetcher interface
type mockFetcher struct {
	fetchFunc func(ctx context.Context, endpoint string) ([]byte, error)

	mu      sync.Mutex
	fetched []string
}

func (m *mockFetcher) Fetch(ctx context.Context, endpoint string) ([]byte, error) {
	m.mu.Lock()
	m.fetched = append(m.fetched, endpoint)
	m.mu.Unlock()

	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, endpoint)
	}
	return nil, &coreerrors.FetchError{Source: endpoint, Kind: coreerrors.Unreachable}
}

func (m *mockFetcher) calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.fetched...)
}

// staticFetcher serves fixed bodies per endpoint; unknown endpoints are unreachable
func staticFetcher(bodies map[string]string) *mockFetcher {
	return &mockFetcher{
		fetchFunc: func(ctx context.Context, endpoint string) ([]byte, error) {
			body, ok := bodies[endpoint]
			if !ok {
				return nil, &coreerrors.FetchError{Source: endpoint, Kind: coreerrors.Unreachable, Err: fmt.Errorf("no route to %s", endpoint)}
			}
			return []byte(body), nil
		},
	}
}

// mockHTTPClient answers every GET with a fixed status and body
type mockHTTPClient struct {
	status int
	body   string
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	return &mockResponse{status: m.status, body: m.body}, nil
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	return &mockResponse{status: m.status, body: m.body}, nil
}

type mockResponse struct {
	status int
	body   string
}

func (r *mockResponse) StatusCode() int         { return r.status }
func (r *mockResponse) Body() io.ReadCloser     { return io.NopCloser(strings.NewReader(r.body)) }
func (r *mockResponse) Header(key string) string { return "" }

// mockParser is a mock implementation of the Parser interface
type mockParser struct {
	parseFunc func(content []byte) ([]domain.FeedItem, error)
}

func (m *mockParser) Parse(content []byte) ([]domain.FeedItem, error) {
	if m.parseFunc != nil {
		return m.parseFunc(content)
	}
	return nil, nil
}

// mockProvider is a mock implementation of the SourceProvider interface
type mockProvider struct {
	sources []string
}

func (m *mockProvider) Sources(ctx context.Context) []string {
	return append([]string(nil), m.sources...)
}

// recordingLogger captures log calls for assertions
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

func (l *recordingLogger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) { l.record("debug", msg, fields) }
func (l *recordingLogger) Info(msg string, fields map[string]interface{})  { l.record("info", msg, fields) }
func (l *recordingLogger) Warn(msg string, fields map[string]interface{})  { l.record("warn", msg, fields) }
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) { l.record("error", msg, fields) }

func (l *recordingLogger) byLevel(level string) []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []logEntry
	for _, e := range l.entries {
		if e.level == level {
			out = append(out, e)
		}
	}
	return out
}

// tickingClock advances by step on every call
type tickingClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// rssFeed renders a minimal RSS 2.0 document from items
func rssFeed(items ...domain.FeedItem) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><rss version="2.0"><channel><title>feed</title>`)
	for _, it := range items {
		b.WriteString("<item>")
		if it.Title != "" {
			fmt.Fprintf(&b, "<title>%s</title>", it.Title)
		}
		if it.Link != "" {
			fmt.Fprintf(&b, "<link>%s</link>", it.Link)
		}
		if it.Description != "" {
			fmt.Fprintf(&b, "<description>%s</description>", it.Description)
		}
		b.WriteString("</item>")
	}
	b.WriteString("</channel></rss>")
	return b.String()
}
