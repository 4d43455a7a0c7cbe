package handlers

import (
	"context"
	"sync"
	"time"

	"feedfilter-api/core/domain"
	"feedfilter-api/core/sources"
)

// mockSearcher records queries and returns canned results
type mockSearcher struct {
	mu      sync.Mutex
	queries []domain.Query
	results domain.ResultSet
}

func (m *mockSearcher) Search(ctx context.Context, query domain.Query) (domain.ResultSet, domain.SearchStats) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, query)
	return m.results, domain.SearchStats{Matches: len(m.results)}
}

func (m *mockSearcher) calls() []domain.Query {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Query(nil), m.queries...)
}

// mockCatalog serves a fixed snapshot and a scripted reload outcome
type mockCatalog struct {
	snap      *sources.Snapshot
	reloadN   int
	reloadErr error
	reloads   int
}

func newMockCatalog(list ...string) *mockCatalog {
	return &mockCatalog{
		snap: &sources.Snapshot{
			Sources:  list,
			LoadedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		},
	}
}

func (m *mockCatalog) Snapshot() *sources.Snapshot { return m.snap }
func (m *mockCatalog) Path() string                { return "rss_config.json" }

func (m *mockCatalog) Reload(ctx context.Context) (int, error) {
	m.reloads++
	return m.reloadN, m.reloadErr
}
