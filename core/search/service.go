// ABOUTME: Search service runs the time-budgeted fetch, filter and aggregate loop
// ABOUTME: Fans out over sources under one deadline and tolerates per-source failures

package search

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"feedfilter-api/core/domain"
	coreerrors "feedfilter-api/core/errors"
	"feedfilter-api/core/fetch"
	"feedfilter-api/core/interfaces"
	"feedfilter-api/core/match"
	"feedfilter-api/core/parse"
	"feedfilter-api/pkg/featureflags"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultFetchTimeout caps a single source fetch
	DefaultFetchTimeout = 30 * time.Second

	// DefaultMaxConcurrency bounds the sources processed at once
	DefaultMaxConcurrency = 10
)

// Config tunes the aggregation policy
type Config struct {
	// FetchTimeout caps each source fetch; the query deadline still applies
	FetchTimeout time.Duration

	// MaxConcurrency bounds the number of sources scanned in parallel
	MaxConcurrency int

	// MaxBodyBytes caps one source document; 0 uses fetch.DefaultMaxBodyBytes
	MaxBodyBytes int64

	// Sequential scans sources one after another in list order
	Sequential bool
}

// withDefaults fills zero values
func (c Config) withDefaults() Config {
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = DefaultFetchTimeout
	}
	if c.MaxConcurrency < 1 {
		c.MaxConcurrency = DefaultMaxConcurrency
	}
	return c
}

// SearchService aggregates matches from many sources within a query budget
type SearchService struct {
	deps     interfaces.Dependencies
	logger   interfaces.Logger
	provider interfaces.SourceProvider
	fetcher  interfaces.Fetcher
	parser   interfaces.Parser
	cfg      Config
	now      func() time.Time
}

// NewSearchService creates a new search service instance.
// provider may be nil, in which case Search sees no sources.
func NewSearchService(deps interfaces.Dependencies, provider interfaces.SourceProvider, cfg Config) *SearchService {
	fetcher := fetch.NewSourceFetcher(deps)
	fetcher.SetMaxBodyBytes(cfg.MaxBodyBytes)

	return &SearchService{
		deps:     deps,
		logger:   interfaces.LoggerOrNop(deps.Logger),
		provider: provider,
		fetcher:  fetcher,
		parser:   parse.NewFeedParser(),
		cfg:      cfg.withDefaults(),
		now:      time.Now,
	}
}

// SetFetcher replaces the source fetcher
func (s *SearchService) SetFetcher(f interfaces.Fetcher) {
	s.fetcher = f
}

// SetParser replaces the feed parser
func (s *SearchService) SetParser(p interfaces.Parser) {
	s.parser = p
}

// Search runs query against the provider's current source list
func (s *SearchService) Search(ctx context.Context, query domain.Query) (domain.ResultSet, domain.SearchStats) {
	var sources []string
	if s.provider != nil {
		sources = s.provider.Sources(ctx)
	}
	return s.Aggregate(ctx, query, sources)
}

// counters are updated by workers and read when the query returns
type counters struct {
	examined atomic.Int32
	failed   atomic.Int32
}

// Aggregate fetches, parses and filters every source, returning the matches
// found before query.Timeout elapses. It never fails: unreachable or
// malformed sources contribute nothing and are logged.
func (s *SearchService) Aggregate(ctx context.Context, query domain.Query, sources []string) (domain.ResultSet, domain.SearchStats) {
	start := s.now()
	stats := domain.SearchStats{Sources: len(sources)}

	if !query.HasBudget() || len(sources) == 0 {
		stats.Truncated = len(sources) > 0
		stats.Duration = s.now().Sub(start)
		s.logger.Info("Query completed", stats.Fields())
		return domain.ResultSet{}, stats
	}

	term := match.Normalize(query.Term)
	deadline := start.Add(query.Timeout)

	qctx, cancel := context.WithTimeout(ctx, query.Timeout)
	defer cancel()

	acc := newAccumulator(len(sources))
	var cnt counters

	if s.sequential(ctx) {
		s.scanSequential(qctx, deadline, term, sources, acc, &cnt)
	} else {
		s.scanConcurrent(qctx, deadline, term, sources, acc, &cnt)
	}

	results, truncated := acc.close()

	stats.Examined = int(cnt.examined.Load())
	stats.Failed = int(cnt.failed.Load())
	stats.Matches = len(results)
	stats.Truncated = truncated || s.expired(qctx, deadline)
	stats.Duration = s.now().Sub(start)

	if stats.Truncated {
		s.logger.Info("Query budget exhausted, returning partial results", map[string]interface{}{
			"timeout":  query.Timeout.String(),
			"examined": stats.Examined,
			"sources":  stats.Sources,
		})
	}
	s.logger.Info("Query completed", stats.Fields())

	return results, stats
}

// sequential reports the scan policy for one query. A flag manager on the
// request context overrides the configured policy.
func (s *SearchService) sequential(ctx context.Context) bool {
	if flags, ok := featureflags.Lookup(ctx); ok {
		return flags.IsEnabled(ctx, featureflags.SequentialScan)
	}
	return s.cfg.Sequential
}

// scanSequential processes sources one at a time in list order
func (s *SearchService) scanSequential(ctx context.Context, deadline time.Time, term string, sources []string, acc *accumulator, cnt *counters) {
	for i, source := range sources {
		if s.expired(ctx, deadline) {
			acc.markTruncated()
			return
		}
		s.scanSource(ctx, deadline, i, source, term, acc, cnt)
	}
}

// scanConcurrent processes sources on a bounded worker group and returns
// when every worker is done or the deadline passes, whichever is first
func (s *SearchService) scanConcurrent(ctx context.Context, deadline time.Time, term string, sources []string, acc *accumulator, cnt *counters) {
	var g errgroup.Group
	g.SetLimit(s.cfg.MaxConcurrency)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i, source := range sources {
			if s.expired(ctx, deadline) {
				acc.markTruncated()
				break
			}
			i, source := i, source
			g.Go(func() error {
				s.scanSource(ctx, deadline, i, source, term, acc, cnt)
				return nil
			})
		}
		_ = g.Wait()
	}()

	select {
	case <-done:
	case <-ctx.Done():
		acc.markTruncated()
	}
}

// scanSource fetches, parses and filters a single source
func (s *SearchService) scanSource(ctx context.Context, deadline time.Time, index int, source, term string, acc *accumulator, cnt *counters) {
	if s.expired(ctx, deadline) {
		acc.markTruncated()
		return
	}
	cnt.examined.Add(1)

	fetchCtx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout)
	body, err := s.fetcher.Fetch(fetchCtx, source)
	cancel()
	if err != nil {
		if s.expired(ctx, deadline) {
			acc.markTruncated()
			s.logger.Debug("Source abandoned at deadline", map[string]interface{}{
				"source": source,
				"index":  index,
			})
			return
		}
		cnt.failed.Add(1)
		s.sourceFailed(index, source, err)
		return
	}

	items, err := s.parser.Parse(body)
	if err != nil {
		var parseErr *coreerrors.ParseError
		if errors.As(err, &parseErr) && parseErr.Source == "" {
			parseErr.Source = source
		}
		cnt.failed.Add(1)
		s.sourceFailed(index, source, err)
		return
	}

	matcher := match.NewMatcher(term)
	matched := 0
	for _, item := range items {
		if s.expired(ctx, deadline) {
			acc.markTruncated()
			return
		}
		if !matcher.Match(item) {
			continue
		}
		if !acc.add(index, item.ToMatchRecord()) {
			return
		}
		matched++
	}

	s.logger.Debug("Source scanned", map[string]interface{}{
		"source":  source,
		"index":   index,
		"items":   len(items),
		"matches": matched,
	})
}

// sourceFailed reports a recovered per-source error on the diagnostic channel
func (s *SearchService) sourceFailed(index int, source string, err error) {
	s.logger.Warn("Source skipped", map[string]interface{}{
		"source": source,
		"index":  index,
		"kind":   coreerrors.KindOf(err),
		"error":  err.Error(),
	})
}

// expired reports whether the query deadline has passed
func (s *SearchService) expired(ctx context.Context, deadline time.Time) bool {
	return ctx.Err() != nil || !s.now().Before(deadline)
}
