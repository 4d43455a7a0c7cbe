// Package core contains the business logic for the Feed Filter API.
// It has no dependency on the HTTP layer and can be embedded directly.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure models (FeedItem, MatchRecord, Query, ResultSet)
// - fetch: Single-request retrieval of a source document
// - parse: RSS, Atom and JSON Feed decoding into feed items
// - match: Case-insensitive substring matching over title and description
// - search: The time-budgeted aggregation loop
// - sources: Source list loading from JSON, YAML, TOML, OPML or plain text
// - errors: Typed errors for fetch, parse, validation and configuration
// - interfaces: Contracts for external dependencies (HTTP, logger, registrar)
//
// # Usage Example
//
//	import (
//	    "feedfilter-api/core/domain"
//	    "feedfilter-api/core/interfaces"
//	    "feedfilter-api/core/search"
//	    "feedfilter-api/core/sources"
//	)
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	provider := sources.StaticProvider{"https://example.com/feed.rss"}
//	svc := search.NewSearchService(deps, provider, search.Config{})
//
//	results, stats := svc.Search(ctx, domain.Query{
//	    Term:    "golang",
//	    Timeout: 5 * time.Second,
//	})
package core
