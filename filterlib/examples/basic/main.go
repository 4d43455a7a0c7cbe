// ABOUTME: Basic example showing a keyword search with the feed filter library
// ABOUTME: Demonstrates minimal configuration and reading match records

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"feedfilter-api/filterlib"
)

func main() {
	client, err := filterlib.NewClient(
		filterlib.WithSources(
			"https://news.ycombinator.com/rss",
			"https://feeds.arstechnica.com/arstechnica/index",
			"https://go.dev/blog/feed.atom",
		),
		filterlib.WithLogger(filterlib.DefaultLogger("warn")),
		filterlib.WithFetchTimeout(5*time.Second),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to create client:", err)
		os.Exit(1)
	}

	term := "go"
	if len(os.Args) > 1 {
		term = os.Args[1]
	}

	results, stats := client.SearchWithStats(context.Background(), term, 8*time.Second)

	fmt.Printf("=== %d matches for %q ===\n", len(results), term)
	for _, rec := range results {
		fmt.Printf("- %s\n", rec.URL)
	}
	fmt.Printf("\nexamined %d/%d sources, %d failed, truncated=%v, took %s\n",
		stats.Examined, stats.Sources, stats.Failed, stats.Truncated, stats.Duration.Round(time.Millisecond))
}
