// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: net/http client with optional request logging
// - logger/structured: logrus-backed logger with lumberjack file rotation
// - registry/http: Registrar that POSTs the callback URL to a filter registry
// - registry/redis: Registrar that keeps callback URLs in a Redis set
// - registry/memory: In-process Registrar for tests and single-node runs
// - netutil: Listener binding and callback URL construction
//
// # HTTP Client
//
//	client := standard.NewLoggingHTTPClient(30*time.Second, logger)
//	resp, err := client.Get(ctx, "https://example.com/feed.xml")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Registrars
//
//	reg, err := redis.NewRegistrar(cfg.Registry.Redis, "feedfilter:filters", logger)
//	if err != nil {
//	    // Registry unreachable
//	}
//	err = reg.Register(ctx, "http://10.0.0.5:41234/query")
//
// # Logger
//
//	logger := structured.NewLogger(structured.Options{Level: "debug", Format: "json"})
//	logger.Info("Query completed", map[string]interface{}{
//	    "matches": 12,
//	})
package infrastructure
