// ABOUTME: Main entry point for the Feed Filter API server
// ABOUTME: Wires together all components, registers the callback URL and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"feedfilter-api/api"
	"feedfilter-api/api/handlers"
	"feedfilter-api/core/interfaces"
	"feedfilter-api/core/search"
	"feedfilter-api/core/sources"
	stdhttp "feedfilter-api/infrastructure/http/standard"
	"feedfilter-api/infrastructure/logger/structured"
	"feedfilter-api/infrastructure/netutil"
	httpregistry "feedfilter-api/infrastructure/registry/http"
	"feedfilter-api/infrastructure/registry/memory"
	redisregistry "feedfilter-api/infrastructure/registry/redis"
	"feedfilter-api/pkg/config"
	"feedfilter-api/pkg/featureflags"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := structured.NewLogger(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	defer logger.Close()

	flags := featureflags.NewEnvManager("FEATURE_")
	logger.Info("Starting Feed Filter API", map[string]interface{}{
		"host":          cfg.Server.Host,
		"sources_file":  cfg.Search.SourcesFile,
		"registry_type": cfg.Registry.Type,
		"flags":         flags.GetAllFlags(),
	})

	// Bind first: the port is part of the URL advertised to the registrar
	listener, port, err := netutil.Listen(cfg.Server.Host, cfg.Server.Port)
	if err != nil {
		logger.Error("Failed to acquire a port", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Can't start: %v", err)
	}

	provider := sources.NewFileProvider(cfg.Search.SourcesFile, logger)

	deps := interfaces.Dependencies{
		HTTPClient: stdhttp.NewLoggingHTTPClient(cfg.FetchTimeoutDuration(), logger),
		Logger:     logger,
	}

	ctx := context.Background()
	// sequential_scan and rate_limit_enabled are read per request from flags
	searchService := search.NewSearchService(deps, provider, search.Config{
		FetchTimeout:   cfg.FetchTimeoutDuration(),
		MaxConcurrency: cfg.Search.MaxConcurrency,
		MaxBodyBytes:   int64(cfg.Search.MaxFeedBytes),
	})

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:    logger,
		Flags:     flags,
		RateLimit: cfg.RateLimit.RequestsPerSecond,
		RateBurst: cfg.RateLimit.Burst,
	})

	handlers.NewQueryHandler(searchService, cfg.DefaultTimeoutDuration(), logger).RegisterRoutes(humaAPI)
	handlers.NewSourcesHandler(provider).RegisterRoutes(humaAPI)

	registrar, closeRegistrar, err := newRegistrar(cfg, logger)
	if err != nil {
		logger.Error("Registrar unavailable, continuing unregistered", map[string]interface{}{
			"registry_type": cfg.Registry.Type,
			"error":         err.Error(),
		})
	}
	defer closeRegistrar()

	callbackURL := netutil.CallbackURL(cfg.Server.Host, port)
	if registrar != nil {
		regCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		if err := registrar.Register(regCtx, callbackURL); err != nil {
			logger.Warn("Registration failed, serving anyway", map[string]interface{}{
				"url":   callbackURL,
				"error": err.Error(),
			})
		}
		cancel()
	}

	srv := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		// Queries run for a caller-chosen budget, so writes are not capped here
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": listener.Addr().String(),
			"url":     callbackURL,
		})
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed: %v", err)
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	for sig := range signals {
		if sig == syscall.SIGHUP {
			_, _ = provider.Reload(ctx)
			continue
		}
		break
	}

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if registrar != nil {
		if err := registrar.Deregister(shutdownCtx, callbackURL); err != nil {
			logger.Warn("Deregistration failed", map[string]interface{}{
				"url":   callbackURL,
				"error": err.Error(),
			})
		}
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)
}

// newRegistrar builds the configured registrar backend. The returned close
// function is always safe to call.
func newRegistrar(cfg *config.Config, logger interfaces.Logger) (interfaces.Registrar, func(), error) {
	noop := func() {}

	switch cfg.Registry.Type {
	case "redis":
		r, err := redisregistry.NewRegistrar(cfg.Registry.Redis, cfg.Registry.Key, logger)
		if err != nil {
			return nil, noop, err
		}
		return r, func() { _ = r.Close() }, nil
	case "memory":
		return memory.NewRegistrar(), noop, nil
	case "http":
		client := stdhttp.NewStandardHTTPClient(10 * time.Second)
		return httpregistry.NewRegistrar(client, cfg.Registry.RegistrarURL, logger), noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown registry type %q", cfg.Registry.Type)
	}
}
