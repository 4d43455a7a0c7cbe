// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration for the server, search engine, registry and logging

package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Search contains aggregation engine configuration
	Search SearchConfig

	// Registry contains service registration configuration
	Registry RegistryConfig

	// RateLimit contains per-client rate limiting configuration
	RateLimit RateLimitConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Host is the interface to bind and the host advertised to the registrar
	Host string

	// Port is the HTTP server port; empty means pick a free port
	Port string
}

// SearchConfig holds aggregation engine configuration
type SearchConfig struct {
	// SourcesFile is the path of the source list file
	SourcesFile string

	// DefaultTimeout is the query budget in seconds when a request omits one
	DefaultTimeout int

	// FetchTimeout caps a single source fetch, in seconds
	FetchTimeout int

	// MaxConcurrency bounds the sources scanned in parallel per query
	MaxConcurrency int

	// MaxFeedBytes caps the size of one fetched source document
	MaxFeedBytes int
}

// RegistryConfig holds service registration configuration
type RegistryConfig struct {
	// Type selects the registrar backend (http/redis/memory)
	Type string

	// RegistrarURL is the endpoint the http registrar posts to
	RegistrarURL string

	// Key is the redis set holding advertised callback URLs
	Key string

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// RateLimitConfig holds per-client rate limiting configuration
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate per client IP; 0 disables limiting
	RequestsPerSecond int

	// Burst is the number of requests allowed at once
	Burst int
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is text or json
	Format string

	// File, when set, receives logs with size-based rotation
	File string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnvOrDefault("HOST", "127.0.0.1"),
			Port: getEnvOrDefault("PORT", ""),
		},
		Search: SearchConfig{
			SourcesFile:    getEnvOrDefault("SOURCES_FILE", "rss_config.json"),
			DefaultTimeout: getEnvAsIntOrDefault("DEFAULT_TIMEOUT", 10),
			FetchTimeout:   getEnvAsIntOrDefault("FETCH_TIMEOUT", 30),
			MaxConcurrency: getEnvAsIntOrDefault("MAX_CONCURRENCY", 10),
			MaxFeedBytes:   getEnvAsIntOrDefault("MAX_FEED_BYTES", 10<<20),
		},
		Registry: RegistryConfig{
			Type:         getEnvOrDefault("REGISTRY_TYPE", "http"),
			RegistrarURL: getEnvOrDefault("REGISTRAR_URL", "http://localhost:8080/register"),
			Key:          getEnvOrDefault("REGISTRY_KEY", "filters"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsIntOrDefault("RATE_LIMIT", 10),
			Burst:             getEnvAsIntOrDefault("RATE_BURST", 20),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// DefaultTimeoutDuration returns the default query budget
func (c *Config) DefaultTimeoutDuration() time.Duration {
	return time.Duration(c.Search.DefaultTimeout) * time.Second
}

// FetchTimeoutDuration returns the per-source fetch cap
func (c *Config) FetchTimeoutDuration() time.Duration {
	return time.Duration(c.Search.FetchTimeout) * time.Second
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Host == "" {
		return errors.New("host cannot be empty")
	}

	if c.Server.Port != "" {
		port, err := strconv.Atoi(c.Server.Port)
		if err != nil || port < 1 || port > 65535 {
			return errors.New("port must be a number between 1 and 65535")
		}
	}

	if c.Search.DefaultTimeout < 1 {
		return errors.New("default timeout must be at least 1 second")
	}

	if c.Search.FetchTimeout < 1 {
		return errors.New("fetch timeout must be at least 1 second")
	}

	if c.Search.MaxConcurrency < 1 {
		return errors.New("max concurrency must be at least 1")
	}

	if c.Search.MaxFeedBytes < 1 {
		return errors.New("max feed bytes must be at least 1")
	}

	switch c.Registry.Type {
	case "http":
		if c.Registry.RegistrarURL == "" {
			return errors.New("registrar URL cannot be empty when using http registry")
		}
	case "redis":
		if c.Registry.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis registry")
		}
		if c.Registry.Key == "" {
			return errors.New("registry key cannot be empty when using redis registry")
		}
	case "memory":
	default:
		return errors.New("registry type must be 'http', 'redis' or 'memory'")
	}

	if c.RateLimit.RequestsPerSecond < 0 || c.RateLimit.Burst < 0 {
		return errors.New("rate limit values cannot be negative")
	}

	return nil
}
