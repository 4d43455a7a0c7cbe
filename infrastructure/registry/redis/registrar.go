// ABOUTME: Redis registrar that keeps advertised callback URLs in a shared set
// ABOUTME: Register adds the URL with SADD and Deregister removes it with SREM

package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"feedfilter-api/core/interfaces"
	"feedfilter-api/pkg/config"

	"github.com/redis/go-redis/v9"
)

// Registrar implements interfaces.Registrar on a Redis set
type Registrar struct {
	client redis.Cmdable
	closer func() error
	key    string
	logger interfaces.Logger
}

// NewRegistrar connects to Redis and returns a registrar writing to key
func NewRegistrar(cfg config.RedisConfig, key string, logger interfaces.Logger) (*Registrar, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}
	if key == "" {
		return nil, errors.New("registry key cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Address, err)
	}

	r := NewRegistrarWithClient(client, key, logger)
	r.closer = client.Close
	return r, nil
}

// NewRegistrarWithClient wraps an existing client
func NewRegistrarWithClient(client redis.Cmdable, key string, logger interfaces.Logger) *Registrar {
	return &Registrar{
		client: client,
		key:    key,
		logger: interfaces.LoggerOrNop(logger),
	}
}

// Register adds callbackURL to the registry set
func (r *Registrar) Register(ctx context.Context, callbackURL string) error {
	if err := r.client.SAdd(ctx, r.key, callbackURL).Err(); err != nil {
		return fmt.Errorf("register %s in %s: %w", callbackURL, r.key, err)
	}

	r.logger.Info("Registered in redis set", map[string]interface{}{
		"key": r.key,
		"url": callbackURL,
	})
	return nil
}

// Deregister removes callbackURL from the registry set
func (r *Registrar) Deregister(ctx context.Context, callbackURL string) error {
	if err := r.client.SRem(ctx, r.key, callbackURL).Err(); err != nil {
		return fmt.Errorf("deregister %s from %s: %w", callbackURL, r.key, err)
	}
	return nil
}

// Members lists the URLs currently in the registry set
func (r *Registrar) Members(ctx context.Context) ([]string, error) {
	return r.client.SMembers(ctx, r.key).Result()
}

// Close closes the Redis connection when the registrar owns it
func (r *Registrar) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer()
}
