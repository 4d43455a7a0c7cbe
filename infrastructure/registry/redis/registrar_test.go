package redis

import (
	"context"
	"os"
	"testing"

	"feedfilter-api/pkg/config"
)

func skipIfNoRedis(t *testing.T) {
	if os.Getenv("REDIS_TEST") != "1" {
		t.Skip("Skipping Redis integration tests - set REDIS_TEST=1 to run")
	}
}

func testConfig() config.RedisConfig {
	addr := os.Getenv("REDIS_ADDRESS")
	if addr == "" {
		addr = "localhost:6379"
	}
	return config.RedisConfig{Address: addr}
}

func TestNewRegistrar_Validation(t *testing.T) {
	if _, err := NewRegistrar(config.RedisConfig{}, "filters", nil); err == nil {
		t.Error("expected error for empty address")
	}

	if _, err := NewRegistrar(config.RedisConfig{Address: "localhost:6379"}, "", nil); err == nil {
		t.Error("expected error for empty key")
	}
}

func TestNewRegistrar_Unreachable(t *testing.T) {
	// Port 1 is reserved and never runs redis
	_, err := NewRegistrar(config.RedisConfig{Address: "127.0.0.1:1"}, "filters", nil)
	if err == nil {
		t.Error("expected connection error")
	}
}

func TestRegistrar_RegisterAndDeregister(t *testing.T) {
	skipIfNoRedis(t)

	key := "feedfilter-test-registry"
	registrar, err := NewRegistrar(testConfig(), key, nil)
	if err != nil {
		t.Fatalf("NewRegistrar returned error: %v", err)
	}
	defer registrar.Close()

	ctx := context.Background()
	url := "http://127.0.0.1:9100/query"

	if err := registrar.Register(ctx, url); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	// Registering twice keeps a single member
	if err := registrar.Register(ctx, url); err != nil {
		t.Fatalf("second Register returned error: %v", err)
	}

	members, err := registrar.Members(ctx)
	if err != nil {
		t.Fatalf("Members returned error: %v", err)
	}
	count := 0
	for _, m := range members {
		if m == url {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected url once in set, found %d times", count)
	}

	if err := registrar.Deregister(ctx, url); err != nil {
		t.Fatalf("Deregister returned error: %v", err)
	}

	members, _ = registrar.Members(ctx)
	for _, m := range members {
		if m == url {
			t.Error("url still registered after Deregister")
		}
	}
}
