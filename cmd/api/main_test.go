package main

import (
	"context"
	"testing"

	"feedfilter-api/core/interfaces"
	httpregistry "feedfilter-api/infrastructure/registry/http"
	"feedfilter-api/infrastructure/registry/memory"
	"feedfilter-api/pkg/config"
)

func TestNewRegistrar_Memory(t *testing.T) {
	cfg := &config.Config{Registry: config.RegistryConfig{Type: "memory"}}

	r, closeFn, err := newRegistrar(cfg, interfaces.NopLogger{})
	if err != nil {
		t.Fatalf("newRegistrar returned error: %v", err)
	}
	defer closeFn()

	mem, ok := r.(*memory.Registrar)
	if !ok {
		t.Fatalf("expected *memory.Registrar, got %T", r)
	}
	if err := mem.Register(context.Background(), "http://127.0.0.1:9100/query"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if got := mem.Registered(); len(got) != 1 {
		t.Errorf("Registered() = %v", got)
	}
}

func TestNewRegistrar_HTTP(t *testing.T) {
	cfg := &config.Config{Registry: config.RegistryConfig{Type: "http", RegistrarURL: "http://localhost:8080/register"}}

	r, closeFn, err := newRegistrar(cfg, nil)
	if err != nil {
		t.Fatalf("newRegistrar returned error: %v", err)
	}
	defer closeFn()

	if _, ok := r.(*httpregistry.Registrar); !ok {
		t.Errorf("expected *http.Registrar, got %T", r)
	}
}

func TestNewRegistrar_RedisUnreachable(t *testing.T) {
	cfg := &config.Config{Registry: config.RegistryConfig{
		Type:  "redis",
		Key:   "filters",
		Redis: config.RedisConfig{Address: "127.0.0.1:1"},
	}}

	r, closeFn, err := newRegistrar(cfg, nil)
	defer closeFn()

	if err == nil {
		t.Error("expected error for unreachable redis")
	}
	if r != nil {
		t.Errorf("expected nil registrar, got %T", r)
	}
}

func TestNewRegistrar_Unknown(t *testing.T) {
	cfg := &config.Config{Registry: config.RegistryConfig{Type: "consul"}}

	_, closeFn, err := newRegistrar(cfg, nil)
	defer closeFn()

	if err == nil {
		t.Error("expected error for unknown registry type")
	}
}
