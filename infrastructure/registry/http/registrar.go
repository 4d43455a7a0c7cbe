// ABOUTME: HTTP registrar that announces the service callback URL to a registry endpoint
// ABOUTME: Posts {"url": ...} once and treats any 2xx status as acceptance

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"feedfilter-api/core/interfaces"
)

// registration is the body accepted by the registrar endpoint
type registration struct {
	URL string `json:"url"`
}

// Registrar posts the callback URL to a registrar endpoint
type Registrar struct {
	client   interfaces.HTTPClient
	endpoint string
	logger   interfaces.Logger
}

// NewRegistrar creates a registrar posting to endpoint
func NewRegistrar(client interfaces.HTTPClient, endpoint string, logger interfaces.Logger) *Registrar {
	return &Registrar{
		client:   client,
		endpoint: endpoint,
		logger:   interfaces.LoggerOrNop(logger),
	}
}

// Register announces callbackURL with a single POST
func (r *Registrar) Register(ctx context.Context, callbackURL string) error {
	if r.client == nil {
		return fmt.Errorf("register %s: no http client configured", callbackURL)
	}

	body, err := json.Marshal(registration{URL: callbackURL})
	if err != nil {
		return fmt.Errorf("encode registration: %w", err)
	}

	resp, err := r.client.Post(ctx, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("register with %s: %w", r.endpoint, err)
	}
	defer resp.Body().Close()
	_, _ = io.Copy(io.Discard, resp.Body())

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return fmt.Errorf("register with %s: unexpected status %d", r.endpoint, resp.StatusCode())
	}

	r.logger.Info("Registered with registrar", map[string]interface{}{
		"registrar": r.endpoint,
		"url":       callbackURL,
		"status":    resp.StatusCode(),
	})
	return nil
}

// Deregister is a no-op; the registrar protocol has no removal call
func (r *Registrar) Deregister(ctx context.Context, callbackURL string) error {
	r.logger.Debug("HTTP registrar has no deregistration, skipping", map[string]interface{}{
		"url": callbackURL,
	})
	return nil
}
