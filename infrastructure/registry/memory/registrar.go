// ABOUTME: In-memory registrar for standalone runs and tests
// ABOUTME: Keeps advertised callback URLs in a mutex-guarded set

package memory

import (
	"context"
	"sort"
	"sync"
)

// Registrar implements interfaces.Registrar with an in-process set
type Registrar struct {
	mu   sync.RWMutex
	urls map[string]struct{}
}

// NewRegistrar creates an empty in-memory registrar
func NewRegistrar() *Registrar {
	return &Registrar{urls: make(map[string]struct{})}
}

// Register records callbackURL
func (r *Registrar) Register(ctx context.Context, callbackURL string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.urls[callbackURL] = struct{}{}
	return nil
}

// Deregister forgets callbackURL. Unknown URLs are not an error.
func (r *Registrar) Deregister(ctx context.Context, callbackURL string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.urls, callbackURL)
	return nil
}

// Registered returns the recorded URLs in sorted order
func (r *Registrar) Registered() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	urls := make([]string, 0, len(r.urls))
	for u := range r.urls {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return urls
}
