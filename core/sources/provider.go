// ABOUTME: Source list provider loads configured endpoints once and serves snapshots
// ABOUTME: Reloads only on explicit request; load failures degrade to an empty list

package sources

import (
	"context"
	"os"
	"sync/atomic"
	"time"

	coreerrors "feedfilter-api/core/errors"
	"feedfilter-api/core/interfaces"
)

// DefaultPath is the source list file read when none is configured
const DefaultPath = "rss_config.json"

// Snapshot is an immutable view of the source list at load time
type Snapshot struct {
	Sources  []string
	LoadedAt time.Time
}

// FileProvider implements interfaces.SourceProvider backed by a file
type FileProvider struct {
	path     string
	logger   interfaces.Logger
	snapshot atomic.Pointer[Snapshot]
}

// NewFileProvider creates a provider and performs the initial load.
// A failed initial load is logged and leaves the list empty.
func NewFileProvider(path string, logger interfaces.Logger) *FileProvider {
	p, _ := LoadFileProvider(path, logger)
	return p
}

// LoadFileProvider is NewFileProvider that also returns the initial load
// error. The provider is usable either way.
func LoadFileProvider(path string, logger interfaces.Logger) (*FileProvider, error) {
	if path == "" {
		path = DefaultPath
	}
	p := &FileProvider{
		path:   path,
		logger: interfaces.LoggerOrNop(logger),
	}
	_, err := p.Reload(context.Background())
	return p, err
}

// Path returns the file the provider reads
func (p *FileProvider) Path() string {
	return p.path
}

// Reload re-reads the file and swaps in a new snapshot.
// On failure the snapshot becomes empty and a *errors.ConfigError is returned.
func (p *FileProvider) Reload(ctx context.Context) (int, error) {
	feeds, err := p.read()
	if err != nil {
		p.logger.Warn("Failed to load source list, serving no sources", map[string]interface{}{
			"path":  p.path,
			"error": err.Error(),
		})
		p.snapshot.Store(&Snapshot{Sources: []string{}, LoadedAt: time.Now()})
		return 0, err
	}

	p.snapshot.Store(&Snapshot{Sources: feeds, LoadedAt: time.Now()})
	p.logger.Info("Source list loaded", map[string]interface{}{
		"path":    p.path,
		"sources": len(feeds),
	})
	return len(feeds), nil
}

func (p *FileProvider) read() ([]string, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, &coreerrors.ConfigError{Path: p.path, Err: err}
	}

	feeds, found, err := decodeSourceList(p.path, data)
	if err != nil {
		return nil, &coreerrors.ConfigError{Path: p.path, Err: err}
	}
	if !found {
		p.logger.Warn("Source list has no rss_feeds entry", map[string]interface{}{
			"path": p.path,
		})
		return []string{}, nil
	}
	return feeds, nil
}

// Sources returns a copy of the current source list
func (p *FileProvider) Sources(ctx context.Context) []string {
	snap := p.Snapshot()
	out := make([]string, len(snap.Sources))
	copy(out, snap.Sources)
	return out
}

// Snapshot returns the current snapshot; callers must not mutate it
func (p *FileProvider) Snapshot() *Snapshot {
	if snap := p.snapshot.Load(); snap != nil {
		return snap
	}
	return &Snapshot{Sources: []string{}}
}

// StaticProvider serves a fixed source list
type StaticProvider []string

// Sources returns a copy of the list
func (s StaticProvider) Sources(ctx context.Context) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
