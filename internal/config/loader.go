package config

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// fetchTimeout bounds the remote configuration fetch. After it expires the
// loader proceeds with whatever configuration is available.
const fetchTimeout = 4 * time.Second

// Fetcher retrieves the raw remote override payload.
type Fetcher func(ctx context.Context) ([]byte, error)

// loadState tracks the loader's lifecycle: Unloaded -> Loading -> Loaded.
type loadState int

const (
	stateUnloaded loadState = iota
	stateLoading
	stateLoaded
)

// Loader owns the active configuration snapshot and performs the one-time
// remote override fetch. Concurrent EnsureLoaded callers collapse onto a
// single in-flight fetch: the first caller performs it, every later caller
// parks on a waiter channel that is closed only after the merged snapshot
// has been committed, so no caller can observe Loading and then miss the
// result.
type Loader struct {
	mu       sync.Mutex
	state    loadState
	waiters  []chan struct{}
	snapshot *Config
	lastErr  error
	fetch    Fetcher
	fetches  int
}

// NewLoader creates a loader over the given base configuration. A nil fetch
// means no remote endpoint is configured; EnsureLoaded then commits the base
// as-is, which is not an error.
func NewLoader(base *Config, fetch Fetcher) *Loader {
	if base == nil {
		base = Default()
	}
	return &Loader{snapshot: base, fetch: fetch}
}

// HTTPFetcher returns a Fetcher that GETs the override JSON from url.
func HTTPFetcher(url string) Fetcher {
	if url == "" {
		return nil
	}
	client := &http.Client{Timeout: fetchTimeout}
	return func(ctx context.Context) ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("config: build request: %w", err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("config: fetch remote override: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("config: remote override: HTTP %d", resp.StatusCode)
		}
		body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return nil, fmt.Errorf("config: read remote override: %w", err)
		}
		return body, nil
	}
}

// EnsureLoaded performs the one-time load. It is idempotent and safe for
// any number of concurrent callers; exactly one remote fetch is issued.
// Fetch and parse failures are recorded, never returned: the loader always
// reaches Loaded so the engine can run on defaults. The only error returned
// is ctx expiry while waiting on another caller's in-flight load.
func (l *Loader) EnsureLoaded(ctx context.Context) error {
	l.mu.Lock()
	switch l.state {
	case stateLoaded:
		l.mu.Unlock()
		return nil

	case stateLoading:
		ch := make(chan struct{})
		l.waiters = append(l.waiters, ch)
		l.mu.Unlock()
		select {
		case <-ch:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}

	default: // stateUnloaded
		l.state = stateLoading
		l.mu.Unlock()
	}

	snapshot, err := l.load(ctx)

	l.mu.Lock()
	if snapshot != nil {
		l.snapshot = snapshot
	}
	l.lastErr = err
	l.state = stateLoaded
	waiters := l.waiters
	l.waiters = nil
	l.mu.Unlock()

	// Release waiters only after the snapshot and flag are committed.
	for _, ch := range waiters {
		close(ch)
	}
	return nil
}

// load fetches and merges the remote override over the current base.
// Returns the snapshot to commit plus any recorded (non-fatal) error.
func (l *Loader) load(ctx context.Context) (*Config, error) {
	l.mu.Lock()
	base := l.snapshot
	fetch := l.fetch
	l.mu.Unlock()

	if fetch == nil {
		return base, nil
	}

	l.mu.Lock()
	l.fetches++
	l.mu.Unlock()

	fctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	data, err := fetch(fctx)
	if err != nil {
		return base, err
	}
	ov, err := ParseRemoteOverride(data)
	if err != nil {
		return base, err
	}
	merged, err := Merge(base, ov)
	if err != nil {
		return base, err
	}
	return merged, nil
}

// Snapshot returns the active configuration. Before the load completes this
// is the base configuration, which is always usable.
func (l *Loader) Snapshot() *Config {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshot
}

// Swap replaces the active snapshot. Used by the file watcher after a
// successful re-merge.
func (l *Loader) Swap(cfg *Config) {
	if cfg == nil {
		return
	}
	l.mu.Lock()
	l.snapshot = cfg
	l.mu.Unlock()
}

// LastError returns the error recorded by the most recent load, if any.
// A non-nil value means the engine is running on default or partially
// merged configuration.
func (l *Loader) LastError() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}

// FetchCount reports how many remote fetches have been issued.
func (l *Loader) FetchCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fetches
}

// Loaded reports whether the loader has reached the Loaded state.
func (l *Loader) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state == stateLoaded
}
