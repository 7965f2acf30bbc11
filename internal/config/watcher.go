package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce delays the reload until writes settle. Editors and config
// pushers typically emit several write events per save.
const reloadDebounce = 500 * time.Millisecond

// Watcher watches the local override file and swaps a fresh snapshot into
// the loader when it changes. A failed reload keeps the previous snapshot.
type Watcher struct {
	watcher  *fsnotify.Watcher
	loader   *Loader
	path     string
	onReload func(*Config)
}

// NewWatcher creates a file watcher for the override at path. onReload, if
// non-nil, runs after each successful snapshot swap (the scorer rebuilds its
// matchers there).
func NewWatcher(loader *Loader, path string, onReload func(*Config)) (*Watcher, error) {
	if path == "" {
		return nil, fmt.Errorf("config: watcher needs an override path")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: create file watcher: %w", err)
	}
	if err := fw.Add(path); err != nil {
		fw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	return &Watcher{watcher: fw, loader: loader, path: path, onReload: onReload}, nil
}

// Run watches for changes and reloads the override. Blocks until ctx is
// cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	var debounce *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(reloadDebounce, w.reload)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "config: watcher error: %v\n", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadFile(w.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: hot-reload failed, keeping previous snapshot: %v\n", err)
		return
	}
	w.loader.Swap(cfg)
	if w.onReload != nil {
		w.onReload(cfg)
	}
	fmt.Fprintf(os.Stderr, "config: hot-reload: override applied from %s\n", w.path)
}
