package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherRequiresExistingPath(t *testing.T) {
	l := NewLoader(Default(), nil)

	if _, err := NewWatcher(l, "", nil); err == nil {
		t.Error("expected error for empty path")
	}
	if _, err := NewWatcher(l, filepath.Join(t.TempDir(), "absent.yaml"), nil); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	if err := os.WriteFile(path, []byte("combination_bonus: 8\n"), 0600); err != nil {
		t.Fatal(err)
	}

	l := NewLoader(Default(), nil)
	reloaded := make(chan *Config, 1)
	w, err := NewWatcher(l, path, func(cfg *Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	})
	if err != nil {
		t.Fatalf("create watcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	if err := os.WriteFile(path, []byte("combination_bonus: 13\n"), 0600); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.CombinationBonus != 13 {
			t.Errorf("expected reloaded bonus 13, got %d", cfg.CombinationBonus)
		}
		if l.Snapshot().CombinationBonus != 13 {
			t.Errorf("loader snapshot not swapped: %d", l.Snapshot().CombinationBonus)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not reload within deadline")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop on context cancel")
	}
}
