package eventlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// AppLog is the append-only JSONL application log, the last tier of the
// fallback chain. Lines are fsynced on write: if the record made it here,
// it survives a crash.
type AppLog struct {
	mu   sync.Mutex
	file *os.File
}

// OpenAppLog opens (or creates) the application log for appending.
func OpenAppLog(path string) (*AppLog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("eventlog: create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("eventlog: open app log: %w", err)
	}
	return &AppLog{file: file}, nil
}

// Append writes one JSONL entry with a timestamp and kind tag, then syncs.
func (l *AppLog) Append(kind string, payload any) error {
	entry := map[string]any{
		"ts":      time.Now().UTC().Format(time.RFC3339Nano),
		"kind":    kind,
		"payload": payload,
	}
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("eventlog: marshal app log entry: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.file.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("eventlog: write app log: %w", err)
	}
	if err := l.file.Sync(); err != nil {
		return fmt.Errorf("eventlog: sync app log: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (l *AppLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}
