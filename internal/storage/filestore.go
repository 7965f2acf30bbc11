package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists each key as one file under a directory. Writes are
// atomic (tmp + rename) to prevent partial reads. Keys are hashed into
// filenames so arbitrary key strings cannot escape the directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory (0700) if needed and returns a store
// over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("storage: create dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(s.dir, hex.EncodeToString(sum[:16])+".rec")
}

// Get reads the value for key, returning (nil, nil) when absent.
func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("storage: read %q: %w", key, err)
	}
	return data, nil
}

// Set writes value under key atomically with 0600 permissions.
func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	final := s.path(key)
	tmp := final + ".tmp"
	if err := os.WriteFile(tmp, value, 0600); err != nil {
		return fmt.Errorf("storage: write temp for %q: %w", key, err)
	}
	if err := os.Rename(tmp, final); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("storage: commit %q: %w", key, err)
	}
	return nil
}
