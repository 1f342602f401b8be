package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileStore persists one file per key under a data directory. Writes to the
// same key are serialized with a per-key mutex so interleaved read-modify-write
// cycles from different goroutines cannot lose updates.
type FileStore struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewFileStore builds a FileStore rooted at dir, creating it as needed.
func NewFileStore(dir string) (*FileStore, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return nil, fmt.Errorf("data dir is empty")
	}
	if err := os.MkdirAll(trimmed, 0o755); err != nil {
		return nil, wrapStorage("create data dir", err)
	}
	return &FileStore{
		dir:   trimmed,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

// Get reads the value stored under key. Missing keys return ErrNotFound.
func (s *FileStore) Get(key string) ([]byte, error) {
	lock := s.keyLock(key)
	lock.Lock()
	defer lock.Unlock()

	bytes, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("get %q: %w", key, ErrNotFound)
		}
		return nil, wrapStorage(fmt.Sprintf("get %q", key), err)
	}
	return bytes, nil
}

// Set overwrites the value stored under key.
func (s *FileStore) Set(key string, value []byte) error {
	lock := s.keyLock(key)
	lock.Lock()
	defer lock.Unlock()

	if err := os.WriteFile(s.path(key), value, 0o644); err != nil {
		return wrapStorage(fmt.Sprintf("set %q", key), err)
	}
	return nil
}

// Remove deletes the value stored under key. Removing an absent key is a no-op.
func (s *FileStore) Remove(key string) error {
	lock := s.keyLock(key)
	lock.Lock()
	defer lock.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return wrapStorage(fmt.Sprintf("remove %q", key), err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, sanitize(key)+".json")
}

func (s *FileStore) keyLock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}

// sanitize keeps key-derived file names flat and portable.
func sanitize(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, key)
}
