package storage

import (
	"fmt"
	"sync"
)

// MemStore is an in-memory Store used in tests and ephemeral sessions.
type MemStore struct {
	mu     sync.Mutex
	values map[string][]byte

	// FailWrites forces Set/Remove to fail, for exercising error paths.
	FailWrites bool
	// FailReads forces Get to fail.
	FailReads bool
}

// NewMemStore builds an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string][]byte)}
}

// Get reads the value stored under key.
func (s *MemStore) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailReads {
		return nil, wrapStorage(fmt.Sprintf("get %q", key), errInjected)
	}
	value, ok := s.values[key]
	if !ok {
		return nil, fmt.Errorf("get %q: %w", key, ErrNotFound)
	}
	dup := make([]byte, len(value))
	copy(dup, value)
	return dup, nil
}

// Set overwrites the value stored under key.
func (s *MemStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return wrapStorage(fmt.Sprintf("set %q", key), errInjected)
	}
	dup := make([]byte, len(value))
	copy(dup, value)
	s.values[key] = dup
	return nil
}

// Remove deletes the value stored under key.
func (s *MemStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return wrapStorage(fmt.Sprintf("remove %q", key), errInjected)
	}
	delete(s.values, key)
	return nil
}

var errInjected = fmt.Errorf("injected failure")
