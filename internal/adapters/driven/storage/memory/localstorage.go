package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/sercha-view/internal/core/ports/driven"
)

// Ensure LocalStorage implements the interface.
var _ driven.LocalStorage = (*LocalStorage)(nil)

// LocalStorage is an in-memory implementation of driven.LocalStorage.
type LocalStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewLocalStorage creates an empty local storage.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{items: make(map[string]string)}
}

// GetItem returns the value stored under key.
func (s *LocalStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok, nil
}

// SetItem stores value under key.
func (s *LocalStorage) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return nil
}

// RemoveItem deletes key.
func (s *LocalStorage) RemoveItem(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}
