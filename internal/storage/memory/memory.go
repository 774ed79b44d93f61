// Package memory provides a map-backed storage.Snapshot for tests and
// ephemeral runs.
package memory

import (
	"context"
	"sync"

	"github.com/mmynk/loofinder/internal/storage"
)

var _ storage.Snapshot = (*Store)(nil)

// Store keeps values in a map. It does not survive restarts.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// New creates an empty in-memory snapshot.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *Store) Close() error { return nil }
