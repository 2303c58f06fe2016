// Package memory provides an in-process ScenarioStore. Suitable for tests
// and single-instance deployments without Redis.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/lattice/pkg/domain"
)

// Store implements ports.ScenarioStore in memory.
// Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{data: make(map[string]string)}
}

// Put stores the share string under a fresh slug.
func (s *Store) Put(ctx context.Context, shareStr string) (string, error) {
	slug := domain.NewID("s")

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[slug] = shareStr
	return slug, nil
}

// Get returns the share string for a slug.
func (s *Store) Get(ctx context.Context, slug string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	shareStr, ok := s.data[slug]
	if !ok {
		return "", domain.ErrScenarioNotFound
	}
	return shareStr, nil
}

// Delete removes a published scenario.
func (s *Store) Delete(ctx context.Context, slug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, slug)
	return nil
}
