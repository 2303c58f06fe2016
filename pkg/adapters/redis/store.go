// Package redis provides a ScenarioStore backed by Redis, for deployments
// where published share links must survive restarts and be visible to every
// replica.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/lattice/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.ScenarioStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithTTL sets an expiration on published scenarios. Zero means no expiry.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a Redis store with its own client.
func New(address, password string, db int, opts ...Option) *Store {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "lattice:scenario:",
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(slug string) string {
	return s.prefix + slug
}

// Put stores the share string under a fresh slug.
func (s *Store) Put(ctx context.Context, shareStr string) (string, error) {
	slug := domain.NewID("s")
	if err := s.client.Set(ctx, s.key(slug), shareStr, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to save scenario to redis: %w", err)
	}
	return slug, nil
}

// Get returns the share string for a slug.
func (s *Store) Get(ctx context.Context, slug string) (string, error) {
	val, err := s.client.Get(ctx, s.key(slug)).Result()
	if err != nil {
		if err == backend.Nil {
			return "", domain.ErrScenarioNotFound
		}
		return "", fmt.Errorf("failed to get scenario from redis: %w", err)
	}
	return val, nil
}

// Delete removes a published scenario.
func (s *Store) Delete(ctx context.Context, slug string) error {
	if err := s.client.Del(ctx, s.key(slug)).Err(); err != nil {
		return fmt.Errorf("failed to delete scenario from redis: %w", err)
	}
	return nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
