package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/lattice/pkg/adapters/redis"
	"github.com/aretw0/lattice/pkg/ports"
)

func newTestStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	store := redis.NewFromClient(client, opts...)
	t.Cleanup(func() { store.Close() })
	return store, mr
}

func TestStore_Contract(t *testing.T) {
	store, _ := newTestStore(t)
	ports.RunScenarioStoreContract(t, store)
}

func TestStore_KeyPrefix(t *testing.T) {
	store, mr := newTestStore(t, redis.WithPrefix("custom:"))

	slug, err := store.Put(context.Background(), "payload")
	require.NoError(t, err)

	assert.True(t, mr.Exists("custom:"+slug))
}

func TestStore_TTLExpiry(t *testing.T) {
	store, mr := newTestStore(t, redis.WithTTL(time.Minute))
	ctx := context.Background()

	slug, err := store.Put(ctx, "payload")
	require.NoError(t, err)

	_, err = store.Get(ctx, slug)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.Get(ctx, slug)
	assert.Error(t, err)
}

func TestStore_BackendDown(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Close()

	ctx := context.Background()
	_, err := store.Put(ctx, "payload")
	assert.Error(t, err)
	_, err = store.Get(ctx, "some-slug")
	assert.Error(t, err)
	assert.Error(t, store.Delete(ctx, "some-slug"))
}
