package ports

import (
	"context"
	"testing"

	"github.com/aretw0/lattice/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunScenarioStoreContract verifies that a ScenarioStore implementation
// adheres to the interface contract. Adapter test suites call this against
// their concrete store.
func RunScenarioStoreContract(t *testing.T, store ScenarioStore) {
	ctx := context.Background()

	t.Run("Put and Get", func(t *testing.T) {
		slug, err := store.Put(ctx, "payload-a")
		require.NoError(t, err, "Put should not return error")
		require.NotEmpty(t, slug)

		got, err := store.Get(ctx, slug)
		require.NoError(t, err)
		assert.Equal(t, "payload-a", got)
	})

	t.Run("Distinct slugs", func(t *testing.T) {
		slug1, err := store.Put(ctx, "payload-b")
		require.NoError(t, err)
		slug2, err := store.Put(ctx, "payload-c")
		require.NoError(t, err)
		assert.NotEqual(t, slug1, slug2)
	})

	t.Run("Get unknown", func(t *testing.T) {
		_, err := store.Get(ctx, "no-such-slug")
		assert.ErrorIs(t, err, domain.ErrScenarioNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		slug, err := store.Put(ctx, "payload-d")
		require.NoError(t, err)

		require.NoError(t, store.Delete(ctx, slug))

		_, err = store.Get(ctx, slug)
		assert.ErrorIs(t, err, domain.ErrScenarioNotFound, "Get after Delete should report not found")

		assert.NoError(t, store.Delete(ctx, slug), "Delete is idempotent")
	})
}
