package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/lattice/pkg/adapters/memory"
	"github.com/aretw0/lattice/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Contract(t *testing.T) {
	ports.RunScenarioStoreContract(t, memory.NewStore())
}

func TestStore_ConcurrentPuts(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	const n = 32
	slugs := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			slug, err := store.Put(ctx, "payload")
			assert.NoError(t, err)
			slugs[i] = slug
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, n)
	for _, slug := range slugs {
		require.NotEmpty(t, slug)
		assert.False(t, seen[slug], "slug %q minted twice", slug)
		seen[slug] = true
	}
}
