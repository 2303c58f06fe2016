package stats_test

import (
	"testing"

	"github.com/aretw0/lattice/pkg/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitions_UniqueIDs(t *testing.T) {
	defs := stats.Definitions()
	require.NotEmpty(t, defs)

	seen := make(map[string]bool)
	for _, def := range defs {
		assert.False(t, seen[def.ID], "duplicate stat id %q", def.ID)
		seen[def.ID] = true

		assert.NotEmpty(t, def.Label, "stat %q has no label", def.ID)
		assert.Contains(t, []stats.Unit{stats.UnitFlat, stats.UnitPercent}, def.Unit)
	}
}

func TestDefinitions_ReturnsCopy(t *testing.T) {
	defs := stats.Definitions()
	defs[0].ID = "mutated"

	assert.NotEqual(t, "mutated", stats.Definitions()[0].ID)
}

func TestDefaultSet(t *testing.T) {
	set := stats.DefaultSet()
	defs := stats.Definitions()
	require.Len(t, set, len(defs))

	for _, def := range defs {
		val, ok := set[def.ID]
		require.True(t, ok, "missing default for %q", def.ID)
		assert.Equal(t, def.Default, val)
	}

	// Non-zero defaults survive the mapping.
	assert.Equal(t, float64(100), set["ult_charge_eff"])
}
