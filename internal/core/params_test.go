package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Grid", Params: []Parameter{{Key: "w", Value: "400"}}},
		{Name: "Pruning", Params: []Parameter{{Key: "prune_every", Value: "10"}}},
	}}

	p, ok := snap.Lookup("prune_every")
	assert.True(t, ok)
	assert.Equal(t, "10", p.Value)

	_, ok = snap.Lookup("missing")
	assert.False(t, ok)
}

func TestRegistryNamesSorted(t *testing.T) {
	Register("zeta", func(map[string]string) Sim { return nil })
	Register("alpha", func(map[string]string) Sim { return nil })
	Register("", func(map[string]string) Sim { return nil })
	t.Cleanup(func() {
		delete(sims, "zeta")
		delete(sims, "alpha")
	})

	names := Names()
	assert.Contains(t, names, "alpha")
	assert.NotContains(t, names, "")
	assert.IsIncreasing(t, names)
}
