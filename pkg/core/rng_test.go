package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNGReplaysFromSeed(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 64; i++ {
		require.Equal(t, a.IntN(1000), b.IntN(1000))
		require.Equal(t, a.Float64(), b.Float64())
	}

	a.Reseed(7)
	c := NewRNG(7)
	assert.Equal(t, c.IntN(1<<20), a.IntN(1<<20))
}

func TestRNGRanges(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 1000; i++ {
		v := r.IntN(3)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 3)
		f := r.Float64()
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)
	}
}
