package dla

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// branch builds root (2,2) -> (3,2) -> (4,2) and root (2,2) -> (1,3).
func branch(t *testing.T) *Space {
	t.Helper()
	s := New(6, 6)
	s.Seed(2, 2)
	s.attach(3, 2, 1, fixedFloat(0))
	s.attach(4, 2, 2, fixedFloat(0))
	s.attach(1, 3, 3, fixedFloat(0))
	require.NoError(t, s.Validate())
	return s
}

func TestPruneThreshold(t *testing.T) {
	tests := []struct {
		iteration, age, want int
	}{
		{100, 40, 60},
		{40, 40, 0},
		{10, 40, 0},
		{0, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PruneThreshold(tt.iteration, tt.age), "%d-%d", tt.iteration, tt.age)
	}
}

func TestPruneRemovesOnlyInitialLeaves(t *testing.T) {
	s := branch(t)

	removed := s.Prune(1, 0, fixedFloat(0.5))
	require.Equal(t, 2, removed)

	_, ok := s.Age(4, 2)
	assert.False(t, ok)
	_, ok = s.Age(1, 3)
	assert.False(t, ok)

	mid, ok := s.Cell(3, 2)
	require.True(t, ok, "parent left terminal must survive the pass")
	assert.Zero(t, mid.Children)

	root, _ := s.Cell(2, 2)
	assert.Equal(t, 1, root.Children)
	assert.Equal(t, 1, s.Stats().Rebuilds)
	assert.False(t, s.Frontier(5, 2))
	assert.False(t, s.Frontier(0, 4))
	require.NoError(t, s.Validate())
}

func TestPruneRespectsAgeThreshold(t *testing.T) {
	s := branch(t)

	removed := s.Prune(1, 2, fixedFloat(0))
	require.Equal(t, 1, removed)
	_, ok := s.Age(4, 2)
	assert.True(t, ok, "age equal to threshold is kept")
	_, ok = s.Age(1, 3)
	assert.False(t, ok)
	require.NoError(t, s.Validate())
}

func TestPruneWithZeroProbabilityIsNoop(t *testing.T) {
	s := New(32, 32)
	s.Seed(16, 16)
	rng := newPCG(5)
	for i := 1; i <= 120; i++ {
		s.Walk(i, rng)
	}
	cells := slices.Clone(s.cells)
	near := slices.Clone(s.near)
	rebuilds := s.Stats().Rebuilds

	require.Zero(t, s.Prune(0, 0, rng))
	assert.Equal(t, cells, s.cells)
	assert.Equal(t, near, s.near)
	assert.Equal(t, rebuilds, s.Stats().Rebuilds)
}

func TestPruneAllLeavesRebuildsOnce(t *testing.T) {
	s := New(32, 32)
	s.Seed(16, 16)
	rng := newPCG(11)
	for i := 1; i <= 200; i++ {
		s.Walk(i, rng)
	}

	leaves := map[[2]int]bool{}
	s.ForEach(func(x, y int, c Cell) {
		if c.Children == 0 && c.Age > 0 {
			leaves[[2]int{x, y}] = true
		}
	})
	require.NotEmpty(t, leaves)

	removed := s.Prune(1, 0, rng)
	require.Equal(t, len(leaves), removed)
	require.Equal(t, 1, s.Stats().Rebuilds)
	for p := range leaves {
		_, ok := s.Age(p[0], p[1])
		assert.False(t, ok, "leaf %v survived", p)
	}
	require.NoError(t, s.Validate())
}

func TestPruneOnlyDecrementsPrunedParents(t *testing.T) {
	s := New(40, 40)
	s.Seed(20, 20)
	s.Seed(5, 5)
	rng := newPCG(23)
	for i := 1; i <= 300; i++ {
		s.Walk(i, rng)
	}

	before := map[[2]int]Cell{}
	s.ForEach(func(x, y int, c Cell) { before[[2]int{x, y}] = c })

	require.Positive(t, s.Prune(0.5, 50, rng))

	lost := map[[2]int]int{}
	for p, c := range before {
		if _, ok := s.Age(p[0], p[1]); !ok {
			lost[[2]int{c.ParentX, c.ParentY}]++
		}
	}
	s.ForEach(func(x, y int, c Cell) {
		p := [2]int{x, y}
		require.GreaterOrEqual(t, c.Children, 0)
		require.Equal(t, before[p].Children-lost[p], c.Children, "children at %v", p)
	})
	require.NoError(t, s.Validate())
}

func TestPruneAndWalkInterleaved(t *testing.T) {
	s := New(48, 36)
	s.Seed(24, 18)
	rng := newPCG(2024)
	for i := 1; i <= 600; i++ {
		s.Walk(i, rng)
		require.NoError(t, s.Validate(), "after walk %d", i)
		if i%10 == 0 {
			s.Prune(0.5, PruneThreshold(i, 40), rng)
			require.NoError(t, s.Validate(), "after prune at %d", i)
		}
	}
	_, ok := s.Age(24, 18)
	assert.True(t, ok, "root is never pruned with a floored threshold")
}

func TestPruneNegativeThresholdClearsLoneRoot(t *testing.T) {
	s := New(3, 3)
	s.Seed(1, 1)
	require.Equal(t, 1, s.Prune(1, -1, fixedFloat(0)))
	require.Zero(t, s.Occupied())
	require.False(t, s.Frontier(1, 1))
	require.NoError(t, s.Validate())
}
