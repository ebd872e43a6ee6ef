package dla

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkGolden(t *testing.T) {
	s := New(10, 10)
	s.Seed(5, 5)
	rng := &splitMix{state: 42}

	want := [][2]int{{6, 4}, {7, 4}, {6, 6}, {4, 5}, {5, 7}}
	for i := 1; i <= 5; i++ {
		x, y := s.Walk(i, rng)
		require.Equal(t, want[i-1], [2]int{x, y}, "walk %d", i)
	}
	require.Equal(t, 218, rng.calls)

	type rec struct {
		age, px, py, children int
	}
	expected := map[[2]int]rec{
		{5, 5}: {0, 5, 5, 3},
		{6, 4}: {1, 5, 5, 1},
		{7, 4}: {2, 6, 4, 0},
		{6, 6}: {3, 5, 5, 1},
		{4, 5}: {4, 5, 5, 0},
		{5, 7}: {5, 6, 6, 0},
	}
	got := map[[2]int]rec{}
	s.ForEach(func(x, y int, c Cell) {
		got[[2]int{x, y}] = rec{c.Age, c.ParentX, c.ParentY, c.Children}
	})
	require.Equal(t, expected, got)
	require.NoError(t, s.Validate())
}

func TestWalkAddsOneAdjacentCell(t *testing.T) {
	s := New(24, 18)
	s.Seed(12, 9)
	s.Seed(0, 17)
	rng := newPCG(7)

	for i := 1; i <= 150; i++ {
		before := snapshot(s)
		x, y := s.Walk(i, rng)

		_, wasOccupied := before[[2]int{x, y}]
		require.False(t, wasOccupied, "walk %d landed on occupied cell", i)
		require.Equal(t, len(before)+1, s.Occupied())

		age, ok := s.Age(x, y)
		require.True(t, ok)
		require.Equal(t, i, age)

		c, _ := s.Cell(x, y)
		_, parentWasOccupied := before[[2]int{c.ParentX, c.ParentY}]
		require.True(t, parentWasOccupied, "walk %d parent not previously occupied", i)
		require.LessOrEqual(t, abs(c.ParentX-x), 1)
		require.LessOrEqual(t, abs(c.ParentY-y), 1)

		require.NoError(t, s.Validate(), "after walk %d", i)
	}
}

func TestWalkDeterministic(t *testing.T) {
	run := func() map[[2]int]int {
		s := New(30, 20)
		s.Seed(15, 10)
		rng := newPCG(99)
		for i := 1; i <= 60; i++ {
			s.Walk(i, rng)
		}
		return snapshot(s)
	}
	assert.Equal(t, run(), run())
}

func TestWalkFillsTinyGrid(t *testing.T) {
	s := New(2, 2)
	s.Seed(0, 0)
	rng := newPCG(3)
	for i := 1; i <= 3; i++ {
		s.Walk(i, rng)
	}
	require.True(t, s.Full())
	require.NoError(t, s.Validate())
	assert.Panics(t, func() { s.Walk(4, rng) })
}

func TestAttachSingleNeighbourIsDeterministic(t *testing.T) {
	s := New(5, 5)
	s.Seed(2, 2)
	// A single candidate must not consume randomness.
	s.attach(3, 3, 1, fixedFloat(0))
	c, ok := s.Cell(3, 3)
	require.True(t, ok)
	assert.Equal(t, Cell{Age: 1, ParentX: 2, ParentY: 2}, c)
}

func TestAttachWithoutNeighbourPanics(t *testing.T) {
	s := New(5, 5)
	s.Seed(0, 0)
	assert.Panics(t, func() { s.attach(4, 4, 1, newPCG(1)) })
}

func TestAttachSkipsOutOfRangeNeighbours(t *testing.T) {
	s := New(3, 3)
	s.Seed(0, 1)
	s.attach(0, 0, 1, fixedFloat(0))
	c, ok := s.Cell(0, 0)
	require.True(t, ok)
	assert.Equal(t, 0, c.ParentX)
	assert.Equal(t, 1, c.ParentY)
}

func snapshot(s *Space) map[[2]int]int {
	out := map[[2]int]int{}
	s.ForEach(func(x, y int, c Cell) { out[[2]int{x, y}] = c.Age })
	return out
}
