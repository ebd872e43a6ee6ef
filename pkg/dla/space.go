// Package dla implements a diffusion-limited aggregation engine on a padded
// 2D grid. Occupied cells form a forest rooted at seed cells; a dense
// neighbourhood mask marks the frontier where diffusing particles attach.
package dla

import "fmt"

const empty = -1

// Source supplies the uniform randomness consumed by walks and pruning.
// *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// cell is the per-position aggregate record. age == empty marks a free cell.
type cell struct {
	age      int
	parent   int
	children int
}

// Space stores the aggregate and its frontier mask. The backing arrays carry a
// one-cell border on every side so that 3x3 marks never need bounds checks.
type Space struct {
	width, height int
	stride        int

	cells []cell
	near  []bool

	occupied int
	rebuilds int

	scratch []int
}

// New allocates an empty space. It panics if either dimension is not positive.
func New(width, height int) *Space {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("dla: invalid grid size %dx%d", width, height))
	}
	stride := width + 2
	total := stride * (height + 2)
	s := &Space{
		width:  width,
		height: height,
		stride: stride,
		cells:  make([]cell, total),
		near:   make([]bool, total),
	}
	for i := range s.cells {
		s.cells[i] = cell{age: empty, parent: empty}
	}
	return s
}

// Width returns the logical width.
func (s *Space) Width() int { return s.width }

// Height returns the logical height.
func (s *Space) Height() int { return s.height }

// Occupied returns the number of aggregate cells.
func (s *Space) Occupied() int { return s.occupied }

// Full reports whether no free cell remains for a walker to spawn on.
func (s *Space) Full() bool { return s.occupied == s.width*s.height }

func (s *Space) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// index maps logical coordinates into padded storage. Callers guarantee bounds.
func (s *Space) index(x, y int) int {
	return (y+1)*s.stride + x + 1
}

// lookup is the bounds-checked variant of index. It never resolves into the
// padding border.
func (s *Space) lookup(x, y int) (int, bool) {
	if !s.inBounds(x, y) {
		return 0, false
	}
	return s.index(x, y), true
}

// coords inverts index for a logical cell.
func (s *Space) coords(idx int) (int, int) {
	return idx%s.stride - 1, idx/s.stride - 1
}

// Seed places a root aggregate of age 0 at (x, y). It panics when the
// position is outside the grid or already occupied.
func (s *Space) Seed(x, y int) {
	idx, ok := s.lookup(x, y)
	if !ok {
		panic(fmt.Sprintf("dla: seed (%d,%d) outside %dx%d grid", x, y, s.width, s.height))
	}
	if s.cells[idx].age != empty {
		panic(fmt.Sprintf("dla: seed (%d,%d) already occupied", x, y))
	}
	s.occupy(idx, 0, idx)
}

func (s *Space) occupy(idx, age, parent int) {
	s.cells[idx] = cell{age: age, parent: parent}
	if parent != idx {
		s.cells[parent].children++
	}
	s.occupied++
	s.mark(idx)
}

// mark flags the 3x3 block centred on idx, including idx itself.
func (s *Space) mark(idx int) {
	rw := s.stride
	s.near[idx-1-rw] = true
	s.near[idx-rw] = true
	s.near[idx+1-rw] = true
	s.near[idx-1] = true
	s.near[idx] = true
	s.near[idx+1] = true
	s.near[idx-1+rw] = true
	s.near[idx+rw] = true
	s.near[idx+1+rw] = true
}

// rebuild recomputes the whole mask from the occupied cells.
func (s *Space) rebuild() {
	clear(s.near)
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			idx := s.index(x, y)
			if s.cells[idx].age != empty {
				s.mark(idx)
			}
		}
	}
	s.rebuilds++
}
