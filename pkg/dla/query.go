package dla

// Cell is a read-only view of an aggregate cell.
type Cell struct {
	Age      int
	ParentX  int
	ParentY  int
	Children int
}

// Root reports whether the cell at (x, y) with this record is a seed root.
func (c Cell) Root(x, y int) bool { return c.ParentX == x && c.ParentY == y }

// Stats summarises the current aggregate.
type Stats struct {
	Occupied int
	Roots    int
	Leaves   int
	Rebuilds int
}

// Age returns the attachment iteration of the cell at (x, y), or false when
// the cell is empty or outside the grid.
func (s *Space) Age(x, y int) (int, bool) {
	idx, ok := s.lookup(x, y)
	if !ok {
		return 0, false
	}
	age := s.cells[idx].age
	if age == empty {
		return 0, false
	}
	return age, true
}

// Cell returns the record for an occupied cell.
func (s *Space) Cell(x, y int) (Cell, bool) {
	idx, ok := s.lookup(x, y)
	if !ok || s.cells[idx].age == empty {
		return Cell{}, false
	}
	return s.view(idx), true
}

func (s *Space) view(idx int) Cell {
	c := s.cells[idx]
	px, py := s.coords(c.parent)
	return Cell{Age: c.age, ParentX: px, ParentY: py, Children: c.children}
}

// Frontier reports whether a particle at (x, y) would attach.
func (s *Space) Frontier(x, y int) bool {
	idx, ok := s.lookup(x, y)
	return ok && s.near[idx]
}

// ForEach calls fn for every occupied cell in row-major order.
func (s *Space) ForEach(fn func(x, y int, c Cell)) {
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			idx := s.index(x, y)
			if s.cells[idx].age == empty {
				continue
			}
			fn(x, y, s.view(idx))
		}
	}
}

// Stats counts roots and leaves. It scans the whole grid.
func (s *Space) Stats() Stats {
	st := Stats{Occupied: s.occupied, Rebuilds: s.rebuilds}
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			idx := s.index(x, y)
			c := s.cells[idx]
			if c.age == empty {
				continue
			}
			if c.parent == idx {
				st.Roots++
			}
			if c.children == 0 {
				st.Leaves++
			}
		}
	}
	return st
}
