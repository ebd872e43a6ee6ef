package dla

import "fmt"

// Validate checks the tree and mask invariants and reports the first
// violation found. It is O(cells * depth) and meant for tests and debug runs.
func (s *Space) Validate() error {
	counts := make([]int, len(s.cells))
	occupied := 0
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			idx := s.index(x, y)
			c := s.cells[idx]
			if c.age == empty {
				if c.parent != empty || c.children != 0 {
					return fmt.Errorf("empty cell (%d,%d) carries parent %d children %d", x, y, c.parent, c.children)
				}
				continue
			}
			occupied++
			if c.age < 0 {
				return fmt.Errorf("cell (%d,%d) has negative age %d", x, y, c.age)
			}
			if c.parent == idx {
				continue
			}
			px, py := s.coords(c.parent)
			if _, ok := s.lookup(px, py); !ok || s.cells[c.parent].age == empty {
				return fmt.Errorf("cell (%d,%d) has dangling parent (%d,%d)", x, y, px, py)
			}
			if dx, dy := px-x, py-y; dx < -1 || dx > 1 || dy < -1 || dy > 1 {
				return fmt.Errorf("cell (%d,%d) parent (%d,%d) is not a neighbour", x, y, px, py)
			}
			counts[c.parent]++
		}
	}
	if occupied != s.occupied {
		return fmt.Errorf("occupied count %d, found %d", s.occupied, occupied)
	}

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			idx := s.index(x, y)
			c := s.cells[idx]
			if c.age != empty && c.children != counts[idx] {
				return fmt.Errorf("cell (%d,%d) records %d children, has %d", x, y, c.children, counts[idx])
			}
			if want := s.touchesAggregate(x, y); s.near[idx] != want {
				return fmt.Errorf("frontier at (%d,%d) is %v, want %v", x, y, s.near[idx], want)
			}
			if c.age != empty {
				if err := s.checkChain(idx); err != nil {
					return fmt.Errorf("cell (%d,%d): %w", x, y, err)
				}
			}
		}
	}
	return nil
}

func (s *Space) touchesAggregate(x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if idx, ok := s.lookup(x+dx, y+dy); ok && s.cells[idx].age != empty {
				return true
			}
		}
	}
	return false
}

func (s *Space) checkChain(idx int) error {
	for steps := 0; steps <= s.occupied; steps++ {
		parent := s.cells[idx].parent
		if parent == idx {
			return nil
		}
		idx = parent
	}
	return fmt.Errorf("parent chain does not reach a root")
}
