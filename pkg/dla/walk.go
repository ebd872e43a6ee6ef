package dla

import "fmt"

// Walk releases one particle on a random free cell and lets it diffuse until
// it enters the frontier, where it attaches with the given iteration as its
// age. It returns the attachment position.
//
// The walk has no step limit. Calling Walk on a full grid panics since no
// spawn cell exists.
func (s *Space) Walk(iteration int, rng Source) (int, int) {
	if s.Full() {
		panic("dla: walk on a full grid")
	}

	var x, y int
	for {
		x = rng.IntN(s.width)
		y = rng.IntN(s.height)
		if s.cells[s.index(x, y)].age == empty {
			break
		}
	}

	for !s.near[s.index(x, y)] {
		nx := x + rng.IntN(3) - 1
		ny := y + rng.IntN(3) - 1
		// Each axis is clamped on its own: a move off the grid on one axis
		// still lets the other axis move.
		if nx >= 0 && nx < s.width {
			x = nx
		}
		if ny >= 0 && ny < s.height {
			y = ny
		}
	}

	s.attach(x, y, iteration, rng)
	return x, y
}

// attach joins the cell at (x, y) to one of its occupied neighbours. Ties are
// broken uniformly at random to avoid a directional bias.
func (s *Space) attach(x, y, age int, rng Source) {
	var buf [8]int
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			idx, ok := s.lookup(x+dx, y+dy)
			if !ok || s.cells[idx].age == empty {
				continue
			}
			buf[n] = idx
			n++
		}
	}

	var parent int
	switch n {
	case 0:
		panic(fmt.Sprintf("dla: frontier cell (%d,%d) has no occupied neighbour", x, y))
	case 1:
		parent = buf[0]
	default:
		parent = buf[rng.IntN(n)]
	}
	s.occupy(s.index(x, y), age, parent)
}
