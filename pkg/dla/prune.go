package dla

// PruneThreshold returns the age at or below which cells are kept during a
// pruning pass at the given iteration: iteration-age, floored at zero.
// Since ages are attachment iterations, this makes the newest terminal cells
// the candidates, not the oldest.
func PruneThreshold(iteration, age int) int {
	if t := iteration - age; t > 0 {
		return t
	}
	return 0
}

// Prune removes terminal cells whose age exceeds ageThreshold, each independently
// with the given probability. Only cells that were terminal when the pass
// started are considered; parents left childless wait for the next pass.
// The frontier mask is rebuilt once if anything was removed. Prune returns the
// number of removed cells.
func (s *Space) Prune(probability float64, ageThreshold int, rng Source) int {
	candidates := s.scratch[:0]
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			idx := s.index(x, y)
			c := s.cells[idx]
			if c.age == empty || c.children != 0 || c.age <= ageThreshold {
				continue
			}
			candidates = append(candidates, idx)
		}
	}
	s.scratch = candidates

	removed := 0
	for _, idx := range candidates {
		if rng.Float64() >= probability {
			continue
		}
		s.remove(idx)
		removed++
	}
	if removed > 0 {
		s.rebuild()
	}
	return removed
}

func (s *Space) remove(idx int) {
	parent := s.cells[idx].parent
	s.cells[idx] = cell{age: empty, parent: empty}
	s.occupied--
	if parent == idx {
		return
	}
	if p := &s.cells[parent]; p.children > 0 {
		p.children--
	}
}
