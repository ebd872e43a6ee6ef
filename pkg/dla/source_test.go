package dla

import "math/rand/v2"

// splitMix is the pinned reference source for golden tests. Its IntN is a
// plain modulo reduction so expected traces can be reproduced by hand.
type splitMix struct {
	state uint64
	calls int
}

func (s *splitMix) next() uint64 {
	s.calls++
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func (s *splitMix) IntN(n int) int { return int(s.next() % uint64(n)) }

func (s *splitMix) Float64() float64 { return float64(s.next()>>11) / (1 << 53) }

// fixedFloat returns the same Float64 forever; IntN is unused by pruning.
type fixedFloat float64

func (f fixedFloat) IntN(int) int     { panic("IntN not expected") }
func (f fixedFloat) Float64() float64 { return float64(f) }

func newPCG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}
