package aggregate

import (
	"image/color"

	"dendrite/internal/core"
	pkgcore "dendrite/pkg/core"
	"dendrite/pkg/dla"
)

// Tick reports the outcome of one iteration.
type Tick struct {
	Iteration int
	X, Y      int

	PruneRan bool
	Pruned   int
}

// World drives a dla.Space: it seeds roots, releases one walker per
// iteration and runs the pruning pass on its cadence.
type World struct {
	cfg Config

	space *dla.Space
	rng   *pkgcore.RNG

	iteration   int
	prunedTotal int

	display *core.ByteGrid
	palette []color.RGBA
	near    []bool
}

// New returns a World with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a seeded World. It panics if the grid size is not
// positive.
func NewWithConfig(cfg Config) *World {
	if cfg.ColorsStep <= 0 {
		cfg.ColorsStep = 1
	}
	w := &World{
		cfg:     cfg,
		rng:     pkgcore.NewRNG(cfg.Seed),
		display: core.NewByteGrid(cfg.Width, cfg.Height),
		palette: buildPalette(cfg.Palette),
	}
	w.Reset(0)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "dla" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Cells exposes the palette-indexed display buffer.
func (w *World) Cells() []uint8 { return w.display.Cells() }

// Config returns a copy of the active configuration.
func (w *World) Config() Config { return w.cfg }

// Space exposes the engine for read-only inspection.
func (w *World) Space() *dla.Space { return w.space }

// Iteration returns the number of walkers released since Reset.
func (w *World) Iteration() int { return w.iteration }

// PrunedTotal returns the number of cells removed since Reset.
func (w *World) PrunedTotal() int { return w.prunedTotal }

// Reset rebuilds the aggregate from its seed layout. A zero seed reuses the
// configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Reseed(effective)
	w.space = dla.New(w.cfg.Width, w.cfg.Height)
	for _, p := range SeedPoints(w.cfg) {
		w.space.Seed(p.X, p.Y)
	}
	w.iteration = 0
	w.prunedTotal = 0
	w.rebuildDisplay()
}

// Advance runs one iteration: a walk aged with the new iteration number, then
// a pruning pass when the iteration hits the pruning cadence. It reports false
// without doing anything once the grid is full.
func (w *World) Advance() (Tick, bool) {
	if w.space.Full() {
		return Tick{}, false
	}
	w.iteration++
	x, y := w.space.Walk(w.iteration, w.rng)
	w.paint(x, y, w.iteration)

	t := Tick{Iteration: w.iteration, X: x, Y: y}
	p := w.cfg.Pruning
	if p.Every > 0 && w.iteration%p.Every == 0 {
		t.PruneRan = true
		t.Pruned = w.space.Prune(p.Probability, dla.PruneThreshold(w.iteration, p.Age), w.rng)
		if t.Pruned > 0 {
			w.prunedTotal += t.Pruned
			w.rebuildDisplay()
		}
	}
	return t, true
}

// Step advances WalksPerStep iterations.
func (w *World) Step() {
	n := w.cfg.WalksPerStep
	if n <= 0 {
		n = 1
	}
	for i := 0; i < n; i++ {
		if _, ok := w.Advance(); !ok {
			return
		}
	}
}

// FrontierMask returns the attachment mask in row-major logical order. The
// slice is reused between calls.
func (w *World) FrontierMask() []bool {
	total := w.cfg.Width * w.cfg.Height
	if len(w.near) != total {
		w.near = make([]bool, total)
	}
	for y := 0; y < w.cfg.Height; y++ {
		for x := 0; x < w.cfg.Width; x++ {
			w.near[y*w.cfg.Width+x] = w.space.Frontier(x, y)
		}
	}
	return w.near
}

func init() {
	core.Register("dla", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
