//go:build ebiten

package ui

import (
	"image/color"

	"dendrite/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type frontierProvider interface {
	FrontierMask() []bool
}

var frontierTint = color.RGBA{R: 64, G: 164, B: 223, A: 110}

// Overlay draws the attachment frontier on top of the aggregate. F toggles it.
type Overlay struct {
	sim   core.Sim
	scale int
	show  bool

	img *ebiten.Image
	buf []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{sim: sim, scale: scale}
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	provider, ok := o.sim.(frontierProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	total := size.W * size.H
	mask := provider.FrontierMask()
	if total == 0 || len(mask) != total {
		return
	}
	if o.img == nil {
		o.img = ebiten.NewImage(size.W, size.H)
		o.buf = make([]byte, 4*total)
	}
	fillMaskRGBA(o.buf, mask, frontierTint)
	o.img.WritePixels(o.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.img, op)
}
