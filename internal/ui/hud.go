//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"dendrite/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBG     = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	textColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 150, G: 150, B: 160, A: 255}
	buttonBG    = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOffBG = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

const (
	panelPadding = 12
	lineHeight   = 32
	buttonSize   = 22
	buttonGap    = 6
	headerHeight = 34
	statSpacing  = 16
)

// HUD renders the parameter panel to the right of the simulation view. Sims
// expose values through core.ParameterProvider and accept edits through the
// core setter interfaces; groups without a matching control are listed as
// read-only counters below the buttons.
type HUD struct {
	sim   core.Sim
	width int
	panel *ebiten.Image

	snapshot core.ParameterSnapshot
	controls []hudControl
	ints     core.IntParameterSetter
	floats   core.FloatParameterSetter
	offsetX  int
}

type hudControl struct {
	core.ParameterControl

	text  string
	value float64
	valid bool

	top         int
	minus, plus image.Rectangle
}

// NewHUD constructs a HUD for the provided simulation and panel width. It
// returns nil when width is not positive.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{sim: sim, width: width}
	if p, ok := sim.(core.ParameterControlsProvider); ok {
		for i, ctrl := range p.ParameterControls() {
			top := headerHeight + i*lineHeight
			y := top + (lineHeight-buttonSize)/2
			plus := image.Rect(width-panelPadding-buttonSize, y, width-panelPadding, y+buttonSize)
			minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
			h.controls = append(h.controls, hudControl{ParameterControl: ctrl, text: "--", top: top, minus: minus, plus: plus})
		}
	}
	h.ints, _ = sim.(core.IntParameterSetter)
	h.floats, _ = sim.(core.FloatParameterSetter)
	return h
}

// Update refreshes the cached snapshot and applies button clicks. offsetX is
// the screen x coordinate of the panel's left edge.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	p, ok := h.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	h.snapshot = p.Parameters()
	for i := range h.controls {
		h.refresh(&h.controls[i])
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	pt := image.Pt(mx-h.offsetX, my)
	for i := range h.controls {
		c := &h.controls[i]
		switch {
		case pt.In(c.minus):
			h.adjust(c, -1)
		case pt.In(c.plus):
			h.adjust(c, 1)
		default:
			continue
		}
		return
	}
}

func (h *HUD) refresh(c *hudControl) {
	c.valid = false
	c.text = "--"
	param, ok := h.snapshot.Lookup(c.Key)
	if !ok {
		return
	}
	v, err := strconv.ParseFloat(param.Value, 64)
	if err != nil {
		return
	}
	c.value = v
	c.valid = true
	c.text = formatValue(c.ParameterControl, v)
}

// target computes the value one step in direction dir and reports whether the
// sim can accept it.
func (h *HUD) target(c *hudControl, dir int) (float64, bool) {
	if !c.valid {
		return 0, false
	}
	step := c.Step
	switch c.Type {
	case core.ParamTypeInt:
		if h.ints == nil {
			return 0, false
		}
		step = math.Max(1, math.Round(step))
	case core.ParamTypeFloat:
		if h.floats == nil {
			return 0, false
		}
		if step <= 0 {
			step = 0.05
		}
	default:
		return 0, false
	}
	v := c.value + float64(dir)*step
	if c.HasMin && v < c.Min {
		v = c.Min
	}
	if c.HasMax && v > c.Max {
		v = c.Max
	}
	return v, math.Abs(v-c.value) > 1e-9
}

func (h *HUD) adjust(c *hudControl, dir int) {
	v, ok := h.target(c, dir)
	if !ok {
		return
	}
	var applied bool
	if c.Type == core.ParamTypeInt {
		applied = h.ints.SetIntParameter(c.Key, int(math.Round(v)))
	} else {
		applied = h.floats.SetFloatParameter(c.Key, v)
	}
	if applied {
		c.value = v
		c.text = formatValue(c.ParameterControl, v)
	}
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBG)

	face := basicfont.Face7x13
	text.Draw(h.panel, strings.ToUpper(h.sim.Name()), face, panelPadding, panelPadding+12, textColor)

	for i := range h.controls {
		c := &h.controls[i]
		base := c.top + lineHeight/2 + 4
		text.Draw(h.panel, c.Label, face, panelPadding, base, textColor)
		w := text.BoundString(face, c.text).Dx()
		col := textColor
		if !c.valid {
			col = dimColor
		}
		text.Draw(h.panel, c.text, face, c.minus.Min.X-buttonGap-w, base, col)
		_, canDec := h.target(c, -1)
		_, canInc := h.target(c, 1)
		h.drawButton(c.minus, "-", canDec)
		h.drawButton(c.plus, "+", canInc)
	}

	y := headerHeight + len(h.controls)*lineHeight + statSpacing
	for _, g := range h.snapshot.Groups {
		if g.Summary == "" {
			continue
		}
		text.Draw(h.panel, g.Name, face, panelPadding, y, dimColor)
		y += statSpacing
		for _, p := range g.Params {
			text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding+8, y, textColor)
			y += statSpacing
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(r image.Rectangle, label string, enabled bool) {
	bg, fg := buttonBG, textColor
	if !enabled {
		bg, fg = buttonOffBG, dimColor
	}
	vector.DrawFilledRect(h.panel, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)
	b := text.BoundString(basicfont.Face7x13, label)
	x := r.Min.X + (r.Dx()-b.Dx())/2
	y := r.Min.Y + (r.Dy()+b.Dy())/2
	text.Draw(h.panel, label, basicfont.Face7x13, x, y, fg)
}

func formatValue(ctrl core.ParameterControl, v float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(v)))
	}
	precision := 1
	switch {
	case ctrl.Step > 0 && ctrl.Step < 0.01:
		precision = 3
	case ctrl.Step > 0 && ctrl.Step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}
