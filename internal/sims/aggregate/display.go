package aggregate

import (
	"fmt"
	"image/color"

	"dendrite/pkg/dla"
)

var emptyColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// maxPaletteColors leaves display value 0 for empty cells.
const maxPaletteColors = 255

// Palette exposes the display palette. Index 0 is the empty-cell colour.
func (w *World) Palette() []color.RGBA {
	return w.palette
}

// ParseHexColor reads "#rrggbb" or "rrggbb".
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: want rrggbb", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// buildPalette prepends the empty colour to the parsed age colours. Invalid
// entries are skipped; an empty result falls back to black.
func buildPalette(hex []string) []color.RGBA {
	palette := []color.RGBA{emptyColor}
	for _, h := range hex {
		if len(palette) > maxPaletteColors {
			break
		}
		c, err := ParseHexColor(h)
		if err != nil {
			continue
		}
		palette = append(palette, c)
	}
	if len(palette) == 1 {
		palette = append(palette, color.RGBA{A: 255})
	}
	return palette
}

// displayValue maps an attachment age to its palette index, cycling through
// the age colours every ColorsStep iterations.
func (w *World) displayValue(age int) uint8 {
	colors := len(w.palette) - 1
	return uint8(1 + (age/w.cfg.ColorsStep)%colors)
}

func (w *World) paint(x, y, age int) {
	w.display.Set(x, y, w.displayValue(age))
}

func (w *World) rebuildDisplay() {
	w.display.Clear()
	w.space.ForEach(func(x, y int, c dla.Cell) {
		w.paint(x, y, c.Age)
	})
}
