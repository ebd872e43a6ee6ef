package aggregate

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Pruning controls the periodic removal of old terminal cells. Every == 0
// disables pruning.
type Pruning struct {
	Probability float64 `yaml:"probability"`
	Every       int     `yaml:"every"`
	Age         int     `yaml:"age"`
}

// InOut describes the two-edge seed layout: In clusters along the top edge
// and Out clusters along the bottom edge, each 2*HalfWidth wide and Depth
// rows deep.
type InOut struct {
	In        int `yaml:"in"`
	Out       int `yaml:"out"`
	HalfWidth int `yaml:"half_width"`
	Depth     int `yaml:"depth"`
}

// Config controls the aggregate simulation.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	Layout Layout  `yaml:"layout"`
	Points []Point `yaml:"points,omitempty"`
	InOut  InOut   `yaml:"inout"`

	Pruning Pruning `yaml:"pruning"`

	// WalksPerStep is the number of particles released per Step call.
	WalksPerStep int `yaml:"walks_per_step"`

	ColorsStep int      `yaml:"colors_step"`
	Palette    []string `yaml:"palette"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  400,
		Height: 300,
		Seed:   1,
		Layout: LayoutMiddle,
		InOut: InOut{
			In:        2,
			Out:       3,
			HalfWidth: 2,
			Depth:     2,
		},
		Pruning: Pruning{
			Probability: 0.5,
			Every:       0,
			Age:         40,
		},
		WalksPerStep: 50,
		ColorsStep:   1,
		Palette:      []string{"#000000"},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(m map[string]string) Config {
	return DefaultConfig().Apply(m)
}

// Apply returns c with the recognised keys of m layered on top. Values that
// fail to parse or fall out of range are ignored.
func (c Config) Apply(m map[string]string) Config {
	c.Points = slices.Clone(c.Points)
	c.Palette = slices.Clone(c.Palette)
	if v, ok := m["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := m["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := m["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := m["layout"]; ok {
		if l, err := ParseLayout(v); err == nil {
			c.Layout = l
		}
	}
	if v, ok := m["points"]; ok {
		if pts, err := ParsePoints(v); err == nil {
			c.Points = pts
		}
	}
	for key, dst := range map[string]*int{"in": &c.InOut.In, "out": &c.InOut.Out, "half_width": &c.InOut.HalfWidth, "depth": &c.InOut.Depth} {
		if v, ok := m[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
				*dst = parsed
			}
		}
	}
	if v, ok := m["prune_probability"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Pruning.Probability = parsed
		}
	}
	if v, ok := m["prune_every"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Pruning.Every = parsed
		}
	}
	if v, ok := m["prune_age"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Pruning.Age = parsed
		}
	}
	if v, ok := m["walks"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.WalksPerStep = parsed
		}
	}
	if v, ok := m["colors_step"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ColorsStep = parsed
		}
	}
	if v, ok := m["palette"]; ok && v != "" {
		c.Palette = strings.Split(v, ",")
	}
	return c
}

// ToMap is the inverse of Apply.
func (c Config) ToMap() map[string]string {
	m := map[string]string{
		"w":                 strconv.Itoa(c.Width),
		"h":                 strconv.Itoa(c.Height),
		"seed":              strconv.FormatInt(c.Seed, 10),
		"layout":            string(c.Layout),
		"in":                strconv.Itoa(c.InOut.In),
		"out":               strconv.Itoa(c.InOut.Out),
		"half_width":        strconv.Itoa(c.InOut.HalfWidth),
		"depth":             strconv.Itoa(c.InOut.Depth),
		"prune_probability": strconv.FormatFloat(c.Pruning.Probability, 'g', -1, 64),
		"prune_every":       strconv.Itoa(c.Pruning.Every),
		"prune_age":         strconv.Itoa(c.Pruning.Age),
		"walks":             strconv.Itoa(c.WalksPerStep),
		"colors_step":       strconv.Itoa(c.ColorsStep),
		"palette":           strings.Join(c.Palette, ","),
	}
	if len(c.Points) > 0 {
		pts := make([]string, len(c.Points))
		for i, p := range c.Points {
			pts[i] = fmt.Sprintf("%d:%d", p.X, p.Y)
		}
		m["points"] = strings.Join(pts, ",")
	}
	return m
}
