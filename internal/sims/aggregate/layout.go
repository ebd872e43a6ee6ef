package aggregate

import (
	"fmt"
	"strconv"
	"strings"
)

// Layout names a seed arrangement.
type Layout string

const (
	// LayoutMiddle places one root at the grid centre.
	LayoutMiddle Layout = "middle"
	// LayoutInOut places root clusters along the top and bottom edges.
	LayoutInOut Layout = "inout"
	// LayoutPoints uses Config.Points verbatim.
	LayoutPoints Layout = "points"
)

// Point is a logical grid coordinate.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// ParseLayout validates a layout name.
func ParseLayout(s string) (Layout, error) {
	switch l := Layout(strings.ToLower(strings.TrimSpace(s))); l {
	case LayoutMiddle, LayoutInOut, LayoutPoints:
		return l, nil
	default:
		return "", fmt.Errorf("unknown layout %q", s)
	}
}

// ParsePoints reads "x:y,x:y" lists.
func ParsePoints(s string) ([]Point, error) {
	var pts []Point
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		xs, ys, ok := strings.Cut(field, ":")
		if !ok {
			return nil, fmt.Errorf("point %q: want x:y", field)
		}
		x, err := strconv.Atoi(xs)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", field, err)
		}
		y, err := strconv.Atoi(ys)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", field, err)
		}
		pts = append(pts, Point{X: x, Y: y})
	}
	return pts, nil
}

// SeedPoints expands the configured layout into root positions. Points outside
// the grid are dropped and duplicates are collapsed, keeping first-seen order.
// A layout that yields no root falls back to the centre, since walkers never
// terminate without an aggregate to hit.
func SeedPoints(c Config) []Point {
	var raw []Point
	switch c.Layout {
	case LayoutInOut:
		raw = inOutPoints(c.Width, c.Height, c.InOut)
	case LayoutPoints:
		raw = c.Points
	default:
		raw = []Point{{X: c.Width / 2, Y: c.Height / 2}}
	}

	seen := make(map[Point]bool, len(raw))
	out := make([]Point, 0, len(raw))
	for _, p := range raw {
		if p.X < 0 || p.X >= c.Width || p.Y < 0 || p.Y >= c.Height || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	if len(out) == 0 {
		out = append(out, Point{X: c.Width / 2, Y: c.Height / 2})
	}
	return out
}

func inOutPoints(w, h int, io InOut) []Point {
	var pts []Point
	edge := func(n int, row func(dy int) int) {
		for i := 0; i < n; i++ {
			cx := (i + 1) * w / (n + 1)
			for dy := 0; dy < io.Depth; dy++ {
				for dx := 0; dx < io.HalfWidth; dx++ {
					pts = append(pts, Point{X: cx + dx, Y: row(dy)}, Point{X: cx - dx, Y: row(dy)})
				}
			}
		}
	}
	edge(io.In, func(dy int) int { return dy })
	edge(io.Out, func(dy int) int { return h - 1 - dy })
	return pts
}
