// Package telemetry samples aggregate growth and writes it out as CSV.
package telemetry

import (
	"log/slog"
	"math"

	"dendrite/pkg/dla"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// GrowthStats is one growth sample.
type GrowthStats struct {
	Iteration      int     `csv:"iteration"`
	Occupied       int     `csv:"occupied"`
	Roots          int     `csv:"roots"`
	Leaves         int     `csv:"leaves"`
	PrunedTotal    int     `csv:"pruned_total"`
	Rebuilds       int     `csv:"rebuilds"`
	RadiusGyration float64 `csv:"radius_gyration"`
	MaxRadius      float64 `csv:"max_radius"`
	FractalDim     float64 `csv:"fractal_dim"` // 0 until enough samples exist
}

// Sample measures the aggregate. Radii are taken about the centroid of all
// occupied cells.
func Sample(space *dla.Space, iteration, prunedTotal int) GrowthStats {
	st := space.Stats()
	s := GrowthStats{
		Iteration:   iteration,
		Occupied:    st.Occupied,
		Roots:       st.Roots,
		Leaves:      st.Leaves,
		PrunedTotal: prunedTotal,
		Rebuilds:    st.Rebuilds,
	}
	if st.Occupied == 0 {
		return s
	}

	xs := make([]float64, 0, st.Occupied)
	ys := make([]float64, 0, st.Occupied)
	space.ForEach(func(x, y int, _ dla.Cell) {
		xs = append(xs, float64(x))
		ys = append(ys, float64(y))
	})
	cx := stat.Mean(xs, nil)
	cy := stat.Mean(ys, nil)

	d2 := make([]float64, len(xs))
	for i := range xs {
		dx, dy := xs[i]-cx, ys[i]-cy
		d2[i] = dx*dx + dy*dy
	}
	s.RadiusGyration = math.Sqrt(stat.Mean(d2, nil))
	s.MaxRadius = math.Sqrt(floats.Max(d2))
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s GrowthStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("iteration", s.Iteration),
		slog.Int("occupied", s.Occupied),
		slog.Int("roots", s.Roots),
		slog.Int("leaves", s.Leaves),
		slog.Int("pruned_total", s.PrunedTotal),
		slog.Int("rebuilds", s.Rebuilds),
		slog.Float64("radius_gyration", s.RadiusGyration),
		slog.Float64("max_radius", s.MaxRadius),
		slog.Float64("fractal_dim", s.FractalDim),
	)
}

// minFitSamples is the fewest usable samples a dimension fit accepts.
const minFitSamples = 3

// Series accumulates samples over a run.
type Series struct {
	samples []GrowthStats
}

// Append records s, filling in its FractalDim from the samples so far.
func (ts *Series) Append(s GrowthStats) GrowthStats {
	ts.samples = append(ts.samples, s)
	if d, ok := ts.FractalDimension(); ok {
		s.FractalDim = d
		ts.samples[len(ts.samples)-1] = s
	}
	return s
}

// Samples returns the recorded samples.
func (ts *Series) Samples() []GrowthStats { return ts.samples }

// Last returns the most recent sample.
func (ts *Series) Last() (GrowthStats, bool) {
	if len(ts.samples) == 0 {
		return GrowthStats{}, false
	}
	return ts.samples[len(ts.samples)-1], true
}

// FractalDimension fits log N = D log Rg + c over the recorded samples and
// returns D. Samples with fewer than two cells carry no radius and are skipped.
func (ts *Series) FractalDimension() (float64, bool) {
	var logR, logN []float64
	for _, s := range ts.samples {
		if s.Occupied < 2 || s.RadiusGyration <= 0 {
			continue
		}
		logR = append(logR, math.Log(s.RadiusGyration))
		logN = append(logN, math.Log(float64(s.Occupied)))
	}
	if len(logR) < minFitSamples || stat.Variance(logR, nil) == 0 {
		return 0, false
	}
	_, beta := stat.LinearRegression(logR, logN, nil, false)
	return beta, true
}
