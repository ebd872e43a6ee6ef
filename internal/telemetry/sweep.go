package telemetry

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// SweepResult is the final state of one pruning-parameter evaluation.
type SweepResult struct {
	Probability    float64 `csv:"prune_probability"`
	Every          int     `csv:"prune_every"`
	Age            int     `csv:"prune_age"`
	Iterations     int     `csv:"iterations"`
	Occupied       int     `csv:"occupied"`
	Leaves         int     `csv:"leaves"`
	PrunedTotal    int     `csv:"pruned_total"`
	RadiusGyration float64 `csv:"radius_gyration"`
	FractalDim     float64 `csv:"fractal_dim"`
}

// WriteSweep writes results to a CSV file at path.
func WriteSweep(path string, results []SweepResult) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err := gocsv.Marshal(results, f); err != nil {
		return fmt.Errorf("writing sweep: %w", err)
	}
	return nil
}

// ReadSweep loads results written by WriteSweep.
func ReadSweep(path string) ([]SweepResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	var results []SweepResult
	if err := gocsv.UnmarshalFile(f, &results); err != nil {
		return nil, fmt.Errorf("reading sweep: %w", err)
	}
	return results, nil
}
