package main

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"dendrite/internal/sims/aggregate"
	"dendrite/internal/telemetry"

	"golang.org/x/sync/errgroup"
)

type paramSet struct {
	probability float64
	every       int
	age         int
}

func (p paramSet) String() string {
	return fmt.Sprintf("p=%.2f every=%d age=%d", p.probability, p.every, p.age)
}

// grid expands every combination of the option lists.
func grid(probs []float64, everies, ages []int) []paramSet {
	var sets []paramSet
	for _, p := range probs {
		for _, e := range everies {
			for _, a := range ages {
				sets = append(sets, paramSet{probability: p, every: e, age: a})
			}
		}
	}
	return sets
}

// evaluate grows one aggregate from base with the pruning parameters applied.
func evaluate(base aggregate.Config, p paramSet, iterations, sampleEvery int) telemetry.SweepResult {
	cfg := base
	cfg.Pruning = aggregate.Pruning{Probability: p.probability, Every: p.every, Age: p.age}
	world := aggregate.NewWithConfig(cfg)

	var series telemetry.Series
	series.Append(telemetry.Sample(world.Space(), 0, 0))
	for i := 0; i < iterations; i++ {
		tick, ok := world.Advance()
		if !ok {
			break
		}
		if sampleEvery > 0 && tick.Iteration%sampleEvery == 0 {
			series.Append(telemetry.Sample(world.Space(), tick.Iteration, world.PrunedTotal()))
		}
	}
	final := telemetry.Sample(world.Space(), world.Iteration(), world.PrunedTotal())
	if last, _ := series.Last(); last.Iteration != final.Iteration {
		final = series.Append(final)
	} else {
		final = last
	}

	return telemetry.SweepResult{
		Probability:    p.probability,
		Every:          p.every,
		Age:            p.age,
		Iterations:     world.Iteration(),
		Occupied:       final.Occupied,
		Leaves:         final.Leaves,
		PrunedTotal:    final.PrunedTotal,
		RadiusGyration: final.RadiusGyration,
		FractalDim:     final.FractalDim,
	}
}

// sweep evaluates all sets on at most workers goroutines. Each job owns its
// own World, so results only depend on base and the set.
func sweep(ctx context.Context, base aggregate.Config, sets []paramSet, iterations, sampleEvery, workers int) ([]telemetry.SweepResult, error) {
	results := make([]telemetry.SweepResult, len(sets))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, p := range sets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = evaluate(base, p, iterations, sampleEvery)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(results, func(a, b telemetry.SweepResult) int {
		switch {
		case a.FractalDim > b.FractalDim:
			return -1
		case a.FractalDim < b.FractalDim:
			return 1
		}
		return 0
	})
	return results, nil
}

type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(value string) error {
	*l = (*l)[:0]
	for _, field := range strings.Split(value, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return err
		}
		*l = append(*l, v)
	}
	return nil
}

type intList []int

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(value string) error {
	*l = (*l)[:0]
	for _, field := range strings.Split(value, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return err
		}
		*l = append(*l, v)
	}
	return nil
}
