// Command dla-sweep grows one aggregate per pruning parameter combination and
// ranks them by fitted fractal dimension.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"time"

	"dendrite/internal/config"
	"dendrite/internal/telemetry"
)

func main() {
	preset := flag.String("preset", "middle", "base preset")
	configPath := flag.String("config", "", "base YAML config layered over the preset")
	iterations := flag.Int("iterations", 4000, "walks per candidate")
	width := flag.Int("width", 160, "grid width for sweep runs")
	height := flag.Int("height", 160, "grid height for sweep runs")
	sampleEvery := flag.Int("sample", 250, "iterations between growth samples")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel candidate evaluations")
	output := flag.String("output", "sweep.csv", "CSV output path")
	probs := floatList{0.25, 0.5, 0.75}
	everies := intList{5, 10, 20}
	ages := intList{20, 40, 80}
	flag.Var(&probs, "prob", "comma-separated prune probabilities")
	flag.Var(&everies, "every", "comma-separated prune cadences")
	flag.Var(&ages, "age", "comma-separated prune ages")
	flag.Parse()

	cfg, err := config.Load(*preset, *configPath)
	if err != nil {
		slog.Error("loading config", "err", err)
		os.Exit(1)
	}
	base := cfg.Sim
	base.Width = *width
	base.Height = *height

	sets := grid(probs, everies, ages)
	slog.Info("sweep start", "sets", len(sets), "workers", *workers, "iterations", *iterations)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := sweep(ctx, base, sets, *iterations, *sampleEvery, *workers)
	if err != nil {
		slog.Error("sweep", "err", err)
		os.Exit(1)
	}
	if err := telemetry.WriteSweep(*output, results); err != nil {
		slog.Error("writing results", "err", err)
		os.Exit(1)
	}

	fmt.Printf("\nTop 5 results (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(results) && i < 5; i++ {
		r := results[i]
		p := paramSet{probability: r.Probability, every: r.Every, age: r.Age}
		fmt.Printf("%2d) D=%.3f occupied=%d leaves=%d pruned=%d Rg=%.2f %s\n",
			i+1, r.FractalDim, r.Occupied, r.Leaves, r.PrunedTotal, r.RadiusGyration, p)
	}
}
