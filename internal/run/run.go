// Package run drives a World through a fixed number of iterations, writing
// PNG snapshots and growth telemetry along the way.
package run

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dendrite/internal/config"
	"dendrite/internal/core"
	"dendrite/internal/render"
	"dendrite/internal/sims/aggregate"
	"dendrite/internal/telemetry"
)

// Result summarises a finished run.
type Result struct {
	Iterations int
	Final      telemetry.GrowthStats
	Snapshots  []string
	Elapsed    time.Duration
}

// Runner owns one World for the duration of a run.
type Runner struct {
	cfg      *config.Config
	world    *aggregate.World
	out      *telemetry.OutputManager
	series   telemetry.Series
	progress *core.FixedStep
	log      *slog.Logger

	// SkipImages disables PNG snapshots.
	SkipImages bool

	snapshots []string
}

// New prepares a run. out may be nil, in which case snapshots land in the
// working directory and no CSV is written.
func New(cfg *config.Config, out *telemetry.OutputManager, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		cfg:      cfg,
		world:    aggregate.NewWithConfig(cfg.Sim),
		out:      out,
		progress: core.NewFixedStep(cfg.Run.ProgressHz),
		log:      logger,
	}
}

// World exposes the simulated world.
func (r *Runner) World() *aggregate.World { return r.world }

// Series exposes the growth samples recorded so far.
func (r *Runner) Series() *telemetry.Series { return &r.series }

// Run executes the configured iterations. Cancelling ctx stops the run
// between iterations; the final snapshot is still written.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	rc := r.cfg.Run
	r.log.Info("run start",
		"width", r.cfg.Sim.Width,
		"height", r.cfg.Sim.Height,
		"roots", r.world.Space().Occupied(),
		"iterations", rc.Iterations,
		"pruning_every", r.cfg.Sim.Pruning.Every,
	)

	if err := r.snapshot("init"); err != nil {
		return Result{}, err
	}
	if err := r.sample(); err != nil {
		return Result{}, err
	}

	done := 0
	var runErr error
loop:
	for i := 1; i <= rc.Iterations; i++ {
		select {
		case <-ctx.Done():
			runErr = ctx.Err()
			break loop
		default:
		}

		if rc.SaveEvery > 0 && i%rc.SaveEvery == 0 {
			if err := r.snapshot(fmt.Sprintf("%05d", i)); err != nil {
				return Result{}, err
			}
		}

		tick, ok := r.world.Advance()
		if !ok {
			r.log.Warn("grid full, stopping early", "iteration", i)
			break
		}
		done = tick.Iteration
		if tick.PruneRan {
			r.log.Debug("prune", "iteration", tick.Iteration, "removed", tick.Pruned)
		}
		if rc.Verify {
			if err := r.world.Space().Validate(); err != nil {
				return Result{}, fmt.Errorf("iteration %d: %w", tick.Iteration, err)
			}
		}
		if every := r.cfg.Telemetry.Every; every > 0 && tick.Iteration%every == 0 {
			if err := r.sample(); err != nil {
				return Result{}, err
			}
		}
		if r.progress.ShouldStep() {
			r.log.Info("progress", "iteration", tick.Iteration, "of", rc.Iterations, "occupied", r.world.Space().Occupied())
		}
	}

	if err := r.snapshot("final"); err != nil {
		return Result{}, err
	}
	if last, ok := r.series.Last(); !ok || last.Iteration != r.world.Iteration() {
		if err := r.sample(); err != nil {
			return Result{}, err
		}
	}

	final, _ := r.series.Last()
	res := Result{
		Iterations: done,
		Final:      final,
		Snapshots:  r.snapshots,
		Elapsed:    time.Since(start),
	}
	r.log.Info("run done", "elapsed", res.Elapsed.Round(time.Millisecond), "stats", final)
	return res, runErr
}

func (r *Runner) sample() error {
	s := r.series.Append(telemetry.Sample(r.world.Space(), r.world.Iteration(), r.world.PrunedTotal()))
	return r.out.WriteGrowth(s)
}

func (r *Runner) snapshot(suffix string) error {
	if r.SkipImages {
		return nil
	}
	size := r.world.Size()
	img, err := render.PaletteImage(size.W, size.H, r.world.Cells(), r.world.Palette())
	if err != nil {
		return err
	}
	path := r.out.Path(fmt.Sprintf("%s_%s.png", r.cfg.Run.Basename, suffix))
	if err := render.WritePNG(path, img); err != nil {
		return err
	}
	r.snapshots = append(r.snapshots, path)
	r.log.Debug("snapshot", "path", path)
	return nil
}
