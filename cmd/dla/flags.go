package main

import (
	"flag"
	"log/slog"

	"dendrite/internal/config"
)

// options are command-line overrides applied on top of the YAML layers.
type options struct {
	ConfigPath string
	Preset     string
	Iterations int
	OutputDir  string
	Seed       int64
	Verify     bool
	NoImages   bool
	LogLevel   string
}

func (o *options) Bind(fs *flag.FlagSet) {
	fs.StringVar(&o.ConfigPath, "config", "", "YAML config file layered over defaults and preset")
	fs.StringVar(&o.Preset, "preset", "", "embedded preset: middle, inout, pruning, pruning_inout")
	fs.IntVar(&o.Iterations, "iterations", -1, "override run.iterations")
	fs.StringVar(&o.OutputDir, "out", "", "override run.output_dir")
	fs.Int64Var(&o.Seed, "seed", 0, "override sim.seed (0 keeps config)")
	fs.BoolVar(&o.Verify, "verify", false, "validate engine invariants after every iteration")
	fs.BoolVar(&o.NoImages, "no-png", false, "skip PNG snapshots")
	fs.StringVar(&o.LogLevel, "log-level", "info", "debug, info, warn or error")
}

func (o *options) apply(cfg *config.Config) {
	if o.Iterations >= 0 {
		cfg.Run.Iterations = o.Iterations
	}
	if o.OutputDir != "" {
		cfg.Run.OutputDir = o.OutputDir
	}
	if o.Seed != 0 {
		cfg.Sim.Seed = o.Seed
	}
	if o.Verify {
		cfg.Run.Verify = true
	}
}

func (o *options) level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(o.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
