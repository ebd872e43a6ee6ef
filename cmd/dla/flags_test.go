package main

import (
	"flag"
	"log/slog"
	"testing"

	"dendrite/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsApply(t *testing.T) {
	var opts options
	fs := flag.NewFlagSet("dla", flag.ContinueOnError)
	opts.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-iterations", "0", "-out", "runs/a", "-seed", "5", "-verify", "-log-level", "debug"}))

	cfg, err := config.Load("", "")
	require.NoError(t, err)
	opts.apply(cfg)

	assert.Equal(t, 0, cfg.Run.Iterations)
	assert.Equal(t, "runs/a", cfg.Run.OutputDir)
	assert.Equal(t, int64(5), cfg.Sim.Seed)
	assert.True(t, cfg.Run.Verify)
	assert.Equal(t, slog.LevelDebug, opts.level())
}

func TestOptionsDefaultsKeepConfig(t *testing.T) {
	var opts options
	fs := flag.NewFlagSet("dla", flag.ContinueOnError)
	opts.Bind(fs)
	require.NoError(t, fs.Parse(nil))

	cfg, err := config.Load("inout", "")
	require.NoError(t, err)
	want := *cfg
	opts.apply(cfg)
	assert.Equal(t, want, *cfg)

	opts.LogLevel = "loud"
	assert.Equal(t, slog.LevelInfo, opts.level())
}
