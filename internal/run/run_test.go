package run

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dendrite/internal/config"
	"dendrite/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("pruning", "")
	require.NoError(t, err)
	cfg.Sim.Width = 48
	cfg.Sim.Height = 32
	cfg.Run.Iterations = 120
	cfg.Run.SaveEvery = 50
	cfg.Run.Basename = "t"
	cfg.Run.Verify = true
	cfg.Telemetry.Every = 40
	return cfg
}

func TestRunWritesSnapshotsAndGrowth(t *testing.T) {
	cfg := testConfig(t)
	dir := t.TempDir()
	out, err := telemetry.NewOutputManager(dir, true)
	require.NoError(t, err)

	r := New(cfg, out, quietLogger())
	res, err := r.Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, out.Close())

	assert.Equal(t, 120, res.Iterations)
	assert.Equal(t, 120, res.Final.Iteration)
	assert.Equal(t, []string{
		filepath.Join(dir, "t_init.png"),
		filepath.Join(dir, "t_00050.png"),
		filepath.Join(dir, "t_00100.png"),
		filepath.Join(dir, "t_final.png"),
	}, res.Snapshots)
	for _, p := range res.Snapshots {
		_, err := os.Stat(p)
		assert.NoError(t, err)
	}

	// samples at 0, 40, 80, 120
	assert.Len(t, r.Series().Samples(), 4)
	data, err := os.ReadFile(filepath.Join(dir, "growth.csv"))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 5)

	assert.Equal(t, 1+120-res.Final.PrunedTotal, res.Final.Occupied)
	assert.Positive(t, res.Final.PrunedTotal)
}

func TestRunIsDeterministic(t *testing.T) {
	run := func() []uint8 {
		cfg := testConfig(t)
		r := New(cfg, nil, quietLogger())
		r.SkipImages = true
		_, err := r.Run(context.Background())
		require.NoError(t, err)
		return r.World().Cells()
	}
	assert.Equal(t, run(), run())
}

func TestRunStopsOnFullGrid(t *testing.T) {
	cfg := testConfig(t)
	cfg.Sim.Width, cfg.Sim.Height = 3, 3
	cfg.Sim.Pruning.Every = 0
	r := New(cfg, nil, quietLogger())
	r.SkipImages = true
	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, res.Iterations)
	assert.Equal(t, 9, res.Final.Occupied)
}

func TestRunHonoursCancellation(t *testing.T) {
	cfg := testConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := New(cfg, nil, quietLogger())
	r.SkipImages = true
	res, err := r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Iterations)
}
