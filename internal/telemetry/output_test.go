package telemetry

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dendrite/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("", true)
	require.NoError(t, err)
	assert.Nil(t, om)
	assert.NoError(t, om.WriteGrowth(GrowthStats{}))
	assert.NoError(t, om.WriteConfig(nil))
	assert.NoError(t, om.Close())
	assert.Equal(t, "x.png", om.Path("x.png"))
}

func TestOutputManagerWritesGrowthOnceWithHeader(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir, true)
	require.NoError(t, err)

	require.NoError(t, om.WriteGrowth(GrowthStats{Iteration: 1, Occupied: 2}))
	require.NoError(t, om.WriteGrowth(GrowthStats{Iteration: 2, Occupied: 3}))

	cfg, err := config.Load("", "")
	require.NoError(t, err)
	require.NoError(t, om.WriteConfig(cfg))
	require.NoError(t, om.Close())

	data, err := os.ReadFile(filepath.Join(dir, "growth.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "iteration,occupied,roots,leaves"))
	assert.True(t, strings.HasPrefix(lines[2], "2,3,"))

	_, err = os.Stat(filepath.Join(dir, "config.yaml"))
	assert.NoError(t, err)
}

func TestSweepRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.csv")
	in := []SweepResult{
		{Probability: 0.5, Every: 10, Age: 40, Iterations: 100, Occupied: 80, FractalDim: 1.7},
		{Probability: 0.25, Every: 20, Age: 80, Iterations: 100, Occupied: 95},
	}
	require.NoError(t, WriteSweep(path, in))
	out, err := ReadSweep(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
