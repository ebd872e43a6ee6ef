package app

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{
		"-preset", "inout", "-scale", "3", "-seed", "7",
		"-set", "prune_every=10", "-set", " walks = 5 ",
	}))
	assert.Equal(t, "inout", cfg.Preset)
	assert.Equal(t, 3, cfg.Scale)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, map[string]string{"prune_every": "10", "walks": "5"}, cfg.Set)
	assert.Equal(t, "dla", cfg.Sim)
}

func TestSetFlagRejectsMissingKey(t *testing.T) {
	s := setFlag{}
	assert.Error(t, s.Set("novalue"))
	assert.Error(t, s.Set("=3"))
	assert.Empty(t, s)
}
