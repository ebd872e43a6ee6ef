package app

import (
	"flag"
	"fmt"
	"strings"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim        string
	Preset     string
	ConfigPath string
	Scale      int
	TPS        int
	Seed       int64
	HUDWidth   int

	// Set holds key=value overrides passed to the sim factory.
	Set map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "dla", Preset: "middle", Scale: 2, TPS: 60, HUDWidth: 220, Set: map[string]string{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Preset, "preset", c.Preset, "built-in preset")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML config layered over the preset")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 keeps the configured seed)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel in pixels (0 hides it)")
	fs.Var(setFlag(c.Set), "set", "sim parameter override as key=value (repeatable)")
}

type setFlag map[string]string

func (s setFlag) String() string {
	pairs := make([]string, 0, len(s))
	for k, v := range s {
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, ",")
}

func (s setFlag) Set(value string) error {
	k, v, ok := strings.Cut(value, "=")
	if !ok || strings.TrimSpace(k) == "" {
		return fmt.Errorf("want key=value, got %q", value)
	}
	s[strings.TrimSpace(k)] = strings.TrimSpace(v)
	return nil
}
