// Package config loads run configuration from YAML, layered over embedded
// defaults and optional named presets.
package config

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path"
	"slices"
	"strings"

	"dendrite/internal/sims/aggregate"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

//go:embed presets/*.yaml
var presets embed.FS

// Config holds everything a headless run needs.
type Config struct {
	Sim       aggregate.Config `yaml:"sim"`
	Run       RunConfig        `yaml:"run"`
	Telemetry TelemetryConfig  `yaml:"telemetry"`
}

// RunConfig controls the iteration loop and its outputs.
type RunConfig struct {
	Iterations int    `yaml:"iterations"`
	SaveEvery  int    `yaml:"save_every"` // 0 = only init/final snapshots
	Basename   string `yaml:"basename"`
	OutputDir  string `yaml:"output_dir"`
	Verify     bool   `yaml:"verify"`      // validate engine invariants after every iteration
	ProgressHz int    `yaml:"progress_hz"` // progress log lines per second
}

// TelemetryConfig controls growth sampling.
type TelemetryConfig struct {
	Every int  `yaml:"every"` // iterations between samples, 0 = final only
	CSV   bool `yaml:"csv"`
}

// Presets lists the embedded preset names.
func Presets() []string {
	entries, err := presets.ReadDir("presets")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	slices.Sort(names)
	return names
}

// Load builds a Config from the embedded defaults, then the named preset (if
// any), then the YAML file at path (if any). Later layers only overwrite the
// fields they set.
func Load(preset, path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if preset != "" {
		data, err := presets.ReadFile(presetPath(preset))
		if err != nil {
			return nil, fmt.Errorf("unknown preset %q (have %s)", preset, strings.Join(Presets(), ", "))
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing preset %q: %w", preset, err)
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func presetPath(name string) string {
	return path.Join("presets", name+".yaml")
}

// Validate rejects configurations the engine cannot run.
func (c *Config) Validate() error {
	var errs []error
	if c.Sim.Width <= 0 || c.Sim.Height <= 0 {
		errs = append(errs, fmt.Errorf("sim: grid size %dx%d must be positive", c.Sim.Width, c.Sim.Height))
	}
	if _, err := aggregate.ParseLayout(string(c.Sim.Layout)); err != nil {
		errs = append(errs, fmt.Errorf("sim: %w", err))
	}
	if p := c.Sim.Pruning.Probability; p < 0 || p > 1 {
		errs = append(errs, fmt.Errorf("sim.pruning: probability %v outside [0,1]", p))
	}
	if c.Sim.Pruning.Every < 0 || c.Sim.Pruning.Age < 0 {
		errs = append(errs, errors.New("sim.pruning: every and age must not be negative"))
	}
	if c.Sim.ColorsStep <= 0 {
		errs = append(errs, fmt.Errorf("sim: colors_step %d must be positive", c.Sim.ColorsStep))
	}
	for _, h := range c.Sim.Palette {
		if _, err := aggregate.ParseHexColor(h); err != nil {
			errs = append(errs, fmt.Errorf("sim.palette: %w", err))
		}
	}
	if c.Run.Iterations < 0 || c.Run.SaveEvery < 0 {
		errs = append(errs, errors.New("run: iterations and save_every must not be negative"))
	}
	if c.Run.Basename == "" {
		errs = append(errs, errors.New("run: basename is required"))
	}
	if c.Telemetry.Every < 0 {
		errs = append(errs, errors.New("telemetry: every must not be negative"))
	}
	return errors.Join(errs...)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
