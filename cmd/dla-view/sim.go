package main

import (
	"fmt"
	"maps"
	"strings"

	"dendrite/internal/app"
	"dendrite/internal/config"
	"dendrite/internal/core"
	_ "dendrite/internal/sims/aggregate"
)

// buildSim resolves the preset and config file, layers the -set overrides on
// top and constructs the named sim through the registry.
func buildSim(cfg *app.Config) (core.Sim, error) {
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(core.Names(), ", "))
	}
	loaded, err := config.Load(cfg.Preset, cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	params := loaded.Sim.ToMap()
	maps.Copy(params, cfg.Set)

	sim := factory(params)
	if cfg.Seed != 0 {
		sim.Reset(cfg.Seed)
	}
	return sim, nil
}
