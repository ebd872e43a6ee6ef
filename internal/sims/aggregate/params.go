package aggregate

import (
	"math"
	"strconv"

	"dendrite/internal/core"
)

// Parameters reports the current configuration and aggregate counters.
func (w *World) Parameters() core.ParameterSnapshot {
	stats := w.space.Stats()
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
				intParam("walks", "Walks per step", w.cfg.WalksPerStep),
			},
		},
		{
			Name: "Pruning",
			Params: []core.Parameter{
				floatParam("prune_probability", "Prune probability", w.cfg.Pruning.Probability),
				intParam("prune_every", "Prune every", w.cfg.Pruning.Every),
				intParam("prune_age", "Prune age", w.cfg.Pruning.Age),
			},
		},
		{
			Name: "Display",
			Params: []core.Parameter{
				intParam("colors_step", "Colors step", w.cfg.ColorsStep),
			},
		},
		{
			Name:    "Aggregate",
			Summary: "read-only counters",
			Params: []core.Parameter{
				intParam("iteration", "Iteration", w.iteration),
				intParam("occupied", "Occupied", stats.Occupied),
				intParam("leaves", "Leaves", stats.Leaves),
				intParam("pruned", "Pruned", w.prunedTotal),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable parameters.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "walks", Label: "Walks/step", Type: core.ParamTypeInt, Step: 10, Min: 1, HasMin: true},
		{Key: "prune_probability", Label: "Prune prob", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "prune_every", Label: "Prune every", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: "prune_age", Label: "Prune age", Type: core.ParamTypeInt, Step: 5, Min: 0, HasMin: true},
		{Key: "colors_step", Label: "Colors step", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true},
	}
}

// SetIntParameter updates an integer control. It reports false for unknown
// keys or out-of-range values.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "walks":
		if value < 1 {
			return false
		}
		w.cfg.WalksPerStep = value
	case "prune_every":
		if value < 0 {
			return false
		}
		w.cfg.Pruning.Every = value
	case "prune_age":
		if value < 0 {
			return false
		}
		w.cfg.Pruning.Age = value
	case "colors_step":
		if value < 1 {
			return false
		}
		w.cfg.ColorsStep = value
		w.rebuildDisplay()
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a float control, clamping probabilities to [0,1].
func (w *World) SetFloatParameter(key string, value float64) bool {
	if math.IsNaN(value) {
		return false
	}
	switch key {
	case "prune_probability":
		w.cfg.Pruning.Probability = math.Min(1, math.Max(0, value))
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
