package config

import "math"

// DifficultyManager calculates dynamic game parameters from progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) from the number of
// cleared levels or elapsed ticks, depending on the progression type.
func (d *DifficultyManager) Level(cleared int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "levels":
		progress = float64(cleared) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Degree picks a polynomial degree in [minDegree, maxDegree] for the current difficulty.
func (d *DifficultyManager) Degree(minDegree, maxDegree, cleared, ticks int) int {
	if maxDegree <= minDegree {
		return minDegree
	}
	level := d.Level(cleared, ticks)
	return minDegree + int(math.Round(level*float64(maxDegree-minDegree)))
}

// TimeScale returns the multiplier applied to level time budgets.
func (d *DifficultyManager) TimeScale() float64 {
	if !(d.cfg.Scaling.TimeScale > 0) {
		return 1.0
	}
	return d.cfg.Scaling.TimeScale
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
