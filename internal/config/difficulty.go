package config

import "math"

// DifficultyManager calculates the timed mode's move interval based on score/time.
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

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// MoveInterval returns ticks between moves, shrinking from slowest to
// fastest as the level rises.
func (d *DifficultyManager) MoveInterval(slowest, fastest, score, ticks int) int {
	if fastest > slowest {
		fastest = slowest
	}
	level := d.Level(score, ticks)
	interval := slowest - int(math.Round(level*float64(slowest-fastest)))
	if interval < fastest {
		interval = fastest
	}
	return max(1, interval)
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
