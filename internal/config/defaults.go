package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
// Mirrors defaults/snake.yaml; used when the embedded file cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  25,
			Height: 25,
		},
		Gameplay: GameplayConfig{
			FoodPoints:        10,
			MoveEveryTicks:    8,
			MinMoveEveryTicks: 3,
		},
		Glyphs: GlyphConfig{
			Empty: "  ",
			Wall:  "██",
			Snake: "░░",
			Food:  "▒▒",
		},
		Scores: ScoresConfig{
			Backend: BackendFile,
			Path:    "~/.arcade/snake/scores.json",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 300,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
