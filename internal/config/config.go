// Package config provides YAML-based game configuration loading and
// difficulty management for the snake game.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// GlyphWidth measures board glyphs. Ambiguous-width runes such as block
// elements count as one column whatever the locale.
var GlyphWidth = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// Score storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Glyphs     GlyphConfig      `yaml:"glyphs"`
	Scores     ScoresConfig     `yaml:"scores"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the playing field size, border walls included.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GameplayConfig defines scoring and pacing.
type GameplayConfig struct {
	FoodPoints        int `yaml:"food_points"`
	MoveEveryTicks    int `yaml:"move_every_ticks"`
	MinMoveEveryTicks int `yaml:"min_move_every_ticks"`
}

// GlyphConfig defines the two-column symbols drawn for each cell occupant.
type GlyphConfig struct {
	Empty string `yaml:"empty"`
	Wall  string `yaml:"wall"`
	Snake string `yaml:"snake"`
	Food  string `yaml:"food"`
}

// ScoresConfig selects where the score table is persisted.
type ScoresConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// DifficultyConfig defines how the timed mode speeds up.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) error {
	switch preset {
	case "":
		return nil
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	default:
		return fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", preset)
	}
	return nil
}

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	var errs []error

	// The border takes two cells per axis; the interior needs room for
	// the snake and one food item.
	if c.Grid.Width < 5 || c.Grid.Height < 5 {
		errs = append(errs, fmt.Errorf("grid must be at least 5x5, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Gameplay.FoodPoints < 0 {
		errs = append(errs, fmt.Errorf("food_points must not be negative, got %d", c.Gameplay.FoodPoints))
	}
	if c.Gameplay.MoveEveryTicks < 1 {
		errs = append(errs, fmt.Errorf("move_every_ticks must be at least 1, got %d", c.Gameplay.MoveEveryTicks))
	}
	if c.Gameplay.MinMoveEveryTicks < 1 || c.Gameplay.MinMoveEveryTicks > c.Gameplay.MoveEveryTicks {
		errs = append(errs, fmt.Errorf("min_move_every_ticks must be within [1, %d], got %d",
			c.Gameplay.MoveEveryTicks, c.Gameplay.MinMoveEveryTicks))
	}

	glyphs := map[string]string{
		"empty": c.Glyphs.Empty,
		"wall":  c.Glyphs.Wall,
		"snake": c.Glyphs.Snake,
		"food":  c.Glyphs.Food,
	}
	for name, g := range glyphs {
		if !isCellGlyph(g) {
			errs = append(errs, fmt.Errorf("glyph %s must be two single-width characters, got %q", name, g))
		}
	}

	switch c.Scores.Backend {
	case BackendFile, BackendSQLite:
	default:
		errs = append(errs, fmt.Errorf("scores backend must be %q or %q, got %q", BackendFile, BackendSQLite, c.Scores.Backend))
	}
	if c.Scores.Path == "" {
		errs = append(errs, errors.New("scores path must not be empty"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid snake config: %w", errors.Join(errs...))
	}
	return nil
}

// isCellGlyph reports whether g occupies exactly one two-column grid cell
// with one rune per terminal column.
func isCellGlyph(g string) bool {
	if utf8.RuneCountInString(g) != 2 {
		return false
	}
	for _, r := range g {
		if GlyphWidth.RuneWidth(r) != 1 {
			return false
		}
	}
	return true
}
