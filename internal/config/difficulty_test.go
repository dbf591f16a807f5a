package config

import "testing"

func TestDifficultyLevelByScore(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.0},
		{50, 0.5},
		{100, 1.0},
		{500, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got != tc.expected {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	})
	if d.IsEnabled() {
		t.Error("manager should be disabled")
	}
	if got := d.Level(1000, 1000); got != 0.3 {
		t.Errorf("disabled Level() = %v, expected initial level 0.3", got)
	}
}

func TestMoveInterval(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 10},
	})

	if got := d.MoveInterval(8, 3, 0, 0); got != 8 {
		t.Errorf("MoveInterval at start = %d, expected 8", got)
	}
	if got := d.MoveInterval(8, 3, 0, 10); got != 3 {
		t.Errorf("MoveInterval at max = %d, expected 3", got)
	}
	if got := d.MoveInterval(8, 3, 0, 5); got < 3 || got > 8 {
		t.Errorf("MoveInterval midway = %d, expected within [3, 8]", got)
	}
	if got := d.MoveInterval(2, 5, 0, 10); got != 2 {
		t.Errorf("fastest above slowest should clamp, got %d", got)
	}
}
