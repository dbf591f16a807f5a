package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// noFood marks the absence of food when the interior is full.
var noFood = core.Pt(-1, -1)

// Spawner places food at uniformly random free cells of an area.
type Spawner struct {
	rng  *rand.Rand
	area core.Rect
}

// NewSpawner creates a spawner sampling inside area.
// Pass a seeded rng for reproducible placement.
func NewSpawner(rng *rand.Rand, area core.Rect) *Spawner {
	return &Spawner{rng: rng, area: area}
}

// Spawn samples cells until one is not blocked.
// Returns false when every cell of the area is blocked.
func (s *Spawner) Spawn(blocked func(core.Point) bool) (core.Point, bool) {
	if s.area.Area() == 0 || s.full(blocked) {
		return noFood, false
	}
	for {
		p := core.Pt(
			s.area.X+s.rng.Intn(s.area.W),
			s.area.Y+s.rng.Intn(s.area.H),
		)
		if !blocked(p) {
			return p, true
		}
	}
}

// full reports whether no cell of the area is free.
// Rejection sampling would otherwise spin forever on a packed grid.
func (s *Spawner) full(blocked func(core.Point) bool) bool {
	for y := s.area.Y; y < s.area.Bottom(); y++ {
		for x := s.area.X; x < s.area.Right(); x++ {
			if !blocked(core.Pt(x, y)) {
				return false
			}
		}
	}
	return true
}
