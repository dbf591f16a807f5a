package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Outcome is the result of one tick of the controller.
type Outcome int

const (
	OutcomeNone     Outcome = iota // No input, nothing happened
	OutcomeRejected                // Reversal or round already over; no move
	OutcomeContinue                // Normal move
	OutcomeAteFood                 // Moved onto food and grew
	OutcomeHitWall                 // Moved onto a wall, round over
	OutcomeHitSelf                 // Moved onto own body, round over
)

// Fatal reports whether the outcome ends the round.
func (o Outcome) Fatal() bool {
	return o == OutcomeHitWall || o == OutcomeHitSelf
}

// Moved reports whether the snake advanced.
func (o Outcome) Moved() bool {
	return o == OutcomeContinue || o == OutcomeAteFood || o.Fatal()
}

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeRejected:
		return "rejected"
	case OutcomeContinue:
		return "continue"
	case OutcomeAteFood:
		return "ate_food"
	case OutcomeHitWall:
		return "hit_wall"
	case OutcomeHitSelf:
		return "hit_self"
	default:
		return "unknown"
	}
}

// collides reports whether an entity at pos is hit by a head at head.
// Walls and food share this check.
func collides(pos, head core.Point) bool {
	return pos == head
}

// Walls is the immutable border of the playing field.
type Walls struct {
	bounds core.Rect
	list   []core.Point
	set    map[core.Point]struct{}
}

// NewBorderWalls builds the wall ring around a width x height grid.
func NewBorderWalls(width, height int) *Walls {
	w := &Walls{
		bounds: core.NewRect(0, 0, width, height),
		set:    make(map[core.Point]struct{}, 2*(width+height)),
	}
	add := func(p core.Point) {
		if _, ok := w.set[p]; ok {
			return
		}
		w.set[p] = struct{}{}
		w.list = append(w.list, p)
	}
	for x := 0; x < width; x++ {
		add(core.Pt(x, 0))
		add(core.Pt(x, height-1))
	}
	for y := 0; y < height; y++ {
		add(core.Pt(0, y))
		add(core.Pt(width-1, y))
	}
	return w
}

// Has reports whether p is a wall cell.
func (w *Walls) Has(p core.Point) bool {
	_, ok := w.set[p]
	return ok
}

// Hit reports whether a head at p lands on a wall.
// Cells outside the grid count as wall.
func (w *Walls) Hit(head core.Point) bool {
	return !w.bounds.Contains(head) || w.Has(head)
}

// List returns the wall positions.
func (w *Walls) List() []core.Point {
	return w.list
}

// Interior returns the open area inside the border.
func (w *Walls) Interior() core.Rect {
	return w.bounds.Inset(1)
}
