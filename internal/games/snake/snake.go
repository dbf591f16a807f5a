package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Directions lists every heading, for iteration in tests and key maps.
var Directions = [...]Direction{DirRight, DirDown, DirLeft, DirUp}

// Delta returns the unit step for the direction.
// Y grows downward, matching terminal rows.
func (d Direction) Delta() core.Point {
	switch d {
	case DirUp:
		return core.Pt(0, -1)
	case DirDown:
		return core.Pt(0, 1)
	case DirLeft:
		return core.Pt(-1, 0)
	case DirRight:
		return core.Pt(1, 0)
	default:
		return core.Pt(0, 0)
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// directionFor maps a directional action to a heading.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return DirRight, false
	}
}

// Snake is the ordered body of the snake, head at index 0.
// The body is never empty.
type Snake struct {
	body    []core.Point
	heading Direction
}

// NewSnake creates a one-segment snake at start, heading right.
func NewSnake(start core.Point) *Snake {
	return &Snake{
		body:    []core.Point{start},
		heading: DirRight,
	}
}

// Head returns the first body segment.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Tail returns the last body segment.
func (s *Snake) Tail() core.Point {
	return s.body[len(s.body)-1]
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []core.Point {
	out := make([]core.Point, len(s.body))
	copy(out, s.body)
	return out
}

// Heading returns the current direction of travel.
func (s *Snake) Heading() Direction {
	return s.heading
}

// SetHeading changes the direction of travel unconditionally.
// Reversal rules are the controller's concern.
func (s *Snake) SetHeading(d Direction) {
	s.heading = d
}

// Move prepends a new head one step along the heading.
// The tail is left in place; the caller trims it.
func (s *Snake) Move() {
	next := s.Head().Add(s.heading.Delta())
	s.body = append(s.body, core.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = next
}

// Grow appends a duplicate of the tail, so the next RemoveTail leaves
// the old tail in place.
func (s *Snake) Grow() {
	s.body = append(s.body, s.Tail())
}

// RemoveTail drops the last segment.
func (s *Snake) RemoveTail() {
	s.body = s.body[:len(s.body)-1]
}

// CheckSelfCollision reports whether the head shares a cell with any other segment.
func (s *Snake) CheckSelfCollision() bool {
	head := s.body[0]
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment is at p.
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}
