package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: Opposite is not an involution", d)
		}
		if d.Delta().Add(d.Opposite().Delta()) != core.Pt(0, 0) {
			t.Errorf("%v: deltas of opposite headings do not cancel", d)
		}
	}
}

func TestSnakeMoveAndTrim(t *testing.T) {
	s := NewSnake(core.Pt(5, 5))

	s.Move()
	if s.Len() != 2 {
		t.Fatalf("Len after Move = %d, expected 2", s.Len())
	}
	if s.Head() != core.Pt(6, 5) || s.Tail() != core.Pt(5, 5) {
		t.Errorf("Body = %v", s.Body())
	}

	s.RemoveTail()
	if s.Len() != 1 || s.Head() != core.Pt(6, 5) {
		t.Errorf("Body after RemoveTail = %v", s.Body())
	}
}

func TestSnakeGrowKeepsTail(t *testing.T) {
	s := NewSnake(core.Pt(5, 5))
	s.Move()
	s.Grow()
	s.RemoveTail()

	body := s.Body()
	if len(body) != 2 || body[0] != core.Pt(6, 5) || body[1] != core.Pt(5, 5) {
		t.Errorf("Body = %v, expected [(6,5) (5,5)]", body)
	}
}

func TestSnakeSelfCollision(t *testing.T) {
	s := &Snake{body: []core.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}}}
	if s.CheckSelfCollision() {
		t.Error("Straight snake should not collide")
	}

	s.body[0] = core.Pt(3, 1)
	if !s.CheckSelfCollision() {
		t.Error("Head on a body segment should collide")
	}
}

func TestSnakeBodyIsCopy(t *testing.T) {
	s := NewSnake(core.Pt(1, 1))
	body := s.Body()
	body[0] = core.Pt(9, 9)
	if s.Head() != core.Pt(1, 1) {
		t.Error("Body() should not alias the snake")
	}
}
