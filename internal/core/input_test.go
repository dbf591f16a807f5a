package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("New frame should be empty")
	}

	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Has(ActionPause) should be true after Set")
	}
	if f.Has(ActionUp) {
		t.Error("Has(ActionUp) should be false")
	}
	if f.First != ActionNone {
		t.Errorf("First should ignore non-directional actions, got %v", f.First)
	}
}

func TestInputFrameFirstDirection(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionDown)
	f.Set(ActionLeft)

	if f.First != ActionDown {
		t.Errorf("First = %v, expected Down", f.First)
	}

	f.Clear()
	if !f.Empty() || f.First != ActionNone {
		t.Error("Clear should reset actions and first direction")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionRight) || c.First != ActionRight {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionUp:    "Up",
		ActionLeft:  "Left",
		ActionQuit:  "Quit",
		Action(999): "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}
