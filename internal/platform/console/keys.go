package console

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// mapKey translates a tcell key event to a game action.
// The second return value is true for quit keys.
func mapKey(ev *tcell.EventKey) (core.Action, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return core.ActionNone, true
	case tcell.KeyUp:
		return core.ActionUp, false
	case tcell.KeyDown:
		return core.ActionDown, false
	case tcell.KeyLeft:
		return core.ActionLeft, false
	case tcell.KeyRight:
		return core.ActionRight, false
	case tcell.KeyEnter:
		return core.ActionConfirm, false
	case tcell.KeyEscape:
		return core.ActionBack, false
	case tcell.KeyRune:
	default:
		return core.ActionNone, false
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return core.ActionNone, true
	case 'w', 'W', 'k':
		return core.ActionUp, false
	case 's', 'S', 'j':
		return core.ActionDown, false
	case 'a', 'A', 'h':
		return core.ActionLeft, false
	case 'd', 'D', 'l':
		return core.ActionRight, false
	case 'p', 'P', ' ':
		return core.ActionPause, false
	case 'r', 'R':
		return core.ActionRestart, false
	case 'b', 'B':
		return core.ActionBack, false
	}
	return core.ActionNone, false
}
