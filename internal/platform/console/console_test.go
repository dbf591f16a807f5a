package console

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/session"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func newTestRunner(t *testing.T, store storage.Store) (*Runner, *snake.Game, tcell.SimulationScreen) {
	t.Helper()
	screen := newSimScreen(t, 80, 30)
	game := snake.NewWithConfig(snake.ModeClassic, config.DefaultSnakeConfig())
	cfg := core.RuntimeConfig{TickRate: 60, Seed: 1}
	r := NewRunner(screen, game, session.NewRecorder(store, nil), nil, cfg)
	return r, game, screen
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(ch rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone)
}

func screenRow(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := s.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

func screenText(s tcell.SimulationScreen) string {
	_, h := s.Size()
	rows := make([]string, h)
	for y := range h {
		rows[y] = screenRow(s, y)
	}
	return strings.Join(rows, "\n")
}

// playUntilOver steers up until the snake hits the top wall.
func playUntilOver(t *testing.T, r *Runner) {
	t.Helper()
	for i := 0; i < 40 && r.phase == phasePlaying; i++ {
		r.HandleEvent(key(tcell.KeyUp))
		r.Tick()
	}
	if r.phase == phasePlaying {
		t.Fatal("Round did not end")
	}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want core.Action
		quit bool
	}{
		{key(tcell.KeyUp), core.ActionUp, false},
		{key(tcell.KeyLeft), core.ActionLeft, false},
		{runeKey('d'), core.ActionRight, false},
		{runeKey('j'), core.ActionDown, false},
		{runeKey('p'), core.ActionPause, false},
		{key(tcell.KeyEnter), core.ActionConfirm, false},
		{key(tcell.KeyEscape), core.ActionBack, false},
		{runeKey('q'), core.ActionNone, true},
		{key(tcell.KeyCtrlC), core.ActionNone, true},
		{runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		got, quit := mapKey(tt.ev)
		if got != tt.want || quit != tt.quit {
			t.Errorf("mapKey(%v) = %v, %v; expected %v, %v", tt.ev.Name(), got, quit, tt.want, tt.quit)
		}
	}
}

func TestRunnerDraw(t *testing.T) {
	r, game, screen := newTestRunner(t, nil)
	r.Draw()

	if !strings.Contains(screenRow(screen, 0), "Score: 0") {
		t.Errorf("HUD row = %q", screenRow(screen, 0))
	}

	head := game.Snake().Head()
	buf := core.NewScreen(80, 30)
	game.Render(buf)
	for y := range 30 {
		if got, want := screenRow(screen, y), buf.Row(y); got != want {
			t.Fatalf("row %d = %q, expected %q (head %v)", y, got, want, head)
		}
	}
}

func TestBlitEastAsianLocale(t *testing.T) {
	prev := runewidth.DefaultCondition.EastAsianWidth
	runewidth.DefaultCondition.EastAsianWidth = true
	t.Cleanup(func() { runewidth.DefaultCondition.EastAsianWidth = prev })

	screen := newSimScreen(t, 6, 1)
	buf := core.NewScreen(6, 1)
	buf.DrawText(0, 0, "██▒▒██")
	Blit(screen, buf)

	if got := screenRow(screen, 0); got != "██▒▒██" {
		t.Errorf("row = %q, expected every column drawn", got)
	}
}

func TestRunnerQueuesTurns(t *testing.T) {
	r, game, _ := newTestRunner(t, nil)
	start := game.Snake().Head()

	r.HandleEvent(key(tcell.KeyDown))
	r.HandleEvent(runeKey('s'))
	r.Tick()
	r.Tick()
	r.Tick()

	if got := game.Snake().Head(); got != start.Add(core.Pt(0, 2)) {
		t.Errorf("Head = %v, expected two cells below %v", got, start)
	}
}

func TestRunnerSavesName(t *testing.T) {
	store, err := storage.OpenFile(filepath.Join(t.TempDir(), "scores.json"))
	if err != nil {
		t.Fatal(err)
	}
	r, _, screen := newTestRunner(t, store)

	playUntilOver(t, r)
	if r.phase != phaseNaming {
		t.Fatalf("phase = %d, expected name prompt", r.phase)
	}

	r.Draw()
	if !strings.Contains(screenText(screen), "Enter your name:") {
		t.Error("Name prompt not drawn")
	}

	for _, ch := range "zoe" {
		r.HandleEvent(runeKey(ch))
	}
	r.HandleEvent(key(tcell.KeyBackspace2))
	r.HandleEvent(runeKey('y'))
	r.HandleEvent(key(tcell.KeyEnter))

	if r.phase != phaseSaved || r.savedAs != "zoy" {
		t.Fatalf("phase = %d, savedAs = %q", r.phase, r.savedAs)
	}
	records, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Player != "zoy" || records[0].Mode != "Classic" {
		t.Errorf("records = %+v", records)
	}

	r.HandleEvent(runeKey('r'))
	if r.phase != phasePlaying || r.result != nil {
		t.Error("Restart did not begin a new round")
	}
}

func TestRunnerWithoutStore(t *testing.T) {
	r, _, _ := newTestRunner(t, nil)
	playUntilOver(t, r)
	if r.phase != phaseSaved {
		t.Fatalf("phase = %d, expected summary", r.phase)
	}

	r.HandleEvent(key(tcell.KeyEnter))
	if !r.Back() || !r.Done() {
		t.Error("Enter should return to the menu")
	}
}

func TestRunnerResize(t *testing.T) {
	r, game, screen := newTestRunner(t, nil)
	r.HandleEvent(key(tcell.KeyDown))
	r.Tick()
	head := game.Snake().Head()

	screen.SetSize(100, 40)
	r.HandleEvent(tcell.NewEventResize(100, 40))
	if game.Snake().Head() != head {
		t.Error("Resize reset the round")
	}
	if r.buf.Width() != 100 || r.buf.Height() != 40 {
		t.Errorf("buffer = %dx%d", r.buf.Width(), r.buf.Height())
	}
}

func TestRunnerKeepsTurnsWhileTooSmall(t *testing.T) {
	r, game, screen := newTestRunner(t, nil)
	start := game.Snake().Head()

	screen.SetSize(10, 5)
	r.HandleEvent(tcell.NewEventResize(10, 5))
	r.HandleEvent(key(tcell.KeyDown))
	r.Tick()
	r.Tick()
	if len(r.pending) != 1 {
		t.Fatalf("pending = %v, expected the turn to stay queued", r.pending)
	}

	screen.SetSize(80, 30)
	r.HandleEvent(tcell.NewEventResize(80, 30))
	r.Tick()
	if got := game.Snake().Head(); got != start.Add(core.Pt(0, 1)) {
		t.Errorf("Head = %v, expected one cell below %v", got, start)
	}
}

func TestRunnerQuit(t *testing.T) {
	r, _, _ := newTestRunner(t, nil)
	r.HandleEvent(runeKey('q'))
	if !r.Done() || r.Back() {
		t.Error("q should quit without going back")
	}
}
