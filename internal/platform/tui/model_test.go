package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/session"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func newTestModel(t *testing.T, store storage.Store) (Model, *snake.Game) {
	t.Helper()
	game := snake.NewWithConfig(snake.ModeClassic, config.DefaultSnakeConfig())
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 1}
	m := NewModel(game, session.NewRecorder(store, nil), nil, cfg)
	m.Init()
	return m, game
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

// playUntilOver steers up until the snake hits the top wall.
func playUntilOver(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < 40 && m.phase == phasePlaying; i++ {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
		m = update(t, m, TickMsg{})
	}
	if m.phase == phasePlaying {
		t.Fatal("Round did not end")
	}
	return m
}

func TestModelQueuesTurns(t *testing.T) {
	m, game := newTestModel(t, nil)
	start := game.Snake().Head()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if game.Snake().Head() != start {
		t.Fatal("Snake moved before a tick")
	}

	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})
	if got := game.Snake().Head(); got != start.Add(core.Pt(0, 2)) {
		t.Errorf("Head = %v, expected two cells below %v", got, start)
	}
}

func TestModelSavesScoreAfterName(t *testing.T) {
	store, err := storage.OpenFile(filepath.Join(t.TempDir(), "scores.json"))
	if err != nil {
		t.Fatal(err)
	}
	m, _ := newTestModel(t, store)
	firstRound := m.recorder.RoundID()

	m = playUntilOver(t, m)
	if m.phase != phaseNaming {
		t.Fatalf("phase = %d, expected name prompt", m.phase)
	}
	if !strings.Contains(m.View(), "Enter your name") {
		t.Error("Name prompt not shown")
	}

	// q is text here, not quit.
	for _, r := range "qa" {
		m = update(t, m, runeKey(r))
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.phase != phaseSaved {
		t.Fatalf("phase = %d, expected saved", m.phase)
	}
	if m.savedAs != "qa" || m.saveErr != nil {
		t.Errorf("savedAs = %q, err = %v", m.savedAs, m.saveErr)
	}

	records, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(records) != 1 || records[0].Player != "qa" || records[0].Mode != "Classic" {
		t.Errorf("records = %v", records)
	}

	m = update(t, m, runeKey('r'))
	if m.phase != phasePlaying {
		t.Errorf("phase = %d after restart, expected playing", m.phase)
	}
	if m.recorder.RoundID() == firstRound {
		t.Error("Restart should begin a new round")
	}
}

func TestModelSkipName(t *testing.T) {
	store, err := storage.OpenFile(filepath.Join(t.TempDir(), "scores.json"))
	if err != nil {
		t.Fatal(err)
	}
	m, _ := newTestModel(t, store)

	m = playUntilOver(t, m)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.phase != phaseSaved {
		t.Fatalf("phase = %d, expected saved", m.phase)
	}
	records, _ := store.Load()
	if len(records) != 0 {
		t.Errorf("Skipping the prompt saved %v", records)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !next.(Model).back || cmd == nil {
		t.Error("Enter after saving should return to the menu")
	}
}

func TestModelWithoutStore(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m = playUntilOver(t, m)
	if m.phase != phaseSaved {
		t.Fatalf("phase = %d, expected saved without a store", m.phase)
	}
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("Missing store not reported")
	}
}

func TestModelResizeKeepsRound(t *testing.T) {
	m, game := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, TickMsg{})
	head := game.Snake().Head()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if game.Snake().Head() != head {
		t.Error("Resize reset the round")
	}
	if m.config.ScreenW != 100 || m.config.ScreenH != 40 {
		t.Errorf("config = %+v", m.config)
	}
}

func TestModelKeepsTurnsWhileTooSmall(t *testing.T) {
	m, game := newTestModel(t, nil)
	start := game.Snake().Head()

	m = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 5})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})
	if len(m.pending) != 1 {
		t.Fatalf("pending = %v, expected the turn to stay queued", m.pending)
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	m = update(t, m, TickMsg{})
	if got := game.Snake().Head(); got != start.Add(core.Pt(0, 1)) {
		t.Errorf("Head = %v, expected one cell below %v", got, start)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)
	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).quitting || cmd == nil {
		t.Error("q should quit while playing")
	}
	if next.(Model).View() != "" {
		t.Error("View should be empty after quitting")
	}
}
