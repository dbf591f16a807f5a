package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/session"
)

// Direction keys queued between ticks. The classic mode consumes one per tick.
const maxPendingTurns = 3

type phase int

const (
	phasePlaying phase = iota
	phaseNaming        // Game over, asking for the player's name
	phaseSaved         // Score saved (or skipped), waiting for restart/menu
)

// roundEnd is filled by the game-over callback. Shared by pointer because
// Bubble Tea copies the model on every update.
type roundEnd struct {
	result *core.RoundResult
}

// Model is the Bubble Tea model for playing one mode.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	recorder   *session.Recorder
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	pending    []core.Action
	gameState  core.GameState
	end        *roundEnd

	phase     phase
	nameInput textinput.Model
	savedAs   string
	saveErr   error

	quitting bool
	back     bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, recorder *session.Recorder, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if recorder == nil {
		recorder = session.NewRecorder(nil, logger)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = session.DefaultPlayer()
	input.CharLimit = 24
	input.Width = 24

	end := &roundEnd{}
	game.OnGameOver(func(r core.RoundResult) {
		end.result = &r
	})

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		recorder:   recorder,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		end:        end,
		nameInput:  input,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.startRound()
	return tickCmd(m.config.TickRate)
}

// startRound resets the game and registers a new round.
func (m *Model) startRound() {
	m.game.Reset(m.config)
	m.end.result = nil
	m.recorder.Begin(m.game.Title())
	m.game.SetBest(m.recorder.Best(m.game.Title()))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.phase == phaseNaming {
			return m.handleNameKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	if m.phase == phaseNaming {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input while playing or after saving.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.phase == phaseSaved {
		switch action {
		case core.ActionRestart:
			m.restart()
		case core.ActionConfirm, core.ActionBack:
			m.back = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case action.IsDirection():
		if len(m.pending) < maxPendingTurns {
			m.pending = append(m.pending, action)
		}
	case action == core.ActionBack:
		m.logger.Info("round abandoned", "round", m.recorder.RoundID(), "score", m.gameState.Score)
		m.back = true
		return m, tea.Quit
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleNameKey feeds the name prompt.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		m.savedAs, m.saveErr = m.recorder.Finish(*m.end.result, m.nameInput.Value())
		m.phase = phaseSaved
		m.nameInput.Blur()
		return m, nil
	case "esc":
		m.phase = phaseSaved
		m.nameInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// handleResize adapts the layout without resetting the round.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.phase != phasePlaying {
		return m, tickCmd(m.config.TickRate)
	}

	if len(m.pending) > 0 && !m.game.State().Paused {
		m.inputFrame.Set(m.pending[0])
		m.pending = m.pending[1:]
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	if m.end.result != nil {
		return m.enterGameOver()
	}

	return m, tickCmd(m.config.TickRate)
}

// enterGameOver switches to the name prompt, or straight to the summary
// when there is nowhere to save.
func (m Model) enterGameOver() (tea.Model, tea.Cmd) {
	m.recorder.Ended(*m.end.result)
	m.pending = nil

	if !m.recorder.HasStore() {
		m.phase = phaseSaved
		m.saveErr = session.ErrNoStore
		return m, tickCmd(m.config.TickRate)
	}

	m.phase = phaseNaming
	m.nameInput.Reset()
	return m, tea.Batch(m.nameInput.Focus(), tickCmd(m.config.TickRate))
}

// restart begins a new round with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.phase = phasePlaying
	m.savedAs = ""
	m.saveErr = nil
	m.pending = nil
	m.inputFrame.Clear()
	m.startRound()
	m.gameState = m.game.State()
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case phaseNaming, phaseSaved:
		return lipgloss.Place(m.config.ScreenW, m.config.ScreenH,
			lipgloss.Center, lipgloss.Center, m.gameOverPanel())
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3)
	panelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	panelHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// gameOverPanel renders the name prompt or the save summary.
func (m Model) gameOverPanel() string {
	res := m.end.result
	if res == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("GAME OVER"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s  |  Score: %d  |  Length: %d\n\n", res.Mode, res.Score, res.Length)

	if m.phase == phaseNaming {
		b.WriteString("Enter your name:\n")
		b.WriteString(m.nameInput.View())
		b.WriteString("\n\n")
		b.WriteString(panelHelpStyle.Render("enter: save • esc: skip"))
		return panelStyle.Render(b.String())
	}

	switch {
	case errors.Is(m.saveErr, session.ErrNoStore):
		b.WriteString("Scores are unavailable this session.\n")
	case m.saveErr != nil:
		fmt.Fprintf(&b, "Could not save score: %v\n", m.saveErr)
	case m.savedAs != "":
		fmt.Fprintf(&b, "Saved for %s.\n", m.savedAs)
	default:
		b.WriteString("Score not saved.\n")
	}
	b.WriteString("\n")
	b.WriteString(panelHelpStyle.Render("r: play again • enter/esc: menu • q: quit"))
	return panelStyle.Render(b.String())
}

// PlayResult describes how a play session ended.
type PlayResult struct {
	Back   bool // Return to the menu
	Config core.RuntimeConfig
}

// Run starts the Bubble Tea program for one mode.
func Run(game registry.Game, recorder *session.Recorder, logger *log.Logger, cfg core.RuntimeConfig) (PlayResult, error) {
	model := NewModel(game, recorder, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return PlayResult{Config: cfg}, fmt.Errorf("tui: %w", err)
	}

	m, ok := finalModel.(Model)
	if !ok {
		return PlayResult{Config: cfg}, nil
	}
	return PlayResult{Back: m.back, Config: m.config}, nil
}
