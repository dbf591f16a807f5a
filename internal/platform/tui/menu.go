package tui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// MenuChoice is the action picked in the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceStart
	ChoiceScores
	ChoiceClear
	ChoiceExit
)

// MenuItem is one entry of the main menu.
type MenuItem struct {
	Key    string // Shortcut typed at the prompt
	Label  string
	Choice MenuChoice
}

// MainMenuItems lists the main menu in display order.
var MainMenuItems = []MenuItem{
	{Key: "1", Label: "Start game", Choice: ChoiceStart},
	{Key: "2", Label: "High scores", Choice: ChoiceScores},
	{Key: "3", Label: "Clear scores", Choice: ChoiceClear},
	{Key: "0", Label: "Exit", Choice: ChoiceExit},
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	menuHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor    int
	width     int
	height    int
	store     storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	status    string
	choice    MenuChoice
}

// NewMenuModel creates a new menu model. A nil store disables clearing.
func NewMenuModel(store storage.Store, logger *log.Logger, cfg core.RuntimeConfig) MenuModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return MenuModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		logger:    logger,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Numeric shortcuts take precedence.
	for i, item := range MainMenuItems {
		if msg.String() == item.Key {
			m.cursor = i
			return m.choose(item.Choice)
		}
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		return m.choose(ChoiceExit)

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
		m.status = ""

	case MenuActionDown:
		if m.cursor < len(MainMenuItems)-1 {
			m.cursor++
		}
		m.status = ""

	case MenuActionSelect:
		return m.choose(MainMenuItems[m.cursor].Choice)

	case MenuActionInvalid:
		m.status = fmt.Sprintf("Invalid command %q. Use 1, 2, 3 or 0.", msg.String())
	}

	return m, nil
}

// choose applies a menu choice. Clearing stays in the menu.
func (m MenuModel) choose(c MenuChoice) (tea.Model, tea.Cmd) {
	if c == ChoiceClear {
		m.status = m.clearScores()
		return m, nil
	}
	m.choice = c
	return m, tea.Quit
}

func (m MenuModel) clearScores() string {
	if m.store == nil {
		return "Scores are unavailable this session."
	}
	if err := m.store.Clear(); err != nil {
		m.logger.Error("cannot clear scores", "err", err)
		return fmt.Sprintf("Could not clear scores: %v", err)
	}
	m.logger.Info("scores cleared", "path", m.store.Path())
	return "Score table cleared."
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == ChoiceExit {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")

	for i, item := range MainMenuItems {
		line := fmt.Sprintf("  %s. %s", item.Key, item.Label)
		if i == m.cursor {
			line = menuCursorStyle.Render(fmt.Sprintf("> %s. %s", item.Key, item.Label))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(centerText(menuStatusStyle.Render(m.status), m.width))
	}
	b.WriteString("\n\n")
	b.WriteString(centerText(menuHelpStyle.Render("1-3/0: Choose  |  Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the selected action.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Status returns the status line.
func (m MenuModel) Status() string {
	return m.status
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Config core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: ChoiceExit, Config: cfg}, fmt.Errorf("tui: %w", err)
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == ChoiceNone {
		return MenuResult{Choice: ChoiceExit, Config: cfg}, nil
	}

	return MenuResult{Choice: m.Choice(), Config: m.Config()}, nil
}
