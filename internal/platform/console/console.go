// Package console is a lightweight tcell frontend for terminals where the
// Bubble Tea renderer is unwanted. It drives the same registry.Game and
// session.Recorder as the tui package, drawing straight to a tcell.Screen.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/session"
)

const (
	maxPendingTurns = 3
	maxNameLen      = 24
)

// colorStyles maps core.Color to tcell styles.
var colorStyles = map[core.Color]tcell.Style{
	core.ColorDefault:     tcell.StyleDefault,
	core.ColorRed:         tcell.StyleDefault.Foreground(tcell.ColorMaroon),
	core.ColorBrightRed:   tcell.StyleDefault.Foreground(tcell.ColorRed),
	core.ColorBrightGreen: tcell.StyleDefault.Foreground(tcell.ColorLime),
	core.ColorBrightWhite: tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
	core.ColorGray:        tcell.StyleDefault.Foreground(tcell.ColorGray),
}

type phase int

const (
	phasePlaying phase = iota
	phaseNaming
	phaseSaved
)

// Runner plays one mode on a tcell screen.
type Runner struct {
	screen   tcell.Screen
	game     registry.Game
	recorder *session.Recorder
	logger   *log.Logger
	config   core.RuntimeConfig

	buf     *core.Screen
	frame   core.InputFrame
	pending []core.Action
	result  *core.RoundResult

	phase   phase
	name    []rune
	savedAs string
	saveErr error

	quit bool
	back bool
}

// NewRunner creates a runner. The screen must already be initialized.
func NewRunner(screen tcell.Screen, game registry.Game, recorder *session.Recorder, logger *log.Logger, cfg core.RuntimeConfig) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if recorder == nil {
		recorder = session.NewRecorder(nil, logger)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	w, h := screen.Size()
	if w > 0 && h > 0 {
		cfg.ScreenW, cfg.ScreenH = w, h
	}

	r := &Runner{
		screen:   screen,
		game:     game,
		recorder: recorder,
		logger:   logger,
		config:   cfg,
		buf:      core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		frame:    core.NewInputFrame(),
	}
	game.OnGameOver(func(res core.RoundResult) {
		r.result = &res
	})
	r.start()
	return r
}

func (r *Runner) start() {
	r.game.Reset(r.config)
	r.result = nil
	r.phase = phasePlaying
	r.pending = nil
	r.name = nil
	r.savedAs = ""
	r.saveErr = nil
	r.frame.Clear()
	r.recorder.Begin(r.game.Title())
	r.game.SetBest(r.recorder.Best(r.game.Title()))
}

// Done reports whether the loop should stop.
func (r *Runner) Done() bool {
	return r.quit || r.back
}

// Back reports whether the player asked to return to the menu.
func (r *Runner) Back() bool {
	return r.back
}

// HandleEvent applies one tcell event.
func (r *Runner) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		r.config.ScreenW, r.config.ScreenH = w, h
		r.buf.Resize(w, h)
		r.game.Resize(w, h)
		r.screen.Sync()
	case *tcell.EventKey:
		if r.phase == phaseNaming {
			r.handleNameKey(ev)
			return
		}
		r.handleKey(ev)
	}
}

func (r *Runner) handleKey(ev *tcell.EventKey) {
	action, quit := mapKey(ev)
	if quit {
		r.quit = true
		return
	}

	if r.phase == phaseSaved {
		switch action {
		case core.ActionRestart:
			r.config.Seed = time.Now().UnixNano()
			r.start()
		case core.ActionConfirm, core.ActionBack:
			r.back = true
		}
		return
	}

	switch {
	case action.IsDirection():
		if len(r.pending) < maxPendingTurns {
			r.pending = append(r.pending, action)
		}
	case action == core.ActionBack:
		r.logger.Info("round abandoned", "round", r.recorder.RoundID())
		r.back = true
	case action != core.ActionNone:
		r.frame.Set(action)
	}
}

func (r *Runner) handleNameKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		r.quit = true
	case tcell.KeyEnter:
		r.savedAs, r.saveErr = r.recorder.Finish(*r.result, string(r.name))
		r.phase = phaseSaved
	case tcell.KeyEscape:
		r.phase = phaseSaved
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(r.name) > 0 {
			r.name = r.name[:len(r.name)-1]
		}
	case tcell.KeyRune:
		if len(r.name) < maxNameLen {
			r.name = append(r.name, ev.Rune())
		}
	}
}

// Tick advances the game by one platform tick.
func (r *Runner) Tick() {
	if r.phase != phasePlaying {
		return
	}

	if len(r.pending) > 0 && !r.game.State().Paused {
		r.frame.Set(r.pending[0])
		r.pending = r.pending[1:]
	}
	r.game.Step(r.frame)
	r.frame.Clear()

	if r.result != nil {
		r.recorder.Ended(*r.result)
		r.pending = nil
		if r.recorder.HasStore() {
			r.phase = phaseNaming
		} else {
			r.phase = phaseSaved
			r.saveErr = session.ErrNoStore
		}
	}
}

// Draw renders the current state and shows it.
func (r *Runner) Draw() {
	r.buf.Clear()
	r.game.Render(r.buf)
	if r.phase != phasePlaying {
		r.drawPanel()
	}
	Blit(r.screen, r.buf)
	r.screen.Show()
}

// drawPanel overlays the game-over box on the buffer.
func (r *Runner) drawPanel() {
	res := r.result
	if res == nil {
		return
	}

	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("%s  |  Score: %d  |  Length: %d", res.Mode, res.Score, res.Length),
		"",
	}
	if r.phase == phaseNaming {
		lines = append(lines, "Enter your name:", "> "+string(r.name)+"_", "", "enter: save  esc: skip")
	} else {
		switch {
		case errors.Is(r.saveErr, session.ErrNoStore):
			lines = append(lines, "Scores are unavailable this session.")
		case r.saveErr != nil:
			lines = append(lines, "Could not save score.")
		case r.savedAs != "":
			lines = append(lines, "Saved for "+r.savedAs+".")
		default:
			lines = append(lines, "Score not saved.")
		}
		lines = append(lines, "", "r: play again  enter: menu  q: quit")
	}

	width := 0
	for _, l := range lines {
		width = max(width, config.GlyphWidth.StringWidth(l))
	}
	box := core.NewRect((r.buf.Width()-width-4)/2, (r.buf.Height()-len(lines)-2)/2, width+4, len(lines)+2)
	r.buf.DrawRect(box, ' ')
	r.buf.DrawBox(box)
	for i, l := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = core.ColorAlert
		}
		r.buf.DrawTextColor(box.X+2, box.Y+1+i, l, c)
	}
}

// Blit copies a core.Screen onto a tcell screen.
func Blit(dst tcell.Screen, src *core.Screen) {
	dst.Clear()
	for y := range src.Height() {
		for x := 0; x < src.Width(); {
			cell := src.GetCell(x, y)
			style, ok := colorStyles[cell.Color]
			if !ok {
				style = tcell.StyleDefault
			}
			dst.SetContent(x, y, cell.Rune, nil, style)
			// Wide runes occupy the following column too.
			x += max(1, config.GlyphWidth.RuneWidth(cell.Rune))
		}
	}
}

// Loop runs the event and tick loop until the player quits, goes back,
// or ctx is done.
func (r *Runner) Loop(ctx context.Context) {
	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	rate := r.config.TickRate
	if rate <= 0 {
		rate = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	r.Draw()
	for !r.Done() {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			r.HandleEvent(ev)
		case <-ticker.C:
			r.Tick()
		}
		r.Draw()
	}
}

// Run plays game on a fresh terminal screen.
// It returns true when the player asked to go back to the menu.
func Run(ctx context.Context, game registry.Game, recorder *session.Recorder, logger *log.Logger, cfg core.RuntimeConfig) (bool, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return false, fmt.Errorf("console: %w", err)
	}
	if err := screen.Init(); err != nil {
		return false, fmt.Errorf("console: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	r := NewRunner(screen, game, recorder, logger, cfg)
	r.Loop(ctx)
	return r.Back(), nil
}
