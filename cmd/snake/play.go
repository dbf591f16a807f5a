package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/console"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/session"
)

// Renderers accepted by --renderer.
const (
	rendererTUI     = "tui"
	rendererConsole = "console"
)

var (
	flagDifficulty string
	flagRenderer   string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (classic when omitted).

Controls:
  Arrows/WASD/hjkl  - Steer
  P/Space           - Pause (timed mode)
  R                 - Restart (after game over)
  Esc/B             - Back
  Ctrl+S            - Screenshot
  Q/Ctrl+C          - Quit

Difficulty options (timed mode):
  easy   - Start slow, speed up to max
  normal - Start at 30% speed-up
  hard   - Start at 70% speed-up
  fixed  - Constant speed

Examples:
  snake play
  snake play timed --difficulty hard
  snake play classic --renderer console`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagRenderer, "renderer", rendererTUI, "Renderer: tui or console")
}

func runPlay(_ *cobra.Command, args []string) error {
	modeID := "classic"
	if len(args) > 0 {
		modeID = args[0]
	}
	if !registry.Exists(modeID) {
		return fmt.Errorf("unknown mode %q, run 'snake modes' to see available modes", modeID)
	}
	if flagRenderer != rendererTUI && flagRenderer != rendererConsole {
		return fmt.Errorf("unknown renderer %q (want %s or %s)", flagRenderer, rendererTUI, rendererConsole)
	}

	a, err := setup(config.DifficultyPreset(flagDifficulty))
	if err != nil {
		return err
	}
	defer a.Close()

	_, err = a.play(modeID, flagRenderer)
	return err
}

// play runs one mode until the player quits or goes back.
// It returns true when the player asked for the menu.
func (a *app) play(modeID, renderer string) (bool, error) {
	game, err := registry.Create(modeID)
	if err != nil {
		return false, err
	}
	recorder := session.NewRecorder(a.store, a.logger)

	if renderer == rendererConsole {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return console.Run(ctx, game, recorder, a.logger, a.runtime)
	}

	res, err := tui.Run(game, recorder, a.logger, a.runtime)
	a.runtime = res.Config
	return res.Back, err
}
