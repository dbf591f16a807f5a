package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the main menu",
	Long: `Start the game in interactive menu mode.

  1 - Start game (then pick a mode)
  2 - High scores
  3 - Clear scores
  0 - Exit

After a round ends, you return to the menu to play again.

Examples:
  snake menu
  snake menu --fps 30
  snake menu --store sqlite`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	a, err := setup("")
	if err != nil {
		return err
	}
	defer a.Close()

	a.logger.Info("menu started")
	for {
		menuResult, err := tui.RunMenu(a.store, a.logger, a.runtime)
		if err != nil {
			return err
		}
		a.runtime = menuResult.Config

		switch menuResult.Choice {
		case tui.ChoiceExit:
			return nil

		case tui.ChoiceScores:
			goBack, err := tui.RunScoreboard(a.store, a.logger, a.runtime.ScreenW, a.runtime.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case tui.ChoiceStart:
			modeID, err := tui.RunModeSelector(a.runtime)
			if err != nil {
				return err
			}
			if modeID == "" {
				continue
			}

			// Fresh seed per round unless one was fixed
			if flagSeed == 0 {
				a.runtime.Seed = time.Now().UnixNano()
			}
			back, err := a.play(modeID, rendererTUI)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			if !back {
				return nil
			}
		}
	}
}
