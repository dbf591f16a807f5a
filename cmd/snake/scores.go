package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresMode  string
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the best score per player and mode, highest first.

Examples:
  snake scores
  snake scores --mode Timed --limit 5
  snake scores clear
  snake scores history`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var scoresClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the high score table",
	Args:  cobra.NoArgs,
	RunE:  runScoresClear,
}

var scoresHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently finished rounds (sqlite store only)",
	Args:  cobra.NoArgs,
	RunE:  runScoresHistory,
}

func init() {
	scoresCmd.PersistentFlags().IntVar(&flagScoresLimit, "limit", 10, "Maximum rows to show (0 = all)")
	scoresCmd.Flags().StringVar(&flagScoresMode, "mode", "", "Only show scores of this mode (e.g. Classic)")

	scoresCmd.AddCommand(scoresClearCmd)
	scoresCmd.AddCommand(scoresHistoryCmd)
}

// openStore returns the configured store or an error when it is unavailable.
func openStore() (*app, error) {
	a, err := setup("")
	if err != nil {
		return nil, err
	}
	if a.store == nil {
		a.Close()
		return nil, errors.New("score store unavailable")
	}
	return a, nil
}

func runScores(_ *cobra.Command, _ []string) error {
	a, err := openStore()
	if err != nil {
		return err
	}
	defer a.Close()

	records, err := a.store.Load()
	if err != nil {
		return err
	}
	printScores(os.Stdout, storage.Filter(records, flagScoresMode), flagScoresLimit)
	return nil
}

// printScores writes the score table as aligned text.
func printScores(w io.Writer, records []storage.Record, limit int) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'snake play' to set the first high score!")
		return
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	nameLen := len("Player")
	for _, r := range records {
		nameLen = max(nameLen, len(r.Player))
	}

	fmt.Fprintln(w, "High Scores")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-4s  %-*s  %-8s  %s\n", "Rank", nameLen, "Player", "Score", "Mode")
	fmt.Fprintf(w, "  %-4s  %-*s  %-8s  %s\n", "----", nameLen, "------", "-----", "----")
	for i, r := range records {
		fmt.Fprintf(w, "  %-4d  %-*s  %-8d  %s\n", i+1, nameLen, r.Player, r.Score, r.Mode)
	}
}

func runScoresClear(_ *cobra.Command, _ []string) error {
	a, err := openStore()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.store.Clear(); err != nil {
		return err
	}
	a.logger.Info("scores cleared", "path", a.store.Path())
	fmt.Println("Score table cleared.")
	return nil
}

func runScoresHistory(_ *cobra.Command, _ []string) error {
	a, err := openStore()
	if err != nil {
		return err
	}
	defer a.Close()

	rec, ok := a.store.(storage.RoundRecorder)
	if !ok {
		return fmt.Errorf("the %s store keeps no round history, use --store sqlite", a.config.Scores.Backend)
	}
	rounds, err := rec.RecentRounds(flagScoresLimit)
	if err != nil {
		return err
	}
	printRounds(os.Stdout, rounds)
	return nil
}

// printRounds writes recent rounds, newest first.
func printRounds(w io.Writer, rounds []storage.Round) {
	if len(rounds) == 0 {
		fmt.Fprintln(w, "No rounds recorded yet.")
		return
	}

	fmt.Fprintf(w, "  %-16s  %-8s  %-12s  %-6s  %-6s  %s\n", "Played", "Mode", "Player", "Score", "Length", "Outcome")
	for _, r := range rounds {
		played := "-"
		if !r.PlayedAt.IsZero() {
			played = r.PlayedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "  %-16s  %-8s  %-12s  %-6d  %-6d  %s\n", played, r.Mode, r.Player, r.Score, r.Length, r.Outcome)
	}
}
