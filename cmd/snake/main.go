// snake is a terminal Snake game.
//
// Usage:
//
//	snake                    - Start the main menu
//	snake menu               - Same as above
//	snake play [mode]        - Play a mode directly (default: classic)
//	snake modes              - List available modes
//	snake scores             - Print the high score table
//	snake scores clear       - Empty the high score table
//	snake scores history     - Show recent rounds (sqlite store)
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom config YAML
//	--scores <path>       - Score store path (default from config)
//	--store <backend>     - Score store backend: file or sqlite
//	--log-file <path>     - Log file (default: ~/.arcade/snake/snake.log)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagScoresPath string
	flagStore      string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a terminal game: steer the snake to the food, grow,
and avoid the walls and your own tail.

Available commands:
  menu     - Interactive main menu (default)
  play     - Play a mode directly
  modes    - Show all available modes
  scores   - View or clear high scores

Examples:
  snake
  snake play timed --difficulty hard
  snake scores --mode Classic
  snake --store sqlite --scores ~/.arcade/snake/scores.db`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagScoresPath, "scores", "", "Path to the score store (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "Score store backend: file or sqlite (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.arcade/snake/snake.log", "Path to the log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}

// app holds what every command needs: config, logger and the score store.
type app struct {
	config  config.SnakeConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	store   storage.Store // nil when scores are unavailable
	logFile io.Closer
}

// setup loads the configuration, opens the log and the score store.
// A store that cannot be opened is logged and left nil.
func setup(preset config.DifficultyPreset) (*app, error) {
	logger, logFile, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return nil, err
	}

	cfg, source, err := config.LoadSnake(flagConfig)
	if err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, err
	}
	logger.Debug("config loaded", "source", source)

	if err := config.ApplySnakePreset(&cfg, preset); err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, err
	}
	if flagStore != "" {
		cfg.Scores.Backend = flagStore
	}
	if flagScoresPath != "" {
		cfg.Scores.Path = flagScoresPath
	}
	if err := cfg.Validate(); err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, err
	}
	snake.SetConfig(cfg)

	a := &app{
		config:  cfg,
		runtime: runtimeConfig(),
		logger:  logger,
		logFile: logFile,
	}

	store, err := storage.Open(cfg.Scores.Backend, cfg.Scores.Path)
	if err != nil {
		logger.Warn("scores unavailable", "backend", cfg.Scores.Backend, "path", cfg.Scores.Path, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open score store: %v\n", err)
	} else {
		a.store = store
	}

	return a, nil
}

// Close releases the store and the log file.
func (a *app) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("cannot close score store", "err", err)
		}
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// openLogger creates the file logger. An empty path discards log output.
func openLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	var w io.Writer = io.Discard
	var closer io.Closer
	if path != "" {
		path, err = storage.ExpandPath(path)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           lvl,
	})
	return logger, closer, nil
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
