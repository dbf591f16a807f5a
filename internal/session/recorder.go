// Package session records finished rounds: the score table, the round
// history and the log. Both frontends share it.
package session

import (
	"errors"
	"io"
	"os/user"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// ErrNoStore is returned by Finish when scores cannot be persisted.
var ErrNoStore = errors.New("session: no score store")

// FallbackPlayer is used when neither the player nor the OS names one.
const FallbackPlayer = "Player"

// Recorder tracks the current round and persists its result.
type Recorder struct {
	store   storage.Store
	logger  *log.Logger
	roundID string
	mode    string
	started time.Time
}

// NewRecorder creates a recorder. A nil store disables persistence;
// a nil logger discards log output.
func NewRecorder(store storage.Store, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{store: store, logger: logger}
}

// HasStore reports whether scores are persisted.
func (r *Recorder) HasStore() bool {
	return r.store != nil
}

// Begin starts a new round of mode and returns its id.
func (r *Recorder) Begin(mode string) string {
	r.roundID = uuid.NewString()
	r.mode = mode
	r.started = time.Now()
	r.logger.Info("round started", "round", r.roundID, "mode", mode)
	return r.roundID
}

// RoundID returns the id of the current round.
func (r *Recorder) RoundID() string {
	return r.roundID
}

// Best returns the best stored score for mode, or 0 when unknown.
func (r *Recorder) Best(mode string) int {
	if r.store == nil {
		return 0
	}
	best, err := r.store.HighScore(mode)
	if err != nil {
		r.logger.Warn("cannot read high score", "mode", mode, "err", err)
		return 0
	}
	return best
}

// Ended logs the end of the round.
func (r *Recorder) Ended(res core.RoundResult) {
	r.logger.Info("round ended",
		"round", r.roundID,
		"mode", res.Mode,
		"score", res.Score,
		"outcome", res.Reason,
		"length", res.Length,
		"moves", res.Ticks,
		"duration", time.Since(r.started).Round(time.Millisecond),
	)
}

// Finish saves the round's score under player and appends it to the round
// history when the store keeps one. It returns the name actually used.
func (r *Recorder) Finish(res core.RoundResult, player string) (string, error) {
	player = PlayerName(player)
	if r.store == nil {
		return player, ErrNoStore
	}

	if err := r.store.Save(player, res.Score, res.Mode); err != nil {
		r.logger.Error("cannot save score", "player", player, "err", err)
		return player, err
	}
	r.logger.Info("score saved", "round", r.roundID, "player", player, "score", res.Score, "mode", res.Mode)

	if rec, ok := r.store.(storage.RoundRecorder); ok {
		err := rec.RecordRound(storage.Round{
			ID:      r.roundID,
			Mode:    res.Mode,
			Player:  player,
			Score:   res.Score,
			Outcome: res.Reason,
			Length:  res.Length,
			Moves:   res.Ticks,
		})
		if err != nil {
			r.logger.Warn("cannot record round", "round", r.roundID, "err", err)
		}
	}
	return player, nil
}

// PlayerName trims name and falls back to DefaultPlayer when it is empty.
func PlayerName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultPlayer()
	}
	return name
}

// DefaultPlayer returns the OS user name, or FallbackPlayer.
func DefaultPlayer() string {
	u, err := user.Current()
	if err != nil || strings.TrimSpace(u.Username) == "" {
		return FallbackPlayer
	}
	// Windows reports DOMAIN\user.
	name := u.Username
	if i := strings.LastIndex(name, `\`); i >= 0 {
		name = name[i+1:]
	}
	return name
}
