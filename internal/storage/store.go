// Package storage persists the ranked score table.
//
// Two backends share the Store interface: a scores.json file of
// {PlayerName, Score, GameMode} records, and SQLite via the pure-Go
// modernc.org/sqlite driver, which also keeps a history of finished rounds.
package storage

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"
)

// Score storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Record is one row of the score table.
// At most one record exists per (Player, Mode); it holds the best score seen.
type Record struct {
	Player string `json:"PlayerName"`
	Score  int    `json:"Score"`
	Mode   string `json:"GameMode"`
}

// Round is a finished round, kept by backends that record history.
type Round struct {
	ID       string
	Mode     string
	Player   string
	Score    int
	Outcome  string
	Length   int
	Moves    uint64
	PlayedAt time.Time
}

// Store is a ranked score table.
type Store interface {
	// Load returns the records sorted by score, best first.
	// A store that was never written is empty, not an error.
	Load() ([]Record, error)

	// Save keeps the higher of the stored and the given score for
	// (player, mode), inserting a new record when none exists.
	Save(player string, score int, mode string) error

	// Clear removes every record.
	Clear() error

	// HighScore returns the best score for mode, or 0.
	HighScore(mode string) (int, error)

	// Path returns the backing file.
	Path() string

	Close() error
}

// RoundRecorder is implemented by stores that keep round history.
type RoundRecorder interface {
	RecordRound(r Round) error
	RecentRounds(limit int) ([]Round, error)
}

// Open opens the store for backend at path. "~" expands to the home directory.
func Open(backend, path string) (Store, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}

	switch backend {
	case BackendFile, "":
		return OpenFile(path)
	case BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}

// ExpandPath replaces a leading "~" with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Merge applies one save to a record list: the best score per (player, mode)
// is kept and the result is sorted descending. Ties keep their earlier order.
func Merge(records []Record, r Record) []Record {
	out := slices.Clone(records)

	i := slices.IndexFunc(out, func(e Record) bool {
		return e.Player == r.Player && e.Mode == r.Mode
	})
	if i < 0 {
		out = append(out, r)
	} else if r.Score > out[i].Score {
		out[i].Score = r.Score
	}

	sortRecords(out)
	return out
}

// Filter returns the records of one mode. An empty mode matches all.
func Filter(records []Record, mode string) []Record {
	if mode == "" {
		return records
	}
	var out []Record
	for _, r := range records {
		if r.Mode == mode {
			out = append(out, r)
		}
	}
	return out
}

func sortRecords(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		return cmp.Compare(b.Score, a.Score)
	})
}

func highScore(records []Record, mode string) int {
	best := 0
	for _, r := range records {
		if r.Mode == mode && r.Score > best {
			best = r.Score
		}
	}
	return best
}
