package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps the score table in an indented JSON file.
type FileStore struct {
	path string
}

// OpenFile returns a store backed by the JSON file at path.
// The file is created on the first save.
func OpenFile(path string) (*FileStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return &FileStore{path: path}, nil
}

// Path returns the score file.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the score file. A missing file yields an empty list.
func (s *FileStore) Load() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read %s: %w", s.path, err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("storage: cannot parse %s: %w", s.path, err)
	}
	if records == nil {
		records = []Record{}
	}
	sortRecords(records)
	return records, nil
}

// Save merges one score into the file.
func (s *FileStore) Save(player string, score int, mode string) error {
	records, err := s.Load()
	if err != nil {
		return err
	}
	return s.write(Merge(records, Record{Player: player, Score: score, Mode: mode}))
}

// Clear writes an empty list.
func (s *FileStore) Clear() error {
	return s.write([]Record{})
}

// HighScore returns the best score for mode.
func (s *FileStore) HighScore(mode string) (int, error) {
	records, err := s.Load()
	if err != nil {
		return 0, err
	}
	return highScore(records, mode), nil
}

// Close is a no-op; the file is not held open.
func (s *FileStore) Close() error {
	return nil
}

// write replaces the file atomically so a watcher never sees a partial list.
func (s *FileStore) write(records []Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: cannot encode scores: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".scores-*.json")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write scores: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", s.path, err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
