package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileStoreMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.json")
	s, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}

	records, err := s.Load()
	if err != nil {
		t.Fatalf("Load() on a missing file failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected empty list, got %v", records)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Load() should not create the file")
	}
}

func TestFileStoreFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	s, _ := OpenFile(path)

	if err := s.Save("ann", 120, "Classic"); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	want := `[
  {
    "PlayerName": "ann",
    "Score": 120,
    "GameMode": "Classic"
  }
]
`
	if string(data) != want {
		t.Errorf("File content:\n%s\nexpected:\n%s", data, want)
	}
}

func TestFileStoreReadsUnsortedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	content := `[{"PlayerName":"a","Score":10,"GameMode":"Classic"},
	             {"PlayerName":"b","Score":30,"GameMode":"Classic"}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, _ := OpenFile(path)
	records, err := s.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(records) != 2 || records[0].Player != "b" {
		t.Errorf("Load() = %v, expected b first", records)
	}
}

func TestFileStoreMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, _ := OpenFile(path)
	if _, err := s.Load(); err == nil || !strings.Contains(err.Error(), "cannot parse") {
		t.Errorf("Load() error = %v, expected parse error", err)
	}

	// Saving must not overwrite data it could not read.
	if err := s.Save("ann", 10, "Classic"); err == nil {
		t.Error("Save() over a malformed file should fail")
	}
	data, _ := os.ReadFile(path)
	if string(data) != "{not json" {
		t.Errorf("Malformed file was overwritten: %q", data)
	}
}

func TestFileStoreNullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	os.WriteFile(path, []byte("null"), 0o644)

	s, _ := OpenFile(path)
	records, err := s.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if records == nil || len(records) != 0 {
		t.Errorf("Load() = %#v, expected empty non-nil list", records)
	}
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, _ := OpenFile(filepath.Join(dir, "scores.json"))
	for i := 0; i < 3; i++ {
		s.Save("ann", i, "Classic")
	}
	s.Clear()

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("Directory contains %v, expected only scores.json", names)
	}
}
