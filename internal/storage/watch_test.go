package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherSeesSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	s, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}

	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	if err := s.Save("ann", 10, "Classic"); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	select {
	case <-w.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("No change reported after Save")
	}
}

func TestWatcherClosesChannel(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "scores.json"), nil)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	w.Close()

	select {
	case _, ok := <-w.Changes():
		if ok {
			// A stray event is fine; the channel must still close.
			<-w.Changes()
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Changes channel not closed after Close")
	}
}
