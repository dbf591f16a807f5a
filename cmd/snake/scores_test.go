package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestPrintScores(t *testing.T) {
	records := []storage.Record{
		{Player: "bob", Score: 70, Mode: "Timed"},
		{Player: "annabelle", Score: 40, Mode: "Classic"},
		{Player: "cid", Score: 20, Mode: "Classic"},
	}

	var buf bytes.Buffer
	printScores(&buf, records, 2)
	out := buf.String()

	for _, want := range []string{"Rank", "annabelle", "70", "Timed"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "cid") {
		t.Errorf("limit not applied:\n%s", out)
	}
	if i, j := strings.Index(out, "bob"), strings.Index(out, "annabelle"); i > j {
		t.Error("rows out of order")
	}
}

func TestPrintScoresEmpty(t *testing.T) {
	var buf bytes.Buffer
	printScores(&buf, nil, 10)
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestOpenLoggerRejectsLevel(t *testing.T) {
	if _, _, err := openLogger("", "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
	logger, closer, err := openLogger("", "debug")
	if err != nil || logger == nil || closer != nil {
		t.Errorf("openLogger(\"\", debug) = %v, %v, %v", logger, closer, err)
	}
}
