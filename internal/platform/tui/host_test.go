package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func bufferLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}), &buf
}

func TestSaveResultLogsSavedRun(t *testing.T) {
	host := newTestHost(t)
	logger, buf := bufferLogger()
	host.Logger = logger

	host.saveResult(&stubGame{score: 40, steps: 120}, 40)

	out := buf.String()
	if !strings.Contains(out, "run saved") {
		t.Errorf("log = %q, want a run saved entry", out)
	}
	if strings.Contains(out, "cannot save score") {
		t.Errorf("log = %q, want no save warning", out)
	}
	runs, err := host.Store.RecentRuns("stub", 5)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Score != 40 {
		t.Errorf("runs = %+v, want one run scoring 40", runs)
	}
}

func TestSaveResultFailureSkipsSavedLog(t *testing.T) {
	host := newTestHost(t)
	logger, buf := bufferLogger()
	host.Logger = logger
	if err := host.Store.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	host.saveResult(&stubGame{score: 40}, 40)

	out := buf.String()
	if strings.Contains(out, "run saved") {
		t.Errorf("log = %q, a failed save must not report success", out)
	}
	if !strings.Contains(out, "cannot save score") {
		t.Errorf("log = %q, want a save warning", out)
	}
}
