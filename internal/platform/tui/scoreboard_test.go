package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/minerun/internal/storage"
)

func seedRuns(t *testing.T, store *storage.Store, gameID string, scores ...int) {
	t.Helper()
	for _, s := range scores {
		if _, err := store.SaveRun(storage.RunRecord{GameID: gameID, Score: s, Cause: "Spike"}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
}

func scores(runs []storage.RunRecord) []int {
	out := make([]int, len(runs))
	for i, r := range runs {
		out[i] = r.Score
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sendBoard(t *testing.T, m ScoreboardModel, msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sb, cmd
}

func TestScoreboardOrders(t *testing.T) {
	host := newTestHost(t)
	seedRuns(t, host.Store, "minerun", 30, 90, 60)

	m := NewScoreboardModel(host.Store, 80, 30)
	if got := scores(m.Runs()); !equalInts(got, []int{90, 60, 30}) {
		t.Errorf("best runs = %v, want [90 60 30]", got)
	}
	if !strings.Contains(m.View(), "HIGH SCORES - Mine Run") {
		t.Error("view should title the best-runs board")
	}

	m, _ = sendBoard(t, m, runeKey('s'))
	if got := scores(m.Runs()); !equalInts(got, []int{60, 90, 30}) {
		t.Errorf("recent runs = %v, want [60 90 30]", got)
	}
	if !strings.Contains(m.View(), "RECENT RUNS") {
		t.Error("view should title the recent-runs board")
	}
}

func TestScoreboardCyclesModes(t *testing.T) {
	host := newTestHost(t)
	seedRuns(t, host.Store, "minerun", 10)

	m := NewScoreboardModel(host.Store, 120, 30)
	n := len(m.modes)
	if n < 2 {
		t.Fatalf("need at least two modes, have %d", n)
	}

	m, _ = sendBoard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.cursor != 1 || len(m.Runs()) != 0 {
		t.Errorf("after tab cursor = %d runs = %d, want 1 and 0", m.cursor, len(m.Runs()))
	}

	m, _ = sendBoard(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = sendBoard(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.cursor != n-1 {
		t.Errorf("cursor = %d, want wrap to %d", m.cursor, n-1)
	}
	if !strings.Contains(m.View(), "No runs recorded yet.") {
		t.Error("empty mode should show the placeholder")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)

	back, cmd := sendBoard(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if !back.IsGoingBack() || back.IsQuitting() || cmd == nil {
		t.Error("esc should leave the board without quitting")
	}

	quit, _ := sendBoard(t, m, runeKey('q'))
	if !quit.IsQuitting() || quit.IsGoingBack() {
		t.Error("q should quit")
	}
	if quit.View() != "" {
		t.Error("a closed board renders nothing")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"Tunnel Practice", 12, "Tunnel Prac."},
		{"Mine Run", 12, "Mine Run"},
		{"Schächte", 4, "Sch."},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[float64]string{0: "0:00", 59.6: "1:00", 125: "2:05", 3600: "60:00"}
	for in, want := range tests {
		if got := formatDuration(in); got != want {
			t.Errorf("formatDuration(%v) = %q, want %q", in, got, want)
		}
	}
}
