package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("minerun", 42); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("minerun")
	if err != nil || high != 42 {
		t.Errorf("HighScore() = %d, %v; want 42", high, err)
	}
}

func TestStoreMigrations(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	for range 2 {
		store, err := Open(dbPath)
		if err != nil {
			t.Fatalf("Open() failed: %v", err)
		}
		v, err := store.SchemaVersion()
		if err != nil {
			t.Fatalf("SchemaVersion() failed: %v", err)
		}
		if v != len(migrations) {
			t.Errorf("SchemaVersion() = %d, want %d", v, len(migrations))
		}
		store.Close()
	}
}

func TestStoreExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.minerun/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Close()

	if _, err := os.Stat(filepath.Join(home, ".minerun", "scores.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("minerun")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("empty HighScore() = %d, want 0", high)
	}

	store.SaveScore("minerun", 100)
	store.SaveScore("minerun", 300)
	store.SaveScore("minerun", 200)

	if high, _ = store.HighScore("minerun"); high != 300 {
		t.Errorf("HighScore() = %d, want 300", high)
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{GameID: "minerun", Score: 12, Coins: 10, TimeAlive: 31.5, SectionsCleared: 2, MaxTier: 1, Cause: "Spike", Difficulty: "easy", Seed: 7},
		{GameID: "minerun", Score: 40, Coins: 28, TimeAlive: 95.25, SectionsCleared: 8, MaxTier: 3, Cause: "Beam", Difficulty: "hard", Seed: 8},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.RecentRuns("minerun", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("RecentRuns() = %d runs, want 2", len(got))
	}
	// Newest first.
	if got[0].Score != 40 || got[0].Cause != "Beam" || got[0].TimeAlive != 95.25 || got[0].Seed != 8 {
		t.Errorf("RecentRuns()[0] = %+v", got[0])
	}
	if got[1].Difficulty != "easy" || got[1].SectionsCleared != 2 || got[1].MaxTier != 1 {
		t.Errorf("RecentRuns()[1] = %+v", got[1])
	}

	// Runs also feed the score table.
	if high, _ := store.HighScore("minerun"); high != 40 {
		t.Errorf("HighScore() = %d, want 40", high)
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{15, 30, 15, 5} {
		if _, err := store.SaveRun(RunRecord{GameID: "minerun", Score: score, Seed: int64(score)}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	store.SaveRun(RunRecord{GameID: "minerun_beams", Score: 99})

	got, err := store.TopRuns("minerun", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	want := []int{30, 15, 15}
	if len(got) != len(want) {
		t.Fatalf("TopRuns() = %d runs, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Score != w {
			t.Errorf("TopRuns()[%d].Score = %d, want %d", i, got[i].Score, w)
		}
	}
	if got[1].ID >= got[2].ID {
		t.Errorf("tied runs out of insertion order: %d before %d", got[1].ID, got[2].ID)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("minerun")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RunsCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveRun(RunRecord{GameID: "minerun", Score: 10, TimeAlive: 20, SectionsCleared: 1})
	store.SaveRun(RunRecord{GameID: "minerun", Score: 30, TimeAlive: 50, SectionsCleared: 4})

	stats, err = store.GetGameStats("minerun")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.HighScore != 30 || stats.AvgScore != 20 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LongestRun != 50 || stats.TotalSections != 5 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{GameID: "minerun", Score: 100})
	store.SaveScore("minerun", 200)
	store.SaveScore("minerun_beams", 300)

	if err := store.ClearScores("minerun"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if high, _ := store.HighScore("minerun"); high != 0 {
		t.Errorf("HighScore() after clear = %d, want 0", high)
	}
	if runs, _ := store.RecentRuns("minerun", 10); len(runs) != 0 {
		t.Errorf("got %d runs after clear, want 0", len(runs))
	}
	if high, _ := store.HighScore("minerun_beams"); high != 300 {
		t.Errorf("other games should not be affected, HighScore() = %d", high)
	}
}
