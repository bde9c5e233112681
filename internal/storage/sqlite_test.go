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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestScoreKey(t *testing.T) {
	tests := []struct {
		mode string
		size int
		want string
	}{
		{"2048", 4, "2048-4x4"},
		{"2048_endless", 6, "2048_endless-6x6"},
		{"2048", 10, "2048-10x10"},
	}

	for _, tt := range tests {
		if got := ScoreKey(tt.mode, tt.size); got != tt.want {
			t.Errorf("ScoreKey(%q, %d) = %q, want %q", tt.mode, tt.size, got, tt.want)
		}
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	four := ScoreKey("2048", 4)
	five := ScoreKey("2048", 5)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore(four, s, 64); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore(five, 500, 128); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores(four, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
	if scores[0].MaxTile != 64 || scores[0].Key != four {
		t.Errorf("Entry fields not round-tripped: %+v", scores[0])
	}

	// Board sizes are kept apart
	fiveScores, err := store.TopScores(five, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(fiveScores) != 1 {
		t.Errorf("Expected 1 score for 5x5, got %d", len(fiveScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100, 0)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	for i := 0; i < 10; i++ {
		store.SaveScore("test", i, 0)
	}
	scores, _ = store.TopScores("test", 0)
	if len(scores) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("2048-4x4")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty key, got %d", high)
	}

	store.SaveScore("2048-4x4", 100, 16)
	store.SaveScore("2048-4x4", 300, 32)
	store.SaveScore("2048-4x4", 200, 16)

	high, err = store.HighScore("2048-4x4")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("2048-4x4", 100, 0)
	store.SaveScore("2048-4x4", 200, 0)
	store.SaveScore("2048-5x5", 300, 0)

	if err := store.ClearScores("2048-4x4"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	cleared, _ := store.TopScores("2048-4x4", 10)
	if len(cleared) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(cleared))
	}

	kept, _ := store.TopScores("2048-5x5", 10)
	if len(kept) != 1 {
		t.Errorf("Other keys should not be affected by clearing")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetStats("2048-4x4")
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected zero stats for empty key, got %+v", empty)
	}

	store.SaveScore("2048-4x4", 100, 16)
	store.SaveScore("2048-4x4", 300, 256)
	store.SaveScore("2048-6x6", 40, 8)

	stats, err := store.GetStats("2048-4x4")
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 || stats.BestTile != 256 {
		t.Errorf("HighScore/BestTile = %d/%d, want 300/256", stats.HighScore, stats.BestTile)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("AllStats() returned %d keys, want 2", len(all))
	}
	if all["2048-6x6"].HighScore != 40 {
		t.Errorf("6x6 high score = %d, want 40", all["2048-6x6"].HighScore)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.t2048/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".t2048", "scores.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}
