package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{3, 1, 7} {
		if _, err := store.SaveScore("dungeon", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("dungeon_hard", 12); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("dungeon", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 7 || scores[1].Score != 3 || scores[2].Score != 1 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].Board != "dungeon" {
		t.Errorf("Board = %q, expected dungeon", scores[0].Board)
	}

	hard, err := store.TopScores("dungeon_hard", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(hard) != 1 {
		t.Errorf("Expected 1 hard score, got %d", len(hard))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("dungeon", (i+1)*10)
	}

	scores, err := store.TopScores("dungeon", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("dungeon")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty board, got %d", high)
	}

	store.SaveScore("dungeon", 4)
	store.SaveScore("dungeon", 9)
	store.SaveScore("dungeon", 2)

	high, err = store.HighScore("dungeon")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 9 {
		t.Errorf("Expected high score of 9, got %d", high)
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(RunRecord{
		Board:      "dungeon",
		Player:     "alice",
		Outcome:    "won",
		Score:      5,
		Kills:      5,
		DurationMs: 64000,
		Seed:       -42,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRun() id %q is not a UUID: %v", id, err)
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if run.Player != "alice" || run.Outcome != "won" || run.Kills != 5 || run.DurationMs != 64000 || run.Seed != -42 {
		t.Errorf("RunByID() = %+v, fields do not match", run)
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}

	missing, err := store.RunByID(NewRunID())
	if err != nil || missing != nil {
		t.Errorf("RunByID(unknown) = %v, %v, expected nil, nil", missing, err)
	}
}

func TestStoreSaveRunDuplicateID(t *testing.T) {
	store := openTestStore(t)

	run := RunRecord{ID: NewRunID(), Board: "dungeon", Outcome: "lost"}
	if _, err := store.SaveRun(run); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(run); err == nil {
		t.Error("SaveRun() with a duplicate id should fail")
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	outcomes := []string{"lost", "quit", "won", "lost"}
	for i, o := range outcomes {
		board := "dungeon"
		if i == 1 {
			board = "dungeon_easy"
		}
		if _, err := store.SaveRun(RunRecord{Board: board, Outcome: o, Score: i}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns("dungeon", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("RecentRuns() returned %d runs, expected 2", len(runs))
	}
	// Newest first
	if runs[0].Score != 3 || runs[1].Score != 2 {
		t.Errorf("RecentRuns() order = %d, %d, expected 3, 2", runs[0].Score, runs[1].Score)
	}

	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("RecentRuns(all) returned %d runs, expected 4", len(all))
	}
}

func TestStoreBoardStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Board: "dungeon", Outcome: "won", Score: 4, Kills: 4, DurationMs: 1000})
	store.SaveRun(RunRecord{Board: "dungeon", Outcome: "lost", Score: 0, Kills: 2, DurationMs: 3000})

	stats, err := store.GetBoardStats("dungeon")
	if err != nil {
		t.Fatalf("GetBoardStats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.Wins != 1 || stats.HighScore != 4 || stats.TotalKills != 6 {
		t.Errorf("GetBoardStats() = %+v", stats)
	}
	if stats.AvgMs != 2000 {
		t.Errorf("AvgMs = %v, expected 2000", stats.AvgMs)
	}

	empty, err := store.GetBoardStats("nothing")
	if err != nil {
		t.Fatalf("GetBoardStats() failed: %v", err)
	}
	if empty.RunsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("GetBoardStats(empty) = %+v", empty)
	}
}

func TestStoreBoards(t *testing.T) {
	store := openTestStore(t)

	boards, err := store.Boards()
	if err != nil {
		t.Fatalf("Boards() failed: %v", err)
	}
	if len(boards) != 0 {
		t.Errorf("Boards() = %v, expected none", boards)
	}

	store.SaveScore("dungeon_hard", 3)
	store.SaveScore("dungeon", 1)
	store.SaveRun(RunRecord{Board: "dungeon_easy", Outcome: "lost"})
	store.SaveRun(RunRecord{Board: "dungeon", Outcome: "won"})

	boards, err = store.Boards()
	if err != nil {
		t.Fatalf("Boards() failed: %v", err)
	}
	expected := []string{"dungeon", "dungeon_easy", "dungeon_hard"}
	if len(boards) != len(expected) {
		t.Fatalf("Boards() = %v, expected %v", boards, expected)
	}
	for i := range expected {
		if boards[i] != expected[i] {
			t.Errorf("Boards()[%d] = %q, expected %q", i, boards[i], expected[i])
		}
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("dungeon", 1)
	store.SaveScore("dungeon", 2)
	store.SaveScore("dungeon_hard", 3)
	store.SaveRun(RunRecord{Board: "dungeon", Outcome: "won"})

	if err := store.ClearScores("dungeon"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("dungeon", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	runs, _ := store.RecentRuns("dungeon", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}

	hard, _ := store.TopScores("dungeon_hard", 10)
	if len(hard) != 1 {
		t.Errorf("Other boards should not be affected by clearing")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
