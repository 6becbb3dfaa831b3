package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/monster-spawn/internal/game"
	"github.com/vovakirdan/monster-spawn/internal/level"
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

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	runs := []game.RunRecord{
		{RunID: "a", Difficulty: "Easy", Lines: 2, Source: "cli", StartedAt: base},
		{RunID: "b", Difficulty: "Medium", MonstersBuilt: 2, EntitiesSpawned: 1, Lines: 14, Source: "cli", StartedAt: base.Add(time.Minute)},
		{RunID: "c", Difficulty: "Difficulty(7)", Error: "unsupported difficulty 7", Source: "ssh", StartedAt: base.Add(2 * time.Minute)},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(recent))
	}

	// Newest first
	if recent[0].RunID != "c" || recent[2].RunID != "a" {
		t.Errorf("Runs not in expected order: %s, %s, %s", recent[0].RunID, recent[1].RunID, recent[2].RunID)
	}
	if recent[0].Error == "" || recent[1].Error != "" {
		t.Error("Error column not round-tripped")
	}
	if recent[1].MonstersBuilt != 2 || recent[1].EntitiesSpawned != 1 || recent[1].Lines != 14 {
		t.Errorf("Unexpected medium run: %+v", recent[1])
	}
	if !recent[2].CreatedAt.Equal(base) {
		t.Errorf("Expected created_at %v, got %v", base, recent[2].CreatedAt)
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(game.RunRecord{RunID: string(rune('a' + i)), Difficulty: "Easy", Source: "cli"})
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
}

func TestStoreDuplicateRunID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(game.RunRecord{RunID: "dup", Difficulty: "Easy", Source: "cli"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(game.RunRecord{RunID: "dup", Difficulty: "Easy", Source: "cli"}); err == nil {
		t.Error("Expected unique constraint error for duplicate run id")
	}
}

func TestStoreStatsAndFilter(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(game.RunRecord{RunID: "1", Difficulty: "Easy", Source: "cli"})
	store.SaveRun(game.RunRecord{RunID: "2", Difficulty: "Medium", MonstersBuilt: 2, EntitiesSpawned: 1, Source: "cli"})
	store.SaveRun(game.RunRecord{RunID: "3", Difficulty: "Medium", MonstersBuilt: 2, EntitiesSpawned: 1, Source: "menu"})
	store.SaveRun(game.RunRecord{RunID: "4", Difficulty: "Medium", Error: "boom", Source: "cli"})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 difficulties, got %d", len(stats))
	}

	easy, medium := stats[0], stats[1]
	if easy.Difficulty != "Easy" || easy.Runs != 1 || easy.Failures != 0 {
		t.Errorf("Unexpected easy stats: %+v", easy)
	}
	if medium.Runs != 3 || medium.Failures != 1 || medium.MonstersBuilt != 4 || medium.Spawned != 2 {
		t.Errorf("Unexpected medium stats: %+v", medium)
	}

	mediumRuns, err := store.RunsByDifficulty("Medium", 10)
	if err != nil {
		t.Fatalf("RunsByDifficulty() failed: %v", err)
	}
	if len(mediumRuns) != 3 {
		t.Errorf("Expected 3 medium runs, got %d", len(mediumRuns))
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(game.RunRecord{RunID: "x", Difficulty: "Easy", Source: "cli"})
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	runs, _ := store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected no runs after Clear, got %d", len(runs))
	}
}

func TestStoreAsManagerRecorder(t *testing.T) {
	store := openTestStore(t)
	s := game.Process(game.Options{}).Manager().Session(game.SessionOptions{Recorder: store, Source: "cli"})

	if err := s.RunScript(game.DefaultScript()); err != nil {
		t.Fatalf("RunScript() failed: %v", err)
	}

	runs, err := store.RunsByDifficulty(level.Medium.String(), 10)
	if err != nil {
		t.Fatalf("RunsByDifficulty() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].MonstersBuilt != 2 || runs[0].EntitiesSpawned != 1 {
		t.Errorf("Unexpected recorded medium runs: %+v", runs)
	}
}
