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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{Algo: "dijkstra", Rows: 25, Cols: 50, Walls: 120, Found: true, PathLength: 30, Visited: 412, DurationMS: 95},
		{Algo: "astar", Rows: 25, Cols: 50, Walls: 120, Found: true, PathLength: 30, Visited: 88, DurationMS: 40},
		{Algo: "dijkstra", Rows: 25, Cols: 50, Walls: 300, Found: false, PathLength: -1, Visited: 530, DurationMS: 110},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(recent))
	}

	// Newest first
	if recent[0].Algo != "dijkstra" || recent[0].Found {
		t.Errorf("Expected newest run to be the failed dijkstra, got %+v", recent[0])
	}
	if recent[0].PathLength != -1 {
		t.Errorf("Expected PathLength -1 for failed run, got %d", recent[0].PathLength)
	}
	if recent[2].Visited != 412 {
		t.Errorf("Expected oldest run visited 412, got %d", recent[2].Visited)
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(RunRecord{Algo: "bfs", Rows: 10, Cols: 10, Found: true, PathLength: i + 1, Visited: 20}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.Recent(2)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("Expected 2 runs, got %d", len(recent))
	}
	if recent[0].PathLength != 5 {
		t.Errorf("Expected newest run first, got path length %d", recent[0].PathLength)
	}
}

func TestStoreBestForSize(t *testing.T) {
	store := openTestStore(t)

	seed := []RunRecord{
		{Algo: "dijkstra", Rows: 25, Cols: 50, Found: true, PathLength: 34, Visited: 500},
		{Algo: "astar", Rows: 25, Cols: 50, Found: true, PathLength: 30, Visited: 90},
		{Algo: "bfs", Rows: 25, Cols: 50, Found: true, PathLength: 30, Visited: 400},
		{Algo: "dijkstra", Rows: 25, Cols: 50, Found: false, PathLength: -1, Visited: 700},
		{Algo: "dijkstra", Rows: 10, Cols: 10, Found: true, PathLength: 5, Visited: 30},
	}
	for _, r := range seed {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	best, err := store.BestForSize(25, 50, 10)
	if err != nil {
		t.Fatalf("BestForSize() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("Expected 3 successful runs, got %d", len(best))
	}
	if best[0].Algo != "astar" {
		t.Errorf("Expected astar first (fewest visited at length 30), got %s", best[0].Algo)
	}
	for _, r := range best {
		if !r.Found {
			t.Errorf("Unsolved run %d leaked into best list", r.ID)
		}
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	seed := []RunRecord{
		{Algo: "dijkstra", Rows: 25, Cols: 50, Found: true, PathLength: 30, Visited: 400},
		{Algo: "dijkstra", Rows: 25, Cols: 50, Found: false, PathLength: -1, Visited: 600},
		{Algo: "astar", Rows: 25, Cols: 50, Found: true, PathLength: 32, Visited: 100},
	}
	for _, r := range seed {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 algorithms, got %d", len(stats))
	}

	// Sorted by algorithm name
	if stats[0].Algo != "astar" || stats[1].Algo != "dijkstra" {
		t.Fatalf("Unexpected order: %s, %s", stats[0].Algo, stats[1].Algo)
	}
	d := stats[1]
	if d.Runs != 2 || d.Solved != 1 {
		t.Errorf("dijkstra stats = %+v, want 2 runs 1 solved", d)
	}
	if d.AvgVisited != 500 {
		t.Errorf("dijkstra AvgVisited = %.1f, want 500", d.AvgVisited)
	}
	if d.BestLength != 30 {
		t.Errorf("dijkstra BestLength = %d, want 30", d.BestLength)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(RunRecord{Algo: "bfs", Rows: 10, Cols: 10, Found: true, PathLength: 3, Visited: 12}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	recent, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("Expected empty history, got %d runs", len(recent))
	}
}
