package storage

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRun(burned float64) Run {
	return Run{
		Seed:           42,
		GridSize:       100,
		TreeDensity:    0.8,
		BurnProb:       0.6,
		WindDir:        "N",
		WindSpeed:      30,
		Steps:          50,
		Terrain:        "generated",
		InitialTrees:   8000,
		FinalTrees:     int(8000 * (1 - burned)),
		PeakBurning:    640,
		PeakStep:       12,
		BurnedFraction: burned,
		Duration:       1500 * time.Millisecond,
	}
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
	store := openTemp(t)

	want := sampleRun(0.25)
	want.Seed = math.MaxUint64 - 3
	id, err := store.SaveRun(want)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil")
	}
	if got.Seed != want.Seed {
		t.Errorf("seed = %d, want %d", got.Seed, want.Seed)
	}
	if got.GridSize != 100 || got.WindDir != "N" || got.Terrain != "generated" || got.PeakStep != 12 {
		t.Errorf("run = %+v", got)
	}
	if got.Duration != 1500*time.Millisecond {
		t.Errorf("duration = %v", got.Duration)
	}
	if got.CreatedAt.IsZero() {
		t.Error("created_at not populated")
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTemp(t)
	r, err := store.RunByID(999)
	if err != nil || r != nil {
		t.Errorf("RunByID(999) = %v, %v", r, err)
	}
}

func TestStoreRecentRunsOrderAndLimit(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 30; i++ {
		r := sampleRun(float64(i) / 100)
		r.Steps = i
		if _, err := store.SaveRun(r); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := store.RecentRuns(5)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 5 {
		t.Fatalf("Expected 5 runs, got %d", len(runs))
	}
	for i, r := range runs {
		if r.Steps != 29-i {
			t.Errorf("runs[%d].Steps = %d, want %d", i, r.Steps, 29-i)
		}
	}

	all, _ := store.RecentRuns(0)
	if len(all) != 20 {
		t.Errorf("default limit returned %d runs, want 20", len(all))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTemp(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if empty.Count != 0 || empty.MeanBurned != 0 {
		t.Errorf("empty stats = %+v", empty)
	}

	for _, b := range []float64{0.2, 0.4, 0.9} {
		store.SaveRun(sampleRun(b))
	}
	st, err := store.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if st.Count != 3 || math.Abs(st.MeanBurned-0.5) > 1e-9 || st.MaxBurned != 0.9 {
		t.Errorf("stats = %+v", st)
	}
	if st.TotalCellSteps != 3*100*100*50 {
		t.Errorf("cell steps = %d", st.TotalCellSteps)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTemp(t)
	store.SaveRun(sampleRun(0.1))
	store.SaveRun(sampleRun(0.2))

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, _ := store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
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

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.wildfire/test.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".wildfire", "test.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}
