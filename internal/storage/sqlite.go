// Package storage provides SQLite-based persistence for the run history.
// Only run parameters and summary numbers are stored, never grids.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the run history.
type Store struct {
	db *sql.DB
}

// Run is one recorded simulation.
type Run struct {
	ID          int64
	Seed        uint64
	GridSize    int
	TreeDensity float64
	BurnProb    float64
	WindDir     string
	WindSpeed   float64
	Steps       int
	Workers     int
	Terrain     string // image path or "generated"

	InitialTrees   int
	FinalTrees     int
	PeakBurning    int
	PeakStep       int
	BurnedFraction float64
	Duration       time.Duration
	CreatedAt      time.Time
}

// RunStats aggregates the whole history.
type RunStats struct {
	Count          int
	MeanBurned     float64
	MaxBurned      float64
	TotalCellSteps int64 // sum of grid_size² × steps
}

// DefaultPath is used when no database path is configured.
const DefaultPath = "~/.wildfire/runs.db"

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		dbPath = DefaultPath
	}
	// Expand ~ to home directory
	if dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			grid_size INTEGER NOT NULL,
			tree_density REAL NOT NULL,
			burn_prob REAL NOT NULL,
			wind_dir TEXT NOT NULL,
			wind_speed REAL NOT NULL,
			steps INTEGER NOT NULL,
			workers INTEGER NOT NULL DEFAULT 0,
			terrain TEXT NOT NULL DEFAULT '',
			initial_trees INTEGER NOT NULL,
			final_trees INTEGER NOT NULL,
			peak_burning INTEGER NOT NULL,
			peak_step INTEGER NOT NULL,
			burned_fraction REAL NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished simulation.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (seed, grid_size, tree_density, burn_prob, wind_dir, wind_speed, steps, workers, terrain,
		  initial_trees, final_trees, peak_burning, peak_step, burned_fraction, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		int64(r.Seed), // sqlite integers are signed; the bit pattern round-trips
		r.GridSize,
		r.TreeDensity,
		r.BurnProb,
		r.WindDir,
		r.WindSpeed,
		r.Steps,
		r.Workers,
		r.Terrain,
		r.InitialTrees,
		r.FinalTrees,
		r.PeakBurning,
		r.PeakStep,
		r.BurnedFraction,
		r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, seed, grid_size, tree_density, burn_prob, wind_dir, wind_speed, steps, workers, terrain,
		initial_trees, final_trees, peak_burning, peak_step, burned_fraction, duration_ms, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var r Run
	var seed, durationMS int64
	var createdAt any
	err := sc.Scan(
		&r.ID, &seed, &r.GridSize, &r.TreeDensity, &r.BurnProb, &r.WindDir, &r.WindSpeed,
		&r.Steps, &r.Workers, &r.Terrain, &r.InitialTrees, &r.FinalTrees, &r.PeakBurning,
		&r.PeakStep, &r.BurnedFraction, &durationMS, &createdAt,
	)
	if err != nil {
		return r, err
	}
	r.Seed = uint64(seed)
	r.Duration = time.Duration(durationMS) * time.Millisecond

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			r.CreatedAt = parsed
		}
	}
	return r, nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID retrieves a run by its ID. Returns nil, nil if it does not exist.
func (s *Store) RunByID(id int64) (*Run, error) {
	r, err := scanRun(s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// Stats aggregates every stored run.
func (s *Store) Stats() (RunStats, error) {
	var st RunStats
	var mean, maxBurned sql.NullFloat64
	var cells sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*), AVG(burned_fraction), MAX(burned_fraction), SUM(grid_size * grid_size * steps)
		 FROM runs`,
	).Scan(&st.Count, &mean, &maxBurned, &cells)
	if err != nil {
		return st, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	st.MeanBurned = mean.Float64
	st.MaxBurned = maxBurned.Float64
	st.TotalCellSteps = cells.Int64
	return st, nil
}

// ClearRuns deletes the whole history.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
