// Package history persists reconciliation runs and their surfaced
// releases to SQLite, keeping enough provenance to explain later why a
// given release was offered.
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound indicates the requested run does not exist.
var ErrNotFound = errors.New("not found")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	item        TEXT NOT NULL,
	query_name  TEXT NOT NULL,
	started_at  TIMESTAMP NOT NULL,
	finished_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS surfaced (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id   INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	name     TEXT NOT NULL,
	method   TEXT NOT NULL,
	rule     TEXT NOT NULL DEFAULT '',
	position INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS corrections (
	id     INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	detail TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_surfaced_run ON surfaced(run_id);
`

// Store provides access to recorded runs.
type Store struct {
	db *sql.DB
}

// Open opens (and creates if needed) the history database at path.
// Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	// One connection: SQLite serializes writes anyway, and in-memory
	// databases are per-connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("apply history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Run is one recorded reconciliation run.
type Run struct {
	ID         int64
	Item       string
	QueryName  string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Surfaced is one release offered by a run, with provenance.
type Surfaced struct {
	Name   string
	Method string
	Rule   string
}

// Record persists a finished run with its surfaced releases and applied
// corrections. Returns the run ID.
func (s *Store) Record(run Run, surfaced []Surfaced, corrections []string) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.Exec(`
		INSERT INTO runs (item, query_name, started_at, finished_at)
		VALUES (?, ?, ?, ?)`,
		run.Item, run.QueryName, run.StartedAt, run.FinishedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get run id: %w", err)
	}

	for i, sf := range surfaced {
		if _, err := tx.Exec(`
			INSERT INTO surfaced (run_id, name, method, rule, position)
			VALUES (?, ?, ?, ?, ?)`,
			id, sf.Name, sf.Method, sf.Rule, i,
		); err != nil {
			return 0, fmt.Errorf("insert surfaced release: %w", err)
		}
	}
	for _, detail := range corrections {
		if _, err := tx.Exec(`INSERT INTO corrections (run_id, detail) VALUES (?, ?)`, id, detail); err != nil {
			return 0, fmt.Errorf("insert correction: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit run: %w", err)
	}
	return id, nil
}

// GetRun retrieves a run by ID. Returns ErrNotFound if absent.
func (s *Store) GetRun(id int64) (*Run, error) {
	r := &Run{}
	err := s.db.QueryRow(`
		SELECT id, item, query_name, started_at, finished_at
		FROM runs WHERE id = ?`, id,
	).Scan(&r.ID, &r.Item, &r.QueryName, &r.StartedAt, &r.FinishedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get run %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get run %d: %w", id, err)
	}
	return r, nil
}

// ListSurfaced returns the releases surfaced by a run, in result order.
func (s *Store) ListSurfaced(runID int64) ([]Surfaced, error) {
	rows, err := s.db.Query(`
		SELECT name, method, rule FROM surfaced
		WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("list surfaced: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Surfaced
	for rows.Next() {
		var sf Surfaced
		if err := rows.Scan(&sf.Name, &sf.Method, &sf.Rule); err != nil {
			return nil, fmt.Errorf("scan surfaced: %w", err)
		}
		out = append(out, sf)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate surfaced: %w", err)
	}
	return out, nil
}

// RecentRuns returns the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	rows, err := s.db.Query(`
		SELECT id, item, query_name, started_at, finished_at
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Item, &r.QueryName, &r.StartedAt, &r.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return out, nil
}
