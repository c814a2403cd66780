// Package store persists analysis results in a local SQLite database. The
// engine itself never touches it: the cache is an external collaborator
// with last-write-wins semantics per student.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite connection and exposes repositories.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn, applies the recommended
// pragmas and creates the schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Results returns a ResultRepo backed by this store.
func (s *Store) Results() ResultRepo {
	return &resultRepo{db: s.db}
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func migrate(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS latest_analysis (
	student_id TEXT PRIMARY KEY,
	test_id    TEXT NOT NULL,
	taken_at   TEXT NOT NULL,
	saved_at   TEXT NOT NULL,
	payload    TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS analysis_log (
	id                INTEGER PRIMARY KEY AUTOINCREMENT,
	student_id        TEXT NOT NULL,
	test_id           TEXT NOT NULL,
	taken_at          TEXT NOT NULL,
	saved_at          TEXT NOT NULL,
	overall_score_pct REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_analysis_log_student ON analysis_log(student_id, id);
`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. QAZPREP_DB environment variable
// 2. $XDG_DATA_HOME/qazprep/qazprep.db
// 3. ~/.local/share/qazprep/qazprep.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("QAZPREP_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "qazprep", "qazprep.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
