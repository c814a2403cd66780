package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/qazprep/qazprep/internal/engine"
)

// HistoryEntry is one row of a student's analysis history.
type HistoryEntry struct {
	StudentID       string
	TestID          string
	TakenAt         time.Time
	SavedAt         time.Time
	OverallScorePct float64
}

// ResultRepo caches the latest analysis per student (last-write-wins) and
// keeps a lightweight append-only history.
type ResultRepo interface {
	// Save stores out as the student's latest analysis and appends a
	// history row.
	Save(ctx context.Context, out *engine.AnalysisOutput) error

	// Latest returns the student's most recent analysis, or nil if none.
	Latest(ctx context.Context, studentID string) (*engine.AnalysisOutput, error)

	// History returns up to limit history rows, newest first.
	History(ctx context.Context, studentID string, limit int) ([]HistoryEntry, error)

	// Reset deletes all cached analyses and history.
	Reset(ctx context.Context) error
}

type resultRepo struct {
	db *sql.DB
}

func (r *resultRepo) Save(ctx context.Context, out *engine.AnalysisOutput) error {
	payload, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("encode analysis: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	taken := out.Timestamp.UTC().Format(time.RFC3339)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO latest_analysis (student_id, test_id, taken_at, saved_at, payload)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (student_id) DO UPDATE SET
			test_id = excluded.test_id,
			taken_at = excluded.taken_at,
			saved_at = excluded.saved_at,
			payload = excluded.payload`,
		out.StudentID, out.TestID, taken, now, string(payload))
	if err != nil {
		return fmt.Errorf("upsert latest: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO analysis_log (student_id, test_id, taken_at, saved_at, overall_score_pct)
		VALUES (?, ?, ?, ?, ?)`,
		out.StudentID, out.TestID, taken, now, out.OverallScorePct)
	if err != nil {
		return fmt.Errorf("append log: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *resultRepo) Latest(ctx context.Context, studentID string) (*engine.AnalysisOutput, error) {
	var payload string
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM latest_analysis WHERE student_id = ?`, studentID).
		Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest: %w", err)
	}

	var out engine.AnalysisOutput
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		return nil, fmt.Errorf("decode analysis: %w", err)
	}
	return &out, nil
}

func (r *resultRepo) History(ctx context.Context, studentID string, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT student_id, test_id, taken_at, saved_at, overall_score_pct
		FROM analysis_log
		WHERE student_id = ?
		ORDER BY id DESC
		LIMIT ?`, studentID, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var taken, saved string
		if err := rows.Scan(&e.StudentID, &e.TestID, &taken, &saved, &e.OverallScorePct); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		e.TakenAt, _ = time.Parse(time.RFC3339, taken)
		e.SavedAt, _ = time.Parse(time.RFC3339, saved)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *resultRepo) Reset(ctx context.Context) error {
	for _, table := range []string{"latest_analysis", "analysis_log"} {
		if _, err := r.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}
