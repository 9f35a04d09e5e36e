package storage

import (
	"context"
	"database/sql"
	"fmt"
)

//go:generate mockgen -source=run_repo.go -destination=mocks/run_store_mock.go -package=mocks

// RunStore is the interface for recording and querying audit runs.
type RunStore interface {
	Insert(ctx context.Context, run RunRecord, entries []RunEntryRecord) error
	Latest(ctx context.Context) (RunRecord, error)
	ListRecent(ctx context.Context, n int) ([]RunRecord, error)
	EntriesByRun(ctx context.Context, runID string) ([]RunEntryRecord, error)
}

// ErrNoRuns is returned when the history is empty.
var ErrNoRuns = sql.ErrNoRows

// RunRepo provides methods for audit run persistence.
type RunRepo struct {
	db *sql.DB
}

// NewRunRepo creates a new RunRepo.
func NewRunRepo(db *sql.DB) *RunRepo {
	return &RunRepo{db: db}
}

// DB returns the underlying database handle.
func (r *RunRepo) DB() *sql.DB {
	return r.db
}

// Insert stores a run and its per-chapter entries in one transaction.
func (r *RunRepo) Insert(ctx context.Context, run RunRecord, entries []RunEntryRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, threshold, total, complete, stub, missing, percentage)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt, run.Threshold, run.Total, run.Complete, run.Stub, run.Missing, run.Percentage,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO run_entries (run_id, path, status, lines) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare entry insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, run.ID, e.Path, e.Status, e.Lines); err != nil {
			return fmt.Errorf("failed to insert entry %s: %w", e.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}
	return nil
}

// Latest returns the most recent run, or ErrNoRuns when none exist.
func (r *RunRepo) Latest(ctx context.Context) (RunRecord, error) {
	var run RunRecord
	err := r.db.QueryRowContext(ctx,
		`SELECT id, started_at, threshold, total, complete, stub, missing, percentage
		 FROM runs ORDER BY started_at DESC, id DESC LIMIT 1`,
	).Scan(&run.ID, &run.StartedAt, &run.Threshold, &run.Total, &run.Complete, &run.Stub, &run.Missing, &run.Percentage)
	if err != nil {
		return RunRecord{}, err
	}
	return run, nil
}

// ListRecent returns up to n runs, newest first.
func (r *RunRepo) ListRecent(ctx context.Context, n int) ([]RunRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, started_at, threshold, total, complete, stub, missing, percentage
		 FROM runs ORDER BY started_at DESC, id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var runs []RunRecord
	for rows.Next() {
		var run RunRecord
		if err := rows.Scan(&run.ID, &run.StartedAt, &run.Threshold, &run.Total,
			&run.Complete, &run.Stub, &run.Missing, &run.Percentage); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return runs, nil
}

// EntriesByRun returns the per-chapter snapshot of a run, ordered by path.
func (r *RunRepo) EntriesByRun(ctx context.Context, runID string) ([]RunEntryRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT run_id, path, status, lines FROM run_entries WHERE run_id = ? ORDER BY path`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []RunEntryRecord
	for rows.Next() {
		var e RunEntryRecord
		if err := rows.Scan(&e.RunID, &e.Path, &e.Status, &e.Lines); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return entries, nil
}
