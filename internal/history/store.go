package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Run is one recorded solve invocation.
type Run struct {
	ID        int64
	CreatedAt string
	Problem   string
	Status    string
	Steps     int
	Cost      *int
	Duration  time.Duration
}

// Store persists solve runs.
type Store struct {
	db *sql.DB
}

// NewStore wraps an open history database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Record inserts one run row.
func (s *Store) Record(ctx context.Context, run Run) error {
	createdAt := run.CreatedAt
	if createdAt == "" {
		createdAt = time.Now().UTC().Format(time.RFC3339)
	}
	if _, err := s.db.ExecContext(ctx, `INSERT INTO runs(created_at, problem, status, steps, cost, duration_ms)
		VALUES(?, ?, ?, ?, ?, ?)`,
		createdAt, run.Problem, run.Status, run.Steps, nullableInt(run.Cost), run.Duration.Milliseconds()); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id, created_at, problem, status, steps, cost, duration_ms
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var run Run
		var cost sql.NullInt64
		var durationMS int64
		if err := rows.Scan(&run.ID, &run.CreatedAt, &run.Problem, &run.Status, &run.Steps, &cost, &durationMS); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if cost.Valid {
			v := int(cost.Int64)
			run.Cost = &v
		}
		run.Duration = time.Duration(durationMS) * time.Millisecond
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read runs: %w", err)
	}
	return runs, nil
}

// Prune deletes all but the newest keepLast runs. keepLast <= 0 keeps
// everything.
func (s *Store) Prune(ctx context.Context, keepLast int) error {
	if keepLast <= 0 {
		return nil
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id NOT IN
		(SELECT id FROM runs ORDER BY id DESC LIMIT ?)`, keepLast); err != nil {
		return fmt.Errorf("prune runs: %w", err)
	}
	return nil
}

func nullableInt(value *int) any {
	if value == nil {
		return nil
	}
	return *value
}
