package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tenghoit/csc380-s26/metrics"
)

// schema contains the DDL for all tables. Every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id         TEXT PRIMARY KEY,
		case_name  TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS policy_results (
		run_id           TEXT NOT NULL REFERENCES runs(id),
		policy           TEXT NOT NULL,
		throughput       REAL NOT NULL,
		mean_turnaround  REAL NOT NULL,
		context_switches INTEGER NOT NULL,
		total_ticks      INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS page_results (
		run_id      TEXT NOT NULL REFERENCES runs(id),
		algorithm   TEXT NOT NULL,
		frame_count INTEGER NOT NULL,
		refs        INTEGER NOT NULL,
		faults      INTEGER NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_policy_results_run_id ON policy_results(run_id)`,
	`CREATE INDEX IF NOT EXISTS idx_page_results_run_id ON page_results(run_id)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens (or creates) the database at dbPath. Use ":memory:"
// in tests.
func NewSQLiteStore(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	return &SQLiteStore{
		db:     db,
		logger: logger.With("component", "store"),
	}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Migrate creates all required tables and indexes.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	s.logger.Debug("sql", "op", "migrate")
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// SaveReport stores the run row and all its result rows in one transaction.
func (s *SQLiteStore) SaveReport(ctx context.Context, report *metrics.Report) error {
	s.logger.Debug("sql", "op", "insert", "table", "runs", "id", report.RunID)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, case_name, created_at) VALUES (?, ?, ?)`,
		report.RunID, report.CaseName, report.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, r := range report.Scheduling {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO policy_results (run_id, policy, throughput, mean_turnaround, context_switches, total_ticks)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			report.RunID, r.Policy, r.Throughput, r.MeanTurnaround, r.ContextSwitches, r.TotalTicks,
		)
		if err != nil {
			return fmt.Errorf("insert policy result: %w", err)
		}
	}
	for _, r := range report.PageReplacement {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO page_results (run_id, algorithm, frame_count, refs, faults)
			 VALUES (?, ?, ?, ?, ?)`,
			report.RunID, r.Algorithm, r.FrameCount, r.References, r.Faults,
		)
		if err != nil {
			return fmt.Errorf("insert page result: %w", err)
		}
	}
	return tx.Commit()
}

// ListRuns returns the most recent runs, newest first.
func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	s.logger.Debug("sql", "op", "select", "table", "runs", "limit", limit)

	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.case_name, r.created_at,
		        (SELECT COUNT(*) FROM policy_results p WHERE p.run_id = r.id),
		        (SELECT COUNT(*) FROM page_results g WHERE g.run_id = r.id)
		 FROM runs r
		 ORDER BY r.created_at DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	summaries := make([]RunSummary, 0)
	for rows.Next() {
		var run RunSummary
		var createdAt string
		if err := rows.Scan(&run.RunID, &run.CaseName, &createdAt, &run.PolicyResults, &run.PageResults); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
		}
		summaries = append(summaries, run)
	}
	return summaries, rows.Err()
}
