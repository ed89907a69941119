// Package store persists simulation run reports to SQLite so past
// comparisons can be listed and inspected later.
package store

import (
	"context"
	"time"

	"github.com/tenghoit/csc380-s26/metrics"
)

// RunSummary is one row of the run history.
type RunSummary struct {
	RunID         string
	CaseName      string
	CreatedAt     time.Time
	PolicyResults int
	PageResults   int
}

// Store is the persistence interface the CLI depends on.
type Store interface {
	Migrate(ctx context.Context) error
	SaveReport(ctx context.Context, report *metrics.Report) error
	ListRuns(ctx context.Context, limit int) ([]RunSummary, error)
	Close() error
}
