package ports

import (
	"context"

	"lotogen/domain/anomaly"
)

// AnomalyLedger is the append-only log of classified anomalies.
// Entries are never updated or deleted; recurrence probability
// adjustment reads the whole log per category.
type AnomalyLedger interface {
	// Append stores a new record.
	Append(ctx context.Context, record anomaly.Record) error

	// ListByCategory returns every record of one category, oldest
	// first.
	ListByCategory(ctx context.Context, category anomaly.Category) ([]anomaly.Record, error)

	// ListRecent returns the most recent records across categories.
	ListRecent(ctx context.Context, limit int) ([]anomaly.Record, error)
}
