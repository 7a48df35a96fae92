package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"lotogen/domain/anomaly"
	"lotogen/domain/core"
	"lotogen/domain/game"
	"lotogen/ports"
)

// AnomalyRepository implements AnomalyLedger for PostgreSQL. The
// table is append-only; there is deliberately no update or delete.
type AnomalyRepository struct {
	db *sqlx.DB
}

// NewAnomalyRepository creates a new PostgreSQL anomaly ledger.
func NewAnomalyRepository(db *sqlx.DB) ports.AnomalyLedger {
	return &AnomalyRepository{db: db}
}

type anomalyRow struct {
	ID          string          `db:"id"`
	Category    string          `db:"category"`
	Contest     sql.NullInt64   `db:"contest"`
	Numerals    pq.Int64Array   `db:"numerals"`
	Metadata    json.RawMessage `db:"metadata"`
	Probability float64         `db:"probability"`
	Impact      float64         `db:"impact"`
	Precursor   bool            `db:"precursor"`
	DetectedAt  time.Time       `db:"detected_at"`
}

func (r anomalyRow) toRecord() (anomaly.Record, error) {
	numerals := make([]int, len(r.Numerals))
	for i, n := range r.Numerals {
		numerals[i] = int(n)
	}
	combination, err := game.NewCombination(numerals)
	if err != nil {
		return anomaly.Record{}, err
	}

	var metadata map[string]interface{}
	if len(r.Metadata) > 0 {
		if err := json.Unmarshal(r.Metadata, &metadata); err != nil {
			return anomaly.Record{}, err
		}
	}

	record := anomaly.Record{
		ID:          core.RecordID(r.ID),
		Category:    anomaly.Category(r.Category),
		Numerals:    combination,
		Metadata:    metadata,
		Probability: r.Probability,
		Impact:      r.Impact,
		Precursor:   r.Precursor,
		DetectedAt:  core.NewTimestamp(r.DetectedAt),
	}
	if r.Contest.Valid {
		record.Contest = int(r.Contest.Int64)
	}
	return record, nil
}

// Append stores a new record.
func (r *AnomalyRepository) Append(ctx context.Context, record anomaly.Record) error {
	metadata, err := json.Marshal(record.Metadata)
	if err != nil {
		return err
	}
	var contest interface{}
	if record.Contest > 0 {
		contest = record.Contest
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO anomalies (id, category, contest, numerals, metadata, probability, impact, precursor, detected_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, record.ID.String(), string(record.Category), contest, toInt64Array(record.Numerals),
		metadata, record.Probability, record.Impact, record.Precursor, record.DetectedAt.Time())
	return err
}

// ListByCategory returns every record of one category, oldest first.
func (r *AnomalyRepository) ListByCategory(ctx context.Context, category anomaly.Category) ([]anomaly.Record, error) {
	var rows []anomalyRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, category, contest, numerals, metadata, probability, impact, precursor, detected_at
		FROM anomalies
		WHERE category = $1
		ORDER BY detected_at, id
	`, string(category))
	if err != nil {
		return nil, err
	}
	return rowsToRecords(rows)
}

// ListRecent returns the most recent records across categories.
func (r *AnomalyRepository) ListRecent(ctx context.Context, limit int) ([]anomaly.Record, error) {
	query := `
		SELECT id, category, contest, numerals, metadata, probability, impact, precursor, detected_at
		FROM anomalies
		ORDER BY detected_at DESC, id DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	var rows []anomalyRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	// Reverse back into chronological order.
	records := make([]anomaly.Record, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		record, err := rows[i].toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func rowsToRecords(rows []anomalyRow) ([]anomaly.Record, error) {
	out := make([]anomaly.Record, 0, len(rows))
	for _, row := range rows {
		record, err := row.toRecord()
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}
