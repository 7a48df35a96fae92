package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"lotogen/domain/core"
	"lotogen/domain/scoring"
	"lotogen/ports"
)

// WeightRepository implements WeightStore for PostgreSQL. The weight
// vector and the learner state each live in a single-row table.
type WeightRepository struct {
	db *sqlx.DB
}

// NewWeightRepository creates a new PostgreSQL weight repository.
func NewWeightRepository(db *sqlx.DB) ports.WeightStore {
	return &WeightRepository{db: db}
}

// LoadWeights returns the persisted vector.
func (r *WeightRepository) LoadWeights(ctx context.Context) (scoring.WeightVector, error) {
	var raw []byte
	err := r.db.GetContext(ctx, &raw, `SELECT vector FROM weights WHERE id = 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrWeightsNotFound
	}
	if err != nil {
		return nil, err
	}

	var weights scoring.WeightVector
	if err := json.Unmarshal(raw, &weights); err != nil {
		return nil, err
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return weights, nil
}

// SaveWeights replaces the persisted vector.
func (r *WeightRepository) SaveWeights(ctx context.Context, weights scoring.WeightVector) error {
	if err := weights.Validate(); err != nil {
		return err
	}
	raw, err := json.Marshal(weights)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO weights (id, vector, updated_at)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET vector = $1, updated_at = $2
	`, raw, time.Now())
	return err
}

// LoadLearnerState returns the serialized adapter state, nil when
// none exists.
func (r *WeightRepository) LoadLearnerState(ctx context.Context) ([]byte, error) {
	var raw []byte
	err := r.db.GetContext(ctx, &raw, `SELECT state FROM learner_state WHERE id = 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// SaveLearnerState replaces the serialized adapter state.
func (r *WeightRepository) SaveLearnerState(ctx context.Context, state []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO learner_state (id, state, updated_at)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET state = $1, updated_at = $2
	`, state, time.Now())
	return err
}
