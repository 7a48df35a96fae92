package ports

import (
	"context"

	"lotogen/domain/scoring"
)

// WeightStore persists the adaptive weight vector and the learning
// state between generation sessions.
type WeightStore interface {
	// LoadWeights returns the persisted vector, or
	// core.ErrWeightsNotFound when none has been saved yet.
	LoadWeights(ctx context.Context) (scoring.WeightVector, error)

	// SaveWeights replaces the persisted vector.
	SaveWeights(ctx context.Context, weights scoring.WeightVector) error

	// LoadLearnerState returns the serialized adapter state (value
	// table, epsilon, episode count), or nil when none exists.
	LoadLearnerState(ctx context.Context) ([]byte, error)

	// SaveLearnerState replaces the serialized adapter state.
	SaveLearnerState(ctx context.Context, state []byte) error
}
