package scoring

import "fmt"

// ============================================================================
// CRITERIA AND WEIGHTS
// ============================================================================

// Criterion names one weighted component of the fitness function.
type Criterion string

const (
	CriterionRepeats     Criterion = "repeats"
	CriterionAbsents     Criterion = "absents"
	CriterionHotCold     Criterion = "hot_cold"
	CriterionSum         Criterion = "sum"
	CriterionParity      Criterion = "parity"
	CriterionStrongPairs Criterion = "strong_pairs"
	CriterionSecondary   Criterion = "secondary"
	CriterionConsecutive Criterion = "consecutive"
	CriterionDiversity   Criterion = "diversity"
	CriterionFrame       Criterion = "frame"
	CriterionRecurrence  Criterion = "recurrence"
	CriterionAnomaly     Criterion = "anomaly"
)

// Criteria lists every criterion in canonical order.
func Criteria() []Criterion {
	return []Criterion{
		CriterionRepeats, CriterionAbsents, CriterionHotCold, CriterionSum,
		CriterionParity, CriterionStrongPairs, CriterionSecondary,
		CriterionConsecutive, CriterionDiversity, CriterionFrame,
		CriterionRecurrence, CriterionAnomaly,
	}
}

// Weight bounds. Adaptation can never push a criterion outside these.
const (
	MinWeight = 0.1
	MaxWeight = 3.0
)

// WeightVector maps each criterion to its multiplier.
// INVARIANT: every value lies in [MinWeight, MaxWeight].
type WeightVector map[Criterion]float64

// DefaultWeights returns the hand-tuned starting point used before
// any feedback has been observed.
func DefaultWeights() WeightVector {
	return WeightVector{
		CriterionRepeats:     1.0,
		CriterionAbsents:     0.8,
		CriterionHotCold:     1.0,
		CriterionSum:         1.1,
		CriterionParity:      1.0,
		CriterionStrongPairs: 0.9,
		CriterionSecondary:   0.8,
		CriterionConsecutive: 0.5,
		CriterionDiversity:   1.2,
		CriterionFrame:       1.0,
		CriterionRecurrence:  0.9,
		CriterionAnomaly:     0.6,
	}
}

// Clamp forces one value into the legal weight range.
func Clamp(w float64) float64 {
	if w < MinWeight {
		return MinWeight
	}
	if w > MaxWeight {
		return MaxWeight
	}
	return w
}

// Get returns the weight for a criterion, defaulting to 1.0 for
// criteria the vector does not carry.
func (wv WeightVector) Get(c Criterion) float64 {
	if w, ok := wv[c]; ok {
		return w
	}
	return 1.0
}

// Apply adds a delta to one criterion and clamps the result.
func (wv WeightVector) Apply(c Criterion, delta float64) {
	wv[c] = Clamp(wv.Get(c) + delta)
}

// Scale multiplies one criterion by a factor and clamps the result.
func (wv WeightVector) Scale(c Criterion, factor float64) {
	wv[c] = Clamp(wv.Get(c) * factor)
}

// Clone returns an independent copy. Generation rounds snapshot the
// vector so mid-round adaptation never changes scores in flight.
func (wv WeightVector) Clone() WeightVector {
	out := make(WeightVector, len(wv))
	for c, w := range wv {
		out[c] = w
	}
	return out
}

// Validate checks every value against the weight bounds.
func (wv WeightVector) Validate() error {
	for c, w := range wv {
		if w < MinWeight || w > MaxWeight {
			return fmt.Errorf("weight %s=%.3f outside [%.1f, %.1f]", c, w, MinWeight, MaxWeight)
		}
	}
	return nil
}
