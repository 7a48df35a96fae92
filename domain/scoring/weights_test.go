package scoring

import (
	"testing"
)

func TestDefaultWeights_CoverAllCriteria(t *testing.T) {
	w := DefaultWeights()
	for _, crit := range Criteria() {
		if _, ok := w[crit]; !ok {
			t.Errorf("Expected default weight for %s", crit)
		}
	}
}

func TestWeightVector_ApplyClamps(t *testing.T) {
	w := WeightVector{
		CriterionSum:    2.9,
		CriterionParity: 0.15,
	}
	w.Apply(CriterionSum, 0.5)
	w.Apply(CriterionParity, -0.5)

	if w[CriterionSum] != MaxWeight {
		t.Errorf("Expected sum weight clamped to %f, got %f", MaxWeight, w[CriterionSum])
	}
	if w[CriterionParity] != MinWeight {
		t.Errorf("Expected parity weight clamped to %f, got %f", MinWeight, w[CriterionParity])
	}
}

func TestWeightVector_ScaleClamps(t *testing.T) {
	w := WeightVector{CriterionDiversity: 2.5}
	w.Scale(CriterionDiversity, 2.0)

	if w[CriterionDiversity] != MaxWeight {
		t.Errorf("Expected scaled weight clamped to %f, got %f", MaxWeight, w[CriterionDiversity])
	}
}

func TestWeightVector_GetMissing(t *testing.T) {
	w := WeightVector{}
	if got := w.Get(CriterionSum); got != 1.0 {
		t.Errorf("Expected unit weight for missing criterion, got %f", got)
	}
}

func TestWeightVector_Validate(t *testing.T) {
	w := DefaultWeights()
	if err := w.Validate(); err != nil {
		t.Errorf("Expected default weights to validate, got %v", err)
	}

	w[CriterionSum] = 10.0
	if err := w.Validate(); err == nil {
		t.Error("Expected validation error for out-of-range weight")
	}
}

func TestWeightVector_CloneIsIndependent(t *testing.T) {
	w := DefaultWeights()
	clone := w.Clone()
	clone[CriterionSum] = MaxWeight

	if w[CriterionSum] == MaxWeight {
		t.Error("Expected clone mutation not to affect the original")
	}
}
