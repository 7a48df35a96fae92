package stats

import (
	"math"
	"testing"

	"lotogen/domain/game"
)

func TestExtract_KnownValues(t *testing.T) {
	c := game.MustNewCombination([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
	fv := Extract(c)

	if fv.Sum != 120 {
		t.Errorf("Expected sum 120, got %.0f", fv.Sum)
	}
	if fv.EvenCount != 7 {
		t.Errorf("Expected 7 evens, got %.0f", fv.EvenCount)
	}
	if fv.OddCount != 8 {
		t.Errorf("Expected 8 odds, got %.0f", fv.OddCount)
	}
	if fv.MaxRun != 15 {
		t.Errorf("Expected max run 15, got %.0f", fv.MaxRun)
	}
	if fv.BlockCount != 1 {
		t.Errorf("Expected 1 block, got %.0f", fv.BlockCount)
	}
}

func TestExtract_Idempotent(t *testing.T) {
	c := game.MustNewCombination([]int{2, 3, 5, 7, 11, 13, 17, 19, 23, 1, 4, 6, 8, 9, 10})

	first := Extract(c)
	second := Extract(c)
	for _, name := range FeatureNames() {
		if first.Get(name) != second.Get(name) {
			t.Errorf("Expected identical %s on repeated extraction, got %f vs %f",
				name, first.Get(name), second.Get(name))
		}
	}
}

func TestDensity_Range(t *testing.T) {
	// Maximally packed: mean gap 1 gives density 1.
	packed := game.MustNewCombination([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
	if got := Density(packed); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Expected density 1.0 for packed combination, got %f", got)
	}

	// Spread combinations stay within [0, 1].
	spread := game.MustNewCombination([]int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23, 25, 2, 4})
	if got := Density(spread); got < 0 || got > 1 {
		t.Errorf("Expected density in [0, 1], got %f", got)
	}
}

func TestEntropy_ValidCombination(t *testing.T) {
	c := game.MustNewCombination([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
	if got := Entropy(c); got != 0 {
		t.Errorf("Expected zero entropy for distinct numerals, got %f", got)
	}
}
