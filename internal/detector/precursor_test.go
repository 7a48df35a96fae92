package detector

import (
	"testing"

	"lotogen/domain/game"
)

// jumpShape satisfies all three precursor conditions: sum above 180,
// a run of at least 4, and 3 to 4 blocks.
func jumpShape() game.Combination {
	return game.MustNewCombination([]int{7, 8, 9, 10, 13, 14, 15, 18, 19, 20, 22, 23, 24, 25, 12})
}

// calmShape fails the run condition.
func calmShape() game.Combination {
	return game.MustNewCombination([]int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23, 25, 2, 4})
}

func TestDetectPrecursor_Unanimous(t *testing.T) {
	recent := []game.Combination{jumpShape(), jumpShape(), jumpShape()}
	if !DetectPrecursor(recent) {
		t.Error("Expected precursor alert with three matching draws")
	}
}

func TestDetectPrecursor_TwoOfThreeNotEnough(t *testing.T) {
	recent := []game.Combination{jumpShape(), calmShape(), jumpShape()}
	if DetectPrecursor(recent) {
		t.Error("Expected no alert when one draw breaks the pattern")
	}
}

func TestDetectPrecursor_ShortWindow(t *testing.T) {
	if DetectPrecursor(nil) {
		t.Error("Expected no alert for empty window")
	}
	if DetectPrecursor([]game.Combination{jumpShape(), jumpShape()}) {
		t.Error("Expected no alert for two draws")
	}
}

func TestDetectPrecursor_OnlyLastThreeMatter(t *testing.T) {
	// An older calm draw outside the window must not block the alert.
	recent := []game.Combination{calmShape(), jumpShape(), jumpShape(), jumpShape()}
	if !DetectPrecursor(recent) {
		t.Error("Expected alert based on the last three draws only")
	}
}
