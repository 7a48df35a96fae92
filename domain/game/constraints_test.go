package game

import (
	"strings"
	"testing"
)

func TestRange_Contains(t *testing.T) {
	r := Range{Min: 6, Max: 9}
	for _, v := range []int{6, 7, 9} {
		if !r.Contains(v) {
			t.Errorf("Expected %d inside [6,9]", v)
		}
	}
	for _, v := range []int{5, 10} {
		if r.Contains(v) {
			t.Errorf("Expected %d outside [6,9]", v)
		}
	}
}

func TestConstraints_SatisfiedByBalancedCombination(t *testing.T) {
	c := MustNewCombination([]int{1, 2, 3, 5, 8, 10, 12, 14, 17, 19, 20, 21, 23, 24, 25})
	cs := DefaultConstraints()

	if violations := cs.Check(c); len(violations) != 0 {
		t.Errorf("Expected no violations, got %v", violations)
	}
	if !cs.Satisfied(c) {
		t.Error("Expected combination to satisfy default constraints")
	}
}

func TestConstraints_ReportsEveryViolatedBound(t *testing.T) {
	c := MustNewCombination([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
	violations := DefaultConstraints().Check(c)

	if len(violations) != 2 {
		t.Fatalf("Expected 2 violations, got %d: %v", len(violations), violations)
	}
	joined := strings.Join(violations, "; ")
	if !strings.Contains(joined, "sum 120") {
		t.Errorf("Expected a sum violation, got %q", joined)
	}
	if !strings.Contains(joined, "max run 15") {
		t.Errorf("Expected a max-run violation, got %q", joined)
	}
}

func TestConstraints_AntiJumpTightensRunCap(t *testing.T) {
	c := MustNewCombination([]int{1, 2, 3, 4, 5, 8, 10, 12, 14, 17, 19, 21, 23, 24, 25})

	if !DefaultConstraints().Satisfied(c) {
		t.Fatal("Expected combination to satisfy default constraints")
	}
	if AntiJumpConstraints().Satisfied(c) {
		t.Error("Expected a run of 5 to violate the anti-jump profile")
	}
}

func TestConstraints_AggressiveNarrowsSumBand(t *testing.T) {
	wide := MustNewCombination([]int{1, 2, 3, 4, 5, 8, 10, 12, 14, 17, 19, 21, 23, 24, 25})
	core := MustNewCombination([]int{1, 2, 3, 5, 8, 10, 12, 14, 17, 19, 20, 21, 23, 24, 25})

	cs := AggressiveConstraints()
	if cs.Satisfied(wide) {
		t.Errorf("Expected sum %d to violate the aggressive profile", wide.Sum())
	}
	if !cs.Satisfied(core) {
		t.Errorf("Expected sum %d to satisfy the aggressive profile", core.Sum())
	}
}
