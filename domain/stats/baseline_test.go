package stats

import (
	"math"
	"testing"

	"lotogen/domain/core"
	"lotogen/domain/game"
)

func TestComputeBaseline_EmptyHistory(t *testing.T) {
	b := ComputeBaseline(nil)

	if b.SampleSize != 0 {
		t.Errorf("Expected sample size 0, got %d", b.SampleSize)
	}
	m := b.Moments(FeatureSum)
	if m.Mean != 205 || m.StdDev != 30 {
		t.Errorf("Expected prior sum moments (205, 30), got (%.1f, %.1f)", m.Mean, m.StdDev)
	}
}

func TestComputeBaseline_IdenticalDraws(t *testing.T) {
	// Every draw identical: observed spread collapses, prior spread
	// must keep deviations finite.
	h := game.History{}
	for i := 1; i <= 5; i++ {
		h = append(h, game.MustNewDraw(i, core.Now(), []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}))
	}

	b := ComputeBaseline(h)
	for _, name := range FeatureNames() {
		m := b.Moments(name)
		if m.StdDev == 0 {
			t.Errorf("Expected non-zero spread for %s after collapse", name)
		}
	}

	fv := Extract(h[0].Numerals)
	score := b.DeviationScore(fv)
	if math.IsNaN(score) || math.IsInf(score, 0) {
		t.Errorf("Expected finite deviation score, got %f", score)
	}
}

func TestBaseline_Deviation(t *testing.T) {
	b := DefaultBaseline()

	// Sum 235 is exactly one prior standard deviation above 205.
	if got := b.Deviation(FeatureSum, 235); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Expected deviation 1.0, got %f", got)
	}
	// Deviation is symmetric around the mean.
	if got := b.Deviation(FeatureSum, 175); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Expected deviation 1.0 below the mean, got %f", got)
	}
}
