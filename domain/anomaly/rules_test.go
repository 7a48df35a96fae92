package anomaly

import (
	"testing"

	"lotogen/domain/game"
	"lotogen/domain/stats"
)

func TestLargestBlockPosition(t *testing.T) {
	cases := []struct {
		name     string
		numerals []int
		want     BlockPosition
	}{
		{
			name:     "initial run",
			numerals: []int{1, 2, 3, 4, 5, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24},
			want:     PositionInitial,
		},
		{
			name:     "final run",
			numerals: []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 20, 21, 22, 23, 24, 25},
			want:     PositionFinal,
		},
		{
			name:     "central run",
			numerals: []int{1, 3, 5, 7, 10, 11, 12, 13, 14, 16, 18, 20, 22, 24, 25},
			want:     PositionCenter,
		},
	}
	for _, tc := range cases {
		c := game.MustNewCombination(tc.numerals)
		if got := LargestBlockPosition(c); got != tc.want {
			t.Errorf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestMeanJump(t *testing.T) {
	// Single run has no jumps.
	packed := game.MustNewCombination([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
	if got := MeanJump(packed); got != 0 {
		t.Errorf("Expected zero mean jump for one run, got %f", got)
	}

	// Two runs separated by a gap of 11.
	split := game.MustNewCombination([]int{1, 2, 3, 4, 5, 6, 7, 18, 19, 20, 21, 22, 23, 24, 25})
	if got := MeanJump(split); got != 11 {
		t.Errorf("Expected mean jump 11, got %f", got)
	}
}

func TestClassify_MassiveBlock(t *testing.T) {
	// A 6-long run ending at 15 sits centrally, which outranks the
	// density fallback.
	c := game.MustNewCombination([]int{10, 11, 12, 13, 14, 15, 1, 3, 5, 7, 17, 19, 21, 23, 25})
	fv := stats.Extract(c)

	cat, md := Classify(c, fv, NoSignals())
	if cat != CategoryMassiveBlock {
		t.Fatalf("Expected massive block category, got %s", cat)
	}
	if md["max_run"].(float64) != 6 {
		t.Errorf("Expected max_run 6 in metadata, got %v", md["max_run"])
	}
	if md["position"] != string(PositionCenter) {
		t.Errorf("Expected central position, got %v", md["position"])
	}
}

func TestClassify_SumFrontier(t *testing.T) {
	// Sum 140 with no long runs or tight clusters.
	c := game.MustNewCombination([]int{1, 3, 5, 7, 9, 2, 4, 6, 8, 10, 11, 13, 15, 22, 24})
	fv := stats.Extract(c)
	if fv.Sum != 140 {
		t.Fatalf("Test setup: expected sum 140, got %.0f", fv.Sum)
	}

	cat, md := Classify(c, fv, NoSignals())
	if cat != CategorySumFrontier {
		t.Errorf("Expected sum frontier category, got %s", cat)
	}
	if md["sum"].(float64) != 140 {
		t.Errorf("Expected sum 140 in metadata, got %v", md["sum"])
	}
}

func TestClassify_ExtremeBreak(t *testing.T) {
	c := game.MustNewCombination([]int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23, 25, 2, 4})
	fv := stats.Extract(c)

	sig := Signals{Repeats: 4, SumDelta: 35, ColdCount: -1, MeanColdGap: -1}
	cat, _ := Classify(c, fv, sig)
	if cat != CategoryExtremeBreak {
		t.Errorf("Expected extreme break category, got %s", cat)
	}
}

func TestClassify_ExtremeBreakNeedsSignals(t *testing.T) {
	c := game.MustNewCombination([]int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23, 25, 2, 4})
	fv := stats.Extract(c)

	// Without a previous draw the repeat signal is unavailable and the
	// rule cannot fire.
	cat, _ := Classify(c, fv, NoSignals())
	if cat == CategoryExtremeBreak {
		t.Error("Expected extreme break not to fire without signals")
	}
}

func TestClassify_ColdStreak(t *testing.T) {
	c := game.MustNewCombination([]int{2, 4, 5, 6, 8, 10, 12, 13, 14, 16, 18, 20, 22, 24, 25})
	fv := stats.Extract(c)

	sig := Signals{Repeats: 8, SumDelta: 5, ColdCount: 6, MeanColdGap: 18}
	cat, md := Classify(c, fv, sig)
	if cat != CategoryColdStreak {
		t.Fatalf("Expected cold streak category, got %s", cat)
	}
	if md["cold_count"].(int) != 6 {
		t.Errorf("Expected cold_count 6 in metadata, got %v", md["cold_count"])
	}
}

func TestClassify_FallbackDensity(t *testing.T) {
	// Nothing anomalous structurally: falls through to density.
	c := game.MustNewCombination([]int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23, 25, 2, 4})
	fv := stats.Extract(c)

	cat, md := Classify(c, fv, NoSignals())
	if cat != CategoryAnomalousDensity {
		t.Fatalf("Expected density fallback, got %s", cat)
	}
	if _, ok := md["density"]; !ok {
		t.Error("Expected density in fallback metadata")
	}
}

func TestProfileFor_KnownCategories(t *testing.T) {
	for _, cat := range []Category{
		CategoryClusteredJump, CategoryMassiveBlock, CategoryExtremeBreak,
		CategorySumFrontier, CategoryColdStreak, CategoryAnomalousDensity,
	} {
		p := ProfileFor(cat)
		if p.BaseProbability <= 0 || p.BaseProbability > 1 {
			t.Errorf("Expected base probability in (0, 1] for %s, got %f", cat, p.BaseProbability)
		}
	}
}

func TestRecord_SimilarTo(t *testing.T) {
	c := game.MustNewCombination([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
	r := NewRecord(CategorySumFrontier, 100, c, nil, 0.02, -0.1, false)

	// Same sum is trivially within 10 percent.
	if !r.SimilarTo(c) {
		t.Error("Expected record to be similar to itself")
	}

	// Sum 225 differs from 120 by far more than 10 percent.
	far := game.MustNewCombination([]int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25})
	if r.SimilarTo(far) {
		t.Error("Expected distant sum not to be similar")
	}
}
