package anomaly

import (
	"lotogen/domain/game"
	"lotogen/domain/stats"
)

// ============================================================================
// RULE TABLE
// ============================================================================

// BlockPosition locates the largest consecutive block on the card.
type BlockPosition string

const (
	PositionNone    BlockPosition = "none"
	PositionInitial BlockPosition = "initial"
	PositionCenter  BlockPosition = "center"
	PositionFinal   BlockPosition = "final"
)

// LargestBlockPosition returns where the longest maximal run sits.
// Runs starting at 5 or below are initial, ending at 21 or above are
// final, anything else is central.
func LargestBlockPosition(c game.Combination) BlockPosition {
	var largest []int
	run := []int{}
	for i, n := range c {
		if i > 0 && n == c[i-1]+1 {
			run = append(run, n)
		} else {
			run = []int{n}
		}
		if len(run) > len(largest) {
			largest = append([]int(nil), run...)
		}
	}
	if len(largest) == 0 {
		return PositionNone
	}
	switch {
	case largest[0] <= 5:
		return PositionInitial
	case largest[len(largest)-1] >= 21:
		return PositionFinal
	default:
		return PositionCenter
	}
}

// MeanJump returns the mean gap between adjacent maximal runs,
// counting single numerals as runs of one. Zero when the whole
// combination is one run.
func MeanJump(c game.Combination) float64 {
	if len(c) < 2 {
		return 0
	}
	total, jumps := 0, 0
	for i := 1; i < len(c); i++ {
		if gap := c[i] - c[i-1]; gap > 1 {
			total += gap
			jumps++
		}
	}
	if jumps == 0 {
		return 0
	}
	return float64(total) / float64(jumps)
}

// Signals carries the context-dependent inputs the rule table reads.
// Negative values mean the signal is unavailable (no previous draw,
// no frequency table) and rules depending on it cannot fire.
type Signals struct {
	Repeats     int     // shared numerals with the previous draw
	SumDelta    int     // absolute sum difference vs the previous draw
	ColdCount   int     // included numerals absent for 15+ draws
	MeanColdGap float64 // mean absence streak of those numerals
}

// NoSignals marks every contextual input unavailable.
func NoSignals() Signals {
	return Signals{Repeats: -1, SumDelta: -1, ColdCount: -1, MeanColdGap: -1}
}

// Rule pairs a category with its predicate. Rules are evaluated in
// slice order; the first match wins.
type Rule struct {
	Category Category
	Match    func(c game.Combination, fv stats.FeatureVector, sig Signals) bool
}

// Rules returns the rule table in priority order.
func Rules() []Rule {
	return []Rule{
		{
			Category: CategoryClusteredJump,
			Match: func(c game.Combination, fv stats.FeatureVector, _ Signals) bool {
				jump := MeanJump(c)
				return fv.BlockCount >= 3 && fv.BlockCount <= 5 &&
					jump >= 1.5 && jump <= 3.5 &&
					fv.Sum >= 220 && fv.Sum <= 245
			},
		},
		{
			Category: CategoryMassiveBlock,
			Match: func(c game.Combination, fv stats.FeatureVector, _ Signals) bool {
				if fv.MaxRun < 6 || fv.MaxRun > 8 {
					return false
				}
				pos := LargestBlockPosition(c)
				return pos == PositionCenter || pos == PositionFinal
			},
		},
		{
			Category: CategoryExtremeBreak,
			Match: func(_ game.Combination, _ stats.FeatureVector, sig Signals) bool {
				return sig.Repeats >= 0 && sig.Repeats <= 5 &&
					sig.SumDelta >= 20 && sig.SumDelta <= 50
			},
		},
		{
			Category: CategorySumFrontier,
			Match: func(_ game.Combination, fv stats.FeatureVector, _ Signals) bool {
				return (fv.Sum >= 140 && fv.Sum <= 170) || (fv.Sum >= 240 && fv.Sum <= 270)
			},
		},
		{
			Category: CategoryColdStreak,
			Match: func(_ game.Combination, _ stats.FeatureVector, sig Signals) bool {
				return sig.ColdCount >= 5 && sig.ColdCount <= 8 &&
					sig.MeanColdGap >= 15 && sig.MeanColdGap <= 25
			},
		},
	}
}

// Classify picks the first matching category for an anomalous
// combination, defaulting to anomalous density with the raw spatial
// measurements as metadata.
func Classify(c game.Combination, fv stats.FeatureVector, sig Signals) (Category, map[string]interface{}) {
	for _, rule := range Rules() {
		if rule.Match(c, fv, sig) {
			return rule.Category, metadataFor(rule.Category, c, fv, sig)
		}
	}
	return CategoryAnomalousDensity, map[string]interface{}{
		"reason":  "atypical spatial distribution",
		"density": fv.Density,
		"entropy": fv.Entropy,
	}
}

func metadataFor(cat Category, c game.Combination, fv stats.FeatureVector, sig Signals) map[string]interface{} {
	md := map[string]interface{}{"category": string(cat)}
	switch cat {
	case CategoryClusteredJump:
		md["sum"] = fv.Sum
		md["block_count"] = fv.BlockCount
		md["mean_jump"] = MeanJump(c)
	case CategoryMassiveBlock:
		md["max_run"] = fv.MaxRun
		md["position"] = string(LargestBlockPosition(c))
	case CategoryExtremeBreak:
		md["repeats"] = sig.Repeats
		md["sum_delta"] = sig.SumDelta
	case CategorySumFrontier:
		md["sum"] = fv.Sum
	case CategoryColdStreak:
		md["cold_count"] = sig.ColdCount
		md["mean_cold_gap"] = sig.MeanColdGap
	}
	return md
}
