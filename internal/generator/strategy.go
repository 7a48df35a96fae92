package generator

import (
	"math/rand"

	"lotogen/domain/game"
	"lotogen/domain/scoring"
	"lotogen/domain/stats"
)

// ============================================================================
// GENERATION STRATEGIES
// ============================================================================

// StrategyName identifies a candidate generation strategy.
type StrategyName string

const (
	StrategyUniform      StrategyName = "uniform"
	StrategyTiered       StrategyName = "tiered"
	StrategyEvolutionary StrategyName = "evolutionary"
)

// ParseStrategy validates a strategy name, defaulting to tiered.
func ParseStrategy(s string) (StrategyName, bool) {
	switch StrategyName(s) {
	case StrategyUniform, StrategyTiered, StrategyEvolutionary:
		return StrategyName(s), true
	case "":
		return StrategyTiered, true
	default:
		return "", false
	}
}

// GenContext carries the historical signals a strategy may use. Any
// field may be nil or empty; strategies degrade toward uniform
// sampling when context is missing.
type GenContext struct {
	PrevDraw game.Combination
	Freq     *stats.FrequencyTable
	Score    scoring.Context // passed through to fitness evaluation
	Weights  scoring.WeightVector
}

// Strategy produces valid combinations. Implementations must return
// exactly count items, each a valid 15-of-25 selection; they may use
// any context available but must not fail on missing context.
type Strategy interface {
	Name() StrategyName
	Generate(count int, gctx GenContext, rng *rand.Rand) []game.Combination
}

// sampleDistinct draws k distinct numerals from pool without
// replacement. The pool is consumed in place.
func sampleDistinct(pool []int, k int, rng *rand.Rand) []int {
	if k > len(pool) {
		k = len(pool)
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	out := make([]int, k)
	copy(out, pool[:k])
	return out
}

// complement fills partial up to DrawSize from the unused numeral
// universe. This backfill can never fail: the universe always holds
// at least 25-15 spare numerals.
func complement(partial []int, rng *rand.Rand) game.Combination {
	used := make(map[int]bool, len(partial))
	members := make([]int, 0, game.DrawSize)
	for _, n := range partial {
		if !used[n] && n >= game.MinNumeral && n <= game.MaxNumeral {
			used[n] = true
			members = append(members, n)
		}
		if len(members) == game.DrawSize {
			break
		}
	}

	if missing := game.DrawSize - len(members); missing > 0 {
		unused := make([]int, 0, game.MaxNumeral)
		for n := game.MinNumeral; n <= game.MaxNumeral; n++ {
			if !used[n] {
				unused = append(unused, n)
			}
		}
		members = append(members, sampleDistinct(unused, missing, rng)...)
	}

	return game.MustNewCombination(members)
}
