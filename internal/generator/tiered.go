package generator

import (
	"math/rand"

	"lotogen/domain/game"
	"lotogen/domain/stats"
)

// Tier sizes over the frequency ranking. Hot takes the top of the
// ranking, cold the bottom, warm the band between them.
const (
	tierHotSize  = 15
	tierWarmSize = 5
)

// Mix targets for one tiered candidate.
const (
	targetRepeats = 9 // numerals kept from the previous draw
	targetAbsents = 4 // long-absent numerals brought back
)

// Tiered biases sampling by historical frequency and recency: a core
// of repeats from the previous draw, a few long-absent numerals, and
// the remainder drawn from hot, warm and cold tiers in a 50/30/20
// split. Every sub-pool shortfall backfills from the full unused
// universe, so the strategy never returns fewer than requested.
type Tiered struct{}

func (Tiered) Name() StrategyName { return StrategyTiered }

// Generate implements Strategy. Without a frequency table it degrades
// to uniform sampling.
func (t Tiered) Generate(count int, gctx GenContext, rng *rand.Rand) []game.Combination {
	if gctx.Freq == nil {
		return Uniform{}.Generate(count, gctx, rng)
	}

	out := make([]game.Combination, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, t.one(gctx, rng))
	}
	return out
}

func (t Tiered) one(gctx GenContext, rng *rand.Rand) game.Combination {
	members := make([]int, 0, game.DrawSize)
	used := make(map[int]bool, game.DrawSize)
	take := func(pool []int, k int) {
		filtered := make([]int, 0, len(pool))
		for _, n := range pool {
			if !used[n] {
				filtered = append(filtered, n)
			}
		}
		for _, n := range sampleDistinct(filtered, k, rng) {
			used[n] = true
			members = append(members, n)
		}
	}

	if len(gctx.PrevDraw) == game.DrawSize {
		take(gctx.PrevDraw, targetRepeats)
	}
	take(gctx.Freq.MostAbsent(stats.DefaultHotColdK), targetAbsents)

	ranked := gctx.Freq.Ranked()
	hot := ranked[:tierHotSize]
	warm := ranked[tierHotSize : tierHotSize+tierWarmSize]
	cold := ranked[tierHotSize+tierWarmSize:]

	remaining := game.DrawSize - len(members)
	if remaining > 0 {
		fromHot := remaining * 50 / 100
		fromWarm := remaining * 30 / 100
		take(hot, fromHot)
		take(warm, fromWarm)
		take(cold, game.DrawSize-len(members))
	}

	// Backfill covers any tier exhaustion.
	return complement(members, rng)
}
