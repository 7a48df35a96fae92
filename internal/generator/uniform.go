package generator

import (
	"math/rand"

	"lotogen/domain/game"
)

// Uniform samples 15 distinct numerals uniformly from the full
// universe. It needs no context and cannot fail, which makes it the
// unconditional fallback for every other strategy.
type Uniform struct{}

func (Uniform) Name() StrategyName { return StrategyUniform }

// Generate implements Strategy.
func (Uniform) Generate(count int, _ GenContext, rng *rand.Rand) []game.Combination {
	out := make([]game.Combination, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, complement(nil, rng))
	}
	return out
}
