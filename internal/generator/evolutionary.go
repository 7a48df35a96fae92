package generator

import (
	"math/rand"
	"sort"

	"lotogen/domain/game"
	"lotogen/domain/scoring"
	"lotogen/internal"
)

// Evolutionary search parameters.
const (
	populationSize = 100
	maxGenerations = 50
	eliteSize      = 10
	tournamentSize = 5
	mutationRate   = 0.15
)

// Evolutionary runs a population-based search: elitism, tournament
// selection, two-point crossover and per-individual mutation, with
// fitness supplied by the scorer. Any internal failure degrades to
// uniform generation for the remaining count; the strategy itself
// never surfaces an error.
type Evolutionary struct {
	Scorer *scoring.Scorer
	Logger *internal.Logger
}

func (Evolutionary) Name() StrategyName { return StrategyEvolutionary }

// Generate implements Strategy.
func (e Evolutionary) Generate(count int, gctx GenContext, rng *rand.Rand) (out []game.Combination) {
	defer func() {
		if r := recover(); r != nil {
			if e.Logger != nil {
				e.Logger.Error("evolutionary generation failed, falling back to uniform: %v", r)
			}
			out = Uniform{}.Generate(count, gctx, rng)
		}
	}()

	if e.Scorer == nil {
		return Uniform{}.Generate(count, gctx, rng)
	}

	weights := gctx.Weights
	if weights == nil {
		weights = scoring.DefaultWeights()
	}
	fitness := func(c game.Combination) float64 {
		f, _ := e.Scorer.Score(c, weights, gctx.Score)
		return f
	}

	// Seed the population from tiered sampling when context allows,
	// so the search starts near historically plausible shapes.
	seeder := Strategy(Tiered{})
	if gctx.Freq == nil {
		seeder = Uniform{}
	}
	population := seeder.Generate(populationSize, gctx, rng)

	scores := make([]float64, len(population))
	for i, c := range population {
		scores[i] = fitness(c)
	}

	for gen := 0; gen < maxGenerations; gen++ {
		order := rankOrder(scores)

		next := make([]game.Combination, 0, populationSize)
		for _, idx := range order[:eliteSize] {
			next = append(next, population[idx])
		}
		for len(next) < populationSize {
			p1 := population[tournament(scores, rng)]
			p2 := population[tournament(scores, rng)]
			child := crossover(p1, p2, rng)
			if rng.Float64() < mutationRate {
				child = mutate(child, rng)
			}
			next = append(next, child)
		}

		population = next
		for i, c := range population {
			scores[i] = fitness(c)
		}
	}

	order := rankOrder(scores)
	if count > len(order) {
		// The population cannot cover the request; pad with uniform.
		for _, idx := range order {
			out = append(out, population[idx])
		}
		out = append(out, Uniform{}.Generate(count-len(out), gctx, rng)...)
		return out
	}
	for _, idx := range order[:count] {
		out = append(out, population[idx])
	}
	return out
}

// rankOrder returns population indices sorted by score descending.
func rankOrder(scores []float64) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	return order
}

// tournament picks the fittest of tournamentSize random entrants.
func tournament(scores []float64, rng *rand.Rand) int {
	best := rng.Intn(len(scores))
	for i := 1; i < tournamentSize; i++ {
		if c := rng.Intn(len(scores)); scores[c] > scores[best] {
			best = c
		}
	}
	return best
}

// crossover splices two parents at two random cut points, dedupes
// the child and backfills to a full combination.
func crossover(p1, p2 game.Combination, rng *rand.Rand) game.Combination {
	cut1 := 1 + rng.Intn(game.DrawSize-2)
	cut2 := cut1 + 1 + rng.Intn(game.DrawSize-cut1-1)

	genes := make([]int, 0, game.DrawSize)
	genes = append(genes, p1[:cut1]...)
	genes = append(genes, p2[cut1:cut2]...)
	genes = append(genes, p1[cut2:]...)
	return complement(genes, rng)
}

// mutate swaps one member for an unused numeral.
func mutate(c game.Combination, rng *rand.Rand) game.Combination {
	members := c.Clone()
	unused := c.Absent()
	members[rng.Intn(len(members))] = unused[rng.Intn(len(unused))]
	return complement(members, rng)
}
