package scoring

import (
	"sort"

	"lotogen/domain/game"
	"lotogen/domain/stats"
)

// ScoredCandidate pairs a combination with its fitness under the
// weights active when it was produced. Ephemeral: lives for one
// generation round, then either becomes a Game or is discarded.
type ScoredCandidate struct {
	Combination game.Combination    `json:"combination"`
	Features    stats.FeatureVector `json:"features"`
	Fitness     float64             `json:"fitness"`
	Breakdown   Breakdown           `json:"breakdown"`
	Strategy    string              `json:"strategy"`
}

// RankCandidates orders candidates by fitness descending. Ties break
// toward the sum closest to the core band midpoint, then by the
// combination key so ordering stays deterministic.
func RankCandidates(candidates []ScoredCandidate, cfg Config) {
	mid := cfg.SumCore.Mid()
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Fitness != candidates[j].Fitness {
			return candidates[i].Fitness > candidates[j].Fitness
		}
		di := abs(float64(candidates[i].Combination.Sum()) - mid)
		dj := abs(float64(candidates[j].Combination.Sum()) - mid)
		if di != dj {
			return di < dj
		}
		return candidates[i].Combination.Key() < candidates[j].Combination.Key()
	})
}
