package scoring

import (
	"lotogen/domain/game"
	"lotogen/domain/stats"
)

// ============================================================================
// FITNESS SCORER
// ============================================================================

// Context carries the historical signals the scorer reads. Every
// field is optional; criteria whose context is missing drop out of
// the weighted total instead of distorting it.
type Context struct {
	PrevDraw    game.Combination      // most recent official draw
	Recent      []game.Combination    // a few recent draws for recurrence checks
	Freq        *stats.FrequencyTable // window frequency/gap table
	Baseline    *stats.Baseline       // historical feature moments
	StrongPairs []stats.Pair          // frequently co-occurring pairs
}

// Breakdown records each criterion's normalized sub-score.
type Breakdown map[Criterion]float64

// Scorer ranks combinations by a weighted multi-criteria fitness.
type Scorer struct {
	cfg Config
}

// NewScorer creates a scorer with the given target bands.
func NewScorer(cfg Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// Config exposes the scorer's active configuration.
func (s *Scorer) Config() Config { return s.cfg }

// Score computes normalized fitness in [0, 1] plus the per-criterion
// breakdown. Weights are applied as multipliers and the total is
// divided by the applied weight mass, so vectors need not sum to one.
func (s *Scorer) Score(c game.Combination, weights WeightVector, ctx Context) (float64, Breakdown) {
	breakdown := make(Breakdown, len(Criteria()))
	totalScore := 0.0
	totalWeight := 0.0

	apply := func(crit Criterion, sub float64) {
		breakdown[crit] = sub
		w := weights.Get(crit)
		totalScore += w * sub
		totalWeight += w
	}

	if len(ctx.PrevDraw) == game.DrawSize {
		apply(CriterionRepeats, s.scoreRepeats(c, ctx.PrevDraw))
	}
	if ctx.Freq != nil {
		apply(CriterionAbsents, s.scoreAbsents(c, ctx.Freq))
		apply(CriterionHotCold, s.scoreHotCold(c, ctx.Freq))
	}
	apply(CriterionSum, s.scoreSum(c))
	apply(CriterionParity, s.scoreParity(c))
	if len(ctx.StrongPairs) > 0 {
		apply(CriterionStrongPairs, s.scoreStrongPairs(c, ctx.StrongPairs))
	}
	apply(CriterionSecondary, s.scoreSecondary(c))
	apply(CriterionConsecutive, s.scoreConsecutive(c))
	apply(CriterionDiversity, s.scoreDiversity(c))
	apply(CriterionFrame, s.scoreFrame(c))
	if len(ctx.Recent) > 0 {
		apply(CriterionRecurrence, s.scoreRecurrence(c, ctx.Recent))
	}
	if ctx.Baseline != nil {
		apply(CriterionAnomaly, s.scoreAnomaly(c, ctx.Baseline))
	}

	if totalWeight == 0 {
		return 0, breakdown
	}
	return totalScore / totalWeight, breakdown
}

// scoreRepeats is triangular over the acceptable repeat band, peaking
// at the midpoint and falling to zero outside.
func (s *Scorer) scoreRepeats(c game.Combination, prev game.Combination) float64 {
	r := c.Matches(prev)
	band := s.cfg.RepeatBand
	if !band.Contains(r) {
		return 0
	}
	return 1.0 - abs(float64(r)-band.Mid())/band.Width()
}

// scoreAbsents rewards including a few long-absent numerals.
func (s *Scorer) scoreAbsents(c game.Combination, freq *stats.FrequencyTable) float64 {
	count := 0
	for _, n := range freq.MostAbsent(stats.DefaultHotColdK) {
		if c.Contains(n) {
			count++
		}
	}
	switch {
	case s.cfg.AbsentFull.Contains(count):
		return 1.0
	case s.cfg.AbsentPartial.Contains(count):
		return 0.7
	default:
		return 0
	}
}

// scoreHotCold balances hot-set and cold-set membership. Never zero:
// the 0.5 floor keeps this criterion from vetoing a candidate alone.
func (s *Scorer) scoreHotCold(c game.Combination, freq *stats.FrequencyTable) float64 {
	hot, cold := 0, 0
	for _, n := range freq.Hot(stats.DefaultHotColdK) {
		if c.Contains(n) {
			hot++
		}
	}
	for _, n := range freq.Cold(stats.DefaultHotColdK) {
		if c.Contains(n) {
			cold++
		}
	}
	switch {
	case s.cfg.ColdFull.Contains(cold) && s.cfg.HotFull.Contains(hot):
		return 1.0
	case s.cfg.ColdPartial.Contains(cold) && s.cfg.HotPartial.Contains(hot):
		return 0.8
	default:
		return 0.5
	}
}

func (s *Scorer) scoreSum(c game.Combination) float64 {
	sum := c.Sum()
	switch {
	case s.cfg.SumCore.Contains(sum):
		return 1.0
	case s.cfg.SumAcceptable.Contains(sum):
		return 0.8
	default:
		return 0
	}
}

func (s *Scorer) scoreParity(c game.Combination) float64 {
	even := c.EvenCount()
	band := s.cfg.ParityBand
	if !band.Contains(even) {
		return 0
	}
	return 1.0 - abs(float64(even)-band.Mid())/band.Width()
}

func (s *Scorer) scoreStrongPairs(c game.Combination, pairs []stats.Pair) float64 {
	count := 0
	for _, p := range pairs {
		if c.Contains(p.A) && c.Contains(p.B) {
			count++
		}
	}
	switch {
	case s.cfg.StrongPairFull.Contains(count):
		return 1.0
	case s.cfg.StrongPairPartial.Contains(count):
		return 0.7
	default:
		return 0
	}
}

// scoreSecondary averages the prime, Fibonacci and multiple-of-3
// sub-criteria, each scored on an ideal band and a wider band.
func (s *Scorer) scoreSecondary(c game.Combination) float64 {
	bandScore := func(count int, ideal, wide Band) float64 {
		switch {
		case ideal.Contains(count):
			return 1.0
		case wide.Contains(count):
			return 0.5
		default:
			return 0
		}
	}
	total := bandScore(c.PrimeCount(), s.cfg.PrimeIdeal, s.cfg.PrimeWide) +
		bandScore(c.FibonacciCount(), s.cfg.FibIdeal, s.cfg.FibWide) +
		bandScore(c.MultipleOf3Count(), s.cfg.Mult3Ideal, s.cfg.Mult3Wide)
	return total / 3.0
}

func (s *Scorer) scoreConsecutive(c game.Combination) float64 {
	run := c.MaxRun()
	switch {
	case run <= s.cfg.MaxRunFull:
		return 1.0
	case run <= s.cfg.MaxRunPartial:
		return 0.5
	default:
		return 0
	}
}

// scoreDiversity rewards an even spread across the card, peaking at
// the historical mid density.
func (s *Scorer) scoreDiversity(c game.Combination) float64 {
	d := stats.Density(c)
	score := 1.0 - abs(d-0.5)/0.5
	if score < 0 {
		return 0
	}
	return score
}

func (s *Scorer) scoreFrame(c game.Combination) float64 {
	count := c.FrameCount()
	switch {
	case s.cfg.FrameFull.Contains(count):
		return 1.0
	case s.cfg.FramePartial.Contains(count):
		return 0.5
	default:
		return 0
	}
}

// scoreRecurrence penalizes near-copies of recent draws.
func (s *Scorer) scoreRecurrence(c game.Combination, recent []game.Combination) float64 {
	maxMatch := 0
	for _, prev := range recent {
		if m := c.Matches(prev); m > maxMatch {
			maxMatch = m
		}
	}
	switch {
	case maxMatch <= 9:
		return 1.0
	case maxMatch <= 11:
		return 0.5
	default:
		return 0
	}
}

// scoreAnomaly vetoes candidates whose feature deviation crosses the
// anomaly threshold.
func (s *Scorer) scoreAnomaly(c game.Combination, baseline *stats.Baseline) float64 {
	dev := baseline.DeviationScore(stats.Extract(c))
	if dev > s.cfg.AnomalyThreshold {
		return 0
	}
	return 1.0
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
