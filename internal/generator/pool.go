package generator

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"lotogen/domain/game"
	"lotogen/domain/scoring"
	"lotogen/domain/stats"
	"lotogen/internal"
	"lotogen/ports"
)

// PoolConfig bounds one generation round.
type PoolConfig struct {
	PoolMultiplier int     // over-production factor per attempt
	MaxAttempts    int     // attempts before best-effort return
	QualityFloor   float64 // minimum normalized fitness to accept
	Workers        int     // parallel scoring goroutines (0 = NumCPU)
	Seed           int64   // 0 = time-based
}

// DefaultPoolConfig returns the tuned generation bounds.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		PoolMultiplier: 2,
		MaxAttempts:    10000,
		QualityFloor:   0.70,
	}
}

// Generator produces ranked, deduplicated candidate pools using a
// pluggable strategy.
type Generator struct {
	scorer *scoring.Scorer
	rng    ports.RNG
	logger *internal.Logger
	cfg    PoolConfig
}

// NewGenerator wires a generator from its collaborators.
func NewGenerator(scorer *scoring.Scorer, rng ports.RNG, logger *internal.Logger, cfg PoolConfig) *Generator {
	if cfg.PoolMultiplier < 1 {
		cfg.PoolMultiplier = 1
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Generator{scorer: scorer, rng: rng, logger: logger, cfg: cfg}
}

// strategyFor maps a name to its implementation.
func (g *Generator) strategyFor(name StrategyName) Strategy {
	switch name {
	case StrategyUniform:
		return Uniform{}
	case StrategyEvolutionary:
		return Evolutionary{Scorer: g.scorer, Logger: g.logger}
	default:
		return Tiered{}
	}
}

// GeneratePool produces exactly count scored candidates, ranked by
// fitness descending. Each attempt over-produces, scores the batch in
// parallel, and keeps unique candidates above the quality floor. When
// the attempt limit runs out before the floor is met, the best
// available candidates fill the remainder; the call never returns
// fewer than count unless the context is cancelled.
func (g *Generator) GeneratePool(ctx context.Context, count int, name StrategyName, gctx GenContext) ([]scoring.ScoredCandidate, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}
	strategy := g.strategyFor(name)
	rng := g.rng.Stream("pool-"+string(strategy.Name()), g.cfg.Seed)

	seen := make(map[string]bool)
	accepted := make([]scoring.ScoredCandidate, 0, count)
	var reserve []scoring.ScoredCandidate // unique but below the floor

	attempts := 0
	for len(accepted) < count && attempts < g.cfg.MaxAttempts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		attempts++

		batch := strategy.Generate(count*g.cfg.PoolMultiplier, gctx, rng)
		scored, err := g.scoreBatch(ctx, batch, gctx)
		if err != nil {
			return nil, err
		}

		for _, cand := range scored {
			key := cand.Combination.Key()
			if seen[key] {
				continue
			}
			seen[key] = true
			if cand.Fitness >= g.cfg.QualityFloor {
				accepted = append(accepted, cand)
			} else {
				reserve = append(reserve, cand)
			}
		}
	}

	if len(accepted) < count {
		g.logger.Warn("quality floor %.2f not reached after %d attempts, padding %d of %d from reserve",
			g.cfg.QualityFloor, attempts, count-len(accepted), count)
		scoring.RankCandidates(reserve, g.scorer.Config())
		need := count - len(accepted)
		if need > len(reserve) {
			need = len(reserve)
		}
		accepted = append(accepted, reserve[:need]...)
	}

	scoring.RankCandidates(accepted, g.scorer.Config())
	if len(accepted) > count {
		accepted = accepted[:count]
	}
	for i := range accepted {
		accepted[i].Strategy = string(strategy.Name())
	}
	return accepted, nil
}

// scoreBatch evaluates a batch concurrently. Scoring is pure, so the
// only shared state is the result slot per index.
func (g *Generator) scoreBatch(ctx context.Context, batch []game.Combination, gctx GenContext) ([]scoring.ScoredCandidate, error) {
	workers := g.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	weights := gctx.Weights
	if weights == nil {
		weights = scoring.DefaultWeights()
	}

	sem := semaphore.NewWeighted(int64(workers))
	out := make([]scoring.ScoredCandidate, len(batch))
	var wg sync.WaitGroup

	for i, c := range batch {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		wg.Add(1)
		go func(i int, c game.Combination) {
			defer wg.Done()
			defer sem.Release(1)
			fitness, breakdown := g.scorer.Score(c, weights, gctx.Score)
			out[i] = scoring.ScoredCandidate{
				Combination: c,
				Features:    stats.Extract(c),
				Fitness:     fitness,
				Breakdown:   breakdown,
			}
		}(i, c)
	}
	wg.Wait()
	return out, nil
}
