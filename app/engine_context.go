package app

import (
	"context"

	"lotogen/domain/game"
	"lotogen/domain/scoring"
	"lotogen/domain/stats"
	"lotogen/internal"
	"lotogen/internal/generator"
	"lotogen/ports"
)

// EngineContext is the per-round bundle of historical signals shared
// by generation, classification and reconciliation. Built once at the
// start of a round so every candidate sees the same snapshot.
type EngineContext struct {
	History  game.History
	Baseline stats.Baseline
	Freq     *stats.FrequencyTable
	PrevDraw game.Combination
	Recent   []game.Combination
}

// buildEngineContext loads history and derives the round's
// statistical context. An empty store is not an error: the baseline
// degrades to built-in priors and frequency-driven criteria drop out.
func buildEngineContext(ctx context.Context, draws ports.DrawStore, window int, logger *internal.Logger) (*EngineContext, error) {
	history, err := draws.ListDraws(ctx, 0)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		logger.Warn("draw history is empty, using built-in statistical defaults")
	}

	ec := &EngineContext{
		History:  history,
		Baseline: stats.ComputeBaseline(history),
	}

	if len(history) > 0 {
		ec.Freq = stats.ComputeFrequency(history, window)
		ec.PrevDraw = history[len(history)-1].Numerals
		for _, d := range history.Window(3) {
			ec.Recent = append(ec.Recent, d.Numerals)
		}
	}
	return ec, nil
}

// ScoringContext adapts the engine context for the fitness scorer.
func (ec *EngineContext) ScoringContext() scoring.Context {
	sc := scoring.Context{
		PrevDraw: ec.PrevDraw,
		Recent:   ec.Recent,
		Freq:     ec.Freq,
		Baseline: &ec.Baseline,
	}
	if ec.Freq != nil {
		sc.StrongPairs = ec.Freq.StrongPairs(stats.DefaultTopPairs)
	}
	return sc
}

// GenContext adapts the engine context for generation strategies.
func (ec *EngineContext) GenContext(weights scoring.WeightVector) generator.GenContext {
	return generator.GenContext{
		PrevDraw: ec.PrevDraw,
		Freq:     ec.Freq,
		Score:    ec.ScoringContext(),
		Weights:  weights,
	}
}
