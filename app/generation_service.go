package app

import (
	"context"
	"errors"
	"fmt"

	"lotogen/domain/core"
	"lotogen/domain/game"
	"lotogen/domain/scoring"
	"lotogen/internal"
	"lotogen/internal/detector"
	"lotogen/internal/generator"
	"lotogen/internal/learning"
	"lotogen/ports"
)

// GenerationMode selects how the weight vector is prepared for one
// round.
type GenerationMode string

const (
	// ModeNormal uses the persisted weights as-is, except that an
	// active precursor warning still forces the anti-jump override.
	ModeNormal GenerationMode = "normal"
	// ModeAntiJump always applies the jump-defense factors.
	ModeAntiJump GenerationMode = "anti_jump"
	// ModeAggressive leans harder on frequency signals.
	ModeAggressive GenerationMode = "aggressive"
)

// ParseMode validates a mode string, defaulting to normal.
func ParseMode(s string) (GenerationMode, bool) {
	switch GenerationMode(s) {
	case ModeNormal, ModeAntiJump, ModeAggressive:
		return GenerationMode(s), true
	case "":
		return ModeNormal, true
	default:
		return "", false
	}
}

// ConstraintsForMode maps a generation mode to its structural
// constraint profile.
func ConstraintsForMode(mode GenerationMode) game.Constraints {
	switch mode {
	case ModeAntiJump:
		return game.AntiJumpConstraints()
	case ModeAggressive:
		return game.AggressiveConstraints()
	default:
		return game.DefaultConstraints()
	}
}

// GenerateRequest describes one generation round.
type GenerateRequest struct {
	Count    int                    `json:"count"`
	Strategy generator.StrategyName `json:"strategy"`
	Mode     GenerationMode         `json:"mode"`
	Persist  bool                   `json:"persist"`
}

// GenerateResult is the outcome of one generation round.
type GenerateResult struct {
	SessionID     core.SessionID            `json:"session_id"`
	TargetContest int                       `json:"target_contest"`
	Strategy      generator.StrategyName    `json:"strategy"`
	Mode          GenerationMode            `json:"mode"`
	Candidates    []scoring.ScoredCandidate `json:"candidates"`
	Snapshot      detector.Snapshot         `json:"snapshot"`
	Weights       scoring.WeightVector      `json:"weights"`
	Constraints   game.Constraints          `json:"constraints"`
}

// GenerationService orchestrates one candidate generation round:
// context building, weight preparation, pool generation and optional
// persistence of the resulting games.
type GenerationService struct {
	draws   ports.DrawStore
	weights ports.WeightStore
	games   ports.GameStore
	gen     *generator.Generator
	logger  *internal.Logger
	window  int
}

// NewGenerationService wires the service from its collaborators.
func NewGenerationService(draws ports.DrawStore, weights ports.WeightStore, games ports.GameStore, gen *generator.Generator, logger *internal.Logger, window int) *GenerationService {
	return &GenerationService{
		draws:   draws,
		weights: weights,
		games:   games,
		gen:     gen,
		logger:  logger,
		window:  window,
	}
}

// Generate runs one round and returns ranked candidates. Structural
// input problems fail fast; missing history or weights degrade to
// defaults.
func (s *GenerationService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	if req.Count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", req.Count)
	}
	strategy, ok := generator.ParseStrategy(string(req.Strategy))
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownStrategy, req.Strategy)
	}
	mode, ok := ParseMode(string(req.Mode))
	if !ok {
		return nil, fmt.Errorf("unknown generation mode %q", req.Mode)
	}

	ec, err := buildEngineContext(ctx, s.draws, s.window, s.logger)
	if err != nil {
		return nil, err
	}
	snapshot := detector.Analyze(ec.History, ec.Freq, &ec.Baseline, 0)

	weights, err := s.loadWeights(ctx)
	if err != nil {
		return nil, err
	}
	weights = s.prepareWeights(weights, mode, snapshot)

	candidates, err := s.gen.GeneratePool(ctx, req.Count, strategy, ec.GenContext(weights))
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{
		SessionID:     core.NewSessionID(),
		TargetContest: s.targetContest(ec),
		Strategy:      strategy,
		Mode:          mode,
		Candidates:    candidates,
		Snapshot:      snapshot,
		Weights:       weights,
		Constraints:   ConstraintsForMode(mode),
	}

	if req.Persist {
		if err := s.persistGames(ctx, result); err != nil {
			return nil, err
		}
	}

	s.logger.Info("generation round complete: session=%s strategy=%s mode=%s count=%d target=%d",
		result.SessionID, strategy, mode, len(candidates), result.TargetContest)
	return result, nil
}

func (s *GenerationService) loadWeights(ctx context.Context) (scoring.WeightVector, error) {
	weights, err := s.weights.LoadWeights(ctx)
	if err != nil {
		if errors.Is(err, core.ErrWeightsNotFound) {
			s.logger.Warn("no persisted weights, starting from defaults")
			return scoring.DefaultWeights(), nil
		}
		return nil, err
	}
	return weights, nil
}

// prepareWeights snapshots the vector for the round and applies the
// mode adjustments. The stored vector is never mutated here.
func (s *GenerationService) prepareWeights(weights scoring.WeightVector, mode GenerationMode, snapshot detector.Snapshot) scoring.WeightVector {
	out := weights.Clone()
	switch mode {
	case ModeAntiJump:
		out = learning.AntiJump(out)
	case ModeAggressive:
		out.Scale(scoring.CriterionRepeats, 1.2)
		out.Scale(scoring.CriterionHotCold, 1.2)
		out.Scale(scoring.CriterionDiversity, 0.8)
	default:
		if snapshot.PrecursorAlert {
			s.logger.Info("precursor warning active, forcing anti-jump weight override")
			out = learning.AntiJump(out)
		}
	}
	return out
}

func (s *GenerationService) targetContest(ec *EngineContext) int {
	if len(ec.History) == 0 {
		return 1
	}
	return ec.History[len(ec.History)-1].Contest + 1
}

func (s *GenerationService) persistGames(ctx context.Context, result *GenerateResult) error {
	games := make([]*game.Game, 0, len(result.Candidates))
	for _, cand := range result.Candidates {
		g, err := game.NewGame(result.SessionID, result.TargetContest, cand.Combination, cand.Strategy, cand.Fitness)
		if err != nil {
			return err
		}
		games = append(games, g)
	}
	return s.games.SaveGames(ctx, games)
}
