package app

import (
	"context"
	"errors"
	"fmt"

	"lotogen/domain/core"
	"lotogen/domain/game"
	"lotogen/domain/scoring"
	"lotogen/domain/stats"
	"lotogen/internal"
	"lotogen/internal/detector"
	"lotogen/internal/learning"
	"lotogen/ports"
)

// ReconcileResult summarizes one feedback round.
type ReconcileResult struct {
	Contest      int                  `json:"contest"`
	Settled      int                  `json:"settled"`
	Hits         map[int]int          `json:"hits"` // hit count -> games
	TotalPrize   float64              `json:"total_prize"`
	TotalStake   float64              `json:"total_stake"`
	Reward       float64              `json:"reward"`
	Weights      scoring.WeightVector `json:"weights"`
	Epsilon      float64              `json:"epsilon"`
	AntiJumpUsed bool                 `json:"anti_jump_used"`
}

// ReconcileService settles pending games against an official result
// and feeds the outcome back into weight adaptation.
type ReconcileService struct {
	draws   ports.DrawStore
	weights ports.WeightStore
	games   ports.GameStore
	logger  *internal.Logger
	learn   learning.Config
	rng     ports.RNG
	payouts game.PayoutTable
	stake   float64
	window  int
}

// NewReconcileService wires the service from its collaborators.
func NewReconcileService(draws ports.DrawStore, weights ports.WeightStore, games ports.GameStore, rng ports.RNG, logger *internal.Logger, learn learning.Config, window int) *ReconcileService {
	return &ReconcileService{
		draws:   draws,
		weights: weights,
		games:   games,
		logger:  logger,
		learn:   learn,
		rng:     rng,
		payouts: game.DefaultPayouts(),
		stake:   game.DefaultStake,
		window:  window,
	}
}

// Reconcile settles every pending game targeting the given contest,
// derives a reward from the hit distribution, updates the adaptive
// weights and persists both the vector and the learner state.
func (s *ReconcileService) Reconcile(ctx context.Context, contest int) (*ReconcileResult, error) {
	result, err := s.draws.GetDraw(ctx, contest)
	if err != nil {
		return nil, fmt.Errorf("contest %d has no official result yet: %w", contest, err)
	}

	pending, err := s.games.ListPending(ctx, contest)
	if err != nil {
		return nil, err
	}

	hits := make(map[int]int)
	hitList := make([]int, 0, len(pending))
	totalPrize := 0.0
	for _, g := range pending {
		if err := g.Settle(result, s.payouts); err != nil {
			return nil, err
		}
		if err := s.games.UpdateSettlement(ctx, g); err != nil {
			return nil, err
		}
		hits[g.Hits]++
		hitList = append(hitList, g.Hits)
		totalPrize += g.Prize
	}

	reward := learning.Reward(hitList)
	weights, epsilon, antiJump, err := s.adapt(ctx, contest, hitList, reward)
	if err != nil {
		return nil, err
	}

	out := &ReconcileResult{
		Contest:      contest,
		Settled:      len(pending),
		Hits:         hits,
		TotalPrize:   totalPrize,
		TotalStake:   float64(len(pending)) * s.stake,
		Reward:       reward,
		Weights:      weights,
		Epsilon:      epsilon,
		AntiJumpUsed: antiJump,
	}
	s.logger.Info("reconciliation complete: contest=%d settled=%d reward=%.1f prize=%.2f",
		contest, out.Settled, reward, totalPrize)
	return out, nil
}

// adapt runs one learning episode: state before the draw, the chosen
// action, observed reward, and the state after the draw.
func (s *ReconcileService) adapt(ctx context.Context, contest int, hitList []int, reward float64) (scoring.WeightVector, float64, bool, error) {
	weights, err := s.weights.LoadWeights(ctx)
	if err != nil {
		if !errors.Is(err, core.ErrWeightsNotFound) {
			return nil, 0, false, err
		}
		weights = scoring.DefaultWeights()
	}

	adapter := learning.NewAdapter(s.learn, s.rng.Stream("weight-adapter", 0), s.logger)
	if state, err := s.weights.LoadLearnerState(ctx); err != nil {
		return nil, 0, false, err
	} else if err := adapter.Restore(state); err != nil {
		s.logger.Warn("discarding unreadable learner state: %v", err)
	}

	before, after, err := s.episodeStates(ctx, contest, hitList)
	if err != nil {
		return nil, 0, false, err
	}

	action := adapter.ChooseAction(before)
	newWeights := learning.Apply(weights, action)

	antiJump := after.Alert
	if antiJump {
		s.logger.Info("precursor warning after contest %d, applying anti-jump override", contest)
		newWeights = learning.AntiJump(newWeights)
	}

	adapter.Observe(before, action, reward, after)

	if err := s.weights.SaveWeights(ctx, newWeights); err != nil {
		return nil, 0, false, err
	}
	learnerState, err := adapter.Marshal()
	if err != nil {
		return nil, 0, false, err
	}
	if err := s.weights.SaveLearnerState(ctx, learnerState); err != nil {
		return nil, 0, false, err
	}

	return newWeights, adapter.Epsilon(), antiJump, nil
}

// episodeStates discretizes the context just before and just after
// the settled contest.
func (s *ReconcileService) episodeStates(ctx context.Context, contest int, hitList []int) (learning.State, learning.State, error) {
	history, err := s.draws.ListDraws(ctx, 0)
	if err != nil {
		return learning.State{}, learning.State{}, err
	}

	var before game.History
	for _, d := range history {
		if d.Contest < contest {
			before = append(before, d)
		}
	}
	var after game.History
	for _, d := range history {
		if d.Contest <= contest {
			after = append(after, d)
		}
	}

	meanHits := 0.0
	if len(hitList) > 0 {
		total := 0
		for _, h := range hitList {
			total += h
		}
		meanHits = float64(total) / float64(len(hitList))
	}

	beforeState := learning.Discretize(snapshotOf(before, s.window, meanHits))
	afterState := learning.Discretize(snapshotOf(after, s.window, meanHits))
	return beforeState, afterState, nil
}

func snapshotOf(history game.History, window int, meanHits float64) detector.Snapshot {
	baseline := stats.ComputeBaseline(history)
	var freq *stats.FrequencyTable
	if len(history) > 0 {
		freq = stats.ComputeFrequency(history, window)
	}
	return detector.Analyze(history, freq, &baseline, meanHits)
}
