package learning

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"lotogen/domain/scoring"
	"lotogen/internal"
	"lotogen/internal/detector"
)

// ============================================================================
// ADAPTIVE WEIGHT LEARNING
// ============================================================================

// Config holds the temporal-difference learning parameters.
type Config struct {
	LearningRate   float64 `json:"learning_rate"`
	DiscountFactor float64 `json:"discount_factor"`
	Epsilon        float64 `json:"epsilon"`
	EpsilonDecay   float64 `json:"epsilon_decay"`
	EpsilonFloor   float64 `json:"epsilon_floor"`
}

// DefaultConfig returns the tuned learning parameters.
func DefaultConfig() Config {
	return Config{
		LearningRate:   0.1,
		DiscountFactor: 0.95,
		Epsilon:        0.15,
		EpsilonDecay:   0.995,
		EpsilonFloor:   0.01,
	}
}

// actionDeltas is the discrete per-criterion adjustment menu.
var actionDeltas = []float64{-0.1, 0, 0.1}

// Action maps each criterion to the delta chosen for it this episode.
type Action map[scoring.Criterion]float64

// State is the discretized context tuple. Bin indices, not raw
// values, so the value table stays small.
type State struct {
	Temperature int  `json:"temperature"`
	Alert       bool `json:"alert"`
	MeanHits    int  `json:"mean_hits"`
	Recurrence  int  `json:"recurrence"`
}

// Key renders the state for value-table lookup.
func (s State) Key() string {
	alert := 0
	if s.Alert {
		alert = 1
	}
	return fmt.Sprintf("t%d_a%d_h%d_r%d", s.Temperature, alert, s.MeanHits, s.Recurrence)
}

// Discretize bins a context snapshot into a learning state.
func Discretize(snap detector.Snapshot) State {
	return State{
		Temperature: binOf(snap.Temperature, []float64{0.3, 0.6}),
		Alert:       snap.PrecursorAlert,
		MeanHits:    binOf(snap.MeanHits, []float64{8, 10, 12, 14}),
		Recurrence:  binOf(snap.Recurrence, []float64{0.3, 0.6, 0.9}),
	}
}

// binOf returns the index of the first cut v falls under, or
// len(cuts) when it exceeds them all.
func binOf(v float64, cuts []float64) int {
	for i, cut := range cuts {
		if v < cut {
			return i
		}
	}
	return len(cuts)
}

// Adapter adjusts the scoring weight vector from observed outcomes
// with an epsilon-greedy, per-criterion value-update scheme.
type Adapter struct {
	cfg      Config
	qTable   map[string]float64 // stateKey|criterion|delta -> value estimate
	episodes int
	rng      *rand.Rand
	logger   *internal.Logger
}

// NewAdapter creates an adapter with an empty value table.
func NewAdapter(cfg Config, rng *rand.Rand, logger *internal.Logger) *Adapter {
	return &Adapter{
		cfg:    cfg,
		qTable: make(map[string]float64),
		rng:    rng,
		logger: logger,
	}
}

// Epsilon exposes the current exploration rate.
func (a *Adapter) Epsilon() float64 { return a.cfg.Epsilon }

// Episodes exposes how many feedback rounds have completed.
func (a *Adapter) Episodes() int { return a.episodes }

func qKey(stateKey string, crit scoring.Criterion, delta float64) string {
	return fmt.Sprintf("%s|%s|%+.1f", stateKey, crit, delta)
}

// ChooseAction picks a delta per criterion. With probability epsilon
// the whole action is random; otherwise each criterion independently
// takes its highest-valued delta for the current state.
func (a *Adapter) ChooseAction(state State) Action {
	action := make(Action, len(scoring.Criteria()))

	if a.rng.Float64() < a.cfg.Epsilon {
		for _, crit := range scoring.Criteria() {
			action[crit] = actionDeltas[a.rng.Intn(len(actionDeltas))]
		}
		return action
	}

	key := state.Key()
	for _, crit := range scoring.Criteria() {
		best := actionDeltas[0]
		bestQ := a.qTable[qKey(key, crit, best)]
		for _, delta := range actionDeltas[1:] {
			if q := a.qTable[qKey(key, crit, delta)]; q > bestQ {
				best, bestQ = delta, q
			}
		}
		action[crit] = best
	}
	return action
}

// Apply adds an action's deltas to a weight vector, clamped to the
// legal range. The input vector is not modified.
func Apply(weights scoring.WeightVector, action Action) scoring.WeightVector {
	out := weights.Clone()
	for crit, delta := range action {
		out.Apply(crit, delta)
	}
	return out
}

// Observe feeds one completed episode back into the value table using
// the standard temporal-difference rule per criterion, then decays
// epsilon toward its floor.
func (a *Adapter) Observe(state State, action Action, reward float64, next State) {
	stateKey := state.Key()
	nextKey := next.Key()

	for crit, delta := range action {
		key := qKey(stateKey, crit, delta)
		old := a.qTable[key]

		maxNext := a.qTable[qKey(nextKey, crit, actionDeltas[0])]
		for _, d := range actionDeltas[1:] {
			if q := a.qTable[qKey(nextKey, crit, d)]; q > maxNext {
				maxNext = q
			}
		}

		a.qTable[key] = old + a.cfg.LearningRate*(reward+a.cfg.DiscountFactor*maxNext-old)
	}

	a.episodes++
	a.cfg.Epsilon *= a.cfg.EpsilonDecay
	if a.cfg.Epsilon < a.cfg.EpsilonFloor {
		a.cfg.Epsilon = a.cfg.EpsilonFloor
	}

	a.logger.Debug("episode %d observed: reward=%.1f epsilon=%.4f table=%d entries",
		a.episodes, reward, a.cfg.Epsilon, len(a.qTable))
}

// rewardPoints maps hit counts to escalating reward points. Anything
// under the first paying tier is worthless to the learner too.
var rewardPoints = map[int]float64{
	11: 1,
	12: 3,
	13: 8,
	14: 20,
	15: 100,
}

// Reward scores a settled batch by its hit distribution.
func Reward(hits []int) float64 {
	total := 0.0
	for _, h := range hits {
		total += rewardPoints[h]
	}
	return total
}

// Anti-jump override factors. Applied deterministically when a
// precursor warning is active, bypassing the learned policy for that
// round only.
var antiJumpFactors = map[scoring.Criterion]float64{
	scoring.CriterionConsecutive: 0.6,
	scoring.CriterionRecurrence:  0.7,
	scoring.CriterionFrame:       1.2,
	scoring.CriterionDiversity:   1.5,
	scoring.CriterionAnomaly:     1.3,
}

// AntiJump returns a copy of the weights with the jump-defense
// factors applied and clamped.
func AntiJump(weights scoring.WeightVector) scoring.WeightVector {
	out := weights.Clone()
	for crit, factor := range antiJumpFactors {
		out.Scale(crit, factor)
	}
	return out
}

// persistedState is the serialized adapter snapshot.
type persistedState struct {
	Config   Config             `json:"config"`
	QTable   map[string]float64 `json:"q_table"`
	Episodes int                `json:"episodes"`
}

// Marshal serializes the adapter for the weight store.
func (a *Adapter) Marshal() ([]byte, error) {
	return json.Marshal(persistedState{
		Config:   a.cfg,
		QTable:   a.qTable,
		Episodes: a.episodes,
	})
}

// Restore replaces the adapter's learned state from a serialized
// snapshot. Empty input leaves the adapter untouched.
func (a *Adapter) Restore(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	var ps persistedState
	if err := json.Unmarshal(data, &ps); err != nil {
		return fmt.Errorf("restore learner state: %w", err)
	}
	a.cfg = ps.Config
	a.episodes = ps.Episodes
	if ps.QTable != nil {
		a.qTable = ps.QTable
	}
	return nil
}
