package testkit

import (
	"context"
	"sort"
	"sync"

	"lotogen/domain/anomaly"
	"lotogen/domain/core"
	"lotogen/domain/game"
	"lotogen/domain/scoring"
)

// ============================================================================
// IN-MEMORY PORT IMPLEMENTATIONS
// ============================================================================

// InMemoryDrawStore keeps draws in a map keyed by contest.
type InMemoryDrawStore struct {
	mu    sync.RWMutex
	draws map[int]game.Draw
}

func NewInMemoryDrawStore() *InMemoryDrawStore {
	return &InMemoryDrawStore{draws: make(map[int]game.Draw)}
}

// Seed loads a history directly, bypassing import semantics.
func (s *InMemoryDrawStore) Seed(history game.History) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range history {
		s.draws[d.Contest] = d
	}
}

func (s *InMemoryDrawStore) ListDraws(_ context.Context, limit int) (game.History, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make(game.History, 0, len(s.draws))
	for _, d := range s.draws {
		all = append(all, d)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Contest < all[j].Contest })
	if limit > 0 && len(all) > limit {
		all = all[len(all)-limit:]
	}
	return all, nil
}

func (s *InMemoryDrawStore) GetDraw(_ context.Context, contest int) (game.Draw, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.draws[contest]
	if !ok {
		return game.Draw{}, core.ErrDrawNotFound
	}
	return d, nil
}

func (s *InMemoryDrawStore) LatestDraw(ctx context.Context) (game.Draw, error) {
	all, err := s.ListDraws(ctx, 0)
	if err != nil {
		return game.Draw{}, err
	}
	return all.Latest()
}

func (s *InMemoryDrawStore) SaveDraws(_ context.Context, draws game.History) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	saved := 0
	for _, d := range draws {
		if _, exists := s.draws[d.Contest]; exists {
			continue
		}
		s.draws[d.Contest] = d
		saved++
	}
	return saved, nil
}

// InMemoryWeightStore keeps one weight vector plus learner state.
type InMemoryWeightStore struct {
	mu      sync.RWMutex
	weights scoring.WeightVector
	state   []byte
}

func NewInMemoryWeightStore() *InMemoryWeightStore {
	return &InMemoryWeightStore{}
}

func (s *InMemoryWeightStore) LoadWeights(_ context.Context) (scoring.WeightVector, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.weights == nil {
		return nil, core.ErrWeightsNotFound
	}
	return s.weights.Clone(), nil
}

func (s *InMemoryWeightStore) SaveWeights(_ context.Context, weights scoring.WeightVector) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weights = weights.Clone()
	return nil
}

func (s *InMemoryWeightStore) LoadLearnerState(_ context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return nil, nil
	}
	out := make([]byte, len(s.state))
	copy(out, s.state)
	return out, nil
}

func (s *InMemoryWeightStore) SaveLearnerState(_ context.Context, state []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = make([]byte, len(state))
	copy(s.state, state)
	return nil
}

// InMemoryLedger is an append-only slice of anomaly records.
type InMemoryLedger struct {
	mu      sync.RWMutex
	records []anomaly.Record
}

func NewInMemoryLedger() *InMemoryLedger {
	return &InMemoryLedger{}
}

func (l *InMemoryLedger) Append(_ context.Context, record anomaly.Record) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, record)
	return nil
}

func (l *InMemoryLedger) ListByCategory(_ context.Context, category anomaly.Category) ([]anomaly.Record, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []anomaly.Record
	for _, r := range l.records {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out, nil
}

func (l *InMemoryLedger) ListRecent(_ context.Context, limit int) ([]anomaly.Record, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	start := 0
	if limit > 0 && len(l.records) > limit {
		start = len(l.records) - limit
	}
	out := make([]anomaly.Record, len(l.records)-start)
	copy(out, l.records[start:])
	return out, nil
}

// Len reports how many records have been appended.
func (l *InMemoryLedger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// InMemoryGameStore keeps generated games keyed by ID.
type InMemoryGameStore struct {
	mu    sync.RWMutex
	games map[core.GameID]*game.Game
}

func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{games: make(map[core.GameID]*game.Game)}
}

func (s *InMemoryGameStore) SaveGames(_ context.Context, games []*game.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range games {
		clone := *g
		s.games[g.ID] = &clone
	}
	return nil
}

func (s *InMemoryGameStore) GetGame(_ context.Context, id core.GameID) (*game.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.games[id]
	if !ok {
		return nil, core.ErrGameNotFound
	}
	clone := *g
	return &clone, nil
}

func (s *InMemoryGameStore) ListPending(_ context.Context, targetContest int) ([]*game.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*game.Game
	for _, g := range s.games {
		if g.TargetContest == targetContest && g.Status == game.StatusPending {
			clone := *g
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *InMemoryGameStore) UpdateSettlement(_ context.Context, g *game.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[g.ID]; !ok {
		return core.ErrGameNotFound
	}
	clone := *g
	s.games[g.ID] = &clone
	return nil
}

func (s *InMemoryGameStore) ListBySession(_ context.Context, sessionID core.SessionID) ([]*game.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*game.Game
	for _, g := range s.games {
		if g.SessionID == sessionID {
			clone := *g
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
