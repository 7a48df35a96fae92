package testkit

import (
	"math/rand"

	"lotogen/domain/core"
	"lotogen/domain/game"
	"lotogen/ports"
)

// TestKit bundles in-memory adapters and deterministic fixtures so
// service and engine tests run without a database.
type TestKit struct {
	Draws   *InMemoryDrawStore
	Weights *InMemoryWeightStore
	Ledger  *InMemoryLedger
	Games   *InMemoryGameStore
	RNG     ports.RNG
}

// NewTestKit creates a kit with empty stores and a fixed-seed RNG.
func NewTestKit() *TestKit {
	return &TestKit{
		Draws:   NewInMemoryDrawStore(),
		Weights: NewInMemoryWeightStore(),
		Ledger:  NewInMemoryLedger(),
		Games:   NewInMemoryGameStore(),
		RNG:     FixedRNG{Seed: 42},
	}
}

// FixedRNG always derives streams from one base seed so tests are
// reproducible.
type FixedRNG struct {
	Seed int64
}

// Stream implements ports.RNG ignoring the caller's seed.
func (f FixedRNG) Stream(name string, _ int64) *rand.Rand {
	mix := f.Seed
	for _, r := range name {
		mix = mix*31 + int64(r)
	}
	return rand.New(rand.NewSource(mix))
}

// SyntheticHistory produces n plausible draws with ascending contest
// numbers starting at 1. Each draw is a random valid combination, so
// derived statistics are realistic without being curated.
func SyntheticHistory(n int, seed int64) game.History {
	rng := rand.New(rand.NewSource(seed))
	history := make(game.History, 0, n)
	for contest := 1; contest <= n; contest++ {
		pool := game.AllNumerals()
		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		draw := game.MustNewDraw(contest, core.Now(), pool[:game.DrawSize])
		history = append(history, draw)
	}
	return history
}
