package generator

import (
	"context"
	"testing"

	"lotogen/domain/scoring"
	"lotogen/internal"
	"lotogen/internal/testkit"
)

func testGenerator(cfg PoolConfig) *Generator {
	scorer := scoring.NewScorer(scoring.DefaultConfig())
	logger := internal.NewLogger(internal.LogLevelError)
	return NewGenerator(scorer, testkit.FixedRNG{Seed: 42}, logger, cfg)
}

func TestGeneratePool_ExactCount(t *testing.T) {
	g := testGenerator(PoolConfig{PoolMultiplier: 2, MaxAttempts: 100, QualityFloor: 0.70})

	pool, err := g.GeneratePool(context.Background(), 10, StrategyTiered, testGenContext())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(pool) != 10 {
		t.Fatalf("Expected 10 candidates, got %d", len(pool))
	}
}

func TestGeneratePool_Deduplicated(t *testing.T) {
	g := testGenerator(PoolConfig{PoolMultiplier: 2, MaxAttempts: 100, QualityFloor: 0.70})

	pool, err := g.GeneratePool(context.Background(), 20, StrategyUniform, testGenContext())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	keys := make(map[string]bool, len(pool))
	for _, cand := range pool {
		key := cand.Combination.Key()
		if keys[key] {
			t.Errorf("Duplicate candidate %s in pool", key)
		}
		keys[key] = true
	}
}

func TestGeneratePool_RankedDescending(t *testing.T) {
	g := testGenerator(PoolConfig{PoolMultiplier: 2, MaxAttempts: 100, QualityFloor: 0.70})

	pool, err := g.GeneratePool(context.Background(), 15, StrategyTiered, testGenContext())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for i := 1; i < len(pool); i++ {
		if pool[i].Fitness > pool[i-1].Fitness {
			t.Errorf("Expected fitness descending, got %f before %f", pool[i-1].Fitness, pool[i].Fitness)
		}
	}
}

func TestGeneratePool_UnreachableFloorPadsFromReserve(t *testing.T) {
	// An impossible floor forces the best-effort path.
	g := testGenerator(PoolConfig{PoolMultiplier: 2, MaxAttempts: 3, QualityFloor: 1.1})

	pool, err := g.GeneratePool(context.Background(), 5, StrategyUniform, testGenContext())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(pool) != 5 {
		t.Errorf("Expected best-effort pool of 5, got %d", len(pool))
	}
}

func TestGeneratePool_InvalidCount(t *testing.T) {
	g := testGenerator(DefaultPoolConfig())

	if _, err := g.GeneratePool(context.Background(), 0, StrategyTiered, GenContext{}); err == nil {
		t.Error("Expected error for zero count")
	}
}

func TestGeneratePool_ContextCancelled(t *testing.T) {
	g := testGenerator(DefaultPoolConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := g.GeneratePool(ctx, 10, StrategyTiered, testGenContext()); err == nil {
		t.Error("Expected error for cancelled context")
	}
}

func TestGeneratePool_StrategyRecorded(t *testing.T) {
	g := testGenerator(PoolConfig{PoolMultiplier: 2, MaxAttempts: 100, QualityFloor: 0.70})

	pool, err := g.GeneratePool(context.Background(), 5, StrategyUniform, testGenContext())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, cand := range pool {
		if cand.Strategy != string(StrategyUniform) {
			t.Errorf("Expected strategy %s recorded, got %q", StrategyUniform, cand.Strategy)
		}
	}
}
