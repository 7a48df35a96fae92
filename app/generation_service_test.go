package app

import (
	"context"
	"testing"

	"lotogen/domain/core"
	"lotogen/domain/game"
	"lotogen/domain/scoring"
	"lotogen/internal"
	"lotogen/internal/generator"
	"lotogen/internal/learning"
	"lotogen/internal/testkit"
)

func testServices(t *testing.T) (*GenerationService, *ReconcileService, *testkit.TestKit) {
	t.Helper()
	kit := testkit.NewTestKit()
	logger := internal.NewLogger(internal.LogLevelError)
	scorer := scoring.NewScorer(scoring.DefaultConfig())
	gen := generator.NewGenerator(scorer, kit.RNG, logger, generator.PoolConfig{
		PoolMultiplier: 2,
		MaxAttempts:    50,
		QualityFloor:   0.70,
	})

	genSvc := NewGenerationService(kit.Draws, kit.Weights, kit.Games, gen, logger, 50)
	recSvc := NewReconcileService(kit.Draws, kit.Weights, kit.Games, kit.RNG, logger, learning.DefaultConfig(), 50)
	return genSvc, recSvc, kit
}

// calmHistory builds n draws whose sums stay at or under the
// precursor floor, so no structural jump warning can fire.
func calmHistory(n int) game.History {
	shapes := [][]int{
		{1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23, 25, 2, 4},
		{1, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24, 3, 5},
		{1, 3, 4, 6, 7, 9, 10, 12, 13, 15, 16, 18, 19, 21, 22},
	}
	h := make(game.History, 0, n)
	for i := 1; i <= n; i++ {
		h = append(h, game.MustNewDraw(i, core.Now(), shapes[i%len(shapes)]))
	}
	return h
}

func TestGenerationService_EmptyHistory(t *testing.T) {
	svc, _, _ := testServices(t)

	// No history at all: generation still yields valid candidates for
	// contest 1 using built-in priors.
	result, err := svc.Generate(context.Background(), GenerateRequest{Count: 30})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(result.Candidates) != 30 {
		t.Fatalf("Expected 30 candidates, got %d", len(result.Candidates))
	}
	if result.TargetContest != 1 {
		t.Errorf("Expected target contest 1 with no history, got %d", result.TargetContest)
	}
	for _, cand := range result.Candidates {
		if len(cand.Combination) != game.DrawSize {
			t.Errorf("Expected %d numerals, got %d", game.DrawSize, len(cand.Combination))
		}
	}
}

func TestGenerationService_WithHistory(t *testing.T) {
	svc, _, kit := testServices(t)
	kit.Draws.Seed(testkit.SyntheticHistory(30, 7))

	result, err := svc.Generate(context.Background(), GenerateRequest{Count: 10, Strategy: "tiered"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.TargetContest != 31 {
		t.Errorf("Expected target contest 31, got %d", result.TargetContest)
	}
	// Candidates come back ranked.
	for i := 1; i < len(result.Candidates); i++ {
		if result.Candidates[i].Fitness > result.Candidates[i-1].Fitness {
			t.Errorf("Expected fitness descending at index %d", i)
		}
	}
}

func TestGenerationService_Persist(t *testing.T) {
	svc, _, kit := testServices(t)
	kit.Draws.Seed(testkit.SyntheticHistory(20, 7))

	result, err := svc.Generate(context.Background(), GenerateRequest{Count: 5, Persist: true})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	saved, err := kit.Games.ListBySession(context.Background(), result.SessionID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(saved) != 5 {
		t.Fatalf("Expected 5 persisted games, got %d", len(saved))
	}
	for _, g := range saved {
		if g.Status != game.StatusPending {
			t.Errorf("Expected pending status, got %s", g.Status)
		}
		if g.TargetContest != result.TargetContest {
			t.Errorf("Expected target contest %d, got %d", result.TargetContest, g.TargetContest)
		}
	}
}

func TestGenerationService_InvalidInputs(t *testing.T) {
	svc, _, _ := testServices(t)

	if _, err := svc.Generate(context.Background(), GenerateRequest{Count: 0}); err == nil {
		t.Error("Expected error for zero count")
	}
	if _, err := svc.Generate(context.Background(), GenerateRequest{Count: 5, Strategy: "quantum"}); err == nil {
		t.Error("Expected error for unknown strategy")
	}
	if _, err := svc.Generate(context.Background(), GenerateRequest{Count: 5, Mode: "brutal"}); err == nil {
		t.Error("Expected error for unknown mode")
	}
}

func TestGenerationService_AntiJumpModeShiftsWeights(t *testing.T) {
	svc, _, kit := testServices(t)
	// Calm history: sums at or under the precursor floor, so normal
	// mode keeps the persisted weights untouched.
	kit.Draws.Seed(calmHistory(5))

	normal, err := svc.Generate(context.Background(), GenerateRequest{Count: 5, Mode: "normal"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	anti, err := svc.Generate(context.Background(), GenerateRequest{Count: 5, Mode: "anti_jump"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if anti.Weights[scoring.CriterionConsecutive] >= normal.Weights[scoring.CriterionConsecutive] {
		t.Error("Expected anti-jump mode to lower the consecutive weight")
	}
	if anti.Weights[scoring.CriterionDiversity] <= normal.Weights[scoring.CriterionDiversity] {
		t.Error("Expected anti-jump mode to raise the diversity weight")
	}
}
