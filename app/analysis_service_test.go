package app

import (
	"context"
	"errors"
	"testing"

	"lotogen/domain/anomaly"
	"lotogen/domain/core"
	"lotogen/internal"
	"lotogen/internal/detector"
	"lotogen/internal/testkit"
)

func testAnalysis(t *testing.T) (*AnalysisService, *testkit.TestKit) {
	t.Helper()
	kit := testkit.NewTestKit()
	logger := internal.NewLogger(internal.LogLevelError)
	classifier := detector.NewClassifier(kit.Ledger, logger, 0.95)
	return NewAnalysisService(kit.Draws, classifier, logger, 50), kit
}

func TestAnalysisService_ClassifyInvalidInput(t *testing.T) {
	svc, _ := testAnalysis(t)

	_, err := svc.Classify(context.Background(), []int{1, 2, 3}, 0)
	if !errors.Is(err, core.ErrWrongSize) {
		t.Errorf("Expected ErrWrongSize, got %v", err)
	}
}

func TestAnalysisService_ClassifyNormal(t *testing.T) {
	svc, kit := testAnalysis(t)
	kit.Draws.Seed(testkit.SyntheticHistory(30, 7))

	result, err := svc.Classify(context.Background(), []int{2, 4, 5, 7, 9, 11, 13, 14, 16, 18, 19, 21, 23, 24, 25}, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Record.Category == "" {
		t.Error("Expected a populated record")
	}
}

func TestAnalysisService_ClassifyAnomalous(t *testing.T) {
	svc, kit := testAnalysis(t)
	kit.Draws.Seed(testkit.SyntheticHistory(30, 7))

	result, err := svc.Classify(context.Background(), []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.Anomalous {
		t.Error("Expected the packed card to classify as anomalous")
	}
	if result.Category == anomaly.CategoryNormal {
		t.Error("Expected a named anomaly category")
	}
	if kit.Ledger.Len() != 1 {
		t.Errorf("Expected one ledger record, got %d", kit.Ledger.Len())
	}
}

func TestAnalysisService_Snapshot(t *testing.T) {
	svc, kit := testAnalysis(t)
	kit.Draws.Seed(testkit.SyntheticHistory(30, 7))

	snap, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if snap.Temperature < 0 || snap.Temperature > 1 {
		t.Errorf("Expected temperature in [0, 1], got %f", snap.Temperature)
	}
}

func TestAnalysisService_BaselineEmptyStore(t *testing.T) {
	svc, _ := testAnalysis(t)

	baseline, err := svc.Baseline(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if baseline.SampleSize != 0 {
		t.Errorf("Expected prior baseline with zero samples, got %d", baseline.SampleSize)
	}
}

func TestValidateCombination(t *testing.T) {
	balanced := []int{1, 2, 3, 5, 8, 10, 12, 14, 17, 19, 20, 21, 23, 24, 25}

	outcome, err := ValidateCombination(balanced, ModeNormal)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !outcome.Valid {
		t.Errorf("Expected valid outcome, got violations %v", outcome.Violations)
	}

	packed := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	outcome, err = ValidateCombination(packed, ModeAntiJump)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if outcome.Valid {
		t.Error("Expected packed combination to violate the anti-jump profile")
	}
	if len(outcome.Violations) == 0 {
		t.Error("Expected violation messages")
	}

	if _, err := ValidateCombination([]int{1, 2, 3}, ModeNormal); !errors.Is(err, core.ErrWrongSize) {
		t.Errorf("Expected ErrWrongSize, got %v", err)
	}

	if _, err := ValidateCombination(balanced, GenerationMode("bogus")); err == nil {
		t.Error("Expected error for unknown mode")
	}
}
