package app

import (
	"context"
	"fmt"

	"lotogen/domain/game"
	"lotogen/domain/stats"
	"lotogen/internal"
	"lotogen/internal/detector"
	"lotogen/ports"
)

// AnalysisService exposes classification and context inspection over
// the current draw history.
type AnalysisService struct {
	draws      ports.DrawStore
	classifier *detector.Classifier
	logger     *internal.Logger
	window     int
}

// NewAnalysisService wires the service from its collaborators.
func NewAnalysisService(draws ports.DrawStore, classifier *detector.Classifier, logger *internal.Logger, window int) *AnalysisService {
	return &AnalysisService{draws: draws, classifier: classifier, logger: logger, window: window}
}

// Classify validates the numerals and labels them against the
// baseline derived from stored history. Contest zero means the input
// is a candidate rather than an official draw.
func (s *AnalysisService) Classify(ctx context.Context, numerals []int, contest int) (detector.Result, error) {
	c, err := game.NewCombination(numerals)
	if err != nil {
		return detector.Result{}, err
	}

	ec, err := buildEngineContext(ctx, s.draws, s.window, s.logger)
	if err != nil {
		return detector.Result{}, err
	}

	sig := detector.Signals(c, ec.PrevDraw, ec.Freq)
	precursor := detector.DetectPrecursor(ec.Recent)
	return s.classifier.Classify(ctx, c, contest, &ec.Baseline, sig, precursor)
}

// ValidationOutcome reports how a combination fits a constraint
// profile.
type ValidationOutcome struct {
	Mode       GenerationMode `json:"mode"`
	Valid      bool           `json:"valid"`
	Violations []string       `json:"violations,omitempty"`
}

// ValidateCombination checks the numerals against the constraint
// profile of the given generation mode. It needs no stored history.
func ValidateCombination(numerals []int, mode GenerationMode) (ValidationOutcome, error) {
	c, err := game.NewCombination(numerals)
	if err != nil {
		return ValidationOutcome{}, err
	}
	m, ok := ParseMode(string(mode))
	if !ok {
		return ValidationOutcome{}, fmt.Errorf("unknown generation mode %q", mode)
	}
	violations := ConstraintsForMode(m).Check(c)
	return ValidationOutcome{Mode: m, Valid: len(violations) == 0, Violations: violations}, nil
}

// Snapshot returns the current regime summary.
func (s *AnalysisService) Snapshot(ctx context.Context) (detector.Snapshot, error) {
	ec, err := buildEngineContext(ctx, s.draws, s.window, s.logger)
	if err != nil {
		return detector.Snapshot{}, err
	}
	return detector.Analyze(ec.History, ec.Freq, &ec.Baseline, 0), nil
}

// Baseline returns the feature moments over stored history.
func (s *AnalysisService) Baseline(ctx context.Context) (stats.Baseline, error) {
	ec, err := buildEngineContext(ctx, s.draws, s.window, s.logger)
	if err != nil {
		return stats.Baseline{}, err
	}
	return ec.Baseline, nil
}
