package app

import (
	"context"

	"lotogen/domain/game"
	"lotogen/internal"
	"lotogen/ports"
)

// HistorySource yields draws from an external export. The Excel
// adapter is the production implementation.
type HistorySource interface {
	Read() (game.History, error)
}

// ImportResult summarizes one history import.
type ImportResult struct {
	Parsed  int `json:"parsed"`
	Saved   int `json:"saved"`
	Skipped int `json:"skipped"`
}

// ImportService loads external draw history into the draw store.
type ImportService struct {
	draws  ports.DrawStore
	logger *internal.Logger
}

// NewImportService wires the service.
func NewImportService(draws ports.DrawStore, logger *internal.Logger) *ImportService {
	return &ImportService{draws: draws, logger: logger}
}

// Import reads every draw from the source and appends the ones not
// already stored.
func (s *ImportService) Import(ctx context.Context, source HistorySource) (*ImportResult, error) {
	history, err := source.Read()
	if err != nil {
		return nil, err
	}

	saved, err := s.draws.SaveDraws(ctx, history)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{
		Parsed:  len(history),
		Saved:   saved,
		Skipped: len(history) - saved,
	}
	s.logger.Info("history import complete: parsed=%d saved=%d skipped=%d",
		result.Parsed, result.Saved, result.Skipped)
	return result, nil
}
