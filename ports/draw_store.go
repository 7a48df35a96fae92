package ports

import (
	"context"

	"lotogen/domain/game"
)

// DrawStore provides read access to the official draw history.
// The engine treats history as append-only input; only import tooling
// writes to it.
type DrawStore interface {
	// ListDraws returns draws ordered by contest ascending, at most
	// limit entries counted back from the most recent (0 = all).
	ListDraws(ctx context.Context, limit int) (game.History, error)

	// GetDraw retrieves one draw by contest number.
	GetDraw(ctx context.Context, contest int) (game.Draw, error)

	// LatestDraw returns the most recent draw.
	LatestDraw(ctx context.Context) (game.Draw, error)

	// SaveDraws appends imported draws, skipping contests already
	// present. Used only by the history import pipeline.
	SaveDraws(ctx context.Context, draws game.History) (int, error)
}
