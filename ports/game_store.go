package ports

import (
	"context"

	"lotogen/domain/core"
	"lotogen/domain/game"
)

// GameStore persists generated tickets so a later reconciliation
// round can settle them against the official result.
type GameStore interface {
	// SaveGames stores a batch of freshly generated games.
	SaveGames(ctx context.Context, games []*game.Game) error

	// GetGame retrieves one game by ID.
	GetGame(ctx context.Context, id core.GameID) (*game.Game, error)

	// ListPending returns unsettled games targeting the given contest.
	ListPending(ctx context.Context, targetContest int) ([]*game.Game, error)

	// UpdateSettlement writes hits, prize and status after conferral.
	UpdateSettlement(ctx context.Context, g *game.Game) error

	// ListBySession returns every game generated in one session.
	ListBySession(ctx context.Context, sessionID core.SessionID) ([]*game.Game, error)
}
