package game

import (
	"fmt"

	"lotogen/domain/core"
)

// ============================================================================
// PLAYED GAMES (Tickets and settlement)
// ============================================================================

// DefaultStake is the cost of a single 15-numeral ticket.
const DefaultStake = 3.0

// PayoutTable maps hit counts to prize amounts. Hits below the first
// paying tier are worth nothing.
type PayoutTable map[int]float64

// DefaultPayouts reflects the standard fixed lower tiers plus the
// long-run average for the variable top tiers.
func DefaultPayouts() PayoutTable {
	return PayoutTable{
		11: 6.0,
		12: 12.0,
		13: 30.0,
		14: 2000.0,
		15: 1800000.0,
	}
}

// Prize returns the payout for a given hit count (zero when unlisted).
func (p PayoutTable) Prize(hits int) float64 {
	return p[hits]
}

// GameStatus tracks a ticket through its lifecycle.
type GameStatus string

const (
	StatusPending  GameStatus = "pending"  // Generated, target contest not yet drawn
	StatusSettled  GameStatus = "settled"  // Conferred against the official result
	StatusArchived GameStatus = "archived" // Kept for analysis only
)

// Game is a generated ticket bound to a target contest.
type Game struct {
	ID            core.GameID    `json:"id" db:"id"`
	SessionID     core.SessionID `json:"session_id" db:"session_id"`
	TargetContest int            `json:"target_contest" db:"target_contest"`
	Numerals      Combination    `json:"numerals"`
	Strategy      string         `json:"strategy" db:"strategy"`
	Score         float64        `json:"score" db:"score"`
	Status        GameStatus     `json:"status" db:"status"`
	Hits          int            `json:"hits" db:"hits"`
	Prize         float64        `json:"prize" db:"prize"`
	CreatedAt     core.Timestamp `json:"created_at" db:"created_at"`
	SettledAt     core.Timestamp `json:"settled_at,omitempty" db:"settled_at"`
}

// NewGame creates a pending game for a target contest.
func NewGame(sessionID core.SessionID, targetContest int, numerals Combination, strategy string, score float64) (*Game, error) {
	if targetContest <= 0 {
		return nil, fmt.Errorf("target contest must be positive, got %d", targetContest)
	}
	if len(numerals) != DrawSize {
		return nil, fmt.Errorf("%w: got %d values, want %d", core.ErrWrongSize, len(numerals), DrawSize)
	}
	return &Game{
		ID:            core.NewGameID(),
		SessionID:     sessionID,
		TargetContest: targetContest,
		Numerals:      numerals.Clone(),
		Strategy:      strategy,
		Score:         score,
		Status:        StatusPending,
		CreatedAt:     core.Now(),
	}, nil
}

// Settle confers the game against the official draw for its contest.
func (g *Game) Settle(result Draw, payouts PayoutTable) error {
	if g.Status == StatusSettled {
		return fmt.Errorf("game %s already settled", g.ID)
	}
	if result.Contest != g.TargetContest {
		return fmt.Errorf("game %s targets contest %d, got result for %d",
			g.ID, g.TargetContest, result.Contest)
	}
	g.Hits = g.Numerals.Matches(result.Numerals)
	g.Prize = payouts.Prize(g.Hits)
	g.Status = StatusSettled
	g.SettledAt = core.Now()
	return nil
}

// Net returns prize minus stake for a settled game.
func (g *Game) Net(stake float64) float64 {
	return g.Prize - stake
}
