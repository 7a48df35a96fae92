package game

import (
	"fmt"

	"lotogen/domain/core"
)

// ============================================================================
// HISTORICAL DRAWS
// ============================================================================

// Draw is one official result: a contest number, its date, and the
// fifteen numerals drawn.
type Draw struct {
	Contest  int              `json:"contest" db:"contest"`
	DrawnAt  core.Timestamp   `json:"drawn_at" db:"drawn_at"`
	Numerals Combination      `json:"numerals"`
}

// NewDraw creates a validated historical draw.
func NewDraw(contest int, drawnAt core.Timestamp, numerals []int) (Draw, error) {
	if contest <= 0 {
		return Draw{}, fmt.Errorf("contest must be positive, got %d", contest)
	}
	c, err := NewCombination(numerals)
	if err != nil {
		return Draw{}, fmt.Errorf("draw %d: %w", contest, err)
	}
	return Draw{Contest: contest, DrawnAt: drawnAt, Numerals: c}, nil
}

// MustNewDraw creates a draw (panics on invalid input)
// Use only in tests and development - production code should handle validation errors
func MustNewDraw(contest int, drawnAt core.Timestamp, numerals []int) Draw {
	d, err := NewDraw(contest, drawnAt, numerals)
	if err != nil {
		panic(err)
	}
	return d
}

// Repeats counts numerals shared with the preceding draw.
func (d Draw) Repeats(prev Draw) int {
	return d.Numerals.Matches(prev.Numerals)
}

// History is an ordered sequence of draws, oldest first.
type History []Draw

// Latest returns the most recent draw.
func (h History) Latest() (Draw, error) {
	if len(h) == 0 {
		return Draw{}, core.ErrEmptyHistory
	}
	return h[len(h)-1], nil
}

// Window returns the last n draws (or all of them when fewer exist),
// oldest first.
func (h History) Window(n int) History {
	if n >= len(h) {
		return h
	}
	return h[len(h)-n:]
}

// Validate checks ordering by contest number. Gaps are allowed, the
// import pipeline tolerates missing contests, but order must hold.
func (h History) Validate() error {
	for i := 1; i < len(h); i++ {
		if h[i].Contest <= h[i-1].Contest {
			return fmt.Errorf("history out of order: contest %d followed by %d",
				h[i-1].Contest, h[i].Contest)
		}
	}
	return nil
}
