package detector

import (
	"lotogen/domain/game"
)

// Precursor thresholds. A structural jump warning requires all three
// conditions on every one of the last three draws.
const (
	precursorSumFloor  = 180
	precursorMinRun    = 4
	precursorMinBlocks = 3
	precursorMaxBlocks = 4
)

// DetectPrecursor reports a structural jump warning: unanimous
// agreement across exactly the last three combinations. Fewer than
// three always reports false; a 2-of-3 match is not enough.
func DetectPrecursor(recent []game.Combination) bool {
	if len(recent) < 3 {
		return false
	}
	for _, c := range recent[len(recent)-3:] {
		blocks := c.BlockCount()
		if c.Sum() <= precursorSumFloor ||
			c.MaxRun() < precursorMinRun ||
			blocks < precursorMinBlocks || blocks > precursorMaxBlocks {
			return false
		}
	}
	return true
}
