package game

import "fmt"

// ============================================================================
// STRUCTURAL CONSTRAINTS
// ============================================================================

// Range is an inclusive integer interval.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether v falls inside the interval.
func (r Range) Contains(v int) bool { return v >= r.Min && v <= r.Max }

// Constraints bounds the statistical shape of a combination. They sit
// on top of the structural guarantees of NewCombination, so a
// Combination that fails Check is still well formed, just outside the
// configured profile.
type Constraints struct {
	Sum         Range `json:"sum"`
	Even        Range `json:"even"`
	Prime       Range `json:"prime"`
	Fibonacci   Range `json:"fibonacci"`
	MultipleOf3 Range `json:"multiple_of_3"`
	Frame       Range `json:"frame"`
	Center      Range `json:"center"`
	MaxRun      int   `json:"max_run"`
}

// DefaultConstraints returns the baseline profile used for normal
// generation rounds.
func DefaultConstraints() Constraints {
	return Constraints{
		Sum:         Range{Min: 180, Max: 235},
		Even:        Range{Min: 6, Max: 9},
		Prime:       Range{Min: 4, Max: 7},
		Fibonacci:   Range{Min: 3, Max: 6},
		MultipleOf3: Range{Min: 3, Max: 7},
		Frame:       Range{Min: 8, Max: 12},
		Center:      Range{Min: 3, Max: 7},
		MaxRun:      6,
	}
}

// AntiJumpConstraints tightens the run cap for rounds played right
// after a precursor alert.
func AntiJumpConstraints() Constraints {
	c := DefaultConstraints()
	c.MaxRun = 4
	return c
}

// AggressiveConstraints narrows the sum band to the historical core.
func AggressiveConstraints() Constraints {
	c := DefaultConstraints()
	c.Sum = Range{Min: 190, Max: 215}
	return c
}

// Check returns one message per violated bound. An empty slice means
// the combination fits the profile.
func (cs Constraints) Check(c Combination) []string {
	var out []string
	add := func(name string, v int, r Range) {
		if !r.Contains(v) {
			out = append(out, fmt.Sprintf("%s %d outside [%d,%d]", name, v, r.Min, r.Max))
		}
	}
	add("sum", c.Sum(), cs.Sum)
	add("even count", c.EvenCount(), cs.Even)
	add("prime count", c.PrimeCount(), cs.Prime)
	add("fibonacci count", c.FibonacciCount(), cs.Fibonacci)
	add("multiple-of-3 count", c.MultipleOf3Count(), cs.MultipleOf3)
	add("frame count", c.FrameCount(), cs.Frame)
	add("center count", c.CenterCount(), cs.Center)
	if run := c.MaxRun(); run > cs.MaxRun {
		out = append(out, fmt.Sprintf("max run %d exceeds %d", run, cs.MaxRun))
	}
	return out
}

// Satisfied reports whether the combination fits every bound.
func (cs Constraints) Satisfied(c Combination) bool { return len(cs.Check(c)) == 0 }
