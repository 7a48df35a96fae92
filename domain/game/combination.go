package game

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"lotogen/domain/core"
)

// ============================================================================
// COMBINATION (Canonical 15-of-25 selection)
// ============================================================================

// Combination is a sorted, duplicate-free selection of 15 numerals in 1..25.
// INVARIANTS:
// - Exactly DrawSize values
// - All values in [MinNumeral, MaxNumeral]
// - Strictly ascending (implies no duplicates)
type Combination []int

// NewCombination creates a validated combination from the given numerals.
// Input order does not matter; the result is always stored sorted.
func NewCombination(numerals []int) (Combination, error) {
	if len(numerals) != DrawSize {
		return nil, fmt.Errorf("%w: got %d values, want %d", core.ErrWrongSize, len(numerals), DrawSize)
	}

	c := make(Combination, DrawSize)
	copy(c, numerals)
	sort.Ints(c)

	for i, n := range c {
		if n < MinNumeral || n > MaxNumeral {
			return nil, fmt.Errorf("%w: %d", core.ErrOutOfRange, n)
		}
		if i > 0 && c[i-1] == n {
			return nil, fmt.Errorf("%w: %d", core.ErrDuplicateValue, n)
		}
	}
	return c, nil
}

// MustNewCombination creates a combination (panics on invalid input)
// Use only in tests and development - production code should handle validation errors
func MustNewCombination(numerals []int) Combination {
	c, err := NewCombination(numerals)
	if err != nil {
		panic(err)
	}
	return c
}

// Contains reports whether the combination includes n.
func (c Combination) Contains(n int) bool {
	i := sort.SearchInts(c, n)
	return i < len(c) && c[i] == n
}

// Matches counts numerals shared with another combination.
func (c Combination) Matches(other Combination) int {
	count := 0
	for _, n := range other {
		if c.Contains(n) {
			count++
		}
	}
	return count
}

// Sum returns the arithmetic sum of all numerals.
func (c Combination) Sum() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// EvenCount returns how many numerals are even.
func (c Combination) EvenCount() int {
	count := 0
	for _, n := range c {
		if n%2 == 0 {
			count++
		}
	}
	return count
}

// OddCount returns how many numerals are odd.
func (c Combination) OddCount() int { return DrawSize - c.EvenCount() }

// CountWhere returns how many numerals satisfy the predicate.
func (c Combination) CountWhere(pred func(int) bool) int {
	count := 0
	for _, n := range c {
		if pred(n) {
			count++
		}
	}
	return count
}

// PrimeCount returns how many numerals are prime.
func (c Combination) PrimeCount() int { return c.CountWhere(IsPrime) }

// FibonacciCount returns how many numerals are Fibonacci numbers.
func (c Combination) FibonacciCount() int { return c.CountWhere(IsFibonacci) }

// MultipleOf3Count returns how many numerals are divisible by three.
func (c Combination) MultipleOf3Count() int { return c.CountWhere(IsMultipleOf3) }

// FrameCount returns how many numerals sit on the card border.
func (c Combination) FrameCount() int { return c.CountWhere(IsFrame) }

// CenterCount returns how many numerals sit in the card interior.
func (c Combination) CenterCount() int { return c.CountWhere(IsCenter) }

// MaxRun returns the length of the longest stretch of consecutive numerals.
func (c Combination) MaxRun() int {
	if len(c) == 0 {
		return 0
	}
	longest, run := 1, 1
	for i := 1; i < len(c); i++ {
		if c[i] == c[i-1]+1 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}

// Blocks returns the maximal stretches of two or more consecutive numerals.
// Each block is reported as a slice of its member numerals in order.
func (c Combination) Blocks() [][]int {
	var blocks [][]int
	var current []int
	for i, n := range c {
		if i > 0 && n == c[i-1]+1 {
			current = append(current, n)
			continue
		}
		if len(current) >= 2 {
			blocks = append(blocks, current)
		}
		current = []int{n}
	}
	if len(current) >= 2 {
		blocks = append(blocks, current)
	}
	return blocks
}

// BlockCount returns how many consecutive blocks the combination contains.
func (c Combination) BlockCount() int { return len(c.Blocks()) }

// RowCounts returns per-row occupancy on the 5x5 card.
func (c Combination) RowCounts() [BoardRows]int {
	var counts [BoardRows]int
	for _, n := range c {
		counts[Row(n)]++
	}
	return counts
}

// ColCounts returns per-column occupancy on the 5x5 card.
func (c Combination) ColCounts() [BoardCols]int {
	var counts [BoardCols]int
	for _, n := range c {
		counts[Col(n)]++
	}
	return counts
}

// QuadrantCounts returns per-quadrant occupancy on the 5x5 card.
func (c Combination) QuadrantCounts() [4]int {
	var counts [4]int
	for _, n := range c {
		counts[Quadrant(n)]++
	}
	return counts
}

// Absent returns the ten numerals the combination does not include, ascending.
func (c Combination) Absent() []int {
	out := make([]int, 0, MaxNumeral-DrawSize)
	for n := MinNumeral; n <= MaxNumeral; n++ {
		if !c.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// Key returns a stable string form suitable for dedup maps ("01-02-...-25").
func (c Combination) Key() string {
	parts := make([]string, len(c))
	for i, n := range c {
		parts[i] = fmt.Sprintf("%02d", n)
	}
	return strings.Join(parts, "-")
}

// String formats the combination for logs and CLI output.
func (c Combination) String() string {
	parts := make([]string, len(c))
	for i, n := range c {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Clone returns an independent copy of the combination.
func (c Combination) Clone() Combination {
	out := make(Combination, len(c))
	copy(out, c)
	return out
}
