package game

// ============================================================================
// BOARD GEOMETRY (Canonical, never changes)
// ============================================================================

// Board dimensions for the 5x5 numeral grid
const (
	MinNumeral = 1
	MaxNumeral = 25
	DrawSize   = 15
	BoardRows  = 5
	BoardCols  = 5
)

// numeralSet is a membership table over the 1..25 range.
// Index 0 is unused so lookups can use the numeral directly.
type numeralSet [MaxNumeral + 1]bool

func newNumeralSet(values ...int) numeralSet {
	var s numeralSet
	for _, v := range values {
		s[v] = true
	}
	return s
}

var (
	// frameSet holds the 16 numerals on the border of the printed card
	frameSet = newNumeralSet(1, 2, 3, 4, 5, 6, 10, 11, 15, 16, 20, 21, 22, 23, 24, 25)

	// centerSet holds the 9 interior numerals
	centerSet = newNumeralSet(7, 8, 9, 12, 13, 14, 17, 18, 19)

	primeSet = newNumeralSet(2, 3, 5, 7, 11, 13, 17, 19, 23)

	fibonacciSet = newNumeralSet(1, 2, 3, 5, 8, 13, 21)

	multipleOf3Set = newNumeralSet(3, 6, 9, 12, 15, 18, 21, 24)
)

// IsFrame reports whether n sits on the border of the card.
func IsFrame(n int) bool { return n >= MinNumeral && n <= MaxNumeral && frameSet[n] }

// IsCenter reports whether n sits in the interior of the card.
func IsCenter(n int) bool { return n >= MinNumeral && n <= MaxNumeral && centerSet[n] }

// IsPrime reports whether n is one of the nine primes on the card.
func IsPrime(n int) bool { return n >= MinNumeral && n <= MaxNumeral && primeSet[n] }

// IsFibonacci reports whether n belongs to the Fibonacci sequence within range.
func IsFibonacci(n int) bool { return n >= MinNumeral && n <= MaxNumeral && fibonacciSet[n] }

// IsMultipleOf3 reports whether n is divisible by three.
func IsMultipleOf3(n int) bool { return n >= MinNumeral && n <= MaxNumeral && multipleOf3Set[n] }

// Row returns the zero-based card row for a numeral (0..4).
func Row(n int) int { return (n - 1) / BoardCols }

// Col returns the zero-based card column for a numeral (0..4).
func Col(n int) int { return (n - 1) % BoardCols }

// Quadrant maps a numeral to one of four card quadrants (0..3).
// The middle row and column fold into the lower/right quadrants.
func Quadrant(n int) int {
	q := 0
	if Row(n) >= 2 {
		q += 2
	}
	if Col(n) >= 2 {
		q++
	}
	return q
}

// AllNumerals returns the full 1..25 range in ascending order.
func AllNumerals() []int {
	out := make([]int, MaxNumeral)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
