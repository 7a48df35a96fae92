package stats

import (
	"sort"

	"lotogen/domain/game"
)

// ============================================================================
// FREQUENCY AND GAP TABLES
// ============================================================================

const (
	// DefaultWindow is how many recent draws feed the frequency table.
	DefaultWindow = 50

	// DefaultHotColdK is how many numerals the hot and cold sets carry.
	DefaultHotColdK = 8

	// DefaultTopPairs is how many co-occurring pairs count as strong.
	DefaultTopPairs = 10
)

// FrequencyTable aggregates appearance counts, absence streaks and
// pair co-occurrence over a window of recent draws.
type FrequencyTable struct {
	Window int
	counts [game.MaxNumeral + 1]int
	gaps   [game.MaxNumeral + 1]int
	pairs  [game.MaxNumeral + 1][game.MaxNumeral + 1]int
}

// ComputeFrequency builds the table from the last `window` draws.
// With an empty history every count is zero and every gap is the
// window size.
func ComputeFrequency(history game.History, window int) *FrequencyTable {
	if window <= 0 {
		window = DefaultWindow
	}
	recent := history.Window(window)

	t := &FrequencyTable{Window: len(recent)}
	for n := game.MinNumeral; n <= game.MaxNumeral; n++ {
		t.gaps[n] = len(recent)
	}

	for i, draw := range recent {
		for _, n := range draw.Numerals {
			t.counts[n]++
			// Gap counts draws since the last appearance.
			t.gaps[n] = len(recent) - 1 - i
		}
		for j, a := range draw.Numerals {
			for _, b := range draw.Numerals[j+1:] {
				t.pairs[a][b]++
			}
		}
	}
	return t
}

// Count returns how often n appeared in the window.
func (t *FrequencyTable) Count(n int) int {
	if n < game.MinNumeral || n > game.MaxNumeral {
		return 0
	}
	return t.counts[n]
}

// Gap returns how many draws have passed since n last appeared.
func (t *FrequencyTable) Gap(n int) int {
	if n < game.MinNumeral || n > game.MaxNumeral {
		return 0
	}
	return t.gaps[n]
}

// PairCount returns how often numerals a and b appeared together.
func (t *FrequencyTable) PairCount(a, b int) int {
	if a > b {
		a, b = b, a
	}
	if a < game.MinNumeral || b > game.MaxNumeral {
		return 0
	}
	return t.pairs[a][b]
}

// ranked returns all numerals ordered by count descending, ties
// broken by numeral ascending so the ordering is deterministic.
func (t *FrequencyTable) ranked() []int {
	out := game.AllNumerals()
	sort.SliceStable(out, func(i, j int) bool {
		return t.counts[out[i]] > t.counts[out[j]]
	})
	return out
}

// Hot returns the k most frequent numerals.
func (t *FrequencyTable) Hot(k int) []int {
	r := t.ranked()
	if k > len(r) {
		k = len(r)
	}
	return r[:k]
}

// Cold returns the k least frequent numerals.
func (t *FrequencyTable) Cold(k int) []int {
	r := t.ranked()
	if k > len(r) {
		k = len(r)
	}
	cold := make([]int, k)
	for i := 0; i < k; i++ {
		cold[i] = r[len(r)-1-i]
	}
	return cold
}

// Ranked returns every numeral ordered hot to cold. Tier-based
// generation slices this into hot, warm and cold bands.
func (t *FrequencyTable) Ranked() []int { return t.ranked() }

// Pair is a co-occurring numeral pair with its count.
type Pair struct {
	A, B  int
	Count int
}

// StrongPairs returns the k most frequent co-occurring pairs.
func (t *FrequencyTable) StrongPairs(k int) []Pair {
	all := make([]Pair, 0, 300)
	for a := game.MinNumeral; a <= game.MaxNumeral; a++ {
		for b := a + 1; b <= game.MaxNumeral; b++ {
			if t.pairs[a][b] > 0 {
				all = append(all, Pair{A: a, B: b, Count: t.pairs[a][b]})
			}
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		if all[i].A != all[j].A {
			return all[i].A < all[j].A
		}
		return all[i].B < all[j].B
	})
	if k > len(all) {
		k = len(all)
	}
	return all[:k]
}

// MostAbsent returns the k numerals with the longest absence streaks.
func (t *FrequencyTable) MostAbsent(k int) []int {
	out := game.AllNumerals()
	sort.SliceStable(out, func(i, j int) bool {
		return t.gaps[out[i]] > t.gaps[out[j]]
	})
	if k > len(out) {
		k = len(out)
	}
	return out[:k]
}

// Temperature measures how hot the latest draw ran: the share of its
// numerals that belong to the hot set, in [0, 1].
func (t *FrequencyTable) Temperature(latest game.Combination) float64 {
	hot := make(map[int]bool, DefaultHotColdK)
	for _, n := range t.Hot(DefaultHotColdK) {
		hot[n] = true
	}
	count := 0
	for _, n := range latest {
		if hot[n] {
			count++
		}
	}
	if len(latest) == 0 {
		return 0
	}
	return float64(count) / float64(len(latest))
}
