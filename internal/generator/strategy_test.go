package generator

import (
	"math/rand"
	"testing"

	"lotogen/domain/core"
	"lotogen/domain/game"
	"lotogen/domain/stats"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func testGenContext() GenContext {
	history := game.History{}
	for i := 1; i <= 20; i++ {
		base := (i * 3) % 11
		numerals := make([]int, 0, game.DrawSize)
		for n := 1; n <= 25 && len(numerals) < game.DrawSize; n++ {
			if (n+base)%5 != 0 || len(numerals) >= 12 {
				numerals = append(numerals, n)
			}
		}
		history = append(history, game.MustNewDraw(i, core.Now(), numerals))
	}
	freq := stats.ComputeFrequency(history, 50)
	latest, _ := history.Latest()
	return GenContext{
		PrevDraw: latest.Numerals,
		Freq:     freq,
	}
}

func assertValidCombinations(t *testing.T, combos []game.Combination, want int) {
	t.Helper()
	if len(combos) != want {
		t.Fatalf("Expected %d combinations, got %d", want, len(combos))
	}
	for _, c := range combos {
		if len(c) != game.DrawSize {
			t.Errorf("Expected %d numerals, got %d: %v", game.DrawSize, len(c), c)
		}
		seen := make(map[int]bool, game.DrawSize)
		for _, n := range c {
			if n < game.MinNumeral || n > game.MaxNumeral {
				t.Errorf("Numeral %d out of range in %v", n, c)
			}
			if seen[n] {
				t.Errorf("Duplicate numeral %d in %v", n, c)
			}
			seen[n] = true
		}
	}
}

func TestParseStrategy(t *testing.T) {
	if got, ok := ParseStrategy(""); !ok || got != StrategyTiered {
		t.Errorf("Expected empty name to default to tiered, got %s", got)
	}
	if _, ok := ParseStrategy("quantum"); ok {
		t.Error("Expected unknown strategy to be rejected")
	}
}

func TestUniform_Generate(t *testing.T) {
	combos := Uniform{}.Generate(30, GenContext{}, testRand())
	assertValidCombinations(t, combos, 30)
}

func TestTiered_Generate(t *testing.T) {
	combos := Tiered{}.Generate(20, testGenContext(), testRand())
	assertValidCombinations(t, combos, 20)
}

func TestTiered_DegradesWithoutFrequency(t *testing.T) {
	// No frequency table at all: still exactly count valid outputs.
	combos := Tiered{}.Generate(30, GenContext{}, testRand())
	assertValidCombinations(t, combos, 30)
}

func TestEvolutionary_Generate(t *testing.T) {
	combos := Evolutionary{}.Generate(10, testGenContext(), testRand())
	assertValidCombinations(t, combos, 10)
}

func TestEvolutionary_EmptyContext(t *testing.T) {
	combos := Evolutionary{}.Generate(10, GenContext{}, testRand())
	assertValidCombinations(t, combos, 10)
}

func TestComplement_Backfills(t *testing.T) {
	c := complement([]int{1, 2, 3}, testRand())
	assertValidCombinations(t, []game.Combination{c}, 1)
	for _, n := range []int{1, 2, 3} {
		if !c.Contains(n) {
			t.Errorf("Expected seeded numeral %d to survive, got %v", n, c)
		}
	}
}

func TestComplement_DropsInvalidSeeds(t *testing.T) {
	c := complement([]int{0, 26, 5, 5, 7}, testRand())
	assertValidCombinations(t, []game.Combination{c}, 1)
	if !c.Contains(5) || !c.Contains(7) {
		t.Errorf("Expected valid seeds kept, got %v", c)
	}
}

func TestCrossover_ProducesValidChild(t *testing.T) {
	rng := testRand()
	p1 := game.MustNewCombination([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
	p2 := game.MustNewCombination([]int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25})

	for i := 0; i < 50; i++ {
		child := crossover(p1, p2, rng)
		assertValidCombinations(t, []game.Combination{child}, 1)
	}
}

func TestMutate_ProducesValidCombination(t *testing.T) {
	rng := testRand()
	c := game.MustNewCombination([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})

	for i := 0; i < 50; i++ {
		m := mutate(c, rng)
		assertValidCombinations(t, []game.Combination{m}, 1)
	}
}
