package game

import (
	"errors"
	"testing"

	"lotogen/domain/core"
)

func TestDraw_Repeats(t *testing.T) {
	prev := MustNewDraw(100, core.Now(), []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
	next := MustNewDraw(101, core.Now(), []int{7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21})

	if got := next.Repeats(prev); got != 9 {
		t.Errorf("Expected 9 repeats, got %d", got)
	}
}

func TestHistory_Latest(t *testing.T) {
	var empty History
	if _, err := empty.Latest(); !errors.Is(err, core.ErrEmptyHistory) {
		t.Errorf("Expected ErrEmptyHistory, got %v", err)
	}

	h := History{
		MustNewDraw(1, core.Now(), []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}),
		MustNewDraw(2, core.Now(), []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}),
	}
	latest, err := h.Latest()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if latest.Contest != 2 {
		t.Errorf("Expected latest contest 2, got %d", latest.Contest)
	}
}

func TestHistory_Window(t *testing.T) {
	h := make(History, 0, 10)
	for i := 1; i <= 10; i++ {
		h = append(h, MustNewDraw(i, core.Now(), []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}))
	}

	w := h.Window(3)
	if len(w) != 3 {
		t.Fatalf("Expected window of 3, got %d", len(w))
	}
	if w[0].Contest != 8 || w[2].Contest != 10 {
		t.Errorf("Expected contests 8..10, got %d..%d", w[0].Contest, w[2].Contest)
	}

	if len(h.Window(50)) != 10 {
		t.Errorf("Expected full history when window exceeds length")
	}
}

func TestHistory_Validate(t *testing.T) {
	ordered := History{
		MustNewDraw(1, core.Now(), []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}),
		MustNewDraw(5, core.Now(), []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}),
	}
	if err := ordered.Validate(); err != nil {
		t.Errorf("Expected gaps to be tolerated, got %v", err)
	}

	disordered := History{ordered[1], ordered[0]}
	if err := disordered.Validate(); err == nil {
		t.Error("Expected error for out-of-order history")
	}
}

func TestGame_Settle(t *testing.T) {
	numerals := MustNewCombination([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
	g, err := NewGame(core.NewSessionID(), 100, numerals, "tiered", 0.85)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if g.Status != StatusPending {
		t.Errorf("Expected pending status, got %s", g.Status)
	}

	// 11 shared numerals pays the first fixed tier.
	result := MustNewDraw(100, core.Now(), []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 16, 17, 18, 19})
	if err := g.Settle(result, DefaultPayouts()); err != nil {
		t.Fatalf("Unexpected settle error: %v", err)
	}
	if g.Hits != 11 {
		t.Errorf("Expected 11 hits, got %d", g.Hits)
	}
	if g.Prize != 6.0 {
		t.Errorf("Expected prize 6.0, got %.2f", g.Prize)
	}
	if g.Status != StatusSettled {
		t.Errorf("Expected settled status, got %s", g.Status)
	}
	if got := g.Net(DefaultStake); got != 3.0 {
		t.Errorf("Expected net 3.0, got %.2f", got)
	}
}

func TestGame_SettleWrongContest(t *testing.T) {
	numerals := MustNewCombination([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
	g, _ := NewGame(core.NewSessionID(), 100, numerals, "uniform", 0.8)

	result := MustNewDraw(101, core.Now(), []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
	if err := g.Settle(result, DefaultPayouts()); err == nil {
		t.Error("Expected error for contest mismatch")
	}
}

func TestGame_DoubleSettle(t *testing.T) {
	numerals := MustNewCombination([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
	g, _ := NewGame(core.NewSessionID(), 100, numerals, "uniform", 0.8)

	result := MustNewDraw(100, core.Now(), []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
	if err := g.Settle(result, DefaultPayouts()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := g.Settle(result, DefaultPayouts()); err == nil {
		t.Error("Expected error on second settle")
	}
}

func TestPayoutTable_Prize(t *testing.T) {
	p := DefaultPayouts()
	if got := p.Prize(10); got != 0 {
		t.Errorf("Expected zero prize below the first tier, got %.2f", got)
	}
	if got := p.Prize(15); got != 1800000.0 {
		t.Errorf("Expected top tier prize, got %.2f", got)
	}
}
