package ai

import (
	"fmt"
	"testing"

	"critterclash/battle"
)

func TestPatternHistoryBounded(t *testing.T) {
	l := NewPatternLearner()
	for i := 0; i < 15; i++ {
		l.Observe("rival", battle.AttackAction(i%4, 0))
	}
	if got := l.HistoryLen("rival"); got != 10 {
		t.Fatalf("history length = %d, want 10 after FIFO trim", got)
	}
}

func TestPatternFIFODropsOldest(t *testing.T) {
	l := NewPatternLearner()
	// Ten observations of slot 3, then ten of slot 1: the first ten
	// must be fully evicted.
	for i := 0; i < 10; i++ {
		l.Observe("rival", battle.AttackAction(3, 0))
	}
	for i := 0; i < 10; i++ {
		l.Observe("rival", battle.AttackAction(1, 0))
	}
	slot, ok := l.Predict("rival")
	if !ok || slot != 1 {
		t.Fatalf("Predict = %d, %v; want 1, true", slot, ok)
	}
}

func TestPredictNeedsThreeObservations(t *testing.T) {
	l := NewPatternLearner()
	l.Observe("rival", battle.AttackAction(2, 0))
	l.Observe("rival", battle.AttackAction(2, 0))
	if _, ok := l.Predict("rival"); ok {
		t.Fatalf("Predict offered a read after only 2 observations")
	}
	l.Observe("rival", battle.AttackAction(2, 0))
	slot, ok := l.Predict("rival")
	if !ok || slot != 2 {
		t.Fatalf("Predict = %d, %v; want 2, true", slot, ok)
	}
}

func TestPredictIgnoresNonAttacks(t *testing.T) {
	l := NewPatternLearner()
	l.Observe("rival", battle.SwitchAction(1))
	l.Observe("rival", battle.ForfeitAction())
	if got := l.HistoryLen("rival"); got != 0 {
		t.Fatalf("non-attack actions were recorded: history length %d", got)
	}
}

func TestPredictMostFrequentWithDeterministicTie(t *testing.T) {
	l := NewPatternLearner()
	// Slots 2 and 0 tie at two uses each; the lower slot wins.
	for _, slot := range []int{2, 0, 2, 0} {
		l.Observe("rival", battle.AttackAction(slot, 0))
	}
	slot, ok := l.Predict("rival")
	if !ok || slot != 0 {
		t.Fatalf("tie-break Predict = %d, %v; want 0, true", slot, ok)
	}
}

func TestLearnerKeepsOpponentsSeparate(t *testing.T) {
	l := NewPatternLearner()
	for i := 0; i < 5; i++ {
		l.Observe("left", battle.AttackAction(0, 0))
		l.Observe("right", battle.AttackAction(3, 0))
	}
	if slot, _ := l.Predict("left"); slot != 0 {
		t.Fatalf("left prediction = %d, want 0", slot)
	}
	if slot, _ := l.Predict("right"); slot != 3 {
		t.Fatalf("right prediction = %d, want 3", slot)
	}
}

func TestLearnerEvictsStaleOpponents(t *testing.T) {
	l := NewPatternLearner()
	for i := 0; i < 5; i++ {
		l.Observe("first", battle.AttackAction(1, 0))
	}
	// Flood past the opponent cap; "first" becomes the LRU entry.
	for i := 0; i < opponentCap; i++ {
		l.Observe(fmt.Sprintf("opp-%d", i), battle.AttackAction(0, 0))
	}
	if got := l.HistoryLen("first"); got != 0 {
		t.Fatalf("stale opponent survived eviction with %d observations", got)
	}
}
