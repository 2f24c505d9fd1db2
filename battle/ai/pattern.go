package ai

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"critterclash/battle"
)

const (
	// historyCap bounds the per-opponent FIFO of observed move slots.
	historyCap = 10
	// predictMinSamples is the observation floor below which no
	// prediction is offered.
	predictMinSamples = 3
	// opponentCap bounds how many opponents a learner tracks at once.
	// Tournament runs meet many opponents; stale ones are LRU-evicted.
	opponentCap = 64
)

// PatternLearner accumulates an opponent's chosen move slots and
// predicts the slot they favor. It is additive only: observations are
// appended, trimmed FIFO at capacity, and never rewritten.
//
// Not safe for concurrent use; each engine instance owns its learner.
type PatternLearner struct {
	histories *lru.Cache[string, []int]
}

// NewPatternLearner creates an empty learner.
func NewPatternLearner() *PatternLearner {
	cache, err := lru.New[string, []int](opponentCap)
	if err != nil {
		// lru.New only fails on a non-positive size.
		panic(err)
	}
	return &PatternLearner{histories: cache}
}

// Observe records the move slot of an opponent's action. Only attacks
// carry slot information; switches and forfeits are ignored.
func (l *PatternLearner) Observe(opponentID string, action battle.Action) {
	if action.Type != battle.ActionTypeAttack {
		return
	}
	hist, _ := l.histories.Get(opponentID)
	hist = append(hist, action.MoveIndex)
	if len(hist) > historyCap {
		hist = hist[len(hist)-historyCap:]
	}
	l.histories.Add(opponentID, hist)
}

// Predict returns the move slot the opponent has used most often, or
// false when fewer than predictMinSamples observations exist. Frequency
// ties resolve to the lowest slot so predictions are reproducible.
func (l *PatternLearner) Predict(opponentID string) (int, bool) {
	hist, ok := l.histories.Get(opponentID)
	if !ok || len(hist) < predictMinSamples {
		return 0, false
	}
	counts := make(map[int]int, len(hist))
	for _, slot := range hist {
		counts[slot]++
	}
	best, bestCount := 0, -1
	for slot, n := range counts {
		if n > bestCount || (n == bestCount && slot < best) {
			best, bestCount = slot, n
		}
	}
	return best, true
}

// HistoryLen reports how many observations are held for an opponent.
func (l *PatternLearner) HistoryLen(opponentID string) int {
	hist, _ := l.histories.Get(opponentID)
	return len(hist)
}
