package ai

import (
	"critterclash/battle"
)

// Decider is the decision contract every AI trainer implements. One
// call produces one legal action for one participant from an immutable
// battle snapshot.
type Decider interface {
	// Decide is called when it's the trainer's turn.
	Decide(view battle.View, participant int) (battle.Action, error)
	// Name returns a human-readable identifier for debugging.
	Name() string
}
