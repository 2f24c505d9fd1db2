package ai

import (
	"math/rand"

	"critterclash/creature"
)

// Personality biases move scoring toward an archetype's play style.
type Personality byte

const (
	PersonalityBalanced Personality = iota
	PersonalityAggressive
	PersonalityDefensive
	PersonalityStrategic
	PersonalityUnpredictable
)

var PersonalityDictionary = map[Personality]string{
	PersonalityBalanced:      "balanced",
	PersonalityAggressive:    "aggressive",
	PersonalityDefensive:     "defensive",
	PersonalityStrategic:     "strategic",
	PersonalityUnpredictable: "unpredictable",
}

func (p Personality) String() string {
	if s, ok := PersonalityDictionary[p]; ok {
		return s
	}
	return "balanced"
}

// ParsePersonality maps a personality name back to its enum value.
func ParsePersonality(name string) (Personality, bool) {
	for p, s := range PersonalityDictionary {
		if s == name {
			return p, true
		}
	}
	return PersonalityBalanced, false
}

// personalityBias returns the additive score delta for a move under the
// given personality. effectiveness is the precomputed type multiplier of
// the move against the current defender. The unpredictable archetype
// re-rolls its delta on every evaluation; that noise is the archetype.
func personalityBias(p Personality, move creature.Move, effectiveness float64, rng *rand.Rand) float64 {
	switch p {
	case PersonalityAggressive:
		delta := 0.0
		if move.Power > 80 {
			delta += 20
		}
		if move.IsStatus() {
			delta -= 15
		}
		return delta
	case PersonalityDefensive:
		delta := 0.0
		if move.IsStatus() {
			delta += 15
		}
		if move.HasEffect(creature.EffectHeal) {
			delta += 25
		}
		return delta
	case PersonalityStrategic:
		delta := 0.0
		if len(move.Effects) > 0 {
			delta += 15
		}
		if effectiveness > 1 {
			delta += 10
		}
		return delta
	case PersonalityUnpredictable:
		return rng.Float64()*30 - 15
	default: // balanced: explicit identity
		return 0
	}
}
