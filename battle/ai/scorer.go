package ai

import (
	"fmt"
	"math/rand"
	"strings"

	"critterclash/creature"
)

// Scoring weights. Contributions are additive and only the final result
// is clamped, at zero.
const (
	powerWeight         = 0.5
	accuracyWeight      = 20.0
	effectivenessWeight = 30.0
	finisherBonus       = 25.0
	infeasiblePenalty   = -50.0

	finisherThreshold = 0.3 // defender health fraction below which lethal pressure pays
	counterBonus      = 5.0
)

// ScoredMove pairs a move with its desirability and a human-readable
// rationale for debugging and decision traces.
type ScoredMove struct {
	Move      creature.Move
	Index     int // slot within the attacker's move list
	Score     float64
	Rationale string
}

// ScoreOverride is an extra scoring term injected by a trainer
// specialization. It runs after the base contributions and before the
// zero floor.
type ScoreOverride func(move creature.Move, moveIndex int, attacker, defender *creature.Creature) float64

// MoveScorer turns one move into a ScoredMove against a concrete
// defender. It is stateless apart from the injected RNG, which only the
// unpredictable personality consumes.
type MoveScorer struct {
	Personality Personality
	Override    ScoreOverride
	rng         *rand.Rand
}

// NewMoveScorer creates a scorer for the given personality.
func NewMoveScorer(personality Personality, rng *rand.Rand) *MoveScorer {
	return &MoveScorer{Personality: personality, rng: rng}
}

// Score evaluates a single move. Infeasible moves (energy cost above
// current stamina) score with a heavy penalty so they sink in any
// standalone ranking; the engine additionally excludes them before
// ranking, so selection never reaches them.
func (s *MoveScorer) Score(move creature.Move, moveIndex int, attacker, defender *creature.Creature) ScoredMove {
	var parts []string

	score := float64(move.Power) * powerWeight
	parts = append(parts, fmt.Sprintf("power %.1f", score))

	acc := float64(move.Accuracy) / 100.0 * accuracyWeight
	score += acc
	parts = append(parts, fmt.Sprintf("accuracy %.1f", acc))

	effectiveness := creature.Effectiveness(move.Category, defender.Categories)
	eff := effectiveness * effectivenessWeight
	score += eff
	parts = append(parts, fmt.Sprintf("effectiveness x%.2f %.1f", effectiveness, eff))

	if defender.HealthFraction() < finisherThreshold && move.IsDamaging() {
		score += finisherBonus
		parts = append(parts, fmt.Sprintf("finisher +%.0f", finisherBonus))
	}

	if bias := personalityBias(s.Personality, move, effectiveness, s.rng); bias != 0 {
		score += bias
		parts = append(parts, fmt.Sprintf("%s %+.1f", s.Personality, bias))
	}

	if move.IsStatus() {
		if bonus := statusBonus(move, attacker, defender); bonus != 0 {
			score += bonus
			parts = append(parts, fmt.Sprintf("status +%.0f", bonus))
		}
	}

	if s.Override != nil {
		if extra := s.Override(move, moveIndex, attacker, defender); extra != 0 {
			score += extra
			parts = append(parts, fmt.Sprintf("override %+.1f", extra))
		}
	}

	if !attacker.CanUse(move) {
		score += infeasiblePenalty
		parts = append(parts, fmt.Sprintf("infeasible %.0f", infeasiblePenalty))
	}

	if score < 0 {
		score = 0
	}

	return ScoredMove{
		Move:      move,
		Index:     moveIndex,
		Score:     score,
		Rationale: strings.Join(parts, ", "),
	}
}

// statusBonus scores the secondary effects of a zero-power move.
// Effects sum independently; a multi-effect move collects every
// matching bonus.
func statusBonus(move creature.Move, attacker, defender *creature.Creature) float64 {
	bonus := 0.0
	for _, e := range move.Effects {
		switch e {
		case creature.EffectHeal:
			if attacker.HealthFraction() < 0.5 {
				bonus += 30
			}
		case creature.EffectAttackUp, creature.EffectDefenseUp, creature.EffectSpeedUp:
			bonus += 20
		case creature.EffectAttackDown, creature.EffectDefenseDown, creature.EffectSpeedDown:
			bonus += 15
		case creature.EffectPoison, creature.EffectBurn:
			// Chip damage is worth more against a healthy target.
			if defender.HealthFraction() > 0.5 {
				bonus += 25
			}
		case creature.EffectSleep, creature.EffectParalysis:
			bonus += 30
		}
	}
	return bonus
}
