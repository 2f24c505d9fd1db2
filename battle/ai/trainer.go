package ai

import (
	"github.com/rs/zerolog"

	"critterclash/battle"
	"critterclash/creature"
)

// GymLeader is a fixed-strategy specialization: expert selection,
// strategic scoring, and a rule bonus for moves aligned with the gym's
// specialty category.
type GymLeader struct {
	*Engine
	Specialty creature.Category
	GymLevel  int // advisory; reserved for scaling gym rosters
}

// NewGymLeader builds a gym leader around the base engine. The bonus
// stacks: +15 for a specialty move, +10 more when that move is also
// super-effective against the current defender.
func NewGymLeader(name string, specialty creature.Category, gymLevel int, seed int64, logger zerolog.Logger) (*GymLeader, error) {
	eng, err := NewEngine(Config{
		Name:        name,
		Difficulty:  DifficultyExpert,
		Personality: PersonalityStrategic,
		Seed:        seed,
	}, logger)
	if err != nil {
		return nil, err
	}
	g := &GymLeader{Engine: eng, Specialty: specialty, GymLevel: gymLevel}
	eng.SetOverride(func(move creature.Move, _ int, _, defender *creature.Creature) float64 {
		if move.Category != g.Specialty {
			return 0
		}
		bonus := 15.0
		if creature.Effectiveness(move.Category, defender.Categories) > 1 {
			bonus += 10
		}
		return bonus
	})
	return g, nil
}

// AdaptiveTrainer is the tournament specialization: advanced selection,
// strategic scoring, and an opponent pattern learner that nudges
// damaging moves once the adversary's habits are readable.
type AdaptiveTrainer struct {
	*Engine
	opponentID string // last opponent observed; scored against
}

// NewAdaptiveTrainer builds an adaptive trainer. Callers must feed the
// opponent's action after every turn through LearnFromOpponent.
func NewAdaptiveTrainer(name string, seed int64, logger zerolog.Logger) (*AdaptiveTrainer, error) {
	eng, err := NewEngine(Config{
		Name:        name,
		Difficulty:  DifficultyAdvanced,
		Personality: PersonalityStrategic,
		Seed:        seed,
	}, logger)
	if err != nil {
		return nil, err
	}
	eng.learner = NewPatternLearner()
	a := &AdaptiveTrainer{Engine: eng}
	eng.SetOverride(func(move creature.Move, _ int, _, _ *creature.Creature) float64 {
		if !move.IsDamaging() || a.opponentID == "" {
			return 0
		}
		// Counter prediction: once the opponent is readable, lean on
		// damage rather than setup.
		if _, ok := eng.Predict(a.opponentID); ok {
			return counterBonus
		}
		return 0
	})
	return a, nil
}

// LearnFromOpponent records the opponent's observed action and marks
// them as the adversary future scoring adapts against.
func (a *AdaptiveTrainer) LearnFromOpponent(opponentID string, action battle.Action) {
	a.opponentID = opponentID
	a.Engine.LearnFromOpponent(opponentID, action)
}
