package ai

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"critterclash/battle"
)

// Engine produces one legal battle action per Decide call by scoring
// every usable move against weighted heuristics and handing the ranking
// to a difficulty-tiered selection policy. Specializations configure it
// through a ScoreOverride; there is no subclassing.
//
// An engine holds per-opponent pattern history, so one instance serves
// one battle (or one tournament run) and is not safe to share across
// concurrent battles.
type Engine struct {
	name        string
	difficulty  Difficulty
	personality Personality
	scorer      *MoveScorer
	learner     *PatternLearner
	rng         *rand.Rand
	hook        DecisionHook
	log         zerolog.Logger
}

// NewEngine creates an engine from a validated config. The logger may
// be zerolog.Nop() for silent operation.
func NewEngine(cfg Config, logger zerolog.Logger) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	return &Engine{
		name:        cfg.Name,
		difficulty:  cfg.Difficulty,
		personality: cfg.Personality,
		scorer:      NewMoveScorer(cfg.Personality, rng),
		rng:         rng,
		log:         logger.With().Str("trainer", cfg.Name).Logger(),
	}, nil
}

func (e *Engine) Name() string { return e.name }

// Difficulty returns the engine's selection tier.
func (e *Engine) Difficulty() Difficulty { return e.difficulty }

// Personality returns the engine's scoring archetype.
func (e *Engine) Personality() Personality { return e.personality }

// SetOverride installs a specialization scoring term.
func (e *Engine) SetOverride(override ScoreOverride) {
	e.scorer.Override = override
}

// DecisionHook observes every decision: the ranking the engine saw
// (nil for switches and forfeits) and the action it returned. Used by
// the trace recorder.
type DecisionHook func(participant int, ranked []ScoredMove, action battle.Action)

// SetDecisionHook installs a decision observer.
func (e *Engine) SetDecisionHook(hook DecisionHook) {
	e.hook = hook
}

func (e *Engine) emit(participant int, ranked []ScoredMove, action battle.Action) battle.Action {
	if e.hook != nil {
		e.hook(participant, ranked, action)
	}
	return action
}

// Decide implements Decider. Fainted actives delegate to the switch
// policy; otherwise infeasible moves are excluded, the rest scored and
// ranked, and the difficulty policy picks one. Forfeit falls out only
// when no legal attack or switch exists.
func (e *Engine) Decide(view battle.View, participant int) (battle.Action, error) {
	if participant < 0 || participant > 1 {
		return battle.Action{}, battle.ErrBadParticipant
	}

	team := view.Team(participant)
	if len(team.Members) == 0 {
		return battle.Action{}, battle.ErrEmptyRoster
	}
	active := team.ActiveCreature()
	if active == nil {
		return battle.Action{}, battle.ErrInvalidView(fmt.Sprintf("active slot %d out of range", team.Active))
	}

	if !active.Alive() {
		return e.emit(participant, nil, e.chooseSwitch(team)), nil
	}

	oppTeam := view.Team(battle.Opponent(participant))
	if len(oppTeam.Members) == 0 {
		return battle.Action{}, battle.ErrEmptyRoster
	}
	defender := oppTeam.ActiveCreature()
	if defender == nil {
		return battle.Action{}, battle.ErrInvalidView(fmt.Sprintf("opposing active slot %d out of range", oppTeam.Active))
	}

	// Hard-exclude moves the creature cannot pay for this turn. The
	// scorer's own penalty only matters for standalone ranking.
	ranked := make([]ScoredMove, 0, len(active.Moves))
	for i, move := range active.Moves {
		if !active.CanUse(move) {
			continue
		}
		ranked = append(ranked, e.scorer.Score(move, i, active, defender))
	}
	if len(ranked) == 0 {
		e.log.Debug().Msg("no usable moves, forfeiting")
		return e.emit(participant, nil, battle.ForfeitAction()), nil
	}

	// Stable sort keeps original move order on score ties, so a fixed
	// seed reproduces the exact decision.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	chosen := selectMove(e.difficulty, ranked, e.rng)
	e.log.Debug().
		Str("move", chosen.Move.Name).
		Int("slot", chosen.Index).
		Float64("score", chosen.Score).
		Str("rationale", chosen.Rationale).
		Msg("move selected")

	return e.emit(participant, ranked, battle.AttackAction(chosen.Index, oppTeam.Active)), nil
}

// chooseSwitch scans the reserves in order and brings in the first one
// still standing. No healthy reserve means the battle is lost.
func (e *Engine) chooseSwitch(team battle.TeamView) battle.Action {
	for i := range team.Members {
		if i == team.Active {
			continue
		}
		if team.Members[i].Alive() {
			e.log.Debug().Int("slot", i).Str("creature", team.Members[i].Name).Msg("switching in reserve")
			return battle.SwitchAction(i)
		}
	}
	e.log.Debug().Msg("no healthy reserve, forfeiting")
	return battle.ForfeitAction()
}

// LearnFromOpponent feeds an observed opponent action into the pattern
// learner. Engines without a learner ignore it.
func (e *Engine) LearnFromOpponent(opponentID string, action battle.Action) {
	if e.learner == nil {
		return
	}
	e.learner.Observe(opponentID, action)
}

// Predict exposes the learner's current read on an opponent, if any.
func (e *Engine) Predict(opponentID string) (int, bool) {
	if e.learner == nil {
		return 0, false
	}
	return e.learner.Predict(opponentID)
}

var _ Decider = (*Engine)(nil)
