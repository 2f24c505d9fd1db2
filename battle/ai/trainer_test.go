package ai

import (
	"testing"

	"github.com/rs/zerolog"

	"critterclash/battle"
	"critterclash/creature"
)

func TestGymLeaderSpecialtyBonusReordersRanking(t *testing.T) {
	// Against a volcano defender both moves are super-effective, and
	// the stronger mountain move wins on raw score. An ocean gym
	// leader's +25 specialty lift flips the ranking.
	attacker := *testAttacker()
	attacker.Moves = []creature.Move{
		{Name: "Boulder Drop", Category: creature.CategoryMountain, Power: 80, Accuracy: 100, Energy: 10},
		{Name: "Tide Crush", Category: creature.CategoryOcean, Power: 70, Accuracy: 100, Energy: 10},
	}
	defender := *testDefender()
	defender.Categories = []creature.Category{creature.CategoryVolcano}
	view := matchupView(attacker, defender)

	leader, err := NewGymLeader("Marina", creature.CategoryOcean, 3, 1, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewGymLeader: %v", err)
	}
	if leader.Difficulty() != DifficultyExpert || leader.Personality() != PersonalityStrategic {
		t.Fatalf("gym leader config = %s/%s, want expert/strategic", leader.Difficulty(), leader.Personality())
	}

	var ranked []ScoredMove
	leader.SetDecisionHook(func(_ int, r []ScoredMove, _ battle.Action) { ranked = r })
	if _, err := leader.Decide(view, 0); err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if len(ranked) != 2 || ranked[0].Move.Name != "Tide Crush" {
		t.Fatalf("ocean specialty did not lift Tide Crush: ranking %+v", ranked)
	}

	delta := ranked[0].Score - ranked[1].Score
	// Boulder Drop: 40+20+60, +10 strategic super-effective = 130.
	// Tide Crush: 35+20+60, +10 strategic, +15 specialty, +10 gym
	// super-effective = 150.
	if delta != 20 {
		t.Fatalf("specialty delta = %v, want 20", delta)
	}
}

func TestGymLeaderBonusSkipsOffSpecialtyMoves(t *testing.T) {
	attacker := *testAttacker()
	attacker.Moves = []creature.Move{
		{Name: "Vine Lash", Category: creature.CategoryForest, Power: 60, Accuracy: 100, Energy: 10},
	}
	view := matchupView(attacker, *testDefender())

	leader, err := NewGymLeader("Marina", creature.CategoryOcean, 3, 1, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewGymLeader: %v", err)
	}
	plain := newTestEngine(t, DifficultyExpert, PersonalityStrategic, 1)

	var leaderRanked, plainRanked []ScoredMove
	leader.SetDecisionHook(func(_ int, r []ScoredMove, _ battle.Action) { leaderRanked = r })
	plain.SetDecisionHook(func(_ int, r []ScoredMove, _ battle.Action) { plainRanked = r })
	if _, err := leader.Decide(view, 0); err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if _, err := plain.Decide(view, 0); err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if leaderRanked[0].Score != plainRanked[0].Score {
		t.Fatalf("off-specialty move scored %v under the gym leader, %v plain",
			leaderRanked[0].Score, plainRanked[0].Score)
	}
}

func TestAdaptiveCounterBonusNeedsPrediction(t *testing.T) {
	attacker := *testAttacker()
	attacker.Moves = []creature.Move{
		{Name: "Magma Burst", Category: creature.CategoryVolcano, Power: 90, Accuracy: 100, Energy: 10},
	}
	view := matchupView(attacker, *testDefender())

	trainer, err := NewAdaptiveTrainer("Sable", 1, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewAdaptiveTrainer: %v", err)
	}
	if trainer.Difficulty() != DifficultyAdvanced || trainer.Personality() != PersonalityStrategic {
		t.Fatalf("adaptive config = %s/%s, want advanced/strategic", trainer.Difficulty(), trainer.Personality())
	}

	var ranked []ScoredMove
	trainer.SetDecisionHook(func(_ int, r []ScoredMove, _ battle.Action) { ranked = r })

	if _, err := trainer.Decide(view, 0); err != nil {
		t.Fatalf("Decide: %v", err)
	}
	before := ranked[0].Score

	// Two observations: below the prediction threshold, still no bonus.
	trainer.LearnFromOpponent("rival", battle.AttackAction(0, 0))
	trainer.LearnFromOpponent("rival", battle.AttackAction(0, 0))
	if _, err := trainer.Decide(view, 0); err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if ranked[0].Score != before {
		t.Fatalf("counter bonus applied below threshold: %v vs %v", ranked[0].Score, before)
	}

	// Third observation unlocks the prediction and the +5 bonus.
	trainer.LearnFromOpponent("rival", battle.AttackAction(0, 0))
	if _, err := trainer.Decide(view, 0); err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if ranked[0].Score != before+5 {
		t.Fatalf("counter bonus = %v, want %v", ranked[0].Score-before, 5.0)
	}
}

func TestAdaptiveBonusSkipsStatusMoves(t *testing.T) {
	attacker := *testAttacker()
	attacker.Moves = []creature.Move{
		{Name: "Heat Haze", Category: creature.CategoryVolcano, Power: 0, Accuracy: 100, Energy: 10,
			Effects: []creature.EffectKind{creature.EffectBurn}},
	}
	view := matchupView(attacker, *testDefender())

	trainer, err := NewAdaptiveTrainer("Sable", 1, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewAdaptiveTrainer: %v", err)
	}

	var ranked []ScoredMove
	trainer.SetDecisionHook(func(_ int, r []ScoredMove, _ battle.Action) { ranked = r })

	if _, err := trainer.Decide(view, 0); err != nil {
		t.Fatalf("Decide: %v", err)
	}
	before := ranked[0].Score

	for i := 0; i < 3; i++ {
		trainer.LearnFromOpponent("rival", battle.AttackAction(1, 0))
	}
	if _, err := trainer.Decide(view, 0); err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if ranked[0].Score != before {
		t.Fatalf("status move gained the counter bonus: %v vs %v", ranked[0].Score, before)
	}
}
