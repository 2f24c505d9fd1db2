package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"critterclash/battle"
	"critterclash/battle/ai"
	"critterclash/creature"
	"critterclash/trace"
)

// arena runs seeded decision batches against a fixture matchup and
// reports how often each difficulty tier picks the top-ranked move.
// It exercises the full decision path without resolving any damage.

func main() {
	var (
		seed    = flag.Int64("seed", 1, "RNG seed for the sampled trainers")
		trials  = flag.Int("trials", 4000, "decisions per difficulty tier")
		tapeOut = flag.String("tape", "", "optional path to write a sample decision tape (JSON)")
		debug   = flag.Bool("debug", false, "log every decision")
	)
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	view := fixtureView()

	for d := ai.DifficultyNovice; d <= ai.DifficultyMaster; d++ {
		eng, err := ai.NewEngine(ai.Config{
			Name:        fmt.Sprintf("sampler-%s", d),
			Difficulty:  d,
			Personality: ai.PersonalityBalanced,
			Seed:        *seed,
		}, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("build engine")
		}

		best := 0
		for i := 0; i < *trials; i++ {
			action, err := eng.Decide(view, 0)
			if err != nil {
				logger.Fatal().Err(err).Msg("decide")
			}
			if action.Type == battle.ActionTypeAttack && action.MoveIndex == 0 {
				best++
			}
		}
		rate := float64(best) / float64(*trials)
		logger.Info().
			Str("difficulty", d.String()).
			Int("trials", *trials).
			Float64("rank1_rate", rate).
			Msg("tier sampled")
	}

	if *tapeOut != "" {
		if err := writeSampleTape(*tapeOut, view, *seed, logger); err != nil {
			logger.Fatal().Err(err).Msg("write tape")
		}
		logger.Info().Str("path", *tapeOut).Msg("tape written")
	}
}

// writeSampleTape records a short master-tier decision run and dumps
// its wire form.
func writeSampleTape(path string, view battle.View, seed int64, logger zerolog.Logger) error {
	eng, err := ai.NewEngine(ai.Config{
		Name:        "tape-sampler",
		Difficulty:  ai.DifficultyMaster,
		Personality: ai.PersonalityStrategic,
		Seed:        seed,
	}, logger)
	if err != nil {
		return err
	}
	rec := trace.NewRecorder(eng.Name())
	rec.Attach(eng)

	for i := 0; i < 10; i++ {
		if _, err := eng.Decide(view, 0); err != nil {
			return err
		}
	}

	wire, err := trace.ToWireTape(rec.Tape())
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(wire, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// fixtureView is a representative mid-battle matchup: a volcano
// attacker with a spread of damaging and status moves against a
// half-worn forest defender.
func fixtureView() battle.View {
	attacker := creature.Creature{
		Name: "Cindertail", HP: 80, MaxHP: 100, Stamina: 60,
		Attack: 70, Defense: 55, Speed: 65, Intelligence: 50,
		Categories: []creature.Category{creature.CategoryVolcano},
		Moves: []creature.Move{
			{Name: "Magma Burst", Category: creature.CategoryVolcano, Power: 90, Accuracy: 90, Energy: 20},
			{Name: "Ember Flick", Category: creature.CategoryVolcano, Power: 40, Accuracy: 100, Energy: 10},
			{Name: "Heat Haze", Category: creature.CategoryVolcano, Power: 0, Accuracy: 100, Energy: 15,
				Effects: []creature.EffectKind{creature.EffectBurn}},
			{Name: "Stone Guard", Category: creature.CategoryMountain, Power: 0, Accuracy: 100, Energy: 10,
				Effects: []creature.EffectKind{creature.EffectDefenseUp}},
		},
	}
	defender := creature.Creature{
		Name: "Mossback", HP: 60, MaxHP: 110, Stamina: 50,
		Attack: 60, Defense: 70, Speed: 45, Intelligence: 55,
		Categories: []creature.Category{creature.CategoryForest},
		Moves: []creature.Move{
			{Name: "Vine Lash", Category: creature.CategoryForest, Power: 60, Accuracy: 95, Energy: 15},
		},
	}
	reserve := creature.Creature{
		Name: "Pebblit", HP: 90, MaxHP: 90, Stamina: 70,
		Attack: 55, Defense: 80, Speed: 30, Intelligence: 40,
		Categories: []creature.Category{creature.CategoryMountain},
		Moves: []creature.Move{
			{Name: "Rock Toss", Category: creature.CategoryMountain, Power: 50, Accuracy: 90, Energy: 12},
		},
	}

	return battle.View{
		Teams: [2]battle.TeamView{
			{Members: []creature.Creature{attacker, reserve}, Active: 0},
			{Members: []creature.Creature{defender}, Active: 0},
		},
	}
}
