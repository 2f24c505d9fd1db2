package ai

import "math/rand"

// Difficulty controls how close to optimal the selection policy plays.
type Difficulty byte

const (
	DifficultyNovice Difficulty = iota
	DifficultyIntermediate
	DifficultyAdvanced
	DifficultyExpert
	DifficultyMaster
)

var DifficultyDictionary = map[Difficulty]string{
	DifficultyNovice:       "novice",
	DifficultyIntermediate: "intermediate",
	DifficultyAdvanced:     "advanced",
	DifficultyExpert:       "expert",
	DifficultyMaster:       "master",
}

func (d Difficulty) String() string {
	if s, ok := DifficultyDictionary[d]; ok {
		return s
	}
	return "novice"
}

// ParseDifficulty maps a difficulty name back to its enum value.
func ParseDifficulty(name string) (Difficulty, bool) {
	for d, s := range DifficultyDictionary {
		if s == name {
			return d, true
		}
	}
	return DifficultyNovice, false
}

// selectMove picks one move from a list ranked descending by score.
// Each tier is a distinct probability-weighted choice; ties inside the
// list were already broken by stable sort on original move order, so a
// fixed seed reproduces the exact pick.
func selectMove(d Difficulty, ranked []ScoredMove, rng *rand.Rand) ScoredMove {
	switch d {
	case DifficultyNovice:
		// 60%: best move. Otherwise anything goes.
		if rng.Float64() < 0.60 {
			return ranked[0]
		}
		return ranked[rng.Intn(len(ranked))]
	case DifficultyIntermediate:
		// 80%: one of the top two. Otherwise anything goes.
		if rng.Float64() < 0.80 {
			return ranked[rng.Intn(min(2, len(ranked)))]
		}
		return ranked[rng.Intn(len(ranked))]
	case DifficultyAdvanced:
		// 90%: best move. Otherwise one of the top three.
		if rng.Float64() < 0.90 {
			return ranked[0]
		}
		return ranked[rng.Intn(min(3, len(ranked)))]
	case DifficultyExpert:
		// 95%: best move. Otherwise second best.
		if rng.Float64() < 0.95 || len(ranked) == 1 {
			return ranked[0]
		}
		return ranked[1]
	default: // master: fully deterministic
		return ranked[0]
	}
}
