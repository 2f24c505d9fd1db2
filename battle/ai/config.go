package ai

import "fmt"

type Config struct {
	// Display name, used in logs and traces.
	Name string

	Difficulty  Difficulty
	Personality Personality

	// RNG seed (0 => time-based)
	Seed int64
}

func (c Config) validate() error {
	if c.Name == "" {
		return fmt.Errorf("Name must not be empty")
	}
	if _, ok := DifficultyDictionary[c.Difficulty]; !ok {
		return fmt.Errorf("unknown difficulty: %d", c.Difficulty)
	}
	if _, ok := PersonalityDictionary[c.Personality]; !ok {
		return fmt.Errorf("unknown personality: %d", c.Personality)
	}
	return nil
}
