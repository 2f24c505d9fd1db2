package ai

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// TrainerArchetype defines a named AI trainer.
type TrainerArchetype struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Kind        string `json:"kind"`        // "standard", "gym_leader", "adaptive"
	Difficulty  string `json:"difficulty"`  // standard trainers only
	Personality string `json:"personality"` // standard trainers only
	Specialty   string `json:"specialty"`   // gym leaders only
	GymLevel    int    `json:"gymLevel"`    // gym leaders only
}

// ArchetypeRegistry holds all trainer archetype definitions.
type ArchetypeRegistry struct {
	mu         sync.RWMutex
	archetypes map[string]*TrainerArchetype
}

// NewRegistry creates an empty registry.
func NewRegistry() *ArchetypeRegistry {
	return &ArchetypeRegistry{
		archetypes: make(map[string]*TrainerArchetype),
	}
}

// LoadFromFile loads trainer archetypes from a JSON file.
func (r *ArchetypeRegistry) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read archetypes file: %w", err)
	}
	return r.LoadFromJSON(data)
}

// LoadFromJSON loads trainer archetypes from raw JSON bytes.
func (r *ArchetypeRegistry) LoadFromJSON(data []byte) error {
	var list []*TrainerArchetype
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("parse archetypes JSON: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range list {
		if a.ID == "" {
			continue
		}
		r.archetypes[a.ID] = a
	}
	return nil
}

// Get returns an archetype by ID.
func (r *ArchetypeRegistry) Get(id string) *TrainerArchetype {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.archetypes[id]
}

// All returns a snapshot of all archetypes.
func (r *ArchetypeRegistry) All() []*TrainerArchetype {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*TrainerArchetype, 0, len(r.archetypes))
	for _, a := range r.archetypes {
		out = append(out, a)
	}
	return out
}

// Count returns how many archetypes are registered.
func (r *ArchetypeRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.archetypes)
}
