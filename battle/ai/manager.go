package ai

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"critterclash/battle"
	"critterclash/creature"
)

// TrainerInstance represents an active AI trainer bound to one battle.
type TrainerInstance struct {
	InstanceID string
	Archetype  *TrainerArchetype
	Decider    Decider
}

// Manager manages AI trainer lifecycle across battles. The host keeps
// one manager; each battle gets its own spawned instance so pattern
// history never leaks between battles.
type Manager struct {
	registry  *ArchetypeRegistry
	instances map[string]*TrainerInstance // keyed by InstanceID
	mu        sync.RWMutex
	rng       *rand.Rand
	log       zerolog.Logger
}

// NewManager creates a trainer manager with the given archetype registry.
func NewManager(registry *ArchetypeRegistry, logger zerolog.Logger) *Manager {
	return &Manager{
		registry:  registry,
		instances: make(map[string]*TrainerInstance),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		log:       logger,
	}
}

// Registry returns the underlying ArchetypeRegistry.
func (m *Manager) Registry() *ArchetypeRegistry {
	return m.registry
}

// Spawn builds a trainer for one battle from a registered archetype.
// Each instance gets a derived seed and a unique ID.
func (m *Manager) Spawn(archetypeID string) (*TrainerInstance, error) {
	arch := m.registry.Get(archetypeID)
	if arch == nil {
		return nil, fmt.Errorf("unknown trainer archetype %q", archetypeID)
	}

	m.mu.Lock()
	seed := m.rng.Int63()
	m.mu.Unlock()

	decider, err := buildDecider(arch, seed, m.log)
	if err != nil {
		return nil, fmt.Errorf("spawn trainer %s: %w", arch.Name, err)
	}

	inst := &TrainerInstance{
		InstanceID: uuid.NewString(),
		Archetype:  arch,
		Decider:    decider,
	}

	m.mu.Lock()
	m.instances[inst.InstanceID] = inst
	m.mu.Unlock()

	m.log.Info().Str("trainer", arch.Name).Str("instance", inst.InstanceID).Msg("spawned trainer")
	return inst, nil
}

// OnTurn asks a spawned trainer for its next action.
func (m *Manager) OnTurn(instanceID string, view battle.View, participant int) (battle.Action, error) {
	m.mu.RLock()
	inst := m.instances[instanceID]
	m.mu.RUnlock()

	if inst == nil {
		return battle.Action{}, fmt.Errorf("unknown trainer instance %q", instanceID)
	}
	return inst.Decider.Decide(view, participant)
}

// Get returns the trainer instance for a given ID, or nil.
func (m *Manager) Get(instanceID string) *TrainerInstance {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.instances[instanceID]
}

// Despawn removes a trainer instance once its battle ends.
func (m *Manager) Despawn(instanceID string) {
	m.mu.Lock()
	inst := m.instances[instanceID]
	delete(m.instances, instanceID)
	m.mu.Unlock()

	if inst != nil {
		m.log.Info().Str("trainer", inst.Archetype.Name).Str("instance", instanceID).Msg("despawned trainer")
	}
}

// buildDecider constructs the right specialization for an archetype.
func buildDecider(arch *TrainerArchetype, seed int64, logger zerolog.Logger) (Decider, error) {
	switch arch.Kind {
	case "gym_leader":
		specialty, ok := creature.ParseCategory(arch.Specialty)
		if !ok {
			return nil, fmt.Errorf("unknown specialty category %q", arch.Specialty)
		}
		return NewGymLeader(arch.Name, specialty, arch.GymLevel, seed, logger)
	case "adaptive":
		return NewAdaptiveTrainer(arch.Name, seed, logger)
	default:
		difficulty, ok := ParseDifficulty(arch.Difficulty)
		if !ok {
			return nil, fmt.Errorf("unknown difficulty %q", arch.Difficulty)
		}
		personality, ok := ParsePersonality(arch.Personality)
		if !ok {
			return nil, fmt.Errorf("unknown personality %q", arch.Personality)
		}
		return NewEngine(Config{
			Name:        arch.Name,
			Difficulty:  difficulty,
			Personality: personality,
			Seed:        seed,
		}, logger)
	}
}
