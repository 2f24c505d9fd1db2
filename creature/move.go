package creature

// MaxMoves 每只生物最多掌握的技能数
const MaxMoves = 4

// Move is one action a creature can take in battle.
//
// Power 0 marks a status move: it deals no damage and is scored purely on
// its secondary effects.
type Move struct {
	Name     string       `json:"name"`
	Category Category     `json:"category"`
	Power    int          `json:"power"`
	Accuracy int          `json:"accuracy"` // 0-100
	Energy   int          `json:"energy"`   // stamina cost per use
	Effects  []EffectKind `json:"effects,omitempty"`
}

// IsStatus reports whether the move is a zero-power status move.
func (m Move) IsStatus() bool {
	return m.Power == 0
}

// IsDamaging reports whether the move deals direct damage.
func (m Move) IsDamaging() bool {
	return m.Power > 0
}

// HasEffect reports whether the move carries the given secondary effect.
func (m Move) HasEffect(kind EffectKind) bool {
	for _, e := range m.Effects {
		if e == kind {
			return true
		}
	}
	return false
}
