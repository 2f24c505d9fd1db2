package trace

// TapeVersion is bumped whenever the tape layout changes shape.
const TapeVersion = 1

// DecisionTape is the ordered record of every decision an AI trainer
// made across one battle. It captures the full scored ranking with
// rationales, so a decision can be audited after the fact.
type DecisionTape struct {
	TapeVersion int              `json:"tape_version"`
	TapeID      string           `json:"tape_id"`
	Trainer     string           `json:"trainer"`
	Events      []DecisionRecord `json:"events"`
}

// DecisionRecord is one Decide call: the ranking the engine saw and
// the action it returned.
type DecisionRecord struct {
	Seq         uint64        `json:"seq"`
	Participant int           `json:"participant"`
	Scored      []ScoredEntry `json:"scored,omitempty"`
	Action      ActionSpec    `json:"action"`
}

// ScoredEntry is one ranked move inside a record.
type ScoredEntry struct {
	Move      string  `json:"move"`
	Index     int     `json:"index"`
	Score     float64 `json:"score"`
	Rationale string  `json:"rationale,omitempty"`
}

// ActionSpec is the tape's representation of a battle action.
type ActionSpec struct {
	Type        string `json:"type"`
	MoveIndex   int    `json:"move_index,omitempty"`
	TargetIndex int    `json:"target_index,omitempty"`
	SwitchTo    int    `json:"switch_to,omitempty"`
}
