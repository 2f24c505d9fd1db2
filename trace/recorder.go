package trace

import (
	"github.com/google/uuid"

	"critterclash/battle"
	"critterclash/battle/ai"
)

// Recorder accumulates decision records for one trainer across one
// battle. Not safe for concurrent use; one recorder per battle, like
// the engine it shadows.
type Recorder struct {
	tape DecisionTape
	seq  uint64
}

// NewRecorder starts an empty tape for the named trainer.
func NewRecorder(trainer string) *Recorder {
	return &Recorder{
		tape: DecisionTape{
			TapeVersion: TapeVersion,
			TapeID:      uuid.NewString(),
			Trainer:     trainer,
		},
	}
}

// Attach subscribes the recorder to an engine's decisions.
func (r *Recorder) Attach(eng *ai.Engine) {
	eng.SetDecisionHook(r.Record)
}

// Record appends one decision: the ranking the engine produced and the
// action it chose. Its signature matches ai.DecisionHook.
func (r *Recorder) Record(participant int, ranked []ai.ScoredMove, action battle.Action) {
	r.seq++
	rec := DecisionRecord{
		Seq:         r.seq,
		Participant: participant,
		Action: ActionSpec{
			Type:        action.Type.String(),
			MoveIndex:   action.MoveIndex,
			TargetIndex: action.TargetIndex,
			SwitchTo:    action.SwitchTo,
		},
	}
	for _, s := range ranked {
		rec.Scored = append(rec.Scored, ScoredEntry{
			Move:      s.Move.Name,
			Index:     s.Index,
			Score:     s.Score,
			Rationale: s.Rationale,
		})
	}
	r.tape.Events = append(r.tape.Events, rec)
}

// Tape returns the tape built so far.
func (r *Recorder) Tape() *DecisionTape {
	return &r.tape
}

// Len reports how many decisions were recorded.
func (r *Recorder) Len() int {
	return len(r.tape.Events)
}
