package trace

import (
	"fmt"
	"strings"

	"critterclash/battle"
	pb "critterclash/gen"
)

func parseActionName(raw string) (battle.ActionType, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "ATTACK":
		return battle.ActionTypeAttack, nil
	case "SWITCH":
		return battle.ActionTypeSwitch, nil
	case "FORFEIT":
		return battle.ActionTypeForfeit, nil
	default:
		return 0, fmt.Errorf("unsupported action type %q", raw)
	}
}

func actionToProto(a battle.ActionType) pb.ActionType {
	switch a {
	case battle.ActionTypeAttack:
		return pb.ActionType_ACTION_TYPE_ATTACK
	case battle.ActionTypeSwitch:
		return pb.ActionType_ACTION_TYPE_SWITCH
	case battle.ActionTypeForfeit:
		return pb.ActionType_ACTION_TYPE_FORFEIT
	default:
		return pb.ActionType_ACTION_TYPE_UNSPECIFIED
	}
}

func actionFromProto(a pb.ActionType) battle.ActionType {
	switch a {
	case pb.ActionType_ACTION_TYPE_ATTACK:
		return battle.ActionTypeAttack
	case pb.ActionType_ACTION_TYPE_SWITCH:
		return battle.ActionTypeSwitch
	case pb.ActionType_ACTION_TYPE_FORFEIT:
		return battle.ActionTypeForfeit
	default:
		return battle.ActionTypeNone
	}
}

// RecordToProto converts one tape record to its proto form.
func RecordToProto(rec DecisionRecord) (*pb.DecisionRecord, error) {
	actionType, err := parseActionName(rec.Action.Type)
	if err != nil {
		return nil, err
	}
	out := &pb.DecisionRecord{
		Seq:         rec.Seq,
		Participant: uint32(rec.Participant),
		Action: &pb.BattleAction{
			Type:        actionToProto(actionType),
			MoveIndex:   uint32(rec.Action.MoveIndex),
			TargetIndex: uint32(rec.Action.TargetIndex),
			SwitchTo:    uint32(rec.Action.SwitchTo),
		},
	}
	for _, s := range rec.Scored {
		out.Scored = append(out.Scored, &pb.ScoredMove{
			Move:      s.Move,
			Index:     uint32(s.Index),
			Score:     s.Score,
			Rationale: s.Rationale,
		})
	}
	return out, nil
}

// RecordFromProto converts a proto record back into its tape form.
func RecordFromProto(rec *pb.DecisionRecord) DecisionRecord {
	out := DecisionRecord{
		Seq:         rec.GetSeq(),
		Participant: int(rec.GetParticipant()),
	}
	if a := rec.GetAction(); a != nil {
		out.Action = ActionSpec{
			Type:        actionFromProto(a.GetType()).String(),
			MoveIndex:   int(a.GetMoveIndex()),
			TargetIndex: int(a.GetTargetIndex()),
			SwitchTo:    int(a.GetSwitchTo()),
		}
	}
	for _, s := range rec.GetScored() {
		out.Scored = append(out.Scored, ScoredEntry{
			Move:      s.GetMove(),
			Index:     int(s.GetIndex()),
			Score:     s.GetScore(),
			Rationale: s.GetRationale(),
		})
	}
	return out
}

// TapeToProto converts a whole tape to its proto form.
func TapeToProto(tape *DecisionTape) (*pb.DecisionTape, error) {
	if tape == nil {
		return nil, nil
	}
	out := &pb.DecisionTape{
		TapeVersion: uint32(tape.TapeVersion),
		TapeId:      tape.TapeID,
		Trainer:     tape.Trainer,
	}
	for _, rec := range tape.Events {
		p, err := RecordToProto(rec)
		if err != nil {
			return nil, fmt.Errorf("record seq %d: %w", rec.Seq, err)
		}
		out.Events = append(out.Events, p)
	}
	return out, nil
}

// TapeFromProto converts a proto tape back into its wire-neutral form.
func TapeFromProto(tape *pb.DecisionTape) *DecisionTape {
	if tape == nil {
		return nil
	}
	out := &DecisionTape{
		TapeVersion: int(tape.GetTapeVersion()),
		TapeID:      tape.GetTapeId(),
		Trainer:     tape.GetTrainer(),
	}
	for _, rec := range tape.GetEvents() {
		out.Events = append(out.Events, RecordFromProto(rec))
	}
	return out
}
