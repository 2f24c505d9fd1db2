package trace

import (
	"encoding/base64"
	"fmt"

	"google.golang.org/protobuf/proto"

	pb "critterclash/gen"
)

// WireDecisionTape is the transport form of a tape: every record is a
// proto-marshaled envelope packed as base64, so hosts can ship tapes
// through JSON without caring about the record schema.
type WireDecisionTape struct {
	TapeVersion int               `json:"tapeVersion"`
	TapeID      string            `json:"tapeId"`
	Trainer     string            `json:"trainer"`
	Events      []WireDecisionRec `json:"events"`
}

type WireDecisionRec struct {
	Seq         uint64 `json:"seq"`
	EnvelopeB64 string `json:"envelopeB64"`
}

// ToWireTape converts a tape into its transport form.
func ToWireTape(tape *DecisionTape) (*WireDecisionTape, error) {
	if tape == nil {
		return nil, nil
	}
	out := &WireDecisionTape{
		TapeVersion: tape.TapeVersion,
		TapeID:      tape.TapeID,
		Trainer:     tape.Trainer,
		Events:      make([]WireDecisionRec, 0, len(tape.Events)),
	}
	for _, rec := range tape.Events {
		p, err := RecordToProto(rec)
		if err != nil {
			return nil, fmt.Errorf("record seq %d: %w", rec.Seq, err)
		}
		bin, err := proto.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("marshal record seq %d: %w", rec.Seq, err)
		}
		out.Events = append(out.Events, WireDecisionRec{
			Seq:         rec.Seq,
			EnvelopeB64: base64.StdEncoding.EncodeToString(bin),
		})
	}
	return out, nil
}

// FromWireTape unpacks a transport tape back into record form.
func FromWireTape(wire *WireDecisionTape) (*DecisionTape, error) {
	if wire == nil {
		return nil, nil
	}
	out := &DecisionTape{
		TapeVersion: wire.TapeVersion,
		TapeID:      wire.TapeID,
		Trainer:     wire.Trainer,
	}
	for _, ev := range wire.Events {
		bin, err := base64.StdEncoding.DecodeString(ev.EnvelopeB64)
		if err != nil {
			return nil, &TraceError{Seq: ev.Seq, Reason: "invalid_base64", Message: err.Error()}
		}
		var rec pb.DecisionRecord
		if err := proto.Unmarshal(bin, &rec); err != nil {
			return nil, &TraceError{Seq: ev.Seq, Reason: "invalid_envelope", Message: err.Error()}
		}
		out.Events = append(out.Events, RecordFromProto(&rec))
	}
	return out, nil
}
