package battle

import (
	"critterclash/creature"
)

// ActionType 动作类型：0-NONE 1-ATTACK 2-SWITCH 3-FORFEIT
type ActionType byte

const (
	ActionTypeNone    ActionType = 0
	ActionTypeAttack  ActionType = 1
	ActionTypeSwitch  ActionType = 2
	ActionTypeForfeit ActionType = 3
)

var ActionTypeDictionary = map[ActionType]string{
	ActionTypeNone:    "NONE",
	ActionTypeAttack:  "ATTACK",
	ActionTypeSwitch:  "SWITCH",
	ActionTypeForfeit: "FORFEIT",
}

func (a ActionType) String() string {
	if s, ok := ActionTypeDictionary[a]; ok {
		return s
	}
	return "NONE"
}

// Action is the single output of an AI decision. Exactly one of the
// index fields is meaningful, selected by Type.
type Action struct {
	Type        ActionType `json:"type"`
	MoveIndex   int        `json:"moveIndex,omitempty"`   // ATTACK: slot in the attacker's move list
	TargetIndex int        `json:"targetIndex,omitempty"` // ATTACK: opposing team's active slot
	SwitchTo    int        `json:"switchTo,omitempty"`    // SWITCH: reserve slot to bring in
}

// AttackAction builds an attack against the given target slot.
func AttackAction(moveIndex, targetIndex int) Action {
	return Action{Type: ActionTypeAttack, MoveIndex: moveIndex, TargetIndex: targetIndex}
}

// SwitchAction builds a switch to the given reserve slot.
func SwitchAction(toIndex int) Action {
	return Action{Type: ActionTypeSwitch, SwitchTo: toIndex}
}

// ForfeitAction builds a forfeit.
func ForfeitAction() Action {
	return Action{Type: ActionTypeForfeit}
}

// TeamView is one side's roster as seen at decision time.
type TeamView struct {
	Members []creature.Creature
	Active  int // slot of the creature currently fighting
}

// ActiveCreature returns the team's active creature, or nil when the
// roster is empty or the active slot is out of range.
func (t TeamView) ActiveCreature() *creature.Creature {
	if t.Active < 0 || t.Active >= len(t.Members) {
		return nil
	}
	return &t.Members[t.Active]
}

// View is an immutable snapshot of both rosters, taken once per
// decision. The AI reads it and never writes through it.
type View struct {
	Teams [2]TeamView
}

// Team returns the roster for the given participant (0 or 1).
func (v View) Team(participant int) TeamView {
	return v.Teams[participant]
}

// Opponent returns the index of the other participant.
func Opponent(participant int) int {
	return 1 - participant
}
