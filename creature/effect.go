package creature

// EffectKind 技能附加效果类型
type EffectKind byte

const (
	EffectNone EffectKind = 0
)

const (
	EffectHeal EffectKind = iota + 1
	EffectAttackUp
	EffectDefenseUp
	EffectSpeedUp
	EffectAttackDown
	EffectDefenseDown
	EffectSpeedDown
	EffectPoison
	EffectBurn
	EffectSleep
	EffectParalysis
)

var EffectKindDictionary = map[EffectKind]string{
	EffectHeal:        "heal",
	EffectAttackUp:    "attack_up",
	EffectDefenseUp:   "defense_up",
	EffectSpeedUp:     "speed_up",
	EffectAttackDown:  "attack_down",
	EffectDefenseDown: "defense_down",
	EffectSpeedDown:   "speed_down",
	EffectPoison:      "poison",
	EffectBurn:        "burn",
	EffectSleep:       "sleep",
	EffectParalysis:   "paralysis",
}

func (e EffectKind) String() string {
	if s, ok := EffectKindDictionary[e]; ok {
		return s
	}
	return "none"
}
