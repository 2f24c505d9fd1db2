package creature

// Creature 一只参战或后备生物
//
// The battle engine owns and mutates creatures; the AI layer only ever
// reads them through a BattleView snapshot.
type Creature struct {
	Name         string     `json:"name"`
	HP           int        `json:"hp"`
	MaxHP        int        `json:"maxHp"`
	Stamina      int        `json:"stamina"`
	Attack       int        `json:"attack"`
	Defense      int        `json:"defense"`
	Speed        int        `json:"speed"`
	Intelligence int        `json:"intelligence"`
	Moves        []Move     `json:"moves"` // at most MaxMoves
	Categories   []Category `json:"categories"`
}

// Alive reports whether the creature can still fight.
func (c *Creature) Alive() bool {
	return c.HP > 0
}

// HealthFraction returns remaining health as a 0.0-1.0 fraction.
func (c *Creature) HealthFraction() float64 {
	if c.MaxHP <= 0 {
		return 0
	}
	f := float64(c.HP) / float64(c.MaxHP)
	if f < 0 {
		return 0
	}
	return f
}

// CanUse reports whether current stamina covers the move's energy cost.
func (c *Creature) CanUse(m Move) bool {
	return c.Stamina >= m.Energy
}

// HasCategory 工具：判断分类是否在生物的分类里
func (c *Creature) HasCategory(cat Category) bool {
	for _, cc := range c.Categories {
		if cc == cat {
			return true
		}
	}
	return false
}
