package model

// PerStat holds one small value per stat, used for IVs and EVs.
type PerStat struct {
	HP             int `json:"hp"`
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"special_attack"`
	SpecialDefense int `json:"special_defense"`
	Speed          int `json:"speed"`
}

// Get returns the value for a permanent stat.
func (p PerStat) Get(stat Stat) int {
	switch stat {
	case StatHP:
		return p.HP
	case StatAttack:
		return p.Attack
	case StatDefense:
		return p.Defense
	case StatSpecialAttack:
		return p.SpecialAttack
	case StatSpecialDefense:
		return p.SpecialDefense
	case StatSpeed:
		return p.Speed
	}
	return 0
}

// ActiveMoveSlots caps how many learned moves are usable in battle.
const ActiveMoveSlots = 4

// CreatureInstance is a concrete creature owned by a team slot.
// Species data is referenced by id and resolved via the catalog.
type CreatureInstance struct {
	InstanceID    string          `json:"instance_id"`
	SpeciesID     string          `json:"species_id"`
	Nickname      string          `json:"nickname,omitempty"`
	Level         int             `json:"level"`
	CurrentHP     int             `json:"current_hp"`
	Status        StatusCondition `json:"status,omitempty"`
	AbilityID     string          `json:"ability_id"`
	HeldItemID    string          `json:"held_item_id,omitempty"`
	IVs           PerStat         `json:"ivs"`
	EVs           PerStat         `json:"evs"`
	ComputedStats Stats           `json:"computed_stats"`
	Stages        *BattleStages   `json:"battle_stages,omitempty"`
	Volatile      *VolatileStatus `json:"volatile_status,omitempty"`
	Moves         []LearnedMove   `json:"moves"`

	// Species is the resolved catalog record; never serialized, the
	// host rebinds it after loading.
	Species *SpeciesData `json:"-"`
}

// Name returns the display name: nickname if set, else species name.
func (c *CreatureInstance) Name() string {
	if c.Nickname != "" {
		return c.Nickname
	}
	if c.Species != nil {
		return c.Species.Name
	}
	return c.SpeciesID
}

// Types returns the creature's type list.
func (c *CreatureInstance) Types() []Type {
	if c.Species == nil {
		return []Type{TypeUnknown}
	}
	return c.Species.Types()
}

// HasType reports whether t is one of the creature's types.
func (c *CreatureInstance) HasType(t Type) bool {
	return c.Species != nil && c.Species.HasType(t)
}

// IsFainted reports whether the creature is out of the battle.
func (c *CreatureInstance) IsFainted() bool {
	return c.CurrentHP <= 0
}

// MaxHP is the computed hit point total.
func (c *CreatureInstance) MaxHP() int {
	return c.ComputedStats.HP
}

// HPFraction returns current HP as a fraction of max, 0 when max is 0.
func (c *CreatureInstance) HPFraction() float64 {
	if c.ComputedStats.HP == 0 {
		return 0
	}
	return float64(c.CurrentHP) / float64(c.ComputedStats.HP)
}

// EnterField initializes stages and volatile status. Called exactly once
// per deployment, including on switch-in.
func (c *CreatureInstance) EnterField() {
	c.Stages = &BattleStages{}
	c.Volatile = &VolatileStatus{JustEntered: true}
}

// LeaveField clears battle-only state. Persistent status stays.
func (c *CreatureInstance) LeaveField() {
	c.Stages = nil
	c.Volatile = nil
}

// OnField reports whether the creature is currently deployed.
func (c *CreatureInstance) OnField() bool {
	return c.Stages != nil && c.Volatile != nil
}

// ApplyDamage subtracts damage with saturation at 0 and returns the HP
// actually lost.
func (c *CreatureInstance) ApplyDamage(dmg int) int {
	if dmg <= 0 {
		return 0
	}
	if dmg > c.CurrentHP {
		dmg = c.CurrentHP
	}
	c.CurrentHP -= dmg
	return dmg
}

// Heal restores HP capped at max and returns the HP actually gained.
func (c *CreatureInstance) Heal(amount int) int {
	if amount <= 0 || c.CurrentHP <= 0 {
		return 0
	}
	room := c.ComputedStats.HP - c.CurrentHP
	if amount > room {
		amount = room
	}
	c.CurrentHP += amount
	return amount
}

// StageMult returns the effective multiplier for a stat's current stage,
// 1.0 when the creature is off the field.
func (c *CreatureInstance) StageMult(stat Stat) float64 {
	if c.Stages == nil {
		return 1.0
	}
	return StageMultiplier(c.Stages.Get(stat))
}

// ActiveMoves returns the first four learned moves.
func (c *CreatureInstance) ActiveMoves() []LearnedMove {
	if len(c.Moves) <= ActiveMoveSlots {
		return c.Moves
	}
	return c.Moves[:ActiveMoveSlots]
}

// FindMove returns the index of a learned move by id, or -1.
func (c *CreatureInstance) FindMove(moveID string) int {
	for i := range c.Moves {
		if c.Moves[i].MoveID == moveID {
			return i
		}
	}
	return -1
}

// SetStatus applies a persistent status. A second application while one
// is already present is a no-op; returns whether it was applied.
func (c *CreatureInstance) SetStatus(s StatusCondition) bool {
	if c.Status != "" || s == "" {
		return false
	}
	c.Status = s
	if s == StatusBadPoison && c.Volatile != nil {
		c.Volatile.BadlyPoisoned = 0
	}
	return true
}

// CureStatus removes any persistent status.
func (c *CreatureInstance) CureStatus() {
	c.Status = ""
	if c.Volatile != nil {
		c.Volatile.BadlyPoisoned = 0
	}
}
