package model

// DamageClass splits moves into physical, special and status.
type DamageClass string

const (
	ClassPhysical DamageClass = "physical"
	ClassSpecial  DamageClass = "special"
	ClassStatus   DamageClass = "status"
)

// TargetTag tells the targeting layer how a move selects its victims.
type TargetTag string

const (
	TargetUser            TargetTag = "user"
	TargetSelected        TargetTag = "selected-pokemon"
	TargetRandomOpponent  TargetTag = "random-opponent"
	TargetAllOpponents    TargetTag = "all-opponents"
	TargetAllOther        TargetTag = "all-other-pokemon"
	TargetUsersField      TargetTag = "users-field"
	TargetOpponentsField  TargetTag = "opponents-field"
	TargetAlly            TargetTag = "ally"
	TargetEntireField     TargetTag = "entire-field"
)

// Spread reports whether the tag can resolve to more than one victim,
// which subjects each hit to the 0.75 spread penalty.
func (t TargetTag) Spread() bool {
	switch t {
	case TargetAllOpponents, TargetAllOther, TargetOpponentsField, TargetEntireField:
		return true
	}
	return false
}

// SingleTarget reports whether redirection may apply to the tag.
func (t TargetTag) SingleTarget() bool {
	switch t {
	case TargetSelected, TargetRandomOpponent:
		return true
	}
	return false
}

// StatChange is one entry of a move's stat_changes list.
type StatChange struct {
	Stat   Stat `json:"stat"`
	Stages int  `json:"change"`
}

// MoveMeta carries a move's side-effect descriptors from the catalog.
type MoveMeta struct {
	Ailment       Ailment      `json:"ailment"`
	AilmentChance int          `json:"ailment_chance"`
	StatChance    int          `json:"stat_chance"`
	CritRate      int          `json:"crit_rate"`
	Drain         int          `json:"drain"`
	FlinchChance  int          `json:"flinch_chance"`
	Healing       int          `json:"healing"`
	MinHits       int          `json:"min_hits"`
	MaxHits       int          `json:"max_hits"`
	MinTurns      int          `json:"min_turns"`
	MaxTurns      int          `json:"max_turns"`
	MakesContact  bool         `json:"makes_contact"`
	ForcesSwitch  bool         `json:"forces_switch"`
	StatChanges   []StatChange `json:"stat_changes,omitempty"`
	Target        TargetTag    `json:"target"`
}

// MoveData is the immutable catalog record for a move.
// Power == nil means a status move; Accuracy == nil means it never misses.
type MoveData struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        Type        `json:"type"`
	Power       *int        `json:"power,omitempty"`
	Accuracy    *int        `json:"accuracy,omitempty"`
	Priority    int         `json:"priority"`
	PP          int         `json:"pp"`
	DamageClass DamageClass `json:"damage_class"`
	Meta        MoveMeta    `json:"meta"`
}

// IsDamaging reports whether the move can deal direct damage.
func (m *MoveData) IsDamaging() bool {
	return m.DamageClass != ClassStatus && m.Power != nil && *m.Power > 0
}

// BasePower returns the move's power, 0 for status moves.
func (m *MoveData) BasePower() int {
	if m.Power == nil {
		return 0
	}
	return *m.Power
}

// LearnedMove is one slot of a creature's moveset.
type LearnedMove struct {
	MoveID    string `json:"move_id"`
	CurrentPP int    `json:"current_pp"`
	MaxPP     int    `json:"max_pp"`
}
