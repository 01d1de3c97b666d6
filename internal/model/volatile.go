package model

// VolatileStatus holds per-battle state that exists only while the
// creature is on the field. Deploying resets it; leaving clears it.
type VolatileStatus struct {
	Flinched         bool   `json:"flinched"`
	Confused         bool   `json:"confused"`
	ConfusionTurns   int    `json:"confusion_turns"`
	CritStage        int    `json:"crit_stage"`
	Protected        bool   `json:"protected"`
	ProtectCounter   int    `json:"protect_counter"`
	MustRecharge     bool   `json:"must_recharge"`
	ChargingMove     string `json:"charging_move,omitempty"`
	BadlyPoisoned    int    `json:"badly_poisoned_turns"`
	InfatuatedBy     string `json:"infatuated_by,omitempty"`
	LeechSeeded      bool   `json:"leech_seeded"`
	LeechSeedSource  string `json:"leech_seed_source,omitempty"`
	SubstituteHP     int    `json:"substitute_hp"`
	PerishCount      int    `json:"perish_count"`
	WideGuardActive  bool   `json:"wide_guard_active"`
	QuickGuardActive bool   `json:"quick_guard_active"`
	MatBlockActive   bool   `json:"mat_block_active"`
	CraftyShield     bool   `json:"crafty_shield_active"`
	LockedMoveID     string `json:"locked_move_id,omitempty"`
	MagnetRise       bool   `json:"magnet_rise"`
	Telekinesis      bool   `json:"telekinesis"`
	ForcedSwitch     bool   `json:"forced_switch"`
	JustEntered      bool   `json:"just_entered"`
	ActedThisTurn    bool   `json:"acted_this_turn"`
	UsedProtectMove  bool   `json:"used_protect_move"`
}

// ResetTurnFlags clears the flags that are only meaningful within a
// single turn. Runs at the start of every turn for each active creature.
func (v *VolatileStatus) ResetTurnFlags() {
	v.Flinched = false
	v.Protected = false
	v.WideGuardActive = false
	v.QuickGuardActive = false
	v.MatBlockActive = false
	v.CraftyShield = false
	v.ActedThisTurn = false
	v.UsedProtectMove = false
}
