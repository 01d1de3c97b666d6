package model

// MaxStage bounds temporary stat stages to [-6, +6].
const MaxStage = 6

// BattleStages are the temporary stat modifiers a creature accumulates
// while on the field. Present only while the creature is deployed.
type BattleStages struct {
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"special_attack"`
	SpecialDefense int `json:"special_defense"`
	Speed          int `json:"speed"`
	Accuracy       int `json:"accuracy"`
	Evasion        int `json:"evasion"`
}

// Get returns the current stage for a stat (0 for hp).
func (b *BattleStages) Get(stat Stat) int {
	switch stat {
	case StatAttack:
		return b.Attack
	case StatDefense:
		return b.Defense
	case StatSpecialAttack:
		return b.SpecialAttack
	case StatSpecialDefense:
		return b.SpecialDefense
	case StatSpeed:
		return b.Speed
	case StatAccuracy:
		return b.Accuracy
	case StatEvasion:
		return b.Evasion
	}
	return 0
}

// Modify shifts a stage by delta, saturating at ±MaxStage.
// Returns the stages actually applied (0 if already at the cap).
func (b *BattleStages) Modify(stat Stat, delta int) int {
	cur := b.Get(stat)
	next := clampStage(cur + delta)
	applied := next - cur

	switch stat {
	case StatAttack:
		b.Attack = next
	case StatDefense:
		b.Defense = next
	case StatSpecialAttack:
		b.SpecialAttack = next
	case StatSpecialDefense:
		b.SpecialDefense = next
	case StatSpeed:
		b.Speed = next
	case StatAccuracy:
		b.Accuracy = next
	case StatEvasion:
		b.Evasion = next
	}
	return applied
}

func clampStage(s int) int {
	if s > MaxStage {
		return MaxStage
	}
	if s < -MaxStage {
		return -MaxStage
	}
	return s
}

// StageMultiplier converts a combat stage to its stat multiplier:
// (2+s)/2 for s >= 0, 2/(2-s) for s < 0. Applies to attack, defense,
// special attack, special defense and speed.
func StageMultiplier(stage int) float64 {
	stage = clampStage(stage)
	if stage >= 0 {
		return float64(2+stage) / 2.0
	}
	return 2.0 / float64(2-stage)
}

// AccuracyStageMultiplier converts an accuracy or evasion stage to its
// hit-chance multiplier: (3+s)/3 for s >= 0, 3/(3-s) for s < 0.
func AccuracyStageMultiplier(stage int) float64 {
	stage = clampStage(stage)
	if stage >= 0 {
		return float64(3+stage) / 3.0
	}
	return 3.0 / float64(3-stage)
}
