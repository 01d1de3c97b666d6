// Package ability is the declarative registry of passive abilities.
// Each ability maps to a list of hooks; a hook pairs the pipeline moment
// it fires at with the effect the engine interprets there. Adding an
// ability is a registry edit, not a new code path.
package ability

import "github.com/randomlocke/core/internal/model"

// Trigger is the pipeline moment a hook fires at.
type Trigger uint8

const (
	// OnEntry fires when the creature enters the field.
	OnEntry Trigger = iota
	// BeforeDamage fires before damage is computed against or by the holder.
	BeforeDamage
	// AfterDamage fires after damage has been applied.
	AfterDamage
	// OnReceiveDamage fires on the holder after it takes a hit.
	OnReceiveDamage
	// OnContact fires on the holder when hit by a contact move.
	OnContact
	// EndOfTurn fires during the residual phase.
	EndOfTurn
	// OnSwitch fires when the holder leaves the field voluntarily.
	OnSwitch
	// ModifyPriority is consulted while ordering actions.
	ModifyPriority
	// ModifySpeed is consulted while computing effective speed.
	ModifySpeed
)

// StatTarget says whose stats an entry effect touches.
type StatTarget uint8

const (
	TargetSelf StatTarget = iota
	TargetAllOpponents
	TargetAllies
)

// PriorityCondition gates a priority boost.
type PriorityCondition uint8

const (
	CondNone PriorityCondition = iota
	// CondFullHP requires the holder at full HP.
	CondFullHP
	// CondPoisoned requires the holder poisoned.
	CondPoisoned
)

// Effect is the tagged sum of ability effects. The engine type-switches
// on the concrete variant at each hook point.
type Effect interface{ abilityEffect() }

// SetWeather starts a weather on entry.
type SetWeather struct {
	Kind  model.Weather
	Turns int
}

// SetTerrain starts a terrain on entry.
type SetTerrain struct {
	Kind  model.Terrain
	Turns int
}

// ModifyStatOnEntry shifts stat stages when the holder enters.
type ModifyStatOnEntry struct {
	Stat   model.Stat
	Stages int
	Target StatTarget
}

// TypeImmunity absorbs moves of a type, optionally healing a fraction of
// max HP or boosting a stat on absorb.
type TypeImmunity struct {
	Type         model.Type
	HealFraction float64
	Boost        *model.StatChange
}

// MultiplyBaseStat scales one stat passively.
type MultiplyBaseStat struct {
	Stat   model.Stat
	Factor float64
}

// BoostTypeAtLowHP scales moves of a type while HP is under the threshold.
type BoostTypeAtLowHP struct {
	Type      model.Type
	Factor    float64
	Threshold float64
}

// BoostContactMoves scales every contact move the holder uses.
type BoostContactMoves struct{ Factor float64 }

// MultiplySpeedInWeather scales speed while a weather is up.
type MultiplySpeedInWeather struct {
	Weather model.Weather
	Factor  float64
}

// MultiplySpeedInTerrain scales speed while a terrain is up.
type MultiplySpeedInTerrain struct {
	Terrain model.Terrain
	Factor  float64
}

// ModifyMovePriority bumps priority for matching moves. A nil MoveType
// restricts to status moves (prankster).
type ModifyMovePriority struct {
	MoveType  *model.Type
	Boost     int
	Condition PriorityCondition
}

// ModifyAccuracy scales the holder's accuracy.
type ModifyAccuracy struct{ Factor float64 }

// ModifyCritRate adds crit stages to the holder's moves.
type ModifyCritRate struct{ Stages int }

// ModifyStatsOnHit shifts the holder's stages when it takes damage.
type ModifyStatsOnHit struct{ Changes []model.StatChange }

// InflictStatusOnContact may status an attacker that made contact.
type InflictStatusOnContact struct {
	Status model.StatusCondition
	Chance int // percent
}

// DamageAttackerOnContact chips an attacker that made contact.
type DamageAttackerOnContact struct{ Fraction float64 }

// HealEndOfTurn heals during residuals, optionally only under a weather
// or terrain.
type HealEndOfTurn struct {
	Fraction float64
	Weather  model.Weather
	Terrain  model.Terrain
}

// PreventStatLoss blocks opposing stage drops. Empty Stats = all stats.
type PreventStatLoss struct{ Stats []model.Stat }

// PreventStatus blocks statuses. Empty Statuses = all.
type PreventStatus struct{ Statuses []model.StatusCondition }

// HealOnSwitch heals the holder when it switches out.
type HealOnSwitch struct{ Fraction float64 }

// BoostStatEndOfTurn raises a stage during residuals.
type BoostStatEndOfTurn struct {
	Stat   model.Stat
	Stages int
}

// IgnoreOpponentAbility lets the holder's moves bypass defensive abilities.
type IgnoreOpponentAbility struct{}

// ReduceSuperEffectiveDamage scales incoming super-effective damage.
type ReduceSuperEffectiveDamage struct{ Factor float64 }

// BoostWeakMoves scales moves at or under a power threshold.
type BoostWeakMoves struct {
	Threshold int
	Factor    float64
}

// RemoveSecondaryEffects suppresses the holder's move secondaries in
// exchange for a damage boost.
type RemoveSecondaryEffects struct{ Factor float64 }

// Custom marks abilities whose logic lives in engine code keyed by id
// (download's defense comparison, for one).
type Custom struct{ ID string }

func (SetWeather) abilityEffect()                 {}
func (SetTerrain) abilityEffect()                 {}
func (ModifyStatOnEntry) abilityEffect()          {}
func (TypeImmunity) abilityEffect()               {}
func (MultiplyBaseStat) abilityEffect()           {}
func (BoostTypeAtLowHP) abilityEffect()           {}
func (BoostContactMoves) abilityEffect()          {}
func (MultiplySpeedInWeather) abilityEffect()     {}
func (MultiplySpeedInTerrain) abilityEffect()     {}
func (ModifyMovePriority) abilityEffect()         {}
func (ModifyAccuracy) abilityEffect()             {}
func (ModifyCritRate) abilityEffect()             {}
func (ModifyStatsOnHit) abilityEffect()           {}
func (InflictStatusOnContact) abilityEffect()     {}
func (DamageAttackerOnContact) abilityEffect()    {}
func (HealEndOfTurn) abilityEffect()              {}
func (PreventStatLoss) abilityEffect()            {}
func (PreventStatus) abilityEffect()              {}
func (HealOnSwitch) abilityEffect()               {}
func (BoostStatEndOfTurn) abilityEffect()         {}
func (IgnoreOpponentAbility) abilityEffect()      {}
func (ReduceSuperEffectiveDamage) abilityEffect() {}
func (BoostWeakMoves) abilityEffect()             {}
func (RemoveSecondaryEffects) abilityEffect()     {}
func (Custom) abilityEffect()                     {}
