// Package item is the declarative registry of held items. It mirrors the
// ability registry: an item maps to hooks of (trigger, effect), and the
// engine interprets the effects at each pipeline point.
package item

import "github.com/randomlocke/core/internal/model"

// Trigger is the pipeline moment an item hook fires at.
type Trigger uint8

const (
	// BeforeDamageDealt fires before damage by the holder is computed.
	BeforeDamageDealt Trigger = iota
	// AfterDamageDealt fires after the holder's move dealt damage.
	AfterDamageDealt
	// OnDamageTaken fires when the holder takes a hit.
	OnDamageTaken
	// OnStatusApplied fires when the holder receives a status condition.
	OnStatusApplied
	// OnStatusMoveAttempt fires when the holder tries a status move.
	OnStatusMoveAttempt
	// OnHPThreshold fires when the holder's HP crosses a threshold.
	OnHPThreshold
	// EndOfTurn fires during the residual phase.
	EndOfTurn
)

// Effect is the tagged sum of item effects.
type Effect interface{ itemEffect() }

// BoostDamage scales the holder's damage. Class restricts the boost to a
// damage class; empty applies to any damaging move.
type BoostDamage struct {
	Factor float64
	Class  model.DamageClass
}

// LockMove restricts the holder to its first used move until it leaves
// the field.
type LockMove struct{}

// CureStatus removes the holder's persistent status.
type CureStatus struct{}

// RestoreHP heals a fraction of max HP. RequiresType limits the heal to
// holders of that type (black-sludge).
type RestoreHP struct {
	Fraction     float64
	RequiresType model.Type
}

// RecoilDamage chips the holder by a fraction of its max HP.
// ExcludesType skips holders of that type (black-sludge's punisher half).
type RecoilDamage struct {
	Fraction     float64
	ExcludesType model.Type
}

// BlockStatusMoves forbids the holder from selecting status moves.
type BlockStatusMoves struct{}

// BoostStat raises the holder's stages.
type BoostStat struct {
	Stat   model.Stat
	Stages int
}

// DamageAttacker chips an attacker that hit the holder. ContactOnly
// restricts it to contact moves (rocky-helmet).
type DamageAttacker struct {
	Fraction    float64
	ContactOnly bool
}

func (BoostDamage) itemEffect()      {}
func (LockMove) itemEffect()         {}
func (CureStatus) itemEffect()       {}
func (RestoreHP) itemEffect()        {}
func (RecoilDamage) itemEffect()     {}
func (BlockStatusMoves) itemEffect() {}
func (BoostStat) itemEffect()        {}
func (DamageAttacker) itemEffect()   {}

// Hook pairs a trigger with an effect, plus the activation conditions
// that are about the trigger rather than the effect.
type Hook struct {
	Trigger Trigger
	Effect  Effect
	// HPThreshold gates OnHPThreshold hooks: fire at or below the fraction.
	HPThreshold float64
	// SuperEffectiveOnly gates OnDamageTaken hooks.
	SuperEffectiveOnly bool
	// Consumes marks single-use activations (berries, weakness-policy).
	Consumes bool
}

var registry = map[string][]Hook{
	"choice-band": {
		{Trigger: BeforeDamageDealt, Effect: BoostDamage{Factor: 1.5, Class: model.ClassPhysical}},
		{Trigger: BeforeDamageDealt, Effect: LockMove{}},
	},
	"choice-specs": {
		{Trigger: BeforeDamageDealt, Effect: BoostDamage{Factor: 1.5, Class: model.ClassSpecial}},
		{Trigger: BeforeDamageDealt, Effect: LockMove{}},
	},
	"choice-scarf": {
		{Trigger: BeforeDamageDealt, Effect: LockMove{}},
	},
	"life-orb": {
		{Trigger: BeforeDamageDealt, Effect: BoostDamage{Factor: 1.3}},
		{Trigger: AfterDamageDealt, Effect: RecoilDamage{Fraction: 0.10}},
	},
	"assault-vest": {
		{Trigger: OnStatusMoveAttempt, Effect: BlockStatusMoves{}},
	},
	"sitrus-berry": {
		{Trigger: OnHPThreshold, Effect: RestoreHP{Fraction: 0.25}, HPThreshold: 0.5, Consumes: true},
	},
	"lum-berry": {
		{Trigger: OnStatusApplied, Effect: CureStatus{}, Consumes: true},
	},
	"weakness-policy": {
		{Trigger: OnDamageTaken, Effect: BoostStat{Stat: model.StatAttack, Stages: 2}, SuperEffectiveOnly: true, Consumes: true},
		{Trigger: OnDamageTaken, Effect: BoostStat{Stat: model.StatSpecialAttack, Stages: 2}, SuperEffectiveOnly: true, Consumes: true},
	},
	"leftovers": {
		{Trigger: EndOfTurn, Effect: RestoreHP{Fraction: 1.0 / 16.0}},
	},
	"black-sludge": {
		{Trigger: EndOfTurn, Effect: RestoreHP{Fraction: 1.0 / 16.0, RequiresType: model.TypePoison}},
		{Trigger: EndOfTurn, Effect: RecoilDamage{Fraction: 1.0 / 16.0, ExcludesType: model.TypePoison}},
	},
	"rocky-helmet": {
		{Trigger: OnDamageTaken, Effect: DamageAttacker{Fraction: 1.0 / 6.0, ContactOnly: true}},
	},
}

// Hooks returns the hooks of an item. Unknown ids return nil.
func Hooks(itemID string) []Hook {
	return registry[itemID]
}

// HooksFor returns the hooks an item contributes at one trigger.
func HooksFor(itemID string, t Trigger) []Hook {
	var out []Hook
	for _, h := range registry[itemID] {
		if h.Trigger == t {
			out = append(out, h)
		}
	}
	return out
}

// SpeedFactor is the passive speed multiplier of a held item.
func SpeedFactor(itemID string) float64 {
	if itemID == "choice-scarf" {
		return 1.5
	}
	return 1.0
}

// StatFactor is the passive multiplier an item applies to a defensive or
// offensive stat during damage calculation.
func StatFactor(itemID string, stat model.Stat) float64 {
	if itemID == "assault-vest" && stat == model.StatSpecialDefense {
		return 1.5
	}
	return 1.0
}

// Ungrounds reports whether holding the item lifts the holder off the
// ground (air-balloon).
func Ungrounds(itemID string) bool {
	return itemID == "air-balloon"
}

// Name renders an item id as display text ("choice-band" → "Choice Band").
func Name(itemID string) string {
	out := make([]byte, 0, len(itemID))
	upper := true
	for i := 0; i < len(itemID); i++ {
		c := itemID[i]
		if c == '-' {
			out = append(out, ' ')
			upper = true
			continue
		}
		if upper && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upper = false
		out = append(out, c)
	}
	return string(out)
}
