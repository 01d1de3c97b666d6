package battle

import (
	"sort"

	"github.com/randomlocke/core/internal/game/ability"
	"github.com/randomlocke/core/internal/game/item"
	"github.com/randomlocke/core/internal/model"
	"github.com/randomlocke/core/internal/rng"
)

// switchPriority beats every move priority so switches resolve first.
const switchPriority = 6

// ActionCandidate is one creature's intent for the turn, annotated with
// everything the scheduler needs to order and execute it.
type ActionCandidate struct {
	Position       model.FieldPosition
	TeamIndex      int
	IsPlayer       bool
	Speed          float64
	Priority       int
	Move           *model.MoveData
	MoveTemplateID string
	SelectedTarget *model.FieldPosition
	Name           string

	IsSwitch bool
	SwitchTo int

	tiebreak uint32
}

// EffectivePriority derives a move's priority for an actor: the move's
// own value plus ability adjustments (prankster on status moves,
// gale-wings on Flying moves at full HP).
func EffectivePriority(actor *model.CreatureInstance, mv *model.MoveData) int {
	prio := mv.Priority
	for _, eff := range ability.EffectsFor(actor.AbilityID, ability.ModifyPriority) {
		mod, ok := eff.(ability.ModifyMovePriority)
		if !ok {
			continue
		}
		if mod.MoveType == nil {
			// Typeless entries key to status moves (prankster).
			if mv.DamageClass != model.ClassStatus {
				continue
			}
		} else if *mod.MoveType != mv.Type {
			continue
		}
		switch mod.Condition {
		case ability.CondFullHP:
			if actor.CurrentHP < actor.MaxHP() {
				continue
			}
		case ability.CondPoisoned:
			if actor.Status != model.StatusPoison && actor.Status != model.StatusBadPoison {
				continue
			}
		}
		prio += mod.Boost
	}
	return prio
}

// EffectiveSpeed derives the ordering speed: computed speed with stage
// multiplier, halved by paralysis, scaled by held item and by weather or
// terrain speed abilities.
func EffectiveSpeed(actor *model.CreatureInstance, weather model.Weather, terrain model.Terrain) float64 {
	speed := float64(actor.ComputedStats.Speed) * actor.StageMult(model.StatSpeed)

	if actor.Status == model.StatusParalysis {
		speed *= 0.5
	}
	speed *= item.SpeedFactor(actor.HeldItemID)

	for _, eff := range ability.EffectsFor(actor.AbilityID, ability.ModifySpeed) {
		switch e := eff.(type) {
		case ability.MultiplySpeedInWeather:
			if e.Weather == weather {
				speed *= e.Factor
			}
		case ability.MultiplySpeedInTerrain:
			if e.Terrain == terrain {
				speed *= e.Factor
			}
		}
	}
	return speed
}

// SortActions orders candidates for execution: priority descending, then
// effective speed descending, then a uniform random tie-break. Each
// candidate draws its tie-break before sorting so the order is a pure
// function of the RNG stream.
func SortActions(candidates []*ActionCandidate, r *rng.Rand) {
	for _, c := range candidates {
		c.tiebreak = r.Uint32()
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if a.Speed != b.Speed {
			return a.Speed > b.Speed
		}
		return a.tiebreak < b.tiebreak
	})
}
