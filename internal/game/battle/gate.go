package battle

import (
	"fmt"

	"github.com/randomlocke/core/internal/model"
	"github.com/randomlocke/core/internal/rng"
)

// confusionPower is the strength of the typeless self-hit.
const confusionPower = 40

// StatusGate runs the pre-action checks in order: sleep, freeze,
// paralysis, confusion, infatuation, flinch. Returns whether the actor
// may act plus the narration produced along the way. May mutate the
// actor (wake-up, thaw, confusion self-damage).
func StatusGate(actor *model.CreatureInstance, r *rng.Rand) (canAct bool, logs []string) {
	switch actor.Status {
	case model.StatusSleep:
		if r.Chance(33) {
			actor.CureStatus()
			logs = append(logs, actor.Name()+" woke up!")
		} else {
			logs = append(logs, actor.Name()+" is fast asleep!")
			return false, logs
		}
	case model.StatusFreeze:
		if r.Chance(20) {
			actor.CureStatus()
			logs = append(logs, actor.Name()+" thawed out!")
		} else {
			logs = append(logs, actor.Name()+" is frozen solid!")
			return false, logs
		}
	case model.StatusParalysis:
		if r.Chance(25) {
			logs = append(logs, actor.Name()+" is paralyzed and can't move!")
			return false, logs
		}
	}

	if actor.Volatile == nil {
		return true, logs
	}
	v := actor.Volatile

	if v.Confused {
		logs = append(logs, actor.Name()+" is confused!")
		if r.Chance(50) {
			dmg := confusionSelfDamage(actor)
			actor.ApplyDamage(dmg)
			logs = append(logs, fmt.Sprintf(
				"%s hurt itself in its confusion and lost %d HP!", actor.Name(), dmg))
			return false, logs
		}
		logs = append(logs, actor.Name()+" fought through its confusion this turn!")
	}

	if v.InfatuatedBy != "" {
		logs = append(logs, actor.Name()+" is in love!")
		if r.Chance(50) {
			logs = append(logs, actor.Name()+" is immobilized by love!")
			return false, logs
		}
	}

	if v.Flinched {
		logs = append(logs, actor.Name()+" flinched and couldn't move!")
		return false, logs
	}

	return true, logs
}

// confusionSelfDamage is a 40-power typeless physical hit against the
// creature's own defense: no STAB, no effectiveness, no random factor,
// stage multipliers only.
func confusionSelfDamage(c *model.CreatureInstance) int {
	attack := c.ComputedStats.Attack
	defense := c.ComputedStats.Defense
	if defense <= 0 {
		defense = 1
	}

	base := ((2*c.Level/5+2)*confusionPower*attack/defense)/50 + 2
	dmg := float64(base)
	if c.Stages != nil {
		dmg *= model.StageMultiplier(c.Stages.Attack) /
			model.StageMultiplier(c.Stages.Defense)
	}
	return int(dmg)
}
