package battle

import (
	"fmt"

	"github.com/randomlocke/core/internal/game/ability"
	"github.com/randomlocke/core/internal/game/item"
	"github.com/randomlocke/core/internal/model"
	"github.com/randomlocke/core/internal/rng"
)

// ApplySecondaryEffects runs a move's riders once per target after the
// hit loop: drain or recoil, healing, flinch, stat changes and ailments.
// A sheer-force boosted move skips ailment, stat and flinch riders.
func ApplySecondaryEffects(
	f *Field,
	attacker *model.CreatureInstance,
	target *model.CreatureInstance,
	targetActed bool,
	mv *model.MoveData,
	damageDealt int,
	sheerForce bool,
	r *rng.Rand,
) []string {
	var logs []string
	m := mv.Meta

	// Drain and recoil scale with the damage actually dealt; Struggle
	// recoils on max HP instead.
	if m.Drain != 0 && damageDealt > 0 {
		if mv.ID == StruggleID {
			recoil := attacker.MaxHP() / 4
			attacker.ApplyDamage(recoil)
			logs = append(logs, attacker.Name()+" is damaged by recoil!")
		} else if m.Drain > 0 {
			healed := attacker.Heal(damageDealt * m.Drain / 100)
			if healed > 0 {
				logs = append(logs, target.Name()+" had its energy drained!")
			}
		} else {
			recoil := damageDealt * -m.Drain / 100
			if recoil < 1 {
				recoil = 1
			}
			attacker.ApplyDamage(recoil)
			logs = append(logs, attacker.Name()+" is damaged by recoil!")
		}
	}

	if m.Healing > 0 {
		healed := attacker.Heal(attacker.MaxHP() * m.Healing / 100)
		if healed > 0 {
			logs = append(logs, fmt.Sprintf("%s restored %d HP!", attacker.Name(), healed))
		}
	}

	if sheerForce {
		return logs
	}

	if m.FlinchChance > 0 && target.Volatile != nil && !targetActed && r.Chance(m.FlinchChance) {
		target.Volatile.Flinched = true
	}

	if len(m.StatChanges) > 0 {
		chance := m.StatChance
		if chance == 0 && mv.DamageClass == model.ClassStatus {
			chance = 100
		}
		if chance > 0 && (chance >= 100 || r.Chance(chance)) {
			logs = append(logs, applyStatChanges(attacker, target, mv)...)
		}
	}

	if m.Ailment != "" && m.Ailment != model.AilmentNone {
		if AilmentSucceeds(mv, r.Chance) {
			logs = append(logs, applyAilment(f, attacker, target, mv)...)
		}
	}

	return logs
}

// applyStatChanges routes a move's stage shifts: self-targeted moves
// shift the user, everything else shifts the victim. Drops on the victim
// respect its stat-protection abilities.
func applyStatChanges(attacker, target *model.CreatureInstance, mv *model.MoveData) []string {
	var logs []string

	recipient := target
	if mv.Meta.Target == model.TargetUser || mv.Meta.Target == model.TargetUsersField {
		recipient = attacker
	}
	if recipient.Stages == nil {
		return nil
	}

	for _, ch := range mv.Meta.StatChanges {
		if ch.Stages < 0 && recipient != attacker && statLossPrevented(recipient, ch.Stat) {
			logs = append(logs, recipient.Name()+"'s "+displayName(recipient.AbilityID)+
				" prevents stat loss!")
			continue
		}
		applied := recipient.Stages.Modify(ch.Stat, ch.Stages)
		logs = append(logs, stageChangeLog(recipient.Name(), ch.Stat, applied, ch.Stages))
	}
	return logs
}

func statLossPrevented(c *model.CreatureInstance, stat model.Stat) bool {
	for _, eff := range ability.EffectsFor(c.AbilityID, ability.BeforeDamage) {
		if p, ok := eff.(ability.PreventStatLoss); ok {
			if len(p.Stats) == 0 {
				return true
			}
			for _, s := range p.Stats {
				if s == stat {
					return true
				}
			}
		}
	}
	return false
}

func stageChangeLog(name string, stat model.Stat, applied, wanted int) string {
	label := displayName(string(stat))
	switch {
	case applied >= 2:
		return fmt.Sprintf("%s's %s rose sharply!", name, label)
	case applied == 1:
		return fmt.Sprintf("%s's %s rose!", name, label)
	case applied == -1:
		return fmt.Sprintf("%s's %s fell!", name, label)
	case applied <= -2:
		return fmt.Sprintf("%s's %s harshly fell!", name, label)
	case wanted > 0:
		return fmt.Sprintf("%s's %s won't go any higher!", name, label)
	default:
		return fmt.Sprintf("%s's %s won't go any lower!", name, label)
	}
}

// applyAilment inflicts a move's ailment, honoring type immunities,
// terrain shields, protective abilities and the one-status invariant.
func applyAilment(f *Field, attacker, target *model.CreatureInstance, mv *model.MoveData) []string {
	var logs []string
	ail := mv.Meta.Ailment

	switch ail {
	case model.AilmentConfusion:
		if target.Volatile != nil && !target.Volatile.Confused {
			target.Volatile.Confused = true
			logs = append(logs, target.Name()+" became confused!")
		}
		return logs
	case model.AilmentInfatuation:
		if target.Volatile != nil && target.Volatile.InfatuatedBy == "" {
			target.Volatile.InfatuatedBy = attacker.InstanceID
			logs = append(logs, target.Name()+" fell in love!")
		}
		return logs
	}

	status := ail.PersistentStatus()
	if status == "" {
		return nil
	}
	if target.Status != "" {
		return nil
	}
	if typeBlocksStatus(target, status) {
		return nil
	}
	if mv.ID == "spore" && target.HasType(model.TypeGrass) {
		return nil
	}
	if terrainBlocksStatus(f.State.TerrainKind(), target, status) {
		return nil
	}
	if !attackerIgnoresAbilities(attacker) && statusPrevented(target, status) {
		logs = append(logs, target.Name()+"'s "+displayName(target.AbilityID)+
			" prevents the status!")
		return logs
	}

	if target.SetStatus(status) {
		logs = append(logs, statusInflictedLog(target.Name(), status))
		logs = append(logs, consumeOnStatus(target)...)
	}
	return logs
}

// typeBlocksStatus covers the canonical type immunities to statuses.
func typeBlocksStatus(c *model.CreatureInstance, status model.StatusCondition) bool {
	switch status {
	case model.StatusBurn:
		return c.HasType(model.TypeFire)
	case model.StatusParalysis:
		return c.HasType(model.TypeElectric)
	case model.StatusPoison, model.StatusBadPoison:
		return c.HasType(model.TypePoison) || c.HasType(model.TypeSteel)
	case model.StatusFreeze:
		return c.HasType(model.TypeIce)
	}
	return false
}

// terrainBlocksStatus: electric terrain keeps grounded creatures awake,
// misty terrain blocks every status on grounded creatures.
func terrainBlocksStatus(terrain model.Terrain, c *model.CreatureInstance, status model.StatusCondition) bool {
	switch terrain {
	case model.TerrainElectric:
		return status == model.StatusSleep && IsGrounded(c)
	case model.TerrainMisty:
		return IsGrounded(c)
	}
	return false
}

func statusPrevented(c *model.CreatureInstance, status model.StatusCondition) bool {
	for _, eff := range ability.EffectsFor(c.AbilityID, ability.BeforeDamage) {
		if p, ok := eff.(ability.PreventStatus); ok {
			if len(p.Statuses) == 0 {
				return true
			}
			for _, s := range p.Statuses {
				if s == status {
					return true
				}
			}
		}
	}
	return false
}

func statusInflictedLog(name string, status model.StatusCondition) string {
	switch status {
	case model.StatusBurn:
		return name + " was burned!"
	case model.StatusParalysis:
		return name + " is paralyzed! It may be unable to move!"
	case model.StatusPoison:
		return name + " was poisoned!"
	case model.StatusBadPoison:
		return name + " was badly poisoned!"
	case model.StatusSleep:
		return name + " fell asleep!"
	case model.StatusFreeze:
		return name + " was frozen solid!"
	}
	return name + " was afflicted!"
}

// consumeOnStatus fires OnStatusApplied item hooks (lum-berry).
func consumeOnStatus(c *model.CreatureInstance) []string {
	var logs []string
	for _, h := range item.HooksFor(c.HeldItemID, item.OnStatusApplied) {
		if _, ok := h.Effect.(item.CureStatus); ok && c.Status != "" {
			cured := c.Status
			c.CureStatus()
			logs = append(logs, fmt.Sprintf("%s's %s cured its %s!",
				c.Name(), item.Name(c.HeldItemID), cured))
			if h.Consumes {
				c.HeldItemID = ""
			}
		}
	}
	return logs
}

// FireContactHooks runs the defender's on-contact punishments against an
// attacker that just made contact: status chances, chip damage and the
// rocky-helmet item.
func FireContactHooks(attacker, defender *model.CreatureInstance, r *rng.Rand) []string {
	var logs []string

	for _, eff := range ability.EffectsFor(defender.AbilityID, ability.OnContact) {
		switch e := eff.(type) {
		case ability.InflictStatusOnContact:
			if attacker.Status == "" && r.Chance(e.Chance) &&
				!typeBlocksStatus(attacker, e.Status) && !statusPrevented(attacker, e.Status) {
				if attacker.SetStatus(e.Status) {
					logs = append(logs, statusInflictedLog(attacker.Name(), e.Status))
					logs = append(logs, consumeOnStatus(attacker)...)
				}
			}
		case ability.DamageAttackerOnContact:
			chip := int(float64(attacker.MaxHP()) * e.Fraction)
			if chip < 1 {
				chip = 1
			}
			attacker.ApplyDamage(chip)
			logs = append(logs, attacker.Name()+" was hurt by "+
				defender.Name()+"'s "+displayName(defender.AbilityID)+"!")
		}
	}

	for _, h := range item.HooksFor(defender.HeldItemID, item.OnDamageTaken) {
		if d, ok := h.Effect.(item.DamageAttacker); ok && d.ContactOnly {
			chip := int(float64(attacker.MaxHP()) * d.Fraction)
			if chip < 1 {
				chip = 1
			}
			attacker.ApplyDamage(chip)
			logs = append(logs, attacker.Name()+" was hurt by the "+
				item.Name(defender.HeldItemID)+"!")
		}
	}

	return logs
}

// FireOnReceiveDamageHooks runs ability and item reactions on a creature
// that just took a hit (stamina, weak-armor, weakness-policy).
func FireOnReceiveDamageHooks(defender *model.CreatureInstance, superEffective bool) []string {
	var logs []string

	for _, eff := range ability.EffectsFor(defender.AbilityID, ability.OnReceiveDamage) {
		if mod, ok := eff.(ability.ModifyStatsOnHit); ok && defender.Stages != nil {
			for _, ch := range mod.Changes {
				applied := defender.Stages.Modify(ch.Stat, ch.Stages)
				logs = append(logs, stageChangeLog(defender.Name(), ch.Stat, applied, ch.Stages))
			}
		}
	}

	consumed := false
	for _, h := range item.HooksFor(defender.HeldItemID, item.OnDamageTaken) {
		if h.SuperEffectiveOnly && !superEffective {
			continue
		}
		if b, ok := h.Effect.(item.BoostStat); ok && defender.Stages != nil {
			applied := defender.Stages.Modify(b.Stat, b.Stages)
			logs = append(logs, stageChangeLog(defender.Name(), b.Stat, applied, b.Stages))
			if h.Consumes {
				consumed = true
			}
		}
	}
	if consumed {
		logs = append(logs, defender.Name()+"'s "+item.Name(defender.HeldItemID)+" was used up!")
		defender.HeldItemID = ""
	}

	return logs
}

// CheckHPThresholdItems fires threshold berries once the holder's HP
// crosses their activation line (sitrus at half).
func CheckHPThresholdItems(c *model.CreatureInstance) []string {
	if c.IsFainted() {
		return nil
	}
	var logs []string
	for _, h := range item.HooksFor(c.HeldItemID, item.OnHPThreshold) {
		if h.HPThreshold <= 0 || c.HPFraction() > h.HPThreshold {
			continue
		}
		if heal, ok := h.Effect.(item.RestoreHP); ok {
			healed := c.Heal(int(float64(c.MaxHP()) * heal.Fraction))
			if healed > 0 {
				logs = append(logs, fmt.Sprintf("%s restored HP using its %s!",
					c.Name(), item.Name(c.HeldItemID)))
			}
			if h.Consumes {
				c.HeldItemID = ""
			}
		}
	}
	return logs
}
