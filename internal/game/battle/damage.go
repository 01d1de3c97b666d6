// Package battle implements the deterministic turn pipeline: damage
// calculation, targeting, redirection, protection, the action scheduler,
// secondary effects, residuals and outcome resolution.
package battle

import (
	"github.com/randomlocke/core/internal/data"
	"github.com/randomlocke/core/internal/game/ability"
	"github.com/randomlocke/core/internal/game/item"
	"github.com/randomlocke/core/internal/model"
	"github.com/randomlocke/core/internal/rng"
)

// Effectiveness labels returned by CalculateDamage.
const (
	LabelSuperEffective   = "super effective"
	LabelNotVeryEffective = "not very effective"
)

// DamageResult is the outcome of one damage computation.
type DamageResult struct {
	Damage   int
	Label    string
	Critical bool
	// Absorbed is set when the defender's ability nullified the move;
	// Logs then carries the absorb narration.
	Absorbed bool
	Logs     []string
	// SheerForce is set when the attacker's sheer-force boosted the move,
	// which suppresses its secondary effects.
	SheerForce bool
}

// CalculateDamage runs the full modifier stack for one hit.
// It may mutate the defender when an absorb ability heals or boosts.
//
// Gen V+ base formula: ((2*Level/5 + 2) * Power * A / D) / 50 + 2,
// then STAB, type effectiveness, weather, terrain, ability and burn
// modifiers, crit, and the 0.85-1.0 random factor.
func CalculateDamage(
	attacker, defender *model.CreatureInstance,
	mv *model.MoveData,
	isCritical bool,
	r *rng.Rand,
	weather model.Weather,
	terrain model.Terrain,
) DamageResult {
	if mv.Power == nil || mv.DamageClass == model.ClassStatus {
		return DamageResult{}
	}
	power := *mv.Power

	// Defensive ability immunities, unless the attacker pierces them.
	if !attackerIgnoresAbilities(attacker) {
		if res, absorbed := checkAbilityAbsorb(defender, mv); absorbed {
			return res
		}
	}

	eff := data.Effectiveness(mv.Type, defender.Types())
	if eff == 0 {
		return DamageResult{}
	}

	stab := stabMultiplier(attacker, mv.Type)

	var offense, defense float64
	var offStat, defStat model.Stat
	if mv.DamageClass == model.ClassPhysical {
		offense = float64(attacker.ComputedStats.Attack)
		defense = float64(defender.ComputedStats.Defense)
		offStat, defStat = model.StatAttack, model.StatDefense
	} else {
		offense = float64(attacker.ComputedStats.SpecialAttack)
		defense = float64(defender.ComputedStats.SpecialDefense)
		offStat, defStat = model.StatSpecialAttack, model.StatSpecialDefense
	}

	// Stage multipliers. A crit ignores the attacker's negative offense
	// stages and the defender's positive defense stages.
	offStage, defStage := 0, 0
	if attacker.Stages != nil {
		offStage = attacker.Stages.Get(offStat)
	}
	if defender.Stages != nil {
		defStage = defender.Stages.Get(defStat)
	}
	if isCritical {
		if offStage < 0 {
			offStage = 0
		}
		if defStage > 0 {
			defStage = 0
		}
	}
	offense *= model.StageMultiplier(offStage)
	defense *= model.StageMultiplier(defStage)

	offense *= offensiveAbilityMultiplier(attacker, mv, offStat)
	defense *= weatherDefenseMultiplier(weather, defender, defStat)
	defense *= item.StatFactor(defender.HeldItemID, defStat)

	level := float64(attacker.Level)
	base := (2.0*level/5.0+2.0)*float64(power)*offense/defense/50.0 + 2.0

	modifiers := stab * eff
	modifiers *= weatherDamageMultiplier(weather, mv.Type)
	modifiers *= terrainDamageMultiplier(terrain, attacker, defender, mv)

	abilityMod, sheerForce := attackerDamageMultiplier(attacker, mv, power)
	modifiers *= abilityMod
	if !attackerIgnoresAbilities(attacker) {
		modifiers *= defenderDamageMultiplier(defender, eff)
	}
	modifiers *= itemDamageMultiplier(attacker, mv)

	if mv.DamageClass == model.ClassPhysical &&
		attacker.Status == model.StatusBurn &&
		attacker.AbilityID != "guts" {
		modifiers *= 0.5
	}

	if isCritical {
		modifiers *= 1.5
	}

	final := int(base * modifiers * r.DamageRoll())
	if final < 1 {
		final = 1
	}

	var label string
	switch {
	case eff >= 2.0:
		label = LabelSuperEffective
	case eff <= 0.5:
		label = LabelNotVeryEffective
	}

	return DamageResult{
		Damage:     final,
		Label:      label,
		Critical:   isCritical,
		SheerForce: sheerForce,
	}
}

// checkAbilityAbsorb consults the defender's TypeImmunity hooks. On a
// match the move is nullified; absorb abilities additionally heal or
// boost the defender.
func checkAbilityAbsorb(defender *model.CreatureInstance, mv *model.MoveData) (DamageResult, bool) {
	for _, eff := range ability.EffectsFor(defender.AbilityID, ability.BeforeDamage) {
		imm, ok := eff.(ability.TypeImmunity)
		if !ok || imm.Type != mv.Type {
			continue
		}
		res := DamageResult{Absorbed: true}
		res.Logs = append(res.Logs,
			defender.Name()+"'s "+displayName(defender.AbilityID)+" absorbed the attack!")
		if imm.HealFraction > 0 {
			healed := defender.Heal(int(float64(defender.MaxHP()) * imm.HealFraction))
			if healed > 0 {
				res.Logs = append(res.Logs, defender.Name()+" restored some HP!")
			}
		}
		if imm.Boost != nil && defender.Stages != nil {
			if applied := defender.Stages.Modify(imm.Boost.Stat, imm.Boost.Stages); applied != 0 {
				res.Logs = append(res.Logs,
					defender.Name()+"'s "+string(imm.Boost.Stat)+" rose!")
			}
		}
		return res, true
	}
	return DamageResult{}, false
}

func attackerIgnoresAbilities(attacker *model.CreatureInstance) bool {
	for _, eff := range ability.EffectsFor(attacker.AbilityID, ability.BeforeDamage) {
		if _, ok := eff.(ability.IgnoreOpponentAbility); ok {
			return true
		}
	}
	return false
}

func stabMultiplier(attacker *model.CreatureInstance, moveType model.Type) float64 {
	if !attacker.HasType(moveType) {
		return 1.0
	}
	if attacker.AbilityID == "adaptability" {
		return 2.0
	}
	return 1.5
}

// offensiveAbilityMultiplier covers the passive stat multipliers
// (huge-power) and the pinch boosts (blaze at low HP).
func offensiveAbilityMultiplier(attacker *model.CreatureInstance, mv *model.MoveData, offStat model.Stat) float64 {
	mult := 1.0
	for _, eff := range ability.EffectsFor(attacker.AbilityID, ability.BeforeDamage) {
		switch e := eff.(type) {
		case ability.MultiplyBaseStat:
			if e.Stat == offStat {
				mult *= e.Factor
			}
		case ability.BoostTypeAtLowHP:
			if e.Type == mv.Type && attacker.HPFraction() <= e.Threshold {
				mult *= e.Factor
			}
		}
	}
	return mult
}

func weatherDefenseMultiplier(weather model.Weather, defender *model.CreatureInstance, defStat model.Stat) float64 {
	switch weather {
	case model.WeatherSandstorm:
		if defStat == model.StatSpecialDefense && defender.HasType(model.TypeRock) {
			return 1.5
		}
	case model.WeatherHail:
		if defStat == model.StatDefense && defender.HasType(model.TypeIce) {
			return 1.5
		}
	}
	return 1.0
}

func weatherDamageMultiplier(weather model.Weather, moveType model.Type) float64 {
	switch weather {
	case model.WeatherSun:
		if moveType == model.TypeFire {
			return 1.5
		}
		if moveType == model.TypeWater {
			return 0.5
		}
	case model.WeatherRain:
		if moveType == model.TypeWater {
			return 1.5
		}
		if moveType == model.TypeFire {
			return 0.5
		}
	}
	return 1.0
}

// grassyWeakenedMoves are the wide ground moves grassy terrain softens.
var grassyWeakenedMoves = map[string]bool{
	"earthquake": true,
	"bulldoze":   true,
	"magnitude":  true,
}

func terrainDamageMultiplier(terrain model.Terrain, attacker, defender *model.CreatureInstance, mv *model.MoveData) float64 {
	switch terrain {
	case model.TerrainElectric:
		if mv.Type == model.TypeElectric && IsGrounded(attacker) {
			return 1.3
		}
	case model.TerrainPsychic:
		if mv.Type == model.TypePsychic && IsGrounded(attacker) {
			return 1.3
		}
	case model.TerrainGrassy:
		if grassyWeakenedMoves[mv.ID] {
			return 0.5
		}
		if mv.Type == model.TypeGrass && IsGrounded(attacker) {
			return 1.3
		}
	case model.TerrainMisty:
		if mv.Type == model.TypeDragon && IsGrounded(defender) {
			return 0.5
		}
	}
	return 1.0
}

// attackerDamageMultiplier covers tough-claws, technician and
// sheer-force. The second return reports sheer-force activation so the
// caller can suppress the move's secondaries.
func attackerDamageMultiplier(attacker *model.CreatureInstance, mv *model.MoveData, power int) (float64, bool) {
	mult := 1.0
	sheerForce := false
	for _, eff := range ability.EffectsFor(attacker.AbilityID, ability.BeforeDamage) {
		switch e := eff.(type) {
		case ability.BoostContactMoves:
			if mv.Meta.MakesContact {
				mult *= e.Factor
			}
		case ability.BoostWeakMoves:
			if power <= e.Threshold {
				mult *= e.Factor
			}
		case ability.RemoveSecondaryEffects:
			if hasSecondaryEffect(mv) {
				mult *= e.Factor
				sheerForce = true
			}
		}
	}
	return mult, sheerForce
}

func defenderDamageMultiplier(defender *model.CreatureInstance, eff float64) float64 {
	mult := 1.0
	for _, e := range ability.EffectsFor(defender.AbilityID, ability.BeforeDamage) {
		if r, ok := e.(ability.ReduceSuperEffectiveDamage); ok && eff >= 2.0 {
			mult *= r.Factor
		}
	}
	return mult
}

func itemDamageMultiplier(attacker *model.CreatureInstance, mv *model.MoveData) float64 {
	mult := 1.0
	for _, h := range item.HooksFor(attacker.HeldItemID, item.BeforeDamageDealt) {
		if b, ok := h.Effect.(item.BoostDamage); ok {
			if b.Class == "" || b.Class == mv.DamageClass {
				mult *= b.Factor
			}
		}
	}
	return mult
}

// hasSecondaryEffect reports whether a move carries any sheer-force
// relevant secondary (ailment, stat change or flinch rider).
func hasSecondaryEffect(mv *model.MoveData) bool {
	m := mv.Meta
	if m.Ailment != "" && m.Ailment != model.AilmentNone && m.AilmentChance > 0 {
		return true
	}
	if len(m.StatChanges) > 0 && mv.DamageClass != model.ClassStatus {
		return true
	}
	return m.FlinchChance > 0
}

// displayName renders a registry id as display text ("sheer-force" →
// "Sheer Force").
func displayName(id string) string {
	out := make([]byte, 0, len(id))
	upper := true
	for i := 0; i < len(id); i++ {
		c := id[i]
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

// IsGrounded reports whether terrain and ground moves reach a creature:
// not Flying-typed, no levitate, no air-balloon, not lifted by
// magnet-rise or telekinesis.
func IsGrounded(c *model.CreatureInstance) bool {
	if c.HasType(model.TypeFlying) {
		return false
	}
	if c.AbilityID == "levitate" {
		return false
	}
	if item.Ungrounds(c.HeldItemID) {
		return false
	}
	if c.Volatile != nil && (c.Volatile.MagnetRise || c.Volatile.Telekinesis) {
		return false
	}
	return true
}

// CheckCriticalHit rolls a crit for the cumulative crit stage.
// Stage 0: 1/24, stage 1: 1/8, stage 2: 1/2, stage 3+: guaranteed.
func CheckCriticalHit(stage int, r *rng.Rand) bool {
	switch {
	case stage <= 0:
		return r.OneIn(24)
	case stage == 1:
		return r.OneIn(8)
	case stage == 2:
		return r.OneIn(2)
	default:
		return true
	}
}

// CritStage sums the move's crit rate, the attacker's volatile crit
// boosts and ability crit modifiers.
func CritStage(attacker *model.CreatureInstance, mv *model.MoveData) int {
	stage := mv.Meta.CritRate
	if attacker.Volatile != nil {
		stage += attacker.Volatile.CritStage
	}
	for _, eff := range ability.EffectsFor(attacker.AbilityID, ability.BeforeDamage) {
		if c, ok := eff.(ability.ModifyCritRate); ok {
			stage += c.Stages
		}
	}
	return stage
}

// HitCount rolls the number of strikes for a multi-hit move.
// The canonical 2-5 range uses the 35/35/15/15 split; fixed ranges
// return their value; other ranges draw uniformly.
func HitCount(minHits, maxHits int, r *rng.Rand) int {
	if minHits <= 0 || maxHits <= 0 {
		return 1
	}
	if minHits == maxHits {
		return minHits
	}
	if minHits > maxHits {
		return 1
	}
	if minHits == 2 && maxHits == 5 {
		roll := r.IntN(100)
		switch {
		case roll < 35:
			return 2
		case roll < 70:
			return 3
		case roll < 85:
			return 4
		default:
			return 5
		}
	}
	return minHits + r.IntN(maxHits-minHits+1)
}
