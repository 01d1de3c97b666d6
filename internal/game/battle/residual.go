package battle

import (
	"github.com/randomlocke/core/internal/game/ability"
	"github.com/randomlocke/core/internal/game/item"
	"github.com/randomlocke/core/internal/model"
)

// resolveResiduals runs the end-of-turn phase over every live slot in
// field order (player left to opponent right). Per slot: status damage,
// weather chip, leech seed drain, grassy terrain heal, ability and item
// end-of-turn effects, then threshold berries. A faint during the phase
// resolves immediately; the phase stops once the battle is decided.
func (e *Engine) resolveResiduals() {
	for _, pos := range e.f.AllLivePositions() {
		if e.outcome.Terminal() {
			return
		}
		c := e.f.At(pos)
		if c == nil || c.IsFainted() {
			continue
		}

		e.applyStatusDamage(pos, c)
		if e.checkResidualFaint(pos, c) {
			continue
		}

		e.applyWeatherDamage(pos, c)
		if e.checkResidualFaint(pos, c) {
			continue
		}

		e.applyLeechSeed(pos, c)
		if e.checkResidualFaint(pos, c) {
			continue
		}

		if e.f.State.TerrainKind() == model.TerrainGrassy && IsGrounded(c) && !c.IsFainted() {
			healed := c.Heal(c.MaxHP() / 16)
			if healed > 0 {
				e.logf("%s was healed by the grassy terrain!", c.Name())
			}
		}

		e.applyAbilityEndOfTurn(c)
		e.applyItemEndOfTurn(pos, c)
		if e.checkResidualFaint(pos, c) {
			continue
		}

		e.logLines(CheckHPThresholdItems(c))
	}
}

// checkResidualFaint logs and resolves a faint caused by residual
// damage. Returns true when the slot's creature went down.
func (e *Engine) checkResidualFaint(pos model.FieldPosition, c *model.CreatureInstance) bool {
	if !c.IsFainted() {
		return false
	}
	e.logf("%s fainted!", c.Name())
	e.resolveFaint(pos)
	return true
}

func (e *Engine) applyStatusDamage(pos model.FieldPosition, c *model.CreatureInstance) {
	switch c.Status {
	case model.StatusBurn:
		c.ApplyDamage(c.MaxHP() / 16)
		e.logf("%s was hurt by its burn!", c.Name())
	case model.StatusPoison:
		c.ApplyDamage(c.MaxHP() / 8)
		e.logf("%s was hurt by poison!", c.Name())
	case model.StatusBadPoison:
		if c.Volatile != nil {
			c.Volatile.BadlyPoisoned++
			c.ApplyDamage(c.MaxHP() * c.Volatile.BadlyPoisoned / 16)
		} else {
			c.ApplyDamage(c.MaxHP() / 16)
		}
		e.logf("%s was hurt by poison!", c.Name())
	}
}

func (e *Engine) applyWeatherDamage(pos model.FieldPosition, c *model.CreatureInstance) {
	switch e.f.State.WeatherKind() {
	case model.WeatherSandstorm:
		if c.HasType(model.TypeRock) || c.HasType(model.TypeGround) || c.HasType(model.TypeSteel) {
			return
		}
		c.ApplyDamage(c.MaxHP() / 16)
		e.logf("%s is buffeted by the sandstorm!", c.Name())
	case model.WeatherHail:
		if c.HasType(model.TypeIce) {
			return
		}
		c.ApplyDamage(c.MaxHP() / 16)
		e.logf("%s is pelted by hail!", c.Name())
	}
}

// applyLeechSeed drains 1/8 max HP and feeds it to the seeder, looked up
// by instance id so the drain follows the seeder across slots. A fainted
// or absent seeder still drains; the heal is simply lost.
func (e *Engine) applyLeechSeed(pos model.FieldPosition, c *model.CreatureInstance) {
	if c.Volatile == nil || !c.Volatile.LeechSeeded {
		return
	}
	drained := c.ApplyDamage(c.MaxHP() / 8)
	e.logf("%s's health was sapped by Leech Seed!", c.Name())
	if drained <= 0 {
		return
	}
	seeder := e.f.FindByInstanceID(c.Volatile.LeechSeedSource)
	if seeder != nil && !seeder.IsFainted() && seeder.OnField() {
		seeder.Heal(drained)
	}
}

func (e *Engine) applyAbilityEndOfTurn(c *model.CreatureInstance) {
	st := e.f.State
	for _, eff := range ability.EffectsFor(c.AbilityID, ability.EndOfTurn) {
		switch effect := eff.(type) {
		case ability.HealEndOfTurn:
			if effect.Weather != "" && st.WeatherKind() != effect.Weather {
				continue
			}
			if effect.Terrain != "" && st.TerrainKind() != effect.Terrain {
				continue
			}
			if c.Heal(int(float64(c.MaxHP())*effect.Fraction)) > 0 {
				e.logf("%s restored a little HP with its %s!", c.Name(), displayName(c.AbilityID))
			}
		case ability.BoostStatEndOfTurn:
			if c.Stages == nil {
				continue
			}
			applied := c.Stages.Modify(effect.Stat, effect.Stages)
			if applied != 0 {
				e.logf("%s", stageChangeLog(c.Name(), effect.Stat, applied, effect.Stages))
			}
		}
	}
}

func (e *Engine) applyItemEndOfTurn(pos model.FieldPosition, c *model.CreatureInstance) {
	for _, h := range item.HooksFor(c.HeldItemID, item.EndOfTurn) {
		switch effect := h.Effect.(type) {
		case item.RestoreHP:
			if effect.RequiresType != model.TypeUnknown && !c.HasType(effect.RequiresType) {
				continue
			}
			if c.Heal(int(float64(c.MaxHP())*effect.Fraction)) > 0 {
				e.logf("%s restored a little HP with its %s!", c.Name(), item.Name(c.HeldItemID))
			}
		case item.RecoilDamage:
			if effect.ExcludesType != model.TypeUnknown && c.HasType(effect.ExcludesType) {
				continue
			}
			c.ApplyDamage(int(float64(c.MaxHP()) * effect.Fraction))
			e.logf("%s was hurt by its %s!", c.Name(), item.Name(c.HeldItemID))
		}
	}
}

// tickFieldTimers decrements weather, terrain and perish counters after
// residuals. State expiring at zero clears with a log line.
func (e *Engine) tickFieldTimers() {
	st := e.f.State

	if st.Weather != nil {
		st.Weather.TurnsRemaining--
		if st.Weather.TurnsRemaining <= 0 {
			e.logf("%s", weatherEndedLog(st.Weather.Kind))
			st.Weather = nil
		}
	}
	if st.Terrain != nil {
		st.Terrain.TurnsRemaining--
		if st.Terrain.TurnsRemaining <= 0 {
			e.logf("The terrain returned to normal.")
			st.Terrain = nil
		}
	}

	for _, pos := range e.f.AllLivePositions() {
		if e.outcome.Terminal() {
			return
		}
		c := e.f.At(pos)
		if c == nil || c.Volatile == nil || c.Volatile.PerishCount == 0 {
			continue
		}
		c.Volatile.PerishCount--
		e.logf("%s's perish count fell to %d!", c.Name(), c.Volatile.PerishCount)
		if c.Volatile.PerishCount == 0 {
			c.ApplyDamage(c.CurrentHP)
			e.checkResidualFaint(pos, c)
		}
	}
}

// clearEndOfTurnVolatiles resets the per-turn bookkeeping that survives
// the action loop: the protect chain breaks for creatures that did not
// protect this turn, and entry freshness expires.
func (e *Engine) clearEndOfTurnVolatiles() {
	for _, pos := range e.f.AllLivePositions() {
		c := e.f.At(pos)
		if c == nil || c.Volatile == nil {
			continue
		}
		if !c.Volatile.UsedProtectMove {
			c.Volatile.ProtectCounter = 0
		}
		c.Volatile.JustEntered = false
	}
}

func weatherEndedLog(w model.Weather) string {
	switch w {
	case model.WeatherSun:
		return "The sunlight faded."
	case model.WeatherRain:
		return "The rain stopped."
	case model.WeatherSandstorm:
		return "The sandstorm subsided."
	case model.WeatherHail:
		return "The hail stopped."
	}
	return "The weather returned to normal."
}
