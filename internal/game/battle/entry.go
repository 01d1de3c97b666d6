package battle

import (
	"github.com/randomlocke/core/internal/game/ability"
	"github.com/randomlocke/core/internal/model"
)

// fireEntryHooks runs the OnEntry ability effects of the creature at a
// position: weather and terrain summons, intimidate-style stage drops
// and the custom entry abilities.
func (e *Engine) fireEntryHooks(pos model.FieldPosition) {
	c := e.f.At(pos)
	if c == nil || c.IsFainted() {
		return
	}
	st := e.f.State

	for _, eff := range ability.EffectsFor(c.AbilityID, ability.OnEntry) {
		switch effect := eff.(type) {
		case ability.SetWeather:
			if st.WeatherKind() != effect.Kind {
				st.Weather = &model.WeatherState{Kind: effect.Kind, TurnsRemaining: effect.Turns}
				e.logf("%s's %s changed the weather!", c.Name(), displayName(c.AbilityID))
				e.logf("%s", weatherStartLog(effect.Kind))
			}
		case ability.SetTerrain:
			if st.TerrainKind() != effect.Kind {
				st.Terrain = &model.TerrainState{Kind: effect.Kind, TurnsRemaining: effect.Turns}
				e.logf("%s's %s changed the terrain!", c.Name(), displayName(c.AbilityID))
				e.logf("%s", terrainStartLog(effect.Kind))
			}
		case ability.ModifyStatOnEntry:
			e.applyEntryStatChange(pos, c, effect)
		case ability.Custom:
			e.runCustomEntryAbility(pos, c, effect.ID)
		}
	}
}

func (e *Engine) applyEntryStatChange(pos model.FieldPosition, c *model.CreatureInstance, effect ability.ModifyStatOnEntry) {
	var recipients []model.FieldPosition
	switch effect.Target {
	case ability.TargetSelf:
		recipients = []model.FieldPosition{pos}
	case ability.TargetAllOpponents:
		recipients = e.f.LivePositions(!pos.IsPlayerSide())
	case ability.TargetAllies:
		recipients = e.f.LivePositions(pos.IsPlayerSide())
	}

	for _, rp := range recipients {
		target := e.f.At(rp)
		if target == nil || target.Stages == nil {
			continue
		}
		if effect.Stages < 0 && statLossPrevented(target, effect.Stat) {
			e.logf("%s's %s prevents stat loss!", target.Name(), displayName(target.AbilityID))
			continue
		}
		applied := target.Stages.Modify(effect.Stat, effect.Stages)
		e.logf("%s's %s: %s", c.Name(), displayName(c.AbilityID),
			stageChangeLog(target.Name(), effect.Stat, applied, effect.Stages))
	}
}

// runCustomEntryAbility handles the abilities the declarative table
// cannot express.
func (e *Engine) runCustomEntryAbility(pos model.FieldPosition, c *model.CreatureInstance, id string) {
	switch id {
	case "download":
		// Compare the leading opponent's defenses and boost the offense
		// that hits the softer side.
		opposing := e.f.LivePositions(!pos.IsPlayerSide())
		if len(opposing) == 0 || c.Stages == nil {
			return
		}
		foe := e.f.At(opposing[0])
		stat := model.StatSpecialAttack
		if foe.ComputedStats.Defense < foe.ComputedStats.SpecialDefense {
			stat = model.StatAttack
		}
		applied := c.Stages.Modify(stat, 1)
		e.logf("%s's Download: %s", c.Name(), stageChangeLog(c.Name(), stat, applied, 1))
	}
}
