package battle

import "github.com/randomlocke/core/internal/model"

// resolveFaint settles the consequences of a faint at a position: team
// defeat checks, automatic opponent replacements and the player's
// forced-switch prompt. The faint log line is the caller's job.
func (e *Engine) resolveFaint(pos model.FieldPosition) {
	c := e.f.At(pos)
	if c != nil {
		c.LeaveField()
	}

	playerSide := pos.IsPlayerSide()
	if !teamHasLive(e.f.Team(pos)) {
		if playerSide {
			e.outcome = model.OutcomePlayerLost
			e.logf("You have no more creatures that can fight!")
		} else {
			e.outcome = model.OutcomePlayerWon
			e.logf("The opposing team was defeated!")
		}
		return
	}

	bench := e.f.BenchIndex(playerSide)
	if bench < 0 {
		// Doubles edge: the side still fights on its other slot but has
		// nobody left to fill this one.
		return
	}

	if playerSide {
		if e.outcome == model.OutcomeContinue {
			e.outcome = model.OutcomePlayerMustSwitch
		}
		return
	}

	e.f.State.SetActiveIndex(pos, bench)
	incoming := e.f.At(pos)
	incoming.EnterField()
	e.logf("The opponent sent out %s!", incoming.Name())
	e.fireEntryHooks(pos)
	if e.outcome == model.OutcomeContinue {
		e.outcome = model.OutcomeEnemySwitched
	}
}

// resolveForcedSwitch drags the creature at a position out for a random
// eligible bench member (Whirlwind, Roar, Dragon Tail). No eligible
// replacement means the move's push fizzles.
func (e *Engine) resolveForcedSwitch(pos model.FieldPosition) {
	current := e.f.At(pos)
	if current == nil {
		return
	}
	if current.Volatile != nil {
		current.Volatile.ForcedSwitch = false
	}

	team := e.f.Team(pos)
	active := e.activeIndices(pos.IsPlayerSide())
	var eligible []int
	for i, member := range team {
		if member.IsFainted() {
			continue
		}
		onField := false
		for _, a := range active {
			if a == i {
				onField = true
				break
			}
		}
		if !onField {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		return
	}

	pick := eligible[e.r.IntN(len(eligible))]
	current.LeaveField()
	e.logf("%s was dragged out!", team[pick].Name())
	e.f.State.SetActiveIndex(pos, pick)
	incoming := e.f.At(pos)
	incoming.EnterField()
	e.fireEntryHooks(pos)
}

func (e *Engine) activeIndices(playerSide bool) []int {
	if playerSide {
		return e.f.State.PlayerActiveIndices
	}
	return e.f.State.OpponentActiveIndices
}

func teamHasLive(team []*model.CreatureInstance) bool {
	for _, c := range team {
		if !c.IsFainted() {
			return true
		}
	}
	return false
}
