package battle

import "github.com/randomlocke/core/internal/model"

// Field is a read/write view over the four slots of a battle: the
// player's team plus the opponent team owned by the state.
type Field struct {
	State  *model.BattleState
	Player []*model.CreatureInstance
}

// At returns the creature occupying a position, nil for empty slots.
func (f *Field) At(pos model.FieldPosition) *model.CreatureInstance {
	idx := f.State.ActiveIndex(pos)
	if idx < 0 {
		return nil
	}
	if pos.IsPlayerSide() {
		if idx >= len(f.Player) {
			return nil
		}
		return f.Player[idx]
	}
	if idx >= len(f.State.OpponentTeam) {
		return nil
	}
	return f.State.OpponentTeam[idx]
}

// Alive reports whether a position holds a creature with HP left.
func (f *Field) Alive(pos model.FieldPosition) bool {
	c := f.At(pos)
	return c != nil && !c.IsFainted()
}

// SidePositions returns the slots of one side in stable order.
func (f *Field) SidePositions(playerSide bool) []model.FieldPosition {
	slots := f.State.Format.Slots()
	out := make([]model.FieldPosition, 0, slots)
	for s := 0; s < slots; s++ {
		out = append(out, model.PositionFor(playerSide, s))
	}
	return out
}

// LivePositions returns the occupied, non-fainted slots of one side.
func (f *Field) LivePositions(playerSide bool) []model.FieldPosition {
	var out []model.FieldPosition
	for _, pos := range f.SidePositions(playerSide) {
		if f.Alive(pos) {
			out = append(out, pos)
		}
	}
	return out
}

// AllLivePositions returns every occupied slot, player side first.
func (f *Field) AllLivePositions() []model.FieldPosition {
	out := f.LivePositions(true)
	return append(out, f.LivePositions(false)...)
}

// Team returns the full team a position's side draws from.
func (f *Field) Team(pos model.FieldPosition) []*model.CreatureInstance {
	if pos.IsPlayerSide() {
		return f.Player
	}
	return f.State.OpponentTeam
}

// BenchIndex returns the first bench member with HP left that is not
// currently active on the position's side, or -1.
func (f *Field) BenchIndex(playerSide bool) int {
	var team []*model.CreatureInstance
	var active []int
	if playerSide {
		team, active = f.Player, f.State.PlayerActiveIndices
	} else {
		team, active = f.State.OpponentTeam, f.State.OpponentActiveIndices
	}
	for i, c := range team {
		if c.IsFainted() {
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
			return i
		}
	}
	return -1
}

// FindByInstanceID scans both teams for an instance id.
func (f *Field) FindByInstanceID(id string) *model.CreatureInstance {
	for _, c := range f.Player {
		if c.InstanceID == id {
			return c
		}
	}
	for _, c := range f.State.OpponentTeam {
		if c.InstanceID == id {
			return c
		}
	}
	return nil
}
