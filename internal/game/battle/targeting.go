package battle

import (
	"github.com/randomlocke/core/internal/model"
	"github.com/randomlocke/core/internal/rng"
)

// ResolveTargets maps a move's target tag plus the chosen position to
// the list of live positions the move will hit. Redirection is applied
// to single-target selections before validation.
func ResolveTargets(
	f *Field,
	user model.FieldPosition,
	tag model.TargetTag,
	chosen *model.FieldPosition,
	attacker *model.CreatureInstance,
	r *rng.Rand,
) []model.FieldPosition {
	opposing := !user.IsPlayerSide()

	switch tag {
	case model.TargetUser:
		return []model.FieldPosition{user}

	case model.TargetRandomOpponent:
		live := f.LivePositions(opposing)
		if len(live) == 0 {
			return nil
		}
		pick := live[r.IntN(len(live))]
		return []model.FieldPosition{ApplyRedirection(f, user, pick, attacker, tag)}

	case model.TargetAllOpponents, model.TargetOpponentsField:
		return f.LivePositions(opposing)

	case model.TargetAllOther, model.TargetEntireField:
		var out []model.FieldPosition
		for _, pos := range f.AllLivePositions() {
			if pos != user {
				out = append(out, pos)
			}
		}
		return out

	case model.TargetUsersField:
		return f.LivePositions(user.IsPlayerSide())

	case model.TargetAlly:
		allyPos := user.Ally()
		if f.State.Format == model.FormatDouble && f.Alive(allyPos) {
			return []model.FieldPosition{allyPos}
		}
		return nil

	case model.TargetSelected:
		if chosen == nil {
			// Singles defaults to the lone opposing slot; doubles needs an
			// explicit pick and the action fizzles without one.
			if f.State.Format == model.FormatSingle {
				def := user.Across()
				if f.Alive(def) {
					return []model.FieldPosition{ApplyRedirection(f, user, def, attacker, tag)}
				}
			}
			return nil
		}
		target := ApplyRedirection(f, user, *chosen, attacker, tag)
		if !f.Alive(target) {
			// Dead chosen target: retarget to any live opposing slot.
			live := f.LivePositions(opposing)
			if len(live) == 0 {
				return nil
			}
			target = live[0]
		}
		return []model.FieldPosition{target}
	}

	return nil
}
