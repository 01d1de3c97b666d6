package battle

import "github.com/randomlocke/core/internal/model"

// ApplyRedirection substitutes the redirector for the original target
// when a Follow-Me-family effect is up. Only doubles, only single-target
// moves; rage-powder does not pull Grass-typed attackers.
func ApplyRedirection(
	f *Field,
	user model.FieldPosition,
	target model.FieldPosition,
	attacker *model.CreatureInstance,
	tag model.TargetTag,
) model.FieldPosition {
	red := f.State.Redirection
	if red == nil || f.State.Format != model.FormatDouble {
		return target
	}
	if !tag.SingleTarget() {
		return target
	}
	if target == red.Redirector {
		return target
	}
	// The redirector only pulls moves coming from the other side.
	if red.OpponentOnly && user.IsPlayerSide() == red.Redirector.IsPlayerSide() {
		return target
	}
	if red.Kind == model.RedirectRagePowder && attacker.HasType(model.TypeGrass) {
		return target
	}
	if !f.Alive(red.Redirector) {
		return target
	}
	return red.Redirector
}
