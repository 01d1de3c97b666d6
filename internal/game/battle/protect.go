package battle

import (
	"github.com/randomlocke/core/internal/model"
	"github.com/randomlocke/core/internal/rng"
)

// protectFamily are the moves that raise single-target protection and
// grow the consecutive-use counter.
var protectFamily = map[string]bool{
	"protect": true,
	"detect":  true,
}

// CheckProtection reports whether the defender at pos blocks the
// incoming move, and which guard blocked it. The guards are consulted in
// a fixed order; the first match wins.
func CheckProtection(
	f *Field,
	pos model.FieldPosition,
	mv *model.MoveData,
	effectivePriority int,
) (blocked bool, guard string) {
	def := f.At(pos)
	if def == nil || def.Volatile == nil {
		return false, ""
	}
	v := def.Volatile

	if v.WideGuardActive && mv.Meta.Target.Spread() {
		return true, "Wide Guard"
	}
	if v.QuickGuardActive && effectivePriority > 0 {
		return true, "Quick Guard"
	}
	if v.MatBlockActive && mv.IsDamaging() {
		return true, "Mat Block"
	}
	if v.CraftyShield && mv.DamageClass == model.ClassStatus {
		return true, "Crafty Shield"
	}
	if v.Protected {
		return true, "Protect"
	}
	return false, ""
}

// TryProtect rolls the degrading success of a Protect-family use:
// 1/3^n for n prior consecutive uses. On success the protected flag is
// set and the counter grows.
func TryProtect(user *model.CreatureInstance, r *rng.Rand) bool {
	if user.Volatile == nil {
		return false
	}
	v := user.Volatile
	v.UsedProtectMove = true

	denom := 1
	for i := 0; i < v.ProtectCounter; i++ {
		denom *= 3
	}
	if denom > 1 && !r.OneIn(denom) {
		v.ProtectCounter = 0
		return false
	}
	v.Protected = true
	v.ProtectCounter++
	return true
}
