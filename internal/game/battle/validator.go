package battle

import (
	"github.com/randomlocke/core/internal/data"
	"github.com/randomlocke/core/internal/model"
)

// StruggleID is the fallback move used when nothing else is legal.
const StruggleID = "struggle"

// InitializeMovePP fills a creature's PP from the move catalog. Unknown
// moves keep whatever the record carried.
func InitializeMovePP(c *model.CreatureInstance) {
	for i := range c.Moves {
		if mv := data.GetMove(c.Moves[i].MoveID); mv != nil {
			c.Moves[i].MaxPP = mv.PP
			c.Moves[i].CurrentPP = mv.PP
		}
	}
}

// ConsumeMovePP decrements a learned move's PP by one. Struggle is never
// consumed. Returns false when the move is unknown or already empty.
func ConsumeMovePP(c *model.CreatureInstance, moveID string) bool {
	if moveID == StruggleID {
		return true
	}
	i := c.FindMove(moveID)
	if i < 0 || c.Moves[i].CurrentPP <= 0 {
		return false
	}
	c.Moves[i].CurrentPP--
	return true
}

// HasMovesWithPP reports whether any active move still has PP.
func HasMovesWithPP(c *model.CreatureInstance) bool {
	for _, lm := range c.ActiveMoves() {
		if lm.CurrentPP > 0 {
			return true
		}
	}
	return false
}

// CreateStruggleMove builds the Struggle fallback: typeless-normal
// 50-power physical contact hit with 25% max-HP recoil, never misses.
func CreateStruggleMove() *model.MoveData {
	power := 50
	return &model.MoveData{
		ID:          StruggleID,
		Name:        "Struggle",
		Type:        model.TypeNormal,
		Power:       &power,
		Accuracy:    nil,
		Priority:    0,
		PP:          255,
		DamageClass: model.ClassPhysical,
		Meta: model.MoveMeta{
			Ailment:      model.AilmentNone,
			Drain:        -25,
			MakesContact: true,
			Target:       model.TargetSelected,
		},
	}
}

// AilmentSucceeds resolves a move's ailment chance: an explicit chance
// is itself; chance 0 means guaranteed only for pure status moves.
func AilmentSucceeds(mv *model.MoveData, roll func(pct int) bool) bool {
	chance := mv.Meta.AilmentChance
	if chance == 0 {
		return mv.Power == nil
	}
	return roll(chance)
}
