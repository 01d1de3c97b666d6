// Package ai provides the opponent's move selection policies. A policy
// only picks a move id; legality enforcement and the Struggle fallback
// live in the battle engine.
package ai

import (
	"log/slog"

	"github.com/randomlocke/core/internal/model"
	"github.com/randomlocke/core/internal/rng"
)

// FirstLegal picks the first active move that still has PP. The baseline
// opponent: deterministic and cheap.
type FirstLegal struct{}

// ChooseMove returns the first usable move id, or "" when every slot is
// empty (the engine then substitutes Struggle).
func (FirstLegal) ChooseMove(c *model.CreatureInstance) string {
	for _, lm := range c.ActiveMoves() {
		if lm.CurrentPP > 0 {
			return lm.MoveID
		}
	}
	slog.Debug("opponent has no usable moves", "creature", c.Name())
	return ""
}

// Random picks uniformly among the moves with PP left. Draws come from
// the battle's RNG stream so replays stay deterministic.
type Random struct {
	R *rng.Rand
}

func (p Random) ChooseMove(c *model.CreatureInstance) string {
	var usable []string
	for _, lm := range c.ActiveMoves() {
		if lm.CurrentPP > 0 {
			usable = append(usable, lm.MoveID)
		}
	}
	if len(usable) == 0 {
		return ""
	}
	return usable[p.R.IntN(len(usable))]
}
