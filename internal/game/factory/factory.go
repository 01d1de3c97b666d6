// Package factory builds creature instances: seeded rolls for IVs,
// ability and moveset, plus the maintenance operations hosts use between
// battles (full restore, level changes, learning moves).
package factory

import (
	"fmt"
	"log/slog"

	"github.com/randomlocke/core/internal/data"
	"github.com/randomlocke/core/internal/model"
	"github.com/randomlocke/core/internal/rng"
)

// Options tunes generation. The zero value is vanilla behavior.
type Options struct {
	// ChaosMode replaces the species move pool with six unique uniform
	// picks from the whole move catalog.
	ChaosMode bool
}

// Create rolls a creature instance from a species, a level and a seed.
// Output is fully determined by its inputs: same seed, same creature.
func Create(speciesID string, level int, seed uint64, opts Options) (*model.CreatureInstance, error) {
	species := data.GetSpecies(speciesID)
	if species == nil {
		return nil, fmt.Errorf("unknown species %q", speciesID)
	}
	if level < 1 || level > 100 {
		return nil, fmt.Errorf("level %d out of range", level)
	}

	r := rng.New(seed)
	ivs := rollIVs(r)
	evs := model.PerStat{}

	c := &model.CreatureInstance{
		InstanceID: rollInstanceID(r),
		SpeciesID:  species.ID,
		Level:      level,
		AbilityID:  rollAbility(species, r),
		IVs:        ivs,
		EVs:        evs,
		Species:    species,
	}
	c.ComputedStats = ComputeStats(species.BaseStats, ivs, evs, level)
	c.CurrentHP = c.ComputedStats.HP

	if opts.ChaosMode {
		c.Moves = rollChaosMoves(r)
	} else {
		c.Moves = rollMoves(species.MovePool, r)
	}
	initializePP(c)

	slog.Debug("creature created",
		"species", species.ID, "level", level, "ability", c.AbilityID, "moves", len(c.Moves))
	return c, nil
}

// Team rolls n creatures from uniformly chosen species. Each member gets
// its own derived seed so teams are reproducible from one value.
func Team(n, level int, seed uint64, opts Options) ([]*model.CreatureInstance, error) {
	ids := data.SpeciesIDs()
	if len(ids) == 0 {
		return nil, fmt.Errorf("species catalog is empty")
	}
	r := rng.New(seed)

	team := make([]*model.CreatureInstance, 0, n)
	for i := 0; i < n; i++ {
		speciesID := ids[r.IntN(len(ids))]
		memberSeed := uint64(r.Uint32())<<32 | uint64(r.Uint32())
		c, err := Create(speciesID, level, memberSeed, opts)
		if err != nil {
			return nil, fmt.Errorf("team member %d: %w", i, err)
		}
		team = append(team, c)
	}
	return team, nil
}

// ComputeStat derives one stat: ⌊(2·base+iv+⌊ev/4⌋)·level/100⌋ plus
// level+10 for HP, plus 5 otherwise. Natures are not modeled.
func ComputeStat(base, iv, ev, level int, isHP bool) int {
	term := (2*base + iv + ev/4) * level / 100
	if isHP {
		return term + level + 10
	}
	return term + 5
}

// ComputeStats derives the full stat block.
func ComputeStats(base model.Stats, ivs, evs model.PerStat, level int) model.Stats {
	return model.Stats{
		HP:             ComputeStat(base.HP, ivs.HP, evs.HP, level, true),
		Attack:         ComputeStat(base.Attack, ivs.Attack, evs.Attack, level, false),
		Defense:        ComputeStat(base.Defense, ivs.Defense, evs.Defense, level, false),
		SpecialAttack:  ComputeStat(base.SpecialAttack, ivs.SpecialAttack, evs.SpecialAttack, level, false),
		SpecialDefense: ComputeStat(base.SpecialDefense, ivs.SpecialDefense, evs.SpecialDefense, level, false),
		Speed:          ComputeStat(base.Speed, ivs.Speed, evs.Speed, level, false),
	}
}

// FullRestore brings a creature back to pristine condition: max HP, no
// status, full PP.
func FullRestore(c *model.CreatureInstance) {
	c.CurrentHP = c.ComputedStats.HP
	c.CureStatus()
	for i := range c.Moves {
		c.Moves[i].CurrentPP = c.Moves[i].MaxPP
	}
}

// SetLevel moves a creature to a new level and recomputes its stats,
// preserving the HP fraction (a healthy creature stays healthy).
func SetLevel(c *model.CreatureInstance, level int) error {
	if level < 1 || level > 100 {
		return fmt.Errorf("level %d out of range", level)
	}
	if c.Species == nil {
		return fmt.Errorf("creature %s has no resolved species", c.InstanceID)
	}
	frac := c.HPFraction()
	c.Level = level
	c.ComputedStats = ComputeStats(c.Species.BaseStats, c.IVs, c.EVs, level)
	c.CurrentHP = int(frac * float64(c.ComputedStats.HP))
	if c.CurrentHP < 1 && frac > 0 {
		c.CurrentHP = 1
	}
	return nil
}

// LearnMove appends a move with its catalog PP. Duplicates are rejected;
// slots beyond the active four stay learned but unused in battle.
func LearnMove(c *model.CreatureInstance, moveID string) error {
	mv := data.GetMove(moveID)
	if mv == nil {
		return fmt.Errorf("unknown move %q", moveID)
	}
	if c.FindMove(moveID) >= 0 {
		return fmt.Errorf("%s already knows %s", c.Name(), moveID)
	}
	c.Moves = append(c.Moves, model.LearnedMove{
		MoveID:    moveID,
		CurrentPP: mv.PP,
		MaxPP:     mv.PP,
	})
	return nil
}

func rollIVs(r *rng.Rand) model.PerStat {
	return model.PerStat{
		HP:             r.IntN(32),
		Attack:         r.IntN(32),
		Defense:        r.IntN(32),
		SpecialAttack:  r.IntN(32),
		SpecialDefense: r.IntN(32),
		Speed:          r.IntN(32),
	}
}

func rollAbility(species *model.SpeciesData, r *rng.Rand) string {
	if len(species.Abilities) == 0 {
		return "none"
	}
	return species.Abilities[r.IntN(len(species.Abilities))]
}

// rollMoves shuffles the species pool and takes up to four.
func rollMoves(pool []string, r *rng.Rand) []model.LearnedMove {
	shuffled := append([]string(nil), pool...)
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	n := len(shuffled)
	if n > model.ActiveMoveSlots {
		n = model.ActiveMoveSlots
	}
	out := make([]model.LearnedMove, 0, n)
	for _, id := range shuffled[:n] {
		out = append(out, model.LearnedMove{MoveID: id})
	}
	return out
}

// rollChaosMoves draws six unique moves from the whole catalog.
func rollChaosMoves(r *rng.Rand) []model.LearnedMove {
	pool := data.MoveIDs()
	shuffled := append([]string(nil), pool...)
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	n := len(shuffled)
	if n > 6 {
		n = 6
	}
	out := make([]model.LearnedMove, 0, n)
	for _, id := range shuffled[:n] {
		out = append(out, model.LearnedMove{MoveID: id})
	}
	return out
}

func rollInstanceID(r *rng.Rand) string {
	hi := uint64(r.Uint32())<<32 | uint64(r.Uint32())
	lo := uint64(r.Uint32())<<32 | uint64(r.Uint32())
	return fmt.Sprintf("%016x%016x", hi, lo)
}

func initializePP(c *model.CreatureInstance) {
	for i := range c.Moves {
		if mv := data.GetMove(c.Moves[i].MoveID); mv != nil {
			c.Moves[i].CurrentPP = mv.PP
			c.Moves[i].MaxPP = mv.PP
		}
	}
}
