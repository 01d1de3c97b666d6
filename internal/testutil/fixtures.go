// Package testutil provides shared battle fixtures: a small species and
// move catalog plus team builders, used by the factory, session and
// persistence tests.
package testutil

import (
	"sync"
	"testing"

	"github.com/randomlocke/core/internal/data"
	"github.com/randomlocke/core/internal/model"
)

var catalogOnce sync.Once

func intPtr(v int) *int { return &v }

// RegisterCatalog installs the fixture species and moves. The catalog is
// process-global, so registration runs once regardless of callers.
func RegisterCatalog(t *testing.T) {
	t.Helper()
	catalogOnce.Do(func() {
		registerMoves()
		registerSpecies()
	})
}

func registerMoves() {
	data.RegisterMove(&model.MoveData{
		ID: "scratch", Name: "Scratch", Type: model.TypeNormal,
		Power: intPtr(40), Accuracy: intPtr(100), PP: 35,
		DamageClass: model.ClassPhysical,
		Meta: model.MoveMeta{
			Ailment: model.AilmentNone, MakesContact: true,
			Target: model.TargetSelected,
		},
	})
	data.RegisterMove(&model.MoveData{
		ID: "flame-burst", Name: "Flame Burst", Type: model.TypeFire,
		Power: intPtr(70), Accuracy: intPtr(100), PP: 15,
		DamageClass: model.ClassSpecial,
		Meta: model.MoveMeta{
			Ailment: model.AilmentBurn, AilmentChance: 10,
			Target: model.TargetSelected,
		},
	})
	data.RegisterMove(&model.MoveData{
		ID: "bubble-beam", Name: "Bubble Beam", Type: model.TypeWater,
		Power: intPtr(65), Accuracy: intPtr(100), PP: 20,
		DamageClass: model.ClassSpecial,
		Meta: model.MoveMeta{
			Ailment: model.AilmentNone,
			Target:  model.TargetSelected,
		},
	})
	data.RegisterMove(&model.MoveData{
		ID: "harden", Name: "Harden", Type: model.TypeNormal,
		PP: 30, DamageClass: model.ClassStatus,
		Meta: model.MoveMeta{
			Ailment: model.AilmentNone,
			Target:  model.TargetUser,
			StatChanges: []model.StatChange{
				{Stat: model.StatDefense, Stages: 1},
			},
		},
	})
	data.RegisterMove(&model.MoveData{
		ID: "leer", Name: "Leer", Type: model.TypeNormal,
		Accuracy: intPtr(100), PP: 30, DamageClass: model.ClassStatus,
		Meta: model.MoveMeta{
			Ailment: model.AilmentNone,
			Target:  model.TargetAllOpponents,
			StatChanges: []model.StatChange{
				{Stat: model.StatDefense, Stages: -1},
			},
		},
	})
}

func registerSpecies() {
	water := model.TypeWater
	data.RegisterSpecies(&model.SpeciesData{
		ID: "embercub", Name: "Embercub",
		PrimaryType: model.TypeFire,
		BaseStats: model.Stats{
			HP: 60, Attack: 65, Defense: 50,
			SpecialAttack: 80, SpecialDefense: 55, Speed: 70,
		},
		MovePool:  []string{"scratch", "flame-burst", "harden", "leer"},
		Abilities: []string{"blaze", "flash-fire"},
	})
	data.RegisterSpecies(&model.SpeciesData{
		ID: "pondling", Name: "Pondling",
		PrimaryType:   model.TypeWater,
		SecondaryType: &water,
		BaseStats: model.Stats{
			HP: 70, Attack: 55, Defense: 65,
			SpecialAttack: 70, SpecialDefense: 70, Speed: 55,
		},
		MovePool:  []string{"scratch", "bubble-beam", "harden", "leer"},
		Abilities: []string{"torrent"},
	})
}

// Creature builds a ready-to-battle fixture creature bound to a
// registered species.
func Creature(t *testing.T, speciesID string, level int) *model.CreatureInstance {
	t.Helper()
	RegisterCatalog(t)

	species := data.GetSpecies(speciesID)
	if species == nil {
		t.Fatalf("fixture species %q not registered", speciesID)
	}

	c := &model.CreatureInstance{
		InstanceID: "fix-" + speciesID,
		SpeciesID:  speciesID,
		Level:      level,
		AbilityID:  species.Abilities[0],
		Species:    species,
	}
	c.ComputedStats = model.Stats{
		HP:             2*species.BaseStats.HP*level/100 + level + 10,
		Attack:         2*species.BaseStats.Attack*level/100 + 5,
		Defense:        2*species.BaseStats.Defense*level/100 + 5,
		SpecialAttack:  2*species.BaseStats.SpecialAttack*level/100 + 5,
		SpecialDefense: 2*species.BaseStats.SpecialDefense*level/100 + 5,
		Speed:          2*species.BaseStats.Speed*level/100 + 5,
	}
	c.CurrentHP = c.ComputedStats.HP

	for _, id := range species.MovePool {
		mv := data.GetMove(id)
		c.Moves = append(c.Moves, model.LearnedMove{
			MoveID: id, CurrentPP: mv.PP, MaxPP: mv.PP,
		})
	}
	return c
}

// Team builds n fixture creatures, alternating species.
func Team(t *testing.T, n, level int) []*model.CreatureInstance {
	t.Helper()
	ids := []string{"embercub", "pondling"}
	team := make([]*model.CreatureInstance, 0, n)
	for i := 0; i < n; i++ {
		c := Creature(t, ids[i%len(ids)], level)
		c.InstanceID = c.InstanceID + "-" + string(rune('a'+i))
		team = append(team, c)
	}
	return team
}
