package battle

import (
	"sync"
	"testing"

	"github.com/randomlocke/core/internal/data"
	"github.com/randomlocke/core/internal/model"
)

func intPtr(v int) *int { return &v }

// newCombatant builds a mid-level creature with round stats. Tests tweak
// the returned struct directly.
func newCombatant(t *testing.T, name string, speed int) *model.CreatureInstance {
	t.Helper()
	return &model.CreatureInstance{
		InstanceID: "inst-" + name,
		SpeciesID:  name,
		Level:      50,
		CurrentHP:  200,
		ComputedStats: model.Stats{
			HP: 200, Attack: 100, Defense: 100,
			SpecialAttack: 100, SpecialDefense: 100, Speed: speed,
		},
		Species: &model.SpeciesData{
			ID:          name,
			Name:        name,
			PrimaryType: model.TypeNormal,
		},
		Moves: []model.LearnedMove{
			{MoveID: "tackle", CurrentPP: 35, MaxPP: 35},
			{MoveID: "quick-attack", CurrentPP: 30, MaxPP: 30},
			{MoveID: "ember", CurrentPP: 25, MaxPP: 25},
			{MoveID: "protect", CurrentPP: 10, MaxPP: 10},
		},
	}
}

func setTypes(c *model.CreatureInstance, primary model.Type, secondary ...model.Type) {
	c.Species.PrimaryType = primary
	if len(secondary) > 0 {
		c.Species.SecondaryType = &secondary[0]
	} else {
		c.Species.SecondaryType = nil
	}
}

func physicalMove(id string, typ model.Type, power int) *model.MoveData {
	return &model.MoveData{
		ID:          id,
		Name:        displayName(id),
		Type:        typ,
		Power:       intPtr(power),
		Accuracy:    intPtr(100),
		PP:          35,
		DamageClass: model.ClassPhysical,
		Meta: model.MoveMeta{
			Ailment:      model.AilmentNone,
			MakesContact: true,
			Target:       model.TargetSelected,
		},
	}
}

func specialMove(id string, typ model.Type, power int) *model.MoveData {
	return &model.MoveData{
		ID:          id,
		Name:        displayName(id),
		Type:        typ,
		Power:       intPtr(power),
		Accuracy:    intPtr(100),
		PP:          25,
		DamageClass: model.ClassSpecial,
		Meta: model.MoveMeta{
			Ailment: model.AilmentNone,
			Target:  model.TargetSelected,
		},
	}
}

var registerOnce sync.Once

// registerCatalog installs the handful of moves the engine tests play
// with. The catalog is process-global, so registration runs once.
func registerCatalog(t *testing.T) {
	t.Helper()
	registerOnce.Do(func() {
		tackle := physicalMove("tackle", model.TypeNormal, 40)
		data.RegisterMove(tackle)

		quick := physicalMove("quick-attack", model.TypeNormal, 40)
		quick.Priority = 1
		data.RegisterMove(quick)

		ember := specialMove("ember", model.TypeFire, 40)
		ember.Meta.Ailment = model.AilmentBurn
		ember.Meta.AilmentChance = 10
		data.RegisterMove(ember)

		surf := specialMove("surf", model.TypeWater, 90)
		surf.Meta.Target = model.TargetAllOpponents
		data.RegisterMove(surf)

		data.RegisterMove(&model.MoveData{
			ID: "protect", Name: "Protect", Type: model.TypeNormal,
			Priority: 4, PP: 10, DamageClass: model.ClassStatus,
			Meta: model.MoveMeta{Ailment: model.AilmentNone, Target: model.TargetUser},
		})
		data.RegisterMove(&model.MoveData{
			ID: "follow-me", Name: "Follow Me", Type: model.TypeNormal,
			Priority: 2, PP: 20, DamageClass: model.ClassStatus,
			Meta: model.MoveMeta{Ailment: model.AilmentNone, Target: model.TargetUser},
		})
		data.RegisterMove(&model.MoveData{
			ID: "rage-powder", Name: "Rage Powder", Type: model.TypeBug,
			Priority: 2, PP: 20, DamageClass: model.ClassStatus,
			Meta: model.MoveMeta{Ailment: model.AilmentNone, Target: model.TargetUser},
		})
		growl := &model.MoveData{
			ID: "growl", Name: "Growl", Type: model.TypeNormal,
			Accuracy: intPtr(100), PP: 40, DamageClass: model.ClassStatus,
			Meta: model.MoveMeta{
				Ailment: model.AilmentNone,
				Target:  model.TargetAllOpponents,
				StatChanges: []model.StatChange{
					{Stat: model.StatAttack, Stages: -1},
				},
			},
		}
		data.RegisterMove(growl)
		data.RegisterMove(&model.MoveData{
			ID: "rain-dance", Name: "Rain Dance", Type: model.TypeWater,
			PP: 5, DamageClass: model.ClassStatus,
			Meta: model.MoveMeta{Ailment: model.AilmentNone, Target: model.TargetEntireField},
		})
		data.RegisterMove(&model.MoveData{
			ID: "leech-seed", Name: "Leech Seed", Type: model.TypeGrass,
			Accuracy: intPtr(100), PP: 10, DamageClass: model.ClassStatus,
			Meta: model.MoveMeta{Ailment: model.AilmentNone, Target: model.TargetSelected},
		})
	})
}

// singlesState wires a 1v1 battle with both creatures already deployed.
func singlesState(player, opponent *model.CreatureInstance) (*model.BattleState, []*model.CreatureInstance) {
	st := &model.BattleState{
		Format:                model.FormatSingle,
		PlayerActiveIndices:   []int{0},
		OpponentTeam:          []*model.CreatureInstance{opponent},
		OpponentActiveIndices: []int{0},
	}
	player.EnterField()
	opponent.EnterField()
	return st, []*model.CreatureInstance{player}
}

// doublesState wires a 2v2 battle with all four slots deployed.
func doublesState(playerTeam, opponentTeam []*model.CreatureInstance) (*model.BattleState, []*model.CreatureInstance) {
	st := &model.BattleState{
		Format:                model.FormatDouble,
		PlayerActiveIndices:   []int{0, 1},
		OpponentTeam:          opponentTeam,
		OpponentActiveIndices: []int{0, 1},
	}
	for _, c := range playerTeam {
		c.EnterField()
	}
	for _, c := range opponentTeam {
		c.EnterField()
	}
	return st, playerTeam
}

// scriptedPolicy always picks the same move for every opposing slot.
type scriptedPolicy struct{ moveID string }

func (p scriptedPolicy) ChooseMove(*model.CreatureInstance) string { return p.moveID }
