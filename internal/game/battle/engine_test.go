package battle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomlocke/core/internal/model"
	"github.com/randomlocke/core/internal/rng"
)

func indexOf(logs []string, substr string) int {
	for i, l := range logs {
		if strings.Contains(l, substr) {
			return i
		}
	}
	return -1
}

func TestFasterCreatureActsFirst(t *testing.T) {
	registerCatalog(t)
	player := newCombatant(t, "hero", 130)
	opponent := newCombatant(t, "rival", 60)
	st, team := singlesState(player, opponent)
	st.PendingPlayerActions = []model.PendingAction{{UserIndex: 0, MoveID: "tackle"}}

	e := New(st, team, rng.New(42), scriptedPolicy{"tackle"})
	res := e.ExecuteTurn()

	heroAt := indexOf(res.Logs, "hero used Tackle!")
	rivalAt := indexOf(res.Logs, "rival used Tackle!")
	require.GreaterOrEqual(t, heroAt, 0)
	require.GreaterOrEqual(t, rivalAt, 0)
	assert.Less(t, heroAt, rivalAt)
	assert.Equal(t, model.OutcomeContinue, res.Outcome)
}

func TestPriorityOverridesSpeed(t *testing.T) {
	registerCatalog(t)
	player := newCombatant(t, "hero", 40)
	opponent := newCombatant(t, "rival", 200)
	st, team := singlesState(player, opponent)
	st.PendingPlayerActions = []model.PendingAction{{UserIndex: 0, MoveID: "quick-attack"}}

	e := New(st, team, rng.New(42), scriptedPolicy{"tackle"})
	res := e.ExecuteTurn()

	heroAt := indexOf(res.Logs, "hero used Quick Attack!")
	rivalAt := indexOf(res.Logs, "rival used Tackle!")
	require.GreaterOrEqual(t, heroAt, 0)
	require.GreaterOrEqual(t, rivalAt, 0)
	assert.Less(t, heroAt, rivalAt, "priority 1 beats raw speed")
}

func TestProtectBlocksTheTurn(t *testing.T) {
	registerCatalog(t)
	player := newCombatant(t, "hero", 40)
	opponent := newCombatant(t, "rival", 200)
	st, team := singlesState(player, opponent)
	st.PendingPlayerActions = []model.PendingAction{{UserIndex: 0, MoveID: "protect"}}

	e := New(st, team, rng.New(42), scriptedPolicy{"tackle"})
	res := e.ExecuteTurn()

	assert.Equal(t, 200, player.CurrentHP, "protected creature takes nothing")
	assert.GreaterOrEqual(t, indexOf(res.Logs, "hero protected itself!"), 0)
	assert.Equal(t, 0, res.EnemyDamageDealt)
}

func TestTurnIsDeterministicPerSeed(t *testing.T) {
	registerCatalog(t)
	run := func(seed uint64) []string {
		player := newCombatant(t, "hero", 130)
		opponent := newCombatant(t, "rival", 130)
		st, team := singlesState(player, opponent)
		st.PendingPlayerActions = []model.PendingAction{{UserIndex: 0, MoveID: "ember"}}

		e := New(st, team, rng.New(seed), scriptedPolicy{"ember"})
		return e.ExecuteTurn().Logs
	}

	require.Equal(t, run(42), run(42), "same seed replays byte for byte")

	// A speed tie plus damage rolls: some seed must diverge.
	base := strings.Join(run(42), "\n")
	diverged := false
	for seed := uint64(0); seed < 30; seed++ {
		if strings.Join(run(seed), "\n") != base {
			diverged = true
			break
		}
	}
	assert.True(t, diverged)
}

func TestKnockoutWinsTheBattle(t *testing.T) {
	registerCatalog(t)
	player := newCombatant(t, "hero", 130)
	opponent := newCombatant(t, "rival", 60)
	opponent.CurrentHP = 1
	st, team := singlesState(player, opponent)
	st.PendingPlayerActions = []model.PendingAction{{UserIndex: 0, MoveID: "tackle"}}

	e := New(st, team, rng.New(42), scriptedPolicy{"tackle"})
	res := e.ExecuteTurn()

	assert.Equal(t, model.OutcomePlayerWon, res.Outcome)
	assert.GreaterOrEqual(t, indexOf(res.Logs, "rival fainted!"), 0)
	assert.Less(t, indexOf(res.Logs, "rival used Tackle!"), 0,
		"the fainted creature never gets its action")
}

func TestOpponentAutoReplacesFaint(t *testing.T) {
	registerCatalog(t)
	player := newCombatant(t, "hero", 130)
	first := newCombatant(t, "rival", 60)
	first.CurrentHP = 1
	backup := newCombatant(t, "backup", 60)
	st := &model.BattleState{
		Format:                model.FormatSingle,
		PlayerActiveIndices:   []int{0},
		OpponentTeam:          []*model.CreatureInstance{first, backup},
		OpponentActiveIndices: []int{0},
	}
	player.EnterField()
	first.EnterField()
	st.PendingPlayerActions = []model.PendingAction{{UserIndex: 0, MoveID: "tackle"}}

	e := New(st, []*model.CreatureInstance{player}, rng.New(42), scriptedPolicy{"tackle"})
	res := e.ExecuteTurn()

	assert.Equal(t, model.OutcomeEnemySwitched, res.Outcome)
	assert.GreaterOrEqual(t, indexOf(res.Logs, "The opponent sent out backup!"), 0)
	assert.Equal(t, 1, st.OpponentActiveIndices[0])
	assert.True(t, backup.OnField())
}

func TestPlayerFaintPromptsSwitch(t *testing.T) {
	registerCatalog(t)
	lead := newCombatant(t, "hero", 40)
	lead.CurrentHP = 1
	bench := newCombatant(t, "bench", 40)
	opponent := newCombatant(t, "rival", 200)
	st := &model.BattleState{
		Format:                model.FormatSingle,
		PlayerActiveIndices:   []int{0},
		OpponentTeam:          []*model.CreatureInstance{opponent},
		OpponentActiveIndices: []int{0},
	}
	lead.EnterField()
	opponent.EnterField()
	st.PendingPlayerActions = []model.PendingAction{{UserIndex: 0, MoveID: "tackle"}}

	e := New(st, []*model.CreatureInstance{lead, bench}, rng.New(42), scriptedPolicy{"tackle"})
	res := e.ExecuteTurn()

	assert.Equal(t, model.OutcomePlayerMustSwitch, res.Outcome)
	assert.GreaterOrEqual(t, indexOf(res.Logs, "hero fainted!"), 0)
}

func TestSwitchResolvesBeforeAttacks(t *testing.T) {
	registerCatalog(t)
	lead := newCombatant(t, "hero", 40)
	bench := newCombatant(t, "bench", 40)
	opponent := newCombatant(t, "rival", 200)
	st := &model.BattleState{
		Format:                model.FormatSingle,
		PlayerActiveIndices:   []int{0},
		OpponentTeam:          []*model.CreatureInstance{opponent},
		OpponentActiveIndices: []int{0},
	}
	lead.EnterField()
	opponent.EnterField()
	st.PendingPlayerActions = []model.PendingAction{{UserIndex: 0, IsSwitch: true, SwitchTo: 1}}

	e := New(st, []*model.CreatureInstance{lead, bench}, rng.New(42), scriptedPolicy{"quick-attack"})
	res := e.ExecuteTurn()

	switchAt := indexOf(res.Logs, "Go, bench!")
	attackAt := indexOf(res.Logs, "rival used Quick Attack!")
	require.GreaterOrEqual(t, switchAt, 0)
	require.GreaterOrEqual(t, attackAt, 0)
	assert.Less(t, switchAt, attackAt, "switching outruns even priority moves")
	assert.Equal(t, 200, lead.CurrentHP, "the outgoing creature is untouched")
	assert.Less(t, bench.CurrentHP, 200, "the incoming creature takes the hit")
}

func TestMovePPIsConsumed(t *testing.T) {
	registerCatalog(t)
	player := newCombatant(t, "hero", 130)
	opponent := newCombatant(t, "rival", 60)
	st, team := singlesState(player, opponent)
	st.PendingPlayerActions = []model.PendingAction{{UserIndex: 0, MoveID: "tackle"}}

	e := New(st, team, rng.New(42), scriptedPolicy{"tackle"})
	e.ExecuteTurn()

	assert.Equal(t, 34, player.Moves[player.FindMove("tackle")].CurrentPP)
}

func TestStruggleWhenOutOfPP(t *testing.T) {
	registerCatalog(t)
	player := newCombatant(t, "hero", 130)
	for i := range player.Moves {
		player.Moves[i].CurrentPP = 0
	}
	opponent := newCombatant(t, "rival", 60)
	st, team := singlesState(player, opponent)
	st.PendingPlayerActions = []model.PendingAction{{UserIndex: 0, MoveID: "tackle"}}

	e := New(st, team, rng.New(42), scriptedPolicy{"tackle"})
	res := e.ExecuteTurn()

	assert.GreaterOrEqual(t, indexOf(res.Logs, "hero used Struggle!"), 0)
	assert.GreaterOrEqual(t, indexOf(res.Logs, "hero is damaged by recoil!"), 0)
	assert.LessOrEqual(t, player.CurrentHP, 150, "recoil costs a quarter of max HP")
}

func TestChoiceItemLocksTheMove(t *testing.T) {
	registerCatalog(t)
	player := newCombatant(t, "hero", 130)
	player.HeldItemID = "choice-band"
	opponent := newCombatant(t, "rival", 60)
	st, team := singlesState(player, opponent)
	r := rng.New(42)

	st.PendingPlayerActions = []model.PendingAction{{UserIndex: 0, MoveID: "tackle"}}
	New(st, team, r, scriptedPolicy{"tackle"}).ExecuteTurn()
	require.Equal(t, "tackle", player.Volatile.LockedMoveID)

	st.PendingPlayerActions = []model.PendingAction{{UserIndex: 0, MoveID: "ember"}}
	res := New(st, team, r, scriptedPolicy{"tackle"}).ExecuteTurn()
	assert.GreaterOrEqual(t, indexOf(res.Logs, "hero used Tackle!"), 0)
	assert.Less(t, indexOf(res.Logs, "hero used Ember!"), 0)
}

func TestWeatherMoveInstallsAndTicks(t *testing.T) {
	registerCatalog(t)
	player := newCombatant(t, "hero", 130)
	player.Moves[0] = model.LearnedMove{MoveID: "rain-dance", CurrentPP: 5, MaxPP: 5}
	opponent := newCombatant(t, "rival", 60)
	st, team := singlesState(player, opponent)
	st.PendingPlayerActions = []model.PendingAction{{UserIndex: 0, MoveID: "rain-dance"}}

	e := New(st, team, rng.New(42), scriptedPolicy{"tackle"})
	res := e.ExecuteTurn()

	require.NotNil(t, st.Weather)
	assert.Equal(t, model.WeatherRain, st.Weather.Kind)
	assert.Equal(t, model.DefaultFieldTurns-1, st.Weather.TurnsRemaining,
		"the setting turn already ticks the timer")
	assert.GreaterOrEqual(t, indexOf(res.Logs, "It started to rain!"), 0)
}

func TestDoublesSpreadHitsBothOpponents(t *testing.T) {
	registerCatalog(t)
	p1, p2 := newCombatant(t, "p1", 200), newCombatant(t, "p2", 10)
	o1, o2 := newCombatant(t, "o1", 20), newCombatant(t, "o2", 15)
	p1.Moves[0] = model.LearnedMove{MoveID: "surf", CurrentPP: 15, MaxPP: 15}
	st, team := doublesState([]*model.CreatureInstance{p1, p2}, []*model.CreatureInstance{o1, o2})
	st.PendingPlayerActions = []model.PendingAction{
		{UserIndex: 0, MoveID: "surf"},
		{UserIndex: 1, MoveID: "protect"},
	}

	e := New(st, team, rng.New(42), scriptedPolicy{"tackle"})
	e.ExecuteTurn()

	assert.Less(t, o1.CurrentHP, 200)
	assert.Less(t, o2.CurrentHP, 200)
}

func TestEntryHooksFireOnFirstTurn(t *testing.T) {
	registerCatalog(t)
	player := newCombatant(t, "hero", 130)
	player.AbilityID = "intimidate"
	opponent := newCombatant(t, "rival", 60)
	st, team := singlesState(player, opponent)
	st.PendingPlayerActions = []model.PendingAction{{UserIndex: 0, MoveID: "protect"}}

	e := New(st, team, rng.New(42), scriptedPolicy{"protect"})
	e.ExecuteTurn()

	assert.Equal(t, -1, opponent.Stages.Attack, "intimidate dropped the opposing attack")
}

func TestDroughtSetsSunOnEntry(t *testing.T) {
	registerCatalog(t)
	player := newCombatant(t, "hero", 130)
	player.AbilityID = "drought"
	opponent := newCombatant(t, "rival", 60)
	st, team := singlesState(player, opponent)
	st.PendingPlayerActions = []model.PendingAction{{UserIndex: 0, MoveID: "protect"}}

	e := New(st, team, rng.New(42), scriptedPolicy{"protect"})
	res := e.ExecuteTurn()

	assert.GreaterOrEqual(t, indexOf(res.Logs, "The sunlight turned harsh!"), 0)
	require.NotNil(t, st.Weather)
	assert.Equal(t, model.WeatherSun, st.Weather.Kind)
}

func TestLeechSeedRespectsTypeImmunities(t *testing.T) {
	registerCatalog(t)
	tests := []struct {
		name   string
		typ    model.Type
		seeded bool
	}{
		{"grass target shrugs it off", model.TypeGrass, false},
		{"ghost target shrugs it off", model.TypeGhost, false},
		{"normal target is seeded", model.TypeNormal, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := newCombatant(t, "seeder", 130)
			player.Moves[0] = model.LearnedMove{MoveID: "leech-seed", CurrentPP: 10, MaxPP: 10}
			opponent := newCombatant(t, "rival", 60)
			setTypes(opponent, tt.typ)
			st, team := singlesState(player, opponent)
			st.PendingPlayerActions = []model.PendingAction{{UserIndex: 0, MoveID: "leech-seed"}}

			e := New(st, team, rng.New(42), scriptedPolicy{"tackle"})
			res := e.ExecuteTurn()

			assert.Equal(t, tt.seeded, opponent.Volatile.LeechSeeded)
			if tt.seeded {
				assert.GreaterOrEqual(t, indexOf(res.Logs, "rival was seeded!"), 0)
			} else {
				assert.GreaterOrEqual(t, indexOf(res.Logs, "But it failed!"), 0)
			}
		})
	}
}

func TestMovesBeyondTheActiveFourAreUnusable(t *testing.T) {
	registerCatalog(t)
	player := newCombatant(t, "hero", 130)
	player.Moves = append(player.Moves, model.LearnedMove{MoveID: "surf", CurrentPP: 20, MaxPP: 20})
	opponent := newCombatant(t, "rival", 60)
	st, team := singlesState(player, opponent)
	st.PendingPlayerActions = []model.PendingAction{{UserIndex: 0, MoveID: "surf"}}

	e := New(st, team, rng.New(42), scriptedPolicy{"tackle"})
	res := e.ExecuteTurn()

	assert.GreaterOrEqual(t, indexOf(res.Logs, "hero used Struggle!"), 0)
	assert.Equal(t, 20, player.Moves[4].CurrentPP, "the fifth slot never fires")
}
