package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomlocke/core/internal/model"
	"github.com/randomlocke/core/internal/testutil"
)

func TestComputeStat(t *testing.T) {
	tests := []struct {
		name                     string
		base, iv, ev, level      int
		isHP                     bool
		want                     int
	}{
		{"hp at 50", 60, 31, 0, 50, true, 135},
		{"attack at 50", 65, 31, 0, 50, false, 85},
		{"zero ivs", 60, 0, 0, 50, true, 120},
		{"ev quarter", 100, 0, 252, 100, false, 268},
		{"level 1 floor", 45, 15, 0, 1, true, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeStat(tt.base, tt.iv, tt.ev, tt.level, tt.isHP))
		})
	}
}

func TestCreateIsDeterministic(t *testing.T) {
	testutil.RegisterCatalog(t)

	a, err := Create("embercub", 50, 1234, Options{})
	require.NoError(t, err)
	b, err := Create("embercub", 50, 1234, Options{})
	require.NoError(t, err)

	assert.Equal(t, a.IVs, b.IVs)
	assert.Equal(t, a.AbilityID, b.AbilityID)
	assert.Equal(t, a.Moves, b.Moves)
	assert.Equal(t, a.InstanceID, b.InstanceID)

	c, err := Create("embercub", 50, 4321, Options{})
	require.NoError(t, err)
	assert.NotEqual(t, a.InstanceID, c.InstanceID)
}

func TestCreateShape(t *testing.T) {
	testutil.RegisterCatalog(t)

	c, err := Create("embercub", 50, 99, Options{})
	require.NoError(t, err)

	for _, iv := range []int{c.IVs.HP, c.IVs.Attack, c.IVs.Defense, c.IVs.SpecialAttack, c.IVs.SpecialDefense, c.IVs.Speed} {
		assert.GreaterOrEqual(t, iv, 0)
		assert.LessOrEqual(t, iv, 31)
	}
	assert.Equal(t, model.PerStat{}, c.EVs, "EVs start at zero")
	assert.Equal(t, c.ComputedStats.HP, c.CurrentHP, "born at full HP")
	assert.Contains(t, []string{"blaze", "flash-fire"}, c.AbilityID)
	assert.LessOrEqual(t, len(c.Moves), model.ActiveMoveSlots)
	for _, lm := range c.Moves {
		assert.Positive(t, lm.MaxPP, "PP filled from the catalog")
		assert.Equal(t, lm.MaxPP, lm.CurrentPP)
	}
}

func TestCreateRejectsBadInput(t *testing.T) {
	testutil.RegisterCatalog(t)

	_, err := Create("no-such-species", 50, 1, Options{})
	assert.Error(t, err)

	_, err = Create("embercub", 0, 1, Options{})
	assert.Error(t, err)
	_, err = Create("embercub", 101, 1, Options{})
	assert.Error(t, err)
}

func TestChaosModeDrawsFromGlobalPool(t *testing.T) {
	testutil.RegisterCatalog(t)

	c, err := Create("embercub", 50, 77, Options{ChaosMode: true})
	require.NoError(t, err)

	assert.LessOrEqual(t, len(c.Moves), 6)
	assert.Greater(t, len(c.Moves), model.ActiveMoveSlots, "chaos rolls more than the active slots")
	seen := map[string]bool{}
	for _, lm := range c.Moves {
		assert.False(t, seen[lm.MoveID], "chaos moves are unique")
		seen[lm.MoveID] = true
	}
}

func TestTeamIsSeedStable(t *testing.T) {
	testutil.RegisterCatalog(t)

	a, err := Team(3, 50, 2024, Options{})
	require.NoError(t, err)
	b, err := Team(3, 50, 2024, Options{})
	require.NoError(t, err)

	require.Len(t, a, 3)
	for i := range a {
		assert.Equal(t, a[i].SpeciesID, b[i].SpeciesID)
		assert.Equal(t, a[i].InstanceID, b[i].InstanceID)
	}
}

func TestFullRestore(t *testing.T) {
	c := testutil.Creature(t, "embercub", 50)
	c.CurrentHP = 3
	c.Status = model.StatusBurn
	c.Moves[0].CurrentPP = 0

	FullRestore(c)
	assert.Equal(t, c.ComputedStats.HP, c.CurrentHP)
	assert.Empty(t, c.Status)
	assert.Equal(t, c.Moves[0].MaxPP, c.Moves[0].CurrentPP)
}

func TestSetLevelKeepsHPFraction(t *testing.T) {
	c := testutil.Creature(t, "embercub", 50)
	c.CurrentHP = c.ComputedStats.HP / 2

	require.NoError(t, SetLevel(c, 100))
	assert.Equal(t, 100, c.Level)
	assert.InDelta(t, 0.5, c.HPFraction(), 0.02)

	assert.Error(t, SetLevel(c, 0))
}

func TestLearnMove(t *testing.T) {
	c := testutil.Creature(t, "embercub", 50)
	before := len(c.Moves)

	require.NoError(t, LearnMove(c, "bubble-beam"))
	assert.Len(t, c.Moves, before+1)
	assert.Equal(t, 20, c.Moves[before].MaxPP)

	assert.Error(t, LearnMove(c, "bubble-beam"), "no duplicates")
	assert.Error(t, LearnMove(c, "no-such-move"))
}
