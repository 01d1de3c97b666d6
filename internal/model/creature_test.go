package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCreature(t *testing.T) *CreatureInstance {
	t.Helper()
	sec := TypeFlying
	return &CreatureInstance{
		InstanceID: "c-1",
		SpeciesID:  "testmon",
		Level:      50,
		CurrentHP:  120,
		ComputedStats: Stats{
			HP: 120, Attack: 80, Defense: 70,
			SpecialAttack: 90, SpecialDefense: 75, Speed: 100,
		},
		Species: &SpeciesData{
			ID:            "testmon",
			Name:          "Testmon",
			PrimaryType:   TypeNormal,
			SecondaryType: &sec,
		},
		Moves: []LearnedMove{
			{MoveID: "tackle", CurrentPP: 35, MaxPP: 35},
			{MoveID: "gust", CurrentPP: 25, MaxPP: 25},
		},
	}
}

func TestApplyDamageSaturates(t *testing.T) {
	c := newTestCreature(t)

	lost := c.ApplyDamage(50)
	require.Equal(t, 50, lost)
	require.Equal(t, 70, c.CurrentHP)

	lost = c.ApplyDamage(500)
	assert.Equal(t, 70, lost, "damage caps at remaining HP")
	assert.Equal(t, 0, c.CurrentHP)
	assert.True(t, c.IsFainted())

	assert.Equal(t, 0, c.ApplyDamage(10), "fainted creature takes no more")
}

func TestHealCapsAtMax(t *testing.T) {
	c := newTestCreature(t)
	c.CurrentHP = 100

	gained := c.Heal(50)
	assert.Equal(t, 20, gained)
	assert.Equal(t, c.ComputedStats.HP, c.CurrentHP)

	c.CurrentHP = 0
	assert.Equal(t, 0, c.Heal(50), "fainted creatures are not healed")
}

func TestEnterLeaveField(t *testing.T) {
	c := newTestCreature(t)
	require.False(t, c.OnField())

	c.EnterField()
	require.True(t, c.OnField())
	assert.True(t, c.Volatile.JustEntered)
	assert.Equal(t, 0, c.Stages.Attack)

	c.Stages.Modify(StatAttack, 3)
	c.Volatile.Confused = true

	c.LeaveField()
	assert.False(t, c.OnField())
	assert.Nil(t, c.Stages)
	assert.Nil(t, c.Volatile)
}

func TestSetStatusSecondApplicationNoop(t *testing.T) {
	c := newTestCreature(t)

	require.True(t, c.SetStatus(StatusBurn))
	assert.False(t, c.SetStatus(StatusPoison), "already statused")
	assert.Equal(t, StatusBurn, c.Status)

	c.CureStatus()
	assert.Empty(t, c.Status)
	assert.True(t, c.SetStatus(StatusPoison))
}

func TestBadPoisonResetsCounter(t *testing.T) {
	c := newTestCreature(t)
	c.EnterField()
	c.Volatile.BadlyPoisoned = 4

	require.True(t, c.SetStatus(StatusBadPoison))
	assert.Equal(t, 0, c.Volatile.BadlyPoisoned)
}

func TestTypesAndName(t *testing.T) {
	c := newTestCreature(t)

	assert.Equal(t, []Type{TypeNormal, TypeFlying}, c.Types())
	assert.True(t, c.HasType(TypeFlying))
	assert.False(t, c.HasType(TypeFire))
	assert.Equal(t, "Testmon", c.Name())

	c.Nickname = "Bub"
	assert.Equal(t, "Bub", c.Name())
}

func TestFindMove(t *testing.T) {
	c := newTestCreature(t)
	assert.Equal(t, 1, c.FindMove("gust"))
	assert.Equal(t, -1, c.FindMove("surf"))
}
