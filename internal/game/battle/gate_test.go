package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomlocke/core/internal/model"
	"github.com/randomlocke/core/internal/rng"
)

func TestFlinchAlwaysBlocks(t *testing.T) {
	c := newCombatant(t, "flincher", 100)
	c.EnterField()
	c.Volatile.Flinched = true

	canAct, logs := StatusGate(c, rng.New(1))
	assert.False(t, canAct)
	require.NotEmpty(t, logs)
	assert.Contains(t, logs[len(logs)-1], "flinched")
}

func TestHealthyActorActs(t *testing.T) {
	c := newCombatant(t, "fine", 100)
	c.EnterField()

	canAct, logs := StatusGate(c, rng.New(1))
	assert.True(t, canAct)
	assert.Empty(t, logs)
}

func TestSleepBlocksOrWakes(t *testing.T) {
	// 33% wake chance: both outcomes must occur over many seeds, and a
	// blocked actor keeps the status while a woken one loses it.
	woke, slept := 0, 0
	for seed := uint64(0); seed < 300; seed++ {
		c := newCombatant(t, "dozer", 100)
		c.EnterField()
		c.Status = model.StatusSleep

		canAct, logs := StatusGate(c, rng.New(seed))
		require.NotEmpty(t, logs)
		if canAct {
			woke++
			assert.Empty(t, c.Status, "waking clears sleep")
		} else {
			slept++
			assert.Equal(t, model.StatusSleep, c.Status)
		}
	}
	assert.Greater(t, woke, 50)
	assert.Greater(t, slept, 120)
}

func TestFrozenThawChance(t *testing.T) {
	thawed := 0
	for seed := uint64(0); seed < 300; seed++ {
		c := newCombatant(t, "icy", 100)
		c.EnterField()
		c.Status = model.StatusFreeze

		if canAct, _ := StatusGate(c, rng.New(seed)); canAct {
			thawed++
			assert.Empty(t, c.Status)
		}
	}
	// 20% thaw rate.
	assert.InDelta(t, 60, thawed, 30)
}

func TestConfusionSelfHit(t *testing.T) {
	found := false
	for seed := uint64(0); seed < 40; seed++ {
		c := newCombatant(t, "dizzy", 100)
		c.EnterField()
		c.Volatile.Confused = true

		canAct, logs := StatusGate(c, rng.New(seed))
		if canAct {
			continue
		}
		found = true
		assert.Less(t, c.CurrentHP, c.MaxHP(), "self-hit costs HP")
		joined := ""
		for _, l := range logs {
			joined += l + "\n"
		}
		assert.Contains(t, joined, "hurt itself in its confusion")
		break
	}
	require.True(t, found, "a 50% self-hit never landed across forty seeds")
}

func TestConfusionSelfDamageFormula(t *testing.T) {
	c := newCombatant(t, "dizzy", 100)
	c.EnterField()

	// Level 50, 100/100 offense and defense: ((22*40*100/100)/50)+2 = 19.
	assert.Equal(t, 19, confusionSelfDamage(c))

	// Attack stages raise the self-hit, defense stages soften it.
	c.Stages.Attack = 2
	assert.Equal(t, 38, confusionSelfDamage(c))
	c.Stages.Attack = 0
	c.Stages.Defense = 2
	assert.Equal(t, 9, confusionSelfDamage(c))
}

func TestParalysisBlockRate(t *testing.T) {
	blocked := 0
	for seed := uint64(0); seed < 400; seed++ {
		c := newCombatant(t, "zappy", 100)
		c.EnterField()
		c.Status = model.StatusParalysis

		if canAct, _ := StatusGate(c, rng.New(seed)); !canAct {
			blocked++
			assert.Equal(t, model.StatusParalysis, c.Status, "paralysis persists")
		}
	}
	// 25% full-paralysis rate.
	assert.InDelta(t, 100, blocked, 40)
}
