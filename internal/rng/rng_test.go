package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameSeedSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Uint32(), b.Uint32(), "draw %d diverged", i)
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)

	same := true
	for i := 0; i < 10; i++ {
		if a.Uint32() != b.Uint32() {
			same = false
		}
	}
	assert.False(t, same, "seeds 1 and 2 produced identical sequences")
}

func TestDamageRollRange(t *testing.T) {
	r := New(7)
	for i := 0; i < 1000; i++ {
		f := r.DamageRoll()
		require.GreaterOrEqual(t, f, 0.85)
		require.LessOrEqual(t, f, 1.0)
	}
}

func TestChanceBounds(t *testing.T) {
	r := New(3)
	for i := 0; i < 100; i++ {
		assert.False(t, r.Chance(0))
		assert.True(t, r.Chance(100))
	}
}

func TestChanceDistribution(t *testing.T) {
	r := New(99)
	hits := 0
	const n = 10000
	for i := 0; i < n; i++ {
		if r.Chance(30) {
			hits++
		}
	}
	// 30% ± 2% over 10k draws.
	assert.InDelta(t, 3000, hits, 200)
}
