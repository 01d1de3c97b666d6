// Package rng provides the seeded PRNG used by the battle pipeline.
//
// Every probabilistic decision in a battle (accuracy, crit, hit count,
// damage roll, secondary-effect chances, speed tie-breaks, policy picks)
// goes through a single *Rand threaded by the caller, so replaying a
// battle with the same seed and inputs reproduces the log byte for byte.
package rng

import "math/rand/v2"

// Rand wraps a deterministic PCG source behind typed draws.
// Not safe for concurrent use; each battle owns its own instance.
type Rand struct {
	src *rand.Rand
}

// New returns a Rand seeded with the given value.
func New(seed uint64) *Rand {
	return &Rand{src: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN draws a uniform int in [0, n).
func (r *Rand) IntN(n int) int {
	return r.src.IntN(n)
}

// Uint32 draws a full-range uint32, used for speed tie-breaks.
func (r *Rand) Uint32() uint32 {
	return r.src.Uint32()
}

// Float64 draws a uniform float in [0, 1).
func (r *Rand) Float64() float64 {
	return r.src.Float64()
}

// Chance reports whether a percentage roll in [0,100) lands under pct.
// Chance(0) is always false, Chance(100) always true.
func (r *Rand) Chance(pct int) bool {
	if pct <= 0 {
		return false
	}
	if pct >= 100 {
		return true
	}
	return r.src.IntN(100) < pct
}

// OneIn reports a 1/n success.
func (r *Rand) OneIn(n int) bool {
	if n <= 1 {
		return true
	}
	return r.src.IntN(n) == 0
}

// DamageRoll draws the damage spread factor, uniform in [0.85, 1.0].
func (r *Rand) DamageRoll() float64 {
	return 0.85 + r.src.Float64()*0.15
}

// Shuffle randomizes the order of n elements via swap.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	r.src.Shuffle(n, swap)
}
