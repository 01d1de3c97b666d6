package data

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/randomlocke/core/internal/model"
)

func TestTypeMatchup(t *testing.T) {
	tests := []struct {
		name    string
		attack  model.Type
		defend  model.Type
		want    float64
	}{
		{"water beats fire", model.TypeWater, model.TypeFire, 2.0},
		{"fire resisted by water", model.TypeFire, model.TypeWater, 0.5},
		{"electric cannot touch ground", model.TypeElectric, model.TypeGround, 0},
		{"normal cannot touch ghost", model.TypeNormal, model.TypeGhost, 0},
		{"dragon cannot touch fairy", model.TypeDragon, model.TypeFairy, 0},
		{"neutral", model.TypeNormal, model.TypeFighting, 1.0},
		{"unknown attacker neutral", model.TypeUnknown, model.TypeFire, 1.0},
		{"unknown defender neutral", model.TypeFire, model.TypeUnknown, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeMatchup(tt.attack, tt.defend))
		})
	}
}

func TestEffectivenessIsProduct(t *testing.T) {
	// eff(t, [a,b]) == eff(t,[a]) * eff(t,[b]) for every combination.
	types := []model.Type{
		model.TypeNormal, model.TypeFire, model.TypeWater, model.TypeElectric,
		model.TypeGrass, model.TypeIce, model.TypeFighting, model.TypePoison,
		model.TypeGround, model.TypeFlying, model.TypePsychic, model.TypeBug,
		model.TypeRock, model.TypeGhost, model.TypeDragon, model.TypeDark,
		model.TypeSteel, model.TypeFairy,
	}
	for _, atk := range types {
		for _, a := range types {
			for _, b := range types {
				got := Effectiveness(atk, []model.Type{a, b})
				want := Effectiveness(atk, []model.Type{a}) * Effectiveness(atk, []model.Type{b})
				assert.Equal(t, want, got, "%s vs %s/%s", atk, a, b)
			}
		}
	}
}

func TestQuadEffectiveness(t *testing.T) {
	// Rock/Ground takes 4x from water and 0x from electric via ground.
	defenders := []model.Type{model.TypeRock, model.TypeGround}
	assert.Equal(t, 4.0, Effectiveness(model.TypeWater, defenders))
	assert.Equal(t, 0.0, Effectiveness(model.TypeElectric, defenders))
}
