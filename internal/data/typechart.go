package data

import "github.com/randomlocke/core/internal/model"

// typeChart lists the non-neutral matchups of the modern 18-type chart
// (attacking type → defending type). Entries absent from the map are 1.0.
var typeChart = map[model.Type]map[model.Type]float64{
	model.TypeNormal: {
		model.TypeRock: 0.5, model.TypeGhost: 0, model.TypeSteel: 0.5,
	},
	model.TypeFire: {
		model.TypeFire: 0.5, model.TypeWater: 0.5, model.TypeGrass: 2,
		model.TypeIce: 2, model.TypeBug: 2, model.TypeRock: 0.5,
		model.TypeDragon: 0.5, model.TypeSteel: 2,
	},
	model.TypeWater: {
		model.TypeFire: 2, model.TypeWater: 0.5, model.TypeGrass: 0.5,
		model.TypeGround: 2, model.TypeRock: 2, model.TypeDragon: 0.5,
	},
	model.TypeElectric: {
		model.TypeWater: 2, model.TypeElectric: 0.5, model.TypeGrass: 0.5,
		model.TypeGround: 0, model.TypeFlying: 2, model.TypeDragon: 0.5,
	},
	model.TypeGrass: {
		model.TypeFire: 0.5, model.TypeWater: 2, model.TypeGrass: 0.5,
		model.TypePoison: 0.5, model.TypeGround: 2, model.TypeFlying: 0.5,
		model.TypeBug: 0.5, model.TypeRock: 2, model.TypeDragon: 0.5,
		model.TypeSteel: 0.5,
	},
	model.TypeIce: {
		model.TypeFire: 0.5, model.TypeWater: 0.5, model.TypeGrass: 2,
		model.TypeIce: 0.5, model.TypeGround: 2, model.TypeFlying: 2,
		model.TypeDragon: 2, model.TypeSteel: 0.5,
	},
	model.TypeFighting: {
		model.TypeNormal: 2, model.TypeIce: 2, model.TypePoison: 0.5,
		model.TypeFlying: 0.5, model.TypePsychic: 0.5, model.TypeBug: 0.5,
		model.TypeRock: 2, model.TypeGhost: 0, model.TypeDark: 2,
		model.TypeSteel: 2, model.TypeFairy: 0.5,
	},
	model.TypePoison: {
		model.TypeGrass: 2, model.TypePoison: 0.5, model.TypeGround: 0.5,
		model.TypeRock: 0.5, model.TypeGhost: 0.5, model.TypeSteel: 0,
		model.TypeFairy: 2,
	},
	model.TypeGround: {
		model.TypeFire: 2, model.TypeElectric: 2, model.TypeGrass: 0.5,
		model.TypePoison: 2, model.TypeFlying: 0, model.TypeBug: 0.5,
		model.TypeRock: 2, model.TypeSteel: 2,
	},
	model.TypeFlying: {
		model.TypeElectric: 0.5, model.TypeGrass: 2, model.TypeFighting: 2,
		model.TypeBug: 2, model.TypeRock: 0.5, model.TypeSteel: 0.5,
	},
	model.TypePsychic: {
		model.TypeFighting: 2, model.TypePoison: 2, model.TypePsychic: 0.5,
		model.TypeDark: 0, model.TypeSteel: 0.5,
	},
	model.TypeBug: {
		model.TypeFire: 0.5, model.TypeGrass: 2, model.TypeFighting: 0.5,
		model.TypePoison: 0.5, model.TypeFlying: 0.5, model.TypePsychic: 2,
		model.TypeGhost: 0.5, model.TypeDark: 2, model.TypeSteel: 0.5,
		model.TypeFairy: 0.5,
	},
	model.TypeRock: {
		model.TypeFire: 2, model.TypeIce: 2, model.TypeFighting: 0.5,
		model.TypeGround: 0.5, model.TypeFlying: 2, model.TypeBug: 2,
		model.TypeSteel: 0.5,
	},
	model.TypeGhost: {
		model.TypeNormal: 0, model.TypePsychic: 2, model.TypeGhost: 2,
		model.TypeDark: 0.5,
	},
	model.TypeDragon: {
		model.TypeDragon: 2, model.TypeSteel: 0.5, model.TypeFairy: 0,
	},
	model.TypeDark: {
		model.TypeFighting: 0.5, model.TypePsychic: 2, model.TypeGhost: 2,
		model.TypeDark: 0.5, model.TypeFairy: 0.5,
	},
	model.TypeSteel: {
		model.TypeFire: 0.5, model.TypeWater: 0.5, model.TypeElectric: 0.5,
		model.TypeIce: 2, model.TypeRock: 2, model.TypeSteel: 0.5,
		model.TypeFairy: 2,
	},
	model.TypeFairy: {
		model.TypeFire: 0.5, model.TypeFighting: 2, model.TypePoison: 0.5,
		model.TypeDragon: 2, model.TypeDark: 2, model.TypeSteel: 0.5,
	},
}

// TypeMatchup returns the single-type multiplier for attacking type vs
// one defending type. Unknown on either side is neutral.
func TypeMatchup(attack, defend model.Type) float64 {
	row, ok := typeChart[attack]
	if !ok {
		return 1.0
	}
	if mult, ok := row[defend]; ok {
		return mult
	}
	return 1.0
}

// Effectiveness returns the product of TypeMatchup over every defender
// type. 0 means immune.
func Effectiveness(attack model.Type, defenders []model.Type) float64 {
	eff := 1.0
	for _, d := range defenders {
		eff *= TypeMatchup(attack, d)
	}
	return eff
}
