package model

// Stat identifies one of the modifiable stats. The names match the
// catalog's stat_changes entries.
type Stat string

const (
	StatHP             Stat = "hp"
	StatAttack         Stat = "attack"
	StatDefense        Stat = "defense"
	StatSpecialAttack  Stat = "special-attack"
	StatSpecialDefense Stat = "special-defense"
	StatSpeed          Stat = "speed"
	StatAccuracy       Stat = "accuracy"
	StatEvasion        Stat = "evasion"
)

// Stats holds one value per permanent stat. Used both for species base
// stats and for a creature's computed stats.
type Stats struct {
	HP             int `json:"hp"`
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"special_attack"`
	SpecialDefense int `json:"special_defense"`
	Speed          int `json:"speed"`
}

// Get returns the value for a permanent stat; accuracy/evasion have no
// permanent value and return 0.
func (s Stats) Get(stat Stat) int {
	switch stat {
	case StatHP:
		return s.HP
	case StatAttack:
		return s.Attack
	case StatDefense:
		return s.Defense
	case StatSpecialAttack:
		return s.SpecialAttack
	case StatSpecialDefense:
		return s.SpecialDefense
	case StatSpeed:
		return s.Speed
	}
	return 0
}

// Set assigns the value for a permanent stat. Accuracy/evasion are ignored.
func (s *Stats) Set(stat Stat, v int) {
	switch stat {
	case StatHP:
		s.HP = v
	case StatAttack:
		s.Attack = v
	case StatDefense:
		s.Defense = v
	case StatSpecialAttack:
		s.SpecialAttack = v
	case StatSpecialDefense:
		s.SpecialDefense = v
	case StatSpeed:
		s.Speed = v
	}
}
