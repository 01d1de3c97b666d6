package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Type is one of the 18 elemental types plus Unknown.
type Type uint8

const (
	TypeUnknown Type = iota
	TypeNormal
	TypeFire
	TypeWater
	TypeElectric
	TypeGrass
	TypeIce
	TypeFighting
	TypePoison
	TypeGround
	TypeFlying
	TypePsychic
	TypeBug
	TypeRock
	TypeGhost
	TypeDragon
	TypeDark
	TypeSteel
	TypeFairy

	typeCount
)

var typeNames = [typeCount]string{
	TypeUnknown:  "unknown",
	TypeNormal:   "normal",
	TypeFire:     "fire",
	TypeWater:    "water",
	TypeElectric: "electric",
	TypeGrass:    "grass",
	TypeIce:      "ice",
	TypeFighting: "fighting",
	TypePoison:   "poison",
	TypeGround:   "ground",
	TypeFlying:   "flying",
	TypePsychic:  "psychic",
	TypeBug:      "bug",
	TypeRock:     "rock",
	TypeGhost:    "ghost",
	TypeDragon:   "dragon",
	TypeDark:     "dark",
	TypeSteel:    "steel",
	TypeFairy:    "fairy",
}

// NumTypes is the number of real types (excluding Unknown).
const NumTypes = int(typeCount) - 1

func (t Type) String() string {
	if t >= typeCount {
		return "unknown"
	}
	return typeNames[t]
}

// ParseType maps a catalog type name to its Type. Unrecognized names
// (including the empty string) map to TypeUnknown.
func ParseType(name string) Type {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range typeNames {
		if n == name {
			return Type(t)
		}
	}
	return TypeUnknown
}

// MarshalJSON writes the type as its catalog name.
func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts a catalog type name.
func (t *Type) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("type name: %w", err)
	}
	*t = ParseType(s)
	return nil
}
