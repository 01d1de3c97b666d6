package model

// SpeciesData is the immutable catalog record for a species.
type SpeciesData struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	PrimaryType   Type     `json:"primary_type"`
	SecondaryType *Type    `json:"secondary_type,omitempty"`
	BaseStats     Stats    `json:"base_stats"`
	MovePool      []string `json:"moves"`
	Abilities     []string `json:"abilities"`
	EvolvesInto   string   `json:"evolves_into,omitempty"`
	EvolveLevel   int      `json:"evolve_level,omitempty"`
}

// Types returns the species type list (one or two entries).
func (s *SpeciesData) Types() []Type {
	if s.SecondaryType != nil && *s.SecondaryType != TypeUnknown {
		return []Type{s.PrimaryType, *s.SecondaryType}
	}
	return []Type{s.PrimaryType}
}

// HasType reports whether t is one of the species types.
func (s *SpeciesData) HasType(t Type) bool {
	if s.PrimaryType == t {
		return true
	}
	return s.SecondaryType != nil && *s.SecondaryType == t
}
