package model

// StatusCondition is a persistent status surviving switches. A creature
// carries at most one at a time.
type StatusCondition string

const (
	StatusBurn      StatusCondition = "burn"
	StatusFreeze    StatusCondition = "freeze"
	StatusParalysis StatusCondition = "paralysis"
	StatusPoison    StatusCondition = "poison"
	StatusBadPoison StatusCondition = "bad-poison"
	StatusSleep     StatusCondition = "sleep"
)

// Ailment is a move side-effect descriptor from the catalog. It covers
// both persistent statuses and volatile ones (confusion, infatuation).
type Ailment string

const (
	AilmentNone        Ailment = "none"
	AilmentBurn        Ailment = "burn"
	AilmentParalysis   Ailment = "paralysis"
	AilmentPoison      Ailment = "poison"
	AilmentBadPoison   Ailment = "bad-poison"
	AilmentSleep       Ailment = "sleep"
	AilmentFreeze      Ailment = "freeze"
	AilmentConfusion   Ailment = "confusion"
	AilmentInfatuation Ailment = "infatuation"
)

// PersistentStatus maps an ailment to the status condition it inflicts,
// or "" for volatile-only ailments.
func (a Ailment) PersistentStatus() StatusCondition {
	switch a {
	case AilmentBurn:
		return StatusBurn
	case AilmentParalysis:
		return StatusParalysis
	case AilmentPoison:
		return StatusPoison
	case AilmentBadPoison:
		return StatusBadPoison
	case AilmentSleep:
		return StatusSleep
	case AilmentFreeze:
		return StatusFreeze
	}
	return ""
}
