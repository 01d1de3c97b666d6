package model

// Weather is a field-wide weather condition. At most one is active.
type Weather string

const (
	WeatherSun       Weather = "sun"
	WeatherRain      Weather = "rain"
	WeatherSandstorm Weather = "sandstorm"
	WeatherHail      Weather = "hail"
)

// Terrain is a field-wide terrain condition. At most one is active.
type Terrain string

const (
	TerrainElectric Terrain = "electric"
	TerrainGrassy   Terrain = "grassy"
	TerrainMisty    Terrain = "misty"
	TerrainPsychic  Terrain = "psychic"
)

// DefaultFieldTurns is how long weather and terrain set in battle last.
const DefaultFieldTurns = 5

// WeatherState pairs an active weather with its remaining duration.
type WeatherState struct {
	Kind           Weather `json:"kind"`
	TurnsRemaining int     `json:"turns_remaining"`
}

// TerrainState pairs an active terrain with its remaining duration.
type TerrainState struct {
	Kind           Terrain `json:"kind"`
	TurnsRemaining int     `json:"turns_remaining"`
}

// RedirectKind distinguishes the redirection moves.
type RedirectKind string

const (
	RedirectFollowMe   RedirectKind = "follow-me"
	RedirectRagePowder RedirectKind = "rage-powder"
	RedirectSpotlight  RedirectKind = "spotlight"
)

// Redirection is the field record set by Follow-Me-family moves. It lasts
// for the turn it was set and pulls single-target moves to the redirector.
type Redirection struct {
	Redirector   FieldPosition `json:"redirector_position"`
	Kind         RedirectKind  `json:"kind"`
	OpponentOnly bool          `json:"opponent_only"`
}
