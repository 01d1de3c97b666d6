package ability

import "github.com/randomlocke/core/internal/model"

// Hook pairs a trigger with the effect the engine interprets there.
type Hook struct {
	Trigger Trigger
	Effect  Effect
}

func hook(t Trigger, e Effect) Hook { return Hook{Trigger: t, Effect: e} }

func typeRef(t model.Type) *model.Type { return &t }

var registry = map[string][]Hook{
	// Weather and terrain summons.
	"drought":      {hook(OnEntry, SetWeather{Kind: model.WeatherSun, Turns: model.DefaultFieldTurns})},
	"drizzle":      {hook(OnEntry, SetWeather{Kind: model.WeatherRain, Turns: model.DefaultFieldTurns})},
	"sand-stream":  {hook(OnEntry, SetWeather{Kind: model.WeatherSandstorm, Turns: model.DefaultFieldTurns})},
	"snow-warning": {hook(OnEntry, SetWeather{Kind: model.WeatherHail, Turns: model.DefaultFieldTurns})},

	"electric-surge": {hook(OnEntry, SetTerrain{Kind: model.TerrainElectric, Turns: model.DefaultFieldTurns})},
	"grassy-surge":   {hook(OnEntry, SetTerrain{Kind: model.TerrainGrassy, Turns: model.DefaultFieldTurns})},
	"misty-surge":    {hook(OnEntry, SetTerrain{Kind: model.TerrainMisty, Turns: model.DefaultFieldTurns})},
	"psychic-surge":  {hook(OnEntry, SetTerrain{Kind: model.TerrainPsychic, Turns: model.DefaultFieldTurns})},

	// Entry stat modification.
	"intimidate": {hook(OnEntry, ModifyStatOnEntry{
		Stat: model.StatAttack, Stages: -1, Target: TargetAllOpponents,
	})},
	// Download compares the opposing defenses, which the table cannot express.
	"download": {hook(OnEntry, Custom{ID: "download"})},

	// Type immunities and absorbs.
	"levitate":    {hook(BeforeDamage, TypeImmunity{Type: model.TypeGround})},
	"volt-absorb": {hook(BeforeDamage, TypeImmunity{Type: model.TypeElectric, HealFraction: 0.25})},
	"water-absorb": {hook(BeforeDamage, TypeImmunity{
		Type: model.TypeWater, HealFraction: 0.25,
	})},
	"flash-fire": {hook(BeforeDamage, TypeImmunity{
		Type:  model.TypeFire,
		Boost: &model.StatChange{Stat: model.StatSpecialAttack, Stages: 1},
	})},
	"sap-sipper": {hook(BeforeDamage, TypeImmunity{
		Type:  model.TypeGrass,
		Boost: &model.StatChange{Stat: model.StatAttack, Stages: 1},
	})},

	// Passive stat multipliers.
	"huge-power": {hook(BeforeDamage, MultiplyBaseStat{Stat: model.StatAttack, Factor: 2.0})},
	"pure-power": {hook(BeforeDamage, MultiplyBaseStat{Stat: model.StatAttack, Factor: 2.0})},
	"fur-coat":   {hook(BeforeDamage, MultiplyBaseStat{Stat: model.StatDefense, Factor: 2.0})},

	// Pinch boosts.
	"blaze":    {hook(BeforeDamage, BoostTypeAtLowHP{Type: model.TypeFire, Factor: 1.5, Threshold: 0.33})},
	"torrent":  {hook(BeforeDamage, BoostTypeAtLowHP{Type: model.TypeWater, Factor: 1.5, Threshold: 0.33})},
	"overgrow": {hook(BeforeDamage, BoostTypeAtLowHP{Type: model.TypeGrass, Factor: 1.5, Threshold: 0.33})},
	"swarm":    {hook(BeforeDamage, BoostTypeAtLowHP{Type: model.TypeBug, Factor: 1.5, Threshold: 0.33})},

	"tough-claws": {hook(BeforeDamage, BoostContactMoves{Factor: 1.3})},

	// Weather and terrain speed.
	"chlorophyll": {hook(ModifySpeed, MultiplySpeedInWeather{Weather: model.WeatherSun, Factor: 2.0})},
	"swift-swim":  {hook(ModifySpeed, MultiplySpeedInWeather{Weather: model.WeatherRain, Factor: 2.0})},
	"sand-rush":   {hook(ModifySpeed, MultiplySpeedInWeather{Weather: model.WeatherSandstorm, Factor: 2.0})},
	"slush-rush":  {hook(ModifySpeed, MultiplySpeedInWeather{Weather: model.WeatherHail, Factor: 2.0})},
	"surge-surfer": {hook(ModifySpeed, MultiplySpeedInTerrain{
		Terrain: model.TerrainElectric, Factor: 2.0,
	})},

	// Priority.
	"prankster": {hook(ModifyPriority, ModifyMovePriority{Boost: 1})},
	"gale-wings": {hook(ModifyPriority, ModifyMovePriority{
		MoveType: typeRef(model.TypeFlying), Boost: 1, Condition: CondFullHP,
	})},

	// Accuracy and crit.
	"compound-eyes": {hook(BeforeDamage, ModifyAccuracy{Factor: 1.3})},
	"super-luck":    {hook(BeforeDamage, ModifyCritRate{Stages: 1})},

	// On-hit stage shifts.
	"stamina": {hook(OnReceiveDamage, ModifyStatsOnHit{
		Changes: []model.StatChange{{Stat: model.StatDefense, Stages: 1}},
	})},
	"weak-armor": {hook(OnReceiveDamage, ModifyStatsOnHit{
		Changes: []model.StatChange{
			{Stat: model.StatDefense, Stages: -1},
			{Stat: model.StatSpeed, Stages: 2},
		},
	})},

	// Contact punishment.
	"static":     {hook(OnContact, InflictStatusOnContact{Status: model.StatusParalysis, Chance: 30})},
	"flame-body": {hook(OnContact, InflictStatusOnContact{Status: model.StatusBurn, Chance: 30})},
	"rough-skin": {hook(OnContact, DamageAttackerOnContact{Fraction: 1.0 / 8.0})},
	"iron-barbs": {hook(OnContact, DamageAttackerOnContact{Fraction: 1.0 / 8.0})},

	// End of turn.
	"speed-boost": {hook(EndOfTurn, BoostStatEndOfTurn{Stat: model.StatSpeed, Stages: 1})},
	"rain-dish": {hook(EndOfTurn, HealEndOfTurn{
		Fraction: 1.0 / 16.0, Weather: model.WeatherRain,
	})},

	// Protection.
	"clear-body":  {hook(BeforeDamage, PreventStatLoss{})},
	"white-smoke": {hook(BeforeDamage, PreventStatLoss{})},
	"hyper-cutter": {hook(BeforeDamage, PreventStatLoss{
		Stats: []model.Stat{model.StatAttack},
	})},
	"immunity": {hook(BeforeDamage, PreventStatus{
		Statuses: []model.StatusCondition{model.StatusPoison, model.StatusBadPoison},
	})},
	"limber": {hook(BeforeDamage, PreventStatus{
		Statuses: []model.StatusCondition{model.StatusParalysis},
	})},

	// Switch.
	"regenerator": {hook(OnSwitch, HealOnSwitch{Fraction: 1.0 / 3.0})},

	// Ability bypass.
	"mold-breaker": {hook(BeforeDamage, IgnoreOpponentAbility{})},
	"teravolt":     {hook(BeforeDamage, IgnoreOpponentAbility{})},
	"turboblaze":   {hook(BeforeDamage, IgnoreOpponentAbility{})},

	// Damage-stack modifiers.
	"solid-rock":  {hook(BeforeDamage, ReduceSuperEffectiveDamage{Factor: 0.75})},
	"filter":      {hook(BeforeDamage, ReduceSuperEffectiveDamage{Factor: 0.75})},
	"technician":  {hook(BeforeDamage, BoostWeakMoves{Threshold: 60, Factor: 1.5})},
	"sheer-force": {hook(BeforeDamage, RemoveSecondaryEffects{Factor: 1.3})},
}

// Hooks returns the hooks of an ability. Unknown ids return nil, which
// the engine treats as "no passive behavior".
func Hooks(abilityID string) []Hook {
	return registry[abilityID]
}

// EffectsFor returns the effects an ability contributes at one trigger.
func EffectsFor(abilityID string, t Trigger) []Effect {
	var out []Effect
	for _, h := range registry[abilityID] {
		if h.Trigger == t {
			out = append(out, h.Effect)
		}
	}
	return out
}

// Has reports whether an ability contributes anything at a trigger.
func Has(abilityID string, t Trigger) bool {
	for _, h := range registry[abilityID] {
		if h.Trigger == t {
			return true
		}
	}
	return false
}
