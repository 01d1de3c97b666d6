package model

import (
	"encoding/json"
	"fmt"
)

// BattleFormat selects singles or doubles. Singles is the degenerate
// doubles with one slot per side.
type BattleFormat string

const (
	FormatSingle BattleFormat = "single"
	FormatDouble BattleFormat = "double"
)

// Slots returns the number of active slots per side.
func (f BattleFormat) Slots() int {
	if f == FormatDouble {
		return 2
	}
	return 1
}

// FieldPosition addresses one of the four possible field slots.
type FieldPosition uint8

const (
	PlayerLeft FieldPosition = iota
	PlayerRight
	OpponentLeft
	OpponentRight
)

var positionNames = [...]string{
	PlayerLeft:    "player-left",
	PlayerRight:   "player-right",
	OpponentLeft:  "opponent-left",
	OpponentRight: "opponent-right",
}

func (p FieldPosition) String() string {
	if int(p) >= len(positionNames) {
		return fmt.Sprintf("position(%d)", uint8(p))
	}
	return positionNames[p]
}

// IsPlayerSide reports whether the position belongs to the player.
func (p FieldPosition) IsPlayerSide() bool {
	return p == PlayerLeft || p == PlayerRight
}

// Slot returns the side-local slot index (0 = left, 1 = right).
func (p FieldPosition) Slot() int {
	if p == PlayerRight || p == OpponentRight {
		return 1
	}
	return 0
}

// Ally returns the other slot on the same side.
func (p FieldPosition) Ally() FieldPosition {
	switch p {
	case PlayerLeft:
		return PlayerRight
	case PlayerRight:
		return PlayerLeft
	case OpponentLeft:
		return OpponentRight
	default:
		return OpponentLeft
	}
}

// Across returns the directly opposing slot.
func (p FieldPosition) Across() FieldPosition {
	switch p {
	case PlayerLeft:
		return OpponentLeft
	case PlayerRight:
		return OpponentRight
	case OpponentLeft:
		return PlayerLeft
	default:
		return PlayerRight
	}
}

// PositionFor builds a field position from side and slot.
func PositionFor(playerSide bool, slot int) FieldPosition {
	if playerSide {
		if slot == 1 {
			return PlayerRight
		}
		return PlayerLeft
	}
	if slot == 1 {
		return OpponentRight
	}
	return OpponentLeft
}

// MarshalJSON writes the position as its name.
func (p FieldPosition) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON accepts a position name.
func (p *FieldPosition) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("position name: %w", err)
	}
	for i, n := range positionNames {
		if n == s {
			*p = FieldPosition(i)
			return nil
		}
	}
	return fmt.Errorf("unknown position %q", s)
}

// PendingAction is a player-submitted intent for one active slot.
type PendingAction struct {
	UserIndex      int            `json:"user_index"`
	MoveID         string         `json:"move_id,omitempty"`
	TargetPosition *FieldPosition `json:"target_position,omitempty"`
	SwitchTo       int            `json:"switch_to"`
	IsSwitch       bool           `json:"is_switch"`
}

// BattleOutcome is the engine's verdict after a turn.
type BattleOutcome string

const (
	OutcomeContinue         BattleOutcome = "continue"
	OutcomePlayerWon        BattleOutcome = "player_won"
	OutcomePlayerLost       BattleOutcome = "player_lost"
	OutcomePlayerMustSwitch BattleOutcome = "player_must_switch"
	OutcomeEnemySwitched    BattleOutcome = "enemy_switched"
)

// Terminal reports whether the battle is over.
func (o BattleOutcome) Terminal() bool {
	return o == OutcomePlayerWon || o == OutcomePlayerLost
}

// TurnResult is what one call to the engine produces.
type TurnResult struct {
	Logs              []string      `json:"logs"`
	PlayerDamageDealt int           `json:"player_damage_dealt"`
	EnemyDamageDealt  int           `json:"enemy_damage_dealt"`
	Outcome           BattleOutcome `json:"outcome"`
}

// BattleState is the mutable state of one battle. The player team is
// owned by the session and passed alongside; the opponent team is owned
// here.
type BattleState struct {
	Format                BattleFormat        `json:"format"`
	PlayerActiveIndices   []int               `json:"player_active_indices"`
	OpponentTeam          []*CreatureInstance `json:"opponent_team"`
	OpponentActiveIndices []int               `json:"opponent_active_indices"`
	Weather               *WeatherState       `json:"weather,omitempty"`
	Terrain               *TerrainState       `json:"terrain,omitempty"`
	Redirection           *Redirection        `json:"redirection,omitempty"`
	PendingPlayerActions  []PendingAction     `json:"pending_player_actions"`
	Turn                  int                 `json:"turn"`
	Log                   []string            `json:"log"`
}

// WeatherKind returns the active weather or "".
func (b *BattleState) WeatherKind() Weather {
	if b.Weather == nil {
		return ""
	}
	return b.Weather.Kind
}

// TerrainKind returns the active terrain or "".
func (b *BattleState) TerrainKind() Terrain {
	if b.Terrain == nil {
		return ""
	}
	return b.Terrain.Kind
}

// ActiveIndex returns the team index active at a position, or -1 when
// the slot is empty.
func (b *BattleState) ActiveIndex(pos FieldPosition) int {
	var idxs []int
	if pos.IsPlayerSide() {
		idxs = b.PlayerActiveIndices
	} else {
		idxs = b.OpponentActiveIndices
	}
	slot := pos.Slot()
	if slot >= len(idxs) {
		return -1
	}
	return idxs[slot]
}

// SetActiveIndex rebinds the team index at a position.
func (b *BattleState) SetActiveIndex(pos FieldPosition, teamIndex int) {
	slot := pos.Slot()
	if pos.IsPlayerSide() {
		if slot < len(b.PlayerActiveIndices) {
			b.PlayerActiveIndices[slot] = teamIndex
		}
		return
	}
	if slot < len(b.OpponentActiveIndices) {
		b.OpponentActiveIndices[slot] = teamIndex
	}
}

// OpponentActive returns the opponent's creature at the leading slot.
// Derived from the active indices at read time rather than cached.
func (b *BattleState) OpponentActive() *CreatureInstance {
	if len(b.OpponentActiveIndices) == 0 {
		return nil
	}
	i := b.OpponentActiveIndices[0]
	if i < 0 || i >= len(b.OpponentTeam) {
		return nil
	}
	return b.OpponentTeam[i]
}

// Logf appends a formatted line to the battle log.
func (b *BattleState) Logf(format string, args ...any) {
	b.Log = append(b.Log, fmt.Sprintf(format, args...))
}
