// Package session manages battle sessions: one player team bound to at
// most one running battle, with action validation in front of the
// engine. A session is not safe for concurrent use; the Manager guards
// the map, the host serializes requests per session id.
package session

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/randomlocke/core/internal/game/battle"
	"github.com/randomlocke/core/internal/model"
	"github.com/randomlocke/core/internal/rng"
)

var (
	ErrNoBattle       = errors.New("no active battle")
	ErrBattleOver     = errors.New("battle is over")
	ErrBattleRunning  = errors.New("battle already running")
	ErrInvalidAction  = errors.New("invalid action")
	ErrSessionExists  = errors.New("session already exists")
	ErrSessionUnknown = errors.New("session not found")
)

// GameSession owns a player's team and its current battle.
type GameSession struct {
	ID         string
	PlayerName string
	Team       []*model.CreatureInstance
	State      *model.BattleState
	Outcome    model.BattleOutcome

	seed   uint64
	r      *rng.Rand
	policy battle.OpponentPolicy
}

// NewGameSession creates a session with a seeded RNG stream. The policy
// drives the opponent's move choices once a battle starts.
func NewGameSession(id, playerName string, team []*model.CreatureInstance, seed uint64, policy battle.OpponentPolicy) *GameSession {
	return &GameSession{
		ID:         id,
		PlayerName: playerName,
		Team:       team,
		Outcome:    model.OutcomeContinue,
		seed:       seed,
		r:          rng.New(seed),
		policy:     policy,
	}
}

// StartBattle begins a battle against the given opponent team. Singles
// fields one creature per side, doubles two. Entry happens on the first
// ExecuteTurn so entry abilities resolve in field order.
func (s *GameSession) StartBattle(opponentTeam []*model.CreatureInstance, format model.BattleFormat) error {
	if s.State != nil && !s.Outcome.Terminal() {
		return ErrBattleRunning
	}
	slots := format.Slots()
	if len(s.Team) < slots {
		return fmt.Errorf("%w: player team has %d members, format needs %d", ErrInvalidAction, len(s.Team), slots)
	}
	if len(opponentTeam) < slots {
		return fmt.Errorf("%w: opponent team has %d members, format needs %d", ErrInvalidAction, len(opponentTeam), slots)
	}

	playerActive := make([]int, slots)
	opponentActive := make([]int, slots)
	for i := 0; i < slots; i++ {
		playerActive[i] = i
		opponentActive[i] = i
	}

	s.State = &model.BattleState{
		Format:                format,
		PlayerActiveIndices:   playerActive,
		OpponentTeam:          opponentTeam,
		OpponentActiveIndices: opponentActive,
	}
	s.Outcome = model.OutcomeContinue

	slog.Debug("battle started",
		"session", s.ID,
		"format", string(format),
		"opponents", len(opponentTeam))
	return nil
}

// SubmitAction validates and queues one player action for the next
// turn. One action per active slot; resubmitting for the same creature
// replaces the earlier entry.
func (s *GameSession) SubmitAction(a model.PendingAction) error {
	if s.State == nil {
		return ErrNoBattle
	}
	if s.Outcome.Terminal() {
		return ErrBattleOver
	}
	if a.UserIndex < 0 || a.UserIndex >= len(s.Team) {
		return fmt.Errorf("%w: user index %d out of range", ErrInvalidAction, a.UserIndex)
	}
	if !s.isActive(a.UserIndex) {
		return fmt.Errorf("%w: creature %d is not on the field", ErrInvalidAction, a.UserIndex)
	}
	user := s.Team[a.UserIndex]
	if user.IsFainted() {
		return fmt.Errorf("%w: creature %d has fainted", ErrInvalidAction, a.UserIndex)
	}

	if a.IsSwitch {
		if err := s.validateSwitch(a); err != nil {
			return err
		}
	} else if err := s.validateMove(user, a.MoveID); err != nil {
		return err
	}

	// Replace an earlier submission for the same slot.
	for i, pa := range s.State.PendingPlayerActions {
		if pa.UserIndex == a.UserIndex {
			s.State.PendingPlayerActions[i] = a
			return nil
		}
	}
	s.State.PendingPlayerActions = append(s.State.PendingPlayerActions, a)
	return nil
}

func (s *GameSession) validateSwitch(a model.PendingAction) error {
	if a.SwitchTo < 0 || a.SwitchTo >= len(s.Team) {
		return fmt.Errorf("%w: switch target %d out of range", ErrInvalidAction, a.SwitchTo)
	}
	if s.isActive(a.SwitchTo) {
		return fmt.Errorf("%w: switch target %d already on the field", ErrInvalidAction, a.SwitchTo)
	}
	if s.Team[a.SwitchTo].IsFainted() {
		return fmt.Errorf("%w: switch target %d has fainted", ErrInvalidAction, a.SwitchTo)
	}
	return nil
}

func (s *GameSession) validateMove(user *model.CreatureInstance, moveID string) error {
	if moveID == battle.StruggleID {
		if battle.HasMovesWithPP(user) {
			return fmt.Errorf("%w: moves with PP remain", ErrInvalidAction)
		}
		return nil
	}
	idx := user.FindMove(moveID)
	if idx < 0 || idx >= model.ActiveMoveSlots {
		return fmt.Errorf("%w: %s cannot use %s", ErrInvalidAction, user.Name(), moveID)
	}
	if user.Moves[idx].CurrentPP <= 0 {
		return fmt.Errorf("%w: %s is out of PP", ErrInvalidAction, moveID)
	}
	return nil
}

func (s *GameSession) isActive(teamIndex int) bool {
	for _, idx := range s.State.PlayerActiveIndices {
		if idx == teamIndex {
			return true
		}
	}
	return false
}

// AdvanceTurn consumes the queued actions and runs one engine turn.
func (s *GameSession) AdvanceTurn() (model.TurnResult, error) {
	if s.State == nil {
		return model.TurnResult{}, ErrNoBattle
	}
	if s.Outcome.Terminal() {
		return model.TurnResult{}, ErrBattleOver
	}

	eng := battle.New(s.State, s.Team, s.r, s.policy)
	res := eng.ExecuteTurn()
	s.Outcome = res.Outcome

	slog.Debug("turn resolved",
		"session", s.ID,
		"turn", s.State.Turn,
		"outcome", string(res.Outcome))
	return res, nil
}

// ReplaceFainted answers a PlayerMustSwitch verdict: the bench member
// takes the empty slot immediately, before the next turn.
func (s *GameSession) ReplaceFainted(pos model.FieldPosition, benchIndex int) error {
	if s.State == nil {
		return ErrNoBattle
	}
	if !pos.IsPlayerSide() {
		return fmt.Errorf("%w: position %s is not on the player side", ErrInvalidAction, pos)
	}
	cur := s.State.ActiveIndex(pos)
	if cur >= 0 && cur < len(s.Team) && !s.Team[cur].IsFainted() {
		return fmt.Errorf("%w: slot %s is still standing", ErrInvalidAction, pos)
	}
	if benchIndex < 0 || benchIndex >= len(s.Team) || s.Team[benchIndex].IsFainted() || s.isActive(benchIndex) {
		return fmt.Errorf("%w: bench index %d", ErrInvalidAction, benchIndex)
	}

	s.State.SetActiveIndex(pos, benchIndex)
	incoming := s.Team[benchIndex]
	incoming.EnterField()
	s.State.Logf("Go, %s!", incoming.Name())
	battle.EntryHooks(s.State, s.Team, pos)
	if s.Outcome == model.OutcomePlayerMustSwitch {
		s.Outcome = model.OutcomeContinue
	}
	return nil
}

// EndBattle tears down battle state and returns the team to its
// out-of-battle condition: stages and volatiles cleared, HP and status
// kept.
func (s *GameSession) EndBattle() {
	for _, c := range s.Team {
		c.LeaveField()
	}
	if s.State != nil {
		for _, c := range s.State.OpponentTeam {
			c.LeaveField()
		}
	}
	s.State = nil
	slog.Debug("battle ended", "session", s.ID, "outcome", string(s.Outcome))
}

// Seed returns the seed the session's RNG stream was created with.
func (s *GameSession) Seed() uint64 { return s.seed }
