package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomlocke/core/internal/ai"
	"github.com/randomlocke/core/internal/db"
	"github.com/randomlocke/core/internal/model"
	"github.com/randomlocke/core/internal/testutil"
)

func newSession(t *testing.T, teamSize int) *GameSession {
	t.Helper()
	return NewGameSession("s1", "red", testutil.Team(t, teamSize, 50), 7, ai.FirstLegal{})
}

func startSingles(t *testing.T, s *GameSession) {
	t.Helper()
	require.NoError(t, s.StartBattle(testutil.Team(t, 2, 50), model.FormatSingle))
}

func TestStartBattleSetsUpState(t *testing.T) {
	s := newSession(t, 3)
	startSingles(t, s)

	require.NotNil(t, s.State)
	assert.Equal(t, model.FormatSingle, s.State.Format)
	assert.Equal(t, []int{0}, s.State.PlayerActiveIndices)
	assert.Equal(t, []int{0}, s.State.OpponentActiveIndices)
	assert.Equal(t, model.OutcomeContinue, s.Outcome)
}

func TestStartBattleRejectsShortTeams(t *testing.T) {
	s := newSession(t, 1)

	err := s.StartBattle(testutil.Team(t, 2, 50), model.FormatDouble)
	require.ErrorIs(t, err, ErrInvalidAction)

	err = s.StartBattle(testutil.Team(t, 1, 50), model.FormatDouble)
	require.ErrorIs(t, err, ErrInvalidAction)
}

func TestStartBattleRejectsSecondBattle(t *testing.T) {
	s := newSession(t, 3)
	startSingles(t, s)

	err := s.StartBattle(testutil.Team(t, 1, 50), model.FormatSingle)
	require.ErrorIs(t, err, ErrBattleRunning)
}

func TestSubmitActionValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *GameSession)
		action  model.PendingAction
		wantErr error
	}{
		{
			name:   "known move with PP",
			action: model.PendingAction{UserIndex: 0, MoveID: "scratch"},
		},
		{
			name:    "user index out of range",
			action:  model.PendingAction{UserIndex: 9, MoveID: "scratch"},
			wantErr: ErrInvalidAction,
		},
		{
			name:    "benched creature cannot act",
			action:  model.PendingAction{UserIndex: 1, MoveID: "scratch"},
			wantErr: ErrInvalidAction,
		},
		{
			name:    "unknown move",
			action:  model.PendingAction{UserIndex: 0, MoveID: "hyper-beam"},
			wantErr: ErrInvalidAction,
		},
		{
			name: "move beyond the active four",
			mutate: func(s *GameSession) {
				s.Team[0].Moves = append(s.Team[0].Moves,
					model.LearnedMove{MoveID: "bubble-beam", CurrentPP: 20, MaxPP: 20})
			},
			action:  model.PendingAction{UserIndex: 0, MoveID: "bubble-beam"},
			wantErr: ErrInvalidAction,
		},
		{
			name: "move out of PP",
			mutate: func(s *GameSession) {
				s.Team[0].Moves[0].CurrentPP = 0
			},
			action:  model.PendingAction{UserIndex: 0, MoveID: "scratch"},
			wantErr: ErrInvalidAction,
		},
		{
			name: "struggle rejected while PP remains",
			action: model.PendingAction{
				UserIndex: 0, MoveID: "struggle",
			},
			wantErr: ErrInvalidAction,
		},
		{
			name: "struggle allowed with empty tank",
			mutate: func(s *GameSession) {
				for i := range s.Team[0].Moves {
					s.Team[0].Moves[i].CurrentPP = 0
				}
			},
			action: model.PendingAction{UserIndex: 0, MoveID: "struggle"},
		},
		{
			name:   "valid switch",
			action: model.PendingAction{UserIndex: 0, IsSwitch: true, SwitchTo: 2},
		},
		{
			name:    "switch to active slot",
			action:  model.PendingAction{UserIndex: 0, IsSwitch: true, SwitchTo: 0},
			wantErr: ErrInvalidAction,
		},
		{
			name: "switch to fainted bench member",
			mutate: func(s *GameSession) {
				s.Team[2].CurrentHP = 0
			},
			action:  model.PendingAction{UserIndex: 0, IsSwitch: true, SwitchTo: 2},
			wantErr: ErrInvalidAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t, 3)
			startSingles(t, s)
			if tt.mutate != nil {
				tt.mutate(s)
			}

			err := s.SubmitAction(tt.action)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, s.State.PendingPlayerActions)
				return
			}
			require.NoError(t, err)
			require.Len(t, s.State.PendingPlayerActions, 1)
		})
	}
}

func TestSubmitActionReplacesEarlierEntry(t *testing.T) {
	s := newSession(t, 3)
	startSingles(t, s)

	require.NoError(t, s.SubmitAction(model.PendingAction{UserIndex: 0, MoveID: "scratch"}))
	require.NoError(t, s.SubmitAction(model.PendingAction{UserIndex: 0, MoveID: "flame-burst"}))

	require.Len(t, s.State.PendingPlayerActions, 1)
	assert.Equal(t, "flame-burst", s.State.PendingPlayerActions[0].MoveID)
}

func TestSubmitActionRequiresBattle(t *testing.T) {
	s := newSession(t, 3)
	err := s.SubmitAction(model.PendingAction{UserIndex: 0, MoveID: "scratch"})
	require.ErrorIs(t, err, ErrNoBattle)
}

func TestAdvanceTurnRunsTheEngine(t *testing.T) {
	s := newSession(t, 3)
	startSingles(t, s)
	require.NoError(t, s.SubmitAction(model.PendingAction{UserIndex: 0, MoveID: "scratch"}))

	res, err := s.AdvanceTurn()
	require.NoError(t, err)

	assert.Equal(t, 1, s.State.Turn)
	assert.NotEmpty(t, res.Logs)
	assert.Positive(t, res.PlayerDamageDealt)
	assert.Empty(t, s.State.PendingPlayerActions, "pending actions are consumed")
}

func TestAdvanceTurnAfterBattleOver(t *testing.T) {
	s := newSession(t, 3)
	startSingles(t, s)
	s.Outcome = model.OutcomePlayerWon

	_, err := s.AdvanceTurn()
	require.ErrorIs(t, err, ErrBattleOver)
}

func TestBattleRunsToCompletion(t *testing.T) {
	s := newSession(t, 2)
	require.NoError(t, s.StartBattle(testutil.Team(t, 1, 5), model.FormatSingle))

	for turn := 0; turn < 100 && !s.Outcome.Terminal(); turn++ {
		for _, idx := range s.State.PlayerActiveIndices {
			if idx >= 0 && !s.Team[idx].IsFainted() {
				require.NoError(t, s.SubmitAction(model.PendingAction{UserIndex: idx, MoveID: "scratch"}))
			}
		}
		_, err := s.AdvanceTurn()
		require.NoError(t, err)

		if s.Outcome == model.OutcomePlayerMustSwitch {
			for i, c := range s.Team {
				if !c.IsFainted() && !s.isActive(i) {
					require.NoError(t, s.ReplaceFainted(model.PlayerLeft, i))
					break
				}
			}
		}
	}

	assert.Equal(t, model.OutcomePlayerWon, s.Outcome, "level 50 team beats a lone level 5")
}

func TestReplaceFaintedValidation(t *testing.T) {
	s := newSession(t, 3)
	startSingles(t, s)

	err := s.ReplaceFainted(model.PlayerLeft, 1)
	require.ErrorIs(t, err, ErrInvalidAction, "active creature still standing")

	s.Team[0].CurrentHP = 0
	s.Team[0].LeaveField()
	s.Outcome = model.OutcomePlayerMustSwitch

	require.NoError(t, s.ReplaceFainted(model.PlayerLeft, 1))
	assert.Equal(t, 1, s.State.ActiveIndex(model.PlayerLeft))
	assert.True(t, s.Team[1].OnField())
	assert.Equal(t, model.OutcomeContinue, s.Outcome)
}

func TestEndBattleClearsState(t *testing.T) {
	s := newSession(t, 3)
	startSingles(t, s)
	require.NoError(t, s.SubmitAction(model.PendingAction{UserIndex: 0, MoveID: "scratch"}))
	_, err := s.AdvanceTurn()
	require.NoError(t, err)

	s.EndBattle()

	assert.Nil(t, s.State)
	for _, c := range s.Team {
		assert.Nil(t, c.Stages)
		assert.Nil(t, c.Volatile)
	}
}

type recordingStore struct {
	saved   []*db.SessionRecord
	deleted []string
}

func (r *recordingStore) SaveSession(_ context.Context, rec *db.SessionRecord) error {
	r.saved = append(r.saved, rec)
	return nil
}

func (r *recordingStore) DeleteSession(_ context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func TestManagerLifecycle(t *testing.T) {
	store := &recordingStore{}
	m := NewManager(store)

	s, err := m.Create("s1", "red", testutil.Team(t, 2, 50), 1, ai.FirstLegal{})
	require.NoError(t, err)

	_, err = m.Create("s1", "blue", testutil.Team(t, 2, 50), 2, ai.FirstLegal{})
	require.ErrorIs(t, err, ErrSessionExists)

	got, err := m.Get("s1")
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.Equal(t, 1, m.Count())

	require.NoError(t, m.Persist(context.Background(), s))
	require.Len(t, store.saved, 1)
	assert.Equal(t, "s1", store.saved[0].ID)
	assert.Equal(t, uint64(1), store.saved[0].Seed)

	require.NoError(t, m.Delete(context.Background(), "s1"))
	assert.Equal(t, []string{"s1"}, store.deleted)
	assert.Equal(t, 0, m.Count())

	_, err = m.Get("s1")
	require.ErrorIs(t, err, ErrSessionUnknown)
	err = m.Delete(context.Background(), "s1")
	require.ErrorIs(t, err, ErrSessionUnknown)
}

func TestManagerReleaseKeepsPersistedRow(t *testing.T) {
	store := &recordingStore{}
	m := NewManager(store)
	_, err := m.Create("s1", "red", testutil.Team(t, 1, 50), 1, ai.FirstLegal{})
	require.NoError(t, err)

	m.Release("s1")
	assert.Equal(t, 0, m.Count())
	assert.Empty(t, store.deleted)
}

func TestManagerPersistWithoutStore(t *testing.T) {
	m := NewManager(nil)
	s, err := m.Create("s1", "red", testutil.Team(t, 1, 50), 1, ai.FirstLegal{})
	require.NoError(t, err)
	require.NoError(t, m.Persist(context.Background(), s))
}
