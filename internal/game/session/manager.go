package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/randomlocke/core/internal/db"
	"github.com/randomlocke/core/internal/game/battle"
	"github.com/randomlocke/core/internal/model"
)

// Store persists finished or suspended sessions. *db.DB satisfies it.
type Store interface {
	SaveSession(ctx context.Context, rec *db.SessionRecord) error
	DeleteSession(ctx context.Context, id string) error
}

// Manager is a concurrent registry of game sessions. Persistence is
// write-through and optional: a nil store keeps everything in memory.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*GameSession
	store    Store
}

// NewManager creates a session manager. store may be nil.
func NewManager(store Store) *Manager {
	return &Manager{
		sessions: make(map[string]*GameSession),
		store:    store,
	}
}

// Create registers a new session under the given id.
func (m *Manager) Create(id, playerName string, team []*model.CreatureInstance, seed uint64, policy battle.OpponentPolicy) (*GameSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionExists, id)
	}
	s := NewGameSession(id, playerName, team, seed, policy)
	m.sessions[id] = s
	return s, nil
}

// Get returns the session with the given id.
func (m *Manager) Get(id string) (*GameSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionUnknown, id)
	}
	return s, nil
}

// Delete removes a session from the registry and, when a store is
// configured, from persistence.
func (m *Manager) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionUnknown, id)
	}
	if m.store != nil {
		if err := m.store.DeleteSession(ctx, id); err != nil {
			return fmt.Errorf("deleting persisted session %q: %w", id, err)
		}
	}
	return nil
}

// Release drops a session from the registry without touching
// persistence. Persisted snapshots survive for later inspection.
func (m *Manager) Release(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Count returns the number of registered sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Persist writes a session snapshot through the configured store. A
// no-op when no store is configured.
func (m *Manager) Persist(ctx context.Context, s *GameSession) error {
	if m.store == nil {
		return nil
	}
	rec := &db.SessionRecord{
		ID:         s.ID,
		PlayerName: s.PlayerName,
		Seed:       s.Seed(),
		Team:       s.Team,
		State:      s.State,
		Outcome:    s.Outcome,
	}
	if err := m.store.SaveSession(ctx, rec); err != nil {
		return fmt.Errorf("persisting session %q: %w", s.ID, err)
	}
	return nil
}
