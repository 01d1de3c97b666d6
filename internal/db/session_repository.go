package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/randomlocke/core/internal/model"
)

// SessionRecord is a persisted battle session row.
type SessionRecord struct {
	ID         string
	PlayerName string
	Seed       uint64
	Team       []*model.CreatureInstance
	State      *model.BattleState
	Outcome    model.BattleOutcome
	UpdatedAt  time.Time
}

// SaveSession upserts a session record.
func (d *DB) SaveSession(ctx context.Context, rec *SessionRecord) error {
	teamJSON, err := json.Marshal(rec.Team)
	if err != nil {
		return fmt.Errorf("encoding team for session %q: %w", rec.ID, err)
	}
	var stateJSON []byte
	if rec.State != nil {
		stateJSON, err = json.Marshal(rec.State)
		if err != nil {
			return fmt.Errorf("encoding state for session %q: %w", rec.ID, err)
		}
	}

	_, err = d.pool.Exec(ctx,
		`INSERT INTO sessions (id, player_name, seed, team, state, outcome, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, now())
		 ON CONFLICT (id) DO UPDATE
		 SET team = EXCLUDED.team,
		     state = EXCLUDED.state,
		     outcome = EXCLUDED.outcome,
		     updated_at = now()`,
		rec.ID, rec.PlayerName, int64(rec.Seed), teamJSON, stateJSON, string(rec.Outcome),
	)
	if err != nil {
		return fmt.Errorf("saving session %q: %w", rec.ID, err)
	}
	return nil
}

// LoadSession retrieves a session by ID.
// Returns nil, nil if the session does not exist.
// Species pointers are not restored here; the caller re-resolves them
// against the loaded catalog.
func (d *DB) LoadSession(ctx context.Context, id string) (*SessionRecord, error) {
	var (
		rec       SessionRecord
		seed      int64
		teamJSON  []byte
		stateJSON []byte
		outcome   string
	)
	err := d.pool.QueryRow(ctx,
		`SELECT id, player_name, seed, team, state, outcome, updated_at
		 FROM sessions WHERE id = $1`, id,
	).Scan(&rec.ID, &rec.PlayerName, &seed, &teamJSON, &stateJSON, &outcome, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying session %q: %w", id, err)
	}

	rec.Seed = uint64(seed)
	rec.Outcome = model.BattleOutcome(outcome)
	if err := json.Unmarshal(teamJSON, &rec.Team); err != nil {
		return nil, fmt.Errorf("decoding team for session %q: %w", id, err)
	}
	if len(stateJSON) > 0 {
		rec.State = &model.BattleState{}
		if err := json.Unmarshal(stateJSON, rec.State); err != nil {
			return nil, fmt.Errorf("decoding state for session %q: %w", id, err)
		}
	}
	return &rec, nil
}

// DeleteSession removes a session by ID.
func (d *DB) DeleteSession(ctx context.Context, id string) error {
	_, err := d.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting session %q: %w", id, err)
	}
	return nil
}

// ListSessions returns all sessions for a player, most recent first.
func (d *DB) ListSessions(ctx context.Context, playerName string) ([]*SessionRecord, error) {
	rows, err := d.pool.Query(ctx,
		`SELECT id, player_name, seed, outcome, updated_at
		 FROM sessions WHERE player_name = $1
		 ORDER BY updated_at DESC`, playerName,
	)
	if err != nil {
		return nil, fmt.Errorf("listing sessions for %q: %w", playerName, err)
	}
	defer rows.Close()

	var recs []*SessionRecord
	for rows.Next() {
		var (
			rec     SessionRecord
			seed    int64
			outcome string
		)
		if err := rows.Scan(&rec.ID, &rec.PlayerName, &seed, &outcome, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		rec.Seed = uint64(seed)
		rec.Outcome = model.BattleOutcome(outcome)
		recs = append(recs, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session rows: %w", err)
	}
	return recs, nil
}
