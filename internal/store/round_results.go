// internal/store/round_results.go
// Round result persistence: each round is stored as its JSON-encoded
// RoundResult plus the participant submission ids that produced it.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dcnick3/breakgt/internal/models"
)

// RoundResultStore handles round result data access.
type RoundResultStore struct {
	db *sql.DB
}

// NewRoundResultStore creates a new round result store.
func NewRoundResultStore(db *sql.DB) *RoundResultStore {
	return &RoundResultStore{db: db}
}

// Add persists a round's result, participants (user id -> submission id),
// and timestamp.
func (s *RoundResultStore) Add(ctx context.Context, result models.RoundResult, participants map[string]int64, datetime time.Time) (int64, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("store: marshal round result: %w", err)
	}
	participantsJSON, err := json.Marshal(participants)
	if err != nil {
		return 0, fmt.Errorf("store: marshal participants: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO round_results (result, participants, datetime) VALUES (?, ?, ?)`,
		resultJSON, participantsJSON, datetime,
	)
	if err != nil {
		return 0, fmt.Errorf("store: add round result: %w", err)
	}
	return res.LastInsertId()
}

// LastRounds returns the most recent n rounds, ordered oldest to newest.
func (s *RoundResultStore) LastRounds(ctx context.Context, n int) ([]models.StoredRoundResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, result, participants, datetime FROM round_results ORDER BY datetime DESC, id DESC LIMIT ?`,
		n,
	)
	if err != nil {
		return nil, fmt.Errorf("store: last rounds: %w", err)
	}
	defer rows.Close()

	var out []models.StoredRoundResult
	for rows.Next() {
		var (
			stored           models.StoredRoundResult
			resultJSON       []byte
			participantsJSON []byte
		)
		if err := rows.Scan(&stored.ID, &resultJSON, &participantsJSON, &stored.Datetime); err != nil {
			return nil, fmt.Errorf("store: scan round result: %w", err)
		}
		if err := json.Unmarshal(resultJSON, &stored.Result); err != nil {
			return nil, fmt.Errorf("store: decode round result %d: %w", stored.ID, err)
		}
		if err := json.Unmarshal(participantsJSON, &stored.Participants); err != nil {
			return nil, fmt.Errorf("store: decode participants %d: %w", stored.ID, err)
		}
		out = append(out, stored)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// reverse into oldest-to-newest order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
