// internal/models/round.go
// The round result shape produced by the fixture and persisted by the
// scheduler, mirroring the matchmaker's in-memory representation.

package models

import "time"

// PlayerResult is one side of a match.
type PlayerResult struct {
	PlayerName string  `json:"player_name"`
	Outcome    Outcome `json:"outcome"`
	Moves      []int   `json:"moves"`
}

// MatchResult is a single two-player game instance.
type MatchResult struct {
	Moves   int          `json:"moves"`
	Player1 PlayerResult `json:"player1"`
	Player2 PlayerResult `json:"player2"`
}

// RoundResult is the full set of matches produced by one fixture run.
type RoundResult struct {
	Matches []MatchResult `json:"matches"`
}

// StoredRoundResult is a round result as persisted, with its participant
// map and timestamp.
type StoredRoundResult struct {
	ID           int64
	Result       RoundResult
	Participants map[string]int64 // user_id -> submission id
	Datetime     time.Time
}
