// internal/models/scoreboard.go
// Derived, read-only views over the recent rounds: the global scoreboard and
// a viewer-specific redacted match history.

package models

import "time"

// Position is one entry in the scoreboard's ordered positions list.
type Position struct {
	Name  string
	Score float64
}

// MarshalJSON renders a Position as the wire tuple ["name", score].
func (p Position) MarshalJSON() ([]byte, error) {
	return marshalTuple(p.Name, p.Score)
}

// Scoreboard is the ordered, mean-score ranking over the considered rounds.
type Scoreboard struct {
	Datetime  time.Time  `json:"datetime"`
	Positions []Position `json:"positions"`
}

// RedactedMatchResult is the user-facing view of a match involving the viewer.
type RedactedMatchResult struct {
	YourResult              Outcome `json:"your_result"`
	OpponentResult          Outcome `json:"opponent_result"`
	OpponentName            string  `json:"opponent_name"`
	OpponentScoreboardScore float64 `json:"opponent_scoreboard_score"`
}

// PlayerMatches is the full match view returned to an authenticated viewer.
type PlayerMatches struct {
	RoundTime time.Time             `json:"round_time"`
	Matches   []RedactedMatchResult `json:"matches"`
}
