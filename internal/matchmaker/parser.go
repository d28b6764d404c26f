// internal/matchmaker/parser.go
// Parses the fixture's stdout into a RoundResult, turning each player's
// error/score fields into an Outcome and stripping the player_<id>.Strat
// class name back down to the bare id.

package matchmaker

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/dcnick3/breakgt/internal/execution"
	"github.com/dcnick3/breakgt/internal/models"
)

var playerIDRegex = regexp.MustCompile(`^gametheory\.assignment2\.player_([^.]+)\.Strat$`)

type rawPlayerResult struct {
	PlayerName string `json:"player_name"`
	Error      string `json:"error"`
	Score      float64 `json:"score"`
	Moves      []int   `json:"moves"`
}

type rawMatchResult struct {
	Moves   uint64          `json:"moves"`
	Player1 rawPlayerResult `json:"player1"`
	Player2 rawPlayerResult `json:"player2"`
}

type rawRoundResult struct {
	Matches []rawMatchResult `json:"matches"`
}

func playerID(className string) string {
	if m := playerIDRegex.FindStringSubmatch(className); m != nil {
		return m[1]
	}
	return className
}

func convertPlayerResult(p rawPlayerResult) models.PlayerResult {
	var outcome models.Outcome
	if p.Error != "" {
		outcome = models.ErrOutcome(p.Error)
	} else {
		outcome = models.OkOutcome(p.Score)
	}

	return models.PlayerResult{
		PlayerName: playerID(p.PlayerName),
		Outcome:    outcome,
		Moves:      p.Moves,
	}
}

// ParseRoundResult decodes the fixture's last stdout line into a
// RoundResult. It never receives a caller context; failures are always
// reported relative to the raw exit captured by the caller.
func ParseRoundResult(raw string) (models.RoundResult, error) {
	var parsed rawRoundResult
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return models.RoundResult{}, fmt.Errorf("matchmaker: decode round result: %w", err)
	}

	result := models.RoundResult{Matches: make([]models.MatchResult, 0, len(parsed.Matches))}
	for _, m := range parsed.Matches {
		result.Matches = append(result.Matches, models.MatchResult{
			Moves:   int(m.Moves),
			Player1: convertPlayerResult(m.Player1),
			Player2: convertPlayerResult(m.Player2),
		})
	}

	return result, nil
}

// ExtractLastLine returns the last non-empty line of stdout, which the
// fixture contract designates as the sole line carrying the JSON result.
func ExtractLastLine(stdout string) (string, bool) {
	lines := strings.Split(stdout, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line != "" {
			return line, true
		}
	}
	return "", false
}

// ParseFixtureOutput interprets a fixture run's exit code and stdout,
// returning a FixtureFailure wrapping any parse error so callers can
// surface the raw stdout/stderr to the user.
func ParseFixtureOutput(statusCode int64, stdout, stderr string) (models.RoundResult, error) {
	if statusCode != 0 {
		return models.RoundResult{}, &execution.FixtureFailure{StatusCode: statusCode, Stdout: stdout, Stderr: stderr}
	}

	last, ok := ExtractLastLine(stdout)
	if !ok {
		return models.RoundResult{}, &execution.FixtureFailure{StatusCode: statusCode, Stdout: stdout, Stderr: stderr}
	}

	result, err := ParseRoundResult(last)
	if err != nil {
		return models.RoundResult{}, &execution.FixtureFailure{StatusCode: statusCode, Stdout: stdout, Stderr: stderr, Inner: err}
	}

	return result, nil
}
