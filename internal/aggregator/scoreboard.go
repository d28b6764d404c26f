// internal/aggregator/scoreboard.go
// Pure functions deriving a Scoreboard and a viewer's PlayerMatches view
// from the most recent rounds, mirroring compute_scoreboard /
// compute_matches.

package aggregator

import (
	"math"
	"sort"
	"time"

	"github.com/dcnick3/breakgt/internal/models"
)

// round3 rounds a score to three decimal places.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

type runningMean struct {
	sum   float64
	count int
}

func (m *runningMean) add(v float64) {
	m.sum += v
	m.count++
}

func (m *runningMean) mean() float64 {
	if m.count == 0 {
		return 0
	}
	return m.sum / float64(m.count)
}

// ComputeScoreboard derives the ranked scoreboard from the window of
// recent rounds. For every match it considers both player orderings,
// drops the ordering whose opponent side errored, and averages the
// remaining numeric outcomes per participant. Pure: identical inputs
// always produce an identical scoreboard.
func ComputeScoreboard(rounds []models.StoredRoundResult) models.Scoreboard {
	means := make(map[string]*runningMean)
	var maxTime time.Time

	for _, round := range rounds {
		if round.Datetime.After(maxTime) {
			maxTime = round.Datetime
		}
		for _, m := range round.Result.Matches {
			for _, pair := range [][2]models.PlayerResult{{m.Player1, m.Player2}, {m.Player2, m.Player1}} {
				self, opponent := pair[0], pair[1]
				if opponent.Outcome.IsError() {
					continue
				}
				score, ok := self.Outcome.Score()
				if !ok {
					continue
				}
				mean, exists := means[self.PlayerName]
				if !exists {
					mean = &runningMean{}
					means[self.PlayerName] = mean
				}
				mean.add(score)
			}
		}
	}

	positions := make([]models.Position, 0, len(means))
	for name, mean := range means {
		positions = append(positions, models.Position{Name: name, Score: round3(mean.mean())})
	}

	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Score != positions[j].Score {
			return positions[i].Score > positions[j].Score
		}
		return positions[i].Name < positions[j].Name
	})

	return models.Scoreboard{Datetime: maxTime, Positions: positions}
}

// groupMean tracks a first-error-wins running average: once any error is
// observed, the group is permanently pinned to that error message and
// further numeric values are ignored.
type groupMean struct {
	mean    runningMean
	errored bool
	errMsg  string
}

func (g *groupMean) add(o models.Outcome) {
	if g.errored {
		return
	}
	if o.IsError() {
		msg, _ := o.Err()
		g.errored = true
		g.errMsg = msg
		return
	}
	score, _ := o.Score()
	g.mean.add(score)
}

func (g *groupMean) outcome() models.Outcome {
	if g.errored {
		return models.ErrOutcome(g.errMsg)
	}
	return models.OkOutcome(round3(g.mean.mean()))
}

// ComputeMatches derives the viewer's redacted match view: one entry per
// opponent the viewer has played in the window, averaged across repeated
// matches against that opponent (first-error-wins per side), ordered by
// the opponent's scoreboard score descending then name ascending.
// Opponents absent from the scoreboard (no non-error result anywhere in
// the window) are omitted.
func ComputeMatches(rounds []models.StoredRoundResult, scoreboard models.Scoreboard, viewer string) models.PlayerMatches {
	type group struct {
		self     groupMean
		opponent groupMean
	}
	groups := make(map[string]*group)
	order := make([]string, 0)

	for _, round := range rounds {
		for _, m := range round.Result.Matches {
			var self, opponent models.PlayerResult
			switch {
			case m.Player1.PlayerName == viewer:
				self, opponent = m.Player1, m.Player2
			case m.Player2.PlayerName == viewer:
				self, opponent = m.Player2, m.Player1
			default:
				continue
			}

			g, ok := groups[opponent.PlayerName]
			if !ok {
				g = &group{}
				groups[opponent.PlayerName] = g
				order = append(order, opponent.PlayerName)
			}
			g.self.add(self.Outcome)
			g.opponent.add(opponent.Outcome)
		}
	}

	scores := make(map[string]float64, len(scoreboard.Positions))
	for _, p := range scoreboard.Positions {
		scores[p.Name] = p.Score
	}

	matches := make([]models.RedactedMatchResult, 0, len(order))
	for _, opponentName := range order {
		score, ok := scores[opponentName]
		if !ok {
			continue
		}
		g := groups[opponentName]
		matches = append(matches, models.RedactedMatchResult{
			YourResult:              g.self.outcome(),
			OpponentResult:          g.opponent.outcome(),
			OpponentName:            opponentName,
			OpponentScoreboardScore: score,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].OpponentScoreboardScore != matches[j].OpponentScoreboardScore {
			return matches[i].OpponentScoreboardScore > matches[j].OpponentScoreboardScore
		}
		return matches[i].OpponentName < matches[j].OpponentName
	})

	return models.PlayerMatches{RoundTime: scoreboard.Datetime, Matches: matches}
}
