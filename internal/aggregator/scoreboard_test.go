package aggregator

import (
	"testing"
	"time"

	"github.com/dcnick3/breakgt/internal/models"
)

func mkRound(t1 time.Time, matches ...models.MatchResult) models.StoredRoundResult {
	return models.StoredRoundResult{Result: models.RoundResult{Matches: matches}, Datetime: t1}
}

func TestComputeScoreboardDropsOpponentErroredMatches(t *testing.T) {
	t1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rounds := []models.StoredRoundResult{
		mkRound(t1,
			models.MatchResult{
				Player1: models.PlayerResult{PlayerName: "alice", Outcome: models.OkOutcome(10)},
				Player2: models.PlayerResult{PlayerName: "bob", Outcome: models.ErrOutcome("boom")},
			},
		),
	}

	board := ComputeScoreboard(rounds)

	for _, p := range board.Positions {
		if p.Name == "alice" {
			t.Fatalf("alice should be dropped since bob (opponent) errored")
		}
	}
}

func TestComputeScoreboardAveragesAndSorts(t *testing.T) {
	t1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	rounds := []models.StoredRoundResult{
		mkRound(t1, models.MatchResult{
			Player1: models.PlayerResult{PlayerName: "alice", Outcome: models.OkOutcome(10)},
			Player2: models.PlayerResult{PlayerName: "bob", Outcome: models.OkOutcome(20)},
		}),
		mkRound(t2, models.MatchResult{
			Player1: models.PlayerResult{PlayerName: "alice", Outcome: models.OkOutcome(20)},
			Player2: models.PlayerResult{PlayerName: "bob", Outcome: models.OkOutcome(0)},
		}),
	}

	board := ComputeScoreboard(rounds)

	if !board.Datetime.Equal(t2) {
		t.Fatalf("expected datetime = max round time %v, got %v", t2, board.Datetime)
	}
	if len(board.Positions) != 2 {
		t.Fatalf("expected 2 positions, got %d", len(board.Positions))
	}
	// alice: mean(10,20)=15, bob: mean(20,0)=10 -> alice first
	if board.Positions[0].Name != "alice" || board.Positions[0].Score != 15 {
		t.Fatalf("unexpected first position: %+v", board.Positions[0])
	}
	if board.Positions[1].Name != "bob" || board.Positions[1].Score != 10 {
		t.Fatalf("unexpected second position: %+v", board.Positions[1])
	}
}

func TestComputeScoreboardTieBreaksByNameAscending(t *testing.T) {
	t1 := time.Now()
	rounds := []models.StoredRoundResult{
		mkRound(t1, models.MatchResult{
			Player1: models.PlayerResult{PlayerName: "zeta", Outcome: models.OkOutcome(5)},
			Player2: models.PlayerResult{PlayerName: "alpha", Outcome: models.OkOutcome(5)},
		}),
	}

	board := ComputeScoreboard(rounds)
	if board.Positions[0].Name != "alpha" || board.Positions[1].Name != "zeta" {
		t.Fatalf("expected alpha before zeta on tie, got %+v", board.Positions)
	}
}

func TestComputeMatchesFirstErrorWins(t *testing.T) {
	t1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rounds := []models.StoredRoundResult{
		mkRound(t1,
			models.MatchResult{
				Player1: models.PlayerResult{PlayerName: "alice", Outcome: models.OkOutcome(10)},
				Player2: models.PlayerResult{PlayerName: "bob", Outcome: models.OkOutcome(8)},
			},
			models.MatchResult{
				Player1: models.PlayerResult{PlayerName: "alice", Outcome: models.ErrOutcome("crashed")},
				Player2: models.PlayerResult{PlayerName: "bob", Outcome: models.OkOutcome(2)},
			},
		),
	}
	scoreboard := models.Scoreboard{Positions: []models.Position{{Name: "bob", Score: 5}}}

	view := ComputeMatches(rounds, scoreboard, "alice")

	if len(view.Matches) != 1 {
		t.Fatalf("expected 1 opponent group, got %d", len(view.Matches))
	}
	m := view.Matches[0]
	if !m.YourResult.IsError() {
		t.Fatalf("expected alice's result to be pinned to the first error seen")
	}
	errMsg, _ := m.YourResult.Err()
	if errMsg != "crashed" {
		t.Fatalf("expected error 'crashed', got %q", errMsg)
	}
}

func TestComputeMatchesOmitsOpponentMissingFromScoreboard(t *testing.T) {
	t1 := time.Now()
	rounds := []models.StoredRoundResult{
		mkRound(t1, models.MatchResult{
			Player1: models.PlayerResult{PlayerName: "alice", Outcome: models.OkOutcome(1)},
			Player2: models.PlayerResult{PlayerName: "ghost", Outcome: models.OkOutcome(2)},
		}),
	}
	scoreboard := models.Scoreboard{}

	view := ComputeMatches(rounds, scoreboard, "alice")
	if len(view.Matches) != 0 {
		t.Fatalf("expected ghost to be omitted, got %+v", view.Matches)
	}
}
