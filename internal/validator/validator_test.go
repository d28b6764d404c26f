package validator

import (
	"testing"

	"github.com/dcnick3/breakgt/internal/models"
)

func TestPairsForPlayerExpandsBothOrderings(t *testing.T) {
	round := models.RoundResult{Matches: []models.MatchResult{
		{
			Player1: models.PlayerResult{PlayerName: "alice", Outcome: models.OkOutcome(1)},
			Player2: models.PlayerResult{PlayerName: "strat1", Outcome: models.OkOutcome(2)},
		},
		{
			Player1: models.PlayerResult{PlayerName: "strat2", Outcome: models.OkOutcome(3)},
			Player2: models.PlayerResult{PlayerName: "alice", Outcome: models.OkOutcome(4)},
		},
		{
			Player1: models.PlayerResult{PlayerName: "strat1", Outcome: models.OkOutcome(5)},
			Player2: models.PlayerResult{PlayerName: "strat2", Outcome: models.OkOutcome(6)},
		},
	}}

	pairs := pairsForPlayer(round, "alice")
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs for alice, got %d", len(pairs))
	}
	for _, p := range pairs {
		if p.Player.PlayerName != "alice" {
			t.Fatalf("expected self-player alice, got %s", p.Player.PlayerName)
		}
	}
}

func TestPairsForPlayerNoMatches(t *testing.T) {
	round := models.RoundResult{Matches: []models.MatchResult{
		{
			Player1: models.PlayerResult{PlayerName: "strat1", Outcome: models.OkOutcome(1)},
			Player2: models.PlayerResult{PlayerName: "strat2", Outcome: models.OkOutcome(2)},
		},
	}}

	pairs := pairsForPlayer(round, "alice")
	if len(pairs) != 0 {
		t.Fatalf("expected no pairs, got %d", len(pairs))
	}
}
