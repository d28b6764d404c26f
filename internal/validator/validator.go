// internal/validator/validator.go
// Validates a submitted strategy by matching it against the five dummy
// opponents and interpreting the resulting round, mirroring validate_code.

package validator

import (
	"context"
	"fmt"
	"strings"

	"github.com/dcnick3/breakgt/internal/execution"
	"github.com/dcnick3/breakgt/internal/matchmaker"
	"github.com/dcnick3/breakgt/internal/models"
)

// PlayerMatchPair is one match from the submitter's point of view: their
// own result and the opponent they played it against.
type PlayerMatchPair struct {
	Player   models.PlayerResult
	Opponent models.PlayerResult
}

// Result is the outcome of validating one submission.
type Result struct {
	Valid   bool
	Message string
	Matches []PlayerMatchPair // nil when validation failed before any match could be attributed
}

// Validate compiles and runs userID's code against the fixed dummy
// opponents and reports whether it passes.
func Validate(ctx context.Context, engine *matchmaker.Engine, userID, code string) (Result, error) {
	program := matchmaker.MatchWithDummyStrats(userID, code)

	round, err := engine.RunMatchProgram(ctx, program)
	if err != nil {
		if ce, ok := execution.AsCompilationError(err); ok {
			msg := "Compilation failed:\n"
			if strings.Contains(ce.Stderr, "should be declared in a file") {
				msg += "NOTE: your strategy class should be called Strat?\n"
			}
			msg += "\n" + ce.Stderr
			return Result{Valid: false, Message: msg}, nil
		}
		if ff, ok := execution.AsFixtureFailure(err); ok {
			msg := fmt.Sprintf(
				"Testing fixture failed\nSTDOUT:\n%s\n\nSTDERR:\n%s\n\nAdditional error:\n%v",
				ff.Stdout, ff.Stderr, ff.Inner,
			)
			return Result{Valid: false, Message: msg}, nil
		}
		return Result{}, err
	}

	pairs := pairsForPlayer(round, userID)

	if len(pairs) == 0 {
		return Result{
			Valid: false,
			Message: "The validation compilation & match succeeded, but provided strategy was not found in the results\n" +
				"This usually means that your class does not implement gametheory.assignment2.Player interface",
		}, nil
	}

	var failing []PlayerMatchPair
	for _, p := range pairs {
		if p.Player.Outcome.IsError() {
			failing = append(failing, p)
		}
	}

	if len(failing) > 0 {
		var sb strings.Builder
		sb.WriteString("Some validation matches ended with errors:\n")
		for _, p := range failing {
			errMsg, _ := p.Player.Outcome.Err()
			fmt.Fprintf(&sb, "In match vs %s the error is '%s'\n", p.Opponent.PlayerName, errMsg)
			fmt.Fprintf(&sb, "player   result: %+v\n", p.Player)
			fmt.Fprintf(&sb, "opponent result: %+v\n\n", p.Opponent)
		}
		return Result{Valid: false, Message: sb.String(), Matches: pairs}, nil
	}

	return Result{Valid: true, Message: "You pass!", Matches: pairs}, nil
}

// pairsForPlayer expands every match involving userID into a (self,
// opponent) pair, in both match orderings.
func pairsForPlayer(round models.RoundResult, userID string) []PlayerMatchPair {
	var pairs []PlayerMatchPair
	for _, m := range round.Matches {
		if m.Player1.PlayerName == userID {
			pairs = append(pairs, PlayerMatchPair{Player: m.Player1, Opponent: m.Player2})
		}
		if m.Player2.PlayerName == userID {
			pairs = append(pairs, PlayerMatchPair{Player: m.Player2, Opponent: m.Player1})
		}
	}
	return pairs
}
