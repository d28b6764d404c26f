package matchmaker

import "testing"

func TestPlayerIDStripsPackageWrapper(t *testing.T) {
	got := playerID("gametheory.assignment2.player_alice.Strat")
	if got != "alice" {
		t.Fatalf("playerID = %q, want alice", got)
	}
}

func TestPlayerIDPassesThroughUnrecognizedNames(t *testing.T) {
	got := playerID("not.a.strat.class")
	if got != "not.a.strat.class" {
		t.Fatalf("playerID = %q, want passthrough", got)
	}
}

func TestExtractLastLineSkipsTrailingBlankLines(t *testing.T) {
	stdout := "some diagnostic\n{\"matches\":[]}\n\n\n"
	got, ok := ExtractLastLine(stdout)
	if !ok {
		t.Fatalf("expected a line to be found")
	}
	if got != `{"matches":[]}` {
		t.Fatalf("last line = %q", got)
	}
}

func TestExtractLastLineEmptyStdout(t *testing.T) {
	if _, ok := ExtractLastLine("   \n\n"); ok {
		t.Fatalf("expected no line found in blank stdout")
	}
}

func TestParseRoundResultRoundTrip(t *testing.T) {
	raw := `{"matches":[{"moves":10,"player1":{"player_name":"gametheory.assignment2.player_alice.Strat","score":3.5,"moves":[0,1,0]},"player2":{"player_name":"gametheory.assignment2.player_bob.Strat","error":"boom","score":0,"moves":[1]}}]}`

	result, err := ParseRoundResult(raw)
	if err != nil {
		t.Fatalf("ParseRoundResult: %v", err)
	}
	if len(result.Matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(result.Matches))
	}

	m := result.Matches[0]
	score, ok := m.Player1.Outcome.Score()
	if m.Player1.PlayerName != "alice" || m.Player1.Outcome.IsError() || !ok || score != 3.5 {
		t.Fatalf("unexpected player1: %+v", m.Player1)
	}
	errMsg, isErr := m.Player2.Outcome.Err()
	if m.Player2.PlayerName != "bob" || !m.Player2.Outcome.IsError() || !isErr || errMsg != "boom" {
		t.Fatalf("unexpected player2: %+v", m.Player2)
	}
}

func TestParseFixtureOutputNonZeroExit(t *testing.T) {
	_, err := ParseFixtureOutput(1, "", "panic")
	if err == nil {
		t.Fatalf("expected error on non-zero exit")
	}
}

func TestParseFixtureOutputUnparsableLastLine(t *testing.T) {
	_, err := ParseFixtureOutput(0, "not json at all", "")
	if err == nil {
		t.Fatalf("expected error on unparsable stdout")
	}
}
