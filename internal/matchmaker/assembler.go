// internal/matchmaker/assembler.go
// Assembles a JavaProgram out of the embedded tournament fixture plus one or
// more submitted strategies, rewriting each submission's package declaration
// to land it in its own player_<id> subpackage.

package matchmaker

import (
	"embed"
	"fmt"
	"regexp"

	"github.com/dcnick3/breakgt/internal/models"
)

// Namespace is the root Java package every assembled program lives under.
const Namespace = "gametheory.assignment2"

//go:embed fixtures/Fixture.java fixtures/Player.java fixtures/strat1/Strat.java fixtures/strat2/Strat.java fixtures/stratmirror/Strat.java fixtures/stratrnd/Strat.java fixtures/stratrnd2/Strat.java
var fixtureFS embed.FS

var packageRegex = regexp.MustCompile(`^\s*package\s+([a-z][a-z0-9_]*(\.[a-z0-9_]+)*[0-9a-z_])\s*;`)

// patchPackage rewrites the leading package declaration of a Java source
// file to packageName. It replaces exactly the first match; code with no
// package declaration is returned unchanged.
func patchPackage(code, packageName string) string {
	return packageRegex.ReplaceAllString(code, fmt.Sprintf("package %s;", packageName))
}

func mustReadFixture(name string) string {
	b, err := fixtureFS.ReadFile("fixtures/" + name)
	if err != nil {
		panic(fmt.Sprintf("matchmaker: embedded fixture %s missing: %v", name, err))
	}
	return string(b)
}

// dummyStrats are the fixed opponents every solo validation run is matched
// against, keyed by player id.
var dummyStrats = map[string]string{
	"strat1":      mustReadFixture("strat1/Strat.java"),
	"strat2":      mustReadFixture("strat2/Strat.java"),
	"stratmirror": mustReadFixture("stratmirror/Strat.java"),
	"stratrnd":    mustReadFixture("stratrnd/Strat.java"),
	"stratrnd2":   mustReadFixture("stratrnd2/Strat.java"),
}

// MakeMatchProgram builds the full JavaProgram for a round: the fixture
// harness, the Player interface, and one patched class per entry in
// players (keyed by player id, valued by that player's raw submission).
func MakeMatchProgram(players map[string]string) models.JavaProgram {
	program := models.JavaProgram{}
	program.PushClass(Namespace+".Fixture", mustReadFixture("Fixture.java"))
	program.PushClass(Namespace+".Player", mustReadFixture("Player.java"))

	for id, code := range players {
		className := fmt.Sprintf("%s.player_%s.Strat", Namespace, id)
		packageName := className[:len(className)-len(".Strat")]
		program.PushClass(className, patchPackage(code, packageName))
	}

	return program
}

// MatchWithDummyStrats builds the program used to validate a single
// submission: the submitter's code plus the five fixed dummy opponents.
func MatchWithDummyStrats(userID, code string) models.JavaProgram {
	players := map[string]string{userID: code}
	for id, strat := range dummyStrats {
		players[id] = strat
	}
	return MakeMatchProgram(players)
}
