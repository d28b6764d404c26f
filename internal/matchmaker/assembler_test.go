package matchmaker

import (
	"strings"
	"testing"
)

func TestPatchPackageReplacesDeclaration(t *testing.T) {
	code := "package com.example.whatever;\n\npublic class Strat {}\n"
	patched := patchPackage(code, "gametheory.assignment2.player_alice")

	if strings.Contains(patched, "com.example.whatever") {
		t.Fatalf("old package survived patch: %q", patched)
	}
	if !strings.HasPrefix(patched, "package gametheory.assignment2.player_alice;") {
		t.Fatalf("unexpected patched header: %q", patched)
	}
}

func TestPatchPackageIsIdempotent(t *testing.T) {
	code := "package a.b.c;\n\npublic class Strat {}\n"
	once := patchPackage(code, "gametheory.assignment2.player_bob")
	twice := patchPackage(once, "gametheory.assignment2.player_bob")

	if once != twice {
		t.Fatalf("patch_package not idempotent: %q != %q", once, twice)
	}
}

func TestMakeMatchProgramIncludesFixtureAndPlayers(t *testing.T) {
	program := MakeMatchProgram(map[string]string{
		"alice": "package x;\npublic class Strat {}\n",
	})

	names := make(map[string]bool)
	for _, c := range program.Classes {
		names[c.FullName] = true
	}

	for _, want := range []string{
		Namespace + ".Fixture",
		Namespace + ".Player",
		Namespace + ".player_alice.Strat",
	} {
		if !names[want] {
			t.Fatalf("expected class %s in assembled program, got %v", want, names)
		}
	}
}

func TestMatchWithDummyStratsIncludesAllFiveOpponents(t *testing.T) {
	program := MatchWithDummyStrats("alice", "package x;\npublic class Strat {}\n")

	names := make(map[string]bool)
	for _, c := range program.Classes {
		names[c.FullName] = true
	}

	for _, id := range []string{"strat1", "strat2", "stratmirror", "stratrnd", "stratrnd2"} {
		want := Namespace + ".player_" + id + ".Strat"
		if !names[want] {
			t.Fatalf("expected dummy opponent %s, got %v", want, names)
		}
	}
	// fixture + player interface + submitter + 5 dummies
	if len(program.Classes) != 8 {
		t.Fatalf("expected 8 classes, got %d", len(program.Classes))
	}
}
