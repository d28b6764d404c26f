package execution

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dcnick3/breakgt/internal/models"
)

func TestWriteSourcesNestedPackage(t *testing.T) {
	dir := t.TempDir()

	program := models.JavaProgram{}
	program.PushClass("gametheory.assignment2.player_alice.Strat", "package gametheory.assignment2.player_alice;\npublic class Strat {}\n")

	paths, err := writeSources(dir, program)
	if err != nil {
		t.Fatalf("writeSources: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("expected 1 source path, got %d", len(paths))
	}

	want := filepath.Join(dir, "gametheory", "assignment2", "player_alice", "Strat.java")
	if paths[0] != want {
		t.Fatalf("path = %q, want %q", paths[0], want)
	}

	if _, err := os.Stat(want); err != nil {
		t.Fatalf("expected source file to exist: %v", err)
	}
}

func TestCompiledProgramReleaseRemovesDir(t *testing.T) {
	dir, err := os.MkdirTemp("", "breakgt-compile-test-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	cp := &CompiledProgram{dir: dir}

	if err := cp.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("expected staging dir to be removed, stat err = %v", err)
	}

	// Release is idempotent.
	if err := cp.Release(); err != nil {
		t.Fatalf("second Release: %v", err)
	}
}
