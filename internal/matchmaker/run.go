// internal/matchmaker/run.go
// Ties the compiler and runner together to take an assembled JavaProgram
// from source to parsed RoundResult.

package matchmaker

import (
	"context"
	"errors"
	"fmt"

	"github.com/dcnick3/breakgt/internal/execution"
	"github.com/dcnick3/breakgt/internal/models"
)

// Engine compiles and runs assembled match programs.
type Engine struct {
	compiler *execution.Compiler
	runner   *execution.Runner
}

// NewEngine constructs an Engine from a Compiler and Runner.
func NewEngine(compiler *execution.Compiler, runner *execution.Runner) *Engine {
	return &Engine{compiler: compiler, runner: runner}
}

// RunMatchProgram compiles program, runs the fixture entry point, and
// parses the resulting RoundResult. The compiled program's staging
// directory is always released before returning.
func (e *Engine) RunMatchProgram(ctx context.Context, program models.JavaProgram) (models.RoundResult, error) {
	compiled, err := e.compiler.Compile(ctx, program)
	if err != nil {
		if errors.Is(err, execution.ErrExecutionTimeout) {
			return models.RoundResult{}, &execution.FixtureFailure{Inner: err}
		}
		return models.RoundResult{}, err
	}
	defer compiled.Release()

	res, err := e.runner.RunClass(ctx, compiled, Namespace+".Fixture")
	if err != nil {
		if errors.Is(err, execution.ErrExecutionTimeout) {
			return models.RoundResult{}, &execution.FixtureFailure{Inner: err}
		}
		return models.RoundResult{}, fmt.Errorf("matchmaker: run fixture: %w", err)
	}

	return ParseFixtureOutput(res.StatusCode, res.Stdout, res.Stderr)
}
