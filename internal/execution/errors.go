// internal/execution/errors.go
// The error taxonomy surfaced by compile/run/parse, mirroring the design's
// CompilationError / ExecutionTimeout / FixtureFailure split.

package execution

import (
	"errors"
	"fmt"

	"github.com/dcnick3/breakgt/internal/sandbox"
)

// ErrExecutionTimeout is re-exported so callers need not import sandbox.
var ErrExecutionTimeout = sandbox.ErrExecutionTimeout

// CompilationError means the candidate program did not compile.
type CompilationError struct {
	Stderr string
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("compilation failed: %s", e.Stderr)
}

// FixtureFailure means the harness ran to a non-zero exit, produced no
// parseable output, or its last line failed to parse as JSON.
type FixtureFailure struct {
	StatusCode int64
	Stdout     string
	Stderr     string
	Inner      error // optional parse error
}

func (e *FixtureFailure) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("fixture failed (status %d): %v", e.StatusCode, e.Inner)
	}
	return fmt.Sprintf("fixture failed (status %d)", e.StatusCode)
}

func (e *FixtureFailure) Unwrap() error {
	return e.Inner
}

// AsCompilationError unwraps err into a *CompilationError if it is one.
func AsCompilationError(err error) (*CompilationError, bool) {
	var ce *CompilationError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// AsFixtureFailure unwraps err into a *FixtureFailure if it is one.
func AsFixtureFailure(err error) (*FixtureFailure, bool) {
	var ff *FixtureFailure
	if errors.As(err, &ff) {
		return ff, true
	}
	return nil, false
}
