// internal/execution/runner.go
// Runner launches a CompiledProgram's entry point inside a sandbox with a
// tighter timeout than the compiler and no network restriction.

package execution

import (
	"context"
	"time"

	"github.com/dcnick3/breakgt/internal/sandbox"
)

// Runner executes compiled programs inside openjdk sandboxes.
type Runner struct {
	driver  *sandbox.Driver
	image   string
	timeout time.Duration
}

// NewRunner constructs a Runner against the given image and run budget
// (design default 1s).
func NewRunner(driver *sandbox.Driver, image string, timeout time.Duration) *Runner {
	return &Runner{driver: driver, image: image, timeout: timeout}
}

// RunClass launches mainClass from the compiled program's classpath and
// returns its raw stdout/stderr. It does not interpret stdout; the parser
// does that. It never retries.
func (r *Runner) RunClass(ctx context.Context, program *CompiledProgram, mainClass string) (sandbox.Result, error) {
	return r.driver.Run(ctx, sandbox.RunSpec{
		Image:   r.image,
		Cmd:     []string{"java", "-cp", mountPath, mainClass},
		Mounts:  []sandbox.Mount{{HostPath: program.Path(), ContainerPath: mountPath}},
		Timeout: r.timeout,
	})
}
