// internal/execution/compiler.go
// Compiler materializes a JavaProgram into a staging directory, invokes
// javac inside a sandbox with no network, and hands back a CompiledProgram
// with the sources stripped out.

package execution

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dcnick3/breakgt/internal/models"
	"github.com/dcnick3/breakgt/internal/sandbox"
)

const mountPath = "/app"

// Compiler compiles JavaPrograms inside openjdk sandboxes.
type Compiler struct {
	driver  *sandbox.Driver
	image   string
	timeout time.Duration
}

// NewCompiler constructs a Compiler against the given image and compile
// budget (design default 5s).
func NewCompiler(driver *sandbox.Driver, image string, timeout time.Duration) *Compiler {
	return &Compiler{driver: driver, image: image, timeout: timeout}
}

// Compile writes every class's source to a fresh staging directory, runs
// javac against it with the network disabled, deletes the sources on
// success, and returns the resulting CompiledProgram. On any failure the
// staging directory is removed before returning.
func (c *Compiler) Compile(ctx context.Context, program models.JavaProgram) (*CompiledProgram, error) {
	dir, err := os.MkdirTemp("", "breakgt-compile-*")
	if err != nil {
		return nil, fmt.Errorf("execution: create staging dir: %w", err)
	}

	sourcePaths, err := writeSources(dir, program)
	if err != nil {
		os.RemoveAll(dir)
		return nil, err
	}

	if err := c.runJavac(ctx, dir, program); err != nil {
		os.RemoveAll(dir)
		return nil, err
	}

	for _, p := range sourcePaths {
		if err := os.Remove(p); err != nil {
			os.RemoveAll(dir)
			return nil, fmt.Errorf("execution: delete source %s: %w", p, err)
		}
	}

	return &CompiledProgram{dir: dir}, nil
}

func writeSources(dir string, program models.JavaProgram) ([]string, error) {
	paths := make([]string, 0, len(program.Classes))
	for _, class := range program.Classes {
		rel := strings.ReplaceAll(class.FullName, ".", string(filepath.Separator)) + ".java"
		path := filepath.Join(dir, rel)

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("execution: mkdir for %s: %w", class.FullName, err)
		}
		if err := os.WriteFile(path, []byte(class.SourceCode), 0o644); err != nil {
			return nil, fmt.Errorf("execution: write source for %s: %w", class.FullName, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (c *Compiler) runJavac(ctx context.Context, dir string, program models.JavaProgram) error {
	cmd := []string{"javac", "-sourcepath", mountPath}
	for _, class := range program.Classes {
		rel := strings.ReplaceAll(class.FullName, ".", "/") + ".java"
		cmd = append(cmd, mountPath+"/"+rel)
	}

	res, err := c.driver.Run(ctx, sandbox.RunSpec{
		Image:       c.image,
		Cmd:         cmd,
		Mounts:      []sandbox.Mount{{HostPath: dir, ContainerPath: mountPath}},
		NetworkNone: true,
		Timeout:     c.timeout,
	})
	if err != nil {
		return err
	}
	if res.StatusCode != 0 {
		return &CompilationError{Stderr: res.Stderr}
	}
	return nil
}
