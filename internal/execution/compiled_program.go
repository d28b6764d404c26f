// internal/execution/compiled_program.go
// CompiledProgram is the scoped owner of a staging directory: compile
// produces one, and Release removes it unconditionally. This is the Go
// stand-in for destructor-time cleanup (see scoped-directory-ownership in
// the design notes) — callers must defer Release at the call site.

package execution

import "os"

// CompiledProgram owns a temporary directory containing compiled class
// files only. The directory is removed exactly once, on Release.
type CompiledProgram struct {
	dir string
}

// Path returns the directory the compiled classes live in.
func (c *CompiledProgram) Path() string {
	return c.dir
}

// Release removes the staging directory. Safe to call once; subsequent
// calls are no-ops.
func (c *CompiledProgram) Release() error {
	if c.dir == "" {
		return nil
	}
	dir := c.dir
	c.dir = ""
	return os.RemoveAll(dir)
}
