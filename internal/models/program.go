// internal/models/program.go
// JavaProgram is the matchmaker's output: a set of named, compilable source
// units ready for the sandboxed compiler.

package models

// JavaClass is one compilable unit: a dotted fully-qualified name and its
// source text.
type JavaClass struct {
	FullName   string
	SourceCode string
}

// JavaProgram is an ordered set of JavaClass entries with unique FullNames.
type JavaProgram struct {
	Classes []JavaClass
}

// PushClass appends a class to the program.
func (p *JavaProgram) PushClass(fullName, sourceCode string) {
	p.Classes = append(p.Classes, JavaClass{FullName: fullName, SourceCode: sourceCode})
}
