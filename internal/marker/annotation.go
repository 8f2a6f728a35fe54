package marker

import "fmt"

// Annotation is one invariant declaration parsed out of a source comment.
// Immutable once produced by the parser.
type Annotation struct {
	// Name is the identifier from the tag header; may be empty.
	Name string
	// File is the repository-relative path of the file containing the tag.
	File string
	// Line is the 1-based line number of the tag's opening line.
	Line int
	// Instruction is the free-text body with tag and comment syntax stripped.
	Instruction string
	// Scope lists the repository-relative paths this annotation cares about.
	// Empty means the annotation is always relevant.
	Scope []string
}

// Location returns the annotation's source position as "file:line".
func (a Annotation) Location() string {
	return fmt.Sprintf("%s:%d", a.File, a.Line)
}
