package regexy

import (
	"fmt"

	"github.com/nitely/regexy/internal/syntax"
)

// CompileError reports a malformed pattern: unbalanced brackets/parens/
// braces, an empty set, a bad repetition range, a trailing escape, or an
// unsupported group tag (spec.md §6-§7). It is the only error kind this
// package exposes; the simulator's internal "no accepting state" signal
// never escapes package vm.
type CompileError struct {
	Pattern string
	Offset  int
	reason  error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("regexy: compile %q: %v", e.Pattern, e.reason)
}

func (e *CompileError) Unwrap() error {
	return e.reason
}

func wrapCompileError(pattern string, err error) *CompileError {
	ce := &CompileError{Pattern: pattern, reason: err}
	if pe, ok := err.(*syntax.ParseError); ok {
		ce.Offset = pe.Pos
	}
	return ce
}
