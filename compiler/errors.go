// Package compiler implements the recursive-descent parser from pattern
// syntax to a vm.Program: the compile-time half of the engine. Execution
// never reports a pattern error; every error this package reports happens
// before the Program exists.
package compiler

import (
	"errors"
	"fmt"
)

// ErrSyntax is the sentinel wrapped by every SyntaxError.
var ErrSyntax = errors.New("compiler: syntax error")

// ErrUnsupported is the sentinel wrapped by every UnsupportedError.
var ErrUnsupported = errors.New("compiler: unsupported feature")

// SyntaxError reports a malformed pattern: mismatched parentheses, a
// quantifier with no preceding atom, an unescaped ']', an empty group, an
// unrecognized escape, a truncated or invalid \x, or an unknown group
// modifier. Position is the 1-based rune offset within the pattern text.
type SyntaxError struct {
	Position int
	Reason   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("regexp syntax error at position %d: %s", e.Position, e.Reason)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// UnsupportedError reports a syntactically recognized but unimplemented
// feature: character classes, bounded quantifiers, lookaround, or
// backreferences. Distinct from SyntaxError so callers can route
// fallback logic differently for "never valid" versus "not yet".
type UnsupportedError struct {
	Position int
	Feature  string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("regexp feature not supported at position %d: %s", e.Position, e.Feature)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }
