// Package prefilter builds a fast-path accelerator for patterns whose
// compiled program is nothing but a flat alternation of fixed literals —
// e.g. "cat|dog|bird" — letting Pattern.Search skip subject positions
// where no alternative can possibly begin.
package prefilter

import (
	"github.com/coregx/ahocorasick"
	"github.com/vlinear/vrex/vm"
)

// Filter accelerates search over a literal-alternation program.
type Filter struct {
	automaton *ahocorasick.Automaton
}

// Build inspects program and, if it is structurally a flat alternation of
// literal runs (no assertions, quantifiers, or nested groups — every
// branch is pure vm.OpChar), returns a Filter over those literals. It
// returns nil if the program doesn't have that shape or has no literals
// at all; callers must treat a nil *Filter as "no prefilter available"
// and fall back to an unaccelerated search.
func Build(program vm.Program) *Filter {
	literals, ok := extractLiterals(program)
	if !ok || len(literals) == 0 {
		return nil
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern([]byte(string(lit)))
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil
	}
	return &Filter{automaton: automaton}
}

// extractLiterals decodes the alternation bytecode shape emitted by
// compiler.compileExpression for branches that are themselves pure
// literal runs: k-1 leading OpSplit instructions, followed by k branches
// each consisting solely of OpChar instructions optionally terminated by
// an OpJump (present on every branch but the last). This walks the
// instructions directly without needing to interpret split offsets at
// all.
func extractLiterals(program vm.Program) ([][]rune, bool) {
	i := 0
	splitCount := 0
	for i < len(program) && program[i].Op == vm.OpSplit {
		i++
		splitCount++
	}

	var literals [][]rune
	var current []rune
	for ; i < len(program); i++ {
		inst := program[i]
		switch inst.Op {
		case vm.OpChar:
			current = append(current, inst.Char)
		case vm.OpJump:
			if len(current) == 0 {
				return nil, false
			}
			literals = append(literals, current)
			current = nil
		default:
			return nil, false
		}
	}
	if len(current) == 0 {
		return nil, false
	}
	literals = append(literals, current)

	if splitCount == 0 {
		// A single literal with no alternation at all; still usable.
		return literals, len(literals) == 1
	}
	return literals, len(literals) == splitCount+1
}

// NextCandidate reports the start of the next occurrence, at or after
// from, of one of the filter's literal alternatives within haystack.
// Callers must only invoke this when all of haystack is ASCII, since the
// automaton operates on bytes while the VM indexes by rune; from and the
// returned start are byte offsets, which equal rune offsets only when no
// earlier byte is part of a multi-byte rune.
func (f *Filter) NextCandidate(haystack []byte, from int) (start int, ok bool) {
	if f == nil || from > len(haystack) {
		return 0, false
	}
	m := f.automaton.Find(haystack, from)
	if m == nil {
		return 0, false
	}
	return m.Start, true
}
