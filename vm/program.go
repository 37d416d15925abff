package vm

import (
	"strconv"
	"strings"
)

// Span is a half-open [Start, End) range of rune offsets into a subject.
type Span struct {
	Start int
	End   int
}

// GroupDescription describes one capture group: its user-supplied name
// (empty for unnamed groups) and the span of pattern text it covers.
// Group 0 always exists and denotes the whole pattern; it is not present
// in a Program's own GroupDescription list, which is built by the
// compiler starting at group id 1.
type GroupDescription struct {
	Name        string
	PatternSpan Span
}

// Program is the ordered, fixed-length instruction stream produced by the
// compiler. Its length L is the accepting program counter: a
// PartialMatch with pc == len(program) has matched.
type Program []Instruction

// String renders a program listing, one instruction per line prefixed by
// its index, in the style of the debug-trace printer's listing header.
func (p Program) String() string {
	var b strings.Builder
	for i, inst := range p {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(formatListingLine(i, inst))
	}
	return b.String()
}

func formatListingLine(pc int, inst Instruction) string {
	s := strconv.Itoa(pc)
	for len(s) < 4 {
		s = " " + s
	}
	return s + ": " + inst.String()
}
