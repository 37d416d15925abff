// Package vrex is a regular-expression library built around a
// relocation-free bytecode compiler and a linear-time virtual-machine
// executor. Unlike classical backtracking engines, it runs patterns as a
// breadth-of-possibilities NFA simulation with per-(position,
// program-counter) deduplication, so pathological patterns such as
// (a+)+b applied to long runs of 'a' do not exhibit exponential blow-up.
//
// Supported syntax: literal characters, ".", "^", "$", the character
// escapes \d \D \s \S \w \W \n \t \r \xHH, alternation "|", the
// quantifiers "?" "+" "*" and their lazy variants "??" "+?" "*?",
// capturing groups "(...)", non-capturing groups "(?:...)", and named
// groups "(?P<name>...)".
//
// Not supported (reported as a compile-time error, never silently
// ignored): character classes "[...]", bounded quantifiers "{m,n}",
// lookaround "(?=...)"/"(?!...)", backreferences "\1".."\9",
// replacement/substitution, and multiline/case-insensitive flags.
//
//	p, err := vrex.Compile(`(?P<year>\d+)-(?P<month>\d+)`)
//	if err != nil {
//		// err is a *compiler.SyntaxError or *compiler.UnsupportedError
//	}
//	m, _ := p.Match("2024-07")
//	fmt.Println(m.Text(), m.Get("year").Text())
package vrex

import (
	"github.com/vlinear/vrex/compiler"
	"github.com/vlinear/vrex/prefilter"
	"github.com/vlinear/vrex/vm"
)

// Pattern is an immutable compiled regular expression. It is safe for
// concurrent use by multiple goroutines: each match call builds its own
// vm.Executor and capture state.
type Pattern struct {
	source    string
	program   vm.Program
	groups    []vm.GroupDescription
	prefilter *prefilter.Filter
}

// Compile parses pattern into a Pattern. The returned error is either a
// *compiler.SyntaxError (malformed pattern) or a *compiler.UnsupportedError
// (syntactically valid but unimplemented feature); callers that want to
// distinguish the two can use errors.As.
func Compile(pattern string) (*Pattern, error) {
	program, groups, err := compiler.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Pattern{
		source:    pattern,
		program:   program,
		groups:    groups,
		prefilter: prefilter.Build(program),
	}, nil
}

// MustCompile is like Compile but panics on error; intended for patterns
// known at compile time to be valid, e.g. package-level vars.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the pattern's original source text.
func (p *Pattern) String() string { return p.source }
