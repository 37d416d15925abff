package vrex

import (
	"iter"

	"github.com/vlinear/vrex/prefilter"
	"github.com/vlinear/vrex/trace"
	"github.com/vlinear/vrex/vm"
)

// Match anchors the pattern at the start of subject. It does not require
// the pattern to consume the whole subject; the returned Match's Span may
// end before len(subject) if that's as far as the pattern reaches. It
// returns (nil, nil) if the pattern doesn't match at position 0, and a
// non-nil error only if an ExecutorOptions-level limit (e.g. a step
// budget) was exceeded.
func (p *Pattern) Match(subject string) (*Match, error) {
	return p.MatchAt(subject, 0)
}

// MatchAt anchors the pattern at rune offset start within subject,
// without requiring it to reach the subject's end. start must be in
// [0, len([]rune(subject))]; any other value reports no match.
func (p *Pattern) MatchAt(subject string, start int) (*Match, error) {
	runes := []rune(subject)
	if start < 0 || start > len(runes) {
		return nil, nil
	}
	node, err := p.runAt(subject, start)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, nil
	}
	return newMatch(runes, p.groups, *node), nil
}

// Search scans subject from its beginning for the first position at
// which the pattern matches, returning nil if there is none.
func (p *Pattern) Search(subject string) (*Match, error) {
	return p.SearchIn(subject, 0, len([]rune(subject)))
}

// SearchIn tries each start position from lo through hi inclusive, in
// increasing order, and returns the first match found; the match itself
// may extend past hi. Positions are rune offsets, not
// byte offsets. If the compiled pattern reduces to a flat literal
// alternation and subject is pure ASCII, an Aho-Corasick prefilter is
// used to skip positions no branch can begin at.
func (p *Pattern) SearchIn(subject string, lo, hi int) (*Match, error) {
	runes := []rune(subject)
	if hi > len(runes) {
		hi = len(runes)
	}
	if lo < 0 {
		lo = 0
	}
	if lo > hi {
		return nil, nil
	}

	if p.prefilter != nil && prefilter.IsASCIIString(subject) {
		return p.searchWithPrefilter(subject, runes, lo, hi)
	}

	for start := lo; start <= hi; start++ {
		node, err := p.runAt(subject, start)
		if err != nil {
			return nil, err
		}
		if node != nil {
			return newMatch(runes, p.groups, *node), nil
		}
	}
	return nil, nil
}

func (p *Pattern) searchWithPrefilter(subject string, runes []rune, lo, hi int) (*Match, error) {
	bytes := []byte(subject)
	from := lo
	for from <= hi {
		start, ok := p.prefilter.NextCandidate(bytes, from)
		if !ok || start > hi {
			return nil, nil
		}
		node, err := p.runAt(subject, start)
		if err != nil {
			return nil, err
		}
		if node != nil {
			return newMatch(runes, p.groups, *node), nil
		}
		from = start + 1
	}
	return nil, nil
}

// FindIter lazily yields every non-overlapping match of the pattern in
// subject, scanning left to right. The next scan resumes at the end of
// the previous match, except after a zero-width match, where it resumes
// one rune later so the scan always makes progress.
func (p *Pattern) FindIter(subject string) iter.Seq[*Match] {
	return func(yield func(*Match) bool) {
		n := len([]rune(subject))
		for pos := 0; pos <= n; {
			m, err := p.SearchIn(subject, pos, n)
			if err != nil || m == nil {
				return
			}
			if !yield(m) {
				return
			}
			if m.Span.End > m.Span.Start {
				pos = m.Span.End
			} else {
				pos = m.Span.Start + 1
			}
		}
	}
}

// FindAll collects every match FindIter would yield into a slice.
func (p *Pattern) FindAll(subject string) []*Match {
	var out []*Match
	for m := range p.FindIter(subject) {
		out = append(out, m)
	}
	return out
}

// MatchTraced behaves like Match but writes a step-by-step execution
// trace to the given trace.Printer as it runs, for debugging patterns
// that behave unexpectedly.
func (p *Pattern) MatchTraced(subject string, printer *trace.Printer) (*Match, error) {
	runes := []rune(subject)
	exec := vm.NewExecutor(p.program, subject, vm.DefaultExecutorOptions())
	exec.SetTracer(printer)
	exec.StartAt(0)
	node, _, err := exec.Run()
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, nil
	}
	return newMatch(runes, p.groups, *node), nil
}

func (p *Pattern) runAt(subject string, start int) (*vm.ClosedGroupMatch, error) {
	exec := vm.NewExecutor(p.program, subject, vm.DefaultExecutorOptions())
	exec.StartAt(start)
	node, _, err := exec.Run()
	if err != nil {
		return nil, err
	}
	return node, nil
}
