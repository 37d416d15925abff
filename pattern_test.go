package vrex

import (
	"strings"
	"testing"
)

func TestMatchWholeSubject(t *testing.T) {
	p := MustCompile(`a+b`)
	m, err := p.Match("aaab")
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if m == nil {
		t.Fatal("expected a match")
	}
	if m.Text() != "aaab" {
		t.Errorf("Text() = %q, want %q", m.Text(), "aaab")
	}
}

func TestMatchDoesNotRequireWholeSubject(t *testing.T) {
	p := MustCompile(`a+`)
	m, err := p.Match("aaab")
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if m == nil || m.Text() != "aaa" {
		t.Fatalf("Match = %v, want \"aaa\"", m)
	}
}

func TestMatchAtDoesNotRequireWholeSubject(t *testing.T) {
	p := MustCompile(`a+`)
	m, err := p.MatchAt("aaab", 0)
	if err != nil {
		t.Fatalf("MatchAt error: %v", err)
	}
	if m == nil || m.Text() != "aaa" {
		t.Fatalf("MatchAt = %v, want \"aaa\"", m)
	}
}

func TestSearchFindsFirstOccurrence(t *testing.T) {
	p := MustCompile(`\d+`)
	m, err := p.Search("abc 123 def 456")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if m == nil || m.Text() != "123" {
		t.Fatalf("Search = %v, want \"123\"", m)
	}
}

func TestSearchNoMatch(t *testing.T) {
	p := MustCompile(`\d+`)
	m, err := p.Search("no digits here")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if m != nil {
		t.Fatalf("expected no match, got %q", m.Text())
	}
}

func TestFindAllNonOverlapping(t *testing.T) {
	p := MustCompile(`\d+`)
	matches := p.FindAll("a1 b22 c333")
	want := []string{"1", "22", "333"}
	if len(matches) != len(want) {
		t.Fatalf("FindAll returned %d matches, want %d", len(matches), len(want))
	}
	for i, m := range matches {
		if m.Text() != want[i] {
			t.Errorf("matches[%d] = %q, want %q", i, m.Text(), want[i])
		}
	}
}

func TestFindAllEqualsFindIterCollected(t *testing.T) {
	p := MustCompile(`\w+`)
	all := p.FindAll("foo bar baz")
	var iterated []*Match
	for m := range p.FindIter("foo bar baz") {
		iterated = append(iterated, m)
	}
	if len(all) != len(iterated) {
		t.Fatalf("FindAll returned %d, FindIter yielded %d", len(all), len(iterated))
	}
	for i := range all {
		if all[i].Text() != iterated[i].Text() {
			t.Errorf("mismatch at %d: FindAll=%q FindIter=%q", i, all[i].Text(), iterated[i].Text())
		}
	}
}

func TestFindIterAdvancesOnZeroWidthMatch(t *testing.T) {
	p := MustCompile(`a*`)
	count := 0
	for range p.FindIter("aaa") {
		count++
		if count > 10 {
			t.Fatal("FindIter did not terminate on zero-width-capable pattern")
		}
	}
	if count == 0 {
		t.Fatal("expected at least one match")
	}
}

func TestSearchUsesLiteralAlternationPrefilter(t *testing.T) {
	p := MustCompile(`cat|dog|bird`)
	haystack := strings.Repeat("x", 1000) + "dog" + strings.Repeat("y", 1000)
	m, err := p.Search(haystack)
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if m == nil || m.Text() != "dog" {
		t.Fatalf("Search = %v, want \"dog\"", m)
	}
	if m.Span.Start != 1000 {
		t.Errorf("Span.Start = %d, want 1000", m.Span.Start)
	}
}

func TestCaptureGroupsViaFacade(t *testing.T) {
	p := MustCompile(`(?P<year>\d+)-(?P<month>\d+)`)
	m, err := p.Match("2024-07")
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if m == nil {
		t.Fatal("expected a match")
	}
	year := m.Get("year")
	month := m.Get("month")
	if year == nil || year.Text() != "2024" {
		t.Fatalf("year = %v, want \"2024\"", year)
	}
	if month == nil || month.Text() != "07" {
		t.Fatalf("month = %v, want \"07\"", month)
	}
}

func TestPathologicalPatternViaFacade(t *testing.T) {
	p := MustCompile(`(a+)+b`)
	subject := strings.Repeat("a", 30) + "c"
	m, err := p.Search(subject)
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if m != nil {
		t.Fatalf("expected no match, got %q", m.Text())
	}
}
