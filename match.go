package vrex

import "github.com/vlinear/vrex/vm"

// Match is the result of a successful match or search: a tree of capture
// groups mirroring the pattern's group nesting, plus the subject text the
// group spans index into. The root Match always has GroupID 0 and no
// Name; it spans exactly what the pattern consumed.
type Match struct {
	subject []rune
	groups  []vm.GroupDescription

	// GroupID is the 1-based index of the capturing group this node
	// represents in source order, or 0 for the whole-match root.
	GroupID int
	// Span is the [Start, End) range, in runes, this node covers.
	Span vm.Span
	// Children holds nested capture groups in the order their matches
	// completed, which is not necessarily their order in the pattern
	// text (a group inside a "*" loop may close several times, and
	// alternation branches close in whichever order they ran). Get and
	// GetAll search this subtree; m itself is never a candidate.
	Children []*Match
}

func newMatch(subject []rune, groups []vm.GroupDescription, node vm.ClosedGroupMatch) *Match {
	m := &Match{
		subject:  subject,
		groups:   groups,
		GroupID:  node.GroupID,
		Span:     node.Span,
		Children: make([]*Match, len(node.SubMatches)),
	}
	for i, child := range node.SubMatches {
		m.Children[i] = newMatch(subject, groups, child)
	}
	return m
}

// Text returns the substring of the subject this node covers.
func (m *Match) Text() string {
	return string(m.subject[m.Span.Start:m.Span.End])
}

// Name returns the group's name as given by "(?P<name>...)", or "" for
// unnamed groups and for the whole-match root.
func (m *Match) Name() string {
	if m.GroupID <= 0 || m.GroupID > len(m.groups) {
		return ""
	}
	return m.groups[m.GroupID-1].Name
}

// Get performs a depth-first search of m's children for the first node
// matching key, and returns it, or nil if none matches. key may be an
// int (GroupID), a string (group Name), or a vm.GroupDescription
// (matched by Name).
func (m *Match) Get(key any) *Match {
	predicate := lookupPredicate(key)
	for _, c := range m.Children {
		if found := c.firstMatching(predicate); found != nil {
			return found
		}
	}
	return nil
}

// GetAll returns every descendant of m matching key, in depth-first,
// pre-order traversal order. See Get for accepted key types.
func (m *Match) GetAll(key any) []*Match {
	predicate := lookupPredicate(key)
	var out []*Match
	for _, c := range m.Children {
		c.walk(func(n *Match) {
			if predicate(n) {
				out = append(out, n)
			}
		})
	}
	return out
}

func lookupPredicate(key any) func(*Match) bool {
	switch k := key.(type) {
	case int:
		return func(n *Match) bool { return n.GroupID == k }
	case string:
		return func(n *Match) bool { return n.Name() == k }
	case vm.GroupDescription:
		return func(n *Match) bool { return n.Name() == k.Name }
	default:
		return func(*Match) bool { return false }
	}
}

func (m *Match) firstMatching(predicate func(*Match) bool) *Match {
	if predicate(m) {
		return m
	}
	for _, c := range m.Children {
		if found := c.firstMatching(predicate); found != nil {
			return found
		}
	}
	return nil
}

func (m *Match) walk(visit func(*Match)) {
	visit(m)
	for _, c := range m.Children {
		c.walk(visit)
	}
}
