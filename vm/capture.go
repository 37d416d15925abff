package vm

// ClosedGroupMatch is an immutable capture tree node: the group it
// belongs to, the span it covers, and its children in the order their
// groups were closed (completion order), not pattern-lexical order.
type ClosedGroupMatch struct {
	GroupID    int
	Span       Span
	SubMatches []ClosedGroupMatch
}

// openFrame is a capture group still being matched.
type openFrame struct {
	groupID    int
	startInd   int
	subMatches []ClosedGroupMatch
}

func (f openFrame) clone() openFrame {
	return openFrame{
		groupID:    f.groupID,
		startInd:   f.startInd,
		subMatches: append([]ClosedGroupMatch(nil), f.subMatches...),
	}
}

// partialMatch is one execution state in the frontier: a cursor into the
// subject, a program counter, and the open capture stack.
type partialMatch struct {
	ind int
	pc  int

	openGroups []openFrame
	current    openFrame
}

func newPartialMatch(ind int) *partialMatch {
	return &partialMatch{current: openFrame{groupID: 0, startInd: ind}, ind: ind}
}

func (s *partialMatch) clone() *partialMatch {
	groups := make([]openFrame, len(s.openGroups))
	for i, f := range s.openGroups {
		groups[i] = f.clone()
	}
	return &partialMatch{
		ind:        s.ind,
		pc:         s.pc,
		openGroups: groups,
		current:    s.current.clone(),
	}
}

// startGroup pushes the current frame and opens a new one for groupID.
func (s *partialMatch) startGroup(groupID int) {
	s.openGroups = append(s.openGroups, s.current)
	s.current = openFrame{groupID: groupID, startInd: s.ind}
}

// endGroup closes the current frame, appending it as a child of its
// parent, and makes the parent the new current frame. Panics if there is
// no open group to close; this is an invariant violation (compiler bug),
// never a user-visible error.
func (s *partialMatch) endGroup() {
	closed := s.closeCurrent()
	n := len(s.openGroups)
	if n == 0 {
		panic("vm: end_group with empty open-group stack")
	}
	s.current = s.openGroups[n-1]
	s.openGroups = s.openGroups[:n-1]
	s.current.subMatches = append(s.current.subMatches, closed)
}

func (s *partialMatch) closeCurrent() ClosedGroupMatch {
	return ClosedGroupMatch{
		GroupID:    s.current.groupID,
		Span:       Span{Start: s.current.startInd, End: s.ind},
		SubMatches: append([]ClosedGroupMatch(nil), s.current.subMatches...),
	}
}

// finalize closes the outermost frame, producing the accepting match
// tree. openGroups is empty iff current.groupID == 0, so finalize is
// only ever called once the whole pattern's implicit group 0 is the
// current frame.
func (s *partialMatch) finalize() ClosedGroupMatch {
	if len(s.openGroups) != 0 {
		panic("vm: finalize with unclosed groups")
	}
	return s.closeCurrent()
}
