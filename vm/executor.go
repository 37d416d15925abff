package vm

import "github.com/vlinear/vrex/internal/visitset"

// ExecutorOptions configures an Executor beyond the core spec. The zero
// value (no step budget) matches the core semantics exactly.
type ExecutorOptions struct {
	// StepBudget bounds the number of instruction dispatches a single
	// Run performs. Zero means unbounded.
	StepBudget int
}

// DefaultExecutorOptions returns the zero-value options: no step budget.
func DefaultExecutorOptions() ExecutorOptions {
	return ExecutorOptions{}
}

// Validate reports whether the options are well-formed.
func (o ExecutorOptions) Validate() error {
	if o.StepBudget < 0 {
		return &OptionsError{Field: "StepBudget", Message: "must be >= 0"}
	}
	return nil
}

// OptionsError reports an invalid ExecutorOptions field.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "vm: invalid option " + e.Field + ": " + e.Message
}

// Tracer receives callbacks as an Executor runs, for debug-trace
// printing. A nil Tracer (the default) disables all tracing overhead
// beyond a nil check per step.
type Tracer interface {
	// Listing is called once, before the first step, with the program
	// being executed.
	Listing(program Program)
	// Queued is called whenever a state is newly enqueued.
	Queued(ind, pc int)
	// AlreadyVisited is called when a candidate continuation is skipped
	// because its (ind, pc) was already visited.
	AlreadyVisited(ind, pc int)
	// Step is called before dispatching the instruction at pc for state
	// ind, after popping it off the frontier.
	Step(ind, pc int, inst Instruction)
	// Finished is called once Run ends with a match or an exhausted
	// frontier, with the outcome. It is not called when Run returns
	// ErrStepBudgetExceeded.
	Finished(matched bool)
}

// Executor runs a Program against a subject string as a breadth-of-
// possibilities NFA simulation: a LIFO frontier of partialMatch states,
// deduplicated by (ind, pc) so that each pair is processed at most once.
type Executor struct {
	program Program
	subject []rune
	width   int // len(program) + 1, for visitset key encoding

	frontier []*partialMatch
	visited  *visitset.Set

	opts   ExecutorOptions
	tracer Tracer
	steps  int
}

// NewExecutor creates an Executor for program against subject.
func NewExecutor(program Program, subject string, opts ExecutorOptions) *Executor {
	runes := []rune(subject)
	width := len(program) + 1
	return &Executor{
		program: program,
		subject: runes,
		width:   width,
		visited: visitset.New((len(runes) + 1) * width),
		opts:    opts,
	}
}

// SetTracer installs a Tracer for this execution. Must be called before
// StartAt / Run.
func (e *Executor) SetTracer(t Tracer) { e.tracer = t }

// StartAt seeds the frontier with a fresh partialMatch anchored at ind.
func (e *Executor) StartAt(ind int) {
	if e.tracer != nil {
		e.tracer.Listing(e.program)
	}
	e.queueState(newPartialMatch(ind))
}

// queueState enqueues s unless (s.ind, s.pc) was already visited.
// Returns whether it was newly enqueued.
func (e *Executor) queueState(s *partialMatch) bool {
	key := visitset.Key(s.ind, s.pc, e.width)
	if e.visited.Contains(key) {
		return false
	}
	e.visited.Insert(key)
	e.frontier = append(e.frontier, s)
	if e.tracer != nil {
		e.tracer.Queued(s.ind, s.pc)
	}
	return true
}

// alreadyVisited tests membership of (ind+di, pc+dpc) without inserting.
func (e *Executor) alreadyVisited(s *partialMatch, di, dpc int) bool {
	visited := e.visited.Contains(visitset.Key(s.ind+di, s.pc+dpc, e.width))
	if visited && e.tracer != nil {
		e.tracer.AlreadyVisited(s.ind+di, s.pc+dpc)
	}
	return visited
}

// Run pops states from the frontier until one reaches the accepting
// program counter (len(program)) or the frontier is exhausted. It returns
// the resulting capture tree (nil if no match), the number of
// instructions dispatched, and a non-nil error only if the step budget
// was exceeded.
func (e *Executor) Run() (*ClosedGroupMatch, int, error) {
	L := len(e.program)
	for len(e.frontier) > 0 {
		s := e.frontier[len(e.frontier)-1]
		e.frontier = e.frontier[:len(e.frontier)-1]

		if s.pc == L {
			m := s.finalize()
			if e.tracer != nil {
				e.tracer.Finished(true)
			}
			return &m, e.steps, nil
		}

		if e.opts.StepBudget > 0 && e.steps >= e.opts.StepBudget {
			return nil, e.steps, ErrStepBudgetExceeded
		}

		inst := e.program[s.pc]
		if e.tracer != nil {
			e.tracer.Step(s.ind, s.pc, inst)
		}
		s.pc++
		e.steps++
		e.step(inst, s)
	}
	if e.tracer != nil {
		e.tracer.Finished(false)
	}
	return nil, e.steps, nil
}

// step dispatches one instruction against state s. s.pc has already been
// incremented past the instruction's own index, per the "pc advances
// before dispatch" convention, so Offset operands are relative to this
// already-incremented pc.
func (e *Executor) step(inst Instruction, s *partialMatch) {
	switch inst.Op {
	case OpAny:
		if s.ind < len(e.subject) {
			s.ind++
			e.queueState(s)
		}
	case OpChar:
		if s.ind < len(e.subject) && e.subject[s.ind] == inst.Char {
			s.ind++
			e.queueState(s)
		}
	case OpFilter:
		if s.ind < len(e.subject) && inst.Pred(e.subject[s.ind]) {
			s.ind++
			e.queueState(s)
		}
	case OpAssertStart:
		if s.ind == 0 {
			e.queueState(s)
		}
	case OpAssertEnd:
		if s.ind == len(e.subject) {
			e.queueState(s)
		}
	case OpJump:
		s.pc += inst.Offset
		e.queueState(s)
	case OpSplit:
		e.split(s, inst.Offset, false)
	case OpSplitAfter:
		e.split(s, inst.Offset, true)
	case OpStartGroup:
		if e.queueState(s) {
			s.startGroup(inst.GroupID)
		}
	case OpEndGroup:
		if e.queueState(s) {
			s.endGroup()
		}
	}
}

// split implements both split (preferJump=false) and split_after
// (preferJump=true). The preferred continuation is always enqueued
// second, so that the LIFO frontier explores it first; see DESIGN.md for
// the worked trace justifying which quantifier uses which preference.
func (e *Executor) split(s *partialMatch, offset int, preferJump bool) {
	if preferJump {
		if e.queueState(s) {
			if !e.alreadyVisited(s, 0, offset) {
				alt := s.clone()
				alt.pc += offset
				e.queueState(alt)
			}
		} else {
			s.pc += offset
			e.queueState(s)
		}
		return
	}

	s.pc += offset
	if e.queueState(s) {
		if !e.alreadyVisited(s, 0, -offset) {
			alt := s.clone()
			alt.pc -= offset
			e.queueState(alt)
		}
	} else {
		s.pc -= offset
		e.queueState(s)
	}
}
