// Package vm implements the bytecode instruction set and executor: a
// relocation-free linear program and the LIFO-frontier NFA simulation
// that runs it with per-(position, program-counter) visited-state
// deduplication.
package vm

import "fmt"

// Opcode is the tag of a closed instruction variant. Dispatch over Opcode
// is a switch in Executor.step, not a table of closures. OpFilter's
// predicate is still a function value, so Instructions are not comparable
// with == and a Program holding an OpFilter cannot be serialized as is.
type Opcode uint8

const (
	// OpAny matches any single rune.
	OpAny Opcode = iota
	// OpChar matches one specific rune.
	OpChar
	// OpFilter matches a rune accepted by a predicate.
	OpFilter
	// OpAssertStart succeeds only at the start of the subject.
	OpAssertStart
	// OpAssertEnd succeeds only at the end of the subject.
	OpAssertEnd
	// OpJump unconditionally moves the program counter by Offset.
	OpJump
	// OpSplit forks into two continuations, preferring the fallthrough
	// (no-offset) branch.
	OpSplit
	// OpSplitAfter forks into two continuations, preferring the offset
	// branch.
	OpSplitAfter
	// OpStartGroup opens a new capture frame.
	OpStartGroup
	// OpEndGroup closes the current capture frame.
	OpEndGroup
)

func (op Opcode) String() string {
	switch op {
	case OpAny:
		return "any"
	case OpChar:
		return "char"
	case OpFilter:
		return "filter"
	case OpAssertStart:
		return "assert_start"
	case OpAssertEnd:
		return "assert_end"
	case OpJump:
		return "jump"
	case OpSplit:
		return "split"
	case OpSplitAfter:
		return "split_after"
	case OpStartGroup:
		return "start_group"
	case OpEndGroup:
		return "end_group"
	default:
		return fmt.Sprintf("opcode(%d)", uint8(op))
	}
}

// Predicate is the condition carried by an OpFilter instruction.
type Predicate func(r rune) bool

// Instruction is one entry of a Program. Only the fields relevant to Op
// are meaningful; it carries immediate operands exclusively (no absolute
// addresses), so Programs are relocation-free under concatenation.
type Instruction struct {
	Op Opcode

	// Char is the operand of OpChar.
	Char rune
	// Pred and PredDesc are the operands of OpFilter; PredDesc is a
	// human-readable label such as `\d`, used by the trace printer.
	Pred     Predicate
	PredDesc string
	// Offset is the signed delta, relative to the post-increment program
	// counter, used by OpJump, OpSplit and OpSplitAfter.
	Offset int
	// GroupID is the operand of OpStartGroup.
	GroupID int
}

// String renders an instruction the way the trace printer's program
// listing does: opcode name followed by its operand, if any.
func (inst Instruction) String() string {
	switch inst.Op {
	case OpChar:
		return fmt.Sprintf("char %q", inst.Char)
	case OpFilter:
		if inst.PredDesc != "" {
			return fmt.Sprintf("filter %s", inst.PredDesc)
		}
		return "filter"
	case OpJump, OpSplit, OpSplitAfter:
		return fmt.Sprintf("%s %+d", inst.Op, inst.Offset)
	case OpStartGroup:
		return fmt.Sprintf("start_group %d", inst.GroupID)
	default:
		return inst.Op.String()
	}
}
