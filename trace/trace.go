// Package trace provides a debug-trace printer for the executor: a
// program listing followed by one line per step, in the style of the
// source library's debugger.
package trace

import (
	"fmt"
	"io"

	"github.com/vlinear/vrex/vm"
)

// Printer implements vm.Tracer, writing a listing and a step-by-step
// trace to W.
type Printer struct {
	W io.Writer
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer { return &Printer{W: w} }

var _ vm.Tracer = (*Printer)(nil)

// Listing prints the program once, before execution starts.
func (p *Printer) Listing(program vm.Program) {
	fmt.Fprintln(p.W, "Program:")
	fmt.Fprintln(p.W, program.String())
	fmt.Fprintln(p.W, "---")
}

// Queued prints a notice that a state was newly enqueued.
func (p *Printer) Queued(ind, pc int) {
	fmt.Fprintf(p.W, "      Queued:  ind=%d pc=%d\n", ind, pc)
}

// AlreadyVisited prints a notice that a candidate continuation was
// dropped because it was already visited.
func (p *Printer) AlreadyVisited(ind, pc int) {
	fmt.Fprintf(p.W, "      Already visited: ind=%d pc=%d\n", ind, pc)
}

// Step prints one line per instruction dispatched.
func (p *Printer) Step(ind, pc int, inst vm.Instruction) {
	fmt.Fprintf(p.W, "%4d: %-27s ind=%-4d\n", pc, inst.String(), ind)
}

// Finished prints the run's outcome.
func (p *Printer) Finished(matched bool) {
	if matched {
		fmt.Fprintln(p.W, "--- matched")
	} else {
		fmt.Fprintln(p.W, "--- no match")
	}
}
