// Package fixture is a deliberately defective procedure used as input for
// static analysers, linters and debuggers.
//
// The procedure runs these steps in order:
//
//	A  declare a value that is never assigned
//	B  divide 10 by a zero divisor
//	C  print "Iteration <i>" for i in 0..41
//	D  assign a value that is never read
//	E  print "This will run forever!" under an always-true guard, once
//	F  return success
//
// In Literal mode step B raises the Go runtime panic
// "integer divide by zero" and nothing is ever printed. Demonstration mode
// substitutes a divisor of 1 so that C through F run.
package fixture

import (
	"fmt"
	"io"
	"strings"

	"github.com/sunfmin/go-defect-fixture/pkg/logger"
	"github.com/sunfmin/go-defect-fixture/pkg/types"
)

const foreverLine = "This will run forever!"

// Package scope lets both stand-ins exist without a single read. Go has no
// unassigned state, so the zero value of uninitializedValue stands in for it.
var (
	uninitializedValue int
	unusedValue        int
)

// Step is one stage of the procedure
type Step struct {
	Name   string
	Defect types.DefectKind // empty when the step carries no planted defect
	run    func(w io.Writer, mode Mode) error
}

// Steps returns the procedure's steps in execution order. Step F is the
// successful return of RunSteps itself.
func Steps() []Step {
	return []Step{
		{Name: "declare-uninitialized", Defect: types.UninitializedReadRisk, run: declareUninitialized},
		{Name: "divide-by-zero", Defect: types.DivisionByZeroFault, run: divideByZero},
		{Name: "counted-print-loop", Defect: types.MagicNumberInfo, run: printIterations},
		{Name: "dead-store", Defect: types.DeadStoreWarning, run: deadStore},
		{Name: "misleading-loop", Defect: types.MisleadingControlFlowWarning, run: runForeverOnce},
	}
}

// Run executes the whole procedure, writing its output to w
func Run(w io.Writer, mode Mode) error {
	return RunSteps(w, mode, Steps())
}

// RunSteps executes the given steps in order. It stops at the first write
// error. A division fault is a runtime panic and is not recovered here.
func RunSteps(w io.Writer, mode Mode, steps []Step) error {
	logger.Debug("Running fixture", "mode", mode, "steps", len(steps))

	for _, s := range steps {
		logger.Debug("Entering step", "step", s.Name, "defect", s.Defect)
		if err := s.run(w, mode); err != nil {
			return fmt.Errorf("step %s: %w", s.Name, err)
		}
	}

	logger.Debug("Fixture completed", "mode", mode)
	return nil
}

// ExpectedOutput returns exactly what a run in the given mode writes.
// Literal runs abort before the first write.
func ExpectedOutput(mode Mode) string {
	if mode == Literal {
		return ""
	}

	var b strings.Builder
	_ = Run(&b, mode) // strings.Builder never fails a write
	return b.String()
}

// declareUninitialized has no body: the declaration is at package scope and
// nothing ever reads or writes it.
func declareUninitialized(w io.Writer, mode Mode) error {
	return nil
}

func divideByZero(w io.Writer, mode Mode) error {
	zeroDivisor := 0
	if mode == Demonstration {
		zeroDivisor = demonstrationDivisor
	}

	divisionResult := 10 / zeroDivisor
	logger.Debug("Division survived", "divisor", zeroDivisor, "result", divisionResult)
	return nil
}

func printIterations(w io.Writer, mode Mode) error {
	for i := 0; i < 42; i++ {
		if _, err := fmt.Fprintf(w, "Iteration %d\n", i); err != nil {
			return fmt.Errorf("write iteration %d: %w", i, err)
		}
	}
	return nil
}

func deadStore(w io.Writer, mode Mode) error {
	unusedValue = 100
	return nil
}

// runForeverOnce keeps the always-true guard but not the loop: the body
// runs exactly once.
func runForeverOnce(w io.Writer, mode Mode) error {
	const forever = true
	if forever {
		if _, err := fmt.Fprintln(w, foreverLine); err != nil {
			return fmt.Errorf("write forever line: %w", err)
		}
	}
	return nil
}
