package vm

import "errors"

// ErrStepBudgetExceeded is returned by Executor.Run when an
// ExecutorOptions.StepBudget is set and exhausted before the run either
// matches or exhausts its frontier. It is not a match-or-no-match
// outcome: it signals that the caller's budget, not the pattern, decided
// the run's fate.
var ErrStepBudgetExceeded = errors.New("vm: step budget exceeded")
