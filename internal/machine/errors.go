package machine

import (
	"errors"
	"fmt"
)

// Domain errors for machine execution.
var (
	// ErrCellRange indicates a tape access outside the materialized strip.
	// The engine grows the tape before crossing an edge, so seeing this
	// error means a caller supplied a bad position, not that the machine
	// ran off the tape.
	ErrCellRange = errors.New("machine: cell index out of tape range")

	// ErrStateRange indicates a transition to a state index outside the
	// program. Index 0 is intercepted as the halt signal before lookup,
	// so this only fires for genuinely malformed programs.
	ErrStateRange = errors.New("machine: state index out of program range")

	// ErrDidNotHalt indicates a bounded run exhausted its step budget
	// before reaching the halt state.
	ErrDidNotHalt = errors.New("machine: did not halt within step bound")
)

// StepError wraps an error with the step at which execution failed.
type StepError struct {
	Step  int
	State int
	Cell  int
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (state %d, cell %d): %v", e.Step, e.State, e.Cell, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
