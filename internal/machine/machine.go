package machine

import (
	"context"
	"fmt"
)

// Config controls a Run. MaxSteps > 0 bounds the run as a defense against
// non-halting programs; 0 means unbounded, which is the faithful (and
// undecidable) semantics.
type Config struct {
	MaxSteps int
}

// Machine executes a Program against a Tape one transition at a time.
// The head starts at cell 0 and the state index at 1; state index 0 means
// the machine has halted.
type Machine struct {
	tape    *Tape
	program Program
	head    int
	state   int
	steps   int
}

// New builds a machine over tape and program. A nil tape is replaced with
// a fresh single-cell blank tape.
func New(tape *Tape, program Program) *Machine {
	if tape == nil {
		tape = NewTape()
	}
	return &Machine{
		tape:    tape,
		program: program,
		head:    0,
		state:   1,
	}
}

// Head returns the current head position.
func (m *Machine) Head() int { return m.head }

// StateIndex returns the current state index; 0 once halted.
func (m *Machine) StateIndex() int { return m.state }

// Halted reports whether the machine has reached the halt state.
func (m *Machine) Halted() bool { return m.state == HaltState }

// Tape exposes the machine's tape, e.g. for snapshots between runs.
func (m *Machine) Tape() *Tape { return m.tape }

// Program returns the machine's transition table.
func (m *Machine) Program() Program { return m.program }

// SetTape installs a fresh tape for an independent re-run. It does not
// rewind the head or state; pair it with Rewind.
func (m *Machine) SetTape(t *Tape) {
	if t == nil {
		t = NewTape()
	}
	m.tape = t
}

// Rewind resets the head to 0 and the state index to 1. Tape contents are
// deliberately left alone: a clean re-run needs SetTape as well.
func (m *Machine) Rewind() {
	m.head = 0
	m.state = 1
	m.steps = 0
}

// Step performs one transition in the fixed order scan, stamp, move,
// transition, and reports it as a Move. Once halted it returns ok=false,
// mirroring exhausted iteration rather than an error. The looked-up
// Behavior lives only in this call frame; there is no pending
// configuration shared between sub-steps.
func (m *Machine) Step() (Move, bool, error) {
	if m.state == HaltState {
		return Move{}, false, nil
	}

	scanned, err := m.tape.Read(m.head)
	if err != nil {
		return Move{}, false, &StepError{Step: m.steps, State: m.state, Cell: m.head, Err: err}
	}
	state, err := m.program.State(m.state)
	if err != nil {
		return Move{}, false, &StepError{Step: m.steps, State: m.state, Cell: m.head, Err: err}
	}
	behavior := state.On(scanned)

	// Stamp unconditionally, even when the written symbol equals the
	// scanned one.
	if err := m.tape.Write(m.head, behavior.Write); err != nil {
		return Move{}, false, &StepError{Step: m.steps, State: m.state, Cell: m.head, Err: err}
	}

	fromCell := m.head
	fromState := m.state

	// Move the head, growing the tape lazily at the edges. A left move at
	// cell 0 inserts a blank in front and leaves the index at 0: the whole
	// strip shifted right underneath the head.
	if behavior.Dir == Left {
		if m.head == 0 {
			m.tape.ExtendLeft()
		} else {
			m.head--
		}
	} else {
		if m.head == m.tape.Len()-1 {
			m.tape.ExtendRight()
		}
		m.head++
	}

	m.state = behavior.Next
	m.steps++

	return Move{
		Symbols:   m.tape.Snapshot(),
		FromCell:  fromCell,
		ToCell:    m.head,
		FromState: fromState,
		ToState:   m.state,
	}, true, nil
}

// Run steps the machine until it halts, collecting every Move in order.
// With cfg.MaxSteps > 0 the run stops at the bound and returns the partial
// trace alongside ErrDidNotHalt. Context cancellation is honored between
// steps; the partial trace is returned with ctx.Err().
func (m *Machine) Run(ctx context.Context, cfg Config) (*Trace, error) {
	if cfg.MaxSteps < 0 {
		return nil, fmt.Errorf("max steps must be non-negative, got %d", cfg.MaxSteps)
	}

	trace := &Trace{Input: m.tape.Snapshot()}

	for {
		select {
		case <-ctx.Done():
			trace.Output = m.tape.Snapshot()
			return trace, ctx.Err()
		default:
		}

		move, ok, err := m.Step()
		if err != nil {
			trace.Output = m.tape.Snapshot()
			return trace, err
		}
		if !ok {
			trace.Halted = true
			break
		}
		trace.Moves = append(trace.Moves, move)

		if cfg.MaxSteps > 0 && len(trace.Moves) >= cfg.MaxSteps && !m.Halted() {
			trace.Output = m.tape.Snapshot()
			return trace, fmt.Errorf("stopped after %d steps: %w", cfg.MaxSteps, ErrDidNotHalt)
		}
	}

	trace.Output = m.tape.Snapshot()
	return trace, nil
}
