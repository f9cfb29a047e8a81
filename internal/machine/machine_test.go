package machine

import (
	"context"
	"errors"
	"testing"
)

// adderProgram merges two unary numbers separated by one blank into a
// single contiguous run of marks (the classic unary adder).
func adderProgram() Program {
	return NewProgram(
		State{
			WhenBlank:  Behavior{Write: Blank, Dir: Right, Next: HaltState},
			WhenMarked: Behavior{Write: Blank, Dir: Right, Next: 2},
		},
		State{
			WhenBlank:  Behavior{Write: Marked, Dir: Left, Next: 3},
			WhenMarked: Behavior{Write: Marked, Dir: Right, Next: 2},
		},
		State{
			WhenBlank:  Behavior{Write: Blank, Dir: Right, Next: 4},
			WhenMarked: Behavior{Write: Marked, Dir: Left, Next: 3},
		},
		State{
			WhenBlank:  Behavior{Write: Blank, Dir: Right, Next: HaltState},
			WhenMarked: Behavior{Write: Blank, Dir: Right, Next: HaltState},
		},
	)
}

// busyBeaver2 is the two-state busy beaver: halts after 6 steps leaving
// four marks on an initially blank tape.
func busyBeaver2() Program {
	return NewProgram(
		State{
			WhenBlank:  Behavior{Write: Marked, Dir: Right, Next: 2},
			WhenMarked: Behavior{Write: Marked, Dir: Left, Next: 2},
		},
		State{
			WhenBlank:  Behavior{Write: Marked, Dir: Left, Next: 1},
			WhenMarked: Behavior{Write: Marked, Dir: Right, Next: HaltState},
		},
	)
}

func TestAdderTrace(t *testing.T) {
	// Per-step fixture captured from a reference run.
	want := []struct {
		symbols   string
		fromCell  int
		toCell    int
		fromState int
		toState   int
	}{
		{"oxoxx", 0, 1, 1, 2},
		{"oxoxx", 1, 2, 2, 2},
		{"oxxxx", 2, 1, 2, 3},
		{"oxxxx", 1, 0, 3, 3},
		{"oxxxx", 0, 1, 3, 4},
		{"ooxxx", 1, 2, 4, 0},
	}

	m := New(NewTape(symbols("xxoxx")...), adderProgram())
	trace, err := m.Run(context.Background(), Config{})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if !trace.Halted {
		t.Error("expected halted trace")
	}
	if got := pattern(trace.Input); got != "xxoxx" {
		t.Errorf("input snapshot: expected xxoxx, got %s", got)
	}
	if got := pattern(trace.Output); got != "ooxxx" {
		t.Errorf("final tape: expected ooxxx, got %s", got)
	}
	if trace.Steps() != len(want) {
		t.Fatalf("expected %d moves, got %d", len(want), trace.Steps())
	}

	for i, w := range want {
		mv := trace.Moves[i]
		if got := pattern(mv.Symbols); got != w.symbols {
			t.Errorf("move %d symbols: expected %s, got %s", i, w.symbols, got)
		}
		if mv.FromCell != w.fromCell || mv.ToCell != w.toCell {
			t.Errorf("move %d cells: expected %d->%d, got %d->%d",
				i, w.fromCell, w.toCell, mv.FromCell, mv.ToCell)
		}
		if mv.FromState != w.fromState || mv.ToState != w.toState {
			t.Errorf("move %d states: expected %d->%d, got %d->%d",
				i, w.fromState, w.toState, mv.FromState, mv.ToState)
		}
	}

	if last := trace.Moves[len(trace.Moves)-1]; last.ToState != HaltState {
		t.Errorf("last move should transition to halt, got %d", last.ToState)
	}
}

func TestRunFixtures(t *testing.T) {
	tests := []struct {
		name    string
		program Program
		tape    string
		steps   int
		output  string
	}{
		{"adder 1+1", adderProgram(), "xxoxx", 6, "ooxxx"},
		{"adder 4+0", adderProgram(), "xxxxxox", 12, "ooxxxxx"},
		{"adder 8+3", adderProgram(), "xxxxxxxxxoxxxx", 20, "ooxxxxxxxxxxxx"},
		{"busy beaver 2", busyBeaver2(), "o", 6, "xxxx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(NewTape(symbols(tt.tape)...), tt.program)
			trace, err := m.Run(context.Background(), Config{MaxSteps: 1000})
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if trace.Steps() != tt.steps {
				t.Errorf("expected %d steps, got %d", tt.steps, trace.Steps())
			}
			if got := pattern(trace.Output); got != tt.output {
				t.Errorf("expected final tape %s, got %s", tt.output, got)
			}
		})
	}
}

func TestLeftEdgeGrowth(t *testing.T) {
	// State 1 moves left on anything: the very first step must extend the
	// tape leftward while the head index stays 0.
	prog := NewProgram(
		State{
			WhenBlank:  Behavior{Write: Blank, Dir: Left, Next: 2},
			WhenMarked: Behavior{Write: Blank, Dir: Left, Next: 2},
		},
		State{
			WhenBlank:  Behavior{Write: Blank, Dir: Right, Next: HaltState},
			WhenMarked: Behavior{Write: Blank, Dir: Right, Next: HaltState},
		},
	)

	m := New(NewTape(), prog)
	move, ok, err := m.Step()
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}
	if !ok {
		t.Fatal("expected a move")
	}

	if move.FromCell != 0 || move.ToCell != 0 {
		t.Errorf("expected head to stay at 0, got %d->%d", move.FromCell, move.ToCell)
	}
	if m.Tape().Len() != 2 {
		t.Errorf("expected tape to grow to 2 cells, got %d", m.Tape().Len())
	}

	trace, err := m.Run(context.Background(), Config{MaxSteps: 10})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if got := pattern(trace.Output); got != "oo" {
		t.Errorf("expected final tape oo, got %s", got)
	}
}

func TestTapeGrowthMonotonic(t *testing.T) {
	m := New(NewTape(symbols("xxoxx")...), adderProgram())

	prev := m.Tape().Len()
	for {
		move, ok, err := m.Step()
		if err != nil {
			t.Fatalf("step failed: %v", err)
		}
		if !ok {
			break
		}
		cur := m.Tape().Len()
		if cur < prev {
			t.Fatalf("tape shrank from %d to %d", prev, cur)
		}
		if cur > prev+1 {
			t.Fatalf("tape grew by more than one cell: %d -> %d", prev, cur)
		}
		if cur != len(move.Symbols) {
			t.Fatalf("move snapshot length %d != tape length %d", len(move.Symbols), cur)
		}
		prev = cur
	}
}

func TestStepAfterHalt(t *testing.T) {
	m := New(NewTape(symbols("xxoxx")...), adderProgram())
	if _, err := m.Run(context.Background(), Config{}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if !m.Halted() {
		t.Fatal("machine should be halted")
	}
	for i := 0; i < 3; i++ {
		_, ok, err := m.Step()
		if err != nil {
			t.Fatalf("step after halt errored: %v", err)
		}
		if ok {
			t.Fatal("step after halt produced a move")
		}
	}
}

func TestRewind(t *testing.T) {
	m := New(NewTape(symbols("xxoxx")...), adderProgram())
	if _, err := m.Run(context.Background(), Config{}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	m.Rewind()

	if m.Head() != 0 {
		t.Errorf("expected head 0, got %d", m.Head())
	}
	if m.StateIndex() != 1 {
		t.Errorf("expected state 1, got %d", m.StateIndex())
	}
	// Rewind leaves tape contents alone.
	if got := pattern(m.Tape().Snapshot()); got != "ooxxx" {
		t.Errorf("rewind changed tape contents: %s", got)
	}

	// A fresh tape makes the re-run independent.
	m.SetTape(NewTape(symbols("xxoxx")...))
	trace, err := m.Run(context.Background(), Config{})
	if err != nil {
		t.Fatalf("re-run failed: %v", err)
	}
	if got := pattern(trace.Output); got != "ooxxx" {
		t.Errorf("re-run mismatch: %s", got)
	}
}

func TestRunStepBound(t *testing.T) {
	// State 1 loops to itself forever.
	spinner := NewProgram(State{
		WhenBlank:  Behavior{Write: Marked, Dir: Right, Next: 1},
		WhenMarked: Behavior{Write: Marked, Dir: Right, Next: 1},
	})

	m := New(NewTape(), spinner)
	trace, err := m.Run(context.Background(), Config{MaxSteps: 25})

	if !errors.Is(err, ErrDidNotHalt) {
		t.Fatalf("expected ErrDidNotHalt, got %v", err)
	}
	if trace.Steps() != 25 {
		t.Errorf("expected exactly 25 moves, got %d", trace.Steps())
	}
	if trace.Halted {
		t.Error("trace should not report halted")
	}
}

func TestRunHaltsExactlyAtBound(t *testing.T) {
	// The adder on xxoxx halts in 6 steps; a bound of 6 must not be
	// reported as a failure.
	m := New(NewTape(symbols("xxoxx")...), adderProgram())
	trace, err := m.Run(context.Background(), Config{MaxSteps: 6})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !trace.Halted {
		t.Error("expected halted trace")
	}
}

func TestRunNegativeBound(t *testing.T) {
	m := New(NewTape(), adderProgram())
	if _, err := m.Run(context.Background(), Config{MaxSteps: -1}); err == nil {
		t.Error("expected error for negative bound")
	}
}

func TestRunCanceled(t *testing.T) {
	spinner := NewProgram(State{
		WhenBlank:  Behavior{Write: Marked, Dir: Right, Next: 1},
		WhenMarked: Behavior{Write: Marked, Dir: Right, Next: 1},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := New(NewTape(), spinner)
	if _, err := m.Run(ctx, Config{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestMalformedProgramSurfacesAtLookup(t *testing.T) {
	// State 1 jumps to a state that does not exist. Construction succeeds;
	// the fault surfaces only when the transition is looked up.
	prog := NewProgram(State{
		WhenBlank:  Behavior{Write: Blank, Dir: Right, Next: 5},
		WhenMarked: Behavior{Write: Blank, Dir: Right, Next: 5},
	})

	m := New(NewTape(), prog)

	// First step is fine: state 1 exists.
	if _, ok, err := m.Step(); err != nil || !ok {
		t.Fatalf("first step: ok=%v err=%v", ok, err)
	}

	_, _, err := m.Step()
	if !errors.Is(err, ErrStateRange) {
		t.Fatalf("expected ErrStateRange, got %v", err)
	}

	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatal("expected *StepError")
	}
	if stepErr.State != 5 {
		t.Errorf("expected failing state 5, got %d", stepErr.State)
	}
}
