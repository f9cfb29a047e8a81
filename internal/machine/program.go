package machine

import "fmt"

// HaltState is the reserved next-state index that stops the machine.
const HaltState = 0

// Behavior is a single transition rule: stamp Write at the head, move one
// cell in Dir, then enter state Next. Next == HaltState stops the machine.
type Behavior struct {
	Write Symbol
	Dir   Direction
	Next  int
}

func (b Behavior) String() string {
	return fmt.Sprintf("%s%s%d", b.Write, b.Dir, b.Next)
}

// State pairs the two Behaviors of one program state, keyed by the symbol
// scanned at the head.
type State struct {
	WhenBlank  Behavior
	WhenMarked Behavior
}

// On selects the Behavior for a scanned symbol.
func (s State) On(scanned Symbol) Behavior {
	if scanned == Marked {
		return s.WhenMarked
	}
	return s.WhenBlank
}

// Program is a 1-indexed transition table. Index 0 is never a valid lookup:
// it is intercepted by the Machine as the halt signal before any lookup
// happens. Lookup is the only validation point; a Behavior pointing outside
// the table is not detected until the machine actually transitions there.
type Program struct {
	states []State
}

// NewProgram builds a program from states in table order; the first
// argument becomes state 1.
func NewProgram(states ...State) Program {
	copied := make([]State, len(states))
	copy(copied, states)
	return Program{states: copied}
}

// State looks up the 1-based state index i.
func (p Program) State(i int) (State, error) {
	if i < 1 || i > len(p.states) {
		return State{}, fmt.Errorf("state %d of %d: %w", i, len(p.states), ErrStateRange)
	}
	return p.states[i-1], nil
}

// Len reports the number of states in the table.
func (p Program) Len() int { return len(p.states) }
