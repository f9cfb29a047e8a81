package machine

// Move is the immutable record of one completed transition: the full tape
// snapshot after the step, plus the head position and state index on either
// side of it. A run's ordered Moves are its complete, replayable audit
// trail.
type Move struct {
	Symbols   []Symbol
	FromCell  int
	ToCell    int
	FromState int
	ToState   int
}

// Trace is the result of running a machine: the tape before and after, and
// every Move in execution order. Halted is false only when a bounded run
// hit its step budget first.
type Trace struct {
	Input  []Symbol
	Moves  []Move
	Output []Symbol
	Halted bool
}

// Steps reports the number of transitions recorded.
func (tr *Trace) Steps() int { return len(tr.Moves) }
