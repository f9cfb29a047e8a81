// Package machine implements a deterministic single-tape Turing machine.
//
// The package defines the fundamental types for machine execution:
//
//   - [Symbol]: binary content of one tape cell
//   - [Tape]: lazily grown, never-empty strip of cells
//   - [Behavior]: one transition rule (write, move, next state)
//   - [State]: a pair of Behaviors keyed by the scanned Symbol
//   - [Program]: 1-indexed transition table (index 0 means halt)
//   - [Machine]: the execution engine, stepped one transition at a time
//   - [Move]: immutable record of one completed step
//
// # Example
//
//	prog := machine.NewProgram(states...)
//	m := machine.New(machine.NewTape(), prog)
//	trace, err := m.Run(ctx, machine.Config{MaxSteps: 10000})
//
// # Thread Safety
//
// Machine instances are NOT thread-safe. A Tape and Program are owned by
// exactly one Machine for the duration of a run.
package machine
