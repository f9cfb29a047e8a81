// Package notation parses and formats the compact pattern notation for
// machines: 'o' and 'x' for blank and marked cells, "xR2" for a behavior
// (write marked, move right, go to state 2, with 0 meaning halt), and
// "oR0,oR2" for a full state. A program is an ordered list of state
// patterns; list position i corresponds to 1-based table index i+1.
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/marioveld/turmac/internal/machine"
)

// ParseSymbol decodes a single cell pattern.
func ParseSymbol(c byte) (machine.Symbol, error) {
	switch c {
	case 'o':
		return machine.Blank, nil
	case 'x':
		return machine.Marked, nil
	default:
		return machine.Blank, fmt.Errorf("symbol must be 'o' or 'x', got %q", c)
	}
}

// ParseTape decodes a cell pattern like "xxoxx" into symbols.
func ParseTape(pattern string) ([]machine.Symbol, error) {
	if pattern == "" {
		return nil, fmt.Errorf("tape pattern is empty")
	}
	out := make([]machine.Symbol, len(pattern))
	for i := 0; i < len(pattern); i++ {
		s, err := ParseSymbol(pattern[i])
		if err != nil {
			return nil, fmt.Errorf("tape cell %d: %w", i, err)
		}
		out[i] = s
	}
	return out, nil
}

// ParseBehavior decodes a behavior pattern like "xR2" or "oL0".
func ParseBehavior(pattern string) (machine.Behavior, error) {
	if len(pattern) < 3 {
		return machine.Behavior{}, fmt.Errorf("behavior %q too short", pattern)
	}

	write, err := ParseSymbol(pattern[0])
	if err != nil {
		return machine.Behavior{}, fmt.Errorf("behavior %q: %w", pattern, err)
	}

	var dir machine.Direction
	switch pattern[1] {
	case 'L':
		dir = machine.Left
	case 'R':
		dir = machine.Right
	default:
		return machine.Behavior{}, fmt.Errorf("behavior %q: direction must be 'L' or 'R', got %q", pattern, pattern[1])
	}

	next, err := strconv.Atoi(pattern[2:])
	if err != nil || next < 0 {
		return machine.Behavior{}, fmt.Errorf("behavior %q: bad state index %q", pattern, pattern[2:])
	}

	return machine.Behavior{Write: write, Dir: dir, Next: next}, nil
}

// ParseState decodes a state pattern like "oR0,oR2": the behavior for a
// blank cell, then the behavior for a marked cell.
func ParseState(pattern string) (machine.State, error) {
	parts := strings.Split(pattern, ",")
	if len(parts) != 2 {
		return machine.State{}, fmt.Errorf("state %q must have exactly two behaviors", pattern)
	}

	whenBlank, err := ParseBehavior(strings.TrimSpace(parts[0]))
	if err != nil {
		return machine.State{}, err
	}
	whenMarked, err := ParseBehavior(strings.TrimSpace(parts[1]))
	if err != nil {
		return machine.State{}, err
	}

	return machine.State{WhenBlank: whenBlank, WhenMarked: whenMarked}, nil
}

// ParseProgram decodes an ordered list of state patterns into a program.
func ParseProgram(patterns []string) (machine.Program, error) {
	states := make([]machine.State, len(patterns))
	for i, p := range patterns {
		s, err := ParseState(strings.TrimSpace(p))
		if err != nil {
			return machine.Program{}, fmt.Errorf("state %d: %w", i+1, err)
		}
		states[i] = s
	}
	return machine.NewProgram(states...), nil
}

// FormatTape renders symbols back into cell-pattern form.
func FormatTape(symbols []machine.Symbol) string {
	var b strings.Builder
	for _, s := range symbols {
		b.WriteString(s.String())
	}
	return b.String()
}

// FormatState renders a state back into pattern form.
func FormatState(s machine.State) string {
	return s.WhenBlank.String() + "," + s.WhenMarked.String()
}

// FormatProgram renders a program back into its ordered pattern list.
func FormatProgram(p machine.Program) []string {
	out := make([]string, 0, p.Len())
	for i := 1; i <= p.Len(); i++ {
		s, err := p.State(i)
		if err != nil {
			break
		}
		out = append(out, FormatState(s))
	}
	return out
}
