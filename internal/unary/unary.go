// Package unary converts between tapes and the unary number convention
// used by the example programs: a value n is a run of n+1 marked cells,
// and runs are separated by blank cells.
package unary

import "github.com/marioveld/turmac/internal/machine"

// Decode measures every maximal run of marked cells and reports each as
// its length minus one, in tape order. A lone mark is the value 0.
func Decode(symbols []machine.Symbol) []int {
	var values []int
	run := 0
	for _, s := range symbols {
		if s == machine.Marked {
			run++
			continue
		}
		if run > 0 {
			values = append(values, run-1)
			run = 0
		}
	}
	if run > 0 {
		values = append(values, run-1)
	}
	return values
}

// Encode lays values onto a fresh tape: each value n becomes n+1 marks,
// with a single blank between consecutive values. No values yields a
// single blank cell, matching the minimum tape length.
func Encode(values ...int) []machine.Symbol {
	if len(values) == 0 {
		return []machine.Symbol{machine.Blank}
	}
	var out []machine.Symbol
	for i, v := range values {
		if i > 0 {
			out = append(out, machine.Blank)
		}
		for j := 0; j <= v; j++ {
			out = append(out, machine.Marked)
		}
	}
	return out
}
