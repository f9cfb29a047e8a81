// Package render turns a completed trace into a human-readable step table.
// Each row shows the tape after one move with the head cell bracketed; the
// header column labels the input, every intermediate state, and the output.
package render

import (
	"fmt"
	"strings"

	"github.com/marioveld/turmac/internal/machine"
)

// HeaderFunc produces the label for the input (above) or output (below)
// tape row. Consumers can replace it, e.g. to print the unary decoding of
// the tape instead of a fixed label.
type HeaderFunc func(symbols []machine.Symbol, input bool) string

// Options controls table appearance.
type Options struct {
	// Plain switches from box-drawing characters to plain ASCII.
	Plain bool
	// Color styles the header column with lipgloss.
	Color bool
	// Header overrides the input/output labels when non-nil.
	Header HeaderFunc
}

// Table renders the full step table of a trace.
func Table(trace *machine.Trace, opts Options) string {
	header := opts.Header
	if header == nil {
		header = func(_ []machine.Symbol, input bool) string {
			if input {
				return "Input"
			}
			return "Output"
		}
	}

	headers := make([]string, 0, len(trace.Moves)+2)
	rows := make([]string, 0, len(trace.Moves)+2)

	headers = append(headers, header(trace.Input, true))
	rows = append(rows, row(trace.Input, 0, false, opts.Plain))

	for _, mv := range trace.Moves {
		headers = append(headers, fmt.Sprintf("State %d", mv.FromState))
		rows = append(rows, row(mv.Symbols, mv.FromCell, true, opts.Plain))
	}

	headers = append(headers, header(trace.Output, false))
	rows = append(rows, row(trace.Output, 0, false, opts.Plain))

	width := 0
	for _, h := range headers {
		if len(h) > width {
			width = len(h)
		}
	}
	width++

	var lines []string
	for i, h := range headers {
		label := pad(h, width)
		if opts.Color {
			if i == 0 || i == len(headers)-1 {
				label = labelStyle.Render(label)
			} else {
				label = stateStyle.Render(label)
			}
		}
		lines = append(lines, label+rows[i])
	}

	if !opts.Plain {
		gutter := strings.Repeat(" ", width)
		top := gutter + border(len(trace.Input), "┌", "┬", "┐")
		above := gutter + border(len(trace.Input), "├", "┼", "┤")
		below := gutter + border(len(trace.Output), "├", "┼", "┤")
		bottom := gutter + border(len(trace.Output), "└", "┴", "┘")

		framed := []string{top, lines[0], above}
		framed = append(framed, lines[1:len(lines)-1]...)
		framed = append(framed, below, lines[len(lines)-1], bottom)
		lines = framed
	}

	return strings.Join(lines, "\n")
}

// row renders one tape snapshot, bracketing the head cell when pointer is
// set. The head bracket replaces the separators on either side of the cell.
func row(symbols []machine.Symbol, head int, pointer bool, plain bool) string {
	sep, ptrL, ptrR := "│", "├", "┤"
	if plain {
		sep, ptrL, ptrR = "|", ">", "<"
	}

	parts := make([]string, 0, 2*len(symbols)+1)
	parts = append(parts, sep)
	for _, s := range symbols {
		parts = append(parts, s.String(), sep)
	}
	if pointer && head >= 0 && 2*head+2 < len(parts) {
		parts[2*head] = ptrL
		parts[2*head+2] = ptrR
	}
	return strings.Join(parts, "")
}

// border draws a horizontal frame line for n cells.
func border(n int, left, mid, right string) string {
	if n < 1 {
		n = 1
	}
	var b strings.Builder
	b.WriteString(left)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(mid)
		}
		b.WriteString("─")
	}
	b.WriteString(right)
	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
