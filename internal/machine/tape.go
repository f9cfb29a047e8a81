package machine

import "fmt"

// Tape is the finite, materialized window of a conceptually infinite strip.
// It is never empty: the zero-argument constructor yields a single blank
// cell. Cells are addressed 0..Len()-1.
type Tape struct {
	cells []Symbol
}

// NewTape builds a tape from the given symbols, or a single blank cell
// when none are given.
func NewTape(symbols ...Symbol) *Tape {
	if len(symbols) == 0 {
		return &Tape{cells: []Symbol{Blank}}
	}
	cells := make([]Symbol, len(symbols))
	copy(cells, symbols)
	return &Tape{cells: cells}
}

// Read returns the symbol at pos.
func (t *Tape) Read(pos int) (Symbol, error) {
	if pos < 0 || pos >= len(t.cells) {
		return Blank, fmt.Errorf("read %d of %d cells: %w", pos, len(t.cells), ErrCellRange)
	}
	return t.cells[pos], nil
}

// Write replaces the symbol at pos.
func (t *Tape) Write(pos int, s Symbol) error {
	if pos < 0 || pos >= len(t.cells) {
		return fmt.Errorf("write %d of %d cells: %w", pos, len(t.cells), ErrCellRange)
	}
	t.cells[pos] = s
	return nil
}

// ExtendLeft prepends one blank cell. Every existing cell index shifts up
// by one; callers holding positions into the tape must shift them by +1.
func (t *Tape) ExtendLeft() {
	t.cells = append(t.cells, Blank)
	copy(t.cells[1:], t.cells)
	t.cells[0] = Blank
}

// ExtendRight appends one blank cell. Existing indices are unaffected.
func (t *Tape) ExtendRight() {
	t.cells = append(t.cells, Blank)
}

// Len reports the number of materialized cells.
func (t *Tape) Len() int { return len(t.cells) }

// Snapshot returns a copy of the current cell contents.
func (t *Tape) Snapshot() []Symbol {
	out := make([]Symbol, len(t.cells))
	copy(out, t.cells)
	return out
}
