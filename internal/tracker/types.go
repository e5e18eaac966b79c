// internal/tracker/types.go
//
// Core type definitions for accumulated puzzle knowledge.
// Defines:
//   - Cell: tri-state knowledge about one (letter, position) pair.
//   - letterRecord: everything known about a single letter.

package tracker

// Cell is what we know about a single letter at a single position.
// Possible values:
//   - CellAbsent:    the letter is known not to occupy this position.
//   - CellPossible:  no information yet; the letter may or may not be here.
//   - CellConfirmed: the letter is known to occupy this position. This does
//     not preclude it also occupying other positions (repeated letters).
type Cell uint8

const (
	CellAbsent Cell = iota
	CellPossible
	CellConfirmed
)

// symbol renders a cell for the debug dump: ruled-out / unknown / confirmed.
func (c Cell) symbol() byte {
	switch c {
	case CellConfirmed:
		return '!'
	case CellPossible:
		return '.'
	default:
		return 'x'
	}
}

// letterRecord is the accumulated knowledge about one letter.
// It is a two-variant record: absent==true means the letter never occurs
// anywhere in the solution (cells is nil); otherwise cells holds one entry
// per position, always exactly the word length.
//
// Records only narrow over time. A cell never leaves CellAbsent, and the
// only path from the absent variant back to cells is the repeated-letter
// promotion in Update.
type letterRecord struct {
	absent bool
	cells  []Cell
}

// possibleCells returns a fresh all-possible vector of length n.
func possibleCells(n int) []Cell {
	cells := make([]Cell, n)
	for i := range cells {
		cells[i] = CellPossible
	}
	return cells
}

// absentCells returns a fresh all-absent vector of length n.
// CellAbsent is the zero value, so allocation is enough.
func absentCells(n int) []Cell {
	return make([]Cell, n)
}
