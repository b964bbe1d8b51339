// Package board contains Connect Four board representation and rules.
package board

import (
	"fmt"
	"strings"
)

const (
	// Cols is the fixed board width.
	Cols = 7
	// Rows is the fixed board height. Row 0 is the top, row Rows-1 is the bottom.
	Rows = 6
)

// Board is a 7x6 Connect Four grid. The zero value is an empty board. Board
// is a plain value: Apply returns a new Board rather than mutating the
// receiver, so a Board may be freely shared and compared with ==.
type Board struct {
	cells   [Cols][Rows]Cell
	heights [Cols]uint8 // number of occupied cells per column, counted from the bottom
}

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// Cell returns the content of (col, row). Out-of-range coordinates return Empty.
func (b Board) Cell(col, row int) Cell {
	if col < 0 || col >= Cols || row < 0 || row >= Rows {
		return Empty
	}
	return b.cells[col][row]
}

// Height returns the number of occupied cells in the given column.
func (b Board) Height(col int) int {
	if col < 0 || col >= Cols {
		return 0
	}
	return int(b.heights[col])
}

// IsColumnFull reports whether the given column has no empty cell.
func (b Board) IsColumnFull(col int) bool {
	return b.Height(col) >= Rows
}

// IsFull reports whether every column is full.
func (b Board) IsFull() bool {
	for c := 0; c < Cols; c++ {
		if !b.IsColumnFull(c) {
			return false
		}
	}
	return true
}

// PieceCount returns the total number of pieces on the board.
func (b Board) PieceCount() int {
	n := 0
	for c := 0; c < Cols; c++ {
		n += int(b.heights[c])
	}
	return n
}

// CountPlayer returns the number of pieces owned by the given player.
func (b Board) CountPlayer(p Player) int {
	want := CellOf(p)
	n := 0
	for c := 0; c < Cols; c++ {
		for r := 0; r < Rows; r++ {
			if b.cells[c][r] == want {
				n++
			}
		}
	}
	return n
}

// LegalMoves returns the legal column indices in natural left-to-right
// generation order: [0..Cols) filtered to non-full columns. This is the
// generation order; search uses a distinct exploration order.
func (b Board) LegalMoves() []int {
	var ret []int
	for c := 0; c < Cols; c++ {
		if !b.IsColumnFull(c) {
			ret = append(ret, c)
		}
	}
	return ret
}

// ErrColumnFull is returned by Apply when the target column has no empty cell.
type ErrColumnFull struct {
	Column int
}

func (e ErrColumnFull) Error() string {
	return fmt.Sprintf("column %d is full", e.Column)
}

// Apply drops a piece for the given player into column col, obeying gravity:
// the piece occupies the lowest empty row of the column. Returns the new
// board and the landing row. The receiver is never mutated.
func (b Board) Apply(p Player, col int) (Board, int, error) {
	if col < 0 || col >= Cols {
		return b, 0, fmt.Errorf("invalid column %d", col)
	}
	if b.IsColumnFull(col) {
		return b, 0, ErrColumnFull{Column: col}
	}

	row := Rows - 1 - b.Height(col)

	next := b
	next.cells[col][row] = CellOf(p)
	next.heights[col]++
	return next, row, nil
}

// FromGrid builds a Board from a column-major grid of cells (grid[col][row],
// row 0 top, row Rows-1 bottom), validating the gravity invariant: within
// any column, if row r is occupied then every row r' > r is also occupied.
func FromGrid(grid [Cols][Rows]Cell) (Board, error) {
	var b Board
	for c := 0; c < Cols; c++ {
		seenEmpty := false
		height := 0
		for r := Rows - 1; r >= 0; r-- {
			if grid[c][r] == Empty {
				seenEmpty = true
			} else {
				if seenEmpty {
					return Board{}, fmt.Errorf("column %d has a floating piece at row %d", c, r)
				}
				height++
			}
			b.cells[c][r] = grid[c][r]
		}
		b.heights[c] = uint8(height)
	}
	return b, nil
}

// String renders the board with '.' for empty, 'X' for first-player and 'O'
// for second-player cells, top row first.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			sb.WriteString(b.cells[c][r].String())
		}
		if r != Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
