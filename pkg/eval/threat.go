package eval

import "github.com/lineworks/connect4/pkg/board"

// isAccessible reports whether the empty cell (c, r) would be the landing
// cell for a hypothetical drop into column c right now: the cell
// immediately below is either the floor or occupied. Given the board's
// gravity invariant, at most one cell per column is ever accessible.
func isAccessible(b board.Board, c, r int) bool {
	if b.Cell(c, r) != board.Empty {
		return false
	}
	below := r + 1
	if below >= board.Rows {
		return true // floor
	}
	return b.Cell(c, below) != board.Empty
}

// completableThrough counts the four-in-a-row windows passing through the
// empty cell (c, r) whose other three cells are all owned by player -- i.e.
// windows that player would complete by placing a piece at (c, r).
func completableThrough(b board.Board, c, r int, player board.Player) int {
	want := board.CellOf(player)
	count := 0

	for o := board.Horizontal; o <= board.DiagonalUp; o++ {
		d := directionOf(o)

		for start := -3; start <= 0; start++ {
			ok := true
			for i := 0; i < 4; i++ {
				off := start + i
				cc, rr := c+off*d.Col, r+off*d.Row
				if off == 0 { // this is (c, r) itself -- must be empty, already known
					continue
				}
				if b.Cell(cc, rr) != want {
					ok = false
					break
				}
			}
			if ok {
				count++
			}
		}
	}
	return count
}

// ColumnThreatCounts returns, for each column, the number of four-in-a-rows
// each player would complete by dropping a piece there right now (0 for a
// full column). Shared by the heuristic's threat term and the neural
// feature encoder, so both count threats the same way.
func ColumnThreatCounts(b board.Board) (p1, p2 [board.Cols]int) {
	for c := 0; c < board.Cols; c++ {
		if b.IsColumnFull(c) {
			continue
		}
		r := board.Rows - 1 - int(b.Height(c))
		p1[c] = completableThrough(b, c, r, board.First)
		p2[c] = completableThrough(b, c, r, board.Second)
	}
	return p1, p2
}

func directionOf(o board.Orientation) board.Coord {
	switch o {
	case board.Horizontal:
		return board.Coord{Col: 1, Row: 0}
	case board.Vertical:
		return board.Coord{Col: 0, Row: 1}
	case board.DiagonalDown:
		return board.Coord{Col: 1, Row: 1}
	default: // DiagonalUp
		return board.Coord{Col: 1, Row: -1}
	}
}
