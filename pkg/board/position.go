package board

import "fmt"

// Position is a Board plus the side-to-move and the move history that
// produced it.
type Position struct {
	board   Board
	turn    Player
	history []MoveRecord
	result  Result
}

// NewPosition returns the initial empty position, first player to move.
func NewPosition() Position {
	return Position{board: NewBoard(), turn: First}
}

// NewPositionFromBoard builds a Position from an externally supplied board
// snapshot and side-to-move, as arrives over the wire from a host. Since no
// move history is known, the terminal status is derived by scanning the
// whole board for any winning line rather than the incremental
// last-move-only check Apply uses. Returns ErrInvalidBoard if turn is
// inconsistent with the piece counts (§3: "first player has placed the same
// number or one more than the second").
func NewPositionFromBoard(b Board, turn Player) (Position, error) {
	if turn != First && turn != Second {
		return Position{}, ErrInvalidBoard{Reason: "side-to-move must be First or Second"}
	}

	c1, c2 := b.CountPlayer(First), b.CountPlayer(Second)
	switch {
	case c1 == c2 && turn != First:
		return Position{}, ErrInvalidBoard{Reason: fmt.Sprintf("equal piece counts (%d/%d) imply first player to move", c1, c2)}
	case c1 == c2+1 && turn != Second:
		return Position{}, ErrInvalidBoard{Reason: fmt.Sprintf("piece counts (%d/%d) imply second player to move", c1, c2)}
	case c1 != c2 && c1 != c2+1:
		return Position{}, ErrInvalidBoard{Reason: fmt.Sprintf("piece counts (%d/%d) are inconsistent with any side to move", c1, c2)}
	}

	result := InPlay
	var res Result
	if line, ok := FindAnyWin(b); ok {
		res = Result{Status: Won, Winner: line.Player, Line: line}
	} else if b.IsFull() {
		res = Result{Status: Drawn}
	} else {
		res = Result{Status: result}
	}

	return Position{board: b, turn: turn, result: res}, nil
}

// Board returns the current board.
func (p Position) Board() Board {
	return p.board
}

// Turn returns the side to move.
func (p Position) Turn() Player {
	return p.turn
}

// History returns the ordered move-record sequence that produced this position.
func (p Position) History() []MoveRecord {
	return p.history
}

// Result returns the terminal status of the position.
func (p Position) Result() Result {
	return p.result
}

// LegalMoves returns the legal columns, or nil if the position is terminal.
func (p Position) LegalMoves() []int {
	if p.result.Status != InPlay {
		return nil
	}
	return p.board.LegalMoves()
}

// Apply plays a column for the side to move, advancing history and turn,
// and recomputing the terminal status from the just-placed piece. Returns
// ErrTerminal if the position is already over, or ErrColumnFull if the
// column has no empty cell.
func (p Position) Apply(col int) (Position, error) {
	if p.result.Status != InPlay {
		return p, ErrTerminal
	}

	next, row, err := p.board.Apply(p.turn, col)
	if err != nil {
		return p, err
	}

	history := make([]MoveRecord, len(p.history)+1)
	copy(history, p.history)
	history[len(p.history)] = MoveRecord{Player: p.turn, Column: col, Row: row}

	np := Position{
		board:   next,
		turn:    p.turn.Opponent(),
		history: history,
	}

	if line, ok := DetectWinThrough(next, col, row, p.turn); ok {
		np.result = Result{Status: Won, Winner: p.turn, Line: line}
	} else if next.IsFull() {
		np.result = Result{Status: Drawn}
	} else {
		np.result = Result{Status: InPlay}
	}
	return np, nil
}

// Replay rebuilds a Position from an empty board by applying a column
// sequence in order. Used to verify replay equivalence and to reconstruct a
// position from a persisted move list.
func Replay(columns []int) (Position, error) {
	p := NewPosition()
	for i, col := range columns {
		next, err := p.Apply(col)
		if err != nil {
			return p, fmt.Errorf("replay move %d (column %d): %w", i, col, err)
		}
		p = next
	}
	return p, nil
}

// FindAnyWin scans the whole board for a winning line, for use when no
// last-move coordinate is known (e.g. a host-supplied board snapshot). It
// examines occupied cells in row-major, top-to-bottom, left-to-right order
// and returns the first winning line found.
func FindAnyWin(b Board) (WinningLine, bool) {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			cell := b.Cell(c, r)
			player, ok := cell.Owner()
			if !ok {
				continue
			}
			if line, found := DetectWinThrough(b, c, r, player); found {
				return line, true
			}
		}
	}
	return WinningLine{}, false
}
