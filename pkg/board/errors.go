package board

import "errors"

// ErrTerminal is returned by Position.Apply when the position is already
// terminal: a move is legal iff its column has an empty cell AND the game
// is not already over.
var ErrTerminal = errors.New("position is terminal")

// ErrInvalidBoard indicates a board shape, cell value, gravity invariant, or
// piece-count/side-to-move inconsistency.
type ErrInvalidBoard struct {
	Reason string
}

func (e ErrInvalidBoard) Error() string {
	return "invalid board: " + e.Reason
}
