package board_test

import (
	"testing"

	"github.com/lineworks/connect4/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_ApplyGravity(t *testing.T) {
	b := board.NewBoard()

	b1, row, err := b.Apply(board.First, 3)
	require.NoError(t, err)
	assert.Equal(t, board.Rows-1, row)
	assert.Equal(t, board.P1, b1.Cell(3, row))

	b2, row2, err := b1.Apply(board.Second, 3)
	require.NoError(t, err)
	assert.Equal(t, row-1, row2)
	assert.Equal(t, board.P2, b2.Cell(3, row2))

	// original boards are untouched (value semantics)
	assert.Equal(t, board.Empty, b.Cell(3, board.Rows-1))
	assert.Equal(t, board.Empty, b1.Cell(3, row2))
}

func TestBoard_ColumnFull(t *testing.T) {
	b := board.NewBoard()
	var err error
	for i := 0; i < board.Rows; i++ {
		b, _, err = b.Apply(board.First, 0)
		require.NoError(t, err)
	}
	assert.True(t, b.IsColumnFull(0))

	_, _, err = b.Apply(board.Second, 0)
	assert.ErrorAs(t, err, &board.ErrColumnFull{})
}

func TestBoard_LegalMoves(t *testing.T) {
	b := board.NewBoard()
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, b.LegalMoves())

	var err error
	for i := 0; i < board.Rows; i++ {
		b, _, err = b.Apply(board.First, 2)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{0, 1, 3, 4, 5, 6}, b.LegalMoves())
}

func TestBoard_GravityInvariant(t *testing.T) {
	// Quantified invariant from the spec: for every reachable board, for
	// every column c and row r, if board[c][r] is occupied then every row
	// r' > r in that column is also occupied.
	b := board.NewBoard()
	moves := []int{0, 0, 1, 2, 2, 0, 3, 4, 4, 1}
	for _, m := range moves {
		var err error
		b, _, err = b.Apply(board.First, m)
		require.NoError(t, err)
	}

	for c := 0; c < board.Cols; c++ {
		occupied := false
		for r := board.Rows - 1; r >= 0; r-- {
			if b.Cell(c, r) != board.Empty {
				occupied = true
			} else if occupied {
				t.Fatalf("floating piece detected in column %d above row %d", c, r)
			}
		}
	}
}

func TestBoard_FromGrid_RejectsFloatingPiece(t *testing.T) {
	var grid [board.Cols][board.Rows]board.Cell
	grid[0][0] = board.P1 // top cell occupied, nothing below it

	_, err := board.FromGrid(grid)
	assert.Error(t, err)
}

func TestBoard_FromGrid_RoundTrip(t *testing.T) {
	b := board.NewBoard()
	var err error
	b, _, err = b.Apply(board.First, 3)
	require.NoError(t, err)
	b, _, err = b.Apply(board.Second, 3)
	require.NoError(t, err)

	var grid [board.Cols][board.Rows]board.Cell
	for c := 0; c < board.Cols; c++ {
		for r := 0; r < board.Rows; r++ {
			grid[c][r] = b.Cell(c, r)
		}
	}

	rebuilt, err := board.FromGrid(grid)
	require.NoError(t, err)
	assert.Equal(t, b, rebuilt)
}
