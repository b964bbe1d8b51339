package board_test

import (
	"testing"

	"github.com/lineworks/connect4/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func play(t *testing.T, moves ...int) (board.Board, int, int, board.Player) {
	t.Helper()
	b := board.NewBoard()
	turn := board.First
	var row, col int
	var err error
	for _, m := range moves {
		b, row, err = b.Apply(turn, m)
		require.NoError(t, err)
		col = m
		turn = turn.Opponent()
	}
	// the last move was made by the player before the final Opponent() flip
	return b, col, row, turn.Opponent()
}

func TestDetectWinThrough_Horizontal(t *testing.T) {
	// S1: X at (0,5),(1,5),(2,5); X plays column 3 to complete the row.
	b, col, row, player := play(t, 0, 6, 1, 6, 2, 6, 3)

	line, ok := board.DetectWinThrough(b, col, row, player)
	require.True(t, ok)
	assert.Equal(t, board.Horizontal, line.Orientation)
	assert.ElementsMatch(t, []board.Coord{{0, 5}, {1, 5}, {2, 5}, {3, 5}}, line.Cells[:])
}

func TestDetectWinThrough_Vertical(t *testing.T) {
	// S3: X plays column 3 four times in a row (O interleaved elsewhere).
	b, col, row, player := play(t, 3, 0, 3, 1, 3, 2, 3)

	line, ok := board.DetectWinThrough(b, col, row, player)
	require.True(t, ok)
	assert.Equal(t, board.Vertical, line.Orientation)
}

func TestDetectWinThrough_NoWin(t *testing.T) {
	b, col, row, player := play(t, 0, 1, 2, 1)
	_, ok := board.DetectWinThrough(b, col, row, player)
	assert.False(t, ok)
}

func TestDetectWinThrough_DiagonalUp(t *testing.T) {
	// Build a classic ascending diagonal for X at (0,5),(1,4),(2,3),(3,2)
	// with supporting O pieces stacked beneath the higher columns.
	b := board.NewBoard()
	seq := []struct {
		player board.Player
		col    int
	}{
		{board.First, 0},
		{board.Second, 1},
		{board.First, 1},
		{board.Second, 2},
		{board.Second, 2},
		{board.First, 2},
		{board.Second, 3},
		{board.Second, 3},
		{board.Second, 3},
		{board.First, 3},
	}
	var row int
	var err error
	for _, s := range seq {
		b, row, err = b.Apply(s.player, s.col)
		require.NoError(t, err)
	}

	line, ok := board.DetectWinThrough(b, 3, row, board.First)
	require.True(t, ok)
	assert.Equal(t, board.DiagonalUp, line.Orientation)
}

func TestFindAnyWin_DrawnBoardHasNone(t *testing.T) {
	// A full board constructed so that (col + 2*row) mod 4 determines the
	// owner: every 4-cell run along any of the four orientations visits
	// either all four residues (horizontal and both diagonals) or
	// alternates between two residues of different owners (vertical), so
	// no four-in-a-row ever forms.
	b := board.NewBoard()
	owner := func(c, r int) board.Player {
		if (c+2*r)%4 < 2 {
			return board.First
		}
		return board.Second
	}

	var err error
	for c := 0; c < board.Cols; c++ {
		for r := board.Rows - 1; r >= 0; r-- {
			b, _, err = b.Apply(owner(c, r), c)
			require.NoError(t, err)
		}
	}
	require.True(t, b.IsFull())

	_, ok := board.FindAnyWin(b)
	assert.False(t, ok)
}
