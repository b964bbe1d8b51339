package eval

import (
	"testing"

	"github.com/lineworks/connect4/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAccessible_BottomRowOnEmptyBoard(t *testing.T) {
	b := board.NewBoard()
	assert.True(t, isAccessible(b, 0, board.Rows-1))
	assert.False(t, isAccessible(b, 0, board.Rows-2))
}

func TestIsAccessible_CellAboveAnOccupiedOne(t *testing.T) {
	b, _, err := board.NewBoard().Apply(board.First, 3)
	require.NoError(t, err)
	assert.True(t, isAccessible(b, 3, board.Rows-2))
	assert.False(t, isAccessible(b, 3, board.Rows-3))
}

func TestCompletableThrough_HorizontalThreeWithOpenFourth(t *testing.T) {
	b, _, err := board.NewBoard().Apply(board.First, 0)
	require.NoError(t, err)
	b, _, err = b.Apply(board.First, 1)
	require.NoError(t, err)
	b, _, err = b.Apply(board.First, 2)
	require.NoError(t, err)

	assert.Equal(t, 1, completableThrough(b, 3, board.Rows-1, board.First))
	assert.Equal(t, 0, completableThrough(b, 3, board.Rows-1, board.Second))
}

func TestCompletableThrough_OutOfBoundsWindowDoesNotCount(t *testing.T) {
	b := board.NewBoard()
	// Column 0's only possible horizontal windows through the bottom row all
	// require columns -3..-1 or similarly run off the left edge unless the
	// window starts within bounds; an empty board has no completions at all.
	assert.Equal(t, 0, completableThrough(b, 0, board.Rows-1, board.First))
}
