package board_test

import (
	"testing"

	"github.com/lineworks/connect4/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZobristHash_StableAcrossEqualBoards(t *testing.T) {
	a := board.NewBoard()
	b := board.NewBoard()
	var err error
	a, _, err = a.Apply(board.First, 3)
	require.NoError(t, err)
	b, _, err = b.Apply(board.First, 3)
	require.NoError(t, err)

	assert.Equal(t, a.Hash(board.First), b.Hash(board.First))
}

func TestZobristHash_DiffersOnDifferentBoards(t *testing.T) {
	a, _, err := board.NewBoard().Apply(board.First, 3)
	require.NoError(t, err)
	b, _, err := board.NewBoard().Apply(board.First, 4)
	require.NoError(t, err)

	assert.NotEqual(t, a.Hash(board.First), b.Hash(board.First))
}

func TestZobristHash_IndependentOfSideParameter(t *testing.T) {
	// The hash's required invariant is positional equality, not side; this
	// package keys transposition lookups on (hash, side) explicitly rather
	// than folding side into the hash itself.
	b, _, err := board.NewBoard().Apply(board.First, 3)
	require.NoError(t, err)

	assert.Equal(t, b.Hash(board.First), b.Hash(board.Second))
}
