package eval_test

import (
	"testing"

	"github.com/lineworks/connect4/pkg/board"
	"github.com/lineworks/connect4/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_EmptyBoardIsZero(t *testing.T) {
	got := eval.Evaluate(board.NewBoard(), board.First, eval.DefaultParams())
	assert.EqualValues(t, 0, got)
}

func TestEvaluate_PlayerSwapNegatesScore(t *testing.T) {
	b, _, err := board.NewBoard().Apply(board.First, 3)
	require.NoError(t, err)
	b, _, err = b.Apply(board.Second, 2)
	require.NoError(t, err)
	b, _, err = b.Apply(board.First, 3)
	require.NoError(t, err)

	p := eval.DefaultParams()
	original := eval.Evaluate(b, board.First, p)
	swapped := eval.Evaluate(swapPlayers(t, b), board.First, p)

	assert.EqualValues(t, -original, swapped)
}

func TestEvaluate_HorizontalMirrorPreservesScore(t *testing.T) {
	b, _, err := board.NewBoard().Apply(board.First, 1)
	require.NoError(t, err)
	b, _, err = b.Apply(board.Second, 1)
	require.NoError(t, err)
	b, _, err = b.Apply(board.First, 5)
	require.NoError(t, err)

	p := eval.DefaultParams()
	original := eval.Evaluate(b, board.First, p)
	mirrored := eval.Evaluate(mirrorColumns(t, b), board.First, p)

	assert.EqualValues(t, original, mirrored)
}

func TestEvaluate_ImmediateThreatOutweighsPositional(t *testing.T) {
	p := eval.DefaultParams()

	withThreat, _, err := board.NewBoard().Apply(board.First, 0)
	require.NoError(t, err)
	withThreat, _, err = withThreat.Apply(board.Second, 0)
	require.NoError(t, err)
	withThreat, _, err = withThreat.Apply(board.First, 1)
	require.NoError(t, err)
	withThreat, _, err = withThreat.Apply(board.Second, 1)
	require.NoError(t, err)
	withThreat, _, err = withThreat.Apply(board.First, 2)
	require.NoError(t, err)

	withoutThreat, _, err := board.NewBoard().Apply(board.First, 0)
	require.NoError(t, err)
	withoutThreat, _, err = withoutThreat.Apply(board.Second, 0)
	require.NoError(t, err)
	withoutThreat, _, err = withoutThreat.Apply(board.First, 1)
	require.NoError(t, err)
	withoutThreat, _, err = withoutThreat.Apply(board.Second, 1)
	require.NoError(t, err)
	withoutThreat, _, err = withoutThreat.Apply(board.Second, 5)
	require.NoError(t, err)

	scoreWithThreat := eval.Evaluate(withThreat, board.Second, p)
	scoreWithoutThreat := eval.Evaluate(withoutThreat, board.Second, p)

	assert.Greater(t, int64(scoreWithThreat), int64(scoreWithoutThreat))
}

// swapPlayers rebuilds b with every piece's owner swapped, for testing the
// evaluator's player-swap antisymmetry.
func swapPlayers(t *testing.T, b board.Board) board.Board {
	t.Helper()
	var grid [board.Cols][board.Rows]board.Cell
	for c := 0; c < board.Cols; c++ {
		for r := 0; r < board.Rows; r++ {
			switch b.Cell(c, r) {
			case board.P1:
				grid[c][r] = board.P2
			case board.P2:
				grid[c][r] = board.P1
			default:
				grid[c][r] = board.Empty
			}
		}
	}
	swapped, err := board.FromGrid(grid)
	require.NoError(t, err)
	return swapped
}

// mirrorColumns rebuilds b with column c relabeled to Cols-1-c, for testing
// the evaluator's left-right symmetry.
func mirrorColumns(t *testing.T, b board.Board) board.Board {
	t.Helper()
	var grid [board.Cols][board.Rows]board.Cell
	for c := 0; c < board.Cols; c++ {
		for r := 0; r < board.Rows; r++ {
			grid[board.Cols-1-c][r] = b.Cell(c, r)
		}
	}
	mirrored, err := board.FromGrid(grid)
	require.NoError(t, err)
	return mirrored
}
