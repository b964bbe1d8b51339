package search_test

import (
	"context"
	"testing"

	"github.com/lineworks/connect4/pkg/board"
	"github.com/lineworks/connect4/pkg/eval"
	"github.com/lineworks/connect4/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenario_ImmediateHorizontalWin covers S1: three in a row for the
// side to move, open on one end, must be taken immediately.
func TestScenario_ImmediateHorizontalWin(t *testing.T) {
	b, _, err := board.NewBoard().Apply(board.First, 0)
	require.NoError(t, err)
	b, _, err = b.Apply(board.First, 1)
	require.NoError(t, err)
	b, _, err = b.Apply(board.First, 2)
	require.NoError(t, err)
	b, _, err = b.Apply(board.Second, 4)
	require.NoError(t, err)
	b, _, err = b.Apply(board.Second, 4)
	require.NoError(t, err)
	b, _, err = b.Apply(board.Second, 4)
	require.NoError(t, err)

	pos, err := board.NewPositionFromBoard(b, board.First)
	require.NoError(t, err)

	decision := search.BestMove(context.Background(), pos, 3, nil, eval.DefaultParams())
	assert.Equal(t, board.Move(3), decision.BestMove)

	after, err := pos.Apply(3)
	require.NoError(t, err)
	require.Equal(t, board.Won, after.Result().Status)
	assert.Equal(t, board.Horizontal, after.Result().Line.Orientation)
}

// TestScenario_ImmediateBlock covers S2: the opponent threatens an
// immediate horizontal win and must be blocked.
func TestScenario_ImmediateBlock(t *testing.T) {
	b, _, err := board.NewBoard().Apply(board.Second, 0)
	require.NoError(t, err)
	b, _, err = b.Apply(board.Second, 1)
	require.NoError(t, err)
	b, _, err = b.Apply(board.Second, 2)
	require.NoError(t, err)
	b, _, err = b.Apply(board.First, 5)
	require.NoError(t, err)
	b, _, err = b.Apply(board.First, 5)
	require.NoError(t, err)
	b, _, err = b.Apply(board.First, 6)
	require.NoError(t, err)

	pos, err := board.NewPositionFromBoard(b, board.First)
	require.NoError(t, err)

	decision := search.BestMove(context.Background(), pos, 3, nil, eval.DefaultParams())
	assert.Equal(t, board.Move(3), decision.BestMove)
}

// TestScenario_VerticalThreat covers S3: a vertical three-in-a-row must be
// completed immediately.
func TestScenario_VerticalThreat(t *testing.T) {
	b, _, err := board.NewBoard().Apply(board.First, 3)
	require.NoError(t, err)
	b, _, err = b.Apply(board.First, 3)
	require.NoError(t, err)
	b, _, err = b.Apply(board.First, 3)
	require.NoError(t, err)
	b, _, err = b.Apply(board.Second, 0)
	require.NoError(t, err)
	b, _, err = b.Apply(board.Second, 2)
	require.NoError(t, err)
	b, _, err = b.Apply(board.Second, 5)
	require.NoError(t, err)

	pos, err := board.NewPositionFromBoard(b, board.First)
	require.NoError(t, err)

	decision := search.BestMove(context.Background(), pos, 3, nil, eval.DefaultParams())
	assert.Equal(t, board.Move(3), decision.BestMove)

	after, err := pos.Apply(3)
	require.NoError(t, err)
	require.Equal(t, board.Won, after.Result().Status)
	line := after.Result().Line
	assert.Equal(t, board.Vertical, line.Orientation)
	assert.ElementsMatch(t, []board.Coord{{Col: 3, Row: 5}, {Col: 3, Row: 4}, {Col: 3, Row: 3}, {Col: 3, Row: 2}}, line.Cells[:])
}

// TestScenario_EmptyBoardFirstMove covers S5: on an empty board the
// center-out tie-break makes column 3 the unique best move.
func TestScenario_EmptyBoardFirstMove(t *testing.T) {
	tt := search.NewTable(context.Background(), search.DefaultTableBytes)
	decision := search.BestMove(context.Background(), board.NewPosition(), 6, tt, eval.DefaultParams())
	assert.Equal(t, board.Move(3), decision.BestMove)
}

// TestScenario_DrawnGameReportsNoMove covers S6: a full, non-winning board
// reports a drawn status and every decision function reports no move.
func TestScenario_DrawnGameReportsNoMove(t *testing.T) {
	var grid [board.Cols][board.Rows]board.Cell
	for c := 0; c < board.Cols; c++ {
		for r := 0; r < board.Rows; r++ {
			if (c+2*r)%4 < 2 {
				grid[c][r] = board.P1
			} else {
				grid[c][r] = board.P2
			}
		}
	}
	b, err := board.FromGrid(grid)
	require.NoError(t, err)

	pos, err := board.NewPositionFromBoard(b, board.First)
	require.NoError(t, err)
	require.Equal(t, board.Drawn, pos.Result().Status)

	decision := search.BestMove(context.Background(), pos, 4, nil, eval.DefaultParams())
	assert.Equal(t, board.NoMove, decision.BestMove)

	h := search.HeuristicMove(pos, eval.DefaultParams())
	assert.Equal(t, board.NoMove, h.BestMove)
}
