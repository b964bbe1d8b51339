package search

import (
	"github.com/lineworks/connect4/pkg/board"
	"github.com/lineworks/connect4/pkg/eval"
)

// MoveType tags a per-column evaluation as decisive or contested.
type MoveType string

const (
	MoveWinning MoveType = "winning"
	MoveLosing  MoveType = "losing"
	MoveNormal  MoveType = "normal"
)

// mateMargin is the tolerance below a win score (or above a loss score)
// within which a root evaluation is still classified as decisive, since
// ply-adjusted mate scores are rarely exactly win_score/loss_score.
const mateMargin = 100

// ColumnEvaluation is one legal column's root-level search result.
type ColumnEvaluation struct {
	Column   int
	Score    Score
	MoveType MoveType
}

// Score aliases eval.Score at the search package boundary so callers of
// this package need not import eval just to read a Decision.
type Score = eval.Score

// Decision is the result record of the search-based façade decision
// methods, best_move_by_search and heuristic_move. neural_move returns
// neural.Decision instead.
type Decision struct {
	BestMove          board.Move
	Evaluations       []ColumnEvaluation
	NodesEvaluated    int64
	TranspositionHits int64
	// Cancelled is true if the call was abandoned due to context
	// cancellation; the host should discard the rest of the Decision.
	Cancelled bool
}

func classify(s Score, winScore, lossScore int64) MoveType {
	switch {
	case int64(s) >= winScore-mateMargin:
		return MoveWinning
	case int64(s) <= lossScore+mateMargin:
		return MoveLosing
	default:
		return MoveNormal
	}
}
