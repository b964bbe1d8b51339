package search

import (
	"context"
	"sort"

	"github.com/lineworks/connect4/pkg/board"
	"github.com/lineworks/connect4/pkg/eval"
)

// BestMove implements §4.5's root call: one negamax call per legal column,
// with the best move and per-column evaluations reported synchronously.
// An empty legal-move set (a terminal position) reports a no-op Decision.
// A cancelled ctx abandons the call per Counters.Cancelled's contract; the
// host must discard the returned Decision in that case.
func BestMove(ctx context.Context, pos board.Position, depth int, tt *Table, params eval.Params) Decision {
	legal := pos.LegalMoves()
	if len(legal) == 0 {
		return Decision{BestMove: board.NoMove}
	}
	if depth < 1 {
		depth = 1
	}

	n := NewNegamax(tt, params)
	counters := &Counters{}

	evaluations := make([]ColumnEvaluation, 0, len(legal))
	bestScore := -Infinity
	bestMove := board.NoMove

	for _, col := range explorationOrder(legal, board.NoMove) {
		child, err := pos.Apply(col)
		if err != nil {
			continue
		}

		s := -n.Search(ctx, child, depth-1, 1, -Infinity, Infinity, counters)
		evaluations = append(evaluations, ColumnEvaluation{
			Column:   col,
			Score:    s,
			MoveType: classify(s, params.WinScore, params.LossScore),
		})
		if s > bestScore {
			bestScore = s
			bestMove = board.Move(col)
		}
	}

	sort.Slice(evaluations, func(i, j int) bool { return evaluations[i].Column < evaluations[j].Column })

	return Decision{
		BestMove:          bestMove,
		Evaluations:       evaluations,
		NodesEvaluated:    counters.NodesEvaluated,
		TranspositionHits: counters.TranspositionHits,
		Cancelled:         counters.Cancelled,
	}
}
