package search

import (
	"sort"

	"github.com/lineworks/connect4/pkg/board"
	"github.com/lineworks/connect4/pkg/eval"
)

// HeuristicMove implements §4.7's heuristic_move: a direct one-ply scan,
// evaluating each legal reply with the heuristic (or its ply-adjusted
// terminal score, if the reply itself ends the game) rather than
// recursing through Negamax. No transposition table is involved.
func HeuristicMove(pos board.Position, params eval.Params) Decision {
	legal := pos.LegalMoves()
	if len(legal) == 0 {
		return Decision{BestMove: board.NoMove}
	}

	evaluations := make([]ColumnEvaluation, 0, len(legal))
	bestScore := -Infinity
	bestMove := board.NoMove
	var nodes int64

	for _, col := range explorationOrder(legal, board.NoMove) {
		child, err := pos.Apply(col)
		if err != nil {
			continue
		}
		nodes++

		var childScore eval.Score
		if child.Result().Status != board.InPlay {
			childScore = terminalScore(child, 1, params)
		} else {
			childScore = signedHeuristic(child, params)
		}
		s := -childScore

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
		BestMove:       bestMove,
		Evaluations:    evaluations,
		NodesEvaluated: nodes,
	}
}
