package search

import (
	"context"

	"github.com/lineworks/connect4/pkg/board"
	"github.com/lineworks/connect4/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Infinity bounds the alpha-beta window at the root. It is comfortably
// above any reachable evaluation (scores stay well under 2^40 by
// construction) and small enough that negation never overflows.
const Infinity eval.Score = 1 << 50

// Counters accumulates the node and transposition-table statistics for one
// decision, per §4.7's decision record contract. Cancelled is set if the
// inbound context was cancelled mid-search; per §5, depth is the only
// *required* search budget, but a host that wants to abandon a call early
// (e.g. the iterative-deepening pattern §5 describes at the host level)
// may cancel the context, and the partial result should be discarded.
type Counters struct {
	NodesEvaluated    int64
	TranspositionHits int64
	Cancelled         bool
}

// Negamax is the depth-limited alpha-beta search of §4.5. It holds no
// per-decision state beyond the transposition table, which may be nil to
// disable caching entirely.
type Negamax struct {
	TT     *Table
	Params eval.Params
}

// NewNegamax constructs a Negamax search bound to the given table (may be
// nil) and evaluation parameters.
func NewNegamax(tt *Table, params eval.Params) *Negamax {
	return &Negamax{TT: tt, Params: params}
}

// Search is the core recursion: terminal short-circuit with ply-adjusted
// mate scores, depth-0 heuristic evaluation, TT probe/store, and
// center-out exploration with TT-hint-first ordering.
func (n *Negamax) Search(ctx context.Context, pos board.Position, depth, ply int, alpha, beta eval.Score, c *Counters) eval.Score {
	if contextx.IsCancelled(ctx) {
		c.Cancelled = true
		return 0
	}
	c.NodesEvaluated++

	if pos.Result().Status != board.InPlay {
		return terminalScore(pos, ply, n.Params)
	}
	if depth == 0 {
		return signedHeuristic(pos, n.Params)
	}

	hash := pos.Board().Hash(pos.Turn())
	origAlpha, origBeta := alpha, beta

	hint := board.NoMove
	if n.TT != nil {
		result, score, move := n.TT.Probe(hash, pos.Turn(), depth, alpha, beta)
		switch result {
		case UsableScore:
			c.TranspositionHits++
			return score
		case HintOnly:
			hint = move
		}
	}

	legal := pos.LegalMoves()
	order := explorationOrder(legal, hint)

	bestScore := -Infinity
	bestMove := board.NoMove
	for _, col := range order {
		child, err := pos.Apply(col)
		if err != nil {
			continue // legal moves never fail to apply
		}

		s := -n.Search(ctx, child, depth-1, ply+1, -beta, -alpha, c)
		if s > bestScore {
			bestScore = s
			bestMove = board.Move(col)
		}
		if s > alpha {
			alpha = s
		}
		if alpha >= beta {
			break // beta cutoff
		}
	}

	if n.TT != nil {
		n.TT.Store(hash, pos.Turn(), depth, bestScore, BoundFrom(origAlpha, origBeta, bestScore), bestMove)
	}
	return bestScore
}

// terminalScore returns the ply-adjusted score of an already-terminal
// position from the perspective of the side to move at this node: a win
// for that side scores high and decreasing with distance (encouraging
// short wins), a loss scores low and increasing with distance (encouraging
// long losses), and a draw scores zero.
func terminalScore(pos board.Position, ply int, p eval.Params) eval.Score {
	result := pos.Result()
	switch result.Status {
	case board.Won:
		if result.Winner == pos.Turn() {
			return eval.Score(p.WinScore) - eval.Score(ply)
		}
		return eval.Score(p.LossScore) + eval.Score(ply)
	default: // Drawn
		return 0
	}
}

// signedHeuristic evaluates the position from the side-to-move's
// perspective, negating Evaluate's first-player-relative score as needed.
func signedHeuristic(pos board.Position, p eval.Params) eval.Score {
	s := eval.Evaluate(pos.Board(), pos.Turn(), p)
	if pos.Turn() == board.Second {
		return -s
	}
	return s
}
