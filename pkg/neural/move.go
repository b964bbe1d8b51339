package neural

import (
	"errors"

	"github.com/lineworks/connect4/pkg/board"
)

// ErrWeightsMissing indicates neural_move was called before a successful
// LoadWeights, per §7.
var ErrWeightsMissing = errors.New("neural weights not loaded")

// centerOutOrder breaks policy ties the same way the search package's
// static exploration order does.
var centerOutOrder = [board.Cols]int{3, 4, 2, 5, 1, 6, 0}

// Decision is the neural evaluator's decision record (§4.7): the chosen
// column plus the raw value and policy network outputs.
type Decision struct {
	BestMove        board.Move
	Evaluation      float64
	PerColumnScores [board.Cols]float64
	ValueOutput     float64
	PolicyOutputs   [board.Cols]float64
}

// Move implements §4.6's neural_move: encode features, run both networks,
// mask the policy to legal columns (falling back to a uniform distribution
// if every legal column scored zero), and pick the argmax with a
// center-out tie-break.
func Move(b board.Board, side board.Player, value *ValueWeights, policy *PolicyWeights) (Decision, error) {
	if value == nil || policy == nil {
		return Decision{}, ErrWeightsMissing
	}

	legal := b.LegalMoves()
	if len(legal) == 0 {
		return Decision{BestMove: board.NoMove}, nil
	}

	features := Encode(b, side)
	v := value.Forward(features)
	p := policy.Forward(features)

	legalSet := make(map[int]bool, len(legal))
	for _, c := range legal {
		legalSet[c] = true
	}

	var masked [board.Cols]float64
	var sum float64
	for c := 0; c < board.Cols; c++ {
		if legalSet[c] {
			masked[c] = p[c]
			sum += p[c]
		}
	}
	if sum == 0 {
		for _, c := range legal {
			masked[c] = 1.0 / float64(len(legal))
		}
	}

	bestScore := -1.0
	bestMove := board.NoMove
	for _, c := range centerOutOrder {
		if !legalSet[c] {
			continue
		}
		if masked[c] > bestScore {
			bestScore = masked[c]
			bestMove = board.Move(c)
		}
	}

	return Decision{
		BestMove:        bestMove,
		Evaluation:      v,
		PerColumnScores: masked,
		ValueOutput:     v,
		PolicyOutputs:   p,
	}, nil
}
