package wire

import (
	"encoding/json"
	"fmt"

	"github.com/lineworks/connect4/pkg/board"
	"github.com/lineworks/connect4/pkg/neural"
	"github.com/lineworks/connect4/pkg/search"
)

// wireMove renders a board.Move as an int, or JSON null for board.NoMove.
func wireMove(m board.Move) *int {
	if m == board.NoMove {
		return nil
	}
	v := int(m)
	return &v
}

type wireEvaluation struct {
	Column   int     `json:"column"`
	Score    float64 `json:"score"`
	MoveType string  `json:"moveType"`
}

type wireSearchResponse struct {
	Move              *int             `json:"move"`
	Evaluations       []wireEvaluation `json:"evaluations"`
	NodesEvaluated    int64            `json:"nodes_evaluated"`
	TranspositionHits int64            `json:"transposition_hits"`
}

// EncodeSearchResponse renders a search.Decision (from BestMoveBySearch or
// HeuristicMove) as the §6.1 search response.
func EncodeSearchResponse(d search.Decision) ([]byte, error) {
	w := wireSearchResponse{
		Move:              wireMove(d.BestMove),
		Evaluations:       make([]wireEvaluation, len(d.Evaluations)),
		NodesEvaluated:    d.NodesEvaluated,
		TranspositionHits: d.TranspositionHits,
	}
	for i, e := range d.Evaluations {
		w.Evaluations[i] = wireEvaluation{
			Column:   e.Column,
			Score:    float64(e.Score),
			MoveType: string(e.MoveType),
		}
	}
	return json.Marshal(w)
}

type wireMoveEvaluation struct {
	Column int     `json:"column"`
	Score  float64 `json:"score"`
}

type wireDiagnostics struct {
	ValidMoves           []int                `json:"validMoves"`
	MoveEvaluations      []wireMoveEvaluation `json:"moveEvaluations"`
	ValueNetworkOutput   float64              `json:"valueNetworkOutput"`
	PolicyNetworkOutputs [board.Cols]float64  `json:"policyNetworkOutputs"`
}

type wireNeuralResponse struct {
	Move        *int            `json:"move"`
	Evaluation  float64         `json:"evaluation"`
	Thinking    string          `json:"thinking"`
	Diagnostics wireDiagnostics `json:"diagnostics"`
}

// EncodeNeuralResponse renders a neural.Decision (from NeuralMove) as the
// §6.1 neural response, given the legal columns of the position it was
// computed against (for the diagnostics.validMoves field).
func EncodeNeuralResponse(d neural.Decision, legal []int) ([]byte, error) {
	moveEvals := make([]wireMoveEvaluation, 0, len(legal))
	for _, c := range legal {
		moveEvals = append(moveEvals, wireMoveEvaluation{Column: c, Score: d.PerColumnScores[c]})
	}

	w := wireNeuralResponse{
		Move:       wireMove(d.BestMove),
		Evaluation: d.Evaluation,
		Thinking:   thinkingSummary(d),
		Diagnostics: wireDiagnostics{
			ValidMoves:           legal,
			MoveEvaluations:      moveEvals,
			ValueNetworkOutput:   d.ValueOutput,
			PolicyNetworkOutputs: d.PolicyOutputs,
		},
	}
	return json.Marshal(w)
}

func thinkingSummary(d neural.Decision) string {
	if d.BestMove == board.NoMove {
		return "no legal move"
	}
	return fmt.Sprintf("column %d favored, value network reads %.3f", int(d.BestMove), d.ValueOutput)
}
