package wire

import (
	"encoding/json"
	"fmt"

	"github.com/lineworks/connect4/pkg/board"
	"github.com/seekerror/stdlib/pkg/lang"
)

// Mode selects which of the façade's three decision methods a request
// wants. The §6.1 JSON schema's prose describes this as part of the
// logical request; the worked example omits it because a single host
// typically fixes one mode per endpoint, so it is optional here and
// defaults to ModeSearch.
type Mode string

const (
	ModeSearch    Mode = "search"
	ModeHeuristic Mode = "heuristic"
	ModeNeural    Mode = "neural"
)

// wireRequest mirrors the §6.1 JSON decision request.
type wireRequest struct {
	Board         [board.Cols][board.Rows]wireCell `json:"board"`
	CurrentPlayer wirePlayer                       `json:"current_player"`
	GeneticParams json.RawMessage                  `json:"genetic_params,omitempty"`
	Mode          Mode                             `json:"mode,omitempty"`
	Depth         *int                             `json:"depth,omitempty"`
}

// Request is the decoded, in-memory form of a §6.1 decision request. Depth
// is absent (the zero lang.Optional[int]) when the request omits it,
// leaving the choice of default depth to the engine.
type Request struct {
	Position board.Position
	Mode     Mode
	Depth    lang.Optional[int]

	// RawGeneticParams is the embedded §6.3 parameter artifact, if any, for
	// the caller to feed to the engine's LoadGeneticParameters. A request
	// with no genetic_params field decodes to a nil slice, which
	// DecodeParams (and hence LoadGeneticParameters) correctly treats as
	// malformed input and falls back to defaults for.
	RawGeneticParams []byte
}

// DecodeRequest parses a §6.1 decision request into in-memory types,
// translating the wire cell/player strings to board.Cell/board.Player and
// validating the resulting board (gravity, then piece-count/side-to-move
// consistency via board.NewPositionFromBoard).
func DecodeRequest(data []byte) (Request, error) {
	var w wireRequest
	if err := json.Unmarshal(data, &w); err != nil {
		return Request{}, fmt.Errorf("wire: decode request: %w", err)
	}

	var grid [board.Cols][board.Rows]board.Cell
	for c := 0; c < board.Cols; c++ {
		for r := 0; r < board.Rows; r++ {
			grid[c][r] = board.Cell(w.Board[c][r])
		}
	}

	b, err := board.FromGrid(grid)
	if err != nil {
		return Request{}, fmt.Errorf("wire: invalid board: %w", err)
	}

	pos, err := board.NewPositionFromBoard(b, board.Player(w.CurrentPlayer))
	if err != nil {
		return Request{}, err
	}

	mode := w.Mode
	if mode == "" {
		mode = ModeSearch
	}

	var depth lang.Optional[int]
	if w.Depth != nil {
		depth = lang.Some(*w.Depth)
	}

	return Request{
		Position:         pos,
		Mode:             mode,
		Depth:            depth,
		RawGeneticParams: w.GeneticParams,
	}, nil
}
