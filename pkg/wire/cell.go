// Package wire is the host-boundary-only JSON translation layer for §6.1's
// decision request and response schemas. Nothing under pkg/ besides
// cmd/-adjacent hosts should import this package: the core types
// (board.Board, board.Position, eval.Params, search.Decision,
// neural.Decision) are the only representation the engine itself knows
// about, and the stringly-typed cell/player values live only on the wire.
package wire

import (
	"encoding/json"
	"fmt"

	"github.com/lineworks/connect4/pkg/board"
)

// cellEmpty, cellPlayer1, and cellPlayer2 are the §6.1 wire spellings for
// board.Empty, board.P1, and board.P2.
const (
	cellEmpty   = "empty"
	cellPlayer1 = "player1"
	cellPlayer2 = "player2"
)

// wireCell round-trips a board.Cell through its §6.1 JSON string.
type wireCell board.Cell

func (c wireCell) MarshalJSON() ([]byte, error) {
	switch board.Cell(c) {
	case board.Empty:
		return json.Marshal(cellEmpty)
	case board.P1:
		return json.Marshal(cellPlayer1)
	case board.P2:
		return json.Marshal(cellPlayer2)
	default:
		return nil, fmt.Errorf("wire: unknown cell value %v", board.Cell(c))
	}
}

func (c *wireCell) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case cellEmpty:
		*c = wireCell(board.Empty)
	case cellPlayer1:
		*c = wireCell(board.P1)
	case cellPlayer2:
		*c = wireCell(board.P2)
	default:
		return fmt.Errorf("wire: unrecognized cell %q", s)
	}
	return nil
}

// wirePlayer round-trips a board.Player through its §6.1 JSON string.
type wirePlayer board.Player

func (p wirePlayer) MarshalJSON() ([]byte, error) {
	switch board.Player(p) {
	case board.First:
		return json.Marshal(cellPlayer1)
	case board.Second:
		return json.Marshal(cellPlayer2)
	default:
		return nil, fmt.Errorf("wire: unknown player value %v", board.Player(p))
	}
}

func (p *wirePlayer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case cellPlayer1:
		*p = wirePlayer(board.First)
	case cellPlayer2:
		*p = wirePlayer(board.Second)
	default:
		return fmt.Errorf("wire: unrecognized current_player %q", s)
	}
	return nil
}
