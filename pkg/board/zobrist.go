package board

import "math/rand"

// ZobristHash is a stable position hash. Two boards hash to the same value
// iff they are identical. The hash intentionally does not fold in the
// side-to-move: per this package's contract, callers key caches on
// (ZobristHash, Player) explicitly rather than relying on the hash alone to
// disambiguate side -- see ZobristTable.Hash.
type ZobristHash uint64

// ZobristTable is a pseudo-randomized table for computing a position hash
// incrementally over (player, column, row) triples.
type ZobristTable struct {
	cells [NumPlayers][Cols][Rows]ZobristHash
}

// NewZobristTable builds a table from a fixed seed, so hashes are stable
// across runs of the same binary.
func NewZobristTable(seed int64) *ZobristTable {
	t := &ZobristTable{}
	r := rand.New(rand.NewSource(seed))

	for p := Player(0); p < NumPlayers; p++ {
		for c := 0; c < Cols; c++ {
			for row := 0; row < Rows; row++ {
				t.cells[p][c][row] = ZobristHash(r.Uint64())
			}
		}
	}
	return t
}

// Hash computes the zobrist hash for the board. The side parameter is
// accepted for interface symmetry with the specification's
// position_hash(board, side) contract, but does not affect the result --
// see the ZobristHash doc comment.
func (t *ZobristTable) Hash(b Board, side Player) ZobristHash {
	var h ZobristHash
	for c := 0; c < Cols; c++ {
		for row := 0; row < b.Height(c); row++ {
			cell := b.Cell(c, Rows-1-row)
			if p, ok := cell.Owner(); ok {
				h ^= t.cells[p][c][Rows-1-row]
			}
		}
	}
	return h
}

// DefaultZobristTable is shared across a process: the seed is fixed, so
// sharing it across independent Engine instances is safe and avoids
// reallocating the table per core.
var DefaultZobristTable = NewZobristTable(0)

// Hash computes the position hash for the board using DefaultZobristTable.
func (b Board) Hash(side Player) ZobristHash {
	return DefaultZobristTable.Hash(b, side)
}
