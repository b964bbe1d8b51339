// Package search implements the negamax decision engine (C5) and its
// transposition table (C4).
package search

import (
	"context"
	"fmt"
	"math/bits"
	"sync/atomic"
	"unsafe"

	"github.com/lineworks/connect4/pkg/board"
	"github.com/lineworks/connect4/pkg/eval"
	"github.com/seekerror/logw"
)

// Bound tags the precision of a stored score relative to the alpha-beta
// window it was computed under.
type Bound uint8

const (
	ExactBound Bound = iota
	LowerBound
	UpperBound
)

func (b Bound) String() string {
	switch b {
	case ExactBound:
		return "exact"
	case LowerBound:
		return "lower"
	case UpperBound:
		return "upper"
	default:
		return "?"
	}
}

// ProbeResult is the tri-state outcome of a transposition table probe.
type ProbeResult uint8

const (
	// Miss means the table has nothing for this (hash, side).
	Miss ProbeResult = iota
	// HintOnly means a best-move hint is available for move ordering, but
	// the stored score cannot be used directly at the requested depth/window.
	HintOnly
	// UsableScore means the stored score may be returned directly.
	UsableScore
)

// entry is one transposition table record, 40 bytes.
type entry struct {
	hash  board.ZobristHash
	side  board.Player
	bound Bound
	depth int
	score eval.Score
	move  board.Move
}

// Table is a fixed-capacity, open-addressed transposition table keyed on
// (position hash, side to move), per §3's required invariant that the
// Zobrist hash alone does not distinguish side to move. Slots are updated
// via atomic pointer swap, so a Table is safe for concurrent Probe/Store --
// though per the one-core-one-decision-at-a-time model, concurrent use
// across decisions is not expected, only safe.
type Table struct {
	slots []unsafe.Pointer // *entry
	mask  uint64
	used  int64
}

// NewTable allocates a table sized to fit within the given byte budget,
// rounded down to a power-of-two entry count.
func NewTable(ctx context.Context, sizeBytes uint64) *Table {
	const entrySize = 40
	capacity := sizeBytes / entrySize
	n := uint64(1)
	if capacity > 1 {
		n = uint64(1) << (63 - bits.LeadingZeros64(capacity))
	}

	logw.Infof(ctx, "allocating transposition table: %v entries (%v bytes)", n, n*entrySize)

	return &Table{
		slots: make([]unsafe.Pointer, n),
		mask:  n - 1,
	}
}

// DefaultTableBytes is the byte budget behind ≥2^20 entries at 40 bytes each.
const DefaultTableBytes = uint64(1<<20) * 40

// Size returns the table's capacity in bytes.
func (t *Table) Size() uint64 {
	return uint64(len(t.slots)) * 40
}

// Used returns the fraction of slots occupied, in [0, 1].
func (t *Table) Used() float64 {
	return float64(atomic.LoadInt64(&t.used)) / float64(len(t.slots))
}

// Clear empties the table.
func (t *Table) Clear() {
	for i := range t.slots {
		atomic.StorePointer(&t.slots[i], nil)
	}
	atomic.StoreInt64(&t.used, 0)
}

func (t *Table) slot(hash board.ZobristHash) *unsafe.Pointer {
	return &t.slots[uint64(hash)&t.mask]
}

func (t *Table) load(hash board.ZobristHash) *entry {
	return (*entry)(atomic.LoadPointer(t.slot(hash)))
}

// Probe implements §4.4's tri-state probe semantics against the current
// alpha-beta window.
func (t *Table) Probe(hash board.ZobristHash, side board.Player, depth int, alpha, beta eval.Score) (ProbeResult, eval.Score, board.Move) {
	e := t.load(hash)
	if e == nil || e.hash != hash || e.side != side {
		return Miss, 0, board.NoMove
	}
	if e.depth < depth {
		return HintOnly, 0, e.move
	}
	switch {
	case e.bound == ExactBound:
		return UsableScore, e.score, e.move
	case e.bound == LowerBound && e.score >= beta:
		return UsableScore, e.score, e.move
	case e.bound == UpperBound && e.score <= alpha:
		return UsableScore, e.score, e.move
	default:
		return HintOnly, 0, e.move
	}
}

// Store writes an entry, applying §4.4's replacement policy: replace iff
// the new entry is at least as deep as the stored one, or the new entry is
// exact and the stored one is not.
func (t *Table) Store(hash board.ZobristHash, side board.Player, depth int, score eval.Score, bound Bound, move board.Move) {
	addr := t.slot(hash)
	fresh := &entry{hash: hash, side: side, bound: bound, depth: depth, score: score, move: move}

	for {
		old := (*entry)(atomic.LoadPointer(addr))
		if old != nil && old.depth > depth && !(bound == ExactBound && old.bound != ExactBound) {
			return
		}
		if atomic.CompareAndSwapPointer(addr, unsafe.Pointer(old), unsafe.Pointer(fresh)) {
			if old == nil {
				atomic.AddInt64(&t.used, 1)
			}
			return
		}
	}
}

func (t *Table) String() string {
	return fmt.Sprintf("TT[%d entries @ %d%% used]", len(t.slots), int(100*t.Used()))
}

// BoundFrom derives the stored bound kind from the original alpha-beta
// window and the final node score, per §4.4's store semantics.
func BoundFrom(origAlpha, origBeta, score eval.Score) Bound {
	switch {
	case score <= origAlpha:
		return UpperBound
	case score >= origBeta:
		return LowerBound
	default:
		return ExactBound
	}
}
