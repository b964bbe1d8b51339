package neural

import (
	"github.com/lineworks/connect4/pkg/board"
	"github.com/lineworks/connect4/pkg/eval"
)

// threatClip is the per-column completable-threat count ceiling used when
// normalizing the threat-count features, chosen generously above the
// number of orientations through a single cell (4) to avoid saturating on
// any reachable board.
const threatClip = 8

// Encode builds the fixed F=107-wide feature vector for (b, side): 84
// occupancy values (42 cells x 2 planes), 7 per-column free-space fraction
// values (empty cells / Rows), 2 side-to-move one-hot values, and 14 per-column threat-count
// values (7 columns x 2 players), in that order.
func Encode(b board.Board, side board.Player) []float64 {
	f := make([]float64, 0, FeatureWidth)

	for c := 0; c < board.Cols; c++ {
		for r := 0; r < board.Rows; r++ {
			f = append(f, boolFloat(b.Cell(c, r) == board.P1))
		}
	}
	for c := 0; c < board.Cols; c++ {
		for r := 0; r < board.Rows; r++ {
			f = append(f, boolFloat(b.Cell(c, r) == board.P2))
		}
	}

	for c := 0; c < board.Cols; c++ {
		f = append(f, float64(board.Rows-b.Height(c))/float64(board.Rows))
	}

	f = append(f, boolFloat(side == board.First), boolFloat(side == board.Second))

	p1Counts, p2Counts := eval.ColumnThreatCounts(b)
	for c := 0; c < board.Cols; c++ {
		f = append(f, clipNormalize(p1Counts[c]))
	}
	for c := 0; c < board.Cols; c++ {
		f = append(f, clipNormalize(p2Counts[c]))
	}

	return f
}

func boolFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func clipNormalize(n int) float64 {
	if n > threatClip {
		n = threatClip
	}
	return float64(n) / float64(threatClip)
}
