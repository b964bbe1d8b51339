package eval

import "github.com/lineworks/connect4/pkg/board"

// immediateThreatMultiplier is the factor by which a completable four found
// at an accessible (playable-now) cell outweighs one found at a cell that
// still needs a support piece. See the defensive term below for the
// unscaled latent-threat count.
const immediateThreatMultiplier = 100

// Evaluate scores board from the first player's perspective. sideToMove is
// accepted for symmetry with the search engine's call shape but does not
// flip the sign: the evaluator is side-invariant, and the caller negates at
// negamax ply boundaries.
//
// The terminal branch below is defensive: the search engine detects
// terminal positions before ever calling Evaluate, so in practice this
// branch is only exercised when Evaluate is called directly against an
// already-decided board.
func Evaluate(b board.Board, sideToMove board.Player, p Params) Score {
	if result, ok := terminalResult(b); ok {
		switch result.Status {
		case board.Won:
			if result.Winner == board.First {
				return Score(p.WinScore)
			}
			return Score(p.LossScore)
		case board.Drawn:
			return 0
		}
	}

	var sum float64
	sum += columnPositionalTerm(b, p)
	sum += centerControlTerm(b, p)
	sum += pieceCountTerm(b, p)
	sum += threatTerm(b, p)
	sum += mobilityTerm(b, p)
	sum += verticalControlTerm(b, p)
	sum += horizontalControlTerm(b, p)
	sum += defensiveTerm(b, p)

	return Score(int64(sum))
}

func terminalResult(b board.Board) (board.Result, bool) {
	if line, ok := board.FindAnyWin(b); ok {
		return board.Result{Status: board.Won, Winner: line.Player, Line: line}, true
	}
	if b.IsFull() {
		return board.Result{Status: board.Drawn}, true
	}
	return board.Result{}, false
}

// rowHeightWeight scales a cell's column value by how close to the floor
// it sits: the bottom row carries the full row_height_weight, and each row
// further up is down-weighted in equal steps, reaching one sixth at the
// top row.
func rowHeightWeight(r int, p Params) float64 {
	return float64(r+1) * p.RowHeightWeight / float64(board.Rows)
}

func columnPositionalTerm(b board.Board, p Params) float64 {
	var sum float64
	for c := 0; c < board.Cols; c++ {
		for r := 0; r < board.Rows; r++ {
			cell := b.Cell(c, r)
			if cell == board.Empty {
				continue
			}
			owner, _ := cell.Owner()
			v := float64(p.columnValue(c)) * rowHeightWeight(r, p)
			if owner == board.Second {
				v = -v
			}
			sum += v
		}
	}
	return sum
}

func centerControlTerm(b board.Board, p Params) float64 {
	const centerCol = 3
	p1, p2 := 0, 0
	for r := 0; r < board.Rows; r++ {
		switch owner, ok := b.Cell(centerCol, r).Owner(); {
		case !ok:
		case owner == board.First:
			p1++
		case owner == board.Second:
			p2++
		}
	}
	return float64(p1-p2) * p.CenterControlWeight
}

func pieceCountTerm(b board.Board, p Params) float64 {
	return float64(b.CountPlayer(board.First)-b.CountPlayer(board.Second)) * p.PieceCountWeight
}

// threatTerm counts, for each column's single accessible landing cell, the
// four-in-a-rows either player would complete by dropping there right now.
// Each such completion is an immediate winning move, weighted accordingly.
func threatTerm(b board.Board, p Params) float64 {
	p1Counts, p2Counts := ColumnThreatCounts(b)
	p1, p2 := 0, 0
	for c := 0; c < board.Cols; c++ {
		p1 += p1Counts[c]
		p2 += p2Counts[c]
	}
	return float64((p1-p2)*immediateThreatMultiplier) * p.ThreatWeight
}

// mobilityTerm is always zero: both players share the same set of legal
// columns in Connect Four. Retained so the parameter vector keeps the same
// shape as the teacher evaluator's.
func mobilityTerm(b board.Board, p Params) float64 {
	p1, p2 := len(b.LegalMoves()), len(b.LegalMoves())
	return float64(p1-p2) * p.MobilityWeight
}

func verticalControlTerm(b board.Board, p Params) float64 {
	var sum int
	for c := 0; c < board.Cols; c++ {
		p1, p2 := 0, 0
		for r := 0; r < board.Rows; r++ {
			switch owner, ok := b.Cell(c, r).Owner(); {
			case !ok:
			case owner == board.First:
				p1++
			case owner == board.Second:
				p2++
			}
		}
		sum += p1 - p2
	}
	return float64(sum) * p.VerticalControlWeight
}

func horizontalControlTerm(b board.Board, p Params) float64 {
	var sum int
	for r := 0; r < board.Rows; r++ {
		p1, p2 := 0, 0
		for c := 0; c < board.Cols; c++ {
			switch owner, ok := b.Cell(c, r).Owner(); {
			case !ok:
			case owner == board.First:
				p1++
			case owner == board.Second:
				p2++
			}
		}
		sum += p1 - p2
	}
	return float64(sum) * p.HorizontalControlWeight
}

// defensiveTerm counts completable fours at cells that are NOT yet
// accessible -- latent threats that still need a support piece underneath
// before either player could actually play them. Unlike threatTerm, these
// are not multiplied by immediateThreatMultiplier.
func defensiveTerm(b board.Board, p Params) float64 {
	p1, p2 := 0, 0
	for c := 0; c < board.Cols; c++ {
		for r := 0; r < board.Rows; r++ {
			if b.Cell(c, r) != board.Empty || isAccessible(b, c, r) {
				continue
			}
			p1 += completableThrough(b, c, r, board.First)
			p2 += completableThrough(b, c, r, board.Second)
		}
	}
	return float64(p1-p2) * p.DefensiveWeight
}
