package search

import "github.com/lineworks/connect4/pkg/board"

// centerOutOrder is the static move preference used to break ties and to
// order columns with no transposition hint: center column first, then
// outward in alternating steps.
var centerOutOrder = [board.Cols]int{3, 4, 2, 5, 1, 6, 0}

// explorationOrder builds a node's candidate move list: the transposition
// hint first if it is legal here, then the remaining legal columns in
// center-out order with the hint removed.
func explorationOrder(legal []int, hint board.Move) []int {
	legalSet := make(map[int]bool, len(legal))
	for _, c := range legal {
		legalSet[c] = true
	}

	order := make([]int, 0, len(legal))
	if hint != board.NoMove && legalSet[int(hint)] {
		order = append(order, int(hint))
	}
	for _, c := range centerOutOrder {
		if c == int(hint) {
			continue
		}
		if legalSet[c] {
			order = append(order, c)
		}
	}
	return order
}
