package engine

import "errors"

// ErrWeightsMissing is returned by NeuralMove when no neural weights have
// been successfully loaded yet, per §7 -- hosts are expected to fall back
// to BestMoveBySearch or HeuristicMove.
var ErrWeightsMissing = errors.New("neural weights not loaded")

// ErrInternalInvariant names a defect in the core's own bookkeeping -- a
// negative node counter, an impossible transposition-table hit -- rather
// than bad input. No façade method returns it: the engine performs no such
// invariant checks and does not clear the transposition table on its own.
var ErrInternalInvariant = errors.New("internal invariant violation")
