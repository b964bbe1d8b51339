// Package engine implements the C7 façade: a single encapsulated instance
// owning the transposition table, evaluation parameters, and neural
// weights, exposing the three decision methods a host calls and the
// lifecycle methods that load or clear that state.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/lineworks/connect4/pkg/board"
	"github.com/lineworks/connect4/pkg/eval"
	"github.com/lineworks/connect4/pkg/neural"
	"github.com/lineworks/connect4/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// Options are engine-wide defaults, overridable per decision call.
type Options struct {
	// Depth is the default search depth for BestMoveBySearch.
	Depth int
	// TableBytes is the transposition-table size in bytes.
	TableBytes uint64
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v, tableBytes=%v}", o.Depth, o.TableBytes)
}

// Engine is the C7 façade. There is no hidden process-global state: the
// host constructs and destroys an instance explicitly, and every method
// takes its position as an explicit argument.
type Engine struct {
	name, author string
	opts         Options

	mu     sync.Mutex
	tt     *search.Table
	params eval.Params
	value  *neural.ValueWeights
	policy *neural.PolicyWeights
}

// Option is an engine construction option.
type Option func(*Engine)

// WithTable overrides the default transposition-table size (§3's
// "implementation parameter, >= 2^20 recommended").
func WithTable(sizeBytes uint64) Option {
	return func(e *Engine) { e.opts.TableBytes = sizeBytes }
}

// WithOptions sets the default decision options.
func WithOptions(opts Options) Option {
	return func(e *Engine) { e.opts = opts }
}

// New constructs an Engine with default parameters and an empty
// transposition table. Neural weights are unset until LoadNeuralWeights
// succeeds; calling NeuralMove before that returns ErrWeightsMissing.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:   name,
		author: author,
		opts:   Options{Depth: 6, TableBytes: search.DefaultTableBytes},
		params: eval.DefaultParams(),
	}
	for _, fn := range opts {
		fn(e)
	}
	e.tt = search.NewTable(ctx, e.opts.TableBytes)

	logw.Infof(ctx, "Initialized engine %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// BestMoveBySearch runs negamax to depth (or the engine default if depth
// <= 0) using the currently loaded parameters and transposition table.
func (e *Engine) BestMoveBySearch(ctx context.Context, pos board.Position, depth int) search.Decision {
	e.mu.Lock()
	defer e.mu.Unlock()

	if depth <= 0 {
		depth = e.opts.Depth
	}
	d := search.BestMove(ctx, pos, depth, e.tt, e.params)
	logw.Infof(ctx, "BestMoveBySearch depth=%v: move=%v nodes=%v ttHits=%v", depth, d.BestMove, d.NodesEvaluated, d.TranspositionHits)
	return d
}

// HeuristicMove runs the one-ply heuristic scan, bypassing the
// transposition table entirely.
func (e *Engine) HeuristicMove(ctx context.Context, pos board.Position) search.Decision {
	e.mu.Lock()
	defer e.mu.Unlock()

	d := search.HeuristicMove(pos, e.params)
	logw.Infof(ctx, "HeuristicMove: move=%v nodes=%v", d.BestMove, d.NodesEvaluated)
	return d
}

// NeuralMove runs the dual-head network on pos. Returns ErrWeightsMissing
// if LoadNeuralWeights has never succeeded.
func (e *Engine) NeuralMove(ctx context.Context, pos board.Position) (neural.Decision, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.value == nil || e.policy == nil {
		return neural.Decision{}, ErrWeightsMissing
	}

	d, err := neural.Move(pos.Board(), pos.Turn(), e.value, e.policy)
	if err != nil {
		return neural.Decision{}, err
	}
	logw.Infof(ctx, "NeuralMove: move=%v value=%v", d.BestMove, d.ValueOutput)
	return d, nil
}

// LoadNeuralWeights parses and installs a §6.2 weight artifact. Per §7, a
// malformed artifact leaves any previously-loaded weights intact rather
// than partially overwriting them.
func (e *Engine) LoadNeuralWeights(ctx context.Context, artifact []byte) error {
	value, policy, err := neural.LoadWeights(artifact)
	if err != nil {
		logw.Errorf(ctx, "LoadNeuralWeights failed, keeping previous weights: %v", err)
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.value, e.policy = value, policy

	logw.Infof(ctx, "Loaded neural weights")
	return nil
}

// LoadGeneticParameters parses a §6.3 parameter artifact, falling back to
// defaults and logging a warning on the host's log channel if the
// artifact is missing or malformed, per §7's ParamsMalformed handling.
func (e *Engine) LoadGeneticParameters(ctx context.Context, artifact []byte) {
	p, err := eval.DecodeParams(artifact)
	if err != nil {
		logw.Warningf(ctx, "LoadGeneticParameters malformed, falling back to defaults: %v", err)
		p = eval.DefaultParams()
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.params = p
}

// Params returns the currently loaded evaluation parameters.
func (e *Engine) Params() eval.Params {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.params
}

// ClearTranspositionTable discards all cached entries, per §7's
// InternalInvariant handling and the host-facing explicit-clear contract
// of §3.
func (e *Engine) ClearTranspositionTable() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tt.Clear()
}

// TranspositionTableSize reports the table's capacity in bytes and current
// fill fraction.
func (e *Engine) TranspositionTableSize() (sizeBytes uint64, used float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tt.Size(), e.tt.Used()
}
