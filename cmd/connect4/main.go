// connect4 is the native CLI for offline validation of the decision
// engine: self-play summaries and genetic-parameter round-trip checks.
// See cmd/connect4-ws for the interactive decision-serving binary.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"reflect"
	"strconv"

	"github.com/lineworks/connect4/pkg/board"
	"github.com/lineworks/connect4/pkg/engine"
	"github.com/lineworks/connect4/pkg/eval"
	"github.com/seekerror/logw"
)

var (
	depth = flag.Int("depth", 6, "Search depth for self-play games")
	out   = flag.String("out", "params.json", "Output artifact path for evolve_params")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: connect4 <command> [args]

Commands:
  train evaluate N   play N self-play games and print a summary line
  evolve_params      round-trip the default parameters through the artifact codec

Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)
	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	ctx := context.Background()

	switch flag.Arg(0) {
	case "train":
		if flag.Arg(1) != "evaluate" {
			flag.Usage()
			os.Exit(1)
		}
		n, err := strconv.Atoi(flag.Arg(2))
		if err != nil || n <= 0 {
			flag.Usage()
			os.Exit(1)
		}
		trainEvaluate(ctx, n)

	case "evolve_params":
		evolveParams(ctx)

	default:
		flag.Usage()
		os.Exit(1)
	}
}

// trainEvaluate plays n self-play games with the current engine and
// default parameters, clearing the transposition table between games so
// each game's node count is independent of prior games.
func trainEvaluate(ctx context.Context, n int) {
	e := engine.New(ctx, "connect4", "lineworks", engine.WithOptions(engine.Options{Depth: *depth}))

	var firstWins, secondWins, draws int
	var totalNodes int64

	for i := 0; i < n; i++ {
		pos := board.NewPosition()
		for pos.Result().Status == board.InPlay {
			d := e.BestMoveBySearch(ctx, pos, *depth)
			totalNodes += d.NodesEvaluated
			if d.BestMove == board.NoMove {
				break
			}
			next, err := pos.Apply(int(d.BestMove))
			if err != nil {
				logw.Exitf(ctx, "self-play move failed: %v", err)
			}
			pos = next
		}

		switch pos.Result().Status {
		case board.Won:
			if pos.Result().Winner == board.First {
				firstWins++
			} else {
				secondWins++
			}
		case board.Drawn:
			draws++
		}
		e.ClearTranspositionTable()
	}

	meanNodes := float64(totalNodes) / float64(n)
	fmt.Printf("train evaluate,%d,first_wins=%d,second_wins=%d,draws=%d,mean_nodes=%.1f\n", n, firstWins, secondWins, draws, meanNodes)
	os.Exit(0)
}

// evolveParams performs the in-scope half of §6.4's contract: the genetic
// evolution search itself is out of scope (§1), so this round-trips
// DefaultParams() through the §6.3 artifact codec, writes the result to
// -out, and exits 0 iff the round-trip was exact.
func evolveParams(ctx context.Context) {
	defaults := eval.DefaultParams()

	encoded, err := defaults.Encode()
	if err != nil {
		logw.Errorf(ctx, "evolve_params: encode failed: %v", err)
		os.Exit(2)
	}

	decoded, err := eval.DecodeParams(encoded)
	if err != nil {
		logw.Errorf(ctx, "evolve_params: decode failed: %v", err)
		os.Exit(2)
	}

	if err := os.WriteFile(*out, encoded, 0o644); err != nil {
		logw.Errorf(ctx, "evolve_params: write %v failed: %v", *out, err)
		os.Exit(2)
	}

	if !reflect.DeepEqual(decoded, defaults) {
		logw.Errorf(ctx, "evolve_params: round-trip mismatch")
		os.Exit(1)
	}

	fmt.Printf("evolve_params: wrote %v, round-trip OK\n", *out)
	os.Exit(0)
}
