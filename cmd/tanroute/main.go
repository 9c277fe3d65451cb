// Command tanroute reads a route query in the tan text format and prints
// the labels of the shortest route, one per line, or IMPOSSIBLE.
//
//	tanroute < network.txt
//	tanroute -in network.txt -strategy heap -v
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/tanroute/dijkstra"
	"github.com/katalvlaran/tanroute/internal/planner"
	"github.com/katalvlaran/tanroute/tan"
)

var (
	in       = flag.String("in", "", "input file (default stdin)")
	strategy = flag.String("strategy", "linear", "minimum selection: linear or heap")
	verbose  = flag.Bool("v", false, "log search details to stderr")
)

func main() {
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(context.Background(), logger, os.Stdout); err != nil {
		logger.Error("tanroute failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, out io.Writer) error {
	s, err := dijkstra.ParseStrategy(*strategy)
	if err != nil {
		return err
	}

	var r io.Reader = os.Stdin
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	q, err := tan.Parse(r)
	if err != nil {
		return err
	}
	logger.Debug("network loaded", "stations", q.Network.Len(), "routes", q.Network.RouteCount())

	path, err := planner.New(q.Network, s, 0, nil, logger).Plan(ctx, q.Origin, q.Destination)
	if err != nil {
		return err
	}

	return tan.WriteResult(out, path)
}
