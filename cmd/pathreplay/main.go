// Command pathreplay loads or generates a weighted graph, computes shortest
// paths from a start node and replays the order in which nodes were settled.
//
//	pathreplay run --scene triangle.yaml
//	pathreplay run --shape grid --rows 4 --cols 6 --min-weight 1 --max-weight 9
//	pathreplay validate triangle.yaml
//	pathreplay config --config pathreplay.yaml
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
