// Package dijkstra defines the configuration, errors and Result type of the
// single-source shortest-path engine.
//
// Options:
//
//	– Source:         ID of the starting node (required unless the snapshot is empty).
//	– Target:         optional destination; enables path reconstruction.
//	– WithStrategy:   StrategyHeap (default) or StrategyLinear; outputs are identical.
//	– WithOnFinalize: hook invoked each time a node is finalized.
//	– WithRunID:      overrides the generated run identifier.
//
// Errors (sentinel):
//
//	– ErrNilSnapshot     if the snapshot pointer is nil.
//	– ErrEmptySource     if no source was given for a non-empty snapshot.
//	– ErrSourceNotFound  if the source is not a node of the snapshot.
//	– ErrTargetNotFound  if a target was given that is not a node of the snapshot.
//
// Negative weights are not rejected. The result is then best-effort only and
// Result.HasNegativeWeights reports true so callers can warn.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Unreachable is the distance reported for nodes the source cannot reach.
var Unreachable = math.Inf(1)

// Sentinel errors returned by Compute.
var (
	// ErrNilSnapshot indicates that a nil *core.Snapshot was passed to Compute.
	ErrNilSnapshot = errors.New("dijkstra: snapshot is nil")

	// ErrEmptySource indicates that no source node ID was provided.
	ErrEmptySource = errors.New("dijkstra: source node ID is empty")

	// ErrSourceNotFound indicates that the source is not a node of the snapshot.
	// This is a caller contract violation; Compute refuses to produce a Result.
	ErrSourceNotFound = errors.New("dijkstra: source node not found in snapshot")

	// ErrTargetNotFound indicates that the requested destination is not a node of the snapshot.
	ErrTargetNotFound = errors.New("dijkstra: target node not found in snapshot")
)

// Strategy selects how the next node to finalize is extracted.
type Strategy int

const (
	// StrategyHeap uses a binary min-heap with lazy decrease-key: O((V+E) log V).
	StrategyHeap Strategy = iota

	// StrategyLinear scans every unfinalized node on each step: O(V² + E).
	StrategyLinear
)

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyHeap:
		return "heap"
	case StrategyLinear:
		return "linear"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "heap" / "linear" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "heap", "":
		return StrategyHeap, nil
	case "linear":
		return StrategyLinear, nil
	default:
		return 0, fmt.Errorf("dijkstra: unknown strategy %q", name)
	}
}

// Options configures a Compute call.
type Options struct {
	Source     string                        // starting node ID
	Target     string                        // optional destination ID
	Strategy   Strategy                      // extraction strategy
	OnFinalize func(id string, dist float64) // optional hook, called in visit order
	RunID      string                        // identifier stamped on the Result
}

// Option represents a functional option for configuring Compute.
type Option func(*Options)

// Source sets the starting node.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// Target sets the destination node whose path is reconstructed.
func Target(id string) Option {
	return func(o *Options) { o.Target = id }
}

// WithStrategy selects the extraction strategy.
// Panics on an unknown value, like other option constructors with invalid arguments.
func WithStrategy(s Strategy) Option {
	if s != StrategyHeap && s != StrategyLinear {
		panic(fmt.Sprintf("dijkstra: invalid strategy %d", int(s)))
	}

	return func(o *Options) { o.Strategy = s }
}

// WithOnFinalize registers a hook invoked each time a node is finalized,
// with its final distance. Calls happen in visit order.
func WithOnFinalize(fn func(id string, dist float64)) Option {
	return func(o *Options) { o.OnFinalize = fn }
}

// WithRunID stamps the Result with the given identifier instead of a random UUID.
func WithRunID(id string) Option {
	return func(o *Options) { o.RunID = id }
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{Strategy: StrategyHeap}
}
