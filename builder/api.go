// Package: pathreplay/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(t, bopts, cons...). Resolves cfg once, runs cons in order.
//   - BuildGraph is the same over a fresh core.Graph.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathreplay/core"
)

// Target is what constructors mutate. *core.Graph and *session.Workspace
// both satisfy it.
type Target interface {
	AddNode(x, y float64) string
	AddEdge(from, to string, weight float64) int
	Directed() bool
}

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig and returns the IDs of the nodes it created, in creation order.
// Constructors MUST:
//   - Validate parameters before adding anything and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
type Constructor func(t Target, cfg builderConfig) ([]string, error)

// Build resolves the builder configuration from bopts and applies all
// constructors to t in order. It returns the IDs of every node created,
// in creation order.
//
// Any constructor error is wrapped with the context "Build: %w" and returned
// immediately; nodes added by earlier constructors stay in t.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func Build(t Target, bopts []BuilderOption, cons ...Constructor) ([]string, error) {
	if t == nil {
		return nil, fmt.Errorf("Build: nil target: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	var ids []string
	for i, fn := range cons {
		if fn == nil {
			return ids, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		added, err := fn(t, cfg)
		ids = append(ids, added...)
		if err != nil {
			return ids, fmt.Errorf("Build: %w", err)
		}
	}

	return ids, nil
}

// BuildGraph creates a new core.Graph with graph options gopts and applies
// all constructors to it, as Build does.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if _, err := Build(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}
