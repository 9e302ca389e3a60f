// Package core defines the Graph model: positioned nodes, an ordered sequence
// of weighted edges, a graph-wide directedness flag and a weak start/end
// selection.
//
// The model has no notion of algorithm state. Algorithms consume an immutable
// Snapshot taken with Graph.Snapshot, so a running or replayed computation is
// never affected by later edits.
//
// Errors:
//
//	ErrEmptyNodeID         - node ID is the empty string.
//	ErrNodeNotFound        - requested node does not exist.
//	ErrEdgeIndexOutOfRange - edge index is outside the edge sequence.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that an operation required a non-empty node ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeIndexOutOfRange indicates RemoveEdge/Edge was called with a bad index.
	ErrEdgeIndexOutOfRange = errors.New("core: edge index out of range")
)

// DefaultIDPrefix is prepended to the monotonic counter to form node IDs
// ("node-0", "node-1", ...).
const DefaultIDPrefix = "node-"

// Node is a vertex with a stable identity and a presentation-only position.
type Node struct {
	// ID is unique for the lifetime of the Graph that issued it.
	ID string

	// X and Y are carried for presentation collaborators; algorithms never read them.
	X, Y float64
}

// Edge is an ordered pair of node IDs with a numeric weight.
//
// Under an undirected graph the edge is traversable both ways, but From/To are
// kept as entered so that display and removal still see the original pair.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the initial directedness of the graph.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithIDPrefix overrides the prefix used for generated node IDs.
// An empty prefix is ignored.
func WithIDPrefix(prefix string) GraphOption {
	return func(g *Graph) {
		if prefix != "" {
			g.idPrefix = prefix
		}
	}
}

// Graph is the mutable in-memory graph model.
//
// Nodes and edges keep insertion order: it is the only total order the model
// exposes, and shortest-path tie-breaking relies on it. start and end are weak
// references: removing the node they point at clears them.
//
// All methods are safe for concurrent use; mu guards every field.
type Graph struct {
	mu sync.RWMutex

	directed bool
	idPrefix string

	// nextNodeID is never decremented, not even by Clear, so IDs are never reused.
	nextNodeID uint64
	// revision changes on every successful mutation.
	revision uint64

	nodes []*Node          // insertion order
	index map[string]*Node // ID → Node
	edges []Edge           // insertion order

	start string
	end   string
}

// NewGraph creates an empty Graph. By default the graph is directed, which is
// how a fresh workspace starts.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		directed: true,
		idPrefix: DefaultIDPrefix,
		index:    make(map[string]*Node),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// touch records a mutation. Caller must hold mu for writing.
func (g *Graph) touch() { g.revision++ }
