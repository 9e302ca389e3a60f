// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() returns insertion order; indices are positions in that order.
//
// Concurrency:
//   - All state guarded by Graph.mu.

package core

import "fmt"

// AddEdge appends an edge from→to with the given weight and returns its index.
//
// Behavior highlights:
//   - Always succeeds: self-loops, duplicates and endpoints that do not (yet)
//     exist are all accepted. Checking that both endpoints exist is the job of
//     the input collaborator (see CheckEdgeInput).
//   - Negative weights are stored as-is; see HasNegativeWeights.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddEdge(from, to string, weight float64) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})
	g.touch()

	return len(g.edges) - 1
}

// RemoveEdge removes the edge at position index. Later edges shift down by one.
//
// Errors:
//   - ErrEdgeIndexOutOfRange: index < 0 or index >= EdgeCount(); nothing is mutated.
//
// Complexity:
//   - Time O(E), Space O(1).
func (g *Graph) RemoveEdge(index int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if index < 0 || index >= len(g.edges) {
		return fmt.Errorf("%w: %d (have %d)", ErrEdgeIndexOutOfRange, index, len(g.edges))
	}
	g.edges = append(g.edges[:index], g.edges[index+1:]...)
	g.touch()

	return nil
}

// Edge returns the edge at position index.
func (g *Graph) Edge(index int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if index < 0 || index >= len(g.edges) {
		return Edge{}, fmt.Errorf("%w: %d (have %d)", ErrEdgeIndexOutOfRange, index, len(g.edges))
	}

	return g.edges[index], nil
}

// Edges returns a copy of the edge sequence in insertion order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// HasNegativeWeights reports whether any stored edge has a negative weight.
// Shortest-path results on such a graph are best-effort only.
func (g *Graph) HasNegativeWeights() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return hasNegative(g.edges)
}

// SetDirected switches edge interpretation for the whole graph.
// Setting the current value is a no-op and does not bump the revision.
func (g *Graph) SetDirected(directed bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.directed == directed {
		return
	}
	g.directed = directed
	g.touch()
}

// Directed reports whether edges are traversable only From→To.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

func hasNegative(edges []Edge) bool {
	for _, e := range edges {
		if e.Weight < 0 {
			return true
		}
	}

	return false
}
