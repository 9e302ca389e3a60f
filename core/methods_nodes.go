// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() and NodeIDs() return insertion order.
//   - NodeAt() resolves overlaps by insertion order (first match wins).
//
// Concurrency:
//   - All state guarded by Graph.mu.

package core

import (
	"math"
	"strconv"
)

// AddNode inserts a node at (x, y) and returns its freshly generated ID.
//
// Implementation:
//   - Stage 1: Under mu, format the ID from the monotonic counter and bump it.
//   - Stage 2: Append the node to the ordered catalog and index it.
//
// Behavior highlights:
//   - Always succeeds.
//   - IDs are never reused, even after RemoveNode or Clear.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddNode(x, y float64) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.idPrefix + strconv.FormatUint(g.nextNodeID, 10)
	g.nextNodeID++

	n := &Node{ID: id, X: x, Y: y}
	g.nodes = append(g.nodes, n)
	g.index[id] = n
	g.touch()

	return id
}

// RemoveNode deletes the node with the given ID, every edge whose From or To
// equals it, and clears start/end if either referenced it.
//
// Implementation:
//   - Stage 1: Under mu, return false if the node is absent (no-op, revision unchanged).
//   - Stage 2: Drop the node from the ordered catalog and the index.
//   - Stage 3: Filter the edge sequence in place, preserving the order of survivors.
//   - Stage 4: Clear weak selection references.
//
// Returns:
//   - bool: true if a node was removed.
//
// Complexity:
//   - Time O(V + E), Space O(1).
func (g *Graph) RemoveNode(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.index[id]; !ok {
		return false
	}
	delete(g.index, id)

	nodes := g.nodes[:0]
	for _, n := range g.nodes {
		if n.ID != id {
			nodes = append(nodes, n)
		}
	}
	// Release the trailing pointer so the removed node can be collected.
	g.nodes[len(g.nodes)-1] = nil
	g.nodes = nodes

	edges := g.edges[:0]
	for _, e := range g.edges {
		if e.From != id && e.To != id {
			edges = append(edges, e)
		}
	}
	g.edges = edges

	if g.start == id {
		g.start = ""
	}
	if g.end == id {
		g.end = ""
	}
	g.touch()

	return true
}

// HasNode reports whether the node exists (empty ID ⇒ false).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// Node returns a copy of the node with the given ID.
func (g *Graph) Node(id string) (Node, error) {
	if id == "" {
		return Node{}, ErrEmptyNodeID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.index[id]
	if !ok {
		return Node{}, ErrNodeNotFound
	}

	return *n, nil
}

// Nodes returns copies of all nodes in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = *n
	}

	return out
}

// NodeIDs returns all node IDs in insertion order.
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.ID
	}

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// NodeAt returns the ID of the first node (insertion order) whose position lies
// strictly within radius of (x, y). It is the hit test used by pointer
// collaborators to tell "clicked a node" from "clicked empty canvas".
//
// Returns:
//   - string, true: the hit node.
//   - "", false: nothing within radius, or radius <= 0.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph) NodeAt(x, y, radius float64) (string, bool) {
	if radius <= 0 {
		return "", false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, n := range g.nodes {
		if math.Hypot(n.X-x, n.Y-y) < radius {
			return n.ID, true
		}
	}

	return "", false
}
