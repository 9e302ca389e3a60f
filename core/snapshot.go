// File: snapshot.go
// Role: Immutable graph snapshots consumed by algorithms, plus Clear/Revision.
//
// Determinism:
//   - A Snapshot preserves node and edge insertion order exactly.
//
// Concurrency:
//   - Snapshot() takes a read lock once; the returned value shares nothing
//     with the Graph and needs no locking.

package core

// Arc is one traversable step out of a node under a Snapshot's directedness.
type Arc struct {
	To     string  // neighbor reached by the step
	Weight float64 // weight of the underlying edge
	Edge   int     // index of the underlying edge in the snapshot
}

// Snapshot is a frozen copy of a Graph's topology. Nothing mutates it after
// Graph.Snapshot returns; treat the exported slices as read-only.
type Snapshot struct {
	Nodes    []Node
	Edges    []Edge
	Directed bool
	Revision uint64

	order map[string]int   // node ID → insertion index
	arcs  map[string][]Arc // node ID → outgoing arcs, in edge order
}

// Snapshot captures the current nodes, edges, directedness and revision.
// Complexity: O(V + E).
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nodes := make([]Node, len(g.nodes))
	for i, n := range g.nodes {
		nodes[i] = *n
	}
	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)

	return NewSnapshot(nodes, edges, g.directed, g.revision)
}

// NewSnapshot builds a Snapshot from explicit parts. The slices are retained,
// not copied. Duplicate node IDs keep their first position.
//
// The arc index is built here once, so Arcs is a lookup.
// Complexity: O(V + E).
func NewSnapshot(nodes []Node, edges []Edge, directed bool, revision uint64) *Snapshot {
	order := make(map[string]int, len(nodes))
	for i, n := range nodes {
		if _, dup := order[n.ID]; !dup {
			order[n.ID] = i
		}
	}

	arcs := make(map[string][]Arc, len(nodes))
	for i, e := range edges {
		arcs[e.From] = append(arcs[e.From], Arc{To: e.To, Weight: e.Weight, Edge: i})
		if !directed && e.To != e.From {
			arcs[e.To] = append(arcs[e.To], Arc{To: e.From, Weight: e.Weight, Edge: i})
		}
	}

	return &Snapshot{
		Nodes:    nodes,
		Edges:    edges,
		Directed: directed,
		Revision: revision,
		order:    order,
		arcs:     arcs,
	}
}

// Has reports whether id is a node of the snapshot.
func (s *Snapshot) Has(id string) bool {
	_, ok := s.order[id]

	return ok
}

// Order returns the insertion index of id, or -1 if absent.
func (s *Snapshot) Order(id string) int {
	if i, ok := s.order[id]; ok {
		return i
	}

	return -1
}

// Len returns the number of nodes.
func (s *Snapshot) Len() int { return len(s.Nodes) }

// Arcs returns the steps traversable from id, in edge order.
//
// Directed: every edge with From == id, reaching To.
// Undirected: every edge with From == id (reaching To) or To == id (reaching
// From). A self-loop yields a single arc back to id.
//
// The returned slice is shared with the snapshot; do not modify it.
//
// Complexity: O(1).
func (s *Snapshot) Arcs(id string) []Arc {
	a := s.arcs[id]

	return a[:len(a):len(a)]
}

// HasNegativeWeights reports whether any snapshot edge has a negative weight.
func (s *Snapshot) HasNegativeWeights() bool { return hasNegative(s.Edges) }

// Clear removes every node, edge and the selection. Directedness and the ID
// counter are kept, so IDs issued afterwards never collide with earlier ones.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = nil
	g.index = make(map[string]*Node)
	g.edges = nil
	g.start, g.end = "", ""
	g.touch()
}

// Revision returns a counter that changes on every successful mutation.
// Comparing it with Snapshot.Revision tells whether a snapshot is stale.
func (g *Graph) Revision() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.revision
}
