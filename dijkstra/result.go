package dijkstra

import "math"

// Result is the immutable outcome of one Compute call. It is tied to the
// snapshot revision, source, target and directedness it was computed from;
// every accessor returns a copy, so holders cannot alter it.
type Result struct {
	runID    string
	source   string
	target   string
	directed bool
	revision uint64
	negative bool

	nodes      []string           // snapshot node order
	dist       map[string]float64 // every snapshot node
	prev       map[string]string  // predecessor on the shortest path; absent for source/unreached
	visitOrder []string
	path       []string
	pathCost   float64
}

// RunID identifies the computation.
func (r *Result) RunID() string { return r.runID }

// Source returns the start node.
func (r *Result) Source() string { return r.source }

// Target returns the destination node, or "" if none was requested.
func (r *Result) Target() string { return r.target }

// Directed reports the directedness the result was computed under.
func (r *Result) Directed() bool { return r.directed }

// Revision returns the graph revision of the snapshot the result came from.
func (r *Result) Revision() uint64 { return r.revision }

// HasNegativeWeights reports whether the input contained a negative weight,
// in which case distances are best-effort only.
func (r *Result) HasNegativeWeights() bool { return r.negative }

// Distances returns a copy of the full distance map. Unreached nodes map to Unreachable.
func (r *Result) Distances() map[string]float64 {
	out := make(map[string]float64, len(r.dist))
	for k, v := range r.dist {
		out[k] = v
	}

	return out
}

// Distance returns the distance to id and whether id was a node of the snapshot.
func (r *Result) Distance(id string) (float64, bool) {
	d, ok := r.dist[id]
	if !ok {
		return Unreachable, false
	}

	return d, true
}

// Reachable reports whether id has a distance other than Unreachable.
func (r *Result) Reachable(id string) bool {
	d, ok := r.dist[id]

	return ok && !math.IsInf(d, 1) && !math.IsNaN(d)
}

// Predecessor returns the node preceding id on its shortest path.
func (r *Result) Predecessor(id string) (string, bool) {
	p, ok := r.prev[id]

	return p, ok
}

// Nodes returns the snapshot's node IDs in insertion order.
func (r *Result) Nodes() []string { return append([]string(nil), r.nodes...) }

// VisitOrder returns the nodes in the order they were finalized.
func (r *Result) VisitOrder() []string { return append([]string(nil), r.visitOrder...) }

// Len returns the number of finalized nodes; it is the replay timeline length.
func (r *Result) Len() int { return len(r.visitOrder) }

// At returns the i-th finalized node.
func (r *Result) At(i int) (string, bool) {
	if i < 0 || i >= len(r.visitOrder) {
		return "", false
	}

	return r.visitOrder[i], true
}

// VisitedUpTo returns the visit-order prefix ending at step (inclusive),
// clamped to the available range.
func (r *Result) VisitedUpTo(step int) []string {
	n := step + 1
	if n < 0 {
		n = 0
	}
	if n > len(r.visitOrder) {
		n = len(r.visitOrder)
	}

	return append([]string(nil), r.visitOrder[:n]...)
}

// Path returns the shortest path source→target inclusive, or nil when no
// target was set or it is unreachable.
func (r *Result) Path() []string { return append([]string(nil), r.path...) }

// Found reports whether a path to the target exists.
func (r *Result) Found() bool { return len(r.path) > 0 }

// PathCost returns the summed weight along Path, or Unreachable if there is none.
func (r *Result) PathCost() float64 {
	if len(r.path) == 0 {
		return Unreachable
	}

	return r.pathCost
}

// OnPath reports whether id lies on the reconstructed path.
func (r *Result) OnPath(id string) bool {
	for _, p := range r.path {
		if p == id {
			return true
		}
	}

	return false
}
