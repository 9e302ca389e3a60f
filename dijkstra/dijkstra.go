// Package dijkstra implements single-source shortest paths over a core.Snapshot
// and records the order in which nodes are finalized.
//
// Complexity:
//
//   - StrategyHeap:   Time O((V + E) log V), Space O(V + E).
//     Each node is extracted at most once; each successful relaxation pushes one
//     heap entry (lazy decrease-key), stale entries are skipped when popped.
//     Arcs come from the snapshot's per-node index, so relaxing u costs O(deg u).
//   - StrategyLinear: Time O(V² + E), Space O(V).
//     Kept because it is the simplest statement of the algorithm and serves as
//     the reference the heap strategy is tested against.
//
// Notes on implementation choices:
//
//   - Ties between equal minimal distances are broken by the lowest snapshot
//     insertion index, so VisitOrder is fully deterministic and both strategies
//     produce identical Results.
//   - Finalized neighbours are never relaxed again. With non-negative weights
//     this changes nothing; with negative weights it keeps the result
//     well-defined (each node finalized once) if not correct.
//   - Arcs that lead to IDs outside the snapshot are ignored: the model accepts
//     edges to absent endpoints and the engine only reports on known nodes.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"time"

	"github.com/bits-and-blooms/bitset"
	"github.com/google/uuid"

	"github.com/katalvlaran/pathreplay/core"
)

// Compute runs the shortest-path search described by opts over s.
//
// Returns:
//
//   - *Result: distances for every snapshot node, the visit order, and the
//     path to Target (empty if Target is unset or unreachable).
//   - error:   a sentinel (wrapped with context) if inputs violate the contract.
//
// Preconditions and validation (in order):
//  1. s must be non-nil (ErrNilSnapshot).
//  2. An empty snapshot yields an empty Result; the source is not checked.
//  3. Source must be non-empty (ErrEmptySource) and present (ErrSourceNotFound).
//  4. Target, if set, must be present (ErrTargetNotFound).
func Compute(s *core.Snapshot, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.RunID == "" {
		cfg.RunID = uuid.NewString()
	}

	began := time.Now()
	res, err := compute(s, cfg)
	observeRun(cfg.Strategy, res, err, time.Since(began))

	return res, err
}

func compute(s *core.Snapshot, cfg Options) (*Result, error) {
	if s == nil {
		return nil, ErrNilSnapshot
	}

	res := &Result{
		runID:    cfg.RunID,
		source:   cfg.Source,
		target:   cfg.Target,
		directed: s.Directed,
		revision: s.Revision,
		negative: s.HasNegativeWeights(),
		dist:     make(map[string]float64, s.Len()),
		prev:     make(map[string]string, s.Len()),
	}
	if s.Len() == 0 {
		return res, nil
	}

	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if !s.Has(cfg.Source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, cfg.Source)
	}
	if cfg.Target != "" && !s.Has(cfg.Target) {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, cfg.Target)
	}

	r := &runner{
		s:         s,
		options:   cfg,
		res:       res,
		finalized: bitset.New(uint(s.Len())),
	}
	r.init()
	switch cfg.Strategy {
	case StrategyLinear:
		r.processLinear()
	default:
		r.processHeap()
	}
	r.reconstruct()

	return res, nil
}

// runner holds the mutable state for a single Compute execution.
type runner struct {
	s         *core.Snapshot
	options   Options
	res       *Result
	finalized *bitset.BitSet // indexed by snapshot insertion order
	pq        nodePQ
}

// init sets every node to Unreachable and the source to zero.
func (r *runner) init() {
	r.res.nodes = make([]string, len(r.s.Nodes))
	for i, n := range r.s.Nodes {
		r.res.nodes[i] = n.ID
		r.res.dist[n.ID] = Unreachable
	}
	r.res.dist[r.options.Source] = 0
	r.res.visitOrder = make([]string, 0, len(r.s.Nodes))
}

// processHeap drives the search with a lazy min-heap keyed by (distance, order).
func (r *runner) processHeap() {
	r.pq = make(nodePQ, 0, len(r.s.Nodes))
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, order: r.s.Order(r.options.Source), dist: 0})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// Skip stale entries: already finalized, or superseded by a shorter push.
		if r.finalized.Test(uint(item.order)) || item.dist != r.res.dist[item.id] {
			continue
		}
		r.finalize(item.id, item.order)
	}
}

// processLinear drives the search by scanning for the minimal unfinalized node.
func (r *runner) processLinear() {
	for {
		best := -1
		bestDist := math.Inf(1)
		for i, n := range r.s.Nodes {
			if r.finalized.Test(uint(i)) {
				continue
			}
			// Strict comparison keeps the lowest insertion index on ties.
			if d := r.res.dist[n.ID]; d < bestDist {
				best, bestDist = i, d
			}
		}
		if best < 0 {
			return // no finite-distance node left
		}
		r.finalize(r.s.Nodes[best].ID, best)
	}
}

// finalize appends u to the visit order and relaxes its arcs.
func (r *runner) finalize(u string, order int) {
	r.finalized.Set(uint(order))
	r.res.visitOrder = append(r.res.visitOrder, u)
	if r.options.OnFinalize != nil {
		r.options.OnFinalize(u, r.res.dist[u])
	}
	r.relax(u)
}

// relax improves neighbour distances through the just-finalized node u.
// A strictly shorter candidate updates dist and prev and, in heap mode,
// pushes a fresh entry.
func (r *runner) relax(u string) {
	du := r.res.dist[u]
	for _, a := range r.s.Arcs(u) {
		order := r.s.Order(a.To)
		if order < 0 || r.finalized.Test(uint(order)) {
			continue
		}
		cand := du + a.Weight
		// NaN never compares smaller, so it would otherwise slip through.
		if math.IsNaN(cand) || cand >= r.res.dist[a.To] {
			continue
		}
		r.res.dist[a.To] = cand
		r.res.prev[a.To] = u
		if r.options.Strategy == StrategyHeap {
			heap.Push(&r.pq, &nodeItem{id: a.To, order: order, dist: cand})
		}
	}
}

// reconstruct walks predecessors back from the target, if it was reached.
func (r *runner) reconstruct() {
	t := r.options.Target
	if t == "" || !r.res.Reachable(t) {
		return
	}

	var rev []string
	// The predecessor chain follows strictly earlier finalizations, so it is
	// acyclic; the bound only guards against a broken invariant.
	for cur, steps := t, 0; steps <= len(r.s.Nodes); steps++ {
		rev = append(rev, cur)
		if cur == r.options.Source {
			break
		}
		p, ok := r.res.prev[cur]
		if !ok {
			return
		}
		cur = p
	}
	if rev[len(rev)-1] != r.options.Source {
		return
	}

	path := make([]string, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}
	r.res.path = path
	r.res.pathCost = r.res.dist[t]
}

// nodeItem is one heap entry: a node and the tentative distance it was pushed with.
type nodeItem struct {
	id    string
	order int // snapshot insertion index, the tie-breaker
	dist  float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, order).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by insertion index.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].order < pq[j].order
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem. Called by heap.Push.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
