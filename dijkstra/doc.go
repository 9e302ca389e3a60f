// Package dijkstra computes single-source shortest paths over an immutable
// core.Snapshot and records the order in which nodes are finalized, which is
// what the replay package turns into a steppable timeline.
//
// Overview:
//
//   - Every snapshot node gets a distance: 0 for the source, the minimal summed
//     weight for reachable nodes, Unreachable (+Inf) for the rest.
//   - VisitOrder lists nodes in finalization order. It stops early when the
//     remaining nodes are unreachable.
//   - With a Target, Path holds the node sequence source→target; its summed
//     edge weights equal the target's distance.
//
// Directedness is a property of the snapshot: a directed snapshot traverses
// each edge From→To only, an undirected one both ways.
//
// Determinism:
//
//   - Equal distances are broken by snapshot insertion order, so VisitOrder is
//     reproducible and identical across strategies.
//
// Weights:
//
//   - Correctness holds for non-negative weights. Negative weights are accepted
//     and produce a best-effort Result flagged by HasNegativeWeights; there is
//     no Bellman-Ford fallback.
//
// Example usage:
//
//	g := core.NewGraph()
//	a, b := g.AddNode(0, 0), g.AddNode(10, 0)
//	g.AddEdge(a, b, 4)
//	res, err := dijkstra.Compute(g.Snapshot(), dijkstra.Source(a), dijkstra.Target(b))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Path(), res.PathCost())
package dijkstra
