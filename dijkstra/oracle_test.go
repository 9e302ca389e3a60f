package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/pathreplay/core"
	"github.com/katalvlaran/pathreplay/dijkstra"
)

// weightedBuilder is the part of gonum's simple weighted graphs used to mirror a core.Graph.
type weightedBuilder interface {
	graph.Weighted
	AddNode(graph.Node)
	NewWeightedEdge(from, to graph.Node, weight float64) graph.WeightedEdge
	SetWeightedEdge(graph.WeightedEdge)
}

// mirror copies g into a gonum graph, keeping the lightest of parallel edges.
// Node i of g becomes gonum node i. Self-loops are skipped; they never
// shorten a path with non-negative weights.
func mirror(g *core.Graph) weightedBuilder {
	var og weightedBuilder
	if g.Directed() {
		og = simple.NewWeightedDirectedGraph(0, 0)
	} else {
		og = simple.NewWeightedUndirectedGraph(0, 0)
	}
	index := make(map[string]int64)
	for i, id := range g.NodeIDs() {
		index[id] = int64(i)
		og.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		u, v := index[e.From], index[e.To]
		if u == v {
			continue
		}
		if cur := og.WeightedEdge(u, v); cur != nil && cur.Weight() <= e.Weight {
			continue
		}
		og.SetWeightedEdge(og.NewWeightedEdge(simple.Node(u), simple.Node(v), e.Weight))
	}

	return og
}

// TestCompute_AgreesWithGonum compares distances and path costs against
// gonum's Dijkstra on random non-negative graphs with parallel edges and
// self-loops, in both directedness modes and both strategies.
func TestCompute_AgreesWithGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(20240611))

	for round := 0; round < 60; round++ {
		g := core.NewGraph(core.WithDirected(round%2 == 0))
		n := 1 + rng.Intn(12)
		ids := make([]string, n)
		for i := range ids {
			ids[i] = g.AddNode(float64(i), 0)
		}
		for e := rng.Intn(3 * n); e > 0; e-- {
			g.AddEdge(ids[rng.Intn(n)], ids[rng.Intn(n)], float64(rng.Intn(20)))
		}

		og := mirror(g)
		src := rng.Intn(n)
		dst := rng.Intn(n)
		want := path.DijkstraFrom(simple.Node(src), og)

		for _, strategy := range []dijkstra.Strategy{dijkstra.StrategyHeap, dijkstra.StrategyLinear} {
			res, err := dijkstra.Compute(g.Snapshot(),
				dijkstra.Source(ids[src]), dijkstra.Target(ids[dst]), dijkstra.WithStrategy(strategy))
			require.NoError(t, err)

			for i, id := range ids {
				got, ok := res.Distance(id)
				require.True(t, ok)
				require.Equal(t, want.WeightTo(int64(i)), got,
					"round %d, %s, node %s", round, strategy, id)
			}
			_, cost := want.To(int64(dst))
			require.Equal(t, cost, res.PathCost(), "round %d, %s", round, strategy)
		}
	}
}
