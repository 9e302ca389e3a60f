package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathreplay/core"
)

// buildTriangle returns a directed graph with three nodes A, B, C and edges
// A→B(1), B→C(2), A→C(5), plus the generated IDs in insertion order.
func buildTriangle(t *testing.T) (*core.Graph, []string) {
	t.Helper()
	g := core.NewGraph()
	a := g.AddNode(0, 0)
	b := g.AddNode(100, 0)
	c := g.AddNode(50, 80)
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 2)
	g.AddEdge(a, c, 5)

	return g, []string{a, b, c}
}

func TestGraph_DefaultsToDirected(t *testing.T) {
	assert.True(t, core.NewGraph().Directed())
	assert.False(t, core.NewGraph(core.WithDirected(false)).Directed())
}

func TestGraph_AddNodeGeneratesFreshIDs(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode(1, 2)
	b := g.AddNode(3, 4)
	assert.Equal(t, "node-0", a)
	assert.Equal(t, "node-1", b)

	n, err := g.Node(b)
	require.NoError(t, err)
	assert.Equal(t, core.Node{ID: b, X: 3, Y: 4}, n)

	// Removal and Clear never free an ID for reuse.
	require.True(t, g.RemoveNode(b))
	c := g.AddNode(0, 0)
	assert.Equal(t, "node-2", c)
	g.Clear()
	d := g.AddNode(0, 0)
	assert.Equal(t, "node-3", d)
	assert.Equal(t, []string{d}, g.NodeIDs())
}

func TestGraph_WithIDPrefix(t *testing.T) {
	g := core.NewGraph(core.WithIDPrefix("v"))
	assert.Equal(t, "v0", g.AddNode(0, 0))

	g = core.NewGraph(core.WithIDPrefix(""))
	assert.Equal(t, "node-0", g.AddNode(0, 0))
}

func TestGraph_RemoveNodeCascades(t *testing.T) {
	g, ids := buildTriangle(t)
	a, b, c := ids[0], ids[1], ids[2]
	g.AddEdge(c, c, 7) // self-loop on C
	require.NoError(t, g.SetStart(b))
	require.NoError(t, g.SetEnd(c))

	require.True(t, g.RemoveNode(b))

	assert.False(t, g.HasNode(b))
	assert.Equal(t, []string{a, c}, g.NodeIDs())
	assert.Equal(t, []core.Edge{{From: a, To: c, Weight: 5}, {From: c, To: c, Weight: 7}}, g.Edges())
	for _, e := range g.Edges() {
		assert.NotEqual(t, b, e.From)
		assert.NotEqual(t, b, e.To)
	}

	_, ok := g.Start()
	assert.False(t, ok, "start pointed at the removed node")
	end, ok := g.End()
	assert.True(t, ok)
	assert.Equal(t, c, end)

	require.True(t, g.RemoveNode(c))
	_, ok = g.End()
	assert.False(t, ok)
	assert.Empty(t, g.Edges())
}

func TestGraph_RemoveMissingNodeIsNoop(t *testing.T) {
	g, _ := buildTriangle(t)
	rev := g.Revision()
	assert.False(t, g.RemoveNode("nope"))
	assert.False(t, g.RemoveNode(""))
	assert.Equal(t, rev, g.Revision())
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestGraph_AddEdgeAcceptsAnything(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode(0, 0)

	assert.Equal(t, 0, g.AddEdge(a, a, 1))        // self-loop
	assert.Equal(t, 1, g.AddEdge(a, "ghost", 2))  // absent endpoint
	assert.Equal(t, 2, g.AddEdge(a, "ghost", 2))  // duplicate
	assert.Equal(t, 3, g.AddEdge("x", "y", -4.5)) // negative, both absent
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasNegativeWeights())
}

func TestGraph_RemoveEdgeByIndex(t *testing.T) {
	g, ids := buildTriangle(t)
	a, b, c := ids[0], ids[1], ids[2]

	require.NoError(t, g.RemoveEdge(1))
	assert.Equal(t, []core.Edge{{From: a, To: b, Weight: 1}, {From: a, To: c, Weight: 5}}, g.Edges())

	for _, idx := range []int{-1, 2, 100} {
		err := g.RemoveEdge(idx)
		assert.ErrorIs(t, err, core.ErrEdgeIndexOutOfRange, "index %d", idx)
	}
	assert.Equal(t, 2, g.EdgeCount())

	e, err := g.Edge(1)
	require.NoError(t, err)
	assert.Equal(t, c, e.To)
	_, err = g.Edge(2)
	assert.ErrorIs(t, err, core.ErrEdgeIndexOutOfRange)
}

func TestGraph_EdgesReturnsCopy(t *testing.T) {
	g, _ := buildTriangle(t)
	edges := g.Edges()
	edges[0].Weight = 999
	e, err := g.Edge(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, e.Weight)
}

func TestGraph_SetDirectedBumpsRevisionOnlyOnChange(t *testing.T) {
	g := core.NewGraph()
	rev := g.Revision()
	g.SetDirected(true)
	assert.Equal(t, rev, g.Revision())
	g.SetDirected(false)
	assert.False(t, g.Directed())
	assert.Greater(t, g.Revision(), rev)
}

func TestGraph_NodeAt(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode(100, 100)
	b := g.AddNode(110, 100) // overlaps a's hit area

	id, ok := g.NodeAt(105, 100, 20)
	require.True(t, ok)
	assert.Equal(t, a, id, "first node in insertion order wins")

	id, ok = g.NodeAt(125, 100, 20)
	require.True(t, ok)
	assert.Equal(t, b, id)

	_, ok = g.NodeAt(130, 100, 20) // exactly on the radius of b: not a hit
	assert.False(t, ok)
	_, ok = g.NodeAt(100, 100, 0)
	assert.False(t, ok)
}

func TestGraph_SelectionSetters(t *testing.T) {
	g, ids := buildTriangle(t)

	require.NoError(t, g.SetStart(ids[0]))
	require.NoError(t, g.SetEnd(ids[2]))
	start, _ := g.Start()
	end, _ := g.End()
	assert.Equal(t, ids[0], start)
	assert.Equal(t, ids[2], end)

	assert.ErrorIs(t, g.SetStart("ghost"), core.ErrNodeNotFound)
	assert.ErrorIs(t, g.SetEnd("ghost"), core.ErrNodeNotFound)
	start, _ = g.Start()
	assert.Equal(t, ids[0], start, "failed set leaves selection unchanged")

	require.NoError(t, g.SetStart(""))
	_, ok := g.Start()
	assert.False(t, ok)

	g.ClearSelection()
	_, ok = g.End()
	assert.False(t, ok)
}

func TestGraph_SelectToggling(t *testing.T) {
	g := core.NewGraph()
	a, b, c := g.AddNode(0, 0), g.AddNode(1, 0), g.AddNode(2, 0)

	sel := func() (string, string) {
		s, _ := g.Start()
		e, _ := g.End()
		return s, e
	}

	steps := []struct {
		name       string
		pick       string
		start, end string
	}{
		{"first selection sets start", a, a, ""},
		{"second distinct sets end", b, a, b},
		{"third distinct replaces start", c, c, b},
		{"reselect start clears it", c, "", b},
		{"empty start is filled first", a, a, b},
		{"reselect end clears it", b, a, ""},
		{"reselect start with no end clears it", a, "", ""},
	}
	for _, st := range steps {
		require.NoError(t, g.Select(st.pick), st.name)
		s, e := sel()
		assert.Equal(t, st.start, s, st.name)
		assert.Equal(t, st.end, e, st.name)
	}

	assert.ErrorIs(t, g.Select(""), core.ErrEmptyNodeID)
	assert.ErrorIs(t, g.Select("ghost"), core.ErrNodeNotFound)
}

func TestGraph_ClearKeepsDirectedness(t *testing.T) {
	g, ids := buildTriangle(t)
	g.SetDirected(false)
	require.NoError(t, g.SetStart(ids[0]))

	g.Clear()

	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
	_, ok := g.Start()
	assert.False(t, ok)
	assert.False(t, g.Directed())
}
