package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathreplay/builder"
	"github.com/katalvlaran/pathreplay/config"
	"github.com/katalvlaran/pathreplay/core"
	"github.com/katalvlaran/pathreplay/dijkstra"
	"github.com/katalvlaran/pathreplay/scene"
	"github.com/katalvlaran/pathreplay/session"
)

func TestLoad_Triangle(t *testing.T) {
	s, err := scene.Load("testdata/triangle.yaml")
	require.NoError(t, err)
	require.NotNil(t, s.Directed)
	assert.True(t, *s.Directed)
	assert.Len(t, s.Nodes, 3)
	assert.Len(t, s.Edges, 3)

	g := core.NewGraph(core.WithDirected(false))
	ids, err := s.Apply(g)
	require.NoError(t, err)
	assert.True(t, g.Directed())
	assert.Equal(t, map[string]string{"A": "node-0", "B": "node-1", "C": "node-2"}, ids)

	n, err := g.Node(ids["C"])
	require.NoError(t, err)
	assert.Equal(t, core.Node{ID: "node-2", X: 160, Y: 220}, n)

	start, _ := g.Start()
	end, _ := g.End()
	assert.Equal(t, ids["A"], start)
	assert.Equal(t, ids["C"], end)

	res, err := dijkstra.Compute(g.Snapshot(), dijkstra.Source(start), dijkstra.Target(end))
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.PathCost())
}

func TestLoad_GridShapeIntoWorkspace(t *testing.T) {
	s, err := scene.Load("testdata/grid.yaml")
	require.NoError(t, err)

	w, err := session.New(config.Default())
	require.NoError(t, err)
	ids, err := s.Apply(w)
	require.NoError(t, err)

	assert.False(t, w.Directed())
	assert.Equal(t, 12, w.Graph().NodeCount())
	assert.Equal(t, 17, w.Graph().EdgeCount())
	assert.Len(t, ids, 12)
	for _, e := range w.Graph().Edges() {
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.LessOrEqual(t, e.Weight, 9.0)
	}
	start, _ := w.Graph().Start()
	end, _ := w.Graph().End()
	assert.Equal(t, ids["n0"], start)
	assert.Equal(t, ids["n11"], end)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := scene.Load("testdata/nope.yaml")
	require.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"not yaml", "nodes: [", scene.ErrInvalid},
		{"missing name", "nodes: [{x: 1}]", scene.ErrInvalid},
		{"missing endpoint", "nodes: [{name: A}]\nedges: [{from: A, weight: 1}]", scene.ErrInvalid},
		{"infinite weight", "nodes: [{name: A}, {name: B}]\nedges: [{from: A, to: B, weight: .inf}]", scene.ErrInvalid},
		{"bad shape kind", "shape: {kind: hexagon, n: 3}", scene.ErrInvalid},
		{"bad probability", "shape: {kind: random, n: 3, p: 2}", scene.ErrInvalid},
		{"bad weight range", "shape: {kind: path, n: 3, weights: {min: 5, max: 2}}", scene.ErrInvalid},
		{"span weight with range", "shape: {kind: path, n: 3, span_weight: 2, weights: {min: 1, max: 2}}", scene.ErrInvalid},
		{"duplicate", "nodes: [{name: A}, {name: A}]", scene.ErrDuplicateName},
		{"duplicate of generated", "shape: {kind: path, n: 2}\nnodes: [{name: n1}]", scene.ErrDuplicateName},
		{"unknown edge end", "nodes: [{name: A}]\nedges: [{from: A, to: Z, weight: 1}]", scene.ErrUnknownNode},
		{"unknown start", "nodes: [{name: A}]\nstart: Z", scene.ErrUnknownNode},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scene.Parse([]byte(tc.yaml))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_EmptyScene(t *testing.T) {
	s, err := scene.Parse(nil)
	require.NoError(t, err)

	g := core.NewGraph()
	ids, err := s.Apply(g)
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.True(t, g.Directed(), "directedness untouched when unset")
}

func TestApply_ShapeAndDeclaredNodes(t *testing.T) {
	s, err := scene.Parse([]byte(`
shape: {kind: cycle, n: 3, prefix: c}
nodes: [{name: hub, x: 500, y: 500}]
edges:
  - {from: hub, to: c0, weight: -1}
start: hub
end: c2
`))
	require.NoError(t, err)

	g := core.NewGraph()
	ids, err := s.Apply(g)
	require.NoError(t, err)
	assert.Equal(t, "node-0", ids["c0"])
	assert.Equal(t, "node-3", ids["hub"])
	assert.Equal(t, 7, g.EdgeCount(), "the directed cycle is mirrored")
	assert.True(t, g.HasNegativeWeights())
}

func TestApply_ShapeTooSmall(t *testing.T) {
	s, err := scene.Parse([]byte("shape: {kind: cycle, n: 2}"))
	require.NoError(t, err)

	_, err = s.Apply(core.NewGraph())
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestShape_CountAndOptions(t *testing.T) {
	var nilShape *scene.Shape
	assert.Equal(t, 0, nilShape.Count())
	assert.Equal(t, 6, (&scene.Shape{Kind: scene.KindGrid, Rows: 2, Cols: 3}).Count())
	assert.Equal(t, 5, (&scene.Shape{Kind: scene.KindStar, N: 5}).Count())

	_, err := (&scene.Shape{Kind: "blob"}).Constructor()
	require.ErrorIs(t, err, scene.ErrInvalid)

	// Same seed, same random graph.
	seed := int64(9)
	sh := &scene.Shape{Kind: scene.KindRandom, N: 6, P: 0.4, Seed: &seed, Weights: &scene.WeightRange{Min: 1, Max: 5}}
	g1, g2 := core.NewGraph(), core.NewGraph()
	_, err = sh.Build(g1)
	require.NoError(t, err)
	_, err = sh.Build(g2)
	require.NoError(t, err)
	assert.Equal(t, g1.Edges(), g2.Edges())

	sh = &scene.Shape{Kind: scene.KindPath, N: 3, SpanWeight: 4}
	g := core.NewGraph()
	_, err = sh.Build(g)
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.Equal(t, 4.0, e.Weight)
	}
}
