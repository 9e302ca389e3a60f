package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathreplay/core"
)

func TestParseEdgeInput(t *testing.T) {
	tests := []struct {
		name             string
		from, to, weight string
		want             core.EdgeInput
		wantErr          error
	}{
		{name: "ok", from: "a", to: "b", weight: "3.5", want: core.EdgeInput{From: "a", To: "b", Weight: 3.5}},
		{name: "trimmed", from: " a ", to: "b", weight: " 2 ", want: core.EdgeInput{From: "a", To: "b", Weight: 2}},
		{name: "negative is advisory", from: "a", to: "b", weight: "-1", want: core.EdgeInput{From: "a", To: "b", Weight: -1, Negative: true}},
		{name: "zero", from: "a", to: "b", weight: "0", want: core.EdgeInput{From: "a", To: "b"}},
		{name: "missing weight", from: "a", to: "b", weight: "", wantErr: core.ErrMissingWeight},
		{name: "blank weight", from: "a", to: "b", weight: "   ", wantErr: core.ErrMissingWeight},
		{name: "not numeric", from: "a", to: "b", weight: "abc", wantErr: core.ErrWeightNotNumeric},
		{name: "trailing junk", from: "a", to: "b", weight: "12abc", wantErr: core.ErrWeightNotNumeric},
		{name: "infinite", from: "a", to: "b", weight: "Inf", wantErr: core.ErrWeightNotNumeric},
		{name: "nan", from: "a", to: "b", weight: "NaN", wantErr: core.ErrWeightNotNumeric},
		{name: "weight checked first", from: "", to: "", weight: "", wantErr: core.ErrMissingWeight},
		{name: "missing from", from: "", to: "b", weight: "1", wantErr: core.ErrMissingEndpoint},
		{name: "missing to", from: "a", to: "", weight: "1", wantErr: core.ErrMissingEndpoint},
		{name: "same node", from: "a", to: "a", weight: "1", wantErr: core.ErrSameNode},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := core.ParseEdgeInput(tc.from, tc.to, tc.weight)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, core.EdgeInput{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGraph_CheckEdgeInput(t *testing.T) {
	g := core.NewGraph()
	a, b := g.AddNode(0, 0), g.AddNode(1, 1)

	in, err := g.CheckEdgeInput(a, b, "4")
	require.NoError(t, err)
	assert.Equal(t, core.EdgeInput{From: a, To: b, Weight: 4}, in)

	_, err = g.CheckEdgeInput(a, "ghost", "4")
	assert.ErrorIs(t, err, core.ErrEndpointNotFound)

	_, err = g.CheckEdgeInput(a, b, "x")
	assert.ErrorIs(t, err, core.ErrWeightNotNumeric)
	assert.Zero(t, g.EdgeCount(), "validation never mutates the graph")
}
