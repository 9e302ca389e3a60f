// Package: pathreplay/builder
//
// impl_path.go: implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Nodes on a horizontal line, left to right.
//   • Emits edges i → i+1 for i=0..n-2, one weight draw per edge.
//     On a directed target each is followed by i+1 → i with the same weight.
//
// Complexity:
//   • Time: O(n) nodes + O(n) edges.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(t Target, cfg builderConfig) ([]string, error) {
		if n < minPathNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		ps := make([]point, n)
		for i := range ps {
			ps[i] = cfg.linePos(i)
		}
		ids := addNodes(t, ps)

		for i := 0; i+1 < n; i++ {
			cfg.linkBoth(t, ids, ps, i, i+1)
		}

		return ids, nil
	}
}
