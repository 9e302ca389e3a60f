// Package: pathreplay/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Nodes on a ring.
//   • Undirected target: one edge per unordered pair {i<j}, emitted i asc then j asc.
//   • Directed target: both arcs i→j and j→i, each with its own weight draw.
//   • No self-loops.
//
// Complexity:
//   • Time: O(n) nodes + O(n²) edges.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(t Target, cfg builderConfig) ([]string, error) {
		if n < minCompleteNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		ps := cfg.ring(n)
		ids := addNodes(t, ps)
		directed := t.Directed()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				cfg.link(t, ids, ps, i, j)
				if directed {
					cfg.link(t, ids, ps, j, i)
				}
			}
		}

		return ids, nil
	}
}
